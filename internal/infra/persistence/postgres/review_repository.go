package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// CreateBatch persists multiple reviews in one statement.
func (repo *reviewRepository) CreateBatch(ctx context.Context, reviews []*entity.Review) error {
	if len(reviews) == 0 {
		return nil
	}

	reviewModels := make([]*model.ReviewModel, 0, len(reviews))
	for _, review := range reviews {
		reviewModels = append(reviewModels, fromReviewDomain(review))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(reviewModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product or reviewer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create reviews")
	}

	for i, reviewM := range reviewModels {
		reviews[i].ID = reviewM.ID
	}

	return nil
}

// Exists reports whether the (product, reviewer, comment) tuple is
// already stored.
func (repo *reviewRepository) Exists(ctx context.Context, productID, reviewerID uint, comment string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("product_id = ? AND reviewer_id = ? AND comment = ?", productID, reviewerID, comment).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check review existence")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		Date:       data.Date,
		Reviewer:   toUserDomain(data.Reviewer),
	}
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		Date:       data.Date,
	}
}
