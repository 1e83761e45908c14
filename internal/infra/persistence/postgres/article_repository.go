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

// articleRepository implements the repository.ArticleRepository interface.
type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository is the constructor for articleRepository.
func NewArticleRepository(db *gorm.DB) repository.ArticleRepository {
	return &articleRepository{
		db: db,
	}
}

// FindAll retrieves articles newest first, optionally published only.
func (repo *articleRepository) FindAll(ctx context.Context, limit, offset int, publishedOnly bool) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	query := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find articles")
	}

	return toArticleDomainSlice(articleModels), nil
}

// FindByID retrieves an article by its unique ID.
func (repo *articleRepository) FindByID(ctx context.Context, id uint) (*entity.Article, error) {
	var articleM model.ArticleModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&articleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find article by ID")
	}

	return toArticleDomain(&articleM), nil
}

// FindByAuthorID retrieves all articles written by the given author.
func (repo *articleRepository) FindByAuthorID(ctx context.Context, authorID uint, limit, offset int) ([]*entity.Article, error) {
	var articleModels []*model.ArticleModel

	query := repo.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&articleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find articles by author")
	}

	return toArticleDomainSlice(articleModels), nil
}

// Create persists a new article.
func (repo *articleRepository) Create(ctx context.Context, article *entity.Article) error {
	articleM := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(articleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAuthorNotFound.WrapMessage("create article")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required article information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create article")
	}

	article.ID = articleM.ID
	article.CreatedAt = articleM.CreatedAt
	article.UpdatedAt = articleM.UpdatedAt

	return nil
}

// Update saves the article's mutable fields. Authorship never changes.
func (repo *articleRepository) Update(ctx context.Context, article *entity.Article) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{ID: article.ID}).
		Select("Title", "Content", "Summary", "Published").
		Updates(fromArticleDomain(article))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// Delete removes an article.
func (repo *articleRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.ArticleModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// Count returns the number of articles, optionally published only.
func (repo *articleRepository) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ArticleModel{})
	if publishedOnly {
		query = query.Where("published = ?", true)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count articles")
	}

	return count, nil
}

// Search is the database fallback for article search: substring
// matching on title, content and summary.
func (repo *articleRepository) Search(ctx context.Context, query string, limit, offset int, publishedOnly bool) ([]*entity.Article, int64, error) {
	pattern := "%" + query + "%"
	base := repo.db.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("title ILIKE ? OR content ILIKE ? OR summary ILIKE ?", pattern, pattern, pattern)
	if publishedOnly {
		base = base.Where("published = ?", true)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count matching articles")
	}

	var articleModels []*model.ArticleModel
	listQuery := base.Preload("Author").Order("created_at DESC")
	if limit > 0 {
		listQuery = listQuery.Limit(limit)
	}
	if offset > 0 {
		listQuery = listQuery.Offset(offset)
	}
	if err := listQuery.Find(&articleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search articles")
	}

	return toArticleDomainSlice(articleModels), total, nil
}

// --- Mapper Functions ---

func toArticleDomain(data *model.ArticleModel) *entity.Article {
	if data == nil {
		return nil
	}

	return &entity.Article{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Summary:   data.Summary,
		Published: data.Published,
		Author:    toUserDomain(data.Author),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toArticleDomainSlice(data []*model.ArticleModel) []*entity.Article {
	articles := make([]*entity.Article, 0, len(data))
	for _, articleM := range data {
		articles = append(articles, toArticleDomain(articleM))
	}

	return articles
}

func fromArticleDomain(data *entity.Article) *model.ArticleModel {
	if data == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:        data.ID,
		AuthorID:  data.AuthorID,
		Title:     data.Title,
		Content:   data.Content,
		Summary:   data.Summary,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
