package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/search"
	"catalog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindAll retrieves categories ordered by name with pagination.
func (repo *categoryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindByID retrieves a category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindByName retrieves a category by its unique name.
func (repo *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindOrCreate returns the named category, creating it when absent.
// The check and the insert are separate statements; when a concurrent
// writer wins the race, the unique violation triggers a single re-read.
func (repo *categoryRepository) FindOrCreate(ctx context.Context, name string) (*entity.Category, error) {
	category, err := repo.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, err
	}

	categoryM := &model.CategoryModel{Name: name}
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindByName(ctx, name)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return toCategoryDomain(categoryM), nil
}

// Count returns the total number of categories.
func (repo *categoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CategoryModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count categories")
	}

	return count, nil
}

// Suggest is the autosuggest database fallback: substring matching on
// the category name, ordered by product count.
func (repo *categoryRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	var suggestions []search.Suggestion

	if err := repo.db.WithContext(ctx).
		Table("categories").
		Select("categories.name AS text, COUNT(products.id) AS count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Where("categories.name ILIKE ?", "%"+query+"%").
		Group("categories.name").
		Order("count DESC, categories.name ASC").
		Limit(limit).
		Scan(&suggestions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest categories")
	}

	return suggestions, nil
}

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// FindAll retrieves brands ordered by name with pagination.
func (repo *brandRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel

	query := repo.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindByID retrieves a brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uint) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return toBrandDomain(&brandM), nil
}

// FindByName retrieves a brand by its unique name.
func (repo *brandRepository) FindByName(ctx context.Context, name string) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by name")
	}

	return toBrandDomain(&brandM), nil
}

// FindOrCreate returns the named brand, creating it when absent, with
// the same race handling as categories.
func (repo *brandRepository) FindOrCreate(ctx context.Context, name string) (*entity.Brand, error) {
	brand, err := repo.FindByName(ctx, name)
	if err == nil {
		return brand, nil
	}
	if !errors.Is(err, repository.ErrBrandNotFound) {
		return nil, err
	}

	brandM := &model.BrandModel{Name: name}
	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindByName(ctx, name)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	return toBrandDomain(brandM), nil
}

// Count returns the total number of brands.
func (repo *brandRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.BrandModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count brands")
	}

	return count, nil
}

// Suggest is the autosuggest database fallback for brands.
func (repo *brandRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	var suggestions []search.Suggestion

	if err := repo.db.WithContext(ctx).
		Table("brands").
		Select("brands.name AS text, COUNT(products.id) AS count").
		Joins("LEFT JOIN products ON products.brand_id = brands.id").
		Where("brands.name ILIKE ?", "%"+query+"%").
		Group("brands.name").
		Order("count DESC, brands.name ASC").
		Limit(limit).
		Scan(&suggestions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest brands")
	}

	return suggestions, nil
}

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// FindByName retrieves a tag by its unique name.
func (repo *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagM model.TagModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return toTagDomain(&tagM), nil
}

// FindOrCreate returns the named tag, creating it when absent, with the
// same race handling as categories.
func (repo *tagRepository) FindOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	tag, err := repo.FindByName(ctx, name)
	if err == nil {
		return tag, nil
	}
	if !errors.Is(err, repository.ErrTagNotFound) {
		return nil, err
	}

	tagM := &model.TagModel{Name: name}
	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.FindByName(ctx, name)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	return toTagDomain(tagM), nil
}

// FindWithProductCount lists every tag with its product count, most
// used first.
func (repo *tagRepository) FindWithProductCount(ctx context.Context) ([]search.Suggestion, error) {
	var suggestions []search.Suggestion

	if err := repo.db.WithContext(ctx).
		Table("tags").
		Select("tags.name AS text, COUNT(pt.product_id) AS count").
		Joins("LEFT JOIN product_tags pt ON pt.tag_id = tags.id").
		Group("tags.name").
		Order("count DESC, tags.name ASC").
		Scan(&suggestions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count products per tag")
	}

	return suggestions, nil
}

// Suggest is the autosuggest database fallback for tags.
func (repo *tagRepository) Suggest(ctx context.Context, query string, limit int) ([]search.Suggestion, error) {
	var suggestions []search.Suggestion

	if err := repo.db.WithContext(ctx).
		Table("tags").
		Select("tags.name AS text, COUNT(pt.product_id) AS count").
		Joins("LEFT JOIN product_tags pt ON pt.tag_id = tags.id").
		Where("tags.name ILIKE ?", "%"+query+"%").
		Group("tags.name").
		Order("count DESC, tags.name ASC").
		Limit(limit).
		Scan(&suggestions).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest tags")
	}

	return suggestions, nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:   data.ID,
		Name: data.Name,
	}
}

func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:   data.ID,
		Name: data.Name,
	}
}
