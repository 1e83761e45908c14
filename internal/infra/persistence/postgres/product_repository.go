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
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// preloadProduct attaches every relation the domain entity exposes.
func preloadProduct(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Brand").
		Preload("Tags").
		Preload("Reviews").
		Preload("Reviews.Reviewer")
}

// FindAll retrieves products ordered by id with pagination.
func (repo *productRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := preloadProduct(repo.db.WithContext(ctx)).Order("products.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	var productM model.ProductModel

	if err := preloadProduct(repo.db.WithContext(ctx)).
		Where("products.id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindByCategoryID retrieves products in the given category with pagination.
func (repo *productRepository) FindByCategoryID(ctx context.Context, categoryID uint, limit, offset int) ([]*entity.Product, error) {
	return repo.findByColumn(ctx, "category_id", categoryID, limit, offset)
}

// FindByBrandID retrieves products of the given brand with pagination.
func (repo *productRepository) FindByBrandID(ctx context.Context, brandID uint, limit, offset int) ([]*entity.Product, error) {
	return repo.findByColumn(ctx, "brand_id", brandID, limit, offset)
}

func (repo *productRepository) findByColumn(ctx context.Context, column string, value uint, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := preloadProduct(repo.db.WithContext(ctx)).
		Where(column+" = ?", value).
		Order("products.id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to find products by %s", column)
	}

	return toProductDomainSlice(productModels), nil
}

// Create persists a new product and its tag associations. The tag rows
// themselves must already exist; callers create them (find-or-create)
// inside the same transaction.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	tagModels, err := repo.tagModelsByName(ctx, product.Tags)
	if err != nil {
		return err
	}
	productM.Tags = tagModels

	if err := repo.db.WithContext(ctx).Omit("Tags.*").Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateSKU.WrapMessage("create product")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update saves the product's scalar fields and replaces its tag set.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select("CategoryID", "BrandID", "SKU", "Title", "Description", "Price",
			"DiscountPercentage", "Rating", "Stock", "MinimumOrderQuantity",
			"Weight", "WarrantyInformation", "ShippingInformation",
			"AvailabilityStatus", "ReturnPolicy", "Barcode", "Thumbnail", "Images").
		Updates(productM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateSKU.WrapMessage("update product")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	tagModels, err := repo.tagModelsByName(ctx, product.Tags)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Association("Tags").
		Replace(tagModels); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace product tags")
	}

	return nil
}

// Delete removes a product together with its reviews and tag
// associations.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.ProductModel{ID: id})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Count returns the total number of products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// CountByCategoryID returns the number of products in a category.
func (repo *productRepository) CountByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

// CountByBrandID returns the number of products of a brand.
func (repo *productRepository) CountByBrandID(ctx context.Context, brandID uint) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("brand_id = ?", brandID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by brand")
	}

	return count, nil
}

// Allowed sort columns for the database fallback path. Anything else
// falls back to created_at.
var fallbackSortColumns = map[string]string{
	search.SortNewest:   "products.created_at",
	search.SortDiscount: "products.discount_percentage",
	"price":             "products.price",
	"rating":            "products.rating",
	"stock":             "products.stock",
	"title":             "products.title",
}

// FilterSearch implements the database fallback for faceted search:
// case-insensitive substring matching instead of fuzzy scoring, with
// the same facet and range semantics as the index query.
func (repo *productRepository) FilterSearch(ctx context.Context, filter search.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Joins("JOIN categories ON categories.id = products.category_id").
		Joins("JOIN brands ON brands.id = products.brand_id")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("products.title ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("categories.name IN ?", filter.Categories)
	}
	if len(filter.Brands) > 0 {
		query = query.Where("brands.name IN ?", filter.Brands)
	}
	if len(filter.Tags) > 0 {
		query = query.Where(
			"EXISTS (SELECT 1 FROM product_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.product_id = products.id AND t.name IN ?)",
			filter.Tags,
		)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("products.rating >= ?", *filter.MinRating)
	}
	if filter.MinDiscount != nil {
		query = query.Where("products.discount_percentage >= ?", *filter.MinDiscount)
	}
	if filter.MaxDiscount != nil {
		query = query.Where("products.discount_percentage <= ?", *filter.MaxDiscount)
	}
	if filter.InStock {
		query = query.Where("products.stock > 0")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count filtered products")
	}

	column, ok := fallbackSortColumns[filter.Sort]
	if !ok {
		column = "products.created_at"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}
	query = query.Order(column + " " + direction)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := preloadProduct(query).Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to filter products")
	}

	return toProductDomainSlice(productModels), total, nil
}

// tagModelsByName resolves tag rows for the given names. All names must
// resolve; a missing row means the caller skipped find-or-create.
func (repo *productRepository) tagModelsByName(ctx context.Context, names []string) ([]*model.TagModel, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var tagModels []*model.TagModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve tags by name")
	}
	if len(tagModels) != len(names) {
		return nil, repository.ErrTagNotFound
	}

	return tagModels, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	tags := make([]string, 0, len(data.Tags))
	for _, tagM := range data.Tags {
		tags = append(tags, tagM.Name)
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return &entity.Product{
		ID:                   data.ID,
		CategoryID:           data.CategoryID,
		BrandID:              data.BrandID,
		SKU:                  data.SKU,
		Title:                data.Title,
		Description:          data.Description,
		Price:                data.Price,
		DiscountPercentage:   data.DiscountPercentage,
		Rating:               data.Rating,
		Stock:                data.Stock,
		MinimumOrderQuantity: data.MinimumOrderQuantity,
		Weight:               data.Weight,
		WarrantyInformation:  data.WarrantyInformation,
		ShippingInformation:  data.ShippingInformation,
		AvailabilityStatus:   data.AvailabilityStatus,
		ReturnPolicy:         data.ReturnPolicy,
		Barcode:              data.Barcode,
		Thumbnail:            data.Thumbnail,
		Images:               data.Images,
		Tags:                 tags,
		Category:             toCategoryDomain(data.Category),
		Brand:                toBrandDomain(data.Brand),
		Reviews:              reviews,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM
// ProductModel. Tag associations are resolved separately.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                   data.ID,
		CategoryID:           data.CategoryID,
		BrandID:              data.BrandID,
		SKU:                  data.SKU,
		Title:                data.Title,
		Description:          data.Description,
		Price:                data.Price,
		DiscountPercentage:   data.DiscountPercentage,
		Rating:               data.Rating,
		Stock:                data.Stock,
		MinimumOrderQuantity: data.MinimumOrderQuantity,
		Weight:               data.Weight,
		WarrantyInformation:  data.WarrantyInformation,
		ShippingInformation:  data.ShippingInformation,
		AvailabilityStatus:   data.AvailabilityStatus,
		ReturnPolicy:         data.ReturnPolicy,
		Barcode:              data.Barcode,
		Thumbnail:            data.Thumbnail,
		Images:               data.Images,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
