// Command seed loads a products JSON fixture into the database and
// bulk-indexes the result. It is safe to run repeatedly: products are
// matched by SKU, users by email, reviews by (product, reviewer,
// comment).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/errors"
	logs "catalog/internal/infra/log"
	"catalog/internal/infra/persistence/postgres"
	"catalog/internal/infra/search"
	"catalog/internal/infra/search/sync"

	"go.uber.org/fx"
)

type fixtureReview struct {
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	Date          time.Time `json:"date"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
}

type fixtureMeta struct {
	Barcode string `json:"barcode"`
}

type fixtureProduct struct {
	SKU                  string          `json:"sku"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Category             string          `json:"category"`
	Brand                string          `json:"brand"`
	Tags                 []string        `json:"tags"`
	Price                float64         `json:"price"`
	DiscountPercentage   float64         `json:"discountPercentage"`
	Rating               float64         `json:"rating"`
	Stock                int             `json:"stock"`
	MinimumOrderQuantity int             `json:"minimumOrderQuantity"`
	Weight               float64         `json:"weight"`
	WarrantyInformation  string          `json:"warrantyInformation"`
	ShippingInformation  string          `json:"shippingInformation"`
	AvailabilityStatus   string          `json:"availabilityStatus"`
	ReturnPolicy         string          `json:"returnPolicy"`
	Meta                 fixtureMeta     `json:"meta"`
	Thumbnail            string          `json:"thumbnail"`
	Images               []string        `json:"images"`
	Reviews              []fixtureReview `json:"reviews"`
}

type fixture struct {
	Products []fixtureProduct `json:"products"`
}

type seederParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	TagRepo      repository.TagRepository
	ReviewRepo   repository.ReviewRepository
	UserRepo     repository.UserRepository
	Reindexer    service.ProductReindexer
	Shutdowner   fx.Shutdowner
}

func main() {
	fixturePath := flag.String("fixture", "testdata/products.json", "path to the products JSON fixture")
	flag.Parse()

	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			search.New,
			search.NewProductIndex,
			func(ix *search.ProductIndex) sync.ProductIndexer { return ix },
		),
		fx.Provide(
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewBrandRepository,
			postgres.NewTagRepository,
			postgres.NewReviewRepository,
			postgres.NewUserRepository,
			sync.NewProductReindexer,
		),
		fx.Invoke(func(ctx context.Context, params seederParams) {
			code := 0
			if err := run(ctx, *fixturePath, params); err != nil {
				params.Logger.Error("Seed failed", slog.Any("error", err))
				code = 1
			}

			params.Shutdowner.Shutdown(fx.ExitCode(code))
		}),
	).Run()
}

func run(ctx context.Context, fixturePath string, params seederParams) error {
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return errors.Wrap(err, "failed to read fixture")
	}

	var fix fixture
	if err := json.Unmarshal(data, &fix); err != nil {
		return errors.Wrap(err, "failed to parse fixture")
	}

	seeder := &seeder{params: params}
	for i := range fix.Products {
		if err := seeder.seedProduct(ctx, &fix.Products[i]); err != nil {
			return errors.Wrapf(err, "failed to seed product %q", fix.Products[i].SKU)
		}
	}

	indexed, failed, err := params.Reindexer.Reindex(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to reindex")
	}

	params.Logger.Info("Seed completed",
		slog.Int("products", len(fix.Products)),
		slog.Int("indexed", indexed),
		slog.Int("failed", failed))

	return nil
}

type seeder struct {
	params seederParams
}

func (s *seeder) seedProduct(ctx context.Context, fp *fixtureProduct) error {
	category, err := s.params.CategoryRepo.FindOrCreate(ctx, fp.Category)
	if err != nil {
		return err
	}

	brand, err := s.params.BrandRepo.FindOrCreate(ctx, fp.Brand)
	if err != nil {
		return err
	}

	for _, tag := range fp.Tags {
		if _, err := s.params.TagRepo.FindOrCreate(ctx, tag); err != nil {
			return err
		}
	}

	product := &entity.Product{
		CategoryID:           category.ID,
		BrandID:              brand.ID,
		SKU:                  fp.SKU,
		Title:                fp.Title,
		Description:          fp.Description,
		Price:                fp.Price,
		DiscountPercentage:   fp.DiscountPercentage,
		Rating:               fp.Rating,
		Stock:                fp.Stock,
		MinimumOrderQuantity: fp.MinimumOrderQuantity,
		Weight:               fp.Weight,
		WarrantyInformation:  fp.WarrantyInformation,
		ShippingInformation:  fp.ShippingInformation,
		AvailabilityStatus:   fp.AvailabilityStatus,
		ReturnPolicy:         fp.ReturnPolicy,
		Barcode:              fp.Meta.Barcode,
		Thumbnail:            fp.Thumbnail,
		Images:               fp.Images,
		Tags:                 fp.Tags,
	}

	if err := s.params.ProductRepo.Create(ctx, product); err != nil {
		if !errors.Is(err, domainerrors.ErrDuplicateSKU) {
			return err
		}

		s.params.Logger.Info("Product already seeded", slog.String("sku", fp.SKU))

		return nil
	}

	return s.seedReviews(ctx, product.ID, fp.Reviews)
}

func (s *seeder) seedReviews(ctx context.Context, productID uint, reviews []fixtureReview) error {
	var batch []*entity.Review
	for _, fr := range reviews {
		reviewer, err := s.reviewerByEmail(ctx, fr.ReviewerEmail, fr.ReviewerName)
		if err != nil {
			return err
		}

		exists, err := s.params.ReviewRepo.Exists(ctx, productID, reviewer.ID, fr.Comment)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		batch = append(batch, &entity.Review{
			ProductID:  productID,
			ReviewerID: reviewer.ID,
			Rating:     fr.Rating,
			Comment:    fr.Comment,
			Date:       fr.Date,
		})
	}

	if len(batch) == 0 {
		return nil
	}

	return s.params.ReviewRepo.CreateBatch(ctx, batch)
}

func (s *seeder) reviewerByEmail(ctx context.Context, email, name string) (*entity.User, error) {
	user, err := s.params.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	user = &entity.User{Email: email, Name: name}
	if err := s.params.UserRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
