package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-api/internal/apperror"
	"storefront-api/internal/dto"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"
)

// CatalogService exposes the product catalog: read-only to shoppers,
// mutable by admins only.
type CatalogService interface {
	List(ctx context.Context) ([]*model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Add(ctx context.Context, addedBy string, req *dto.ProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{productRepo: productRepo}
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product")
		}
		return nil, err
	}

	return product, nil
}

func validateProduct(req *dto.ProductRequest) error {
	errs := map[string]string{}
	if len(strings.TrimSpace(req.Name)) < 3 {
		errs["name"] = "product name must be at least 3 characters"
	}
	if req.Price <= 0 {
		errs["price"] = "price must be a positive number"
	}
	if !model.Category(req.Category).Valid() {
		errs["category"] = "unknown category"
	}
	if strings.TrimSpace(req.Description) == "" {
		errs["description"] = "description is required"
	}
	if strings.TrimSpace(req.Image) == "" {
		errs["image"] = "image is required"
	}
	return apperror.FieldErrors(errs)
}

func (s *catalogServiceImpl) Add(ctx context.Context, addedBy string, req *dto.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ID:          "product-" + uuid.NewString(),
		Name:        req.Name,
		Price:       req.Price,
		Category:    model.Category(req.Category),
		Description: req.Description,
		Image:       req.Image,
		AddedBy:     addedBy,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("store product: %w", err)
	}

	return product, nil
}

func (s *catalogServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("product")
		}
		return err
	}

	return nil
}
