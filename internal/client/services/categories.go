package services

import (
	"context"
	"net/url"

	"github.com/dvalero/finwallet/internal/client/models"
)

type CategoryService interface {
	// List returns all categories, optionally narrowed by transaction type
	// ("" means no filter).
	List(ctx context.Context, transactionType string) ([]models.Category, error)
	Expense(ctx context.Context) ([]models.Category, error)
	Income(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	api Caller
}

func NewCategoryService(api Caller) CategoryService {
	return &categoryService{api: api}
}

func (s *categoryService) List(ctx context.Context, transactionType string) ([]models.Category, error) {
	var query url.Values
	if transactionType != "" {
		query = url.Values{"transactionType": {transactionType}}
	}

	var categories []models.Category
	if err := s.api.Get(ctx, "/api/Categories", query, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) Expense(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.api.Get(ctx, "/api/Categories/expenses", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) Income(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.api.Get(ctx, "/api/Categories/income", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := s.api.Get(ctx, "/api/Categories/"+url.PathEscape(id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.api.Post(ctx, "/api/Categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.api.Put(ctx, "/api/Categories/"+url.PathEscape(id), req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/Categories/"+url.PathEscape(id))
}
