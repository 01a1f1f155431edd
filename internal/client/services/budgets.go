package services

import (
	"context"
	"net/url"

	"github.com/dvalero/finwallet/internal/client/models"
)

type BudgetService interface {
	List(ctx context.Context) ([]models.Budget, error)
	Create(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error)
	Update(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error)
	Delete(ctx context.Context, id string) error
	SavingsGoals(ctx context.Context) ([]models.SavingsGoal, error)
}

type budgetService struct {
	api Caller
}

func NewBudgetService(api Caller) BudgetService {
	return &budgetService{api: api}
}

func (s *budgetService) List(ctx context.Context) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := s.api.Get(ctx, "/api/Budgets", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) Create(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	var budget models.Budget
	if err := s.api.Post(ctx, "/api/Budgets", req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *budgetService) Update(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	var budget models.Budget
	if err := s.api.Put(ctx, "/api/Budgets/"+url.PathEscape(id), req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *budgetService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/Budgets/"+url.PathEscape(id))
}

func (s *budgetService) SavingsGoals(ctx context.Context) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.api.Get(ctx, "/api/SavingsGoals", nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}
