package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dvalero/finwallet/internal/client/models"
)

type AccountService interface {
	List(ctx context.Context, activeOnly bool) ([]models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error)
	Update(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (*models.AccountSummary, error)
	Transfer(ctx context.Context, req models.TransferRequest) error
}

type accountService struct {
	api Caller
}

func NewAccountService(api Caller) AccountService {
	return &accountService{api: api}
}

func (s *accountService) List(ctx context.Context, activeOnly bool) ([]models.Account, error) {
	query := url.Values{"activeOnly": {strconv.FormatBool(activeOnly)}}

	var accounts []models.Account
	if err := s.api.Get(ctx, "/api/Accounts", query, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) Get(ctx context.Context, id string) (*models.Account, error) {
	var account models.Account
	if err := s.api.Get(ctx, "/api/Accounts/"+url.PathEscape(id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) Create(ctx context.Context, req models.CreateAccountRequest) (*models.Account, error) {
	var account models.Account
	if err := s.api.Post(ctx, "/api/Accounts", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) Update(ctx context.Context, id string, req models.UpdateAccountRequest) (*models.Account, error) {
	var account models.Account
	if err := s.api.Put(ctx, "/api/Accounts/"+url.PathEscape(id), req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/api/Accounts/"+url.PathEscape(id))
}

func (s *accountService) Summary(ctx context.Context) (*models.AccountSummary, error) {
	var summary models.AccountSummary
	if err := s.api.Get(ctx, "/api/Accounts/summary", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *accountService) Transfer(ctx context.Context, req models.TransferRequest) error {
	return s.api.Post(ctx, "/api/Accounts/transfer", req, nil)
}
