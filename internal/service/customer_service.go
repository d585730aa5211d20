package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

type CustomerService interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	List(ctx context.Context) ([]dto.CustomerResponse, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*dto.CustomerDetailResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error)
}

type customerService struct {
	repo       repository.CustomerRepository
	billRepo   repository.BillRepository
	creditRepo repository.CreditRepository
}

func NewCustomerService(
	repo repository.CustomerRepository,
	billRepo repository.BillRepository,
	creditRepo repository.CreditRepository,
) CustomerService {
	return &customerService{repo: repo, billRepo: billRepo, creditRepo: creditRepo}
}

func (s *customerService) Create(ctx context.Context, req dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	c := model.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return customerToResponse(&c), nil
}

func (s *customerService) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, *customerToResponse(&customers[i]))
	}
	return out, nil
}

// GetDetail returns the customer together with their full bill and credit
// history, newest first.
func (s *customerService) GetDetail(ctx context.Context, id uuid.UUID) (*dto.CustomerDetailResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	bills, err := s.billRepo.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}
	credits, err := s.creditRepo.FindByCustomerID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := dto.CustomerDetailResponse{
		Customer: *customerToResponse(c),
		Bills:    make([]dto.BillResponse, 0, len(bills)),
		Credits:  make([]dto.CreditResponse, 0, len(credits)),
	}
	for i := range bills {
		detail.Bills = append(detail.Bills, *billToResponse(&bills[i]))
	}
	for i := range credits {
		detail.Credits = append(detail.Credits, *creditToResponse(&credits[i]))
	}
	return &detail, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return customerToResponse(c), nil
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:             c.ID.String(),
		Name:           c.Name,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		TotalPurchases: c.TotalPurchases,
		TotalCredit:    c.TotalCredit,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
}
