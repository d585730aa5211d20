package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

type CreditService interface {
	Create(ctx context.Context, req dto.CreateCreditRequest) (*dto.CreditResponse, error)
	List(ctx context.Context) ([]dto.CreditResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCreditRequest) (*dto.CreditResponse, error)
}

type creditService struct {
	repo         repository.CreditRepository
	customerRepo repository.CustomerRepository
}

func NewCreditService(repo repository.CreditRepository, customerRepo repository.CustomerRepository) CreditService {
	return &creditService{repo: repo, customerRepo: customerRepo}
}

func (s *creditService) Create(ctx context.Context, req dto.CreateCreditRequest) (*dto.CreditResponse, error) {
	customerID, err := uuid.Parse(req.Customer)
	if err != nil {
		return nil, err
	}

	credit := model.Credit{
		CustomerID: customerID,
		Amount:     req.Amount,
		Notes:      req.Notes,
	}
	if req.Bill != nil {
		if billID, err := uuid.Parse(*req.Bill); err == nil {
			credit.BillID = &billID
		}
	}
	if req.DueDate != nil {
		credit.DueDate = *req.DueDate
	} else {
		credit.DueDate = time.Now().AddDate(0, 0, creditDueDays)
	}

	if err := s.repo.Create(ctx, &credit); err != nil {
		return nil, err
	}
	return creditToResponse(&credit), nil
}

func (s *creditService) List(ctx context.Context) ([]dto.CreditResponse, error) {
	credits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditResponse, 0, len(credits))
	for i := range credits {
		out = append(out, *creditToResponse(&credits[i]))
	}
	return out, nil
}

// Update settles or reopens a credit, then merges the remaining fields.
// The settlement decision compares the requested isPaid against the stored
// one: false→true stamps paidDate and releases the amount from the customer's
// running total; true→false reverses both. Re-marking an already-paid credit
// is a no-op on the customer. The reversal always uses the amount stored
// BEFORE the merge — an amount change in the same request applies afterwards.
func (s *creditService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCreditRequest) (*dto.CreditResponse, error) {
	credit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.IsPaid != nil && *req.IsPaid != credit.IsPaid {
			if *req.IsPaid {
				now := time.Now()
				credit.IsPaid = true
				credit.PaidDate = &now
				if err := s.customerRepo.AdjustTotalCreditTx(tx, credit.CustomerID, credit.Amount.Neg()); err != nil {
					return err
				}
			} else {
				credit.IsPaid = false
				credit.PaidDate = nil
				if err := s.customerRepo.AdjustTotalCreditTx(tx, credit.CustomerID, credit.Amount); err != nil {
					return err
				}
			}
		}
		if req.Amount != nil {
			credit.Amount = *req.Amount
		}
		if req.DueDate != nil {
			credit.DueDate = *req.DueDate
		}
		if req.Notes != nil {
			credit.Notes = req.Notes
		}
		return s.repo.UpdateTx(tx, credit)
	})
	if txErr != nil {
		return nil, txErr
	}
	return creditToResponse(credit), nil
}

func creditToResponse(c *model.Credit) *dto.CreditResponse {
	resp := dto.CreditResponse{
		ID:        c.ID.String(),
		Amount:    c.Amount,
		DueDate:   c.DueDate.Format(time.RFC3339),
		IsPaid:    c.IsPaid,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
	if c.PaidDate != nil {
		pd := c.PaidDate.Format(time.RFC3339)
		resp.PaidDate = &pd
	}
	if c.Customer != nil {
		resp.Customer = customerToResponse(c.Customer)
	}
	if c.Bill != nil {
		resp.Bill = billToResponse(c.Bill)
	}
	return &resp
}
