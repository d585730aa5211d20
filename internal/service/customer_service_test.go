package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
)

func TestCustomerGetDetail(t *testing.T) {
	customerRepo := newStubCustomerRepo()
	billRepo := newStubBillRepo()
	creditRepo := newStubCreditRepo()
	svc := NewCustomerService(customerRepo, billRepo, creditRepo)

	cust := &model.Customer{ID: uuid.New(), Name: "Lakshmi", Phone: "9811111111"}
	customerRepo.customers[cust.ID] = cust

	bill := &model.Bill{
		ID:          uuid.New(),
		BillNumber:  "BILL000007",
		Customer:    model.BillCustomer{Name: cust.Name, Phone: cust.Phone, CustomerID: &cust.ID},
		FinalAmount: decimal.NewFromFloat(420),
	}
	billRepo.bills[bill.ID] = bill

	credit := &model.Credit{ID: uuid.New(), CustomerID: cust.ID, Amount: decimal.NewFromFloat(420)}
	creditRepo.credits[credit.ID] = credit

	// A bill belonging to someone else must not leak into the history
	other := &model.Bill{ID: uuid.New(), BillNumber: "BILL000008"}
	billRepo.bills[other.ID] = other

	detail, err := svc.GetDetail(context.Background(), cust.ID)
	require.NoError(t, err)

	assert.Equal(t, "Lakshmi", detail.Customer.Name)
	require.Len(t, detail.Bills, 1)
	assert.Equal(t, "BILL000007", detail.Bills[0].BillNumber)
	require.Len(t, detail.Credits, 1)
}

func TestCustomerGetDetail_NotFound(t *testing.T) {
	svc := NewCustomerService(newStubCustomerRepo(), newStubBillRepo(), newStubCreditRepo())
	_, err := svc.GetDetail(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCustomerUpdate_PartialMerge(t *testing.T) {
	customerRepo := newStubCustomerRepo()
	svc := NewCustomerService(customerRepo, newStubBillRepo(), newStubCreditRepo())

	cust := &model.Customer{ID: uuid.New(), Name: "Raju", Phone: "9822222222"}
	customerRepo.customers[cust.ID] = cust

	addr := "12 Market Road"
	resp, err := svc.Update(context.Background(), cust.ID, dto.UpdateCustomerRequest{Address: &addr})
	require.NoError(t, err)

	assert.Equal(t, "Raju", resp.Name)
	require.NotNil(t, resp.Address)
	assert.Equal(t, addr, *resp.Address)
}
