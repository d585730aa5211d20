package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CustomerHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetDetail returns the customer plus their bill and credit history.
func (h *CustomerHandler) GetDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "Customer")
	if !ok {
		return
	}
	resp, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Customer")
	if !ok {
		return
	}
	var req dto.UpdateCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Customer")
		return
	}
	c.JSON(http.StatusOK, resp)
}
