package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

type CreditHandler struct {
	svc service.CreditService
}

func NewCreditHandler(svc service.CreditService) *CreditHandler {
	return &CreditHandler{svc: svc}
}

func (h *CreditHandler) Create(c *gin.Context) {
	var req dto.CreateCreditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Credit")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CreditHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Credit")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update settles, reopens or edits a credit record.
func (h *CreditHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Credit")
	if !ok {
		return
	}
	var req dto.UpdateCreditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Credit")
		return
	}
	c.JSON(http.StatusOK, resp)
}
