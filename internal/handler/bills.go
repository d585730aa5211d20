package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/harsh12garg/Kirana-billing-software/internal/apierror"
	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

type BillHandler struct {
	svc service.BillService
}

func NewBillHandler(svc service.BillService) *BillHandler {
	return &BillHandler{svc: svc}
}

// Create godoc
// @Summary Record a sale
// @Description Creates the bill, decrements stock, upserts the customer and
// @Description opens a credit record for credit sales — all atomically.
// @Tags bills
// @Accept json
// @Produce json
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BillHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Bill")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "Bill")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Bill")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Receipt streams the bill's PDF receipt.
func (h *BillHandler) Receipt(c *gin.Context) {
	id, ok := parseIDParam(c, "Bill")
	if !ok {
		return
	}
	path, err := h.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Bill")
		return
	}
	c.Header("Content-Disposition", "inline; filename="+filepath.Base(path))
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
