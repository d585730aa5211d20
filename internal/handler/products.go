package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/service"
)

const (
	barcodeCachePrefix = "product:barcode:"
	barcodeCacheTTL    = 10 * time.Minute
)

type ProductHandler struct {
	svc       service.ProductService
	rdb       *redis.Client
	uploadDir string
}

func NewProductHandler(svc service.ProductService, rdb *redis.Client, uploadDir string) *ProductHandler {
	return &ProductHandler{svc: svc, rdb: rdb, uploadDir: uploadDir}
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} dto.ProductResponse
// @Router /api/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	imagePath := h.saveImageIfPresent(c)
	resp, err := h.svc.Create(c.Request.Context(), req, imagePath)
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetByBarcode serves the POS scanner price lookup. Responses are cached in
// Redis — scanning the same item repeatedly at the counter must not hit
// Postgres every time.
func (h *ProductHandler) GetByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	key := barcodeCachePrefix + barcode

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, key).Result(); err == nil {
			var resp dto.ProductResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.GetByBarcode(ctx, barcode)
	if err != nil {
		respondError(c, err, "Product")
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, key, data, barcodeCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("barcode", barcode).Msg("failed to cache barcode lookup")
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	// Drop the stale cache entry under the product's current barcode before
	// the update lands
	h.invalidateBarcode(c, id)

	imagePath := h.saveImageIfPresent(c)
	resp, err := h.svc.Update(c.Request.Context(), id, req, imagePath)
	if err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Product")
	if !ok {
		return
	}
	h.invalidateBarcode(c, id)
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *ProductHandler) invalidateBarcode(c *gin.Context, id uuid.UUID) {
	if h.rdb == nil {
		return
	}
	ctx := c.Request.Context()
	p, err := h.svc.GetByID(ctx, id)
	if err != nil || p.Barcode == nil {
		return
	}
	if err := h.rdb.Del(ctx, barcodeCachePrefix+*p.Barcode).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate barcode cache")
	}
}

func (h *ProductHandler) saveImageIfPresent(c *gin.Context) *string {
	file, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	path, err := saveUpload(c, file, h.uploadDir)
	if err != nil {
		log.Warn().Err(err).Msg("failed to save product image")
		return nil
	}
	return &path
}
