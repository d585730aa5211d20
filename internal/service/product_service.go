package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/harsh12garg/Kirana-billing-software/internal/dto"
	"github.com/harsh12garg/Kirana-billing-software/internal/model"
	"github.com/harsh12garg/Kirana-billing-software/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest, imagePath *string) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest, imagePath *string) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest, imagePath *string) (*dto.ProductResponse, error) {
	p := model.Product{
		Name:          req.Name,
		Category:      req.Category,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		Stock:         req.Stock,
		Unit:          req.Unit,
		Image:         imagePath,
	}
	if p.Unit == "" {
		p.Unit = "pcs"
	}
	// Empty barcode strings must stay NULL so the sparse unique index holds
	if req.Barcode != nil && *req.Barcode != "" {
		p.Barcode = req.Barcode
	}
	if req.LowStockThreshold != nil {
		p.LowStockThreshold = *req.LowStockThreshold
	} else {
		p.LowStockThreshold = 10
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return ProductToResponse(&p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *ProductToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ProductToResponse(p), nil
}

func (s *productService) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	return ProductToResponse(p), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest, imagePath *string) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.Barcode != nil {
		if *req.Barcode == "" {
			p.Barcode = nil
		} else {
			p.Barcode = req.Barcode
		}
	}
	if req.LowStockThreshold != nil {
		p.LowStockThreshold = *req.LowStockThreshold
	}
	if imagePath != nil {
		p.Image = imagePath
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return ProductToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	// FindByID first so a missing product surfaces as 404, not a silent no-op
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ProductToResponse is exported because the dashboard embeds product payloads
// in its low stock listing.
func ProductToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:                p.ID.String(),
		Name:              p.Name,
		Category:          p.Category,
		PurchasePrice:     p.PurchasePrice,
		SellingPrice:      p.SellingPrice,
		Stock:             p.Stock,
		Unit:              p.Unit,
		Barcode:           p.Barcode,
		Image:             p.Image,
		LowStockThreshold: p.LowStockThreshold,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}
