package services

import (
	"context"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"
	"ecommerce/internal/repositories"
	"ecommerce/internal/utils"
)

// ProductStore is the persistence surface ProductService needs.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (models.Product, error)
	GetBySKU(ctx context.Context, sku string) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.Product], error)
	Featured(ctx context.Context, limit int) ([]models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Brands(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id int64, upd models.ProductUpdate) (models.Product, error)
	UpdateStock(ctx context.Context, id int64, op models.StockOperation, qty int) (models.Product, error)
	Deactivate(ctx context.Context, id int64) error
}

type ProductService struct {
	Products ProductStore
}

func toResponses(items []models.Product) []models.ProductResponse {
	out := make([]models.ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, p.ToResponse())
	}
	return out
}

func (s ProductService) Create(ctx context.Context, p models.Product) (models.ProductResponse, error) {
	p.IsActive = true
	created, err := s.Products.Create(ctx, p)
	if err != nil {
		return models.ProductResponse{}, err
	}
	utils.LogEvent(ctx, "product", "create", "product created", "product_id", created.ID, "sku", created.SKU)
	return created.ToResponse(), nil
}

func (s ProductService) Get(ctx context.Context, id int64) (models.ProductResponse, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return models.ProductResponse{}, err
	}
	return p.ToResponse(), nil
}

func (s ProductService) GetBySKU(ctx context.Context, sku string) (models.ProductResponse, error) {
	p, err := s.Products.GetBySKU(ctx, sku)
	if err != nil {
		return models.ProductResponse{}, err
	}
	return p.ToResponse(), nil
}

// List pages through products matching f. Without an explicit isActive filter
// only active products are listed.
func (s ProductService) List(ctx context.Context, f models.ProductFilter, p domain.PageParams) (domain.Page[models.ProductResponse], error) {
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	page, err := s.Products.List(ctx, repositories.ProductPredicate(f), p)
	if err != nil {
		return domain.Page[models.ProductResponse]{}, err
	}
	return domain.MapPage(page, models.Product.ToResponse), nil
}

// ListByCategory pages through the active products of one category.
func (s ProductService) ListByCategory(ctx context.Context, category string, p domain.PageParams) (domain.Page[models.ProductResponse], error) {
	return s.List(ctx, models.ProductFilter{Category: &category}, p)
}

func (s ProductService) Featured(ctx context.Context, limit int) ([]models.ProductResponse, error) {
	items, err := s.Products.Featured(ctx, domain.PageParams{Limit: limit}.Normalize().Limit)
	if err != nil {
		return nil, err
	}
	return toResponses(items), nil
}

func (s ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.Products.Categories(ctx)
}

func (s ProductService) Brands(ctx context.Context) ([]string, error) {
	return s.Products.Brands(ctx)
}

func (s ProductService) Update(ctx context.Context, id int64, upd models.ProductUpdate) (models.ProductResponse, error) {
	p, err := s.Products.Update(ctx, id, upd)
	if err != nil {
		return models.ProductResponse{}, err
	}
	utils.LogEvent(ctx, "product", "update", "product updated", "product_id", id)
	return p.ToResponse(), nil
}

func (s ProductService) UpdateStock(ctx context.Context, id int64, op models.StockOperation, qty int) (models.ProductResponse, error) {
	p, err := s.Products.UpdateStock(ctx, id, op, qty)
	if err != nil {
		return models.ProductResponse{}, err
	}
	utils.LogEvent(ctx, "product", "update_stock", "stock updated", "product_id", id, "operation", string(op), "quantity", qty, "stock", p.Stock)
	return p.ToResponse(), nil
}

// Delete soft-deletes the product.
func (s ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.Products.Deactivate(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(ctx, "product", "delete", "product deactivated", "product_id", id)
	return nil
}

// CheckStock reports whether quantity units can be served. Inactive products are never in stock.
func (s ProductService) CheckStock(ctx context.Context, id int64, quantity int) (models.StockCheck, error) {
	p, err := s.Products.GetByID(ctx, id)
	if err != nil {
		return models.StockCheck{}, err
	}
	return models.StockCheck{
		ProductID: p.ID,
		Requested: quantity,
		Available: p.Stock,
		InStock:   p.IsActive && p.Stock >= quantity,
	}, nil
}
