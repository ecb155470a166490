package models

import "time"

// Dimensions are optional per axis; a nil axis was never set.
type Dimensions struct {
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

func (d *Dimensions) IsZero() bool {
	return d == nil || (d.Length == nil && d.Width == nil && d.Height == nil)
}

type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       float64
	Stock       int
	SKU         string
	Category    string
	Brand       *string
	Images      []string
	IsActive    bool
	IsFeatured  bool
	Weight      *float64
	Dimensions  *Dimensions
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductResponse is the JSON shape of a product.
type ProductResponse struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	SKU         string      `json:"sku"`
	Category    string      `json:"category"`
	Brand       *string     `json:"brand,omitempty"`
	Images      []string    `json:"images"`
	IsActive    bool        `json:"isActive"`
	IsFeatured  bool        `json:"isFeatured"`
	Weight      *float64    `json:"weight,omitempty"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`
	Tags        []string    `json:"tags"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func (p Product) ToResponse() ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	dims := p.Dimensions
	if dims.IsZero() {
		dims = nil
	}
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SKU:         p.SKU,
		Category:    p.Category,
		Brand:       p.Brand,
		Images:      images,
		IsActive:    p.IsActive,
		IsFeatured:  p.IsFeatured,
		Weight:      p.Weight,
		Dimensions:  dims,
		Tags:        tags,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

// ProductUpdate supports partial updates via pointer presence.
// Images, Tags and Dimensions replace the stored value when non-nil.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	SKU         *string
	Category    *string
	Brand       *string
	Images      *[]string
	IsActive    *bool
	IsFeatured  *bool
	Weight      *float64
	Dimensions  *Dimensions
	Tags        *[]string
}

// ProductFilter is the validated filter part of a product list query.
type ProductFilter struct {
	Category   *string
	Brand      *string
	MinPrice   *float64
	MaxPrice   *float64
	IsActive   *bool
	IsFeatured *bool
	Search     string
}

// StockOperation selects how PATCH /stock applies its quantity.
type StockOperation string

const (
	StockSet       StockOperation = "set"
	StockIncrement StockOperation = "increment"
	StockDecrement StockOperation = "decrement"
)

// StockCheck answers whether a quantity can be served.
type StockCheck struct {
	ProductID int64 `json:"productId"`
	Requested int   `json:"requested"`
	Available int   `json:"available"`
	InStock   bool  `json:"inStock"`
}
