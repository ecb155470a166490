package handlers

import (
	"net/http"

	"ecommerce/internal/domain/models"
	"ecommerce/internal/repositories"
	"ecommerce/internal/services"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	Products services.ProductService
	ErrorResponder
}

// GetProducts handles GET /api/products.
func (h ProductHandler) GetProducts(c *gin.Context) {
	s := querySchema(c)
	filter := productFilterSchema(s)
	params := paginationSchema(s, repositories.ProductSorts)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	page, err := h.Products.List(storeCtx(c), filter, params)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondPage(c, page)
}

func (h ProductHandler) GetFeatured(c *gin.Context) {
	s := querySchema(c)
	limit := featuredSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	items, err := h.Products.Featured(storeCtx(c), limit)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, items, "")
}

func (h ProductHandler) GetCategories(c *gin.Context) {
	items, err := h.Products.Categories(storeCtx(c))
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	respondOK(c, http.StatusOK, items, "")
}

func (h ProductHandler) GetBrands(c *gin.Context) {
	items, err := h.Products.Brands(storeCtx(c))
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	if items == nil {
		items = []string{}
	}
	respondOK(c, http.StatusOK, items, "")
}

// GetBySKU handles GET /api/products/sku/:sku.
func (h ProductHandler) GetBySKU(c *gin.Context) {
	s := paramSchema(c)
	sku := s.String("sku").Trim().Required("SKU es requerido").Value()
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	p, err := h.Products.GetBySKU(storeCtx(c), sku)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, p, "")
}

// GetByCategory handles GET /api/products/category/:category. Only active
// products are listed and pagination is validated strictly.
func (h ProductHandler) GetByCategory(c *gin.Context) {
	ps := paramSchema(c)
	category := ps.String("category").Trim().Required("Categoría es requerida").Value()
	if err := ps.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}
	qs := querySchema(c)
	params := paginationSchema(qs, repositories.ProductSorts)
	if err := qs.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	page, err := h.Products.ListByCategory(storeCtx(c), category, params)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondPage(c, page)
}

// CheckStock handles GET /api/products/:id/stock/:quantity.
func (h ProductHandler) CheckStock(c *gin.Context) {
	s := paramSchema(c)
	in := stockCheckSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	res, err := h.Products.CheckStock(storeCtx(c), in.ID, in.Quantity)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, res, "")
}

func (h ProductHandler) GetProductByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	p, err := h.Products.Get(storeCtx(c), id)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, p, "")
}

func (h ProductHandler) CreateProduct(c *gin.Context) {
	s, err := bodySchema(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	in := createProductSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	p, err := h.Products.Create(storeCtx(c), in)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, p, "Producto creado exitosamente")
}

func (h ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	s, err := bodySchema(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	upd := updateProductSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	p, err := h.Products.Update(storeCtx(c), id, upd)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, p, "Producto actualizado exitosamente")
}

// UpdateStock handles PATCH /api/products/:id/stock.
func (h ProductHandler) UpdateStock(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	s, err := bodySchema(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	in := updateStockSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	p, err := h.Products.UpdateStock(storeCtx(c), id, in.Operation, in.Quantity)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, p, stockMessage(in.Operation))
}

func stockMessage(op models.StockOperation) string {
	switch op {
	case models.StockIncrement:
		return "Stock incrementado exitosamente"
	case models.StockDecrement:
		return "Stock reducido exitosamente"
	default:
		return "Stock actualizado exitosamente"
	}
}

// DeleteProduct soft-deletes the product.
func (h ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	if err := h.Products.Delete(storeCtx(c), id); err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Producto eliminado exitosamente")
}
