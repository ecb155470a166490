package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	intdb "ecommerce/internal/db"
	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"
)

const productColumns = `id, name, description, price, stock, sku, category, brand, images, is_active, is_featured, weight, dimensions, tags, created_at, updated_at`

// ProductSorts whitelists the sortBy keys accepted by product listings.
var ProductSorts = query.NewSorts(map[string]string{
	"id":        "id",
	"name":      "name",
	"price":     "price",
	"stock":     "stock",
	"category":  "category",
	"brand":     "brand",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
})

var productListing = query.Listing{
	Entity:  "product",
	Table:   "products",
	Columns: productColumns,
	Sorts:   ProductSorts,
}

func skuTaken(err error) error {
	return domain.ConflictError{Resource: "product", Msg: "El SKU ya existe", Err: err}
}

type ProductRepository struct {
	DB *sql.DB
}

// ProductPredicate maps a validated product filter to a store predicate.
// Search matches name and description.
func ProductPredicate(f models.ProductFilter) query.Predicate {
	return query.NewBuilder().
		Equal("category", f.Category).
		Equal("brand", f.Brand).
		Range("price", f.MinPrice, f.MaxPrice).
		Flag("is_active", f.IsActive).
		Flag("is_featured", f.IsFeatured).
		Search(f.Search, "name", "description").
		Build()
}

func scanProduct(s query.Scanner) (models.Product, error) {
	var (
		p           models.Product
		description sql.NullString
		brand       sql.NullString
		images      sql.NullString
		weight      sql.NullFloat64
		dimensions  sql.NullString
		tags        sql.NullString
	)
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&description,
		&p.Price,
		&p.Stock,
		&p.SKU,
		&p.Category,
		&brand,
		&images,
		&p.IsActive,
		&p.IsFeatured,
		&weight,
		&dimensions,
		&tags,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return models.Product{}, err
	}
	p.Description = intdb.StringPtr(description)
	p.Brand = intdb.StringPtr(brand)
	p.Weight = intdb.FloatPtr(weight)

	if err := intdb.ScanJSON(images, &p.Images); err != nil {
		return models.Product{}, err
	}
	if err := intdb.ScanJSON(tags, &p.Tags); err != nil {
		return models.Product{}, err
	}
	var dims models.Dimensions
	if err := intdb.ScanJSON(dimensions, &dims); err != nil {
		return models.Product{}, err
	}
	if !dims.IsZero() {
		p.Dimensions = &dims
	}
	return p, nil
}

func (r ProductRepository) getOne(ctx context.Context, op, where string, arg any) (models.Product, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE `+where+` LIMIT 1`, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, domain.NotFoundError{Resource: "Producto", Err: err}
		}
		return models.Product{}, domain.StoreError{Entity: "product", Operation: op, Err: err}
	}
	return p, nil
}

// GetByID returns the product regardless of its active flag.
func (r ProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	return r.getOne(ctx, "get", "id = ?", id)
}

func (r ProductRepository) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	return r.getOne(ctx, "get_by_sku", "sku = ?", sku)
}

func jsonArgs(p models.Product) (images, dims, tags any, err error) {
	if images, err = intdb.JSONValue(nonNilStrings(p.Images)); err != nil {
		return nil, nil, nil, err
	}
	if !p.Dimensions.IsZero() {
		if dims, err = intdb.JSONValue(p.Dimensions); err != nil {
			return nil, nil, nil, err
		}
	}
	if tags, err = intdb.JSONValue(nonNilStrings(p.Tags)); err != nil {
		return nil, nil, nil, err
	}
	return images, dims, tags, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r ProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	images, dims, tags, err := jsonArgs(p)
	if err != nil {
		return models.Product{}, domain.InternalError{Msg: "encode product", Err: err}
	}

	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO products (name, description, price, stock, sku, category, brand, images, is_active, is_featured, weight, dimensions, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name,
		intdb.NullIfEmpty(p.Description),
		p.Price,
		p.Stock,
		p.SKU,
		p.Category,
		intdb.NullIfEmpty(p.Brand),
		images,
		p.IsActive,
		p.IsFeatured,
		intdb.NullFloat(p.Weight),
		dims,
		tags,
	)
	if err != nil {
		if intdb.IsDuplicateKey(err, "") {
			return models.Product{}, skuTaken(err)
		}
		return models.Product{}, domain.StoreError{Entity: "product", Operation: "create", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Product{}, domain.StoreError{Entity: "product", Operation: "create", Err: err}
	}
	return r.GetByID(ctx, id)
}

func (r ProductRepository) List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.Product], error) {
	return query.Paginate(ctx, r.DB, productListing, pred, p, scanProduct)
}

// Featured returns active featured products, newest first.
func (r ProductRepository) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+productColumns+` FROM products
		WHERE is_active = 1 AND is_featured = 1
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, domain.StoreError{Entity: "product", Operation: "featured", Err: err}
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, domain.StoreError{Entity: "product", Operation: "featured", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Entity: "product", Operation: "featured", Err: err}
	}
	return out, nil
}

func (r ProductRepository) distinct(ctx context.Context, op, q string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.StoreError{Entity: "product", Operation: op, Err: err}
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, domain.StoreError{Entity: "product", Operation: op, Err: err}
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StoreError{Entity: "product", Operation: op, Err: err}
	}
	return out, nil
}

// Categories lists the distinct categories of active products.
func (r ProductRepository) Categories(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "categories", `SELECT DISTINCT category FROM products WHERE is_active = 1 ORDER BY category ASC`)
}

// Brands lists the distinct non-empty brands of active products.
func (r ProductRepository) Brands(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "brands", `SELECT DISTINCT brand FROM products WHERE is_active = 1 AND brand IS NOT NULL AND brand <> '' ORDER BY brand ASC`)
}

// Update changes only the fields set in upd and returns the stored row.
func (r ProductRepository) Update(ctx context.Context, id int64, upd models.ProductUpdate) (models.Product, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.Product{}, err
	}

	sets := []string{}
	args := []any{}
	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Description != nil {
		add("description", intdb.NullIfEmpty(upd.Description))
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Stock != nil {
		add("stock", *upd.Stock)
	}
	if upd.SKU != nil {
		add("sku", *upd.SKU)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Brand != nil {
		add("brand", intdb.NullIfEmpty(upd.Brand))
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}
	if upd.IsFeatured != nil {
		add("is_featured", *upd.IsFeatured)
	}
	if upd.Weight != nil {
		add("weight", *upd.Weight)
	}
	if upd.Images != nil {
		v, err := intdb.JSONValue(nonNilStrings(*upd.Images))
		if err != nil {
			return models.Product{}, domain.InternalError{Msg: "encode images", Err: err}
		}
		add("images", v)
	}
	if upd.Tags != nil {
		v, err := intdb.JSONValue(nonNilStrings(*upd.Tags))
		if err != nil {
			return models.Product{}, domain.InternalError{Msg: "encode tags", Err: err}
		}
		add("tags", v)
	}
	if upd.Dimensions != nil {
		var v any
		if !upd.Dimensions.IsZero() {
			var err error
			if v, err = intdb.JSONValue(upd.Dimensions); err != nil {
				return models.Product{}, domain.InternalError{Msg: "encode dimensions", Err: err}
			}
		}
		add("dimensions", v)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}
	args = append(args, id)

	if _, err := r.DB.ExecContext(ctx, `UPDATE products SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		if intdb.IsDuplicateKey(err, "") {
			return models.Product{}, skuTaken(err)
		}
		return models.Product{}, domain.StoreError{Entity: "product", Operation: "update", Err: err}
	}
	return r.GetByID(ctx, id)
}

// UpdateStock applies a stock operation with a single conditional UPDATE.
// A decrement larger than the current stock, or an increment past the INT
// column range, changes nothing and returns a ValidationError.
func (r ProductRepository) UpdateStock(ctx context.Context, id int64, op models.StockOperation, qty int) (models.Product, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	var (
		stmt string
		args []any
	)
	switch op {
	case models.StockIncrement:
		if qty == 0 {
			return current, nil
		}
		stmt, args = `UPDATE products SET stock = stock + ? WHERE id = ? AND stock <= ?`, []any{qty, id, math.MaxInt32 - qty}
	case models.StockDecrement:
		if qty == 0 {
			return current, nil
		}
		stmt, args = `UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?`, []any{qty, id, qty}
	default:
		stmt, args = `UPDATE products SET stock = ? WHERE id = ?`, []any{qty, id}
	}

	res, err := r.DB.ExecContext(ctx, stmt, args...)
	if err != nil {
		return models.Product{}, domain.StoreError{Entity: "product", Operation: "update_stock", Err: err}
	}
	if op == models.StockDecrement || op == models.StockIncrement {
		affected, err := res.RowsAffected()
		if err != nil {
			return models.Product{}, domain.StoreError{Entity: "product", Operation: "update_stock", Err: err}
		}
		if affected == 0 && op == models.StockDecrement {
			return models.Product{}, domain.NewFieldError("quantity", "Stock insuficiente")
		}
		if affected == 0 {
			return models.Product{}, domain.NewFieldError("quantity", "El stock resultante excede el máximo permitido")
		}
	}
	return r.GetByID(ctx, id)
}

// Deactivate soft-deletes a product; the row stays in the table.
func (r ProductRepository) Deactivate(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, `UPDATE products SET is_active = 0 WHERE id = ?`, id); err != nil {
		return domain.StoreError{Entity: "product", Operation: "deactivate", Err: err}
	}
	return nil
}

func (r ProductRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, domain.StoreError{Entity: "product", Operation: "count", Err: err}
	}
	return n, nil
}
