package repositories

import (
	"context"
	"errors"
	"math"
	"regexp"
	"testing"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_GetBySKUDecodesJSONColumns(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + productColumns + " FROM products WHERE sku = ? LIMIT 1")).
		WithArgs("IPHONE-15-PRO-001").
		WillReturnRows(addIPhone(productRows(), 50, true))

	p, err := ProductRepository{DB: db}.GetBySKU(context.Background(), "IPHONE-15-PRO-001")
	require.NoError(t, err)

	assert.Equal(t, 999.99, p.Price)
	assert.Equal(t, []string{"iphone15pro-1.jpg", "iphone15pro-2.jpg"}, p.Images)
	assert.Equal(t, []string{"smartphone", "apple"}, p.Tags)
	require.NotNil(t, p.Dimensions)
	assert.Equal(t, 8.25, *p.Dimensions.Height)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "Apple", *p.Brand)
}

func TestProductRepository_NullOptionalColumns(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").
		WithArgs(int64(8)).
		WillReturnRows(productRows().AddRow(8, "Cable", nil, 9.5, 3, "CABLE-001", "Accesorios", nil, nil, true, false, nil, nil, nil, fixedTime, fixedTime))

	p, err := ProductRepository{DB: db}.GetByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Brand)
	assert.Nil(t, p.Weight)
	assert.Nil(t, p.Dimensions)

	resp := p.ToResponse()
	assert.Equal(t, []string{}, resp.Images)
	assert.Equal(t, []string{}, resp.Tags)
}

func TestProductRepository_GetBySKUNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE sku = ?").WithArgs("NOPE").WillReturnRows(productRows())

	_, err := ProductRepository{DB: db}.GetBySKU(context.Background(), "NOPE")
	assert.True(t, domain.IsNotFound(err))
}

func TestProductRepository_CreateDuplicateSKUIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO products").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'IPHONE-15-PRO-001' for key 'uq_products_sku'"})

	_, err := ProductRepository{DB: db}.Create(context.Background(), models.Product{Name: "dup", SKU: "IPHONE-15-PRO-001"})
	require.Error(t, err)

	var ce domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "El SKU ya existe", ce.Msg)
}

func TestProductRepository_CreateEncodesJSON(t *testing.T) {
	db, mock := newMockDB(t)
	l, w, h := 1.0, 2.0, 3.0
	mock.ExpectExec("INSERT INTO products").
		WithArgs("Lamp", nil, 20.0, 5, "LAMP-001", "Hogar", nil, `["a.jpg"]`, true, false, nil, `{"length":1,"width":2,"height":3}`, `[]`).
		WillReturnResult(sqlmock.NewResult(6, 1))
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(6)).
		WillReturnRows(addIPhone(productRows(), 5, true))

	_, err := ProductRepository{DB: db}.Create(context.Background(), models.Product{
		Name: "Lamp", Price: 20, Stock: 5, SKU: "LAMP-001", Category: "Hogar",
		Images: []string{"a.jpg"}, IsActive: true,
		Dimensions: &models.Dimensions{Length: &l, Width: &w, Height: &h},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	category := "Electrónicos"
	active := true
	pred := ProductPredicate(models.ProductFilter{Category: &category, IsActive: &active})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE 1=1 AND category = ? AND is_active = ?")).
		WithArgs("Electrónicos", true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id ASC LIMIT ? OFFSET ?")).
		WithArgs("Electrónicos", true, 10, 0).
		WillReturnRows(addIPhone(productRows(), 50, true).
			AddRow(3, "Samsung Galaxy S24", nil, 899.99, 40, "SAMSUNG-S24-001", "Electrónicos", "Samsung", `[]`, true, false, nil, nil, `[]`, fixedTime, fixedTime))

	page, err := ProductRepository{DB: db}.List(context.Background(), pred, domain.PageParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Samsung Galaxy S24", page.Data[1].Name)
	assert.Equal(t, domain.PageMeta{Page: 1, Limit: 10, Total: 2, TotalPages: 1}, page.Pagination)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Categories(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT category FROM products WHERE is_active = 1 ORDER BY category ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Audio").AddRow("Calzado").AddRow("Electrónicos"))

	got, err := ProductRepository{DB: db}.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Audio", "Calzado", "Electrónicos"}, got)
}

func TestProductRepository_FeaturedNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("WHERE is_active = 1 AND is_featured = 1\\s+ORDER BY created_at DESC, id DESC\\s+LIMIT \\?").
		WithArgs(5).
		WillReturnRows(addIPhone(productRows(), 50, true))

	got, err := ProductRepository{DB: db}.Featured(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestProductRepository_UpdateStockDecrementInsufficient(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 2, true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock - ? WHERE id = ? AND stock >= ?")).
		WithArgs(5, int64(1), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := ProductRepository{DB: db}.UpdateStock(context.Background(), 1, models.StockDecrement, 5)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, []domain.FieldError{{Field: "quantity", Message: "Stock insuficiente"}}, domain.ValidationFields(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateStockIncrement(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 50, true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock + ? WHERE id = ? AND stock <= ?")).
		WithArgs(10, int64(1), math.MaxInt32-10).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 60, true))

	p, err := ProductRepository{DB: db}.UpdateStock(context.Background(), 1, models.StockIncrement, 10)
	require.NoError(t, err)
	assert.Equal(t, 60, p.Stock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateStockIncrementPastColumnRange(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 50, true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock + ? WHERE id = ? AND stock <= ?")).
		WithArgs(math.MaxInt32, int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := ProductRepository{DB: db}.UpdateStock(context.Background(), 1, models.StockIncrement, math.MaxInt32)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "quantity", domain.ValidationFields(err)[0].Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_UpdateClearsDimensions(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 50, true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET dimensions = ? WHERE id = ?")).
		WithArgs(nil, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(1)).
		WillReturnRows(addIPhone(productRows(), 50, true))

	_, err := ProductRepository{DB: db}.Update(context.Background(), 1, models.ProductUpdate{Dimensions: &models.Dimensions{}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_DeactivateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM products WHERE id = ?").WithArgs(int64(99)).WillReturnRows(productRows())

	err := ProductRepository{DB: db}.Deactivate(context.Background(), 99)
	assert.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}
