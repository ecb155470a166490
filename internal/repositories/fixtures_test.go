package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

var userCols = []string{"id", "email", "password", "first_name", "last_name", "role", "is_active", "email_verified", "last_login", "created_at", "updated_at"}

var productCols = []string{"id", "name", "description", "price", "stock", "sku", "category", "brand", "images", "is_active", "is_featured", "weight", "dimensions", "tags", "created_at", "updated_at"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userCols)
}

func addUser(rows *sqlmock.Rows, id int64, email string, active bool) *sqlmock.Rows {
	return rows.AddRow(id, email, "$2a$04$hash", "Admin", "User", "ADMIN", active, true, nil, fixedTime, fixedTime)
}

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows(productCols)
}

func addIPhone(rows *sqlmock.Rows, stock int, active bool) *sqlmock.Rows {
	return rows.AddRow(
		1, "iPhone 15 Pro", "El último iPhone", 999.99, stock, "IPHONE-15-PRO-001", "Electrónicos", "Apple",
		`["iphone15pro-1.jpg","iphone15pro-2.jpg"]`, active, true, 187.0,
		`{"length":159.9,"width":76.7,"height":8.25}`, `["smartphone","apple"]`,
		fixedTime, fixedTime,
	)
}
