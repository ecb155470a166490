package services

import (
	"context"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"

	"github.com/stretchr/testify/mock"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u models.User) (models.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.User], error) {
	args := m.Called(ctx, pred, p)
	return args.Get(0).(domain.Page[models.User]), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserStore) SetPassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *mockUserStore) TouchLastLogin(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserStore) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockProductStore struct {
	mock.Mock
}

func (m *mockProductStore) GetByID(ctx context.Context, id int64) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProductStore) GetBySKU(ctx context.Context, sku string) (models.Product, error) {
	args := m.Called(ctx, sku)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProductStore) List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.Product], error) {
	args := m.Called(ctx, pred, p)
	return args.Get(0).(domain.Page[models.Product]), args.Error(1)
}

func (m *mockProductStore) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *mockProductStore) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProductStore) Brands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockProductStore) Update(ctx context.Context, id int64, upd models.ProductUpdate) (models.Product, error) {
	args := m.Called(ctx, id, upd)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProductStore) UpdateStock(ctx context.Context, id int64, op models.StockOperation, qty int) (models.Product, error) {
	args := m.Called(ctx, id, op, qty)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *mockProductStore) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
