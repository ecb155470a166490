package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE id = ? LIMIT 1")).
		WithArgs(int64(1)).
		WillReturnRows(addUser(userRows(), 1, "admin@ecommerce.com", true))

	u, err := UserRepository{DB: db}.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin@ecommerce.com", u.Email)
	assert.Equal(t, "$2a$04$hash", u.PasswordHash)
	assert.Nil(t, u.LastLogin)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM users WHERE id = ?").WithArgs(int64(9)).WillReturnRows(userRows())

	_, err := UserRepository{DB: db}.GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestUserRepository_GetByEmailNormalizes(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM users WHERE email = ?").
		WithArgs("admin@ecommerce.com").
		WillReturnRows(addUser(userRows(), 1, "admin@ecommerce.com", true))

	_, err := UserRepository{DB: db}.GetByEmail(context.Background(), "  Admin@Ecommerce.com ")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmailIsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.com' for key 'uq_users_email'"})

	_, err := UserRepository{DB: db}.Create(context.Background(), models.User{Email: "a@b.com", Role: models.RoleUser})
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))

	var ce domain.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "El email ya está registrado", ce.Msg)
}

func TestUserRepository_CreateReturnsStoredRow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users").
		WithArgs("new@ecommerce.com", "hash", "New", "User", "USER", true, false).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectQuery("FROM users WHERE id = ?").
		WithArgs(int64(4)).
		WillReturnRows(addUser(userRows(), 4, "new@ecommerce.com", true))

	u, err := UserRepository{DB: db}.Create(context.Background(), models.User{
		Email: "New@Ecommerce.com", PasswordHash: "hash", FirstName: "New", LastName: "User", Role: "USER", IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateOnlyPresentFields(t *testing.T) {
	db, mock := newMockDB(t)
	name := "Ana"
	verified := true

	mock.ExpectQuery("FROM users WHERE id = ?").WithArgs(int64(2)).
		WillReturnRows(addUser(userRows(), 2, "user@ecommerce.com", true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET first_name = ?, email_verified = ? WHERE id = ?")).
		WithArgs("Ana", true, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM users WHERE id = ?").WithArgs(int64(2)).
		WillReturnRows(addUser(userRows(), 2, "user@ecommerce.com", true))

	_, err := UserRepository{DB: db}.Update(context.Background(), 2, models.UserUpdate{FirstName: &name, EmailVerified: &verified})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateMissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM users WHERE id = ?").WithArgs(int64(77)).WillReturnRows(userRows())

	name := "x"
	_, err := UserRepository{DB: db}.Update(context.Background(), 77, models.UserUpdate{FirstName: &name})
	assert.True(t, domain.IsNotFound(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeactivateKeepsRow(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM users WHERE id = ?").WithArgs(int64(3)).
		WillReturnRows(addUser(userRows(), 3, "test@ecommerce.com", true))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = 0 WHERE id = ?")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, UserRepository{DB: db}.Deactivate(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserPredicate(t *testing.T) {
	role := "ADMIN"
	active := true
	where, args := UserPredicate(models.UserFilter{Role: &role, IsActive: &active, Search: "  ad   min "}).Where()

	assert.Equal(t,
		"1=1 AND role = ? AND is_active = ? AND (LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)",
		where)
	assert.Equal(t, []any{"ADMIN", true, "%ad   min%", "%ad   min%", "%ad   min%"}, args)
}
