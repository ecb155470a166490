package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intdb "ecommerce/internal/db"
	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"
)

const userColumns = `id, email, password, first_name, last_name, role, is_active, email_verified, last_login, created_at, updated_at`

// UserSorts whitelists the sortBy keys accepted by GET /api/users.
var UserSorts = query.NewSorts(map[string]string{
	"id":        "id",
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
	"role":      "role",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"lastLogin": "last_login",
})

var userListing = query.Listing{
	Entity:  "user",
	Table:   "users",
	Columns: userColumns,
	Sorts:   UserSorts,
}

func emailTaken(err error) error {
	return domain.ConflictError{Resource: "user", Msg: "El email ya está registrado", Err: err}
}

type UserRepository struct {
	DB *sql.DB
}

// UserPredicate maps a validated user filter to a store predicate.
// Search matches email, first name and last name.
func UserPredicate(f models.UserFilter) query.Predicate {
	return query.NewBuilder().
		Equal("role", f.Role).
		Flag("is_active", f.IsActive).
		Flag("email_verified", f.EmailVerified).
		Search(f.Search, "email", "first_name", "last_name").
		Build()
}

func scanUser(s query.Scanner) (models.User, error) {
	var (
		u         models.User
		lastLogin sql.NullTime
	)
	if err := s.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.IsActive,
		&u.EmailVerified,
		&lastLogin,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return models.User{}, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}

func (r UserRepository) getOne(ctx context.Context, op, where string, arg any) (models.User, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE `+where+` LIMIT 1`, arg)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, domain.NotFoundError{Resource: "Usuario", Err: err}
		}
		return models.User{}, domain.StoreError{Entity: "user", Operation: op, Err: err}
	}
	return u, nil
}

// GetByID returns the user regardless of its active flag.
func (r UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.getOne(ctx, "get", "id = ?", id)
}

func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, "get_by_email", "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r UserRepository) Create(ctx context.Context, u models.User) (models.User, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role, is_active, email_verified)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		strings.ToLower(u.Email), u.PasswordHash, u.FirstName, u.LastName, u.Role, u.IsActive, u.EmailVerified,
	)
	if err != nil {
		if intdb.IsDuplicateKey(err, "") {
			return models.User{}, emailTaken(err)
		}
		return models.User{}, domain.StoreError{Entity: "user", Operation: "create", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, domain.StoreError{Entity: "user", Operation: "create", Err: err}
	}
	return r.GetByID(ctx, id)
}

func (r UserRepository) List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.User], error) {
	return query.Paginate(ctx, r.DB, userListing, pred, p, scanUser)
}

// Update changes only the fields set in upd and returns the stored row.
func (r UserRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return models.User{}, err
	}
	if upd.Empty() {
		return r.GetByID(ctx, id)
	}

	sets := []string{}
	args := []any{}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, strings.ToLower(*upd.Email))
	}
	if upd.FirstName != nil {
		sets = append(sets, "first_name = ?")
		args = append(args, *upd.FirstName)
	}
	if upd.LastName != nil {
		sets = append(sets, "last_name = ?")
		args = append(args, *upd.LastName)
	}
	if upd.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *upd.IsActive)
	}
	if upd.EmailVerified != nil {
		sets = append(sets, "email_verified = ?")
		args = append(args, *upd.EmailVerified)
	}
	args = append(args, id)

	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...); err != nil {
		if intdb.IsDuplicateKey(err, "") {
			return models.User{}, emailTaken(err)
		}
		return models.User{}, domain.StoreError{Entity: "user", Operation: "update", Err: err}
	}
	return r.GetByID(ctx, id)
}

func (r UserRepository) SetPassword(ctx context.Context, id int64, hash string) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, hash, id); err != nil {
		return domain.StoreError{Entity: "user", Operation: "set_password", Err: err}
	}
	return nil
}

func (r UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET last_login = CURRENT_TIMESTAMP(3) WHERE id = ?`, id); err != nil {
		return domain.StoreError{Entity: "user", Operation: "touch_last_login", Err: err}
	}
	return nil
}

// Deactivate soft-deletes a user; the row stays in the table.
func (r UserRepository) Deactivate(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := r.DB.ExecContext(ctx, `UPDATE users SET is_active = 0 WHERE id = ?`, id); err != nil {
		return domain.StoreError{Entity: "user", Operation: "deactivate", Err: err}
	}
	return nil
}

func (r UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, domain.StoreError{Entity: "user", Operation: "count", Err: err}
	}
	return n, nil
}
