package services

import (
	"context"

	"ecommerce/internal/domain"
	"ecommerce/internal/domain/models"
	"ecommerce/internal/query"
	"ecommerce/internal/repositories"
	"ecommerce/internal/utils"
)

// UserStore is the persistence surface UserService needs.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, u models.User) (models.User, error)
	List(ctx context.Context, pred query.Predicate, p domain.PageParams) (domain.Page[models.User], error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (models.User, error)
	SetPassword(ctx context.Context, id int64, hash string) error
	TouchLastLogin(ctx context.Context, id int64) error
	Deactivate(ctx context.Context, id int64) error
}

// CreateUserInput is a validated POST /api/users body.
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UserService orchestrates user persistence and never returns password hashes.
type UserService struct {
	Users  UserStore
	Hasher PasswordHasher
}

var errBadCredentials = domain.UnauthorizedError{Msg: "Credenciales inválidas"}

func (s UserService) Create(ctx context.Context, in CreateUserInput) (models.PublicUser, error) {
	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return models.PublicUser{}, domain.InternalError{Msg: "no se pudo procesar la contraseña", Err: err}
	}
	role := in.Role
	if role == "" {
		role = models.RoleUser
	}

	u, err := s.Users.Create(ctx, models.User{
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(ctx, "user", "create", "user created", "user_id", u.ID)
	return u.ToPublic(), nil
}

func (s UserService) Get(ctx context.Context, id int64) (models.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return models.PublicUser{}, err
	}
	return u.ToPublic(), nil
}

// List pages through users matching f. Without an explicit isActive filter only
// active users are listed, so soft-deleted users drop out of default listings.
func (s UserService) List(ctx context.Context, f models.UserFilter, p domain.PageParams) (domain.Page[models.PublicUser], error) {
	if f.IsActive == nil {
		active := true
		f.IsActive = &active
	}
	page, err := s.Users.List(ctx, repositories.UserPredicate(f), p)
	if err != nil {
		return domain.Page[models.PublicUser]{}, err
	}
	return domain.MapPage(page, models.User.ToPublic), nil
}

func (s UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (models.PublicUser, error) {
	u, err := s.Users.Update(ctx, id, upd)
	if err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(ctx, "user", "update", "user updated", "user_id", id)
	return u.ToPublic(), nil
}

// Delete soft-deletes the user.
func (s UserService) Delete(ctx context.Context, id int64) error {
	if err := s.Users.Deactivate(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(ctx, "user", "delete", "user deactivated", "user_id", id)
	return nil
}

// ChangePassword replaces the hash after verifying the current password.
func (s UserService) ChangePassword(ctx context.Context, id int64, current, next string) error {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Hasher.Compare(u.PasswordHash, current); err != nil {
		return domain.NewFieldError("currentPassword", "La contraseña actual es incorrecta")
	}
	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return domain.InternalError{Msg: "no se pudo procesar la contraseña", Err: err}
	}
	if err := s.Users.SetPassword(ctx, id, hash); err != nil {
		return err
	}
	utils.LogEvent(ctx, "user", "change_password", "password changed", "user_id", id)
	return nil
}

// VerifyCredentials checks an email/password pair. Unknown emails, inactive
// users and wrong passwords all yield the same UnauthorizedError.
func (s UserService) VerifyCredentials(ctx context.Context, email, password string) (models.PublicUser, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.PublicUser{}, errBadCredentials
		}
		return models.PublicUser{}, err
	}
	if !u.IsActive {
		return models.PublicUser{}, errBadCredentials
	}
	if err := s.Hasher.Compare(u.PasswordHash, password); err != nil {
		utils.LogEvent(ctx, "user", "verify_credentials", "password mismatch", "user_id", u.ID)
		return models.PublicUser{}, errBadCredentials
	}

	if err := s.Users.TouchLastLogin(ctx, u.ID); err != nil {
		return models.PublicUser{}, err
	}
	fresh, err := s.Users.GetByID(ctx, u.ID)
	if err != nil {
		return models.PublicUser{}, err
	}
	utils.LogEvent(ctx, "user", "verify_credentials", "credentials verified", "user_id", u.ID)
	return fresh.ToPublic(), nil
}
