package handlers

import (
	"net/http"

	"ecommerce/internal/repositories"
	"ecommerce/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Users services.UserService
	ErrorResponder
}

// GetUsers handles GET /api/users.
func (h UserHandler) GetUsers(c *gin.Context) {
	s := querySchema(c)
	filter := userFilterSchema(s)
	params := paginationSchema(s, repositories.UserSorts)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	page, err := h.Users.List(storeCtx(c), filter, params)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondPage(c, page)
}

// GetUserByID handles GET /api/users/:id.
func (h UserHandler) GetUserByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	u, err := h.Users.Get(storeCtx(c), id)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, u, "")
}

func (h UserHandler) CreateUser(c *gin.Context) {
	s, err := bodySchema(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	in := createUserSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	u, err := h.Users.Create(storeCtx(c), in)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, u, "Usuario creado exitosamente")
}

func (h UserHandler) UpdateUser(c *gin.Context) {
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
	upd := updateUserSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	u, err := h.Users.Update(storeCtx(c), id, upd)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, u, "Usuario actualizado exitosamente")
}

// DeleteUser soft-deletes; the row stays readable by id.
func (h UserHandler) DeleteUser(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	if err := h.Users.Delete(storeCtx(c), id); err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Usuario eliminado exitosamente")
}

func (h UserHandler) ChangePassword(c *gin.Context) {
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
	in := changePasswordSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	if err := h.Users.ChangePassword(storeCtx(c), id, in.CurrentPassword, in.NewPassword); err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, nil, "Contraseña actualizada exitosamente")
}

func (h UserHandler) VerifyCredentials(c *gin.Context) {
	s, err := bodySchema(c)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	in := credentialsSchema(s)
	if err := s.Err(); err != nil {
		h.RespondDomainError(c, err)
		return
	}

	u, err := h.Users.VerifyCredentials(storeCtx(c), in.Email, in.Password)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, u, "Credenciales válidas")
}
