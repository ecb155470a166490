package handlers

import (
	"errors"
	"net/http"

	"ecommerce/internal/domain"
	"ecommerce/internal/http/middleware"
	"ecommerce/internal/utils"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "Error interno del servidor"

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Errors    []domain.FieldError `json:"errors,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// ErrorResponder maps domain errors to HTTP responses. With Expose set the
// underlying message of store and internal errors is returned to the client.
type ErrorResponder struct {
	Expose bool
}

func respondError(c *gin.Context, status int, message string, fields []domain.FieldError) {
	c.JSON(status, ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    fields,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError writes the status and envelope matching err.
func (r ErrorResponder) RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		fields := domain.ValidationFields(err)
		msg := "Datos de entrada inválidos"
		if len(fields) == 0 {
			msg = err.Error()
		}
		respondError(c, http.StatusBadRequest, msg, fields)
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, notFoundMessage(err), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, conflictMessage(err), nil)
	default:
		utils.LogError(c.Request.Context(), "http", c.Request.Method+" "+c.FullPath(), err)
		msg := genericErrorMessage
		if r.Expose {
			msg = err.Error()
		}
		respondError(c, http.StatusInternalServerError, msg, nil)
	}
}

func notFoundMessage(err error) string {
	var nf domain.NotFoundError
	if errors.As(err, &nf) && nf.Resource != "" {
		return nf.Resource + " no encontrado"
	}
	return "Recurso no encontrado"
}

func conflictMessage(err error) string {
	var ce domain.ConflictError
	if errors.As(err, &ce) && ce.Msg != "" {
		return ce.Msg
	}
	return "El recurso ya existe"
}
