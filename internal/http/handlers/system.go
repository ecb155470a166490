package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Counter is satisfied by the user and product repositories.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type SystemHandler struct {
	DB          Pinger
	Environment string
	Users       Counter
	Products    Counter
	ErrorResponder
}

func (h SystemHandler) Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":     "E-commerce API funcionando",
		"version":     apiVersion,
		"environment": h.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Health pings the database with a short deadline.
func (h SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, dbStatus, code := "ok", "connected", http.StatusOK
	if h.DB == nil || h.DB.PingContext(ctx) != nil {
		status, dbStatus, code = "error", "disconnected", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"success":   code == http.StatusOK,
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DBCheck reports row counts for both resources.
func (h SystemHandler) DBCheck(c *gin.Context) {
	ctx := storeCtx(c)
	users, err := h.Users.Count(ctx)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	products, err := h.Products.Count(ctx)
	if err != nil {
		h.RespondDomainError(c, err)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"users": users, "products": products}, "Conexión a la base de datos OK")
}

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Ruta no encontrada",
		"path":    c.Request.URL.Path,
		"method":  c.Request.Method,
	})
}
