package handlers

import (
	"context"
	"net/http"

	"ecommerce/internal/domain"
	"ecommerce/internal/validate"

	"github.com/gin-gonic/gin"
)

// Response is the success envelope.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// PageResponse is the success envelope for paginated lists.
type PageResponse[T any] struct {
	Success    bool            `json:"success"`
	Data       []T             `json:"data"`
	Pagination domain.PageMeta `json:"pagination"`
}

func respondOK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func respondPage[T any](c *gin.Context, page domain.Page[T]) {
	data := page.Data
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{Success: true, Data: data, Pagination: page.Pagination})
}

// storeCtx detaches store calls from client cancellation; the server write
// timeout still bounds the request.
func storeCtx(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func paramsOf(c *gin.Context) map[string]string {
	out := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		out[p.Key] = p.Value
	}
	return out
}

func paramSchema(c *gin.Context) *validate.Schema {
	return validate.FromParams(paramsOf(c))
}

func querySchema(c *gin.Context) *validate.Schema {
	return validate.FromQuery(c.Request.URL.Query())
}

func bodySchema(c *gin.Context) (*validate.Schema, error) {
	return validate.DecodeBody(c.Request.Body)
}

// pathID validates the :id parameter.
func pathID(c *gin.Context) (int64, error) {
	s := paramSchema(c)
	id := idSchema(s, "id")
	return id, s.Err()
}
