package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"refbase.app/api-server/internal/store"
)

// ErrorResponse is the single error payload shape of the whole API.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// respondError is the error boundary: store sentinels map directly, anything
// else goes through the database error taxonomy. Unclassified errors never
// leak internal detail to the client.
func respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		reply(c, http.StatusNotFound, notFound.Error(), "Not Found")
		return
	}

	var invalid *store.InvalidArgumentError
	if errors.As(err, &invalid) {
		reply(c, http.StatusBadRequest, invalid.Error(), "Bad Request")
		return
	}

	dbErr := store.Normalize(err)
	switch dbErr.Kind {
	case store.KindUniqueViolation:
		reply(c, http.StatusConflict, messageOr(dbErr.Detail, "Duplicate record violates unique constraint"), "Conflict")
	case store.KindForeignKeyViolation:
		reply(c, http.StatusBadRequest, messageOr(dbErr.Detail, "Foreign key constraint violation"), "Bad Request")
	case store.KindNotNullViolation:
		reply(c, http.StatusBadRequest, messageOr(dbErr.Detail, "Missing required field"), "Bad Request")
	case store.KindCheckViolation:
		reply(c, http.StatusBadRequest, messageOr(dbErr.Detail, "Check constraint violation"), "Bad Request")
	default:
		slog.ErrorContext(ctx, "unexpected database error", "error", err)
		reply(c, http.StatusInternalServerError, "Unexpected database error", "Internal Server Error")
	}
}

func reply(c *gin.Context, status int, message, label string) {
	c.JSON(status, ErrorResponse{StatusCode: status, Message: message, Error: label})
}

func messageOr(detail, fallback string) string {
	if detail != "" {
		return detail
	}
	return fallback
}
