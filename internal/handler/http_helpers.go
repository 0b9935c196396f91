package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/dmapsite/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// serverErrorMessage is the only detail a client ever sees for an
// unexpected failure; the cause is logged server-side.
const serverErrorMessage = "Server error. Please try again later."

func init() {
	// Report validation errors under the JSON field names clients sent.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondStorageError maps the storage error kinds onto the envelope:
// absence is 404, a unique-value conflict is 409, anything else is a
// generic 500 with the detail kept out of the response.
func respondStorageError(c *gin.Context, entity string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		respondError(c, http.StatusNotFound, entity+" not found")
	case errors.Is(err, storage.ErrDuplicate):
		respondError(c, http.StatusConflict, entity+" already exists")
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
	}
}

// bindJSON decodes and validates a request body. On a validation failure it
// writes a 400 with one entry per violated field and returns false.
func bindJSON(c *gin.Context, dst interface{}) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field":   fe.Field(),
				"message": validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  details,
		})
		return false
	}

	respondError(c, http.StatusBadRequest, "Invalid request body")
	return false
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return "is invalid"
	}
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// ErrorBoundary converts a handler panic into the uniform 500 envelope.
// The panic itself is logged by gin's recovery machinery.
func ErrorBoundary() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		respondError(c, http.StatusInternalServerError, serverErrorMessage)
	})
}
