package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// WriteError traduz o tipo do erro para o status HTTP adequado.
// Erros de persistência não mapeados caem em 500 sem vazar detalhes.
func WriteError(c *gin.Context, err error) {
	if ne, ok := AsNotFound(err); ok {
		NotFound(c, ne.Code, ne.Message)
		return
	}

	if be, ok := AsBusiness(err); ok {
		if be.Code == CodeTimeConflict {
			Conflict(c, be.Code, be.Message)
			return
		}
		Unprocessable(c, be.Code, be.Message)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		NotFound(c, "not_found", "Registro não encontrado.")
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
