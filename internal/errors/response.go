package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse estrutura padrão de resposta de erro
type ErrorResponse struct {
	Error   string `json:"error"`   // Código de erro (mapeado pelo frontend)
	Message string `json:"message"` // Mensagem amigável em português
}

// RespondWithError helper de resposta de erro
// statusCode: código HTTP
// errorCode: constante de código (ver codes.go)
// message: mensagem exibida ao usuário
func RespondWithError(c *gin.Context, statusCode int, errorCode string, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   errorCode,
		Message: message,
	})
}

// Atalhos para as respostas mais comuns

func BadRequest(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusBadRequest, errorCode, message)
}

func NotFound(c *gin.Context, errorCode string, message string) {
	RespondWithError(c, http.StatusNotFound, errorCode, message)
}

func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Ocorreu um erro no servidor. Tente novamente mais tarde"
	}
	RespondWithError(c, http.StatusInternalServerError, InternalServerError, message)
}

// ValidationError erro de validação com detalhe por campo
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"` // Mensagem por campo
}

func RespondWithValidationError(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest, ValidationError{
		Error:   ValidationInvalidInput,
		Message: "Os dados informados não são válidos",
		Fields:  fields,
	})
}
