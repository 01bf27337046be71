package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/zubalebr/contestacoes-backend/pkg/sheets"
	"github.com/zubalebr/contestacoes-backend/pkg/webhook"
)

// ErrorInfo resultado do ParseError
type ErrorInfo struct {
	Status  int    // Código HTTP
	Code    string // Código de erro (ver codes.go)
	Message string // Mensagem amigável
}

// ParseError converte erros internos em código + mensagem segura para o
// usuário. O detalhe técnico fica apenas no log do servidor.
func ParseError(err error) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    InternalServerError,
			Message: "Ocorreu um erro no servidor",
		}
	}

	// 1. Falha na entrega ao webhook: fatal para a solicitação
	if errors.Is(err, webhook.ErrDeliveryFailed) || errors.Is(err, webhook.ErrNetworkError) {
		return ErrorInfo{
			Status:  http.StatusBadGateway,
			Code:    WebhookDeliveryFailed,
			Message: "Não foi possível enviar sua solicitação. Tente novamente mais tarde.",
		}
	}
	if errors.Is(err, webhook.ErrMissingURL) {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    ConfigMissingWebhook,
			Message: "Configuração do servidor ausente (Webhook URL).",
		}
	}

	// 2. Lista de lojas indisponível
	if errors.Is(err, sheets.ErrAPIError) || errors.Is(err, sheets.ErrNetworkError) {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    StoreListUnavailable,
			Message: "Erro ao buscar lojas",
		}
	}
	if errors.Is(err, sheets.ErrMissingConfig) {
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    ConfigMissingSheets,
			Message: "Configuração ausente",
		}
	}

	// 3. Erros de negócio da camada de serviço
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "tipo de formulário desconhecido"):
		return ErrorInfo{
			Status:  http.StatusBadRequest,
			Code:    FormUnknownType,
			Message: "Tipo de solicitação desconhecido.",
		}
	case strings.Contains(errStr, "falha no envio de anexo"):
		return ErrorInfo{
			Status:  http.StatusInternalServerError,
			Code:    UploadFailed,
			Message: "Não foi possível anexar suas evidências. Tente novamente mais tarde.",
		}
	}

	return ErrorInfo{
		Status:  http.StatusInternalServerError,
		Code:    InternalServerError,
		Message: "Ocorreu um erro no servidor. Tente novamente mais tarde",
	}
}
