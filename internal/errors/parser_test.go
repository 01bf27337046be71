package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zubalebr/contestacoes-backend/pkg/sheets"
	"github.com/zubalebr/contestacoes-backend/pkg/webhook"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "nil error",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantCode:   InternalServerError,
		},
		{
			name:       "webhook delivery failed",
			err:        fmt.Errorf("%w: status 500", webhook.ErrDeliveryFailed),
			wantStatus: http.StatusBadGateway,
			wantCode:   WebhookDeliveryFailed,
		},
		{
			name:       "webhook network error",
			err:        fmt.Errorf("%w: connection refused", webhook.ErrNetworkError),
			wantStatus: http.StatusBadGateway,
			wantCode:   WebhookDeliveryFailed,
		},
		{
			name:       "webhook not configured",
			err:        webhook.ErrMissingURL,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ConfigMissingWebhook,
		},
		{
			name:       "sheets api error",
			err:        fmt.Errorf("%w: status 403", sheets.ErrAPIError),
			wantStatus: http.StatusInternalServerError,
			wantCode:   StoreListUnavailable,
		},
		{
			name:       "sheets not configured",
			err:        sheets.ErrMissingConfig,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ConfigMissingSheets,
		},
		{
			name:       "unknown form type",
			err:        errors.New("tipo de formulário desconhecido"),
			wantStatus: http.StatusBadRequest,
			wantCode:   FormUnknownType,
		},
		{
			name:       "attachment upload failed",
			err:        errors.New("falha no envio de anexo: access denied"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   UploadFailed,
		},
		{
			name:       "anything else",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   InternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, tt.wantCode, info.Code)
			assert.NotEmpty(t, info.Message)
		})
	}
}
