package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/internal/app/model"
	"github.com/zubalebr/contestacoes-backend/internal/app/schema"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
	"github.com/zubalebr/contestacoes-backend/pkg/util"
	"github.com/zubalebr/contestacoes-backend/pkg/webhook"
)

var (
	ErrUnknownForm  = errors.New("tipo de formulário desconhecido")
	ErrUploadFailed = errors.New("falha no envio de anexo")
)

// ValidationFailedError carries per-field messages back to the controller.
type ValidationFailedError struct {
	Fields map[string]string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("dados inválidos em %d campo(s)", len(e.Fields))
}

// EvidenceStorage is the slice of the blob store the pipeline needs.
type EvidenceStorage interface {
	UploadEvidence(ctx context.Context, formType, protocol, filename, contentType string, body io.Reader) (string, error)
}

// WebhookDeliverer hands the finished payload to the workflow endpoint.
type WebhookDeliverer interface {
	Deliver(ctx context.Context, payload interface{}) error
}

// SubmissionService runs the submission pipeline: validate, generate the
// protocol number, upload evidence, deliver to the webhook.
type SubmissionService interface {
	Submit(ctx context.Context, formType model.FormType, fields map[string]string, attachments []model.Attachment) (*model.Submission, error)
}

type submissionService struct {
	stores     StoreService
	storage    EvidenceStorage
	deliverer  WebhookDeliverer
	validation config.ValidationConfig
	upload     config.UploadConfig
	sourceTag  string
	now        func() time.Time
}

func NewSubmissionService(
	stores StoreService,
	storage EvidenceStorage,
	deliverer WebhookDeliverer,
	cfg *config.Config,
) SubmissionService {
	return &submissionService{
		stores:     stores,
		storage:    storage,
		deliverer:  deliverer,
		validation: cfg.Validation,
		upload:     cfg.Upload,
		sourceTag:  cfg.Webhook.SourceTag,
		now:        time.Now,
	}
}

func (s *submissionService) Submit(ctx context.Context, formType model.FormType, fields map[string]string, attachments []model.Attachment) (*model.Submission, error) {
	// Missing webhook configuration fails before any side effect.
	if s.deliverer == nil {
		return nil, webhook.ErrMissingURL
	}

	sch, ok := schema.Get(formType)
	if !ok {
		return nil, ErrUnknownForm
	}

	now := s.now()

	// Canonical phone goes to the webhook regardless of how it was typed.
	if raw, ok := fields["telefone"]; ok && raw != "" {
		fields["telefone"] = util.NormalizePhone(raw)
	}

	if fieldErrors := sch.Validate(fields, now, s.validation.MinBusinessDays); len(fieldErrors) > 0 {
		return nil, &ValidationFailedError{Fields: fieldErrors}
	}

	if err := s.validateStore(ctx, sch, fields); err != nil {
		return nil, err
	}

	protocol := util.GenerateProtocol(now)

	evidencias, err := s.uploadAttachments(ctx, formType, protocol, attachments)
	if err != nil {
		return nil, err
	}

	submission := &model.Submission{
		FormType:   formType,
		Fields:     fields,
		Protocolo:  protocol,
		Evidencias: evidencias,
		Timestamp:  now,
		Origem:     s.sourceTag,
	}

	if err := s.deliverer.Deliver(ctx, submission.WebhookPayload()); err != nil {
		logger.Error("Webhook delivery failed", err, map[string]interface{}{
			"form_type": formType,
			"protocolo": protocol,
		})
		return nil, err
	}

	logger.Info("Submission delivered", map[string]interface{}{
		"form_type":  formType,
		"protocolo":  protocol,
		"evidencias": len(evidencias),
	})

	return submission, nil
}

// validateStore checks the store-typed field against the store list
// according to the configured mode. An unreachable store list skips the
// check unless the deployment opted into fail-closed.
func (s *submissionService) validateStore(ctx context.Context, sch *schema.Schema, fields map[string]string) error {
	if s.validation.StoreMode == config.StoreValidationOff || s.stores == nil {
		return nil
	}

	storeField, ok := sch.StoreField()
	if !ok || !storeField.Visible(fields) {
		return nil
	}

	name := fields[storeField.Name]
	if name == "" {
		// Emptiness was already judged by the schema pass.
		return nil
	}

	known, err := s.stores.Contains(ctx, name)
	if err != nil {
		if s.validation.StoreFailClosed {
			return err
		}
		logger.Warn("Store list unavailable, skipping store validation", map[string]interface{}{
			"error": err.Error(),
			"loja":  name,
		})
		return nil
	}

	if !known {
		if s.validation.StoreMode == config.StoreValidationAdvisory {
			logger.Warn("Unknown store accepted in advisory mode", map[string]interface{}{
				"loja": name,
			})
			return nil
		}
		return &ValidationFailedError{Fields: map[string]string{
			storeField.Name: "Loja inválida. Selecione uma loja da lista.",
		}}
	}

	return nil
}

// uploadAttachments pushes every attachment concurrently and collects the
// resulting URLs in input order. A failed upload drops its URL and the
// submission proceeds, unless the deployment opted into fail-closed.
func (s *submissionService) uploadAttachments(ctx context.Context, formType model.FormType, protocol string, attachments []model.Attachment) ([]string, error) {
	evidencias := make([]string, 0, len(attachments))
	if len(attachments) == 0 {
		return evidencias, nil
	}

	if s.storage == nil {
		if s.upload.FailClosed {
			return nil, fmt.Errorf("%w: armazenamento não configurado", ErrUploadFailed)
		}
		logger.Warn("Evidence storage not configured, attachments dropped", map[string]interface{}{
			"count": len(attachments),
		})
		return evidencias, nil
	}

	urls := make([]string, len(attachments))
	uploadErrs := make([]error, len(attachments))

	var wg sync.WaitGroup
	for i, att := range attachments {
		wg.Add(1)
		go func(i int, att model.Attachment) {
			defer wg.Done()

			body, err := att.Open()
			if err != nil {
				uploadErrs[i] = err
				return
			}
			defer body.Close()

			url, err := s.storage.UploadEvidence(ctx, string(formType), protocol, att.Filename, att.ContentType, body)
			if err != nil {
				uploadErrs[i] = err
				return
			}
			urls[i] = url
		}(i, att)
	}
	wg.Wait()

	for i, err := range uploadErrs {
		if err == nil {
			continue
		}
		logger.Error("Evidence upload failed", err, map[string]interface{}{
			"protocolo": protocol,
			"filename":  attachments[i].Filename,
		})
		if s.upload.FailClosed {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
	}

	for _, url := range urls {
		if url != "" {
			evidencias = append(evidencias, url)
		}
	}
	return evidencias, nil
}
