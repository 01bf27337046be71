package controller

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zubalebr/contestacoes-backend/config"
	"github.com/zubalebr/contestacoes-backend/internal/app/model"
	"github.com/zubalebr/contestacoes-backend/internal/app/schema"
	"github.com/zubalebr/contestacoes-backend/internal/app/service"
	apperrors "github.com/zubalebr/contestacoes-backend/internal/errors"
	"github.com/zubalebr/contestacoes-backend/internal/storage"
	"github.com/zubalebr/contestacoes-backend/pkg/logger"
)

// Field name the client appends evidence files under.
const evidenceFieldName = "evidencias_files"

var allowedEvidenceTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
	"application/pdf",
}

type SubmissionController struct {
	submissionService service.SubmissionService
	upload            config.UploadConfig
}

func NewSubmissionController(submissionService service.SubmissionService, upload config.UploadConfig) *SubmissionController {
	return &SubmissionController{
		submissionService: submissionService,
		upload:            upload,
	}
}

// Submit receives the multipart form, runs the submission pipeline and
// answers with the generated protocol number.
// POST /api/v1/submissions
func (ctrl *SubmissionController) Submit(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		logger.Warn("Invalid multipart submission", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Não foi possível ler os dados do formulário.")
		return
	}

	fields := make(map[string]string, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	formType := model.FormType(fields["form_type"])
	if !formType.Valid() {
		apperrors.BadRequest(c, apperrors.FormUnknownType, "Tipo de solicitação desconhecido.")
		return
	}
	delete(fields, "form_type")

	attachments, ok := ctrl.collectAttachments(c, form.File[evidenceFieldName])
	if !ok {
		return
	}

	submission, err := ctrl.submissionService.Submit(c.Request.Context(), formType, fields, attachments)
	if err != nil {
		var validationErr *service.ValidationFailedError
		if errors.As(err, &validationErr) {
			apperrors.RespondWithValidationError(c, validationErr.Fields)
			return
		}
		if errors.Is(err, service.ErrUnknownForm) {
			apperrors.BadRequest(c, apperrors.FormUnknownType, "Tipo de solicitação desconhecido.")
			return
		}

		logger.Error("Submission failed", err, map[string]interface{}{
			"form_type": formType,
		})
		info := apperrors.ParseError(err)
		apperrors.RespondWithError(c, info.Status, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"protocolo": submission.Protocolo,
		"message":   "Solicitação recebida! Guarde o número de protocolo.",
	})
}

// collectAttachments filters the evidence parts the way the form does:
// unnamed or empty files are dropped, the count is capped, and size and
// content type are enforced before anything touches the blob store.
func (ctrl *SubmissionController) collectAttachments(c *gin.Context, headers []*multipart.FileHeader) ([]model.Attachment, bool) {
	if len(headers) > ctrl.upload.MaxFiles {
		apperrors.BadRequest(c, apperrors.UploadTooManyFiles, "Número máximo de anexos excedido.")
		return nil, false
	}

	attachments := make([]model.Attachment, 0, len(headers))
	for _, fh := range headers {
		if fh.Filename == "" || fh.Size == 0 {
			continue
		}

		if err := storage.ValidateFileSize(fh.Size, ctrl.upload.MaxFileSize); err != nil {
			apperrors.BadRequest(c, apperrors.UploadFileTooLarge, "Arquivo muito grande. Limite de 10 MB por anexo.")
			return nil, false
		}

		contentType := fh.Header.Get("Content-Type")
		if err := storage.ValidateContentType(contentType, allowedEvidenceTypes); err != nil {
			apperrors.BadRequest(c, apperrors.UploadInvalidFileType, "Apenas imagens e PDF são aceitos como evidência.")
			return nil, false
		}

		open := fh.Open
		attachments = append(attachments, model.Attachment{
			Filename:    fh.Filename,
			ContentType: contentType,
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return open()
			},
		})
	}

	return attachments, true
}

// GetFormSchema exposes a form's declarative field list so the client
// renders one configurable form per type.
// GET /api/v1/forms/:type/schema
func (ctrl *SubmissionController) GetFormSchema(c *gin.Context) {
	formType := model.FormType(c.Param("type"))

	sch, ok := schema.Get(formType)
	if !ok {
		apperrors.NotFound(c, apperrors.FormUnknownType, "Tipo de solicitação desconhecido.")
		return
	}

	c.JSON(http.StatusOK, sch)
}
