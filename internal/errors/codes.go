package errors

// Constantes de código de erro
// Formato: CATEGORIA_DETALHE
// O frontend mapeia mensagens a partir destes códigos

const (
	// ==================== Configuração (CONFIG_) ====================
	ConfigMissingWebhook = "CONFIG_MISSING_WEBHOOK" // Webhook não configurado
	ConfigMissingSheets  = "CONFIG_MISSING_SHEETS"  // Planilha não configurada

	// ==================== Validação (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // Entrada inválida
	ValidationRequired      = "VALIDATION_REQUIRED"       // Campo obrigatório
	ValidationInvalidPhone  = "VALIDATION_INVALID_PHONE"  // Telefone incompleto
	ValidationInvalidEmail  = "VALIDATION_INVALID_EMAIL"  // E-mail inválido
	ValidationInvalidDate   = "VALIDATION_INVALID_DATE"   // Data inválida
	ValidationDateTooRecent = "VALIDATION_DATE_TOO_RECENT" // Aguarde o prazo de dias úteis

	// ==================== Formulário (FORM_) ====================
	FormUnknownType = "FORM_UNKNOWN_TYPE" // Tipo de formulário desconhecido

	// ==================== Loja (STORE_) ====================
	// Uma loja fora da lista volta como erro de validação por campo,
	// não como código próprio.
	StoreListUnavailable = "STORE_LIST_UNAVAILABLE" // Lista de lojas indisponível

	// ==================== Evidências (UPLOAD_) ====================
	UploadInvalidFileType = "UPLOAD_INVALID_FILE_TYPE" // Tipo de arquivo não permitido
	UploadFileTooLarge    = "UPLOAD_FILE_TOO_LARGE"    // Arquivo muito grande
	UploadTooManyFiles    = "UPLOAD_TOO_MANY_FILES"    // Limite de anexos excedido
	UploadFailed          = "UPLOAD_FAILED"            // Falha no envio do anexo

	// ==================== Webhook (WEBHOOK_) ====================
	WebhookDeliveryFailed = "WEBHOOK_DELIVERY_FAILED" // Falha na entrega da solicitação

	// ==================== Erros internos (INTERNAL_) ====================
	InternalServerError = "INTERNAL_SERVER_ERROR" // Erro do servidor
	InternalExternalAPI = "INTERNAL_EXTERNAL_API" // Erro em API externa
)
