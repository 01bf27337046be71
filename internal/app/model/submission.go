package model

import (
	"io"
	"time"
)

// FormType identifies which portal form produced a submission.
type FormType string

const (
	// Zubalero forms
	FormContestacaoBonus     FormType = "contestacao_bonus"
	FormOuvidoriaConduta     FormType = "ouvidoria_conduta"
	FormRevisaoBloqueio      FormType = "revisao_bloqueio"
	FormSolicitacaoSaque     FormType = "solicitacao_saque"
	FormSolicitacaoMateriais FormType = "solicitacao_materiais"

	// Store-manager forms
	FormBloqueioZubalero   FormType = "bloqueio_zubalero"
	FormReportarFalta      FormType = "reportar_falta_lojista"
	FormSolicitacaoReforco FormType = "solicitacao_reforco"
)

// AllFormTypes lists every form the portal serves.
var AllFormTypes = []FormType{
	FormContestacaoBonus,
	FormOuvidoriaConduta,
	FormRevisaoBloqueio,
	FormSolicitacaoSaque,
	FormSolicitacaoMateriais,
	FormBloqueioZubalero,
	FormReportarFalta,
	FormSolicitacaoReforco,
}

func (t FormType) Valid() bool {
	for _, ft := range AllFormTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// BonusTypes is the fixed menu of contestable bonus categories.
var BonusTypes = []string{
	"Bônus Adicional 2 Turnos",
	"Bônus Data Comemorativa",
	"Bônus de Domingo",
	"Bônus de Fim de Ano",
	"Bônus de Treinamento",
	"Bônus Especial",
	"Bônus Ofertado por WhatsApp ou Push App",
	"Conectividade",
	"Hora Certa",
	"Indicação de Novo Zubalero",
	"Meta de Produtividade",
	"SKU / Item",
}

// Shifts a Zubalero can report having worked.
var Shifts = []string{"Manhã", "Tarde", "Noite", "Integral"}

// Attachment is one evidence file pulled out of the multipart body.
// Open hands the service a fresh reader so uploads can run in parallel.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Submission is the record assembled at submit time. It is never mutated
// after assembly and never persisted here; ownership transfers to the
// webhook consumer.
type Submission struct {
	FormType   FormType
	Fields     map[string]string // raw form fields as posted
	Protocolo  string
	Evidencias []string // public URLs of uploaded evidence
	Timestamp  time.Time
	Origem     string
}

// WebhookPayload flattens the submission into the JSON body the
// workflow-automation endpoint expects: every raw field at the top level
// plus the derived ones.
func (s *Submission) WebhookPayload() map[string]interface{} {
	payload := make(map[string]interface{}, len(s.Fields)+5)
	for k, v := range s.Fields {
		payload[k] = v
	}

	evidencias := s.Evidencias
	if evidencias == nil {
		evidencias = []string{}
	}

	payload["form_type"] = string(s.FormType)
	payload["protocolo"] = s.Protocolo
	payload["evidencias"] = evidencias
	payload["timestamp"] = s.Timestamp.UTC().Format(time.RFC3339)
	payload["origem"] = s.Origem
	return payload
}
