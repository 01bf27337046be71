package schema

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/zubalebr/contestacoes-backend/internal/app/model"
	"github.com/zubalebr/contestacoes-backend/pkg/util"
)

// Kind is the input kind of a form field. It drives both the client's
// rendering and the server-side validation below.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindPhone    Kind = "phone"
	KindDate     Kind = "date"
	KindSelect   Kind = "select"
	KindStore    Kind = "store"
	KindMoney    Kind = "money"
	KindTextarea Kind = "textarea"
)

// Condition gates a field on another field's exact value.
type Condition struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

// Field is one declarative form-field descriptor. The eight portal forms
// are data, not code: each is a list of these.
type Field struct {
	Name            string     `json:"name"`
	Label           string     `json:"label"`
	Kind            Kind       `json:"kind"`
	Required        bool       `json:"required"`
	Options         []string   `json:"options,omitempty"`
	VisibleWhen     *Condition `json:"visible_when,omitempty"`
	RequiredMessage string     `json:"-"`
	BusinessDayWait bool       `json:"business_day_wait,omitempty"`
}

// Schema is the full field list of one form type.
type Schema struct {
	FormType model.FormType `json:"form_type"`
	Fields   []Field        `json:"fields"`
}

// Visible reports whether the field applies given the posted values.
func (f *Field) Visible(values map[string]string) bool {
	if f.VisibleWhen == nil {
		return true
	}
	return values[f.VisibleWhen.Field] == f.VisibleWhen.Equals
}

// StoreField returns the field validated against the store list, if any.
func (s *Schema) StoreField() (Field, bool) {
	for _, f := range s.Fields {
		if f.Kind == KindStore {
			return f, true
		}
	}
	return Field{}, false
}

// Validate applies the per-field rules and returns a field -> message map,
// empty when the values pass. Store-list membership is checked by the
// submission service, not here; this package has no network dependencies.
func (s *Schema) Validate(values map[string]string, now time.Time, minBusinessDays int) map[string]string {
	fieldErrors := make(map[string]string)

	for _, f := range s.Fields {
		if !f.Visible(values) {
			continue
		}

		value := strings.TrimSpace(values[f.Name])

		if value == "" {
			if f.Required {
				fieldErrors[f.Name] = f.requiredMessage()
			}
			continue
		}

		switch f.Kind {
		case KindPhone:
			if !util.IsValidPhone(util.NormalizePhone(value)) {
				fieldErrors[f.Name] = "Informe o telefone completo com DDD."
			}
		case KindEmail:
			if _, err := mail.ParseAddress(value); err != nil {
				fieldErrors[f.Name] = "E-mail inválido."
			}
		case KindDate:
			date, err := time.ParseInLocation("2006-01-02", value, now.Location())
			if err != nil {
				fieldErrors[f.Name] = "Data inválida."
				continue
			}
			if f.BusinessDayWait && !util.OldEnough(date, now, minBusinessDays) {
				fieldErrors[f.Name] = fmt.Sprintf("Aguarde %d dias úteis.", minBusinessDays)
			}
		case KindSelect:
			if len(f.Options) > 0 && !contains(f.Options, value) {
				fieldErrors[f.Name] = "Selecione uma opção válida."
			}
		}
	}

	return fieldErrors
}

func (f *Field) requiredMessage() string {
	if f.RequiredMessage != "" {
		return f.RequiredMessage
	}
	return "Campo obrigatório."
}

func contains(options []string, value string) bool {
	for _, opt := range options {
		if opt == value {
			return true
		}
	}
	return false
}
