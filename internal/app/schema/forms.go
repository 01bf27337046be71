package schema

import "github.com/zubalebr/contestacoes-backend/internal/app/model"

// Every form starts with the same identity block.
func identityFields() []Field {
	return []Field{
		{Name: "nome", Label: "NOME COMPLETO", Kind: KindText, Required: true, RequiredMessage: "Informe seu nome completo."},
		{Name: "telefone", Label: "TELEFONE (DDD + NÚMERO)", Kind: KindPhone, Required: true, RequiredMessage: "Informe o telefone completo com DDD."},
		{Name: "email", Label: "E-MAIL DE CADASTRO", Kind: KindEmail, Required: true, RequiredMessage: "E-mail obrigatório."},
	}
}

var registry = map[model.FormType]*Schema{
	model.FormContestacaoBonus: {
		FormType: model.FormContestacaoBonus,
		Fields: append(identityFields(),
			Field{Name: "tipoSolicitacao", Label: "O QUE DESEJA CONTESTAR?", Kind: KindSelect, Required: true, Options: model.BonusTypes, RequiredMessage: "Selecione o bônus."},
			Field{Name: "data_contestacao", Label: "DATA DA REALIZAÇÃO", Kind: KindDate, Required: true, BusinessDayWait: true, RequiredMessage: "Data obrigatória."},
			Field{Name: "turno", Label: "TURNO ATUADO", Kind: KindSelect, Required: true, Options: model.Shifts},
			Field{Name: "loja", Label: "LOJA ATUADA", Kind: KindStore, Required: true, RequiredMessage: "Loja inválida."},
			Field{Name: "valor_recebido", Label: "VALOR RECEBIDO", Kind: KindMoney},
			Field{Name: "valor_anunciado", Label: "VALOR ANUNCIADO", Kind: KindMoney},
			Field{Name: "detalhamento", Label: "DETALHAMENTO", Kind: KindTextarea, Required: true, RequiredMessage: "Explique o caso."},
			Field{Name: "codigo_indicacao", Label: "CÓDIGO DE INDICAÇÃO", Kind: KindText, Required: true, RequiredMessage: "Código obrigatório.",
				VisibleWhen: &Condition{Field: "tipoSolicitacao", Equals: "Indicação de Novo Zubalero"}},
			Field{Name: "sku_codigo", Label: "CÓDIGO DO SKU", Kind: KindText, Required: true, RequiredMessage: "SKU obrigatório.",
				VisibleWhen: &Condition{Field: "tipoSolicitacao", Equals: "SKU / Item"}},
		),
	},
	model.FormOuvidoriaConduta: {
		FormType: model.FormOuvidoriaConduta,
		Fields: append(identityFields(),
			Field{Name: "data_ocorrencia", Label: "DATA DA OCORRÊNCIA", Kind: KindDate},
			Field{Name: "loja", Label: "LOJA", Kind: KindStore},
			Field{Name: "detalhamento", Label: "RELATO", Kind: KindTextarea, Required: true, RequiredMessage: "Descreva a ocorrência."},
		),
	},
	model.FormRevisaoBloqueio: {
		FormType: model.FormRevisaoBloqueio,
		Fields: append(identityFields(),
			Field{Name: "motivo_bloqueio", Label: "MOTIVO INFORMADO NO APP", Kind: KindText},
			Field{Name: "detalhamento", Label: "POR QUE O BLOQUEIO DEVE SER REVISTO?", Kind: KindTextarea, Required: true, RequiredMessage: "Explique o caso."},
		),
	},
	model.FormSolicitacaoSaque: {
		FormType: model.FormSolicitacaoSaque,
		Fields: append(identityFields(),
			Field{Name: "detalhamento", Label: "DETALHES DO SAQUE", Kind: KindTextarea, Required: true, RequiredMessage: "Explique o caso."},
		),
	},
	model.FormSolicitacaoMateriais: {
		FormType: model.FormSolicitacaoMateriais,
		Fields: append(identityFields(),
			Field{Name: "loja", Label: "LOJA", Kind: KindStore, Required: true, RequiredMessage: "Loja inválida."},
			Field{Name: "material", Label: "MATERIAL", Kind: KindText, Required: true, RequiredMessage: "Informe o material."},
			Field{Name: "quantidade", Label: "QUANTIDADE", Kind: KindText},
			Field{Name: "detalhamento", Label: "OBSERVAÇÕES", Kind: KindTextarea},
		),
	},
	model.FormBloqueioZubalero: {
		FormType: model.FormBloqueioZubalero,
		Fields: append(identityFields(),
			Field{Name: "loja", Label: "LOJA", Kind: KindStore, Required: true, RequiredMessage: "Loja inválida."},
			Field{Name: "nome_zubalero", Label: "NOME DO ZUBALERO", Kind: KindText, Required: true, RequiredMessage: "Informe o parceiro."},
			Field{Name: "data_ocorrencia", Label: "DATA DA OCORRÊNCIA", Kind: KindDate},
			Field{Name: "detalhamento", Label: "RELATO DA CONDUTA", Kind: KindTextarea, Required: true, RequiredMessage: "Descreva a ocorrência."},
		),
	},
	model.FormReportarFalta: {
		FormType: model.FormReportarFalta,
		Fields: append(identityFields(),
			Field{Name: "loja", Label: "LOJA", Kind: KindStore, Required: true, RequiredMessage: "Loja inválida."},
			Field{Name: "nome_zubalero", Label: "NOME DO ZUBALERO", Kind: KindText, Required: true, RequiredMessage: "Informe o parceiro."},
			Field{Name: "data_ocorrencia", Label: "DATA DA FALTA", Kind: KindDate, Required: true, RequiredMessage: "Data obrigatória."},
			Field{Name: "turno", Label: "TURNO", Kind: KindSelect, Options: model.Shifts},
			Field{Name: "detalhamento", Label: "OBSERVAÇÕES", Kind: KindTextarea},
		),
	},
	model.FormSolicitacaoReforco: {
		FormType: model.FormSolicitacaoReforco,
		Fields: append(identityFields(),
			Field{Name: "loja", Label: "LOJA", Kind: KindStore, Required: true, RequiredMessage: "Loja inválida."},
			Field{Name: "data_reforco", Label: "DATA DO REFORÇO", Kind: KindDate, Required: true, RequiredMessage: "Data obrigatória."},
			Field{Name: "quantidade", Label: "QUANTOS ZUBALEROS?", Kind: KindText, Required: true, RequiredMessage: "Informe a quantidade."},
			Field{Name: "turno", Label: "TURNO", Kind: KindSelect, Options: model.Shifts},
			Field{Name: "detalhamento", Label: "OBSERVAÇÕES", Kind: KindTextarea},
		),
	},
}

// Get returns the schema for a form type.
func Get(formType model.FormType) (*Schema, bool) {
	s, ok := registry[formType]
	return s, ok
}
