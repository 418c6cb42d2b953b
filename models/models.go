package models

// ProjecaoRequest is the request body shared by the projection endpoints.
// Field names follow the wire contract consumed by the frontend.
type ProjecaoRequest struct {
	DiasFrente        int      `json:"dias_frente"`
	ClientesExcluidos []string `json:"clientes_excluidos"`
	SemanasHistorico  int      `json:"semanas_historico"`
	DataInicio        string   `json:"data_inicio"`
}

// ProjecaoItem is one projected (client, item) quantity for a target date.
type ProjecaoItem struct {
	Data                  string  `json:"data"`
	DiaSemana             string  `json:"dia_semana"`
	DiaSemanaNum          int     `json:"dia_semana_num"`
	Cliente               string  `json:"cliente"`
	Produto               string  `json:"produto"`
	DescricaoItem         string  `json:"descricao_item"`
	QuantidadeProjetada   float64 `json:"quantidade_projetada"`
	QuantidadeArredondada int     `json:"quantidade_arredondada"`
	SemanasComDados       int     `json:"semanas_com_dados"`
	IsClienteNovo         bool    `json:"is_cliente_novo"`
}

// ProjecaoDia groups the projected items of one target date with the
// day-level totals.
type ProjecaoDia struct {
	Data                 string         `json:"data"`
	DiaSemana            string         `json:"dia_semana"`
	DiaSemanaNum         int            `json:"dia_semana_num"`
	TotalItensProjetados int            `json:"total_itens_projetados"`
	TotalQuantidade      float64        `json:"total_quantidade"`
	Itens                []ProjecaoItem `json:"itens"`
}

// ProjecaoResponse is the detailed multi-day projection response.
// HistoricoTruncado is set when the history fetch hit the row cap, so a
// consumer can tell the projection may be based on incomplete data.
type ProjecaoResponse struct {
	Dias                 []ProjecaoDia `json:"dias"`
	TotalGeralQuantidade float64       `json:"total_geral_quantidade"`
	TotalClientes        int           `json:"total_clientes"`
	TotalItensUnicos     int           `json:"total_itens_unicos"`
	GeradoEm             string        `json:"gerado_em"`
	HistoricoTruncado    bool          `json:"historico_truncado"`
}

// ItemConsolidado is a per-item projection with the client detail
// collapsed: quantities summed across every client for the target date.
type ItemConsolidado struct {
	Data                  string  `json:"data"`
	DiaSemana             string  `json:"dia_semana"`
	Produto               string  `json:"produto"`
	DescricaoItem         string  `json:"descricao_item"`
	QuantidadeProjetada   float64 `json:"quantidade_projetada"`
	QuantidadeArredondada int     `json:"quantidade_arredondada"`
}
