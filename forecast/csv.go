package forecast

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"app/models"
)

var csvHeader = []string{
	"DATA", "DIA_SEMANA", "CLIENTE", "PRODUTO", "DESCRICAO_ITEM",
	"QTD_PROJETADA", "QTD_ARREDONDADA", "SEMANAS_HISTORICO", "CLIENTE_NOVO",
}

// RenderCSV encodes the projection days as semicolon-delimited CSV with a
// UTF-8 byte-order mark, one row per projected item across all days.
func RenderCSV(dias []models.ProjecaoDia) ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteString("\ufeff")

	writer := csv.NewWriter(&buffer)
	writer.Comma = ';'

	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, dia := range dias {
		for _, item := range dia.Itens {
			novo := "Não"
			if item.IsClienteNovo {
				novo = "Sim"
			}
			row := []string{
				item.Data,
				item.DiaSemana,
				item.Cliente,
				item.Produto,
				item.DescricaoItem,
				strconv.FormatFloat(item.QuantidadeProjetada, 'f', -1, 64),
				strconv.Itoa(item.QuantidadeArredondada),
				strconv.Itoa(item.SemanasComDados),
				novo,
			}
			if err := writer.Write(row); err != nil {
				return nil, err
			}
		}
	}

	writer.Flush()
	return buffer.Bytes(), writer.Error()
}
