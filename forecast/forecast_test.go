package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"app/database"
	"app/models"
)

// 2024-05-20 is a Monday.
var segunda = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

func rec(day string, cliente, produto, descricao string, qtd float64) database.SalesRecord {
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return database.SalesRecord{SaleDate: d, Client: cliente, Product: produto, Description: descricao, Quantity: qtd}
}

func TestHistoryDates(t *testing.T) {
	for weeks := 2; weeks <= 12; weeks++ {
		dates := HistoryDates(segunda, weeks)
		assert.Len(t, dates, weeks)
		for _, d := range dates {
			assert.True(t, d.Before(segunda), "history date %s must be before target", d)
			assert.Equal(t, segunda.Weekday(), d.Weekday(), "history dates share the target weekday")
		}
	}

	dates := HistoryDates(segunda, 2)
	assert.Equal(t, "2024-05-13", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2024-05-06", dates[1].Format("2006-01-02"))
}

func TestFetchWindow(t *testing.T) {
	today := time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC)
	start, end := FetchWindow(segunda, today, 4)
	assert.Equal(t, "2024-04-21", start.Format("2006-01-02"), "start is base minus 4 weeks and a day")
	assert.Equal(t, today, end, "history never extends beyond today")
}

func TestWeekdayNames(t *testing.T) {
	assert.Equal(t, "Segunda-feira", WeekdayName(segunda))
	assert.Equal(t, 0, WeekdayNum(segunda))

	domingo := segunda.AddDate(0, 0, 6)
	assert.Equal(t, "Domingo", WeekdayName(domingo))
	assert.Equal(t, 6, WeekdayNum(domingo))
}

func TestWeightedAverage(t *testing.T) {
	assert.Equal(t, 0.0, WeightedAverage(nil))
	assert.Equal(t, 7.5, WeightedAverage([]float64{7.5}))

	// 10 a week ago, 20 most recent: (10*1 + 20*2) / 3
	assert.InDelta(t, 16.6667, WeightedAverage([]float64{10, 20}), 0.001)
}

func TestWeightedAverageMonotonic(t *testing.T) {
	base := []float64{5, 5, 5}
	before := WeightedAverage(base)
	after := WeightedAverage(append(base, 9))
	assert.Greater(t, after, before, "a higher most-recent value must raise the average")
}

func projectionFixture() []database.SalesRecord {
	return []database.SalesRecord{
		rec("2024-05-06", "ACME", "P1", "Pão Francês", 10),
		rec("2024-05-06", "ACME", "P2", "Bolo", 10),
		rec("2024-05-06", "GAMMA", "P1", "Pão Francês", 99),
		rec("2024-05-12", "ACME", "P1", "Pão Francês", 50), // off-window date
		rec("2024-05-13", "ACME", "P1", "Pão Francês", 20),
		rec("2024-05-13", "ACME", "P2", "Bolo", 0), // null quantity becomes 0
		rec("2024-05-13", "BETA", "", "Croissant", 8),
		rec("2024-05-13", "BETA", "", "Croissant", 4),
	}
}

func TestComputeDay(t *testing.T) {
	dia := ComputeDay(projectionFixture(), segunda, 2, []string{"GAMMA"})

	assert.Equal(t, "2024-05-20", dia.Data)
	assert.Equal(t, "Segunda-feira", dia.DiaSemana)
	assert.Equal(t, 0, dia.DiaSemanaNum)
	assert.Equal(t, 3, dia.TotalItensProjetados)
	assert.Len(t, dia.Itens, 3)

	// Sorted by (cliente, descricao_item).
	bolo, pao, croissant := dia.Itens[0], dia.Itens[1], dia.Itens[2]

	assert.Equal(t, "ACME", bolo.Cliente)
	assert.Equal(t, "Bolo", bolo.DescricaoItem)
	assert.InDelta(t, 3.333, bolo.QuantidadeProjetada, 0.0005)
	assert.Equal(t, 4, bolo.QuantidadeArredondada)
	assert.Equal(t, 2, bolo.SemanasComDados)
	assert.False(t, bolo.IsClienteNovo)

	assert.Equal(t, "ACME", pao.Cliente)
	assert.Equal(t, "Pão Francês", pao.DescricaoItem)
	assert.InDelta(t, 16.667, pao.QuantidadeProjetada, 0.0005)
	assert.Equal(t, 17, pao.QuantidadeArredondada)
	assert.Equal(t, 2, pao.SemanasComDados)
	assert.False(t, pao.IsClienteNovo)

	// Client with data in only 1 of 2 weeks; empty product still keys.
	assert.Equal(t, "BETA", croissant.Cliente)
	assert.Equal(t, "", croissant.Produto)
	assert.InDelta(t, 5.333, croissant.QuantidadeProjetada, 0.0005)
	assert.Equal(t, 6, croissant.QuantidadeArredondada)
	assert.Equal(t, 1, croissant.SemanasComDados)
	assert.True(t, croissant.IsClienteNovo)

	// Day total sums the rounded per-item quantities.
	assert.InDelta(t, 25.333, dia.TotalQuantidade, 0.0005)

	// Ceiling never under-provisions.
	for _, item := range dia.Itens {
		assert.GreaterOrEqual(t, float64(item.QuantidadeArredondada), item.QuantidadeProjetada-0.0005)
	}
}

func TestComputeDayExclusionIsolated(t *testing.T) {
	with := ComputeDay(projectionFixture(), segunda, 2, nil)
	without := ComputeDay(projectionFixture(), segunda, 2, []string{"GAMMA"})

	assert.Len(t, with.Itens, 4)
	assert.Len(t, without.Itens, 3)

	for _, item := range without.Itens {
		assert.NotEqual(t, "GAMMA", item.Cliente)
	}

	// Excluding one client leaves the other clients' averages untouched.
	byKey := func(dia models.ProjecaoDia) map[string]float64 {
		m := make(map[string]float64)
		for _, item := range dia.Itens {
			m[item.Cliente+"|"+item.DescricaoItem] = item.QuantidadeProjetada
		}
		return m
	}
	before := byKey(with)
	for key, qtd := range byKey(without) {
		assert.Equal(t, before[key], qtd)
	}
}

func TestComputeDayNoMatchingHistory(t *testing.T) {
	// Records exist but none on a weekday-aligned history date.
	records := []database.SalesRecord{
		rec("2024-05-12", "ACME", "P1", "Pão Francês", 50),
	}
	dia := ComputeDay(records, segunda, 4, nil)

	assert.Empty(t, dia.Itens)
	assert.Equal(t, 0, dia.TotalItensProjetados)
	assert.Equal(t, 0.0, dia.TotalQuantidade)
}

func TestConsolidate(t *testing.T) {
	records := []database.SalesRecord{
		rec("2024-05-06", "ACME", "P2", "Bolo", 5),
		rec("2024-05-13", "ACME", "P1", "Pão Francês", 10),
		rec("2024-05-13", "BETA", "P1", "Pão Francês", 20),
	}
	dia := ComputeDay(records, segunda, 2, nil)
	consolidado := Consolidate(dia)

	assert.Len(t, consolidado, 2)

	// Sorted by description, per-client detail collapsed.
	assert.Equal(t, "Bolo", consolidado[0].DescricaoItem)
	assert.InDelta(t, 5.0, consolidado[0].QuantidadeProjetada, 0.0005)
	assert.Equal(t, 5, consolidado[0].QuantidadeArredondada)

	assert.Equal(t, "Pão Francês", consolidado[1].DescricaoItem)
	assert.InDelta(t, 30.0, consolidado[1].QuantidadeProjetada, 0.0005)
	assert.Equal(t, 30, consolidado[1].QuantidadeArredondada)
	assert.Equal(t, dia.Data, consolidado[1].Data)
	assert.Equal(t, dia.DiaSemana, consolidado[1].DiaSemana)
}
