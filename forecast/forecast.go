package forecast

import (
	"math"
	"sort"
	"time"

	"app/database"
	"app/models"
	"app/utils"
)

// diasSemana maps weekdays to the Portuguese names used on the wire.
var diasSemana = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}

// WeekdayName returns the Portuguese weekday name for a date.
func WeekdayName(d time.Time) string {
	return diasSemana[d.Weekday()]
}

// WeekdayNum returns the weekday ordinal with Monday=0 .. Sunday=6.
func WeekdayNum(d time.Time) int {
	return (int(d.Weekday()) + 6) % 7
}

// HistoryDates returns the dates 1..weeks whole weeks before target: the
// same weekday in each of the preceding weeks, not a contiguous range.
func HistoryDates(target time.Time, weeks int) []time.Time {
	dates := make([]time.Time, 0, weeks)
	for i := 1; i <= weeks; i++ {
		dates = append(dates, target.AddDate(0, 0, -7*i))
	}
	return dates
}

// FetchWindow returns the [start, end] range a single fetch must cover so
// that every target day of a horizon starting at base finds its full
// history: one day before the oldest aligned week, through today. History
// is only ever drawn from the past, never beyond today.
func FetchWindow(base, today time.Time, weeks int) (time.Time, time.Time) {
	return base.AddDate(0, 0, -(weeks*7 + 1)), today
}

// WeightedAverage computes the recency-weighted mean of values: the last
// element is weighted n and the first 1, so with values in date-ascending
// order the most recent sale always carries the highest weight. The
// store's fetch guarantees that order. An empty slice averages to 0.
func WeightedAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum, weights float64
	for i, v := range values {
		w := float64(i + 1)
		sum += v * w
		weights += w
	}
	return sum / weights
}

// itemKey identifies a tracked item by the (produto, descricao) pair.
// Grouping is by the pair: an empty produto still forms a valid key.
type itemKey struct {
	produto   string
	descricao string
}

// ComputeDay builds the projection for a single target date from the
// shared batch of fetched records. Pure function: same inputs, same
// output. Clients with no sale on any relevant history date produce no
// item at all.
func ComputeDay(records []database.SalesRecord, target time.Time, weeks int, excluded []string) models.ProjecaoDia {
	historyDates := make(map[string]struct{}, weeks)
	for _, d := range HistoryDates(target, weeks) {
		historyDates[d.Format("2006-01-02")] = struct{}{}
	}

	skip := make(map[string]struct{}, len(excluded))
	for _, c := range excluded {
		skip[c] = struct{}{}
	}

	// client -> item key -> quantities in scan order, plus a parallel
	// client -> set of history dates with at least one sale.
	grouped := make(map[string]map[itemKey][]float64)
	datesPerClient := make(map[string]map[string]struct{})

	for _, rec := range records {
		dateStr := rec.SaleDate.Format("2006-01-02")
		if _, ok := historyDates[dateStr]; !ok {
			continue
		}
		if _, ok := skip[rec.Client]; ok {
			continue
		}

		if grouped[rec.Client] == nil {
			grouped[rec.Client] = make(map[itemKey][]float64)
			datesPerClient[rec.Client] = make(map[string]struct{})
		}
		datesPerClient[rec.Client][dateStr] = struct{}{}

		key := itemKey{produto: rec.Product, descricao: rec.Description}
		grouped[rec.Client][key] = append(grouped[rec.Client][key], rec.Quantity)
	}

	dataStr := target.Format("2006-01-02")
	nomeDia := WeekdayName(target)
	numDia := WeekdayNum(target)

	itens := make([]models.ProjecaoItem, 0)
	for cliente, porItem := range grouped {
		semanasComDados := len(datesPerClient[cliente])
		novo := semanasComDados < weeks

		for key, quantidades := range porItem {
			projetada := WeightedAverage(quantidades)
			itens = append(itens, models.ProjecaoItem{
				Data:                  dataStr,
				DiaSemana:             nomeDia,
				DiaSemanaNum:          numDia,
				Cliente:               cliente,
				Produto:               key.produto,
				DescricaoItem:         key.descricao,
				QuantidadeProjetada:   utils.Round3(projetada),
				QuantidadeArredondada: int(math.Ceil(projetada)),
				SemanasComDados:       semanasComDados,
				IsClienteNovo:         novo,
			})
		}
	}

	sort.Slice(itens, func(i, j int) bool {
		if itens[i].Cliente != itens[j].Cliente {
			return itens[i].Cliente < itens[j].Cliente
		}
		return itens[i].DescricaoItem < itens[j].DescricaoItem
	})

	var total float64
	for _, item := range itens {
		total += item.QuantidadeProjetada
	}

	return models.ProjecaoDia{
		Data:                 dataStr,
		DiaSemana:            nomeDia,
		DiaSemanaNum:         numDia,
		TotalItensProjetados: len(itens),
		TotalQuantidade:      utils.Round3(total),
		Itens:                itens,
	}
}

// Consolidate collapses a day's per-client items into per-item totals,
// summing the rounded projected quantities across clients and sorting by
// item description.
func Consolidate(dia models.ProjecaoDia) []models.ItemConsolidado {
	somas := make(map[itemKey]float64)
	for _, item := range dia.Itens {
		somas[itemKey{produto: item.Produto, descricao: item.DescricaoItem}] += item.QuantidadeProjetada
	}

	keys := make([]itemKey, 0, len(somas))
	for k := range somas {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].descricao != keys[j].descricao {
			return keys[i].descricao < keys[j].descricao
		}
		return keys[i].produto < keys[j].produto
	})

	out := make([]models.ItemConsolidado, 0, len(keys))
	for _, k := range keys {
		qtd := somas[k]
		out = append(out, models.ItemConsolidado{
			Data:                  dia.Data,
			DiaSemana:             dia.DiaSemana,
			Produto:               k.produto,
			DescricaoItem:         k.descricao,
			QuantidadeProjetada:   utils.Round3(qtd),
			QuantidadeArredondada: int(math.Ceil(qtd)),
		})
	}
	return out
}
