package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/database"
	"app/forecast"
	"app/models"
	"app/utils"
)

// parseProjecaoRequest parses the shared projection request body, applies
// the defaults and validates bounds and the optional start date. A
// non-empty message means the request must be rejected with 400.
func parseProjecaoRequest(c *fiber.Ctx) (models.ProjecaoRequest, time.Time, string) {
	req := models.ProjecaoRequest{DiasFrente: 4, SemanasHistorico: 4}
	if err := c.BodyParser(&req); err != nil {
		return req, time.Time{}, "Invalid request body"
	}

	if req.DiasFrente < 1 || req.DiasFrente > 7 {
		return req, time.Time{}, "dias_frente deve ser entre 1 e 7"
	}
	if req.SemanasHistorico < 2 || req.SemanasHistorico > 12 {
		return req, time.Time{}, "semanas_historico deve ser entre 2 e 12"
	}

	// Default base date is tomorrow.
	dataBase := time.Now().AddDate(0, 0, 1)
	if req.DataInicio != "" {
		parsed, err := time.Parse("2006-01-02", req.DataInicio)
		if err != nil {
			return req, time.Time{}, "data_inicio inválida, use o formato YYYY-MM-DD"
		}
		dataBase = parsed
	}

	return req, dataBase, ""
}

// buildProjecao fetches one history batch covering the whole horizon and
// computes each target day against it.
func buildProjecao(c *fiber.Ctx, req models.ProjecaoRequest, dataBase time.Time) ([]models.ProjecaoDia, bool, error) {
	inicio, fim := forecast.FetchWindow(dataBase, time.Now(), req.SemanasHistorico)

	vendas, truncado, err := store.FetchSalesPeriod(c.Context(), inicio, fim)
	if err != nil {
		return nil, false, err
	}
	if truncado {
		log.Printf("[PROJECAO] janela %s a %s atingiu o limite de %d linhas, histórico truncado",
			inicio.Format("2006-01-02"), fim.Format("2006-01-02"), database.MaxRows)
	}

	dias := make([]models.ProjecaoDia, 0, req.DiasFrente)
	for i := 0; i < req.DiasFrente; i++ {
		alvo := dataBase.AddDate(0, 0, i)
		dias = append(dias, forecast.ComputeDay(vendas, alvo, req.SemanasHistorico, req.ClientesExcluidos))
	}
	return dias, truncado, nil
}

// HandleGerarProjecao returns the detailed per-client projection for the
// next N days.
func HandleGerarProjecao(c *fiber.Ctx) error {
	req, dataBase, msg := parseProjecaoRequest(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
	}

	dias, truncado, err := buildProjecao(c, req, dataBase)
	if err != nil {
		log.Printf("[PROJECAO] erro ao buscar vendas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch sales history"})
	}

	clientes := make(map[string]struct{})
	itensUnicos := make(map[string]struct{})
	var totalGeral float64
	for _, dia := range dias {
		totalGeral += dia.TotalQuantidade
		for _, item := range dia.Itens {
			clientes[item.Cliente] = struct{}{}
			itensUnicos[item.DescricaoItem] = struct{}{}
		}
	}

	return c.JSON(models.ProjecaoResponse{
		Dias:                 dias,
		TotalGeralQuantidade: utils.Round3(totalGeral),
		TotalClientes:        len(clientes),
		TotalItensUnicos:     len(itensUnicos),
		GeradoEm:             time.Now().Format(time.RFC3339),
		HistoricoTruncado:    truncado,
	})
}

// HandleProjecaoConsolidada returns the projection consolidated by item,
// quantities summed across all clients per target day.
func HandleProjecaoConsolidada(c *fiber.Ctx) error {
	req, dataBase, msg := parseProjecaoRequest(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
	}

	dias, _, err := buildProjecao(c, req, dataBase)
	if err != nil {
		log.Printf("[PROJECAO] erro ao buscar vendas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch sales history"})
	}

	consolidado := make([]models.ItemConsolidado, 0)
	for _, dia := range dias {
		consolidado = append(consolidado, forecast.Consolidate(dia)...)
	}

	return c.JSON(consolidado)
}

// HandleDownloadProjecao streams the detailed projection as a CSV file.
func HandleDownloadProjecao(c *fiber.Ctx) error {
	req, dataBase, msg := parseProjecaoRequest(c)
	if msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": msg})
	}

	dias, _, err := buildProjecao(c, req, dataBase)
	if err != nil {
		log.Printf("[PROJECAO] erro ao buscar vendas: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to fetch sales history"})
	}

	conteudo, err := forecast.RenderCSV(dias)
	if err != nil {
		log.Printf("[PROJECAO] erro ao gerar CSV: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to render CSV"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=previsao_vendas_%s.csv", time.Now().Format("2006-01-02")))
	return c.Send(conteudo)
}
