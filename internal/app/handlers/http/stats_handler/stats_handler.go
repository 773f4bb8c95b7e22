package stats_handler

import (
	"net/http"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/response"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/gin-gonic/gin"
)

// ExportFileName имя файла при выгрузке статистики
const ExportFileName = "bot_stats.json"

// Ledger статистика прохождений
type Ledger interface {
	Snapshot() stats.Document
	Export() ([]byte, error)
}

// StatsHandler отдаёт статистику бота
type StatsHandler struct {
	ledger Ledger
}

// NewStatsHandler создает новый экземпляр обработчика
func NewStatsHandler(ledger Ledger) *StatsHandler {
	return &StatsHandler{ledger: ledger}
}

// Summary GET /api/stats: документ статистики в JSON
func (h *StatsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Snapshot())
}

// Export GET /api/stats/export: тот же документ как файл для скачивания
func (h *StatsHandler) Export(c *gin.Context) {
	data, err := h.ledger.Export()
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, "Failed to export stats")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+ExportFileName+`"`)
	c.Data(http.StatusOK, "application/json", data)
}
