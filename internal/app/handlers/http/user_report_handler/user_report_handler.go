package user_report_handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/response"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	resultsService "github.com/IT-Nick/burncheckbot/internal/domain/results/service"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/gin-gonic/gin"
)

// UserResults последние результаты из статистики
type UserResults interface {
	UserResult(userID int64) (stats.UserRecord, bool)
}

// History архив результатов
type History interface {
	History(ctx context.Context, userID int64, limit int) ([]model.ResultRecord, error)
}

// UserReportResponse структура для ответа
type UserReportResponse struct {
	TelegramID int64                `json:"telegram_id"`
	Latest     stats.UserRecord     `json:"latest"`
	History    []model.ResultRecord `json:"history,omitempty"`
}

// UserReportHandler структура для обработчика GET /api/users/:id
type UserReportHandler struct {
	stats   UserResults
	history History
}

// NewUserReportHandler создает новый экземпляр обработчика
func NewUserReportHandler(stats UserResults, history History) *UserReportHandler {
	return &UserReportHandler{stats: stats, history: history}
}

func (h *UserReportHandler) Handle(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, "User id must be a number")
		return
	}

	rec, ok := h.stats.UserResult(userID)
	if !ok {
		response.ErrorResponse(c, http.StatusNotFound, fmt.Sprintf("User %d not found", userID))
		return
	}

	resp := UserReportResponse{TelegramID: userID, Latest: rec}

	if h.history != nil {
		records, err := h.history.History(c.Request.Context(), userID, resultsService.DefaultHistoryLimit)
		switch {
		case errors.Is(err, resultsService.ErrHistoryDisabled):
		case err != nil:
			response.ErrorResponse(c, http.StatusInternalServerError, "Failed to load history")
			return
		default:
			resp.History = records
		}
	}

	c.JSON(http.StatusOK, resp)
}
