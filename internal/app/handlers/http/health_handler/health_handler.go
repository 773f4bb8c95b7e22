package health_handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse ответ проверки живости
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Handle(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
