package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorResponse прерывает обработку и отвечает ошибкой в JSON
func ErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
