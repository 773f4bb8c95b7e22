package invite_link_handler

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/IT-Nick/burncheckbot/internal/app/handlers/http/response"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

// QRSize сторона PNG с QR-кодом в пикселях
const QRSize = 256

// параметр start в Telegram: до 64 символов A-Z, a-z, 0-9, _ и -
var sourcePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// InviteLinkHandler ссылка на бота и QR-код для приглашения пройти тест.
// Необязательный параметр source передаётся боту как аргумент /start.
type InviteLinkHandler struct {
	botUsername string
}

// NewInviteLinkHandler создает новый экземпляр обработчика
func NewInviteLinkHandler(botUsername string) *InviteLinkHandler {
	return &InviteLinkHandler{botUsername: botUsername}
}

// Link GET /api/invite
func (h *InviteLinkHandler) Link(c *gin.Context) {
	link, ok := h.link(c)
	if !ok {
		return
	}

	qrURL := "/api/invite/qr.png"
	if source := c.Query("source"); source != "" {
		qrURL += "?source=" + url.QueryEscape(source)
	}

	c.JSON(http.StatusOK, InviteLinkResponse{
		Link:      link,
		QRCodeURL: qrURL,
	})
}

// QRCode GET /api/invite/qr.png
func (h *InviteLinkHandler) QRCode(c *gin.Context) {
	link, ok := h.link(c)
	if !ok {
		return
	}

	png, err := qrcode.Encode(link, qrcode.Medium, QRSize)
	if err != nil {
		response.ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Failed to generate QR code: %v", err))
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *InviteLinkHandler) link(c *gin.Context) (string, bool) {
	if h.botUsername == "" {
		response.ErrorResponse(c, http.StatusServiceUnavailable, "Bot is not started yet")
		return "", false
	}

	link := "https://t.me/" + h.botUsername
	source := c.Query("source")
	if source == "" {
		return link, true
	}
	if !sourcePattern.MatchString(source) {
		response.ErrorResponse(c, http.StatusBadRequest, "source may contain only latin letters, digits, _ and -")
		return "", false
	}
	return link + "?start=" + source, true
}
