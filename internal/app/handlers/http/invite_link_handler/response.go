package invite_link_handler

// InviteLinkResponse структура для ответа
type InviteLinkResponse struct {
	Link      string `json:"link"`
	QRCodeURL string `json:"qr_code_url"`
}
