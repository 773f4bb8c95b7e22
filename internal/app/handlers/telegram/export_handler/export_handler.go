package export_handler

import (
	"bytes"
	"fmt"

	"gopkg.in/telebot.v4"
)

// ExportFileName имя выгружаемого файла статистики
const ExportFileName = "bot_stats.json"

// Exporter статистика в JSON
type Exporter interface {
	Export() ([]byte, error)
}

// ExportHandler отправляет администратору файл статистики (/export)
type ExportHandler struct {
	stats Exporter
}

func NewExportHandler(stats Exporter) *ExportHandler {
	return &ExportHandler{stats: stats}
}

func (h *ExportHandler) Handle(c telebot.Context) error {
	data, err := h.stats.Export()
	if err != nil {
		return fmt.Errorf("export_handler: %w", err)
	}

	doc := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(data)),
		FileName: ExportFileName,
		MIME:     "application/json",
		Caption:  "Статистика бота",
	}
	return c.Send(doc)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ExportHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
