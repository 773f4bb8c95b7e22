package report_handler

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/IT-Nick/burncheckbot/internal/domain/report"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"gopkg.in/telebot.v4"
)

// Snapshotter копия текущей статистики
type Snapshotter interface {
	Snapshot() stats.Document
}

// Generator PDF-отчёт по статистике
type Generator interface {
	Filename() string
	Generate(doc stats.Document) ([]byte, error)
}

// ReportHandler отправляет администратору PDF-отчёт (/report)
type ReportHandler struct {
	stats     Snapshotter
	generator Generator
}

func NewReportHandler(stats Snapshotter, generator Generator) *ReportHandler {
	return &ReportHandler{stats: stats, generator: generator}
}

func (h *ReportHandler) Handle(c telebot.Context) error {
	data, err := h.generator.Generate(h.stats.Snapshot())
	if errors.Is(err, report.ErrNoFont) {
		return c.Send("Не найден шрифт с кириллицей, отчёт сформировать нельзя. Проверьте список шрифтов в конфигурации.")
	}
	if err != nil {
		return fmt.Errorf("report_handler: %w", err)
	}

	doc := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(data)),
		FileName: h.generator.Filename(),
		MIME:     "application/pdf",
		Caption:  "Отчёт по статистике",
	}
	return c.Send(doc)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ReportHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
