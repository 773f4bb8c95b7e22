package report

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/certificate"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/jung-kurt/gofpdf"
)

var ErrNoFont = errors.New("no truetype font with cyrillic support found")

const fontFamily = "ReportFont"

// Generator собирает PDF-отчёт по статистике прохождений
type Generator struct {
	fonts *certificate.FontLocator
	now   func() time.Time
}

func NewGenerator(fonts *certificate.FontLocator) *Generator {
	return &Generator{fonts: fonts, now: time.Now}
}

// WithClock подменяет время формирования отчёта
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Filename имя файла отчёта на дату формирования
func (g *Generator) Filename() string {
	return "burncheck_report_" + g.now().Format("2006-01-02") + ".pdf"
}

// Generate формирует PDF по снимку статистики.
// Отчёт формируется непрерывным текстом с переносами, без таблиц.
func (g *Generator) Generate(doc stats.Document) ([]byte, error) {
	const op = "report.Generate"

	f, ok := g.fonts.ResolveTrueType()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoFont)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8FontFromBytes(fontFamily, "", f.Data)
	pdf.SetTitle("Тест на выгорание: статистика", true)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "", 16)
	pdf.MultiCell(0, 10, "Отчет по тесту на выгорание", "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(fontFamily, "", 10)
	pdf.MultiCell(0, 6, "Сформирован: "+g.now().Format("02.01.2006 15:04"), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(fontFamily, "", 12)
	pdf.MultiCell(0, 8, printable(f, summary(doc)), "", "L", false)
	pdf.Ln(4)

	ids := make([]int64, 0, len(doc.Users))
	for key := range doc.Users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	pdf.SetFont(fontFamily, "", 14)
	pdf.MultiCell(0, 10, fmt.Sprintf("Пользователи (%d)", len(ids)), "", "L", false)

	pdf.SetFont(fontFamily, "", 11)
	for _, id := range ids {
		rec := doc.Users[strconv.FormatInt(id, 10)]
		pdf.MultiCell(0, 7, printable(f, userLine(id, rec)), "", "L", false)
		pdf.Ln(1)
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func userLine(id int64, rec stats.UserRecord) string {
	u := model.User{ID: id, Username: rec.Username, FirstName: rec.FirstName, LastName: rec.LastName}
	line := fmt.Sprintf("%d  %s", id, u.DisplayName())
	if rec.Username != "" {
		line += " (@" + rec.Username + ")"
	}
	if rec.TestResult == nil {
		return line + "\nТест не завершён"
	}
	return fmt.Sprintf("%s\n%s, %d баллов, %s", line, rec.TestResult.Level, rec.TestResult.Score, rec.TestDate)
}

// summary сводка для PDF: те же цифры, что в /stats, без эмодзи
func summary(doc stats.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Всего пользователей: %d\n", doc.TotalUsers)
	fmt.Fprintf(&b, "Завершённых тестов: %d\n\n", doc.CompletedTests)
	b.WriteString("Результаты:\n")
	for _, level := range model.Levels() {
		count := doc.TestResults[level.Label()]
		pct := 0.0
		if doc.CompletedTests > 0 {
			pct = float64(count) * 100 / float64(doc.CompletedTests)
		}
		fmt.Fprintf(&b, "- %s: %d (%.1f%%)\n", level.Label(), count, pct)
	}
	if doc.LastUpdated != "" {
		fmt.Fprintf(&b, "\nОбновлено: %s", doc.LastUpdated)
	}
	return b.String()
}

// printable выбрасывает символы, которых нет в шрифте.
// gofpdf работает только с BMP и падает на всём, что вне таблицы ширин.
func printable(f *certificate.LoadedFont, s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteRune(r)
		case r <= 0xFFFF && f.HasGlyph(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
