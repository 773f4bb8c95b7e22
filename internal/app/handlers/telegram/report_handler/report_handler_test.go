package report_handler

import (
	"testing"

	"github.com/IT-Nick/burncheckbot/internal/domain/report"
	"github.com/IT-Nick/burncheckbot/internal/domain/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

type fakeContext struct {
	telebot.Context
	sent []interface{}
}

func (f *fakeContext) Send(what interface{}, _ ...interface{}) error {
	f.sent = append(f.sent, what)
	return nil
}

type fakeStats struct{}

func (fakeStats) Snapshot() stats.Document { return stats.NewDocument() }

type fakeGenerator struct {
	data []byte
	err  error
}

func (g fakeGenerator) Filename() string { return "burncheck_report_2025-03-09.pdf" }
func (g fakeGenerator) Generate(stats.Document) ([]byte, error) {
	return g.data, g.err
}

func TestReportHandler(t *testing.T) {
	c := &fakeContext{}
	h := NewReportHandler(fakeStats{}, fakeGenerator{data: []byte("%PDF-1.3")})
	require.NoError(t, h.Handle(c))

	require.Len(t, c.sent, 1)
	doc, ok := c.sent[0].(*telebot.Document)
	require.True(t, ok)
	assert.Equal(t, "burncheck_report_2025-03-09.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.MIME)
}

func TestReportHandlerNoFont(t *testing.T) {
	c := &fakeContext{}
	h := NewReportHandler(fakeStats{}, fakeGenerator{err: report.ErrNoFont})
	require.NoError(t, h.Handle(c))

	require.Len(t, c.sent, 1)
	assert.Contains(t, c.sent[0], "шрифт")
}
