package certificate

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrTemplate = errors.New("certificate template unavailable")

// Overlay позиция и размер текста на шаблоне (левый верхний угол строки)
type Overlay struct {
	X    int
	Y    int
	Size float64
}

// Layout координаты трёх надписей грамоты
type Layout struct {
	Name  Overlay
	Level Overlay
	Date  Overlay
}

// DefaultLayout координаты под шаблон certificate_template.png
var DefaultLayout = Layout{
	Name:  Overlay{X: 360, Y: 610, Size: 48},
	Level: Overlay{X: 180, Y: 1110, Size: 44},
	Date:  Overlay{X: 300, Y: 1270, Size: 44},
}

const DateFormat = "02.01.2006"

// Renderer накладывает имя, уровень и дату на шаблон грамоты
type Renderer struct {
	templatePath string
	layout       Layout
	fonts        *FontLocator
	now          func() time.Time
	log          zerolog.Logger
}

// NewRenderer создаёт генератор грамот
func NewRenderer(templatePath string, fonts *FontLocator, log zerolog.Logger) *Renderer {
	return &Renderer{
		templatePath: templatePath,
		layout:       DefaultLayout,
		fonts:        fonts,
		now:          time.Now,
		log:          log,
	}
}

// WithClock подменяет источник даты
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Render возвращает PNG грамоты. Ошибка загрузки шаблона прерывает только эту генерацию.
func (r *Renderer) Render(name string, totalScore int, level string, completedPhases int) ([]byte, error) {
	const op = "certificate.Render"

	tmpl, err := r.loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	canvas := image.NewRGBA(tmpl.Bounds())
	draw.Draw(canvas, canvas.Bounds(), tmpl, tmpl.Bounds().Min, draw.Src)

	faces, fontName, release := r.fonts.Faces(r.layout.Name.Size, r.layout.Level.Size, r.layout.Date.Size)
	defer release()

	r.log.Debug().
		Str("font", fontName).
		Int("score", totalScore).
		Int("phases", completedPhases).
		Msg("rendering certificate")

	drawText(canvas, faces[0], r.layout.Name, name)
	drawText(canvas, faces[1], r.layout.Level, level)
	drawText(canvas, faces[2], r.layout.Date, r.now().Format(DateFormat))

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("%s: failed to encode png: %w", op, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) loadTemplate() (image.Image, error) {
	f, err := os.Open(r.templatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrTemplate, r.templatePath, err)
	}
	return img, nil
}

func drawText(dst draw.Image, face font.Face, at Overlay, text string) {
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(at.X, at.Y+ascent),
	}
	d.DrawString(text)
}
