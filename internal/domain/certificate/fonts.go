package certificate

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontCandidate шрифт из списка приоритетов
type FontCandidate struct {
	Path        string `yaml:"path"`
	Description string `yaml:"description"`
}

// DefaultFonts шрифт проекта, затем системные шрифты Linux и macOS
var DefaultFonts = []FontCandidate{
	{Path: "evolventa/ttf/Evolventa-Regular.ttf", Description: "Evolventa из папки проекта"},
	{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf", Description: "Системный Linux"},
	{Path: "/System/Library/Fonts/Helvetica.ttc", Description: "Системный macOS"},
}

// FontProbe результат проверки одного шрифта
type FontProbe struct {
	FontCandidate
	Available bool
	Err       error
}

// LoadedFont разобранный шрифт с исходными байтами
type LoadedFont struct {
	FontCandidate
	Data       []byte
	Collection bool

	font *opentype.Font
}

// Face создаёт начертание нужного размера
func (f *LoadedFont) Face(size float64) (font.Face, error) {
	return opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// HasGlyph есть ли в шрифте глиф для символа
func (f *LoadedFont) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// FontLocator ищет первый доступный шрифт по списку приоритетов
type FontLocator struct {
	candidates []FontCandidate
	readFile   func(string) ([]byte, error)
}

// NewFontLocator пустой список означает DefaultFonts
func NewFontLocator(candidates []FontCandidate) *FontLocator {
	if len(candidates) == 0 {
		candidates = DefaultFonts
	}
	return &FontLocator{
		candidates: candidates,
		readFile:   os.ReadFile,
	}
}

// Candidates список шрифтов в порядке приоритета
func (l *FontLocator) Candidates() []FontCandidate {
	out := make([]FontCandidate, len(l.candidates))
	copy(out, l.candidates)
	return out
}

// Probe проверяет каждый шрифт из списка
func (l *FontLocator) Probe() []FontProbe {
	probes := make([]FontProbe, 0, len(l.candidates))
	for _, c := range l.candidates {
		_, err := l.load(c)
		probes = append(probes, FontProbe{FontCandidate: c, Available: err == nil, Err: err})
	}
	return probes
}

// Resolve первый успешно загруженный шрифт. false — ни один не подошёл.
func (l *FontLocator) Resolve() (*LoadedFont, bool) {
	for _, c := range l.candidates {
		f, err := l.load(c)
		if err == nil {
			return f, true
		}
	}
	return nil, false
}

// ResolveTrueType первый шрифт, который не является коллекцией (.ttc)
func (l *FontLocator) ResolveTrueType() (*LoadedFont, bool) {
	for _, c := range l.candidates {
		f, err := l.load(c)
		if err == nil && !f.Collection {
			return f, true
		}
	}
	return nil, false
}

// Faces начертания нужных размеров: из первого доступного шрифта
// или встроенный растровый шрифт, если не нашлось ни одного.
func (l *FontLocator) Faces(sizes ...float64) ([]font.Face, string, func()) {
	if f, ok := l.Resolve(); ok {
		faces := make([]font.Face, 0, len(sizes))
		for _, size := range sizes {
			face, err := f.Face(size)
			if err != nil {
				closeFaces(faces)
				faces = nil
				break
			}
			faces = append(faces, face)
		}
		if faces != nil {
			return faces, f.Description, func() { closeFaces(faces) }
		}
	}

	faces := make([]font.Face, len(sizes))
	for i := range faces {
		faces[i] = basicfont.Face7x13
	}
	return faces, "встроенный", func() {}
}

func (l *FontLocator) load(c FontCandidate) (*LoadedFont, error) {
	data, err := l.readFile(c.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", c.Path, err)
	}

	if bytes.HasPrefix(data, []byte("ttcf")) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font collection %s: %w", c.Path, err)
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("failed to read font collection %s: %w", c.Path, err)
		}
		return &LoadedFont{FontCandidate: c, Data: data, Collection: true, font: f}, nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", c.Path, err)
	}
	return &LoadedFont{FontCandidate: c, Data: data, font: f}, nil
}

func closeFaces(faces []font.Face) {
	for _, f := range faces {
		_ = f.Close()
	}
}
