package render

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/image/font/opentype"

	"github.com/basel-ax/coloringbook/internal/domain"
)

// fontDirs are searched, in order, when the configured font path is not found as given
var fontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
}

// Renderer draws the placeholder image and writes the PDF report.
// It is safe for concurrent use.
type Renderer struct {
	font   *opentype.Font // nil means the built-in bitmap face
	logger log.Logger
}

// NewRenderer creates a renderer using the TrueType font at fontPath. A missing
// or unreadable font is logged and replaced by the built-in face.
func NewRenderer(fontPath string, logger log.Logger) *Renderer {
	r := &Renderer{logger: logger}

	f, path, err := loadFont(fontPath)
	if err != nil {
		level.Warn(logger).Log("msg", "using default font", "font_path", fontPath, "err", err)
		return r
	}

	level.Debug(logger).Log("msg", "font loaded", "path", path)
	r.font = f
	return r
}

// Render implements domain.Renderer
func (r *Renderer) Render(prompt, userID string) (*domain.RenderedArtifacts, error) {
	img, err := r.renderImage(prompt, userID)
	if err != nil {
		return nil, err
	}

	pdf, err := renderReport(prompt, userID)
	if err != nil {
		return nil, err
	}

	return &domain.RenderedArtifacts{Image: img, PDF: pdf}, nil
}

func loadFont(fontPath string) (*opentype.Font, string, error) {
	candidates := []string{fontPath}
	if !filepath.IsAbs(fontPath) {
		for _, dir := range fontDirs {
			candidates = append(candidates, filepath.Join(dir, filepath.Base(fontPath)))
		}
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		f, err := opentype.Parse(data)
		if err != nil {
			return nil, path, fmt.Errorf("failed to parse font %s: %w", path, err)
		}
		return f, path, nil
	}

	return nil, "", fmt.Errorf("font %s not found", fontPath)
}

// truncate safely truncates a string to the specified number of runes
func truncate(s string, length int) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}

	var size, n int
	for i := 0; i < length && n < len(s); i++ {
		_, size = utf8.DecodeRuneInString(s[n:])
		n += size
	}

	return s[:n]
}
