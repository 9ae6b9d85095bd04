package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return NewRenderer(filepath.Join(t.TempDir(), "missing-font.ttf"), log.NewNopLogger())
}

func TestNewRendererFallsBackToDefaultFont(t *testing.T) {
	r := newTestRenderer(t)
	assert.Nil(t, r.font)

	artifacts, err := r.Render("a cat in a hat", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, artifacts.Image)
	assert.NotEmpty(t, artifacts.PDF)
}

func TestRenderImage(t *testing.T) {
	r := newTestRenderer(t)

	artifacts, err := r.Render("a cat in a hat", "alice")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(artifacts.Image))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())

	// Bottom-right corner is clear of text.
	rr, g, b, a := img.At(imageWidth-1, imageHeight-1).RGBA()
	assert.Equal(t, []uint32{0, 0, 0xffff, 0xffff}, []uint32{rr, g, b, a})
}

func TestImageLinesTruncate(t *testing.T) {
	userID := "user-0123456789-abcdef"
	prompt := strings.Repeat("p", 39) + "QRSTUVWXYZ"

	lines := imageLines(prompt, userID)
	require.Len(t, lines, 2)

	assert.Equal(t, "Generated for: user-01234...", lines[0].text)
	assert.Equal(t, "Prompt: "+strings.Repeat("p", 39)+"Q...", lines[1].text)
	assert.Equal(t, textLine{x: 10, y: 10, text: lines[0].text}, lines[0])
	assert.Equal(t, 80, lines[1].y)
}

func TestImageLinesShortValues(t *testing.T) {
	lines := imageLines("cat", "bob")
	assert.Equal(t, "Generated for: bob...", lines[0].text)
	assert.Equal(t, "Prompt: cat...", lines[1].text)
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		input    string
		length   int
		expected string
	}{
		{"Hello World", 5, "Hello"},
		{"Short", 10, "Short"},
		{"", 5, ""},
		{"Exactly", 7, "Exactly"},
		{"привет мир", 6, "привет"},
		{"日本語テキスト", 3, "日本語"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, truncate(tc.input, tc.length), "truncate(%q, %d)", tc.input, tc.length)
	}
}

func TestRenderReportKeepsFullValues(t *testing.T) {
	r := newTestRenderer(t)
	userID := "a-very-long-user-identifier"
	prompt := "a watercolor lighthouse on a cliff with seagulls circling above the waves"

	artifacts, err := r.Render(prompt, userID)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(artifacts.PDF, []byte("%PDF-")))
	assert.Contains(t, string(artifacts.PDF), "GENERATED REPORT")
	assert.Contains(t, string(artifacts.PDF), "Prompt: "+prompt)
	assert.Contains(t, string(artifacts.PDF), "User ID: "+userID)
}

func TestReportLines(t *testing.T) {
	lines := reportLines("p", "u")
	assert.Equal(t, []reportLine{
		{text: "GENERATED REPORT", align: "C"},
		{text: "Prompt: p", align: "L"},
		{text: "User ID: u", align: "L"},
	}, lines)
}

func TestRenderConcurrent(t *testing.T) {
	r := newTestRenderer(t)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Render("concurrent prompt", "worker")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestToCP1252(t *testing.T) {
	out, err := toCP1252("café")
	require.NoError(t, err)
	assert.Equal(t, "caf\xe9", out)

	out, err = toCP1252("猫")
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
