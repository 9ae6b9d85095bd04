package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/go-kit/log/level"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	imageWidth  = 600
	imageHeight = 400
	fontSize    = 40

	userIDDisplayLength = 10
	promptDisplayLength = 40
)

var (
	backgroundColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

type textLine struct {
	x, y int
	text string
}

// imageLines returns the text drawn on the image, top-left anchored
func imageLines(prompt, userID string) []textLine {
	return []textLine{
		{x: 10, y: 10, text: "Generated for: " + truncate(userID, userIDDisplayLength) + "..."},
		{x: 10, y: 80, text: "Prompt: " + truncate(prompt, promptDisplayLength) + "..."},
	}
}

func (r *Renderer) renderImage(prompt, userID string) ([]byte, error) {
	face := r.newFace()
	defer face.Close()

	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	ascent := face.Metrics().Ascent
	for _, line := range imageLines(prompt, userID) {
		d.Dot = fixed.Point26_6{X: fixed.I(line.x), Y: fixed.I(line.y) + ascent}
		d.DrawString(line.text)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// newFace builds a face per call; opentype faces are not safe for concurrent use
func (r *Renderer) newFace() font.Face {
	if r.font == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		level.Warn(r.logger).Log("msg", "using default font", "err", err)
		return basicfont.Face7x13
	}
	return face
}
