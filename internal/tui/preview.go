package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// halfBlock draws the upper pixel in the foreground and the lower one in
// the background, so one cell shows two vertical pixels.
const halfBlock = "▀"

// RenderPreview scales img to at most cols cells wide and maxRows cells
// tall, keeping its aspect ratio, and renders it with half blocks.
func RenderPreview(img image.Image, cols, maxRows int) string {
	b := img.Bounds()
	if b.Empty() || cols <= 0 || maxRows <= 0 {
		return ""
	}

	w := cols
	h := b.Dy() * w / b.Dx()
	if h > maxRows*2 {
		h = maxRows * 2
		w = max(1, b.Dx()*h/b.Dy())
	}
	h = max(2, h+h%2)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			cell := lipgloss.NewStyle().
				Foreground(hexColor(dst.RGBAAt(x, y))).
				Background(hexColor(dst.RGBAAt(x, y+1)))
			sb.WriteString(cell.Render(halfBlock))
		}
	}
	return sb.String()
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
