package tray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

const iconSize = 32

var (
	iconPaper  = color.RGBA{R: 0xE2, G: 0xE8, B: 0xF0, A: 0xFF}
	iconHeader = color.RGBA{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}
	iconMark   = color.RGBA{R: 0x63, G: 0x66, B: 0xF1, A: 0xFF}
)

// calendarIcon draws a small calendar page: red header band over a grid of day marks
func calendarIcon() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))

	for y := 2; y < iconSize-2; y++ {
		for x := 2; x < iconSize-2; x++ {
			c := iconPaper
			if y < 10 {
				c = iconHeader
			}
			img.Set(x, y, c)
		}
	}

	// 4x3 day marks
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			x0, y0 := 5+col*6, 13+row*6
			for y := y0; y < y0+3; y++ {
				for x := x0; x < x0+4; x++ {
					img.Set(x, y, iconMark)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
