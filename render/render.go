// Package render draws a solved (or unsolved) maze grid into a raster
// image: one colored square per cell with a black outline, optionally
// followed by a caption strip for reporting the step count.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/zucenko/mazer/model"
)

// DefaultCellWidth is the side of one rendered cell in pixels.
const DefaultCellWidth = 70

var palette = map[model.CellState]color.RGBA{
	model.Wall:     {R: 40, G: 40, B: 40, A: 255},
	model.Start:    {R: 0, G: 0, B: 200, A: 255},
	model.Target:   {R: 0, G: 171, B: 28, A: 255},
	model.OnPath:   {R: 220, G: 235, B: 113, A: 255},
	model.Explored: {R: 212, G: 97, B: 85, A: 255},
	model.Open:     {R: 237, G: 240, B: 252, A: 255},
}

var outline = color.RGBA{A: 255}

// Options controls cell geometry and the optional caption below the
// maze.
type Options struct {
	CellWidth int
	Caption   string
}

func (o Options) cellWidth() int {
	if o.CellWidth > 0 {
		return o.CellWidth
	}
	return DefaultCellWidth
}

// Draw renders the grid. Every cell is filled with its state color and
// outlined in black. A non-empty caption appends one cell-height strip
// at the bottom with the text drawn in the Go Regular face.
func Draw(g *model.Grid, o Options) (*image.RGBA, error) {
	cw := o.cellWidth()
	width := cw * g.Cols
	height := cw * g.Rows
	captionHeight := 0
	if o.Caption != "" {
		captionHeight = cw
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height+captionHeight))
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			fill := palette[g.Cells[row][col]]
			cell := image.Rect(col*cw, row*cw, (col+1)*cw, (row+1)*cw)
			draw.Draw(img, cell, image.NewUniform(outline), image.ZP, draw.Src)
			draw.Draw(img, cell.Inset(1), image.NewUniform(fill), image.ZP, draw.Src)
		}
	}

	if o.Caption != "" {
		strip := image.Rect(0, height, width, height+captionHeight)
		draw.Draw(img, strip, image.NewUniform(outline), image.ZP, draw.Src)
		if err := drawCaption(img, o.Caption, cw, height); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// WritePNG renders the grid and writes it to filename.
func WritePNG(g *model.Grid, filename string, o Options) error {
	img, err := Draw(g, o)
	if err != nil {
		return err
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}

func drawCaption(img *image.RGBA, caption string, cellWidth, top int) error {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	const dpi = 72
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    float64(cellWidth) / 2,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(palette[model.Open]),
		Face: face,
		Dot:  fixed.P(cellWidth/4, top+cellWidth*2/3),
	}
	drawer.DrawString(caption)
	return nil
}
