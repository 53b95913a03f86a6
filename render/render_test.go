package render

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zucenko/mazer/model"
)

func testGrid(t *testing.T) *model.Grid {
	t.Helper()
	grid, err := model.Read(strings.NewReader("A#B"))
	if err != nil {
		t.Fatalf("parsing maze: %v", err)
	}
	return grid
}

func TestDraw(t *testing.T) {
	grid := testGrid(t)
	img, err := Draw(grid, Options{CellWidth: 10})
	assert.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 30, bounds.Dx())
	assert.Equal(t, 10, bounds.Dy())

	// cell centers carry the state colors, cell corners the outline
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 200, A: 255}, img.RGBAAt(5, 5), "start cell")
	assert.Equal(t, color.RGBA{R: 40, G: 40, B: 40, A: 255}, img.RGBAAt(15, 5), "wall cell")
	assert.Equal(t, color.RGBA{R: 0, G: 171, B: 28, A: 255}, img.RGBAAt(25, 5), "target cell")
	assert.Equal(t, color.RGBA{A: 255}, img.RGBAAt(0, 0), "outline")
}

func TestDrawWithCaption(t *testing.T) {
	grid := testGrid(t)
	img, err := Draw(grid, Options{CellWidth: 10, Caption: "steps: 3"})
	assert.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dy(), "caption strip adds one cell height")
}

func TestDrawDefaultCellWidth(t *testing.T) {
	grid := testGrid(t)
	img, err := Draw(grid, Options{})
	assert.NoError(t, err)
	assert.Equal(t, 3*DefaultCellWidth, img.Bounds().Dx())
}
