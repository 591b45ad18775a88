package terminal

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/poly/engine"
	"github.com/lixenwraith/poly/render"
)

const halfBlock = '▀'

// Renderer draws frames onto a tcell screen
type Renderer struct {
	clear   color.RGBA
	sampler render.Sampler
	buf     *image.RGBA
}

// NewRenderer creates a renderer with the sky color and sampler
func NewRenderer(clear color.RGBA, sampler render.Sampler) *Renderer {
	return &Renderer{clear: clear, sampler: sampler}
}

// Viewport returns the pixel size of a cols x rows terminal
func Viewport(cols, rows int) (int, int) {
	return cols, rows * 2
}

// Draw composites the frame and writes every cell of the screen
func (r *Renderer) Draw(screen tcell.Screen, frame render.Frame, images engine.ImageSource) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	w, h := Viewport(cols, rows)
	if r.buf == nil || r.buf.Bounds().Dx() != w || r.buf.Bounds().Dy() != h {
		r.buf = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	render.Rasterize(r.buf, frame, images, r.clear, r.sampler)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := r.buf.RGBAAt(x, 2*y)
			bottom := r.buf.RGBAAt(x, 2*y+1)
			screen.SetContent(x, y, halfBlock, nil, tcell.StyleDefault.
				Foreground(toColor(top)).
				Background(toColor(bottom)))
		}
	}

	panelRows := r.drawHUD(screen, frame, cols)
	if frame.Inspector != nil {
		r.drawInspector(screen, frame.Inspector, cols, rows, panelRows)
	}
	if frame.Paused {
		label := "PAUSED"
		drawString(screen, (cols-len(label))/2, rows/2, label, tcell.StyleDefault.
			Foreground(tcell.ColorWhite).
			Background(tcell.ColorBlack))
	}
}

// drawHUD prints HUD text centered in the panel rows, returns the rows the panel covers
func (r *Renderer) drawHUD(screen tcell.Screen, frame render.Frame, cols int) int {
	panelRows := 0
	for _, hud := range frame.HUD {
		rowsCovered := int(hud.Panel.Y+hud.Panel.H+1) / 2
		if rowsCovered < 1 {
			rowsCovered = 1
		}
		panelRows = max(panelRows, rowsCovered)

		row := int(hud.Panel.Y)/2 + (rowsCovered-1)/2
		col := 1
		for _, t := range hud.Texts {
			// Keep the tinted panel pixel as background so text sits on the HUD strip
			bg := r.buf.RGBAAt(min(col, cols-1), 2*row+1)
			style := tcell.StyleDefault.Foreground(toColor(t.Color)).Background(toColor(bg))
			col = drawString(screen, col, row, t.Text, style) + 1
		}
	}
	return panelRows
}

func (r *Renderer) drawInspector(screen tcell.Screen, lines []string, cols, rows, top int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	start := max(rows-len(lines), top)
	for i, line := range lines {
		y := start + i
		if y >= rows {
			break
		}
		end := drawString(screen, 0, y, line, style)
		for x := end; x < cols; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawString writes s from (x, y) clipped to the screen and returns the next column
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	cols, _ := screen.Size()
	for _, ch := range s {
		if x >= cols {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
