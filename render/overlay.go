package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/aether/scene"
)

const (
	tooltipWrap  = 40
	tooltipAlpha = 0.92
)

// tooltipLines builds the card text
func tooltipLines(t scene.Tooltip) []string {
	lines := []string{t.Icon + " " + t.Title, "Category: " + t.Category}
	return append(lines, Wrap(t.Description, tooltipWrap)...)
}

// drawTooltip draws the hover card at its anchor, kept inside the buffer
func drawTooltip(buf *Buffer, t scene.Tooltip) {
	if !t.Visible {
		return
	}
	lines := tooltipLines(t)
	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	w, h := inner+4, len(lines)+2

	x, y := t.X, t.Y
	if x+w > buf.Width() {
		x = buf.Width() - w
	}
	if y+h > buf.Height() {
		y = buf.Height() - h
	}
	x, y = max(x, 0), max(y, 0)

	accent := FromColorful(t.Accent)
	buf.FillBg(x, y, w, h, RGBBackground, tooltipAlpha)
	drawBox(buf, x, y, w, h, accent)

	for i, l := range lines {
		fg := RGBText
		attrs := tcell.AttrNone
		if i == 0 {
			fg = RGBWhite
			attrs = tcell.AttrBold
		} else if i == 1 {
			fg = accent
		}
		buf.WriteString(x+2, y+1+i, l, fg, attrs)
	}
}

func drawBox(buf *Buffer, x, y, w, h int, fg RGB) {
	for i := x + 1; i < x+w-1; i++ {
		buf.SetFgOnly(i, y, '─', fg, 0)
		buf.SetFgOnly(i, y+h-1, '─', fg, 0)
	}
	for j := y + 1; j < y+h-1; j++ {
		buf.SetFgOnly(x, j, '│', fg, 0)
		buf.SetFgOnly(x+w-1, j, '│', fg, 0)
	}
	buf.SetFgOnly(x, y, '╭', fg, 0)
	buf.SetFgOnly(x+w-1, y, '╮', fg, 0)
	buf.SetFgOnly(x, y+h-1, '╰', fg, 0)
	buf.SetFgOnly(x+w-1, y+h-1, '╯', fg, 0)
}

// drawHUD writes metric lines on the top row and the key hint on the bottom row
func drawHUD(buf *Buffer, metrics []string, hint string) {
	if buf.Height() < 2 {
		return
	}
	if len(metrics) > 0 {
		buf.WriteString(1, 0, strings.Join(metrics, "  "), RGBDim, 0)
	}
	if hint != "" {
		buf.WriteString(1, buf.Height()-1, hint, RGBDim, 0)
	}
}

// Wrap splits s into lines of at most width columns on word boundaries
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && runewidth.StringWidth(cur.String())+1+runewidth.StringWidth(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
