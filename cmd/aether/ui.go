package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Brand colors
var (
	uiBrand  = color.New(color.FgHiMagenta, color.Bold)
	uiSubtle = color.New(color.FgHiBlack)
	uiWarn   = color.New(color.FgYellow)
	uiGood   = color.New(color.FgGreen)
	uiBad    = color.New(color.FgRed)
)

const orb = "\U0001F52E" // 🔮

// banner prints the command header
func banner(w io.Writer, subtitle string) {
	fmt.Fprintf(w, "%s %s - %s\n\n", orb, uiBrand.Sprint("aether"), subtitle)
}

// table prints an aligned table; widths follow display columns
func table(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	pad := func(s string, width int) string {
		return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
	}

	header, sep := "  ", "  "
	for i, h := range headers {
		header += pad(h, widths[i]) + "  "
		sep += strings.Repeat("─", widths[i]) + "  "
	}
	uiSubtle.Fprintln(w, strings.TrimRight(header, " "))
	uiSubtle.Fprintln(w, strings.TrimRight(sep, " "))

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += pad(cell, widths[i]) + "  "
			}
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// statusIcon returns a check or a cross
func statusIcon(ok bool) string {
	if ok {
		return uiGood.Sprint("✓")
	}
	return uiBad.Sprint("✗")
}
