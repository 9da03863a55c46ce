package inspect

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/arthur-debert/tagterm/pkg/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	maxTextWidth = 40
	columnGap    = "  "
)

var tableHeader = []string{"#", "TEXT", "BOLD", "UNDERLINE", "COLOR"}

func writeTable(w io.Writer, runs []markup.Run, preview *lipgloss.Renderer) error {
	rows := make([][]string, 0, len(runs)+1)
	header := tableHeader
	if preview != nil {
		header = append(append([]string{}, tableHeader...), "PREVIEW")
	}
	rows = append(rows, header)

	for i, rec := range Records(runs) {
		color := rec.Color
		if color == "" {
			color = "-"
		}
		row := []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(strconv.Quote(rec.Text), maxTextWidth, "…"),
			yesNo(rec.Bold),
			yesNo(rec.Underline),
			color,
		}
		if preview != nil {
			row = append(row, render.Sprint(preview, runs[i:i+1]))
		}
		rows = append(rows, row)
	}

	widths := columnWidths(rows)
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for c, cell := range row {
			last := c == len(row)-1
			bw.WriteString(cell)
			if !last {
				bw.WriteString(strings.Repeat(" ", widths[c]-runewidth.StringWidth(cell)))
				bw.WriteString(columnGap)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// columnWidths measures display width per column. The last column is left
// unpadded, so styled preview cells never need measuring.
func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if c == len(row)-1 {
				continue
			}
			if n := runewidth.StringWidth(cell); n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
