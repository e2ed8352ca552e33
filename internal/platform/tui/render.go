package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// ansiCodes maps core.Color to terminal color codes. Piece colors use the
// 16-color palette so they survive limited SSH clients; orange and gray
// need the 256-color range.
var ansiCodes = [...]string{
	core.ColorDefault:       "",
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Renderer turns a core.Screen into styled terminal output. Each SSH
// session gets its own lipgloss renderer so colors match the client's
// terminal rather than the server's.
type Renderer struct {
	styles []lipgloss.Style
}

// NewRenderer builds styles with the given lipgloss renderer. A nil
// renderer uses the process default.
func NewRenderer(r *lipgloss.Renderer) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make([]lipgloss.Style, len(ansiCodes))
	for c, code := range ansiCodes {
		styles[c] = r.NewStyle()
		if code != "" {
			styles[c] = styles[c].Foreground(lipgloss.Color(code))
		}
	}
	return &Renderer{styles: styles}
}

func (r *Renderer) style(c core.Color) lipgloss.Style {
	if int(c) < len(r.styles) {
		return r.styles[c]
	}
	return r.styles[core.ColorDefault]
}

// Render converts the screen to a string. Adjacent cells of the same color
// are written as one styled run to keep escape sequences down.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultRenderer = NewRenderer(nil)

// RenderScreen renders with the process-wide lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return defaultRenderer.Render(s)
}
