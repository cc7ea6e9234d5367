// Package styles renders human-readable CLI output
package styles

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/atelier/internal/config"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Email:", "Price:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Message"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Border)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Label))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Success))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Error))

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Warning))
}

// Field is one labelled row of a card
type Field struct {
	Label string
	Value string
}

// RenderCard renders a titled card with one row per field
func RenderCard(title string, fields []Field, sections ...string) string {
	var content strings.Builder
	content.WriteString(TitleStyle.Render(title))
	content.WriteString("\n")

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}
	for _, f := range fields {
		label := f.Label + ":" + strings.Repeat(" ", width-len(f.Label))
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render(label))
		content.WriteString(" ")
		content.WriteString(ValueStyle.Render(f.Value))
	}

	for _, s := range sections {
		content.WriteString("\n")
		content.WriteString(s)
	}

	return CardStyle.Render(content.String())
}

// RenderSection renders a header followed by an already formatted body
func RenderSection(header, body string) string {
	return SectionStyle.Render(header) + "\n" + body
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders text as markdown wrapped to width.
// The raw text is returned when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("No message")
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(rendered)
}
