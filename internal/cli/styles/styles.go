package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/projects/internal/models"
)

// Palette holds the hex colors used by the CLI
type Palette struct {
	Accent  string
	Title   string
	Subtle  string
	Normal  string
	ErrorFg string
	InfoFg  string
}

// DefaultPalette is used when Init has not been called with anything else
var DefaultPalette = Palette{
	Accent:  "#7D56F4",
	Title:   "#FAFAFA",
	Subtle:  "#6B7280",
	Normal:  "#D1D5DB",
	ErrorFg: "#EF4444",
	InfoFg:  "#22C55E",
}

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Difficulty:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Materials", "Steps"

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(DefaultPalette)
}

// Init initializes all CLI styles with the given palette
func Init(colors Palette) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}

// RenderField renders "Label: value"
func RenderField(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// RenderNotes renders markdown notes for the terminal, falling back to the
// raw text if the renderer fails
func RenderNotes(notes string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return notes
	}
	out, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(out)
}

// RenderProject renders a project with its materials, steps and categories
// as a card
func RenderProject(p *models.Project) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", p.ID, p.Name)))
	b.WriteString("\n\n")
	b.WriteString(RenderField("Estimated hours", p.EstimatedHours.StringFixed(2)) + "\n")
	b.WriteString(RenderField("Actual hours", p.ActualHours.StringFixed(2)) + "\n")
	b.WriteString(RenderField("Difficulty", fmt.Sprintf("%d", p.Difficulty)))

	if p.Notes != "" {
		b.WriteString("\n" + SectionStyle.Render("Notes") + "\n")
		b.WriteString(RenderNotes(p.Notes, CardWidth-6))
	}

	b.WriteString("\n" + SectionStyle.Render("Materials") + "\n")
	if len(p.Materials) == 0 {
		b.WriteString(SubtitleStyle.Render("  none"))
	}
	for i, m := range p.Materials {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %d x %s @ %s", m.NumRequired, m.Name, m.Cost.StringFixed(2))
	}

	b.WriteString("\n" + SectionStyle.Render("Steps") + "\n")
	if len(p.Steps) == 0 {
		b.WriteString(SubtitleStyle.Render("  none"))
	}
	for i, s := range p.Steps {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %d. %s", s.Order, s.Text)
	}

	b.WriteString("\n" + SectionStyle.Render("Categories") + "\n")
	if len(p.Categories) == 0 {
		b.WriteString(SubtitleStyle.Render("  none"))
	}
	names := make([]string, len(p.Categories))
	for i, c := range p.Categories {
		names[i] = c.Name
	}
	if len(names) > 0 {
		b.WriteString("  " + strings.Join(names, ", "))
	}

	return RenderCard(b.String())
}
