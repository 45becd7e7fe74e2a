package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/jejak/internal/travel"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2A9D8F"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E9C46A"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F4A261"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD166"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E63946"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2A9D8F")).
			Padding(0, 1)
)

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Travel Log"))
	b.WriteByte('\n')
	stats := m.collection.Stats()
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d place%s, %d countr%s, average %.1f",
		stats.Places, plural(stats.Places), stats.Countries, pluralY(stats.Countries), stats.AverageRating)))
	b.WriteString("\n\n")

	switch m.mode {
	case modeDetail, modeNotes, modeAddLandmark, modeRemoveLandmark:
		m.renderDetail(&b)
	case modeAdd:
		m.renderForm(&b)
	default:
		m.renderGallery(&b)
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help()))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderGallery(b *strings.Builder) {
	b.WriteString(filterStyle.Render(fmt.Sprintf("Country: %s  Season: %s  Sort: %s",
		orAll(m.query.Country), orAll(m.query.Season), m.query.Sort)))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.collection.Count() == 0:
		b.WriteString("No places yet. Press a to add your first trip.\n")
	case len(m.visible) == 0:
		b.WriteString("No places match the filters.\n")
	default:
		for i, p := range m.visible {
			line := fmt.Sprintf("%s  %s", formatCard(p), starStyle.Render(travel.Stars(p.Rating())))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteByte('\n')
			if preview := travel.Preview(p.Notes()); preview != "" {
				b.WriteString(dimStyle.Render("    " + preview))
				b.WriteByte('\n')
			}
		}
	}

	if m.mode == modeConfirmDelete {
		if p, ok := m.collection.GetByID(m.detailID); ok {
			b.WriteString("\n")
			b.WriteString(fmt.Sprintf("Delete %s? (y/n, Esc to cancel)", p.Location()))
			b.WriteByte('\n')
		}
	}
}

func (m Model) renderDetail(b *strings.Builder) {
	p, ok := m.collection.GetByID(m.detailID)
	if !ok {
		b.WriteString("(place not found)\n")
		return
	}

	var card strings.Builder
	card.WriteString(titleStyle.Render(formatCard(p)))
	card.WriteByte('\n')
	fmt.Fprintf(&card, "Visited: %s\n", travel.FormatDate(p.Visited()))
	if p.TimeOfYear() != "" {
		fmt.Fprintf(&card, "Season:  %s\n", p.TimeOfYear())
	}
	fmt.Fprintf(&card, "Rating:  %s\n", starStyle.Render(travel.Stars(p.Rating())))
	if landmarks := p.Landmarks(); len(landmarks) > 0 {
		card.WriteString("Landmarks:\n")
		for _, l := range landmarks {
			fmt.Fprintf(&card, "  - %s\n", l)
		}
	}
	if p.Notes() != "" {
		card.WriteString("Notes:\n")
		card.WriteString(p.Notes())
	}

	b.WriteString(cardStyle.Render(strings.TrimRight(card.String(), "\n")))
	b.WriteByte('\n')

	switch m.mode {
	case modeNotes:
		b.WriteString("\nNotes (Enter to save, Esc to cancel)\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeAddLandmark:
		b.WriteString("\nAdd landmark (Enter to save, Esc to cancel)\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	case modeRemoveLandmark:
		b.WriteString("\nRemove landmark (exact name, Enter to confirm)\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
}

func (m Model) renderForm(b *strings.Builder) {
	b.WriteString(titleStyle.Render("New place"))
	b.WriteString("\n\n")
	for i, input := range m.form {
		label := fmt.Sprintf("%-13s", fieldLabels[i])
		if i == m.formFocus {
			b.WriteString(selectedStyle.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString(input.View())
		b.WriteByte('\n')
	}
}

func (m Model) help() string {
	switch m.mode {
	case modeDetail:
		return "Esc back  +/- or 0-5 rate  n notes  a add landmark  x remove landmark  d delete  q quit"
	case modeAdd:
		return "Tab/Shift+Tab move  Enter next  Ctrl+S save  Esc cancel"
	case modeNotes, modeAddLandmark, modeRemoveLandmark:
		return "Enter save  Esc cancel"
	case modeConfirmDelete:
		return "y delete  n/Esc keep"
	default:
		return "j/k select  Enter open  c country  s season  o sort  a add  d delete  r reload  q quit"
	}
}

func formatCard(p *travel.Place) string {
	if p.Country() == "" {
		return p.Location()
	}
	return p.Location() + ", " + p.Country()
}

func orAll(value string) string {
	if value == "" {
		return "All"
	}
	return value
}

func pluralY(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
