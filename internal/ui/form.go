package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/jejak/internal/travel"
)

const (
	fieldLocation = iota
	fieldCountry
	fieldSeason
	fieldDate
	fieldLandmarks
	fieldNotes
	fieldRating
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldLocation:  "Location",
	fieldCountry:   "Country",
	fieldSeason:    "Season",
	fieldDate:      "Date visited",
	fieldLandmarks: "Landmarks",
	fieldNotes:     "Notes",
	fieldRating:    "Rating",
}

func newForm() []textinput.Model {
	placeholders := [fieldCount]string{
		fieldLocation:  "Kyoto",
		fieldCountry:   "Japan",
		fieldSeason:    "Spring",
		fieldDate:      today(),
		fieldLandmarks: "Fushimi Inari, Kinkaku-ji",
		fieldNotes:     "What made it memorable?",
		fieldRating:    "0-5",
	}

	form := make([]textinput.Model, fieldCount)
	for i := range form {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.Width = 50
		ti.CharLimit = 200
		form[i] = ti
	}
	form[fieldNotes].CharLimit = 2000
	form[fieldRating].CharLimit = 1
	return form
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.form = newForm()
	m.formFocus = fieldLocation
	m.form[m.formFocus].Focus()
	m.mode = modeAdd
	m.clearLines()
	return m, textinput.Blink
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeGallery
		m.form = nil
		m.statusLine = "Add cancelled."
		m.errorLine = ""
		return m, nil
	case tea.KeyCtrlS:
		return m.submitForm()
	case tea.KeyEnter:
		if m.formFocus == fieldCount-1 {
			return m.submitForm()
		}
		return m.focusField(m.formFocus + 1)
	case tea.KeyTab, tea.KeyDown:
		return m.focusField((m.formFocus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.focusField((m.formFocus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func (m Model) focusField(index int) (tea.Model, tea.Cmd) {
	m.form[m.formFocus].Blur()
	m.formFocus = index
	return m, m.form[m.formFocus].Focus()
}

// fields converts the add form into place fields. Blank dates default to
// today and landmarks are comma separated.
func (m Model) fields() (travel.Fields, error) {
	value := func(i int) string { return strings.TrimSpace(m.form[i].Value()) }

	f := travel.Fields{
		Location:    value(fieldLocation),
		Country:     value(fieldCountry),
		TimeOfYear:  value(fieldSeason),
		DateVisited: value(fieldDate),
		Notes:       value(fieldNotes),
	}
	if f.DateVisited == "" {
		f.DateVisited = today()
	}
	if raw := value(fieldLandmarks); raw != "" {
		f.Landmarks = strings.Split(raw, ",")
	}
	if raw := value(fieldRating); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			return travel.Fields{}, fmt.Errorf("rating must be an integer between 0 and %d", travel.MaxRating)
		}
		f.Rating = rating
	}
	return f, nil
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	f, err := m.fields()
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	place, err := travel.NewPlace(f)
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	if err := m.collection.Add(place); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	m.form = nil
	m.mode = modeGallery
	m.refresh()
	for i, p := range m.visible {
		if p.ID() == place.ID() {
			m.selected = i
			break
		}
	}
	return m.save(fmt.Sprintf("Added %s.", place.Summary()))
}
