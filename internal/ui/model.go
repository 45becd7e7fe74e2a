package ui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/faizmokh/jejak/internal/travel"
)

// Store is the persistence the gallery needs.
type Store interface {
	LoadCollection(ctx context.Context) (*travel.Collection, error)
	Save(ctx context.Context, snapshots []travel.Snapshot) error
	Path() string
}

// Seasons offered by the season filter. Matching is by substring, so "Summer"
// also selects "Late Summer".
var Seasons = []string{"", "Spring", "Summer", "Autumn", "Fall", "Winter"}

var sortCycle = []travel.SortOrder{travel.SortRecent, travel.SortRating, travel.SortAlphabetical, travel.SortNone}

// Model owns Bubble Tea state for the gallery and detail views.
type Model struct {
	ctx   context.Context
	store Store

	collection *travel.Collection
	visible    []*travel.Place
	selected   int
	query      travel.Query

	mode        mode
	confirmFrom mode
	detailID    string
	form        []textinput.Model
	formFocus   int
	input       textinput.Model

	watch   bool
	watcher *fsnotify.Watcher

	// edits counts saves issued; saving counts saves not yet acknowledged.
	edits  int
	saving int

	loading    bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeGallery mode = iota
	modeDetail
	modeAdd
	modeNotes
	modeAddLandmark
	modeRemoveLandmark
	modeConfirmDelete
)

type collectionLoadedMsg struct {
	collection *travel.Collection
	err        error

	// edits and saving are the model's counters when the load was issued.
	edits   int
	saving  int
	watched bool
}

type savedMsg struct {
	status string
	err    error
}

type watcherStartedMsg struct {
	watcher *fsnotify.Watcher
	err     error
}

type fileChangedMsg struct{}

type watchErrMsg struct {
	err error
}

// Option customizes a Model.
type Option func(*Model)

// WithSort sets the initial gallery order.
func WithSort(order travel.SortOrder) Option {
	return func(m *Model) {
		m.query.Sort = order
	}
}

// WithoutWatch disables reloading when the log file changes on disk.
func WithoutWatch() Option {
	return func(m *Model) {
		m.watch = false
	}
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store Store, opts ...Option) Model {
	m := Model{
		ctx:        ctx,
		store:      store,
		collection: travel.NewCollection(),
		query:      travel.Query{Sort: travel.SortRecent},
		mode:       modeGallery,
		watch:      true,
		loading:    true,
		statusLine: "Loading travel log...",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init loads the collection and starts watching the log file.
func (m Model) Init() tea.Cmd {
	if !m.watch {
		return m.loadCmd()
	}
	return tea.Batch(m.loadCmd(), startWatchCmd(m.store.Path()))
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case collectionLoadedMsg:
		return m.handleLoaded(msg)
	case savedMsg:
		return m.handleSaved(msg)
	case watcherStartedMsg:
		return m.handleWatcherStarted(msg)
	case fileChangedMsg:
		return m, tea.Batch(m.watchedLoadCmd(), waitForChangeCmd(m.watcher, m.store.Path()))
	case watchErrMsg:
		m.errorLine = fmt.Sprintf("Watch failed: %v", msg.err)
		return m, waitForChangeCmd(m.watcher, m.store.Path())
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	switch m.mode {
	case modeGallery:
		return m.handleGalleryKey(msg)
	case modeDetail:
		return m.handleDetailKey(msg)
	case modeAdd:
		return m.handleFormKey(msg)
	case modeNotes, modeAddLandmark, modeRemoveLandmark:
		return m.handleInputKey(msg)
	case modeConfirmDelete:
		return m.handleConfirmKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleGalleryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()
	case "down", "j":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "enter", "l", "right":
		if p := m.current(); p != nil {
			m.mode = modeDetail
			m.detailID = p.ID()
			m.clearLines()
		}
	case "c":
		m.query.Country = next(m.countryOptions(), m.query.Country)
		m.refresh()
	case "s":
		m.query.Season = next(Seasons, m.query.Season)
		m.refresh()
	case "o":
		m.query.Sort = nextSort(m.query.Sort)
		m.refresh()
	case "a":
		return m.beginAdd()
	case "d":
		if p := m.current(); p != nil {
			m.detailID = p.ID()
			m.confirmFrom = modeGallery
			m.mode = modeConfirmDelete
			m.clearLines()
		}
	case "r":
		m.loading = true
		m.statusLine = "Reloading..."
		return m, m.loadCmd()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	place, ok := m.collection.GetByID(m.detailID)
	if !ok {
		m.mode = modeGallery
		return m, nil
	}

	switch key := msg.String(); key {
	case "q":
		return m.quit()
	case "esc", "backspace", "h", "left":
		m.mode = modeGallery
		m.clearLines()
	case "+", "=":
		return m.rate(place, place.Rating()+1)
	case "-":
		return m.rate(place, place.Rating()-1)
	case "0", "1", "2", "3", "4", "5":
		rating, _ := strconv.Atoi(key)
		return m.rate(place, rating)
	case "n":
		return m.beginInput(modeNotes, "Notes", place.Notes())
	case "a":
		return m.beginInput(modeAddLandmark, "New landmark", "")
	case "x":
		return m.beginInput(modeRemoveLandmark, "Remove landmark", "")
	case "d":
		m.confirmFrom = modeDetail
		m.mode = modeConfirmDelete
		m.clearLines()
	}
	return m, nil
}

func (m Model) rate(place *travel.Place, rating int) (tea.Model, tea.Cmd) {
	if err := place.UpdateRating(rating); err != nil {
		m.errorLine = err.Error()
		return m, nil
	}
	m.refresh()
	return m.save(fmt.Sprintf("Rated %s %s.", place.Location(), travel.Stars(place.Rating())))
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		place, ok := m.collection.GetByID(m.detailID)
		if !ok || !m.collection.RemoveByID(m.detailID) {
			m.mode = modeGallery
			m.errorLine = "Place no longer exists."
			return m, nil
		}
		m.mode = modeGallery
		m.detailID = ""
		m.refresh()
		return m.save(fmt.Sprintf("Deleted %s.", place.Location()))
	case "n", "N", "esc":
		m.mode = m.confirmFrom
		if _, ok := m.collection.GetByID(m.detailID); !ok {
			m.mode = modeGallery
		}
		m.statusLine = "Delete cancelled."
		m.errorLine = ""
	case "q":
		return m.quit()
	}
	return m, nil
}

func (m Model) beginInput(next mode, placeholder, value string) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CharLimit = 500
	ti.Width = 60
	m.input = ti
	m.input.Focus()
	m.mode = next
	m.clearLines()
	return m, textinput.Blink
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeDetail
		m.statusLine = "Cancelled."
		return m, nil
	case tea.KeyEnter:
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	place, ok := m.collection.GetByID(m.detailID)
	if !ok {
		m.mode = modeGallery
		m.errorLine = "Place no longer exists."
		return m, nil
	}

	value := m.input.Value()
	var status string
	switch m.mode {
	case modeNotes:
		place.UpdateNotes(value)
		status = fmt.Sprintf("Updated notes for %s.", place.Location())
	case modeAddLandmark:
		if err := place.AddLandmark(value); err != nil {
			m.errorLine = err.Error()
			return m, nil
		}
		status = fmt.Sprintf("Added landmark %q.", strings.TrimSpace(value))
	case modeRemoveLandmark:
		if err := place.RemoveLandmark(value); err != nil {
			m.errorLine = fmt.Sprintf("%v: %q", err, value)
			return m, nil
		}
		status = fmt.Sprintf("Removed landmark %q.", value)
	}

	m.mode = modeDetail
	m.refresh()
	return m.save(status)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.watcher != nil {
		_ = m.watcher.Close()
		m.watcher = nil
	}
	return m, tea.Quit
}

func (m Model) save(status string) (tea.Model, tea.Cmd) {
	m.edits++
	m.saving++
	m.statusLine = "Saving..."
	m.errorLine = ""
	return m, m.saveCmd(status)
}

func (m Model) handleLoaded(msg collectionLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Failed to load travel log: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	// A load issued before the latest edit, or racing a save, may predate it.
	if msg.edits != m.edits || msg.saving > 0 || m.saving > 0 {
		return m, nil
	}

	snapshots := msg.collection.Snapshots()
	if msg.watched && slices.EqualFunc(snapshots, m.collection.Snapshots(), travel.Snapshot.Equal) {
		return m, nil
	}

	m.collection = msg.collection
	if m.query.Country != "" && len(m.collection.ByCountry(m.query.Country)) == 0 {
		m.query.Country = ""
	}
	m.refresh()
	if m.mode != modeGallery && m.mode != modeAdd {
		if _, ok := m.collection.GetByID(m.detailID); !ok {
			m.mode = modeGallery
		}
	}
	m.errorLine = ""
	count := m.collection.Count()
	if msg.watched {
		m.statusLine = fmt.Sprintf("Travel log changed on disk, reloaded %d place%s.", count, plural(count))
	} else {
		m.statusLine = fmt.Sprintf("Loaded %d place%s.", count, plural(count))
	}
	return m, nil
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if m.saving > 0 {
		m.saving--
	}
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Save failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	m.statusLine = msg.status
	return m, nil
}

func (m Model) handleWatcherStarted(msg watcherStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Live reload unavailable: %v", msg.err)
		return m, nil
	}
	m.watcher = msg.watcher
	return m, waitForChangeCmd(m.watcher, m.store.Path())
}

// refresh recomputes the visible places and clamps the cursor.
func (m *Model) refresh() {
	m.visible = m.collection.View(m.query)
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) clearLines() {
	m.statusLine = ""
	m.errorLine = ""
}

func (m Model) current() *travel.Place {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

// countryOptions is the country filter cycle: all, then each named country.
func (m Model) countryOptions() []string {
	options := []string{""}
	for _, country := range m.collection.Countries() {
		if country != "" {
			options = append(options, country)
		}
	}
	return options
}

func (m Model) loadCmd() tea.Cmd {
	return m.loadCollectionCmd(false)
}

// watchedLoadCmd reloads after a change on disk.
func (m Model) watchedLoadCmd() tea.Cmd {
	return m.loadCollectionCmd(true)
}

func (m Model) loadCollectionCmd(watched bool) tea.Cmd {
	store := m.store
	ctx := m.ctx
	edits, saving := m.edits, m.saving
	return func() tea.Msg {
		c, err := store.LoadCollection(ctx)
		return collectionLoadedMsg{collection: c, err: err, edits: edits, saving: saving, watched: watched}
	}
}

func (m Model) saveCmd(status string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	snapshots := m.collection.Snapshots()
	return func() tea.Msg {
		if err := store.Save(ctx, snapshots); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{status: status}
	}
}

func next(options []string, current string) string {
	for i, o := range options {
		if strings.EqualFold(o, current) {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func nextSort(current travel.SortOrder) travel.SortOrder {
	for i, o := range sortCycle {
		if o == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func today() string {
	return time.Now().In(time.Local).Format(travel.DateLayout)
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
