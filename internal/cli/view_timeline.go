package cli

import (
	"context"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── messages ─────────────────────────────────────────────────────────────────

// timelineLoadedMsg signals that timeline data has been loaded.
type timelineLoadedMsg struct {
	resp        *contract.TimelineResponse
	departments []*domain.Department
	err         error
}

// ── view ─────────────────────────────────────────────────────────────────────

// statusCycle is the order the status filter rotates through on 's'.
var statusCycle = []string{
	domain.FilterAll,
	string(domain.TaskTodo),
	string(domain.TaskInProgress),
	string(domain.TaskDone),
}

// timelineView is the home screen of the TUI: the Gantt-style board.
type timelineView struct {
	state   *SharedState
	resp    *contract.TimelineResponse
	loading bool
	err     error

	// All departments, loaded alongside the board for filter cycling.
	departments []*domain.Department
}

func newTimelineView(state *SharedState) *timelineView {
	return &timelineView{
		state:   state,
		loading: true,
	}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Board" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←→", "scroll")),
		key.NewBinding(key.WithKeys("d", "w", "m"), key.WithHelp("d/w/m", "zoom")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "department")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "status")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analytics")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *timelineView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *timelineView) loadData() tea.Cmd {
	app := v.state.App
	req := v.state.Request
	return func() tea.Msg {
		ctx := context.Background()

		resp, err := app.Timeline.BuildTimeline(ctx, req)
		if err != nil {
			return timelineLoadedMsg{err: err}
		}

		departments, err := app.Departments.List(ctx)
		if err != nil {
			return timelineLoadedMsg{err: err}
		}

		return timelineLoadedMsg{resp: resp, departments: departments}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.err = nil
		v.resp = msg.resp
		v.departments = msg.departments
		// The engine clamps the offset; adopt the effective value.
		v.state.Request.ScrollOffset = msg.resp.Offset
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.WindowSizeMsg:
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *timelineView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		v.state.Request.ScrollOffset -= v.scrollStep()
		return v.reload()

	case "right", "l":
		v.state.Request.ScrollOffset += v.scrollStep()
		return v.reload()

	case "d":
		return v.setViewMode(domain.ViewDay)
	case "w":
		return v.setViewMode(domain.ViewWeek)
	case "m":
		return v.setViewMode(domain.ViewMonth)

	case "f":
		v.cycleDepartment()
		return v.reload()

	case "s":
		v.cycleStatus()
		return v.reload()

	case "a":
		return v, pushView(newAnalyticsView(v.state))

	case "r":
		return v.reload()
	}

	return v, nil
}

func (v *timelineView) reload() (tea.Model, tea.Cmd) {
	v.loading = true
	return v, v.loadData()
}

func (v *timelineView) setViewMode(mode domain.ViewMode) (tea.Model, tea.Cmd) {
	// The offset carries over; the engine re-clamps it to the new window.
	v.state.Request.ViewMode = string(mode)
	return v.reload()
}

// scrollStep returns the scroll increment for the current view mode.
func (v *timelineView) scrollStep() int {
	switch domain.ViewMode(v.state.Request.ViewMode) {
	case domain.ViewDay:
		return 7
	case domain.ViewMonth:
		return 30
	default:
		return 14
	}
}

// cycleDepartment advances the department filter: all, then each
// department in turn, then back to all.
func (v *timelineView) cycleDepartment() {
	v.state.Request.ScrollOffset = 0
	if len(v.departments) == 0 {
		v.state.Request.DepartmentFilter = domain.FilterAll
		v.state.DepartmentLabel = ""
		return
	}

	current := v.state.Request.DepartmentFilter
	next := 0
	for i, d := range v.departments {
		if d.ID == current {
			next = i + 1
			break
		}
	}

	if next >= len(v.departments) {
		v.state.Request.DepartmentFilter = domain.FilterAll
		v.state.DepartmentLabel = ""
		return
	}
	v.state.Request.DepartmentFilter = v.departments[next].ID
	v.state.DepartmentLabel = v.departments[next].Name
}

// cycleStatus advances the status filter through statusCycle.
func (v *timelineView) cycleStatus() {
	v.state.Request.ScrollOffset = 0
	current := v.state.Request.StatusFilter
	for i, s := range statusCycle {
		if s == current {
			v.state.Request.StatusFilter = statusCycle[(i+1)%len(statusCycle)]
			return
		}
	}
	v.state.Request.StatusFilter = domain.FilterAll
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *timelineView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.resp == nil {
		return ""
	}

	width := v.state.Width
	if width <= 0 {
		width = 100
	}
	return formatter.FormatTimeline(v.resp, width)
}
