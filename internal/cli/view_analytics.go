package cli

import (
	"context"

	"github.com/alexanderramin/tempus/internal/cli/formatter"
	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// analyticsLoadedMsg signals that per-department analytics have been loaded.
type analyticsLoadedMsg struct {
	rows []contract.DepartmentAnalyticsView
	err  error
}

// analyticsView shows completion percentages per department.
type analyticsView struct {
	state   *SharedState
	rows    []contract.DepartmentAnalyticsView
	loading bool
	err     error
}

func newAnalyticsView(state *SharedState) *analyticsView {
	return &analyticsView{
		state:   state,
		loading: true,
	}
}

func (v *analyticsView) ID() ViewID    { return ViewAnalytics }
func (v *analyticsView) Title() string { return "Analytics" }

func (v *analyticsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *analyticsView) Init() tea.Cmd {
	return v.loadData()
}

func (v *analyticsView) loadData() tea.Cmd {
	app := v.state.App
	req := v.state.Request
	return func() tea.Msg {
		rows, err := app.Timeline.GetAnalytics(context.Background(), req)
		return analyticsLoadedMsg{rows: rows, err: err}
	}
}

func (v *analyticsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analyticsLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.rows = msg.rows
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.loadData()

	case tea.KeyMsg:
		if msg.String() == "r" {
			v.loading = true
			return v, v.loadData()
		}
	}

	return v, nil
}

func (v *analyticsView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	return formatter.FormatAnalytics(v.rows)
}
