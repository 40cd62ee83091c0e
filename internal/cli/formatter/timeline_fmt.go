package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	titleColWidth = 26
	minChartWidth = 30
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// FormatTimeline renders the layout response as a text gantt chart: bucket
// header rows, one bar per element with its tasks indented underneath, a
// today marker column and a task-density line.
func FormatTimeline(resp *contract.TimelineResponse, width int) string {
	if resp.Empty {
		return Dim("No scheduled tasks match the current filters.") + "\n"
	}

	chartWidth := width - titleColWidth - 2
	if chartWidth < minChartWidth {
		chartWidth = minChartWidth
	}

	todayCol := -1
	if resp.TodayPercent != nil {
		todayCol = pctToCol(*resp.TodayPercent, chartWidth)
		if todayCol >= chartWidth {
			todayCol = chartWidth - 1
		}
	}

	var b strings.Builder

	b.WriteString(padTitle(Dim(resp.RangeStart+" → "+resp.RangeEnd), resp.RangeStart+" → "+resp.RangeEnd))
	b.WriteString(renderBucketRow(resp, chartWidth, false))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", titleColWidth+2))
	b.WriteString(renderBucketRow(resp, chartWidth, true))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", titleColWidth+2))
	b.WriteString(renderTodayRuler(chartWidth, todayCol))
	b.WriteString("\n")

	for _, section := range resp.Sections {
		b.WriteString(renderSection(section, resp, chartWidth, todayCol))
	}

	if len(resp.DailyCounts) > 0 {
		b.WriteString(padTitle(Dim("tasks/day"), "tasks/day"))
		b.WriteString(renderDensity(resp.DailyCounts, chartWidth))
		b.WriteString("\n")
	}

	return b.String()
}

func renderSection(section contract.DepartmentSectionView, resp *contract.TimelineResponse, chartWidth, todayCol int) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("▸ ") + Bold(section.Name))
	for _, a := range resp.Analytics {
		if a.DepartmentID == section.DepartmentID {
			b.WriteString("  " + Dim(fmt.Sprintf("%d/%d done", a.CompletedTasks, a.TotalTasks)))
			break
		}
	}
	b.WriteString("\n")

	if len(section.Elements) == 0 {
		b.WriteString(padTitle(Dim("  (no scheduled work)"), "  (no scheduled work)"))
		b.WriteString(renderTrack(chartWidth, todayCol, -1, 0, StyleDim))
		b.WriteString("\n")
		return b.String()
	}

	for _, elem := range section.Elements {
		title := truncate("  "+elem.Title, titleColWidth)
		style := StylePurple
		if elem.Synthetic {
			style = StyleDim
		}
		b.WriteString(padTitle(style.Render(title), title))
		b.WriteString(renderBarTrack(elem.Bar, chartWidth, todayCol, style))
		b.WriteString("\n")

		for _, task := range elem.Tasks {
			title := truncate("    "+task.Title, titleColWidth)
			b.WriteString(padTitle(StyleFg.Render(title), title))
			b.WriteString(renderBarTrack(task.Bar, chartWidth, todayCol, StatusStyle(task.Status)))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderBucketRow lays bucket labels (or sublabels) over the chart columns.
// Bucket cell boundaries follow the same day-to-column mapping as the bars.
func renderBucketRow(resp *contract.TimelineResponse, chartWidth int, sublabel bool) string {
	var b strings.Builder
	cumDays := 0
	for _, bucket := range resp.Buckets {
		start := cumDays * chartWidth / resp.DayCount
		cumDays += bucket.Span
		end := cumDays * chartWidth / resp.DayCount
		cellW := end - start
		if cellW <= 0 {
			continue
		}

		text := bucket.Label
		if sublabel {
			text = bucket.Sublabel
		}
		text = truncate(text, cellW)
		pad := cellW - len([]rune(text))

		style := StyleFg
		if sublabel {
			style = StyleDim
		}
		if bucket.IsToday && !sublabel {
			style = StyleYellow
		}
		b.WriteString(style.Render(text))
		b.WriteString(strings.Repeat(" ", pad))
	}
	return b.String()
}

func renderTodayRuler(chartWidth, todayCol int) string {
	if todayCol < 0 {
		return Dim(strings.Repeat("─", chartWidth))
	}
	left := strings.Repeat("─", todayCol)
	right := strings.Repeat("─", chartWidth-todayCol-1)
	return Dim(left) + StyleRed.Render("▼") + Dim(right)
}

// renderBarTrack renders one chart row: the bar at its columns, the today
// marker threaded through empty space.
func renderBarTrack(bar *contract.BarView, chartWidth, todayCol int, style lipgloss.Style) string {
	if bar == nil {
		return renderTrack(chartWidth, todayCol, -1, 0, StyleDim)
	}
	start := pctToCol(bar.LeftPct, chartWidth)
	barW := pctToCol(bar.WidthPct, chartWidth)
	if barW < 1 {
		barW = 1
	}
	if start+barW > chartWidth {
		barW = chartWidth - start
	}
	return renderTrack(chartWidth, todayCol, start, barW, style)
}

func renderTrack(chartWidth, todayCol, barStart, barWidth int, style lipgloss.Style) string {
	var b strings.Builder
	for col := 0; col < chartWidth; col++ {
		switch {
		case barStart >= 0 && col >= barStart && col < barStart+barWidth:
			b.WriteString(style.Render("█"))
		case col == todayCol:
			b.WriteString(StyleRed.Render("│"))
		default:
			b.WriteString(Dim("·"))
		}
	}
	return b.String()
}

func renderDensity(counts []int, chartWidth int) string {
	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return Dim(strings.Repeat(" ", chartWidth))
	}

	var b strings.Builder
	n := len(counts)
	for col := 0; col < chartWidth; col++ {
		day := col * n / chartWidth
		c := counts[day]
		if c == 0 {
			b.WriteString(" ")
			continue
		}
		idx := c * len(sparkBlocks) / max
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		b.WriteString(StyleBlue.Render(string(sparkBlocks[idx])))
	}
	return b.String()
}

// FormatAnalytics renders the per-department completion table.
func FormatAnalytics(views []contract.DepartmentAnalyticsView) string {
	if len(views) == 0 {
		return Dim("No departments.") + "\n"
	}

	rows := make([][]string, len(views))
	for i, v := range views {
		rows[i] = []string{
			v.Name,
			fmt.Sprintf("%d", v.TotalTasks),
			fmt.Sprintf("%d", v.CompletedTasks),
			RenderProgress(v.Percentage, progressBarWidth),
		}
	}
	return RenderTable([]string{"Department", "Tasks", "Done", "Completion"}, rows)
}

// FormatDepartmentList renders a table of departments.
func FormatDepartmentList(departments []*domain.Department) string {
	rows := make([][]string, len(departments))
	for i, d := range departments {
		rows[i] = []string{shortID(d.ID), d.Name}
	}
	return RenderTable([]string{"ID", "Name"}, rows)
}

// FormatElementList renders a table of elements.
func FormatElementList(elements []*domain.Element) string {
	rows := make([][]string, len(elements))
	for i, e := range elements {
		rows[i] = []string{shortID(e.ID), e.Title, string(e.Priority), dateOrDash(e.StartDate), dateOrDash(e.DueDate)}
	}
	return RenderTable([]string{"ID", "Title", "Priority", "Start", "Due"}, rows)
}

// FormatTaskList renders a table of tasks.
func FormatTaskList(tasks []*domain.Task) string {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			shortID(t.ID),
			t.Title,
			StatusIndicator(t.Status),
			dateOrDash(t.StartDate),
			dateOrDash(t.DueDate),
			t.Assignee,
		}
	}
	return RenderTable([]string{"ID", "Title", "Status", "Start", "Due", "Assignee"}, rows)
}

func pctToCol(pct float64, chartWidth int) int {
	col := int(pct/100*float64(chartWidth) + 0.5)
	if col < 0 {
		col = 0
	}
	if col > chartWidth {
		col = chartWidth
	}
	return col
}

func padTitle(styled, plain string) string {
	pad := titleColWidth - len([]rune(plain))
	if pad < 0 {
		pad = 0
	}
	return styled + strings.Repeat(" ", pad) + "  "
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width < 1 {
		return ""
	}
	return string(r[:width])
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return Dim("-")
	}
	return t.Format("2006-01-02")
}
