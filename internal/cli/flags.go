package cli

import (
	"fmt"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/spf13/pflag"
)

// timelineFlags is the shared flag set for commands that derive a timeline:
// board, analytics and the TUI entrypoint.
type timelineFlags struct {
	department string
	status     string
	view       string
	offset     int
}

func registerTimelineFlags(fs *pflag.FlagSet, f *timelineFlags) {
	fs.StringVar(&f.department, "department", domain.FilterAll, "Department ID or name (\"all\" for every department)")
	fs.StringVar(&f.status, "status", domain.FilterAll, "Task status filter: all, todo, in_progress, done")
	fs.StringVar(&f.view, "view", string(domain.ViewWeek), "View mode: day, week, month")
	fs.IntVar(&f.offset, "offset", 0, "Scroll offset in days from the range start")
}

func (f *timelineFlags) validate() error {
	if !domain.ValidViewModes[f.view] {
		return fmt.Errorf("invalid view mode %q (expected day, week or month)", f.view)
	}
	if f.status != domain.FilterAll && domain.NormalizeStatus(f.status) != domain.TaskStatus(f.status) {
		return fmt.Errorf("invalid status %q (expected all, todo, in_progress or done)", f.status)
	}
	return nil
}

func (f *timelineFlags) request() contract.TimelineRequest {
	req := contract.NewTimelineRequest()
	req.DepartmentFilter = f.department
	req.StatusFilter = f.status
	req.ViewMode = f.view
	req.ScrollOffset = f.offset
	return req
}
