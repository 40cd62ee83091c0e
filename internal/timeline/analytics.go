package timeline

import (
	"math"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

// DepartmentStats summarizes task completion for one department over the
// filtered task set.
type DepartmentStats struct {
	DepartmentID   string
	DepartmentName string
	TotalTasks     int
	CompletedTasks int
	Percentage     int
}

// AggregateDepartments computes completion stats for every department in the
// snapshot, in department order. Departments with no surviving tasks still
// appear with zeroed counts so legends and filter lists stay complete.
func AggregateDepartments(departments []*domain.Department, groups []*domain.ElementGroup) []DepartmentStats {
	byDept := make(map[string]*DepartmentStats, len(departments))
	stats := make([]DepartmentStats, len(departments))
	for i, d := range departments {
		stats[i] = DepartmentStats{DepartmentID: d.ID, DepartmentName: d.Name}
		byDept[d.ID] = &stats[i]
	}

	for _, g := range groups {
		s, ok := byDept[g.Element.DepartmentID]
		if !ok {
			continue
		}
		for _, t := range g.Tasks {
			s.TotalTasks++
			if t.Status == domain.TaskDone {
				s.CompletedTasks++
			}
		}
	}

	for i := range stats {
		if stats[i].TotalTasks > 0 {
			ratio := float64(stats[i].CompletedTasks) / float64(stats[i].TotalTasks)
			stats[i].Percentage = int(math.Round(ratio * 100))
		}
	}
	return stats
}

// DailyTaskCounts returns, for each visible day, the number of tasks whose
// inclusive interval contains that day.
func DailyTaskCounts(groups []*domain.ElementGroup, visibleDays []time.Time) []int {
	counts := make([]int, len(visibleDays))
	for _, g := range groups {
		for _, t := range g.Tasks {
			if !t.HasInterval() {
				continue
			}
			for i, d := range visibleDays {
				if !d.Before(*t.StartDate) && !d.After(*t.DueDate) {
					counts[i]++
				}
			}
		}
	}
	return counts
}
