package timeline

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/tempus/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func daySpan(start time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

func makeTask(id string, start, due *time.Time, status domain.TaskStatus) *domain.Task {
	return &domain.Task{ID: id, Title: id, Status: status, StartDate: start, DueDate: due}
}

func randomMode(rng *rand.Rand) domain.ViewMode {
	switch rng.Intn(3) {
	case 0:
		return domain.ViewDay
	case 1:
		return domain.ViewWeek
	default:
		return domain.ViewMonth
	}
}

func randomDirection(rng *rand.Rand) domain.ScrollDirection {
	if rng.Intn(2) == 0 {
		return domain.ScrollLeft
	}
	return domain.ScrollRight
}

func makeGroup(elementID, departmentID string, tasks ...*domain.Task) *domain.ElementGroup {
	e := &domain.Element{ID: elementID, Title: elementID, DepartmentID: departmentID}
	for _, t := range tasks {
		t.ElementID = elementID
		t.DepartmentID = departmentID
		if t.HasInterval() {
			if e.StartDate == nil || t.StartDate.Before(*e.StartDate) {
				e.StartDate = t.StartDate
			}
			if e.DueDate == nil || t.DueDate.After(*e.DueDate) {
				e.DueDate = t.DueDate
			}
		}
	}
	return &domain.ElementGroup{Element: e, Tasks: tasks}
}
