package domain

import (
	"fmt"
	"time"
)

// ElementGroup pairs an element with the tasks it owns inside a snapshot.
// Synthetic marks the ungrouped pseudo-element that collects dated tasks
// lacking an element assignment.
type ElementGroup struct {
	Element   *Element
	Tasks     []*Task
	Synthetic bool
}

// Snapshot is an immutable per-fetch view of the department/element/task
// hierarchy. It is rebuilt from the store on every data fetch; the timeline
// engine never mutates it.
type Snapshot struct {
	Departments []*Department
	Groups      []*ElementGroup
}

// GroupsByDepartment returns the snapshot's element groups owned by the
// given department, preserving snapshot order.
func (s *Snapshot) GroupsByDepartment(departmentID string) []*ElementGroup {
	var out []*ElementGroup
	for _, g := range s.Groups {
		if g.Element.DepartmentID == departmentID {
			out = append(out, g)
		}
	}
	return out
}

// BuildSnapshot assembles a snapshot from raw store records.
//
// Ingestion rules applied here, once per fetch:
//   - task and element dates are truncated to calendar dates
//   - a task with exactly one date gets the other defaulted to it (one-day
//     interval); a task with due before start is treated as undated
//   - dated tasks without an element are collected into a per-department
//     pseudo-element titled "{departmentName} Tasks"
//   - undated tasks without an element are dropped (they have no row to
//     appear in)
//   - elements missing their own dates derive them from the min/max of
//     their tasks' dates
//
// Input slices are not mutated; every entity in the snapshot is a copy.
func BuildSnapshot(departments []*Department, elements []*Element, tasks []*Task) *Snapshot {
	snap := &Snapshot{}

	deptNames := make(map[string]string, len(departments))
	for _, d := range departments {
		c := *d
		snap.Departments = append(snap.Departments, &c)
		deptNames[d.ID] = d.Name
	}

	deptByElement := make(map[string]string, len(elements))
	tasksByElement := make(map[string][]*Task)
	var unassigned []*Task
	for _, t := range tasks {
		c := normalizeTaskDates(*t)
		if c.ElementID == "" {
			if c.HasInterval() {
				unassigned = append(unassigned, &c)
			}
			continue
		}
		tasksByElement[c.ElementID] = append(tasksByElement[c.ElementID], &c)
	}

	for _, e := range elements {
		c := *e
		if c.StartDate != nil {
			d := DateOnly(*c.StartDate)
			c.StartDate = &d
		}
		if c.DueDate != nil {
			d := DateOnly(*c.DueDate)
			c.DueDate = &d
		}
		owned := tasksByElement[c.ID]
		deriveElementDates(&c, owned)
		deptByElement[c.ID] = c.DepartmentID
		snap.Groups = append(snap.Groups, &ElementGroup{Element: &c, Tasks: owned})
	}

	// Resolve the owning department for unassigned tasks and synthesize one
	// pseudo-element per department that has any, in department order.
	byDept := make(map[string][]*Task)
	for _, t := range unassigned {
		if t.DepartmentID == "" {
			continue // no way to place it in a row
		}
		byDept[t.DepartmentID] = append(byDept[t.DepartmentID], t)
	}
	for _, d := range snap.Departments {
		owned := byDept[d.ID]
		if len(owned) == 0 {
			continue
		}
		pseudo := &Element{
			ID:           "ungrouped-" + d.ID,
			Title:        fmt.Sprintf("%s Tasks", deptNames[d.ID]),
			DepartmentID: d.ID,
		}
		deriveElementDates(pseudo, owned)
		snap.Groups = append(snap.Groups, &ElementGroup{Element: pseudo, Tasks: owned, Synthetic: true})
	}

	return snap
}

// normalizeTaskDates returns a copy of the task with calendar-date intervals.
// Missing or malformed intervals degrade to undated, never to an error.
func normalizeTaskDates(t Task) Task {
	var start, due *time.Time
	if t.StartDate != nil {
		d := DateOnly(*t.StartDate)
		start = &d
	}
	if t.DueDate != nil {
		d := DateOnly(*t.DueDate)
		due = &d
	}

	switch {
	case start == nil && due != nil:
		start = due
	case start != nil && due == nil:
		due = start
	case start != nil && due != nil && due.Before(*start):
		// Inverted interval is treated as missing data.
		start, due = nil, nil
	}

	t.StartDate = start
	t.DueDate = due
	return t
}

// deriveElementDates fills absent element dates from the min start and max
// due of its dated tasks.
func deriveElementDates(e *Element, tasks []*Task) {
	if e.HasInterval() {
		return
	}
	var minStart, maxDue *time.Time
	for _, t := range tasks {
		if !t.HasInterval() {
			continue
		}
		if minStart == nil || t.StartDate.Before(*minStart) {
			minStart = t.StartDate
		}
		if maxDue == nil || t.DueDate.After(*maxDue) {
			maxDue = t.DueDate
		}
	}
	if e.StartDate == nil {
		e.StartDate = minStart
	}
	if e.DueDate == nil {
		e.DueDate = maxDue
	}
	// A derived half-open interval closes over itself so the element stays
	// positionable whenever any of its tasks is.
	if e.StartDate == nil && e.DueDate != nil {
		e.StartDate = e.DueDate
	}
	if e.DueDate == nil && e.StartDate != nil {
		e.DueDate = e.StartDate
	}
}
