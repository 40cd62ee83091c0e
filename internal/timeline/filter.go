package timeline

import "github.com/alexanderramin/tempus/internal/domain"

// FilterElements applies the department and status predicates to the
// snapshot's element groups. Pure and order-preserving.
//
// A group survives when its element matches the department filter, it owns
// at least one task matching the status filter, and at least one of those
// matching tasks carries a date interval (an element with nothing to
// position has no timeline row). Task lists are narrowed to the matching
// tasks; downstream analytics and positioning operate on the narrowed set.
func FilterElements(snap *domain.Snapshot, departmentFilter, statusFilter string) []*domain.ElementGroup {
	var out []*domain.ElementGroup
	for _, g := range snap.Groups {
		if departmentFilter != domain.FilterAll && g.Element.DepartmentID != departmentFilter {
			continue
		}
		var matched []*domain.Task
		dated := false
		for _, t := range g.Tasks {
			if !t.MatchesStatus(statusFilter) {
				continue
			}
			matched = append(matched, t)
			if t.HasInterval() {
				dated = true
			}
		}
		if len(matched) == 0 || !dated {
			continue
		}
		out = append(out, &domain.ElementGroup{
			Element:   g.Element,
			Tasks:     matched,
			Synthetic: g.Synthetic,
		})
	}
	return out
}
