package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/alexanderramin/tempus/internal/domain"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/timeline"
)

const dateLayout = "2006-01-02"

type timelineService struct {
	departments repository.DepartmentRepo
	elements    repository.ElementRepo
	tasks       repository.TaskRepo
	observer    UseCaseObserver
}

func NewTimelineService(
	departments repository.DepartmentRepo,
	elements repository.ElementRepo,
	tasks repository.TaskRepo,
	observers ...UseCaseObserver,
) TimelineService {
	return &timelineService{
		departments: departments,
		elements:    elements,
		tasks:       tasks,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *timelineService) BuildTimeline(ctx context.Context, req contract.TimelineRequest) (resp *contract.TimelineResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"view_mode":  req.ViewMode,
		"department": req.DepartmentFilter,
		"status":     req.StatusFilter,
		"offset":     req.ScrollOffset,
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "build-timeline",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	engine, err := s.loadEngine(ctx, req)
	if err != nil {
		return nil, err
	}

	layout := engine.Layout()
	fields["empty"] = layout.Empty

	return buildTimelineResponse(layout, engine.ViewMode()), nil
}

func (s *timelineService) GetAnalytics(ctx context.Context, req contract.TimelineRequest) ([]contract.DepartmentAnalyticsView, error) {
	engine, err := s.loadEngine(ctx, req)
	if err != nil {
		return nil, err
	}
	return analyticsViews(engine.Layout().Analytics), nil
}

// loadEngine fetches the full hierarchy, builds an immutable snapshot and
// configures an engine from the request's control values.
func (s *timelineService) loadEngine(ctx context.Context, req contract.TimelineRequest) (*timeline.Engine, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading departments: %w", err)
	}
	elements, err := s.elements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading elements: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	snapshot := domain.BuildSnapshot(departments, elements, tasks)
	engine := timeline.NewEngine(snapshot, now)
	engine.SetFilters(req.DepartmentFilter, req.StatusFilter)
	engine.SetViewMode(domain.ViewMode(req.ViewMode))
	engine.SetScrollOffset(req.ScrollOffset)
	return engine, nil
}

func buildTimelineResponse(layout timeline.Layout, mode domain.ViewMode) *contract.TimelineResponse {
	resp := &contract.TimelineResponse{
		Empty:        layout.Empty,
		ViewMode:     string(mode),
		Offset:       layout.Offset,
		Sections:     sectionViews(layout),
		TodayPercent: layout.TodayPercent,
		Analytics:    analyticsViews(layout.Analytics),
		DailyCounts:  layout.DailyCounts,
	}
	if layout.Empty {
		return resp
	}

	resp.RangeStart = layout.Range.Start.Format(dateLayout)
	resp.RangeEnd = layout.Range.End.Format(dateLayout)
	resp.DayCount = len(layout.VisibleDays)

	resp.Buckets = make([]contract.BucketView, len(layout.Buckets))
	for i, b := range layout.Buckets {
		resp.Buckets[i] = contract.BucketView{
			Key:      b.Key,
			Label:    b.Label,
			Sublabel: b.Sublabel,
			Span:     len(b.Days),
			IsToday:  b.IsToday,
		}
	}
	return resp
}

func sectionViews(layout timeline.Layout) []contract.DepartmentSectionView {
	sections := make([]contract.DepartmentSectionView, len(layout.Rows))
	for i, row := range layout.Rows {
		section := contract.DepartmentSectionView{
			DepartmentID: row.Department.ID,
			Name:         row.Department.Name,
		}
		for _, er := range row.Elements {
			view := contract.ElementRowView{
				ElementID: er.Element.ID,
				Title:     er.Element.Title,
				Synthetic: er.Synthetic,
				Bar:       barView(layout.Positions, er.Element.ID),
			}
			for _, t := range er.Tasks {
				view.Tasks = append(view.Tasks, contract.TaskBarView{
					TaskID:   t.ID,
					Title:    t.Title,
					Status:   t.Status,
					Assignee: t.Assignee,
					Bar:      barView(layout.Positions, t.ID),
				})
			}
			section.Elements = append(section.Elements, view)
		}
		sections[i] = section
	}
	return sections
}

func barView(positions map[string]timeline.PositionedInterval, id string) *contract.BarView {
	p, ok := positions[id]
	if !ok {
		return nil
	}
	return &contract.BarView{LeftPct: p.LeftPercent, WidthPct: p.WidthPercent}
}

func analyticsViews(stats []timeline.DepartmentStats) []contract.DepartmentAnalyticsView {
	views := make([]contract.DepartmentAnalyticsView, len(stats))
	for i, st := range stats {
		views[i] = contract.DepartmentAnalyticsView{
			DepartmentID:   st.DepartmentID,
			Name:           st.DepartmentName,
			TotalTasks:     st.TotalTasks,
			CompletedTasks: st.CompletedTasks,
			Percentage:     st.Percentage,
		}
	}
	return views
}
