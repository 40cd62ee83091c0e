package app

import "context"

type TimelineUseCase interface {
	BuildTimeline(ctx context.Context, req TimelineRequest) (*TimelineResponse, error)
}

type AnalyticsUseCase interface {
	GetAnalytics(ctx context.Context, req TimelineRequest) ([]DepartmentAnalyticsView, error)
}
