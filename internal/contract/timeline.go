package contract

import "github.com/alexanderramin/tempus/internal/app"

type TimelineRequest = app.TimelineRequest

var NewTimelineRequest = app.NewTimelineRequest

type BarView = app.BarView

type TaskBarView = app.TaskBarView

type ElementRowView = app.ElementRowView

type DepartmentSectionView = app.DepartmentSectionView

type BucketView = app.BucketView

type DepartmentAnalyticsView = app.DepartmentAnalyticsView

type TimelineResponse = app.TimelineResponse
