package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.events = append(r.events, event)
}

func TestLogUseCaseObserver_WritesSortedFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "build-timeline",
		Duration: 5 * time.Millisecond,
		Success:  true,
		Fields: map[string]any{
			"view_mode":  "week",
			"department": "all",
			"offset":     0,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "timeline_use_case")
	assert.Contains(t, out, "use_case=build-timeline")
	assert.Contains(t, out, "success=true")

	// Field keys are emitted in sorted order.
	dept := strings.Index(out, "department=")
	offset := strings.Index(out, "offset=")
	mode := strings.Index(out, "view_mode=")
	require.True(t, dept >= 0 && offset >= 0 && mode >= 0)
	assert.Less(t, dept, offset)
	assert.Less(t, offset, mode)
}

func TestLogUseCaseObserver_ErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "build-timeline",
		Success: false,
		Err:     errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriterIsNoop(t *testing.T) {
	obs := NewLogUseCaseObserver(nil)
	_, ok := obs.(NoopUseCaseObserver)
	assert.True(t, ok)
}

func TestBuildTimeline_EmitsUseCaseEvent(t *testing.T) {
	departments, elements, tasks, _ := setupRepos(t)
	rec := &recordingObserver{}
	svc := NewTimelineService(departments, elements, tasks, rec)

	_, err := svc.BuildTimeline(context.Background(), contract.NewTimelineRequest())
	require.NoError(t, err)

	require.Len(t, rec.events, 1)
	event := rec.events[0]
	assert.Equal(t, "build-timeline", event.Name)
	assert.True(t, event.Success)
	assert.Equal(t, "week", event.Fields["view_mode"])
	assert.Equal(t, 0, event.Fields["offset"])
	assert.Equal(t, true, event.Fields["empty"])
}
