package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tempus/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedService_PopulatesTimeline(t *testing.T) {
	departments, elements, tasks, uow := setupRepos(t)
	ctx := context.Background()

	result, err := NewSeedService(uow).Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.DepartmentCount)
	assert.Equal(t, 3, result.ElementCount)
	assert.Equal(t, 9, result.TaskCount)

	svc := NewTimelineService(departments, elements, tasks)
	resp, err := svc.BuildTimeline(ctx, contract.NewTimelineRequest())
	require.NoError(t, err)

	require.False(t, resp.Empty, "seeded data carries dated tasks")
	assert.Len(t, resp.Sections, 3)
	assert.Len(t, resp.Analytics, 3)

	// The loose Engineering task lands in a synthesized group.
	var synthetic bool
	for _, section := range resp.Sections {
		for _, row := range section.Elements {
			if row.Synthetic {
				synthetic = true
			}
		}
	}
	assert.True(t, synthetic, "unassigned dated tasks are grouped under a pseudo-element")
}
