package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/procureguard/trimatch/pkg/models"
)

func TestNewState(t *testing.T) {
	s := NewState("sess-1", "tenant-1", models.DocumentBundle{})

	assert.Equal(t, "sess-1", s.SessionID)
	assert.Equal(t, "tenant-1", s.TenantID)
	assert.Equal(t, StageExtraction, s.CurrentStage)
	assert.Empty(t, s.Trace)
	assert.Empty(t, s.Errors)
	assert.False(t, s.HasFatal())
}

func TestAppendTrace(t *testing.T) {
	s := NewState("sess-1", "tenant-1", models.DocumentBundle{})
	base := time.Now()

	s.AppendTrace(StageExtraction, base, base.Add(250*time.Millisecond), OutcomeCompleted)
	s.AppendTrace(StageQuantitative, base.Add(time.Second), base.Add(time.Second+10*time.Millisecond), OutcomeCompleted)

	assert.Len(t, s.Trace, 2)
	assert.Equal(t, StageExtraction, s.Trace[0].Stage)
	assert.Equal(t, int64(250), s.Trace[0].DurationMs)
	assert.Equal(t, int64(10), s.Trace[1].DurationMs)

	// Trace stays ordered by start time.
	assert.True(t, !s.Trace[1].StartedAt.Before(s.Trace[0].StartedAt))
}

func TestErrors(t *testing.T) {
	s := NewState("sess-1", "tenant-1", models.DocumentBundle{})

	s.AddError(StageExtraction, KindUnresolvedCitation, "no chunk contains 42.00", false)
	s.AddError(StageQuantitative, KindUnavailableInput, "no extracted data", false)
	assert.False(t, s.HasFatal())
	assert.True(t, s.HasKind(KindUnresolvedCitation))
	assert.False(t, s.HasKind(KindTimeout))

	s.AddError(StageReconciliation, KindContractViolation, "recommendation inconsistent with status", true)
	assert.True(t, s.HasFatal())

	assert.Len(t, s.ErrorsFor(StageExtraction), 1)
	assert.Len(t, s.ErrorsFor(StageDrafting), 0)
}

func TestStages(t *testing.T) {
	stages := Stages()
	assert.Len(t, stages, TotalStages)
	assert.Equal(t, StageExtraction, stages[0])
	assert.Equal(t, StageDrafting, stages[len(stages)-1])
	assert.NotContains(t, stages, StageEnd)
}
