// Package pipeline defines the typed state threaded through the
// reconciliation stages. The state is single-writer: the supervisor runs
// stages strictly in order and only the active stage mutates its slot,
// so no locking is needed.
package pipeline

import (
	"time"

	"github.com/procureguard/trimatch/pkg/models"
)

// Stage identifies one step of the reconciliation pipeline.
type Stage string

const (
	StageExtraction      Stage = "extraction"
	StageQuantitative    Stage = "quantitative"
	StageCompliance      Stage = "compliance"
	StageDivergenceGuard Stage = "divergence_guard"
	StageReconciliation  Stage = "reconciliation"
	StageDrafting        Stage = "drafting"
	StageEnd             Stage = "end"
)

// Stages returns the executable stages in order, excluding the end marker.
func Stages() []Stage {
	return []Stage{
		StageExtraction,
		StageQuantitative,
		StageCompliance,
		StageDivergenceGuard,
		StageReconciliation,
		StageDrafting,
	}
}

// TotalStages is the number of executable stages reported to subscribers.
const TotalStages = 6

// ErrorKind classifies pipeline errors for routing and reporting.
type ErrorKind string

const (
	KindParseError          ErrorKind = "PARSE_ERROR"
	KindUpstreamUnavailable ErrorKind = "UPSTREAM_UNAVAILABLE"
	KindTimeout             ErrorKind = "TIMEOUT"
	KindContractViolation   ErrorKind = "CONTRACT_VIOLATION"
	KindCancelled           ErrorKind = "CANCELLED"
	KindVectorDegenerate    ErrorKind = "VECTOR_DEGENERATE"
	KindUnresolvedCitation  ErrorKind = "UNRESOLVED_CITATION"
	KindUnavailableInput    ErrorKind = "UNAVAILABLE_INPUT"
)

// Outcome is the terminal disposition of one stage execution.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
	OutcomeTimeout   Outcome = "timeout"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeSkipped   Outcome = "skipped"
)

// TraceEntry records one stage execution. The trace is append-only and
// never reordered.
type TraceEntry struct {
	Stage      Stage     `json:"stage"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Outcome    Outcome   `json:"outcome"`
	DurationMs int64     `json:"duration_ms"`
}

// StateError is one collected pipeline error. Fatal errors terminate the
// session; non-fatal ones are carried into the verdict as warnings.
type StateError struct {
	Stage   Stage     `json:"stage"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Fatal   bool      `json:"fatal"`
}

// State is the session-scoped record mutated by the active stage and
// frozen when the supervisor routes to end.
type State struct {
	SessionID string
	TenantID  string
	Documents models.DocumentBundle

	Extracted    *models.ExtractedData
	Quantitative *models.QuantitativeReport
	Compliance   *models.ComplianceReport
	Divergence   *models.DivergenceMetrics
	Verdict      *models.Verdict
	Workpaper    *models.Workpaper

	Trace  []TraceEntry
	Errors []StateError

	CurrentStage Stage
	NextAction   Stage
}

// NewState creates the pipeline state for one session.
func NewState(sessionID, tenantID string, docs models.DocumentBundle) *State {
	return &State{
		SessionID:    sessionID,
		TenantID:     tenantID,
		Documents:    docs,
		CurrentStage: StageExtraction,
		NextAction:   StageExtraction,
	}
}

// AppendTrace records a finished stage execution.
func (s *State) AppendTrace(stage Stage, startedAt, finishedAt time.Time, outcome Outcome) {
	s.Trace = append(s.Trace, TraceEntry{
		Stage:      stage,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Outcome:    outcome,
		DurationMs: finishedAt.Sub(startedAt).Milliseconds(),
	})
}

// AddError collects a non-fatal or fatal error against a stage.
func (s *State) AddError(stage Stage, kind ErrorKind, message string, fatal bool) {
	s.Errors = append(s.Errors, StateError{Stage: stage, Kind: kind, Message: message, Fatal: fatal})
}

// HasFatal reports whether any collected error is fatal.
func (s *State) HasFatal() bool {
	for _, e := range s.Errors {
		if e.Fatal {
			return true
		}
	}
	return false
}

// HasKind reports whether any collected error carries the given kind.
func (s *State) HasKind(kind ErrorKind) bool {
	for _, e := range s.Errors {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// ErrorsFor returns the errors collected against one stage.
func (s *State) ErrorsFor(stage Stage) []StateError {
	var out []StateError
	for _, e := range s.Errors {
		if e.Stage == stage {
			out = append(out, e)
		}
	}
	return out
}
