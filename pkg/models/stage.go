package models

import (
	"github.com/procureguard/trimatch/ent"
)

// CreateStageExecutionRequest contains fields for creating a new stage execution
type CreateStageExecutionRequest struct {
	SessionID  string `json:"session_id"`
	Stage      string `json:"stage"`
	StageIndex int    `json:"stage_index"`
}

// StageExecutionResponse wraps a StageExecution row
type StageExecutionResponse struct {
	*ent.StageExecution
}
