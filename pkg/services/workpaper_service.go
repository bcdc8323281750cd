package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/procureguard/trimatch/ent"
	"github.com/procureguard/trimatch/ent/workpaper"
	"github.com/procureguard/trimatch/pkg/models"
)

// WorkpaperService stores and serves the composed workpaper artifact
type WorkpaperService struct {
	client *ent.Client
}

// NewWorkpaperService creates a new WorkpaperService
func NewWorkpaperService(client *ent.Client) *WorkpaperService {
	return &WorkpaperService{client: client}
}

// SaveWorkpaper persists the drafting output for a session. A rerun
// replaces the previous artifact.
func (s *WorkpaperService) SaveWorkpaper(ctx context.Context, sessionID string, wp *models.Workpaper) (*ent.Workpaper, error) {
	if wp == nil {
		return nil, NewValidationError("workpaper", "required")
	}
	if wp.HTML == "" {
		return nil, NewValidationError("workpaper", "html artifact is empty")
	}

	// Structured source stored alongside the rendered HTML; the HTML is
	// not duplicated inside the JSON column.
	doc := *wp
	doc.HTML = ""
	docBytes, err := json.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workpaper: %w", err)
	}
	var docJSON map[string]any
	if err := json.Unmarshal(docBytes, &docJSON); err != nil {
		return nil, fmt.Errorf("failed to unmarshal workpaper: %w", err)
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := s.client.Workpaper.Query().
		Where(workpaper.SessionIDEQ(sessionID)).
		Only(writeCtx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query workpaper: %w", err)
	}

	if existing != nil {
		updated, err := s.client.Workpaper.UpdateOne(existing).
			SetHTML(wp.HTML).
			SetSections(docJSON).
			SetCitationCount(len(wp.Citations)).
			Save(writeCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to update workpaper: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.Workpaper.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetHTML(wp.HTML).
		SetSections(docJSON).
		SetCitationCount(len(wp.Citations)).
		Save(writeCtx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create workpaper: %w", err)
	}

	return created, nil
}

// GetWorkpaper retrieves the workpaper for a session
func (s *WorkpaperService) GetWorkpaper(ctx context.Context, sessionID string) (*ent.Workpaper, error) {
	wp, err := s.client.Workpaper.Query().
		Where(workpaper.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workpaper: %w", err)
	}

	return wp, nil
}
