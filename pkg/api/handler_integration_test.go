package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procureguard/trimatch/ent/reconsession"
	"github.com/procureguard/trimatch/pkg/config"
	"github.com/procureguard/trimatch/pkg/database"
	"github.com/procureguard/trimatch/pkg/events"
	"github.com/procureguard/trimatch/pkg/models"
	"github.com/procureguard/trimatch/pkg/services"
	"github.com/procureguard/trimatch/pkg/threshold"
	testdb "github.com/procureguard/trimatch/test/database"
)

type apiHarness struct {
	dbClient   *database.Client
	sessions   *services.SessionService
	feedback   *services.FeedbackService
	workpapers *services.WorkpaperService
	events     *services.EventService
	warnings   *services.SystemWarningsService
	server     *Server
	ts         *httptest.Server
}

func newAPIHarness(t *testing.T) *apiHarness {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	entClient := dbClient.Client

	h := &apiHarness{
		dbClient:   dbClient,
		sessions:   services.NewSessionService(entClient),
		feedback:   services.NewFeedbackService(entClient, threshold.NewStore()),
		workpapers: services.NewWorkpaperService(entClient),
		events:     services.NewEventService(entClient),
		warnings:   services.NewSystemWarningsService(),
	}

	cfg := &config.Config{System: &config.SystemConfig{ListenAddr: ":0"}}
	h.server = NewServer(cfg, dbClient, h.sessions, h.feedback, h.workpapers, nil, nil)
	h.server.SetEventService(h.events)
	h.server.SetWarningsService(h.warnings)

	h.ts = httptest.NewServer(h.server.Handler())
	t.Cleanup(h.ts.Close)
	return h
}

func (h *apiHarness) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(h.ts.URL + path)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func (h *apiHarness) post(t *testing.T, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(h.ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return resp, body
}

func apiTestBundle() models.DocumentBundle {
	chunk := func(id, text string) []models.Chunk {
		return []models.Chunk{{
			ID:       id,
			Text:     text,
			Citation: models.Citation{Page: 0, BBox: models.BBox{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.2}},
		}}
	}
	return models.DocumentBundle{
		PO: models.DocumentInput{Kind: models.KindPO, Chunks: chunk("po-c1",
			"Purchase Order PO-88 Initech quantity 4 unit price 25.00 grand total 100.00")},
		GRN: models.DocumentInput{Kind: models.KindGRN, Chunks: chunk("grn-c1",
			"Goods Receipt GRN-88 Initech received 4 unit price 25.00 grand total 100.00")},
		Invoice: models.DocumentInput{Kind: models.KindInvoice, Chunks: chunk("inv-c1",
			"Invoice INV-88 Initech quantity 4 unit price 25.00 grand total 100.00")},
	}
}

func (h *apiHarness) createSession(t *testing.T, tenantID string) string {
	t.Helper()
	session, err := h.sessions.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  tenantID,
		Documents: apiTestBundle(),
	})
	require.NoError(t, err)
	return session.ID
}

func TestSubmitReconciliation(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	t.Run("valid submission is accepted as pending", func(t *testing.T) {
		resp, body := h.post(t, "/api/v1/reconciliations", SubmitReconciliationRequest{
			TenantID:  "tenant-submit",
			Documents: apiTestBundle(),
		})
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		var out SubmitResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.NotEmpty(t, out.SessionID)
		assert.Equal(t, "queued", out.Status)

		row, err := h.dbClient.ReconSession.Get(ctx, out.SessionID)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusPending, row.Status)
		assert.Equal(t, "tenant-submit", row.TenantID)
		assert.Equal(t, "api-client", row.SessionMetadata["submitted_by"])
	})

	t.Run("duplicate session id conflicts", func(t *testing.T) {
		req := SubmitReconciliationRequest{
			SessionID: uuid.New().String(),
			TenantID:  "tenant-submit",
			Documents: apiTestBundle(),
		}
		resp, _ := h.post(t, "/api/v1/reconciliations", req)
		require.Equal(t, http.StatusAccepted, resp.StatusCode)

		resp, body := h.post(t, "/api/v1/reconciliations", req)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(body), "already exists")
	})

	t.Run("missing tenant id is rejected", func(t *testing.T) {
		resp, body := h.post(t, "/api/v1/reconciliations", SubmitReconciliationRequest{
			Documents: apiTestBundle(),
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "tenant_id")
	})

	t.Run("incomplete bundle is rejected", func(t *testing.T) {
		bundle := apiTestBundle()
		bundle.Invoice.Chunks = nil
		resp, body := h.post(t, "/api/v1/reconciliations", SubmitReconciliationRequest{
			TenantID:  "tenant-submit",
			Documents: bundle,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "documents.invoice")
	})
}

func TestGetAndListSessions(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	first := h.createSession(t, "tenant-a")
	second := h.createSession(t, "tenant-b")
	require.NoError(t, h.sessions.RecordExtractedFields(ctx, first, "Initech", "INV-88"))

	t.Run("get returns the session row", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions/"+first)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), first)
		assert.Contains(t, string(body), "tenant-a")
	})

	t.Run("get unknown session is 404", func(t *testing.T) {
		resp, _ := h.get(t, "/api/v1/sessions/no-such-session")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("list filters by tenant", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions?tenant_id=tenant-b")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out models.SessionListResponse
		require.NoError(t, json.Unmarshal(body, &out))
		require.Equal(t, 1, out.TotalCount)
		assert.Equal(t, second, out.Sessions[0].ID)
	})

	t.Run("list rejects unknown status", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions?status=bogus")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "invalid status")
	})

	t.Run("active view includes pending sessions", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions/active")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), second)
	})

	t.Run("filter options report vendors, tenants, statuses", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions/filter-options")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out FilterOptionsResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Contains(t, out.Vendors, "Initech")
		assert.Contains(t, out.Tenants, "tenant-a")
		assert.Contains(t, out.Tenants, "tenant-b")
		assert.Contains(t, out.Statuses, string(reconsession.StatusMatched))
		assert.Len(t, out.Statuses, 9)
	})
}

func TestCancelSessionEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	sessionID := h.createSession(t, "tenant-cancel")

	t.Run("pending session cancels immediately", func(t *testing.T) {
		resp, body := h.post(t, "/api/v1/sessions/"+sessionID+"/cancel", struct{}{})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out CancelResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, string(reconsession.StatusCancelled), out.Status)

		row, err := h.dbClient.ReconSession.Get(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, reconsession.StatusCancelled, row.Status)
	})

	t.Run("terminal session is not cancellable", func(t *testing.T) {
		resp, body := h.post(t, "/api/v1/sessions/"+sessionID+"/cancel", struct{}{})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(body), "not in a cancellable state")
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		resp, _ := h.post(t, "/api/v1/sessions/no-such-session/cancel", struct{}{})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWorkpaperEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	sessionID := h.createSession(t, "tenant-wp")

	t.Run("missing workpaper is 404", func(t *testing.T) {
		resp, _ := h.get(t, "/api/v1/sessions/"+sessionID+"/workpaper")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("stored workpaper is served as html", func(t *testing.T) {
		_, err := h.workpapers.SaveWorkpaper(ctx, sessionID, &models.Workpaper{
			SessionID: sessionID,
			HTML:      "<html><body><h1>Reconciliation Workpaper</h1></body></html>",
		})
		require.NoError(t, err)

		resp, body := h.get(t, "/api/v1/sessions/"+sessionID+"/workpaper")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Contains(t, string(body), "Reconciliation Workpaper")
	})
}

func TestSessionEventsEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	sessionID := h.createSession(t, "tenant-events")
	channel := events.SessionChannel(sessionID)

	ids := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		ev, err := h.events.CreateEvent(ctx, models.CreateEventRequest{
			SessionID: sessionID,
			Channel:   channel,
			Payload:   map[string]any{"type": "agent_started", "seq": i},
		})
		require.NoError(t, err)
		ids = append(ids, ev.ID)
	}
	// An event on another session's channel must not leak into this feed.
	otherID := h.createSession(t, "tenant-events")
	_, err := h.events.CreateEvent(ctx, models.CreateEventRequest{
		SessionID: otherID,
		Channel:   events.SessionChannel(otherID),
		Payload:   map[string]any{"type": "agent_started"},
	})
	require.NoError(t, err)

	t.Run("full catch-up from zero", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions/"+sessionID+"/events")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out SessionEventsResponse
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out.Events, 3)
		assert.Equal(t, ids[2], out.LastEventID)
	})

	t.Run("after_id pages forward", func(t *testing.T) {
		resp, body := h.get(t, fmt.Sprintf("/api/v1/sessions/%s/events?after_id=%d", sessionID, ids[0]))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out SessionEventsResponse
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out.Events, 2)
		assert.Equal(t, ids[1], out.Events[0].ID)
		assert.Equal(t, ids[2], out.LastEventID)
	})

	t.Run("empty page keeps the cursor", func(t *testing.T) {
		resp, body := h.get(t, fmt.Sprintf("/api/v1/sessions/%s/events?after_id=%d", sessionID, ids[2]))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out SessionEventsResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Empty(t, out.Events)
		assert.Equal(t, ids[2], out.LastEventID)
	})

	t.Run("bad after_id is rejected", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/sessions/"+sessionID+"/events?after_id=soon")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "invalid after_id")
	})
}

func TestFeedbackAndThresholdEndpoints(t *testing.T) {
	h := newAPIHarness(t)
	ctx := context.Background()

	sessionID := h.createSession(t, "tenant-fb")
	_, err := h.feedback.RecordDivergence(ctx, sessionID, "tenant-fb", &models.DivergenceMetrics{
		Similarity:     0.72,
		Threshold:      0.85,
		AlertTriggered: true,
	})
	require.NoError(t, err)

	t.Run("feedback records and returns the tenant threshold", func(t *testing.T) {
		resp, body := h.post(t, "/api/v1/sessions/"+sessionID+"/feedback", SubmitFeedbackRequest{
			Outcome: models.OutcomeCorrect,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out models.ThresholdResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "tenant-fb", out.TenantID)
		assert.InDelta(t, 0.85, out.Threshold, 1e-9)
		assert.True(t, out.UsingPrior)
		assert.Equal(t, 1, out.SampleCount)
	})

	t.Run("relabeling the same session conflicts", func(t *testing.T) {
		resp, _ := h.post(t, "/api/v1/sessions/"+sessionID+"/feedback", SubmitFeedbackRequest{
			Outcome: models.OutcomeFalsePositive,
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("feedback for a session without a sample is 404", func(t *testing.T) {
		resp, _ := h.post(t, "/api/v1/sessions/no-such-session/feedback", SubmitFeedbackRequest{
			Outcome: models.OutcomeCorrect,
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("threshold endpoint reports the prior for new tenants", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/tenants/tenant-new/threshold")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out models.ThresholdResponse
		require.NoError(t, json.Unmarshal(body, &out))
		assert.Equal(t, "tenant-new", out.TenantID)
		assert.InDelta(t, 0.85, out.Threshold, 1e-9)
		assert.True(t, out.UsingPrior)
	})
}

func TestHealthzEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	resp, body := h.get(t, "/healthz")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out HealthResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "healthy", out.Status)
	assert.NotEmpty(t, out.Version)
	require.Contains(t, out.Checks, "database")
	assert.Equal(t, "healthy", out.Checks["database"].Status)
}

func TestSystemWarningsEndpoint(t *testing.T) {
	h := newAPIHarness(t)

	t.Run("empty registry returns an empty list", func(t *testing.T) {
		resp, body := h.get(t, "/api/v1/system/warnings")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"warnings":[]}`, string(body))
	})

	t.Run("raised warnings are listed", func(t *testing.T) {
		h.warnings.AddWarning(services.WarningCategoryLLMProvider,
			"provider circuit open", "groq failed 3 consecutive calls", "groq")

		resp, body := h.get(t, "/api/v1/system/warnings")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out SystemWarningsResponse
		require.NoError(t, json.Unmarshal(body, &out))
		require.Len(t, out.Warnings, 1)
		assert.Equal(t, services.WarningCategoryLLMProvider, out.Warnings[0].Category)
		assert.Equal(t, "provider circuit open", out.Warnings[0].Message)
		assert.Equal(t, "groq", out.Warnings[0].Source)
	})
}

func TestWebSocketUnavailableWithoutManager(t *testing.T) {
	h := newAPIHarness(t)

	resp, body := h.get(t, "/ws")
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Contains(t, string(body), "WebSocket not available")
}

func TestEventsEndpointUnavailableWithoutService(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	sessions := services.NewSessionService(dbClient.Client)
	feedback := services.NewFeedbackService(dbClient.Client, threshold.NewStore())
	workpapers := services.NewWorkpaperService(dbClient.Client)

	cfg := &config.Config{System: &config.SystemConfig{ListenAddr: ":0"}}
	srv := NewServer(cfg, dbClient, sessions, feedback, workpapers, nil, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/api/v1/sessions/some-session/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
