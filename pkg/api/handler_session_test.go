package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sessions?"+rawQuery, nil)
	return c
}

func TestParseSessionFilters_Validation(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		errMsg string
	}{
		{
			name:   "non-numeric limit",
			query:  "limit=lots",
			errMsg: "invalid limit",
		},
		{
			name:   "limit over cap",
			query:  "limit=500",
			errMsg: "invalid limit",
		},
		{
			name:   "negative offset",
			query:  "offset=-1",
			errMsg: "invalid offset",
		},
		{
			name:   "unknown status value",
			query:  "status=bogus",
			errMsg: "invalid status: bogus",
		},
		{
			name:   "comma-separated statuses with one invalid",
			query:  "status=matched,bogus",
			errMsg: "invalid status: bogus",
		},
		{
			name:   "invalid created_after",
			query:  "created_after=not-a-date",
			errMsg: "invalid created_after",
		},
		{
			name:   "created_before wrong format (not RFC3339)",
			query:  "created_before=2026-01-01",
			errMsg: "invalid created_before",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSessionFilters(queryContext(t, tt.query))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseSessionFilters_Defaults(t *testing.T) {
	filters, err := parseSessionFilters(queryContext(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 25, filters.Limit)
	assert.Equal(t, 0, filters.Offset)
	assert.Empty(t, filters.Status)
	assert.Empty(t, filters.TenantID)
	assert.Empty(t, filters.VendorName)
	assert.Nil(t, filters.CreatedAfter)
	assert.Nil(t, filters.CreatedBefore)
}

func TestParseSessionFilters_FullQuery(t *testing.T) {
	query := "limit=50&offset=100&status=matched,discrepancy_found&tenant_id=acme&vendor=Initech" +
		"&created_after=2026-01-01T00:00:00Z&created_before=2026-02-01T00:00:00Z"
	filters, err := parseSessionFilters(queryContext(t, query))
	require.NoError(t, err)

	assert.Equal(t, 50, filters.Limit)
	assert.Equal(t, 100, filters.Offset)
	assert.Equal(t, "matched,discrepancy_found", filters.Status)
	assert.Equal(t, "acme", filters.TenantID)
	assert.Equal(t, "Initech", filters.VendorName)
	require.NotNil(t, filters.CreatedAfter)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), filters.CreatedAfter.UTC())
	require.NotNil(t, filters.CreatedBefore)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), filters.CreatedBefore.UTC())
}

func TestGetSessionHandler_MissingID(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/sessions/", nil)

	s.getSessionHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "session id")
}

func TestCancelSessionHandler_MissingID(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/sessions//cancel", nil)

	s.cancelSessionHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "session id")
}
