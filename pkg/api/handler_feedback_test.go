package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func feedbackContext(t *testing.T, sessionID, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/feedback",
		strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		c.Params = gin.Params{{Key: "id", Value: sessionID}}
	}
	return c, w
}

func TestSubmitFeedbackHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing session id returns 400", func(t *testing.T) {
		c, w := feedbackContext(t, "", `{"outcome":"correct"}`)
		s.submitFeedbackHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "session id")
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		c, w := feedbackContext(t, "sess-1", `{not json`)
		s.submitFeedbackHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown outcome returns 400", func(t *testing.T) {
		c, w := feedbackContext(t, "sess-1", `{"outcome":"maybe"}`)
		s.submitFeedbackHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid outcome")
	})
}

func TestTenantThresholdHandler_MissingID(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/tenants//threshold", nil)

	s.tenantThresholdHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "tenant id")
}
