package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMiddleware_CountsRequests(t *testing.T) {
	r := gin.New()
	r.Use(Middleware())
	r.GET("/pets/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/pets/:id", "200"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pets/7", nil))
	require.Equal(t, http.StatusOK, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/pets/:id", "200"))
	assert.Equal(t, before+1, after)
}

func TestObserveContractCall(t *testing.T) {
	before := testutil.ToFloat64(contractCalls.WithLabelValues("adoptPet", "ok"))
	ObserveContractCall("adoptPet", "ok", 20*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(contractCalls.WithLabelValues("adoptPet", "ok")))
}

func TestSetSessionActive(t *testing.T) {
	SetSessionActive(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(activeSessions))
	SetSessionActive(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(activeSessions))
}

func TestHandler_ServesRegistry(t *testing.T) {
	ObservePollTick()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pet_world_reconciler_poll_ticks_total")
}
