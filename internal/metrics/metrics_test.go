package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := New()

	m.NotificationSent(KindMissed)
	m.NotificationSent(KindMissed)
	m.NotificationSent(KindGoodMorning)
	m.NotificationFailed(KindMissed)
	m.StoreRetry()
	m.SetActiveMembers(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues(KindMissed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues(KindGoodMorning)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues(KindMissed)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeRetries))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeMembers))
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.NotificationSent(KindMissed)
		m.NotificationFailed(KindMissed)
		m.StoreRetry()
		m.SetActiveMembers(1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NotificationSent(KindGoodMorning)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `morningclub_notifications_sent_total{kind="good_morning"} 1`)
}
