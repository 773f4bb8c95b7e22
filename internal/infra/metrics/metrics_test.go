package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/flow"
	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ flow.Observer = (*Metrics)(nil)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.TestStarted()
	m.TestStarted()
	m.SelectionMade(true)
	m.TestCompleted(model.LevelMedium)
	m.CertificateRendered(nil)
	m.CertificateRendered(errors.New("no template"))
	m.MembershipChecked(flow.MembershipError)
	m.LedgerWriteFailed(errors.New("disk full"))
	m.SessionsSwept(3)
	m.ObserveUpdate("callback", time.Now(), nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.testsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selections.WithLabelValues("full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.testsCompleted.WithLabelValues("medium")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.certificates.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.membershipLookups.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ledgerWriteErrors))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessionsSwept))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.updatesHandled.WithLabelValues("callback", "ok")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.TestStarted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "burncheck_tests_started_total 1")
}
