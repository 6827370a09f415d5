package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "authgate/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: OutcomeSuccess},
		{name: "email in use", err: domainerrors.ErrEmailInUse.WrapMessage("taken"), want: OutcomeEmailInUse},
		{name: "user not found", err: errors.Wrap(domainerrors.ErrUserNotFound, "signin"), want: OutcomeUserNotFound},
		{name: "invalid credentials", err: domainerrors.ErrInvalidCredentials, want: OutcomeInvalidCredentials},
		{name: "malformed hash", err: domainerrors.ErrMalformedStoredHash, want: OutcomeError},
		{name: "other", err: errors.New("boom"), want: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestMetrics_RecordSignupAndSignin(t *testing.T) {
	m := New()

	m.RecordSignup(nil)
	m.RecordSignup(domainerrors.ErrEmailInUse)
	m.RecordSignin(domainerrors.ErrInvalidCredentials)
	m.RecordSignin(domainerrors.ErrInvalidCredentials)

	assert.InDelta(t, 1, testutil.ToFloat64(m.signups.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.signups.WithLabelValues(OutcomeEmailInUse)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.signins.WithLabelValues(OutcomeInvalidCredentials)), 0)
}

func TestMetrics_RecordSessionsSwept(t *testing.T) {
	m := New()

	m.RecordSessionsSwept(3)
	m.RecordSessionsSwept(0)

	assert.InDelta(t, 3, testutil.ToFloat64(m.sessionsSwept), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RecordSignin(nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `authgate_signins_total{outcome="success"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	first, second := New(), New()
	first.RecordSignup(nil)

	assert.InDelta(t, 0, testutil.ToFloat64(second.signups.WithLabelValues(OutcomeSuccess)), 0)
	assert.NotSame(t, first.Registry(), second.Registry())
}
