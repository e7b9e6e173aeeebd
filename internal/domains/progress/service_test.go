package progress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutqin-client/internal/platform/httpapi"
)

func newTestService(t *testing.T, mux *http.ServeMux) *Service {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api, err := httpapi.NewClient(httpapi.Config{
		BaseURL:   srv.URL,
		Timeout:   2 * time.Second,
		Overrides: StatusOverrides(),
	})
	require.NoError(t, err)
	return NewService(api)
}

func TestReportDecodesRates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tutor/progress/ali", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"username":"ali","points":120,"memorizationLevel":"JUZ_AMMA","memorizationRate":87.5,"attendanceRate":92.3}]`))
	})

	svc := newTestService(t, mux)
	items, err := svc.Report(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].MemorizationRate.Equal(decimal.NewFromFloat(87.5)))
	assert.True(t, items[0].AttendanceRate.Equal(decimal.NewFromFloat(92.3)))
}

func TestTutorStudents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tutor/progress/sheikhs/sheikh-ali/students", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]StudentSummary{{Username: "ali", Points: 120}})
	})

	svc := newTestService(t, mux)
	students, err := svc.TutorStudents(context.Background(), "sheikh-ali")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ali", students[0].Username)
}

func TestUpdateEventTypeLink(t *testing.T) {
	t.Run("rejects a malformed link locally", func(t *testing.T) {
		var hit atomic.Bool
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			hit.Store(true)
		})

		svc := newTestService(t, mux)
		err := svc.UpdateEventTypeLink(context.Background(), UpdateLinkRequest{
			Username: "sheikh-ali",
			Link:     "https://example.com/not-calendly",
		})
		require.Error(t, err)

		apiErr, ok := httpapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, httpapi.CodeValidation, apiErr.Code)
		assert.False(t, hit.Load())
	})

	t.Run("publishes a valid link", func(t *testing.T) {
		var body []byte
		mux := http.NewServeMux()
		mux.HandleFunc("/api/tutor/progress/event-type-link/sheikh-ali", func(w http.ResponseWriter, r *http.Request) {
			body, _ = io.ReadAll(r.Body)
		})

		svc := newTestService(t, mux)
		err := svc.UpdateEventTypeLink(context.Background(), UpdateLinkRequest{
			Username: "sheikh-ali",
			Link:     "https://calendly.com/sheikh-ali/quran-session",
		})
		require.NoError(t, err)

		var sent map[string]string
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, "https://calendly.com/sheikh-ali/quran-session", sent["link"])
	})

	t.Run("unknown tutor", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/tutor/progress/event-type-link/ghost", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		svc := newTestService(t, mux)
		err := svc.UpdateEventTypeLink(context.Background(), UpdateLinkRequest{
			Username: "ghost",
			Link:     "https://calendly.com/ghost/session",
		})
		apiErr, ok := httpapi.AsError(err)
		require.True(t, ok)
		assert.Equal(t, CodeTutorNotFound, apiErr.Code)
	})
}
