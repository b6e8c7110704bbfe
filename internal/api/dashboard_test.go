package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"studywise-client/internal/config"
	"studywise-client/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticIdentity string

func (s staticIdentity) Email() string { return string(s) }

func (staticIdentity) Mode(context.Context) session.Mode { return session.DefaultMode }

func (staticIdentity) SetMode(context.Context, session.Mode) error { return nil }

func TestDashboardFetchesBothHalves(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/dashboard/stats/"):
			_, _ = w.Write([]byte(`{"stats":{"total_uploads":2,"avg_quiz_score":71.5,"progress":{"completed":1}}}`))
		case strings.HasPrefix(r.URL.Path, "/api/dashboard/overview/"):
			_, _ = w.Write([]byte(`{"overview":{"recent_quizzes":[{"title":"Graphs - Quiz","percentage":80}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(config.APIConfig{}, staticIdentity("ada@example.com"), WithBaseURL(srv.URL+"/api"))
	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.Equal(t, 2, d.Stats.TotalUploads)
	assert.Equal(t, 71.5, d.Stats.AvgQuizScore)
	assert.Equal(t, 1, d.Stats.Progress.Completed)
	require.Len(t, d.Overview.RecentQuizzes, 1)
	assert.Equal(t, "Graphs - Quiz", d.Overview.RecentQuizzes[0].Title)
}

func TestDashboardKeepsOverviewWhenStatsFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/stats/") {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"stats down"}`))
			return
		}
		_, _ = w.Write([]byte(`{"overview":{"recent_quizzes":[{"title":"Graphs - Quiz","percentage":80}]}}`))
	}))
	defer srv.Close()

	c := New(config.APIConfig{}, staticIdentity("ada@example.com"), WithBaseURL(srv.URL+"/api"))
	d, err := c.Dashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Nil(t, d.Stats)
	require.Error(t, d.StatsErr)
	assert.Equal(t, KindRequest, KindOf(d.StatsErr))
	assert.Equal(t, "stats down", d.StatsErr.Error())

	assert.NoError(t, d.OverviewErr)
	require.NotNil(t, d.Overview)
	require.Len(t, d.Overview.RecentQuizzes, 1)
	assert.Equal(t, "Graphs - Quiz", d.Overview.RecentQuizzes[0].Title)
}

func TestDashboardFailsOnlyWhenBothHalvesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"maintenance"}`))
	}))
	defer srv.Close()

	c := New(config.APIConfig{}, staticIdentity("ada@example.com"), WithBaseURL(srv.URL+"/api"))
	d, err := c.Dashboard(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequest)
	assert.Equal(t, http.StatusServiceUnavailable, StatusOf(err))

	require.NotNil(t, d)
	assert.Nil(t, d.Stats)
	assert.Nil(t, d.Overview)
	assert.Error(t, d.StatsErr)
	assert.Error(t, d.OverviewErr)
}
