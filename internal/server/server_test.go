package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studywise-client/internal/api"
	"studywise-client/internal/bootstrap"
	"studywise-client/internal/config"
	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/logger"
	"studywise-client/internal/render"
	"studywise-client/internal/session"
	"studywise-client/internal/storage"

	"github.com/fatih/color"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const syllabus = `Data Structures
Unit 1: Arrays and Linked Lists
Unit 2: Stacks and Queues
Unit 3: Trees and Heaps
`

func newServer(t *testing.T, stub config.StubConfig) *Server {
	t.Helper()
	if stub.CorsAllowedOrigins == "" {
		stub.CorsAllowedOrigins = "*"
	}
	cfg := &config.Config{Stub: stub}
	return New(cfg, bootstrap.NewStubContainer(cfg, logger.NewNopLogger()))
}

// listen mounts s on an httptest server and returns the API base URL.
func listen(t *testing.T, s *Server) string {
	t.Helper()
	srv := httptest.NewServer(adaptor.FiberApp(s.GetApp()))
	t.Cleanup(srv.Close)
	return srv.URL + "/api"
}

func newClient(t *testing.T, base, email string) (*api.Client, *session.Session) {
	t.Helper()
	ctx := context.Background()
	sess, err := session.Open(ctx, storage.NewMemoryStorage(), &session.StaticPrompter{Answer: email}, logger.NewNopLogger())
	require.NoError(t, err)

	c := api.New(config.APIConfig{Host: "localhost", LocalBaseURL: base}, sess,
		api.WithClock(func() time.Time { return time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC) }),
	)
	return c, sess
}

func call(t *testing.T, s *Server, method, path, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.GetApp().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestRouteErrors(t *testing.T) {
	s := newServer(t, config.StubConfig{})

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"unknown endpoint", http.MethodGet, "/api/nope", "", 404, `{"error":"Endpoint not found"}`},
		{"invalid mode", http.MethodPost, "/api/ai/mode", `{"mode":"turbo"}`, 400, `{"error":"Invalid mode. Must be: free, ollama, or cloud"}`},
		{"ollama unavailable", http.MethodPost, "/api/ai/mode", `{"mode":"ollama","user_id":"a@x.com"}`, 400, `{"error":"Ollama is not available","fallback":"free","saved":false}`},
		{"timetable without email", http.MethodGet, "/api/timetable", "", 400, `{"error":"Email parameter required"}`},
		{"bad day of week", http.MethodPost, "/api/timetable", `{"email":"a@x.com","day_of_week":7,"start_time":"09:00","end_time":"10:00","title":"Maths"}`, 400, `{"error":"day_of_week must be 0-6"}`},
		{"quiz without topic", http.MethodPost, "/api/quiz/generate", `{"email":"a@x.com"}`, 400, `{"error":"topic_id required"}`},
		{"quiz for unknown user", http.MethodPost, "/api/quiz/generate", `{"topic_id":"t","email":"ghost@x.com"}`, 404, `{"error":"User not found"}`},
		{"plan without fields", http.MethodPost, "/api/plan/generate", `{}`, 400, `{"error":"email required","success":false}`},
		{"plan for unknown user", http.MethodGet, "/api/plan/ghost@x.com", "", 404, `{"error":"User not found","message":"No user found with email: ghost@x.com","success":false}`},
		{"pyq without file", http.MethodPost, "/api/upload/pyq", "", 400, `{"error":"No file uploaded"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := call(t, s, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.JSONEq(t, tc.wantBody, body)
		})
	}
}

func TestUnknownUserShapes(t *testing.T) {
	s := newServer(t, config.StubConfig{})

	tests := []struct {
		path string
		want string
	}{
		{"/api/health", `{"status":"healthy","message":"StudyWise API is running","version":"1.0.0"}`},
		{"/api/upload/uploads/ghost@x.com", `{"uploads":[]}`},
		{"/api/quiz/history/ghost@x.com", `{"history":[]}`},
		{"/api/notes/ghost@x.com", `{"notes":[]}`},
		{"/api/notes?email=ghost@x.com", `{"notes":[]}`},
		{"/api/timetable?email=ghost@x.com", `{"classes":[]}`},
		{"/api/dashboard/overview/ghost@x.com", `{"overview":{}}`},
		{"/api/ai/mode/ghost@x.com", `{"mode":"free","user_id":"ghost@x.com"}`},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			status, body := call(t, s, http.MethodGet, tc.path, "")
			assert.Equal(t, http.StatusOK, status)
			assert.JSONEq(t, tc.want, body)
		})
	}
}

func TestEndToEndStudyFlow(t *testing.T) {
	color.NoColor = true
	base := listen(t, newServer(t, config.StubConfig{}))
	c, sess := newClient(t, base, "ada@example.com")
	ctx := context.Background()

	health, err := c.HealthCheck(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)

	// a new user sees empty lists, not errors
	uploads, err := c.ListUploads(ctx)
	require.NoError(t, err)
	assert.Empty(t, uploads)

	up, err := c.UploadSyllabus(ctx, api.FileUpload{Name: "ds.pdf", Reader: strings.NewReader(syllabus)}, "Data Structures")
	require.NoError(t, err)
	assert.True(t, up.Success)
	assert.Equal(t, 3, up.TopicsCount)

	uploads, err = c.ListUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 1)
	assert.Equal(t, "Data Structures", uploads[0].Subject)

	topics, err := c.ListTopics(ctx, up.UploadId)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "Arrays and Linked Lists", topics[0].Name)

	pyq, err := c.UploadPYQ(ctx, api.FileUpload{Name: "pyq.pdf", Reader: strings.NewReader("Q1. What is a heap?\n")}, up.UploadId)
	require.NoError(t, err)
	assert.Equal(t, 1, pyq.PYQsCount)

	// sparse submit: only the first of three questions answered
	quiz, err := c.GenerateQuiz(ctx, topics[0].Id, 3)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 3)

	answers := dto.Answers{0: *quiz.Questions[0].Correct}
	result, err := c.SubmitQuiz(ctx, quiz.QuizId, answers)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)

	var review bytes.Buffer
	render.QuizReview(&review, quiz, result, answers)
	assert.Contains(t, review.String(), "Score: 1/3")
	assert.Equal(t, 2, strings.Count(review.String(), "Not answered"))

	history, err := c.QuizHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	progress, err := c.UploadTopicsWithProgress(ctx, up.UploadId)
	require.NoError(t, err)
	require.Equal(t, 3, progress.Total)
	assert.Equal(t, dto.ProgressInProgress, progress.Topics[0].Progress.Status)

	dash, err := c.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Stats.TotalQuizzes)
	assert.Len(t, dash.Overview.RecentQuizzes, 1)

	// plans start on the client's today
	_, err = c.GetPlan(ctx)
	assert.True(t, api.IsNotFound(err))

	plan, err := c.GeneratePlan(ctx, up.UploadId, "2026-03-11", 2)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", plan.StartDate)
	assert.Equal(t, 3, plan.TotalDays)

	latest, err := c.GetPlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, plan.PlanId, latest.PlanId)

	all, err := c.ListAllPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = c.GeneratePlan(ctx, up.UploadId, "2026-03-01", 2)
	require.Error(t, err)
	assert.Equal(t, "End date must be after start date", err.Error())
	assert.Equal(t, 400, api.StatusOf(err))

	// timetable
	added, err := c.AddTimetableEntry(ctx, dto.TimetableEntry{DayOfWeek: 0, StartTime: "09:00", EndTime: "10:00", Title: "Maths"})
	require.NoError(t, err)
	require.NotNil(t, added.Entry)

	entries, err := c.GetTimetable(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].DayOfWeek)

	ack, err := c.DeleteTimetableEntry(ctx, added.Entry.Id)
	require.NoError(t, err)
	assert.True(t, ack.Success)

	// notes: delete has no body and succeeds
	saved, err := c.SaveNote(ctx, nil, "DS", "# Heaps")
	require.NoError(t, err)
	require.NotNil(t, saved.Note)

	id := saved.Note.Id
	_, err = c.SaveNote(ctx, &id, "DS", "# Heaps\nmin-heap")
	require.NoError(t, err)

	notes, err := c.GetNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "# Heaps\nmin-heap", notes[0].Content)

	del, err := c.DeleteNote(ctx, id)
	require.NoError(t, err)
	assert.True(t, del.Success)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(del.Raw, &raw))
	assert.Equal(t, true, raw["success"])

	notes, err = c.GetNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// mode switching: rejected modes never reach local storage
	_, err = c.SwitchMode(ctx, session.ModeLocal)
	require.Error(t, err)
	assert.Equal(t, "Ollama is not available", err.Error())
	assert.Equal(t, session.ModeBasic, sess.Mode(ctx))

	ollama, err := c.OllamaStatus(ctx)
	require.NoError(t, err)
	assert.False(t, ollama.Available)
}

func TestEndToEndCloudMode(t *testing.T) {
	base := listen(t, newServer(t, config.StubConfig{CloudConfigured: true}))
	c, sess := newClient(t, base, "grace@example.com")
	ctx := context.Background()

	cloud, err := c.CloudStatus(ctx)
	require.NoError(t, err)
	assert.True(t, cloud.Ready())

	res, err := c.SwitchMode(ctx, session.ModeCloud)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.Equal(t, session.ModeCloud, sess.Mode(ctx))

	mode, err := c.GetAIMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cloud", mode.Mode)

	up, err := c.UploadSyllabus(ctx, api.FileUpload{Name: "ds.pdf", Reader: strings.NewReader(syllabus)}, "Data Structures")
	require.NoError(t, err)
	assert.Equal(t, "cloud", up.AIUsed)
}

func TestEndToEndUploadRejected(t *testing.T) {
	base := listen(t, newServer(t, config.StubConfig{}))
	c, _ := newClient(t, base, "ada@example.com")

	_, err := c.UploadSyllabus(context.Background(), api.FileUpload{Name: "notes.txt", Reader: strings.NewReader(syllabus)}, "DS")
	require.Error(t, err)
	assert.Equal(t, api.KindRequest, api.KindOf(err))
	assert.Equal(t, "Only PDF files allowed. File must end with .pdf", err.Error())

	_, err = c.Request(context.Background(), "/does-not-exist", api.RequestOptions{})
	require.Error(t, err)
	assert.True(t, api.IsNotFound(err))
	assert.Equal(t, "Endpoint not found", err.Error())
}
