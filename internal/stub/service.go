package stub

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"studywise-client/internal/dto"
	"studywise-client/internal/pkg/logger"
)

const (
	maxUploadBytes  = 30 << 20
	minDocumentText = 50

	modeFree   = "free"
	modeOllama = "ollama"
	modeCloud  = "cloud"

	recommendedOllamaModel = "phi3"
	defaultCloudModel      = "gpt-4o-mini"
)

// Options stands in for the backend's external dependencies.
type Options struct {
	OllamaAvailable bool
	OllamaBaseURL   string
	CloudConfigured bool
}

type IStudyService interface {
	UploadSyllabus(ctx context.Context, in SyllabusInput) (*dto.SyllabusUploadResponse, error)
	UploadPYQ(ctx context.Context, uploadID, filename string, content []byte) (*dto.PYQUploadResponse, error)
	Uploads(ctx context.Context, email string) []dto.Upload
	Topics(ctx context.Context, uploadID string) []dto.Topic
	TopicsWithProgress(ctx context.Context, uploadID, email string) *dto.TopicsWithProgressResponse

	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.Quiz, error)
	SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.QuizResult, error)
	QuizHistory(ctx context.Context, email string) []dto.QuizHistoryEntry

	GeneratePlan(ctx context.Context, req *dto.GeneratePlanRequest) (*dto.StudyPlan, error)
	LatestPlan(ctx context.Context, email string) (*dto.StudyPlan, error)
	AllPlans(ctx context.Context, email string) ([]dto.StudyPlanRecord, error)

	DashboardStats(ctx context.Context, email string) dto.DashboardStats
	DashboardOverview(ctx context.Context, email string) dto.DashboardOverview

	Timetable(ctx context.Context, email string) []dto.TimetableEntry
	AddTimetableEntry(ctx context.Context, req *dto.AddTimetableRequest) (*dto.TimetableEntry, error)
	DeleteTimetableEntry(ctx context.Context, email, id string) error

	Notes(ctx context.Context, email string) []dto.Note
	SaveNote(ctx context.Context, req *dto.SaveNoteRequest) (*dto.Note, error)
	DeleteNote(ctx context.Context, id string)

	OllamaStatus(ctx context.Context) dto.OllamaStatus
	CloudStatus(ctx context.Context) dto.CloudStatus
	SetAIMode(ctx context.Context, req *dto.SetAIModeRequest) (*dto.AIModeResponse, error)
	AIMode(ctx context.Context, userID string) dto.AIModeResponse
}

type SyllabusInput struct {
	Email    string
	Name     string
	Subject  string
	Mode     string
	Filename string
	Content  []byte
}

type studyService struct {
	store *Store
	opts  Options
	log   logger.ILogger
}

func NewStudyService(store *Store, opts Options, log logger.ILogger) IStudyService {
	if opts.OllamaBaseURL == "" {
		opts.OllamaBaseURL = "http://localhost:11434"
	}
	return &studyService{store: store, opts: opts, log: log}
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }

func percentage(score, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(score) * 100 / float64(total))
}

// effectiveMode falls back to free when the requested engine is unavailable.
func (s *studyService) effectiveMode(requested string) string {
	switch requested {
	case modeOllama:
		if s.opts.OllamaAvailable {
			return modeOllama
		}
	case modeCloud:
		if s.opts.CloudConfigured {
			return modeCloud
		}
	}
	return modeFree
}

// --- uploads ---

func (s *studyService) UploadSyllabus(_ context.Context, in SyllabusInput) (*dto.SyllabusUploadResponse, error) {
	if in.Filename == "" {
		return nil, badRequest("No file selected. Please choose a PDF file.")
	}
	if !strings.EqualFold(filepath.Ext(in.Filename), ".pdf") {
		return nil, badRequest("Only PDF files allowed. File must end with .pdf")
	}
	if len(in.Content) > maxUploadBytes {
		return nil, badRequest("File too large (max 30MB). Please use a smaller PDF.")
	}
	if in.Email == "" {
		return nil, badRequest("Email is required. Include email in form data.")
	}
	if in.Subject == "" {
		return nil, badRequest("Subject is required. Include subject in form data.")
	}

	text := documentText(in.Content)
	if len(text) < minDocumentText {
		return nil, &StatusError{
			Code:    400,
			Message: "PDF appears to be empty or contains very little text",
			Detail:  "Please ensure the PDF is text-based (not scanned images)",
		}
	}

	user := s.store.GetOrCreateUser(in.Email, in.Name)
	upload := s.store.CreateUpload(user.Id, filepath.Base(in.Filename), in.Subject)

	names := extractTopics(text)
	pending := make([]dto.Topic, 0, len(names))
	for i, name := range names {
		pending = append(pending, dto.Topic{
			UploadId:        upload.Id,
			Name:            name,
			DifficultyLevel: "medium",
			EstimatedHours:  5,
			SequenceOrder:   i,
		})
	}
	topics := s.store.CreateTopics(pending)
	for _, t := range topics {
		s.store.SetProgress(progressRecord{UserId: user.Id, TopicId: t.Id, Status: dto.ProgressNotStarted})
	}

	mode := s.effectiveMode(in.Mode)
	resp := &dto.SyllabusUploadResponse{
		Success:     true,
		UploadId:    upload.Id,
		Subject:     in.Subject,
		TopicsCount: len(topics),
		Topics:      topics,
		AIUsed:      mode,
		Message:     fmt.Sprintf("Syllabus processed successfully using %s mode", mode),
	}
	switch {
	case len(topics) == 0:
		resp.Warning = "No topics extracted. The PDF may not contain a clear syllabus structure."
	case len(topics) < 3:
		resp.Warning = fmt.Sprintf("Only %d topic(s) extracted. Consider checking the PDF format.", len(topics))
	}

	s.log.Info("stub", "syllabus processed", map[string]interface{}{
		"upload_id": upload.Id,
		"topics":    len(topics),
		"mode":      mode,
	})
	return resp, nil
}

func (s *studyService) UploadPYQ(_ context.Context, uploadID, filename string, content []byte) (*dto.PYQUploadResponse, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return nil, badRequest("Only PDF files allowed")
	}
	if uploadID == "" {
		return nil, badRequest("upload_id required")
	}

	var topicID string
	if topics := s.store.TopicsByUpload(uploadID); len(topics) > 0 {
		topicID = topics[0].Id
	}
	n := s.store.CreatePYQs(uploadID, topicID, extractQuestions(documentText(content)))
	return &dto.PYQUploadResponse{
		Success:   true,
		PYQsCount: n,
		Message:   fmt.Sprintf("Extracted %d questions", n),
	}, nil
}

func (s *studyService) Uploads(_ context.Context, email string) []dto.Upload {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return []dto.Upload{}
	}
	return s.store.UploadsByUser(user.Id)
}

func (s *studyService) Topics(_ context.Context, uploadID string) []dto.Topic {
	return s.store.TopicsByUpload(uploadID)
}

func (s *studyService) TopicsWithProgress(_ context.Context, uploadID, email string) *dto.TopicsWithProgressResponse {
	topics := s.store.TopicsByUpload(uploadID)
	if user, ok := s.store.UserByEmail(email); ok && email != "" {
		for i := range topics {
			p := dto.TopicProgress{Status: dto.ProgressNotStarted}
			if rec, found := s.store.Progress(user.Id, topics[i].Id); found {
				p = dto.TopicProgress{Status: rec.Status, HoursSpent: rec.HoursSpent}
			}
			topics[i].Progress = &p
		}
	}
	return &dto.TopicsWithProgressResponse{Topics: topics, Total: len(topics)}
}

// --- quizzes ---

func (s *studyService) GenerateQuiz(_ context.Context, req *dto.GenerateQuizRequest) (*dto.Quiz, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return nil, errUserNotFound
	}
	topic, ok := s.store.Topic(req.TopicId)
	if !ok {
		return nil, errTopicNotFound
	}

	quiz := s.store.CreateQuiz(quizRecord{
		UserId:    user.Id,
		TopicId:   topic.Id,
		Title:     topic.Name + " - Quiz",
		Questions: buildQuestions(topic, req.NumQuestions),
	})
	return &dto.Quiz{
		Success:        true,
		QuizId:         quiz.Id,
		Title:          quiz.Title,
		Questions:      quiz.Questions,
		TotalQuestions: len(quiz.Questions),
		AIUsed:         s.effectiveMode(req.AIMode),
	}, nil
}

// SubmitQuiz scores a possibly sparse answer map. Missing answers are
// reported as -1 and count as wrong. Passing marks the quiz topic complete.
func (s *studyService) SubmitQuiz(_ context.Context, req *dto.SubmitQuizRequest) (*dto.QuizResult, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return nil, errUserNotFound
	}
	quiz, ok := s.store.Quiz(req.QuizId)
	if !ok {
		return nil, errQuizNotFound
	}

	correct := 0
	results := make([]dto.QuestionResult, 0, len(quiz.Questions))
	answerKey := make([]int, 0, len(quiz.Questions))
	for i, q := range quiz.Questions {
		userAnswer, answered := req.Answers[i]
		if !answered {
			userAnswer = -1
		}
		right := -1
		if q.Correct != nil {
			right = *q.Correct
		}
		isCorrect := answered && userAnswer == right
		if isCorrect {
			correct++
		}
		answerKey = append(answerKey, right)
		results = append(results, dto.QuestionResult{
			QuestionNumber: i + 1,
			Question:       q.Question,
			UserAnswer:     userAnswer,
			CorrectAnswer:  right,
			IsCorrect:      isCorrect,
			Explanation:    q.Explanation,
		})
	}

	total := len(quiz.Questions)
	attempt := s.store.SaveAttempt(attemptRecord{
		QuizId:  quiz.Id,
		UserId:  user.Id,
		Score:   correct,
		Total:   total,
		Answers: req.Answers,
	})
	pct := percentage(correct, total)
	s.recordStudy(user.Id, quiz.TopicId, pct)

	rawKey, _ := json.Marshal(answerKey)
	attemptID := attempt.Id
	return &dto.QuizResult{
		Success:        true,
		Score:          correct,
		Correct:        correct,
		Total:          total,
		Percentage:     pct,
		Results:        results,
		CorrectAnswers: json.RawMessage(rawKey),
		AttemptId:      &attemptID,
	}, nil
}

func (s *studyService) recordStudy(userID, topicID string, pct float64) {
	p, ok := s.store.Progress(userID, topicID)
	if !ok {
		p = progressRecord{UserId: userID, TopicId: topicID}
	}
	p.HoursSpent = round1(p.HoursSpent + 0.5)
	if pct >= 70 {
		p.Status = dto.ProgressCompleted
	} else if p.Status != dto.ProgressCompleted {
		p.Status = dto.ProgressInProgress
	}
	s.store.SetProgress(p)
}

func (s *studyService) quizTitle(quizID string) string {
	if q, ok := s.store.Quiz(quizID); ok {
		return q.Title
	}
	return "Unknown"
}

func (s *studyService) QuizHistory(_ context.Context, email string) []dto.QuizHistoryEntry {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return []dto.QuizHistoryEntry{}
	}
	attempts := s.store.AttemptsByUser(user.Id)
	out := make([]dto.QuizHistoryEntry, 0, len(attempts))
	for _, a := range attempts {
		out = append(out, dto.QuizHistoryEntry{
			QuizId:      a.QuizId,
			QuizTitle:   s.quizTitle(a.QuizId),
			Score:       a.Score,
			Total:       a.Total,
			Percentage:  percentage(a.Score, a.Total),
			CompletedAt: a.CompletedAt.Format(time.RFC3339),
		})
	}
	return out
}

// --- plans ---

func (s *studyService) GeneratePlan(_ context.Context, req *dto.GeneratePlanRequest) (*dto.StudyPlan, error) {
	hours := req.HoursPerDay
	if hours == 0 {
		hours = 2
	}
	user := s.store.GetOrCreateUser(req.Email, "")

	topics := s.store.TopicsByUpload(req.UploadId)
	if len(topics) == 0 {
		return nil, &StatusError{Code: 404, Message: "No topics found for this upload", Detail: "Please upload a syllabus with topics first"}
	}

	schedule, err := GenerateSchedule(topics, req.StartDate, req.EndDate, hours)
	if err != nil {
		return nil, err
	}

	plan := s.store.CreatePlan(user.Id, dto.StudyPlanRecord{
		UploadId:    req.UploadId,
		Schedule:    schedule,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		HoursPerDay: hours,
	})
	return &dto.StudyPlan{
		Success:     true,
		PlanId:      plan.Id,
		Schedule:    schedule,
		StartDate:   plan.StartDate,
		EndDate:     plan.EndDate,
		TotalDays:   len(schedule),
		HoursPerDay: hours,
		CreatedAt:   plan.CreatedAt,
		Message:     fmt.Sprintf("Study plan created with %d days", len(schedule)),
	}, nil
}

func (s *studyService) LatestPlan(_ context.Context, email string) (*dto.StudyPlan, error) {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return nil, &StatusError{Code: 404, Message: "User not found", Detail: "No user found with email: " + email}
	}
	plans := s.store.PlansByUser(user.Id)
	if len(plans) == 0 {
		return nil, &StatusError{Code: 404, Message: "No study plan found", Detail: "Generate a study plan to get started"}
	}
	p := plans[0]
	return &dto.StudyPlan{
		Success:     true,
		PlanId:      p.Id,
		Schedule:    p.Schedule,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		TotalDays:   len(p.Schedule),
		HoursPerDay: p.HoursPerDay,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func (s *studyService) AllPlans(_ context.Context, email string) ([]dto.StudyPlanRecord, error) {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return nil, errUserNotFound
	}
	return s.store.PlansByUser(user.Id), nil
}

// --- dashboard ---

func (s *studyService) DashboardStats(_ context.Context, email string) dto.DashboardStats {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return dto.DashboardStats{}
	}

	uploads := s.store.UploadsByUser(user.Id)
	topics := 0
	for _, u := range uploads {
		topics += u.TopicsCount
	}

	attempts := s.store.AttemptsByUser(user.Id)
	var avg float64
	if len(attempts) > 0 {
		var sum float64
		for _, a := range attempts {
			sum += percentage(a.Score, a.Total)
		}
		avg = round1(sum / float64(len(attempts)))
	}

	var progress dto.ProgressStats
	var hours float64
	records := s.store.ProgressByUser(user.Id)
	for _, p := range records {
		hours += p.HoursSpent
		switch p.Status {
		case dto.ProgressCompleted:
			progress.Completed++
		case dto.ProgressInProgress:
			progress.InProgress++
		default:
			progress.NotStarted++
		}
	}
	progress.CompletionPercentage = percentage(progress.Completed, len(records))

	return dto.DashboardStats{
		TotalUploads: len(uploads),
		TotalTopics:  topics,
		TotalQuizzes: len(attempts),
		AvgQuizScore: avg,
		StudyHours:   round1(hours),
		Progress:     progress,
	}
}

func (s *studyService) DashboardOverview(_ context.Context, email string) dto.DashboardOverview {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return dto.DashboardOverview{}
	}

	uploads := s.store.UploadsByUser(user.Id)
	if len(uploads) > 5 {
		uploads = uploads[:5]
	}

	attempts := s.store.AttemptsByUser(user.Id)
	if len(attempts) > 5 {
		attempts = attempts[:5]
	}
	quizzes := make([]dto.RecentQuiz, 0, len(attempts))
	for _, a := range attempts {
		quizzes = append(quizzes, dto.RecentQuiz{
			Title:      s.quizTitle(a.QuizId),
			Score:      a.Score,
			Total:      a.Total,
			Percentage: percentage(a.Score, a.Total),
			Date:       a.CompletedAt.Format(time.RFC3339),
		})
	}

	type upcoming struct {
		dto.UpcomingTopic
		order int
	}
	var pending []upcoming
	for _, p := range s.store.ProgressByUser(user.Id) {
		if p.Status == dto.ProgressCompleted {
			continue
		}
		t, ok := s.store.Topic(p.TopicId)
		if !ok {
			continue
		}
		pending = append(pending, upcoming{
			UpcomingTopic: dto.UpcomingTopic{Name: t.Name, Status: p.Status, HoursSpent: p.HoursSpent, EstimatedHours: t.EstimatedHours},
			order:         t.SequenceOrder,
		})
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].order < pending[j].order })
	topics := make([]dto.UpcomingTopic, 0, 5)
	for _, p := range pending {
		if len(topics) == 5 {
			break
		}
		topics = append(topics, p.UpcomingTopic)
	}

	return dto.DashboardOverview{RecentUploads: uploads, RecentQuizzes: quizzes, UpcomingTopics: topics}
}

// --- timetable ---

func (s *studyService) Timetable(_ context.Context, email string) []dto.TimetableEntry {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return []dto.TimetableEntry{}
	}
	return s.store.TimetableByUser(user.Id)
}

func (s *studyService) AddTimetableEntry(_ context.Context, req *dto.AddTimetableRequest) (*dto.TimetableEntry, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return nil, errUserNotFound
	}
	e := s.store.AddTimetableEntry(user.Id, dto.TimetableEntry{
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Title:     req.Title,
	})
	return &e, nil
}

func (s *studyService) DeleteTimetableEntry(_ context.Context, email, id string) error {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return errUserNotFound
	}
	s.store.DeleteTimetableEntry(user.Id, id)
	return nil
}

// --- notes ---

func (s *studyService) Notes(_ context.Context, email string) []dto.Note {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return []dto.Note{}
	}
	return s.store.NotesByUser(user.Id)
}

func (s *studyService) SaveNote(_ context.Context, req *dto.SaveNoteRequest) (*dto.Note, error) {
	user, ok := s.store.UserByEmail(req.Email)
	if !ok {
		return nil, errUserNotFound
	}
	subject := req.Subject
	if subject == "" {
		subject = "General"
	}

	if req.NoteId != nil && *req.NoteId != "" {
		n, ok := s.store.UpdateNote(user.Id, *req.NoteId, subject, req.Content)
		if !ok {
			return nil, notFound("Note not found")
		}
		return &n, nil
	}
	n := s.store.CreateNote(user.Id, subject, req.Content)
	return &n, nil
}

func (s *studyService) DeleteNote(_ context.Context, id string) {
	s.store.DeleteNote(id)
}

// --- ai ---

func (s *studyService) OllamaStatus(_ context.Context) dto.OllamaStatus {
	st := dto.OllamaStatus{
		Available:        s.opts.OllamaAvailable,
		BaseURL:          s.opts.OllamaBaseURL,
		ModelRecommended: recommendedOllamaModel,
	}
	if st.Available {
		st.Model = recommendedOllamaModel
		st.ModelsInstalled = []string{recommendedOllamaModel + ":latest"}
		st.HasRecommendedModel = true
	} else {
		st.Error = "Ollama is not running or not accessible"
	}
	return st
}

func (s *studyService) CloudStatus(_ context.Context) dto.CloudStatus {
	st := dto.CloudStatus{Configured: s.opts.CloudConfigured, ModelDefault: defaultCloudModel}
	if st.Configured {
		st.Note = "OpenAI is configured and ready"
	} else {
		st.Note = "OpenAI API key must be set in backend .env file"
	}
	return st
}

// SetAIMode rejects engines that are not available and tells the caller to
// fall back to free.
func (s *studyService) SetAIMode(_ context.Context, req *dto.SetAIModeRequest) (*dto.AIModeResponse, error) {
	if req.Mode == modeOllama && !s.opts.OllamaAvailable {
		return &dto.AIModeResponse{Mode: req.Mode, Fallback: modeFree}, badRequest("Ollama is not available")
	}
	if req.Mode == modeCloud && !s.opts.CloudConfigured {
		return &dto.AIModeResponse{Mode: req.Mode, Fallback: modeFree}, badRequest("Cloud AI is not configured")
	}
	s.store.SetAIMode(req.UserId, req.Mode)
	return &dto.AIModeResponse{Success: true, Mode: req.Mode, Saved: true, UserId: req.UserId}, nil
}

func (s *studyService) AIMode(_ context.Context, userID string) dto.AIModeResponse {
	mode, ok := s.store.AIMode(userID)
	if !ok {
		mode = modeFree
	}
	return dto.AIModeResponse{Mode: mode, UserId: userID}
}
