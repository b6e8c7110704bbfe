package stub

import (
	"sort"
	"strings"
	"sync"
	"time"

	"studywise-client/internal/dto"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type userRecord struct {
	Id        string
	Email     string
	Name      string
	CreatedAt time.Time
}

type uploadRecord struct {
	dto.Upload
	created time.Time
}

type quizRecord struct {
	Id        string
	UserId    string
	TopicId   string
	Title     string
	Questions []dto.Question
	CreatedAt time.Time
}

type attemptRecord struct {
	Id          string
	QuizId      string
	UserId      string
	Score       int
	Total       int
	Answers     dto.Answers
	CompletedAt time.Time
}

type planRecord struct {
	dto.StudyPlanRecord
	UserId  string
	created time.Time
}

type timetableRecord struct {
	dto.TimetableEntry
	UserId string
}

type noteRecord struct {
	dto.Note
	updated time.Time
}

type progressRecord struct {
	UserId     string
	TopicId    string
	Status     string
	HoursSpent float64
}

type pyqRecord struct {
	Id       string
	UploadId string
	TopicId  string
	Question string
}

const (
	kindUser      = "user"
	kindUpload    = "upload"
	kindTopic     = "topic"
	kindQuiz      = "quiz"
	kindAttempt   = "attempt"
	kindPlan      = "plan"
	kindTimetable = "timetable"
	kindNote      = "note"
	kindProgress  = "progress"
	kindPYQ       = "pyq"
	kindAIMode    = "aimode"
)

// Store keeps the stub backend's tables in one go-cache, keyed "<kind>:<id>".
// Records never expire.
type Store struct {
	mu    sync.Mutex
	cache *cache.Cache
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, 0),
		now:   time.Now,
	}
}

func newID() string { return uuid.NewString() }

func key(kind, id string) string { return kind + ":" + id }

func (s *Store) put(kind, id string, v interface{}) {
	s.cache.Set(key(kind, id), v, cache.NoExpiration)
}

func get[T any](s *Store, kind, id string) (T, bool) {
	var zero T
	v, ok := s.cache.Get(key(kind, id))
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func all[T any](s *Store, kind string, keep func(T) bool) []T {
	prefix := kind + ":"
	out := []T{}
	for k, item := range s.cache.Items() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		t, ok := item.Object.(T)
		if !ok || (keep != nil && !keep(t)) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) timestamp() (time.Time, string) {
	t := s.now().UTC()
	return t, t.Format(time.RFC3339)
}

// --- users ---

func (s *Store) UserByEmail(email string) (userRecord, bool) {
	return get[userRecord](s, kindUser, strings.ToLower(email))
}

func (s *Store) GetOrCreateUser(email, name string) userRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.UserByEmail(email); ok {
		return u
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	created, _ := s.timestamp()
	u := userRecord{Id: newID(), Email: email, Name: name, CreatedAt: created}
	s.put(kindUser, strings.ToLower(email), u)
	return u
}

// --- uploads and topics ---

func (s *Store) CreateUpload(userID, filename, subject string) dto.Upload {
	created, ts := s.timestamp()
	u := dto.Upload{Id: newID(), UserId: userID, Filename: filename, Subject: subject, UploadedAt: ts, CreatedAt: ts}
	s.put(kindUpload, u.Id, uploadRecord{Upload: u, created: created})
	return u
}

func (s *Store) UploadsByUser(userID string) []dto.Upload {
	recs := all(s, kindUpload, func(r uploadRecord) bool { return r.UserId == userID })
	sort.Slice(recs, func(i, j int) bool { return recs[i].created.After(recs[j].created) })

	out := make([]dto.Upload, 0, len(recs))
	for _, r := range recs {
		u := r.Upload
		u.TopicsCount = len(s.TopicsByUpload(u.Id))
		out = append(out, u)
	}
	return out
}

func (s *Store) CreateTopics(topics []dto.Topic) []dto.Topic {
	out := make([]dto.Topic, 0, len(topics))
	for _, t := range topics {
		t.Id = newID()
		s.put(kindTopic, t.Id, t)
		out = append(out, t)
	}
	return out
}

func (s *Store) Topic(id string) (dto.Topic, bool) {
	return get[dto.Topic](s, kindTopic, id)
}

func (s *Store) TopicsByUpload(uploadID string) []dto.Topic {
	topics := all(s, kindTopic, func(t dto.Topic) bool { return t.UploadId == uploadID })
	sort.Slice(topics, func(i, j int) bool { return topics[i].SequenceOrder < topics[j].SequenceOrder })
	return topics
}

func (s *Store) CreatePYQs(uploadID, topicID string, questions []string) int {
	for _, q := range questions {
		r := pyqRecord{Id: newID(), UploadId: uploadID, TopicId: topicID, Question: q}
		s.put(kindPYQ, r.Id, r)
	}
	return len(questions)
}

// --- quizzes ---

func (s *Store) CreateQuiz(q quizRecord) quizRecord {
	q.Id = newID()
	q.CreatedAt, _ = s.timestamp()
	s.put(kindQuiz, q.Id, q)
	return q
}

func (s *Store) Quiz(id string) (quizRecord, bool) {
	return get[quizRecord](s, kindQuiz, id)
}

func (s *Store) SaveAttempt(a attemptRecord) attemptRecord {
	a.Id = newID()
	a.CompletedAt, _ = s.timestamp()
	s.put(kindAttempt, a.Id, a)
	return a
}

// AttemptsByUser is newest first.
func (s *Store) AttemptsByUser(userID string) []attemptRecord {
	recs := all(s, kindAttempt, func(a attemptRecord) bool { return a.UserId == userID })
	sort.Slice(recs, func(i, j int) bool { return recs[i].CompletedAt.After(recs[j].CompletedAt) })
	return recs
}

// --- plans ---

func (s *Store) CreatePlan(userID string, p dto.StudyPlanRecord) dto.StudyPlanRecord {
	created, ts := s.timestamp()
	p.Id = newID()
	p.CreatedAt = ts
	s.put(kindPlan, p.Id, planRecord{StudyPlanRecord: p, UserId: userID, created: created})
	return p
}

// PlansByUser is newest first.
func (s *Store) PlansByUser(userID string) []dto.StudyPlanRecord {
	recs := all(s, kindPlan, func(p planRecord) bool { return p.UserId == userID })
	sort.Slice(recs, func(i, j int) bool { return recs[i].created.After(recs[j].created) })

	out := make([]dto.StudyPlanRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.StudyPlanRecord)
	}
	return out
}

// --- timetable ---

func (s *Store) AddTimetableEntry(userID string, e dto.TimetableEntry) dto.TimetableEntry {
	e.Id = newID()
	s.put(kindTimetable, e.Id, timetableRecord{TimetableEntry: e, UserId: userID})
	return e
}

// TimetableByUser is ordered by day, then start time.
func (s *Store) TimetableByUser(userID string) []dto.TimetableEntry {
	recs := all(s, kindTimetable, func(r timetableRecord) bool { return r.UserId == userID })
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].DayOfWeek != recs[j].DayOfWeek {
			return recs[i].DayOfWeek < recs[j].DayOfWeek
		}
		return recs[i].StartTime < recs[j].StartTime
	})

	out := make([]dto.TimetableEntry, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.TimetableEntry)
	}
	return out
}

// DeleteTimetableEntry only removes entries owned by userID.
func (s *Store) DeleteTimetableEntry(userID, id string) bool {
	r, ok := get[timetableRecord](s, kindTimetable, id)
	if !ok || r.UserId != userID {
		return false
	}
	s.cache.Delete(key(kindTimetable, id))
	return true
}

// --- notes ---

func (s *Store) CreateNote(userID, subject, content string) dto.Note {
	created, ts := s.timestamp()
	n := dto.Note{Id: newID(), UserId: userID, Subject: subject, Content: content, CreatedAt: ts, UpdatedAt: ts}
	s.put(kindNote, n.Id, noteRecord{Note: n, updated: created})
	return n
}

// UpdateNote returns false when the note does not exist or belongs to
// someone else.
func (s *Store) UpdateNote(userID, id, subject, content string) (dto.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := get[noteRecord](s, kindNote, id)
	if !ok || r.UserId != userID {
		return dto.Note{}, false
	}
	updated, ts := s.timestamp()
	r.Subject, r.Content, r.UpdatedAt, r.updated = subject, content, ts, updated
	s.put(kindNote, id, r)
	return r.Note, true
}

// NotesByUser is most recently updated first.
func (s *Store) NotesByUser(userID string) []dto.Note {
	recs := all(s, kindNote, func(r noteRecord) bool { return r.UserId == userID })
	sort.Slice(recs, func(i, j int) bool { return recs[i].updated.After(recs[j].updated) })

	out := make([]dto.Note, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Note)
	}
	return out
}

func (s *Store) DeleteNote(id string) {
	s.cache.Delete(key(kindNote, id))
}

// --- progress ---

func progressKey(userID, topicID string) string { return userID + "/" + topicID }

func (s *Store) SetProgress(p progressRecord) {
	s.put(kindProgress, progressKey(p.UserId, p.TopicId), p)
}

func (s *Store) Progress(userID, topicID string) (progressRecord, bool) {
	return get[progressRecord](s, kindProgress, progressKey(userID, topicID))
}

func (s *Store) ProgressByUser(userID string) []progressRecord {
	recs := all(s, kindProgress, func(p progressRecord) bool { return p.UserId == userID })
	sort.Slice(recs, func(i, j int) bool { return recs[i].TopicId < recs[j].TopicId })
	return recs
}

// --- ai mode ---

func (s *Store) SetAIMode(userID, mode string) {
	s.put(kindAIMode, userID, mode)
}

func (s *Store) AIMode(userID string) (string, bool) {
	return get[string](s, kindAIMode, userID)
}
