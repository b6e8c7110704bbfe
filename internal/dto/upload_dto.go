package dto

// Upload is one processed syllabus PDF.
type Upload struct {
	Id          string `json:"id"`
	UserId      string `json:"user_id,omitempty"`
	Subject     string `json:"subject"`
	Filename    string `json:"filename"`
	TopicsCount int    `json:"topics_count"`
	UploadedAt  string `json:"uploaded_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Timestamp returns whichever creation timestamp the backend filled in.
func (u Upload) Timestamp() string {
	if u.UploadedAt != "" {
		return u.UploadedAt
	}
	return u.CreatedAt
}

const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

type TopicProgress struct {
	Status     string  `json:"status"`
	HoursSpent float64 `json:"hours_spent"`
}

type Topic struct {
	Id              string         `json:"id"`
	UploadId        string         `json:"upload_id,omitempty"`
	Name            string         `json:"topic_name"`
	Description     string         `json:"description,omitempty"`
	DifficultyLevel string         `json:"difficulty_level,omitempty"`
	EstimatedHours  float64        `json:"estimated_hours"`
	SequenceOrder   int            `json:"sequence_order,omitempty"`
	Progress        *TopicProgress `json:"progress,omitempty"`
}

type SyllabusUploadResponse struct {
	Success     bool    `json:"success"`
	UploadId    string  `json:"upload_id"`
	Subject     string  `json:"subject"`
	TopicsCount int     `json:"topics_count"`
	Topics      []Topic `json:"topics,omitempty"`
	AIUsed      string  `json:"ai_used,omitempty"`
	Message     string  `json:"message,omitempty"`
	Warning     string  `json:"warning,omitempty"`
}

type PYQUploadResponse struct {
	Success   bool   `json:"success"`
	PYQsCount int    `json:"pyqs_count"`
	Message   string `json:"message,omitempty"`
}

// TopicsWithProgressResponse is GET /dashboard/topics/{uploadId}?email=.
type TopicsWithProgressResponse struct {
	Topics []Topic `json:"topics"`
	Total  int     `json:"total"`
}
