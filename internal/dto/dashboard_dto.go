package dto

type ProgressStats struct {
	Completed            int     `json:"completed"`
	InProgress           int     `json:"in_progress"`
	NotStarted           int     `json:"not_started"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type DashboardStats struct {
	TotalUploads int           `json:"total_uploads"`
	TotalTopics  int           `json:"total_topics"`
	TotalQuizzes int           `json:"total_quizzes"`
	AvgQuizScore float64       `json:"avg_quiz_score"`
	StudyHours   float64       `json:"study_hours"`
	Progress     ProgressStats `json:"progress"`
}

type DashboardStatsResponse struct {
	Stats DashboardStats `json:"stats"`
}

type RecentQuiz struct {
	Title      string  `json:"title"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Date       string  `json:"date"`
}

type UpcomingTopic struct {
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	HoursSpent     float64 `json:"hours_spent"`
	EstimatedHours float64 `json:"estimated_hours"`
}

type DashboardOverview struct {
	RecentUploads  []Upload        `json:"recent_uploads"`
	RecentQuizzes  []RecentQuiz    `json:"recent_quizzes"`
	UpcomingTopics []UpcomingTopic `json:"upcoming_topics"`
}

type DashboardOverviewResponse struct {
	Overview DashboardOverview `json:"overview"`
}
