package dto

type GeneratePlanRequest struct {
	Email       string `json:"email" validate:"required"`
	UploadId    string `json:"upload_id" validate:"required"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	HoursPerDay int    `json:"hours_per_day"`
}

type PlanTopic struct {
	Id          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Hours       float64 `json:"hours"`
}

type PlanDay struct {
	Day        int         `json:"day"`
	Date       string      `json:"date"`
	Topics     []PlanTopic `json:"topics"`
	TotalHours float64     `json:"total_hours"`
}

// StudyPlan covers both POST /plan/generate and GET /plan/{email}.
type StudyPlan struct {
	Success     bool      `json:"success"`
	PlanId      string    `json:"plan_id"`
	Schedule    []PlanDay `json:"schedule"`
	StartDate   string    `json:"start_date,omitempty"`
	EndDate     string    `json:"end_date,omitempty"`
	TotalDays   int       `json:"total_days,omitempty"`
	HoursPerDay int       `json:"hours_per_day,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	Message     string    `json:"message,omitempty"`
}

// StudyPlanRecord is one stored plan as listed by GET /plan/all/{email}.
type StudyPlanRecord struct {
	Id          string    `json:"id"`
	UploadId    string    `json:"upload_id"`
	Schedule    []PlanDay `json:"schedule"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	HoursPerDay int       `json:"hours_per_day"`
	CreatedAt   string    `json:"created_at,omitempty"`
}
