package dto

// TimetableEntry is one weekly class. DayOfWeek runs 0 (Monday) to 6 (Sunday);
// times are "HH:MM" strings. Overlaps are not checked client-side.
type TimetableEntry struct {
	Id        string `json:"id,omitempty"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Title     string `json:"title"`
}

type AddTimetableRequest struct {
	Email     string `json:"email" validate:"required"`
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
	Title     string `json:"title" validate:"required"`
}

type AddTimetableResponse struct {
	Success bool            `json:"success"`
	Entry   *TimetableEntry `json:"entry,omitempty"`
}
