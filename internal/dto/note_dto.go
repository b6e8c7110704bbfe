package dto

type Note struct {
	Id        string `json:"id"`
	UserId    string `json:"user_id,omitempty"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// SaveNoteRequest creates a note when NoteId is nil and updates it otherwise.
// note_id is always sent, as null for new notes.
type SaveNoteRequest struct {
	Email   string  `json:"email" validate:"required"`
	Subject string  `json:"subject"`
	Content string  `json:"content"`
	NoteId  *string `json:"note_id"`
}

type SaveNoteResponse struct {
	Success bool  `json:"success"`
	Note    *Note `json:"note,omitempty"`
}
