package api

import (
	"context"
	"net/http"
	"net/url"

	"studywise-client/internal/dto"
)

func (c *Client) GetNotes(ctx context.Context) ([]dto.Note, error) {
	return list[dto.Note](c, ctx, OpGetNotes, "/notes?"+emailQuery(c.sess.Email()), FieldNotes)
}

// SaveNote creates a note when noteID is nil, otherwise updates it.
func (c *Client) SaveNote(ctx context.Context, noteID *string, subject, content string) (*dto.SaveNoteResponse, error) {
	req := dto.SaveNoteRequest{
		Email:   c.sess.Email(),
		Subject: subject,
		Content: content,
		NoteId:  noteID,
	}
	var out dto.SaveNoteResponse
	if err := c.postJSON(ctx, "/notes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteNote sends DELETE /notes/{id} with no body. The backend's reply is
// returned unchanged in Ack.Raw.
func (c *Client) DeleteNote(ctx context.Context, id string) (*dto.Ack, error) {
	return c.ack(ctx, http.MethodDelete, "/notes/"+url.PathEscape(id), nil)
}
