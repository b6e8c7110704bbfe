package api

import (
	"context"
	"net/http"
	"net/url"

	"studywise-client/internal/dto"
)

func (c *Client) GetTimetable(ctx context.Context) ([]dto.TimetableEntry, error) {
	return list[dto.TimetableEntry](c, ctx, OpGetTimetable, "/timetable?"+emailQuery(c.sess.Email()), FieldTimetable)
}

// AddTimetableEntry adds a weekly class. Overlaps are not checked.
func (c *Client) AddTimetableEntry(ctx context.Context, entry dto.TimetableEntry) (*dto.AddTimetableResponse, error) {
	day := entry.DayOfWeek
	req := dto.AddTimetableRequest{
		Email:     c.sess.Email(),
		DayOfWeek: &day,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Title:     entry.Title,
	}
	var out dto.AddTimetableResponse
	if err := c.postJSON(ctx, "/timetable", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTimetableEntry(ctx context.Context, id string) (*dto.Ack, error) {
	return c.ack(ctx, http.MethodDelete, "/timetable/"+url.PathEscape(id)+"?"+emailQuery(c.sess.Email()), nil)
}

// ack issues a mutation whose body is only acknowledged.
func (c *Client) ack(ctx context.Context, method, endpoint string, body []byte) (*dto.Ack, error) {
	raw, err := c.Request(ctx, endpoint, RequestOptions{Method: method, Body: body})
	if err != nil {
		return nil, err
	}
	out := &dto.Ack{Raw: raw}
	if err := c.decode(raw, method, endpoint, out); err != nil {
		return nil, err
	}
	return out, nil
}
