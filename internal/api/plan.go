package api

import (
	"context"
	"net/url"

	"studywise-client/internal/dto"
)

const dateLayout = "2006-01-02"

// GeneratePlan schedules an upload's topics from today until endDate
// (YYYY-MM-DD). Today is the UTC calendar date. Ranges and hours are
// validated by the backend.
func (c *Client) GeneratePlan(ctx context.Context, uploadID, endDate string, hoursPerDay int) (*dto.StudyPlan, error) {
	req := dto.GeneratePlanRequest{
		Email:       c.sess.Email(),
		UploadId:    uploadID,
		StartDate:   c.now().UTC().Format(dateLayout),
		EndDate:     endDate,
		HoursPerDay: hoursPerDay,
	}
	var out dto.StudyPlan
	if err := c.postJSON(ctx, "/plan/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPlan returns the most recent plan. A user without plans gets a 404,
// see IsNotFound.
func (c *Client) GetPlan(ctx context.Context) (*dto.StudyPlan, error) {
	var out dto.StudyPlan
	if err := c.RequestJSON(ctx, "/plan/"+url.PathEscape(c.sess.Email()), RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListAllPlans(ctx context.Context) ([]dto.StudyPlanRecord, error) {
	return list[dto.StudyPlanRecord](c, ctx, OpListAllPlans, "/plan/all/"+url.PathEscape(c.sess.Email()), FieldPlans)
}
