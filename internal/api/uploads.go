package api

import (
	"context"
	"net/url"

	"studywise-client/internal/dto"
)

// ListUploads returns the session's uploads. Failures degrade to an empty
// list (see Policies).
func (c *Client) ListUploads(ctx context.Context) ([]dto.Upload, error) {
	return list[dto.Upload](c, ctx, OpListUploads, "/upload/uploads/"+url.PathEscape(c.sess.Email()), FieldUploads)
}

func (c *Client) ListTopics(ctx context.Context, uploadID string) ([]dto.Topic, error) {
	return list[dto.Topic](c, ctx, OpListTopics, "/upload/topics/"+url.PathEscape(uploadID), FieldTopics)
}

// UploadTopicsWithProgress lists an upload's topics with the session's
// progress on each.
func (c *Client) UploadTopicsWithProgress(ctx context.Context, uploadID string) (*dto.TopicsWithProgressResponse, error) {
	endpoint := "/dashboard/topics/" + url.PathEscape(uploadID) + "?" + emailQuery(c.sess.Email())
	var out dto.TopicsWithProgressResponse
	if err := c.RequestJSON(ctx, endpoint, RequestOptions{}, &out); err != nil {
		return nil, err
	}
	if out.Topics == nil {
		out.Topics = []dto.Topic{}
	}
	return &out, nil
}

func emailQuery(email string) string {
	return url.Values{"email": {email}}.Encode()
}
