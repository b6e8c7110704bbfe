package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"studywise-client/internal/dto"
	"studywise-client/internal/session"
)

func (c *Client) HealthCheck(ctx context.Context) (*dto.HealthStatus, error) {
	var out dto.HealthStatus
	if err := c.RequestJSON(ctx, "/health", RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) OllamaStatus(ctx context.Context) (*dto.OllamaStatus, error) {
	var out dto.OllamaStatus
	if err := c.RequestJSON(ctx, "/ai/status", RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CloudStatus(ctx context.Context) (*dto.CloudStatus, error) {
	var out dto.CloudStatus
	if err := c.RequestJSON(ctx, "/ai/cloud-status", RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetAIMode records the mode server-side only. SwitchMode also persists it
// locally.
func (c *Client) SetAIMode(ctx context.Context, mode session.Mode) (*dto.AIModeResponse, error) {
	req := dto.SetAIModeRequest{Mode: mode.String(), UserId: c.sess.Email()}
	var out dto.AIModeResponse
	if err := c.postJSON(ctx, "/ai/mode", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAIMode(ctx context.Context) (*dto.AIModeResponse, error) {
	var out dto.AIModeResponse
	if err := c.RequestJSON(ctx, "/ai/mode/"+url.PathEscape(c.sess.Email()), RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SwitchMode tells the backend first and only then stores the mode locally,
// so a rejected mode never becomes the local default.
func (c *Client) SwitchMode(ctx context.Context, mode session.Mode) (*dto.AIModeResponse, error) {
	if !mode.Valid() {
		return nil, c.reject(http.MethodPost, "/ai/mode", fmt.Errorf("invalid mode %q", mode))
	}
	resp, err := c.SetAIMode(ctx, mode)
	if err != nil {
		return nil, err
	}
	if err := c.sess.SetMode(ctx, mode); err != nil {
		return nil, c.fail(fmt.Errorf("save ai mode locally: %w", err))
	}
	c.log.Info("api", "ai mode switched", map[string]interface{}{"mode": mode.String()})
	return resp, nil
}
