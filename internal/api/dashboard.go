package api

import (
	"context"
	"errors"
	"net/url"

	"studywise-client/internal/dto"

	"golang.org/x/sync/errgroup"
)

func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	var out dto.DashboardStatsResponse
	if err := c.RequestJSON(ctx, "/dashboard/stats/"+url.PathEscape(c.sess.Email()), RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

func (c *Client) DashboardOverview(ctx context.Context) (*dto.DashboardOverview, error) {
	var out dto.DashboardOverviewResponse
	if err := c.RequestJSON(ctx, "/dashboard/overview/"+url.PathEscape(c.sess.Email()), RequestOptions{}, &out); err != nil {
		return nil, err
	}
	return &out.Overview, nil
}

// Dashboard is what the dashboard screen shows. The two halves are fetched
// and consumed independently: a failed half is nil and its error is kept
// next to it.
type Dashboard struct {
	Stats       *dto.DashboardStats
	Overview    *dto.DashboardOverview
	StatsErr    error
	OverviewErr error
}

// Dashboard fetches stats and overview concurrently. One half failing does
// not cancel or discard the other; an error is returned only when both fail.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var g errgroup.Group
	g.Go(func() error {
		d.Stats, d.StatsErr = c.DashboardStats(ctx)
		return nil
	})
	g.Go(func() error {
		d.Overview, d.OverviewErr = c.DashboardOverview(ctx)
		return nil
	})
	_ = g.Wait()

	if d.StatsErr != nil && d.OverviewErr != nil {
		return d, errors.Join(d.StatsErr, d.OverviewErr)
	}
	return d, nil
}
