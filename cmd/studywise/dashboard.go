package main

import (
	"fmt"

	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your study statistics and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			d, err := c.Client.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if s := d.Stats; s != nil {
				printHeading(out, "Overview")
				fmt.Fprintf(out, "Uploads: %d   Topics: %d   Quizzes: %d   Study time: %s\n",
					s.TotalUploads, s.TotalTopics, s.TotalQuizzes, render.Hours(s.StudyHours))
				fmt.Fprintf(out, "Average score: %s\n", render.Percent(s.AvgQuizScore))
				fmt.Fprintf(out, "Progress: %d completed, %d in progress, %d not started (%s)\n\n",
					s.Progress.Completed, s.Progress.InProgress, s.Progress.NotStarted, render.Percent(s.Progress.CompletionPercentage))
			} else {
				printWarning(out, "Statistics unavailable: %v", d.StatsErr)
			}

			if d.Overview == nil {
				printWarning(out, "Recent activity unavailable: %v", d.OverviewErr)
				return nil
			}
			if len(d.Overview.RecentQuizzes) > 0 {
				printHeading(out, "Recent quizzes")
				for _, q := range d.Overview.RecentQuizzes {
					fmt.Fprintf(out, "  %s  %d/%d  %s  %s\n", q.Title, q.Score, q.Total, render.Percent(q.Percentage), render.FormatDate(q.Date))
				}
				fmt.Fprintln(out)
			}
			if len(d.Overview.UpcomingTopics) > 0 {
				printHeading(out, "Up next")
				for _, t := range d.Overview.UpcomingTopics {
					fmt.Fprintf(out, "  %s  (%s, %s of %s)\n", t.Name, t.Status, render.Hours(t.HoursSpent), render.Hours(t.EstimatedHours))
				}
				fmt.Fprintln(out)
			}
			if len(d.Overview.RecentUploads) > 0 {
				printHeading(out, "Recent uploads")
				for _, u := range d.Overview.RecentUploads {
					fmt.Fprintf(out, "  %s  %s  %s\n", u.Subject, u.Filename, render.FormatDate(u.Timestamp()))
				}
			}
			return nil
		},
	}
}
