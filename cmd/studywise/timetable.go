package main

import (
	"fmt"
	"strings"

	"studywise-client/internal/dto"
	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

func newTimetableCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Manage your weekly class timetable",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show your weekly classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			entries, err := c.Client.GetTimetable(cmd.Context())
			if err != nil {
				return err
			}
			return render.Timetable(cmd.OutOrStdout(), entries)
		},
	}

	var entry dto.TimetableEntry
	var day string
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a weekly class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			dow, err := parseDay(day)
			if err != nil {
				return err
			}
			entry.Title = args[0]
			entry.DayOfWeek = dow

			res, err := c.Client.AddTimetableEntry(cmd.Context(), entry)
			if err != nil {
				return err
			}
			id := ""
			if res.Entry != nil {
				id = res.Entry.Id
			}
			printSuccess(cmd.OutOrStdout(), "Added %s on %s %s-%s %s", entry.Title, render.DayName(dow), entry.StartTime, entry.EndTime, id)
			return nil
		},
	}
	addCmd.Flags().StringVar(&day, "day", "", "Day of week: monday..sunday or 0..6")
	addCmd.Flags().StringVar(&entry.StartTime, "start", "", "Start time, HH:MM")
	addCmd.Flags().StringVar(&entry.EndTime, "end", "", "End time, HH:MM")
	_ = addCmd.MarkFlagRequired("day")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")

	deleteCmd := &cobra.Command{
		Use:   "delete [entry-id]",
		Short: "Remove a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			if _, err := c.Client.DeleteTimetableEntry(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Class deleted")
			return nil
		},
	}

	cmd.AddCommand(listCmd, addCmd, deleteCmd)
	return cmd
}

// parseDay accepts 0..6 or a weekday name or its three-letter prefix.
func parseDay(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '0' && s[0] <= '6' {
		return int(s[0] - '0'), nil
	}
	for i := 0; i < 7; i++ {
		name := strings.ToLower(render.DayName(i))
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q: use monday..sunday or 0..6", s)
}
