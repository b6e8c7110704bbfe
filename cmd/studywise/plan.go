package main

import (
	"bytes"
	"fmt"
	"time"

	"studywise-client/internal/api"
	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and view study plans",
	}

	var hours int
	var end string
	generateCmd := &cobra.Command{
		Use:   "generate [upload-id]",
		Short: "Schedule an upload's topics from today until --end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			if end == "" {
				end = time.Now().AddDate(0, 0, 30).Format("2006-01-02")
			}
			plan, err := c.Client.GeneratePlan(cmd.Context(), args[0], end, hours)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plan.Message != "" {
				printSuccess(out, "%s", plan.Message)
			}
			return render.PlanTable(out, *plan)
		},
	}
	generateCmd.Flags().IntVar(&hours, "hours", 2, "Study hours per day")
	generateCmd.Flags().StringVar(&end, "end", "", "Last day of the plan, YYYY-MM-DD (default 30 days from today)")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show your latest plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			plan, err := c.Client.GetPlan(cmd.Context())
			if api.IsNotFound(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "No study plan yet. Try: studywise plan generate <upload-id>")
				return nil
			}
			if err != nil {
				return err
			}
			return render.PlanTable(cmd.OutOrStdout(), *plan)
		},
	}

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "List every plan you have generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			plans, err := c.Client.ListAllPlans(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, "No study plans yet.")
				return nil
			}
			for _, p := range plans {
				fmt.Fprintf(out, "%s  %s to %s  %d days  %dh/day\n", p.Id, render.FormatDate(p.StartDate), render.FormatDate(p.EndDate), len(p.Schedule), p.HoursPerDay)
			}
			return nil
		},
	}

	var file string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write your latest plan to an Excel workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			plan, err := c.Client.GetPlan(cmd.Context())
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := render.WritePlanXLSX(&buf, *plan); err != nil {
				return err
			}
			if err := writeFile(file, buf.Bytes()); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Plan written to %s", file)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&file, "output", "o", "study-plan.xlsx", "Workbook path")

	cmd.AddCommand(generateCmd, showCmd, allCmd, exportCmd)
	return cmd
}
