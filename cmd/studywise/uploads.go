package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"studywise-client/internal/api"
	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

func newUploadsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uploads",
		Short: "List your syllabus uploads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			uploads, err := c.Client.ListUploads(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(uploads) == 0 {
				fmt.Fprintln(out, "No uploads yet. Try: studywise upload syllabus <file.pdf> --subject <name>")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSUBJECT\tFILE\tTOPICS\tUPLOADED")
			for _, u := range uploads {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", u.Id, u.Subject, u.Filename, u.TopicsCount, render.FormatDate(u.Timestamp()))
			}
			return tw.Flush()
		},
	}
}

func newTopicsCmd(a *app) *cobra.Command {
	var withProgress bool

	cmd := &cobra.Command{
		Use:   "topics [upload-id]",
		Short: "List the topics extracted from an upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

			if withProgress {
				res, err := c.Client.UploadTopicsWithProgress(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(tw, "ID\tTOPIC\tSTATUS\tSPENT")
				for _, t := range res.Topics {
					status, spent := "not_started", 0.0
					if t.Progress != nil {
						status, spent = t.Progress.Status, t.Progress.HoursSpent
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Id, t.Name, status, render.Hours(spent))
				}
				return tw.Flush()
			}

			topics, err := c.Client.ListTopics(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(topics) == 0 {
				fmt.Fprintln(out, "No topics for this upload.")
				return nil
			}
			fmt.Fprintln(tw, "ID\tTOPIC\tESTIMATE")
			for _, t := range topics {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Id, t.Name, render.Hours(t.EstimatedHours))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&withProgress, "progress", false, "Include your progress on each topic")
	return cmd
}

func newUploadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a syllabus or past-question paper",
	}

	var subject string
	syllabusCmd := &cobra.Command{
		Use:   "syllabus [file.pdf]",
		Short: "Upload a syllabus PDF and extract its topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := c.Client.UploadSyllabus(cmd.Context(), api.FileUpload{Name: filepath.Base(args[0]), Reader: f}, subject)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "%s", res.Message)
			fmt.Fprintf(out, "Upload %s: %d topics\n", res.UploadId, res.TopicsCount)
			for _, t := range res.Topics {
				fmt.Fprintf(out, "  - %s\n", t.Name)
			}
			if res.Warning != "" {
				printWarning(out, "%s", res.Warning)
			}
			return nil
		},
	}
	syllabusCmd.Flags().StringVar(&subject, "subject", "", "Subject name")
	_ = syllabusCmd.MarkFlagRequired("subject")

	var uploadID string
	pyqCmd := &cobra.Command{
		Use:   "pyq [file.pdf]",
		Short: "Attach a past-question paper to an upload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := c.Client.UploadPYQ(cmd.Context(), api.FileUpload{Name: filepath.Base(args[0]), Reader: f}, uploadID)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "%s", res.Message)
			return nil
		},
	}
	pyqCmd.Flags().StringVar(&uploadID, "upload-id", "", "Upload the paper belongs to")
	_ = pyqCmd.MarkFlagRequired("upload-id")

	cmd.AddCommand(syllabusCmd, pyqCmd)
	return cmd
}
