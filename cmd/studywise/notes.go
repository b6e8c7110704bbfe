package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"studywise-client/internal/dto"
	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

func newNotesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage your study notes",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			notes, err := c.Client.GetNotes(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				fmt.Fprintln(out, "No notes yet.")
				return nil
			}
			for _, n := range notes {
				printHeading(out, fmt.Sprintf("%s  %s", n.Subject, n.Id))
				muted.Fprintf(out, "Updated %s\n", render.FormatDateTime(n.UpdatedAt))
				fmt.Fprintln(out, preview(n.Content, 3))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	var subject, id, file string
	saveCmd := &cobra.Command{
		Use:   "save [content]",
		Short: "Create a note, or update one with --id",
		Long: `Create a note, or update an existing one with --id.

The content comes from the argument, from --file, or from stdin when
neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			content, err := noteContent(cmd.InOrStdin(), args, file)
			if err != nil {
				return err
			}
			var noteID *string
			if id != "" {
				noteID = &id
			}
			res, err := c.Client.SaveNote(cmd.Context(), noteID, subject, content)
			if err != nil {
				return err
			}
			if res.Note != nil {
				printSuccess(cmd.OutOrStdout(), "Note %s saved", res.Note.Id)
			} else {
				printSuccess(cmd.OutOrStdout(), "Note saved")
			}
			return nil
		},
	}
	saveCmd.Flags().StringVar(&subject, "subject", "General", "Note subject")
	saveCmd.Flags().StringVar(&id, "id", "", "Existing note to update")
	saveCmd.Flags().StringVarP(&file, "file", "f", "", "Read content from a file")

	deleteCmd := &cobra.Command{
		Use:   "delete [note-id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			if _, err := c.Client.DeleteNote(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Note deleted")
			return nil
		},
	}

	var output string
	exportCmd := &cobra.Command{
		Use:   "export [note-id]",
		Short: "Render a note's markdown to an HTML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			notes, err := c.Client.GetNotes(cmd.Context())
			if err != nil {
				return err
			}
			note, ok := findNote(notes, args[0])
			if !ok {
				return fmt.Errorf("note %s not found", args[0])
			}
			path := output
			if path == "" {
				path = note.Id + ".html"
			}
			if err := writeFile(path, render.NoteHTML(note)); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Note written to %s", path)
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&output, "output", "o", "", "HTML path (default <note-id>.html)")

	cmd.AddCommand(listCmd, saveCmd, deleteCmd, exportCmd)
	return cmd
}

func noteContent(stdin io.Reader, args []string, file string) (string, error) {
	switch {
	case len(args) == 1:
		return args[0], nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read note from stdin: %w", err)
	}
	return string(b), nil
}

func findNote(notes []dto.Note, id string) (dto.Note, bool) {
	for _, n := range notes {
		if n.Id == id {
			return n, true
		}
	}
	return dto.Note{}, false
}

func preview(content string, lines int) string {
	parts := strings.SplitN(strings.TrimSpace(content), "\n", lines+1)
	if len(parts) > lines {
		parts = append(parts[:lines], "...")
	}
	return strings.Join(parts, "\n")
}
