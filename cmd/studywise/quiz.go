package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"studywise-client/internal/dto"
	"studywise-client/internal/render"

	"github.com/spf13/cobra"
)

const defaultQuestions = 5

func newQuizCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Generate, take and review quizzes",
	}
	cmd.AddCommand(
		newQuizGenerateCmd(a),
		newQuizTakeCmd(a),
		newQuizSubmitCmd(a),
		newQuizHistoryCmd(a),
	)
	return cmd
}

func newQuizGenerateCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "generate [topic-id]",
		Short: "Generate a quiz and print its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			quiz, err := c.Client.GenerateQuiz(cmd.Context(), args[0], n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printHeading(out, quiz.Title)
			fmt.Fprintf(out, "Quiz %s (%s mode)\n\n", quiz.QuizId, quiz.AIUsed)
			for i, q := range quiz.Questions {
				render.QuizQuestion(out, i+1, len(quiz.Questions), q)
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "questions", "n", defaultQuestions, "Number of questions")
	return cmd
}

func newQuizTakeCmd(a *app) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "take [topic-id]",
		Short: "Generate a quiz and answer it interactively",
		Long: `Generate a quiz and answer it question by question.

Answer with a letter (A-D) or a number (1-4). Leave the answer empty to
skip a question; skipped questions are submitted as unanswered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			quiz, err := c.Client.GenerateQuiz(cmd.Context(), args[0], n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printHeading(out, quiz.Title)
			answers := askAnswers(cmd.InOrStdin(), out, quiz.Questions)

			result, err := c.Client.SubmitQuiz(cmd.Context(), quiz.QuizId, answers)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			render.QuizReview(out, quiz, result, answers)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "questions", "n", defaultQuestions, "Number of questions")
	return cmd
}

// askAnswers reads one answer per question. Blank or unreadable answers are
// left out of the map.
func askAnswers(in io.Reader, out io.Writer, questions []dto.Question) dto.Answers {
	answers := dto.Answers{}
	scanner := bufio.NewScanner(in)
	for i, q := range questions {
		render.QuizQuestion(out, i+1, len(questions), q)
		fmt.Fprint(out, "Your answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		if idx, ok := parseChoice(scanner.Text(), len(q.Options)); ok {
			answers[i] = idx
		}
		fmt.Fprintln(out)
	}
	return answers
}

// parseChoice accepts "B", "b" or "2" for the second option.
func parseChoice(s string, options int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	idx := -1
	if n, err := strconv.Atoi(s); err == nil {
		idx = n - 1
	} else if len(s) == 1 {
		if ch := strings.ToUpper(s)[0]; ch >= 'A' && ch <= 'Z' {
			idx = int(ch - 'A')
		}
	}
	if idx < 0 || (options > 0 && idx >= options) {
		return 0, false
	}
	return idx, true
}

func newQuizSubmitCmd(a *app) *cobra.Command {
	var raw []string

	cmd := &cobra.Command{
		Use:   "submit [quiz-id]",
		Short: "Submit answers given as --answer question=option (both 1-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			answers, err := parseAnswerFlags(raw)
			if err != nil {
				return err
			}
			result, err := c.Client.SubmitQuiz(cmd.Context(), args[0], answers)
			if err != nil {
				return err
			}
			render.QuizReview(cmd.OutOrStdout(), nil, result, answers)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&raw, "answer", nil, "Answer as question=option, e.g. 1=B or 2=3 (repeatable)")
	return cmd
}

func parseAnswerFlags(raw []string) (dto.Answers, error) {
	answers := dto.Answers{}
	for _, r := range raw {
		q, o, ok := strings.Cut(r, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: want question=option", r)
		}
		qn, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil || qn < 1 {
			return nil, fmt.Errorf("invalid question number in %q", r)
		}
		idx, ok := parseChoice(o, 0)
		if !ok {
			return nil, fmt.Errorf("invalid option in %q", r)
		}
		answers[qn-1] = idx
	}
	return answers, nil
}

func newQuizHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your quiz attempts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.open(cmd)
			if err != nil {
				return err
			}
			history, err := c.Client.QuizHistory(cmd.Context())
			if err != nil {
				return err
			}
			return render.QuizHistory(cmd.OutOrStdout(), history)
		},
	}
}
