package render

import (
	"fmt"
	"io"
	"strconv"

	"studywise-client/internal/dto"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
)

const notAnswered = "Not answered"

// QuizReview prints the score and a per-question review. Per-question
// detail comes from result.Results when the backend sent it, otherwise from
// the local answers and result.CorrectAnswers. Missing answers print as
// "Not answered"; out-of-range option indexes never panic.
func QuizReview(w io.Writer, quiz *dto.Quiz, result *dto.QuizResult, answers dto.Answers) {
	if result == nil {
		return
	}
	percentage := result.Percentage
	if percentage == 0 && result.Total > 0 && result.Score > 0 {
		percentage = float64(result.Score) * 100 / float64(result.Total)
	}
	fmt.Fprintf(w, "Score: %d/%d (%s)\n\n", result.Score, result.Total, Percent(percentage))

	var questions []dto.Question
	if quiz != nil {
		questions = quiz.Questions
	}

	if len(result.Results) > 0 {
		for _, r := range result.Results {
			idx := r.QuestionNumber - 1
			text := r.Question
			if text == "" && idx >= 0 && idx < len(questions) {
				text = questions[idx].Question
			}
			writeReviewItem(w, r.QuestionNumber, text, options(questions, idx), r.UserAnswer, r.CorrectAnswer, r.IsCorrect, r.Explanation)
		}
		return
	}

	// Without the quiz only numbers are known; Total says how many.
	if len(questions) == 0 && result.Total > 0 {
		questions = make([]dto.Question, result.Total)
	}
	for i, q := range questions {
		chosen, ok := answers[i]
		if !ok {
			chosen = -1
		}
		correct := correctIndex(result, q, i)
		writeReviewItem(w, i+1, q.Question, q.Options, chosen, correct, chosen >= 0 && chosen == correct, q.Explanation)
	}
}

func writeReviewItem(w io.Writer, number int, question string, opts []string, chosen, correct int, isCorrect bool, explanation string) {
	if question == "" {
		fmt.Fprintf(w, "Question %d\n", number)
	} else {
		fmt.Fprintf(w, "Question %d: %s\n", number, question)
	}

	mark := color.New(color.FgRed).Sprint("✗")
	if isCorrect {
		mark = color.New(color.FgGreen).Sprint("✓")
	}
	answer := notAnswered
	if chosen >= 0 {
		answer = optionText(opts, chosen)
	}
	fmt.Fprintf(w, "  Your answer: %s %s\n", answer, mark)
	if !isCorrect && correct >= 0 {
		fmt.Fprintf(w, "  Correct answer: %s\n", optionText(opts, correct))
	}
	if explanation != "" {
		fmt.Fprintf(w, "  Explanation: %s\n", explanation)
	}
	fmt.Fprintln(w)
}

func options(questions []dto.Question, idx int) []string {
	if idx < 0 || idx >= len(questions) {
		return nil
	}
	return questions[idx].Options
}

func optionText(opts []string, idx int) string {
	if idx >= 0 && idx < len(opts) {
		return fmt.Sprintf("%c) %s", 'A'+rune(idx), opts[idx])
	}
	return fmt.Sprintf("option %d", idx+1)
}

// correctIndex reads question i's answer from correct_answers, which the
// backend sends either as a list or as an index-keyed object.
func correctIndex(result *dto.QuizResult, q dto.Question, i int) int {
	if len(result.CorrectAnswers) > 0 {
		v := gjson.GetBytes(result.CorrectAnswers, strconv.Itoa(i))
		if v.Exists() && v.Type == gjson.Number {
			return int(v.Int())
		}
	}
	if q.Correct != nil {
		return *q.Correct
	}
	return -1
}

// QuizQuestion prints one question with lettered options, for interactive
// quizzes.
func QuizQuestion(w io.Writer, number, total int, q dto.Question) {
	fmt.Fprintf(w, "Question %d of %d: %s\n", number, total, q.Question)
	for i := range q.Options {
		fmt.Fprintf(w, "  %s\n", optionText(q.Options, i))
	}
}
