package dto

import (
	"bytes"
	"encoding/json"
)

type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     *int     `json:"correct,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

type GenerateQuizRequest struct {
	TopicId      string `json:"topic_id" validate:"required"`
	NumQuestions int    `json:"num_questions" validate:"gte=1,lte=20"`
	Email        string `json:"email" validate:"required"`
	AIMode       string `json:"ai_mode"`
}

// Quiz is the generated quiz session returned by POST /quiz/generate.
type Quiz struct {
	Success        bool       `json:"success"`
	QuizId         string     `json:"quiz_id"`
	Title          string     `json:"title,omitempty"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
	AIUsed         string     `json:"ai_used,omitempty"`
}

// Answers maps question index to chosen option index. Unanswered questions
// are simply absent.
type Answers map[int]int

// UnmarshalJSON also accepts the positional list form, where -1 marks an
// unanswered question.
func (a *Answers) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var list []int
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		out := make(Answers, len(list))
		for i, v := range list {
			if v >= 0 {
				out[i] = v
			}
		}
		*a = out
		return nil
	}

	var m map[int]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*a = m
	return nil
}

type SubmitQuizRequest struct {
	QuizId  string  `json:"quiz_id" validate:"required"`
	Answers Answers `json:"answers"`
	Email   string  `json:"email" validate:"required"`
}

type QuestionResult struct {
	QuestionNumber int    `json:"question_number"`
	Question       string `json:"question"`
	UserAnswer     int    `json:"user_answer"`
	CorrectAnswer  int    `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
	Explanation    string `json:"explanation,omitempty"`
}

// Answered reports whether the user picked an option for this question.
func (r QuestionResult) Answered() bool { return r.UserAnswer >= 0 }

type QuizResult struct {
	Success        bool             `json:"success"`
	Score          int              `json:"score"`
	Correct        int              `json:"correct,omitempty"`
	Total          int              `json:"total"`
	Percentage     float64          `json:"percentage"`
	Results        []QuestionResult `json:"results,omitempty"`
	CorrectAnswers json.RawMessage  `json:"correct_answers,omitempty"`
	AttemptId      *string          `json:"attempt_id,omitempty"`
}

type QuizHistoryEntry struct {
	QuizId      string  `json:"quiz_id"`
	QuizTitle   string  `json:"quiz_title"`
	Score       int     `json:"score"`
	Total       int     `json:"total"`
	Percentage  float64 `json:"percentage"`
	CompletedAt string  `json:"completed_at"`
}
