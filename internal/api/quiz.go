package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"studywise-client/internal/dto"
)

// GenerateQuiz asks the backend for numQuestions questions on a topic, using
// the current operating mode.
func (c *Client) GenerateQuiz(ctx context.Context, topicID string, numQuestions int) (*dto.Quiz, error) {
	req := dto.GenerateQuizRequest{
		TopicId:      topicID,
		NumQuestions: numQuestions,
		Email:        c.sess.Email(),
		AIMode:       c.sess.Mode(ctx).String(),
	}
	var out dto.Quiz
	if err := c.postJSON(ctx, "/quiz/generate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitQuiz sends a possibly sparse answer map. Unanswered questions are
// left out and scored by the backend.
func (c *Client) SubmitQuiz(ctx context.Context, quizID string, answers dto.Answers) (*dto.QuizResult, error) {
	if answers == nil {
		answers = dto.Answers{}
	}
	req := dto.SubmitQuizRequest{
		QuizId:  quizID,
		Answers: answers,
		Email:   c.sess.Email(),
	}
	var out dto.QuizResult
	if err := c.postJSON(ctx, "/quiz/submit", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) QuizHistory(ctx context.Context) ([]dto.QuizHistoryEntry, error) {
	return list[dto.QuizHistoryEntry](c, ctx, OpQuizHistory, "/quiz/history/"+url.PathEscape(c.sess.Email()), FieldHistory)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, endpoint, body, out)
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return c.reject(method, endpoint, fmt.Errorf("marshal %s body: %w", endpoint, err))
	}
	return c.RequestJSON(ctx, endpoint, RequestOptions{Method: method, Body: payload}, out)
}
