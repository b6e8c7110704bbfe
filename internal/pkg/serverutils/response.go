package serverutils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the failure shape every StudyWise route answers with.
type ErrorBody struct {
	Error    string `json:"error"`
	Message  string `json:"message,omitempty"`
	Details  string `json:"details,omitempty"`
	Fallback string `json:"fallback,omitempty"`
	Success  *bool  `json:"success,omitempty"`
	Saved    *bool  `json:"saved,omitempty"`
}

func ErrorResponse(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// FailedResponse also carries success=false, as the plan routes do.
func FailedResponse(message, detail string) ErrorBody {
	f := false
	return ErrorBody{Error: message, Message: detail, Success: &f}
}

// Fail writes an ErrorBody with the given status.
func Fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ErrorResponse(message))
}
