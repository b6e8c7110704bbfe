package api

import "context"

// Operation names one client operation for the error policy table.
type Operation string

const (
	OpListUploads              Operation = "ListUploads"
	OpListTopics               Operation = "ListTopics"
	OpUploadTopicsWithProgress Operation = "UploadTopicsWithProgress"
	OpUploadSyllabus           Operation = "UploadSyllabus"
	OpUploadPYQ                Operation = "UploadPYQ"
	OpGenerateQuiz             Operation = "GenerateQuiz"
	OpSubmitQuiz               Operation = "SubmitQuiz"
	OpQuizHistory              Operation = "QuizHistory"
	OpGeneratePlan             Operation = "GeneratePlan"
	OpGetPlan                  Operation = "GetPlan"
	OpListAllPlans             Operation = "ListAllPlans"
	OpDashboardStats           Operation = "DashboardStats"
	OpDashboardOverview        Operation = "DashboardOverview"
	OpGetTimetable             Operation = "GetTimetable"
	OpAddTimetableEntry        Operation = "AddTimetableEntry"
	OpDeleteTimetableEntry     Operation = "DeleteTimetableEntry"
	OpGetNotes                 Operation = "GetNotes"
	OpSaveNote                 Operation = "SaveNote"
	OpDeleteNote               Operation = "DeleteNote"
	OpHealthCheck              Operation = "HealthCheck"
	OpOllamaStatus             Operation = "OllamaStatus"
	OpCloudStatus              Operation = "CloudStatus"
	OpSetAIMode                Operation = "SetAIMode"
	OpGetAIMode                Operation = "GetAIMode"
	OpSwitchMode               Operation = "SwitchMode"
)

type ErrorPolicy int

const (
	// PolicyPropagate returns the failure to the caller.
	PolicyPropagate ErrorPolicy = iota
	// PolicyDefaultEmpty logs the failure and returns an empty result.
	PolicyDefaultEmpty
)

func (p ErrorPolicy) String() string {
	if p == PolicyDefaultEmpty {
		return "default-empty"
	}
	return "propagate"
}

// Policies declares what each operation does when its call fails. The two
// upload listings degrade to empty lists; everything else propagates.
var Policies = map[Operation]ErrorPolicy{
	OpListUploads:              PolicyDefaultEmpty,
	OpListTopics:               PolicyDefaultEmpty,
	OpUploadTopicsWithProgress: PolicyPropagate,
	OpUploadSyllabus:           PolicyPropagate,
	OpUploadPYQ:                PolicyPropagate,
	OpGenerateQuiz:             PolicyPropagate,
	OpSubmitQuiz:               PolicyPropagate,
	OpQuizHistory:              PolicyPropagate,
	OpGeneratePlan:             PolicyPropagate,
	OpGetPlan:                  PolicyPropagate,
	OpListAllPlans:             PolicyPropagate,
	OpDashboardStats:           PolicyPropagate,
	OpDashboardOverview:        PolicyPropagate,
	OpGetTimetable:             PolicyPropagate,
	OpAddTimetableEntry:        PolicyPropagate,
	OpDeleteTimetableEntry:     PolicyPropagate,
	OpGetNotes:                 PolicyPropagate,
	OpSaveNote:                 PolicyPropagate,
	OpDeleteNote:               PolicyPropagate,
	OpHealthCheck:              PolicyPropagate,
	OpOllamaStatus:             PolicyPropagate,
	OpCloudStatus:              PolicyPropagate,
	OpSetAIMode:                PolicyPropagate,
	OpGetAIMode:                PolicyPropagate,
	OpSwitchMode:               PolicyPropagate,
}

// PolicyFor defaults to PolicyPropagate for operations missing from the table.
func PolicyFor(op Operation) ErrorPolicy {
	if p, ok := Policies[op]; ok {
		return p
	}
	return PolicyPropagate
}

// list fetches a listing endpoint, normalizes it and applies op's policy.
func list[T any](c *Client, ctx context.Context, op Operation, endpoint, field string) ([]T, error) {
	raw, err := c.Request(ctx, endpoint, RequestOptions{})
	if err != nil {
		if PolicyFor(op) == PolicyDefaultEmpty {
			c.log.Warn("api", "listing failed, returning empty list", map[string]interface{}{
				"operation": string(op),
				"error":     err.Error(),
			})
			return []T{}, nil
		}
		return nil, err
	}
	return Normalize[T](raw, field, c.log).Items, nil
}
