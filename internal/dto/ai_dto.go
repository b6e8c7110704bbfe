package dto

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

type OllamaStatus struct {
	Available           bool     `json:"available"`
	Model               string   `json:"model,omitempty"`
	BaseURL             string   `json:"base_url,omitempty"`
	ModelRecommended    string   `json:"model_recommended,omitempty"`
	ModelsInstalled     []string `json:"models_installed,omitempty"`
	HasRecommendedModel bool     `json:"has_recommended_model,omitempty"`
	Error               string   `json:"error,omitempty"`
}

// CloudStatus is reported as either "available" or "configured" depending on
// the backend version; Ready folds both.
type CloudStatus struct {
	Available    bool   `json:"available,omitempty"`
	Configured   bool   `json:"configured,omitempty"`
	ModelDefault string `json:"model_default,omitempty"`
	Note         string `json:"note,omitempty"`
}

func (c CloudStatus) Ready() bool { return c.Available || c.Configured }

type SetAIModeRequest struct {
	Mode   string `json:"mode" validate:"required,oneof=free ollama cloud"`
	UserId string `json:"user_id" validate:"required"`
}

type AIModeResponse struct {
	Success  bool   `json:"success,omitempty"`
	Mode     string `json:"mode"`
	Saved    bool   `json:"saved,omitempty"`
	UserId   string `json:"user_id,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}
