package dto

type ErrorResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Issues  []FieldIssue `json:"issues,omitempty"`
}

// FieldIssue carries field-level validation detail.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
