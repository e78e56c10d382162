package models

// AnalyzeRequest is the single JSON object expected on stdin.
// Text is a pointer so a missing key can be told apart from an empty string.
type AnalyzeRequest struct {
	Text *string `json:"text"`
}
