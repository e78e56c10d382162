package models

// ErrorOutput is the failure envelope written to stdout in place of a Report.
type ErrorOutput struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}
