package model

// ScreeningRequest is the input from the conversation layer: a partially or
// fully populated person record plus the situation ids it has identified.
// The engine never blocks waiting for more data.
type ScreeningRequest struct {
	Person     PersonData `json:"person"`
	Situations []string   `json:"situations"`
}
