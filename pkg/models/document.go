package models

// Document is the exported form of everything the planner persists
type Document struct {
	Meetings     []Meeting `json:"meetings"`
	Travel       []Travel  `json:"travel"`
	AssistantURL string    `json:"gptUrl"`
}
