package editor

import "strings"

// AssistantTarget stores the assistant link
type AssistantTarget interface {
	SetAssistantURL(url string)
}

// AssistantLinkEditor stages a new assistant link
type AssistantLinkEditor struct {
	draft string
}

// NewAssistantLink starts editing from the current link
func NewAssistantLink(current string) *AssistantLinkEditor {
	return &AssistantLinkEditor{draft: current}
}

func (e *AssistantLinkEditor) Set(s string) {
	e.draft = s
}

func (e *AssistantLinkEditor) Draft() string {
	return e.draft
}

// Save stores the trimmed draft. An empty value clears the link.
func (e *AssistantLinkEditor) Save(target AssistantTarget) {
	target.SetAssistantURL(strings.TrimSpace(e.draft))
}

// Usable reports whether url gives the "Open" action somewhere to go
func Usable(url string) bool {
	return strings.TrimSpace(url) != ""
}
