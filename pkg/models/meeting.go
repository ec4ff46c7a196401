package models

import "time"

// Attendee represents a person joining a meeting
type Attendee struct {
	ID       string `json:"id"`                 // Unique identifier (UUID)
	Name     string `json:"name"`               // May be blank while drafting
	Title    string `json:"title,omitempty"`    // Job title
	Company  string `json:"company,omitempty"`  // Company name
	LinkedIn string `json:"linkedin,omitempty"` // Professional profile URL
	PhotoURL string `json:"photoUrl,omitempty"` // Headshot URL
	Notes    string `json:"notes,omitempty"`    // Interests, priorities, history
}

// Meeting represents a scheduled meeting at the show
type Meeting struct {
	ID            string     `json:"id"`                        // Unique identifier (UUID)
	Title         string     `json:"title" validate:"notblank"` // Meeting title
	Description   string     `json:"description,omitempty"`     // Description / goals
	Location      string     `json:"location,omitempty"`        // Room or venue
	Booth         string     `json:"booth,omitempty"`           // Booth label
	Start         time.Time  `json:"startISO"`                  // Meeting start
	End           time.Time  `json:"endISO"`                    // Meeting end, assumed >= Start
	Attendees     []Attendee `json:"attendees"`                 // Ordered attendee list
	TalkingPoints string     `json:"talkingPoints,omitempty"`   // Suggested talking points
	PrepChecklist string     `json:"prepChecklist,omitempty"`   // Prep checklist
}

// Clone returns a copy that shares no attendee storage with m
func (m Meeting) Clone() Meeting {
	c := m
	c.Attendees = make([]Attendee, len(m.Attendees))
	copy(c.Attendees, m.Attendees)
	return c
}

// Duration returns the length of the meeting
func (m Meeting) Duration() time.Duration {
	return m.End.Sub(m.Start)
}
