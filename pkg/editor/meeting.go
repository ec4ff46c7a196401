package editor

import (
	"fmt"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/google/uuid"
)

// DefaultMeetingLength is the duration given to a new meeting
const DefaultMeetingLength = time.Hour

// MeetingTarget is where a meeting draft is committed
type MeetingTarget interface {
	AddMeeting(m models.Meeting)
	UpdateMeeting(m models.Meeting) error
}

// MeetingEditor stages changes to a private copy of a meeting
type MeetingEditor struct {
	draft models.Meeting
	isNew bool
}

// NewMeeting starts an add flow with a blank draft starting at now
func NewMeeting(now time.Time) *MeetingEditor {
	return &MeetingEditor{draft: blankMeeting(now), isNew: true}
}

// EditMeeting starts an edit flow on a copy of m
func EditMeeting(m models.Meeting) *MeetingEditor {
	return &MeetingEditor{draft: m.Clone()}
}

func blankMeeting(now time.Time) models.Meeting {
	start := now.Truncate(time.Minute)
	return models.Meeting{
		ID:        uuid.New().String(),
		Start:     start,
		End:       start.Add(DefaultMeetingLength),
		Attendees: []models.Attendee{},
	}
}

// IsNew reports whether saving will append rather than replace
func (e *MeetingEditor) IsNew() bool {
	return e.isNew
}

// Draft returns the editor's working copy for field edits
func (e *MeetingEditor) Draft() *models.Meeting {
	return &e.draft
}

// AddAttendee appends a blank attendee and returns its index
func (e *MeetingEditor) AddAttendee() int {
	e.draft.Attendees = append(e.draft.Attendees, models.Attendee{ID: uuid.New().String()})
	return len(e.draft.Attendees) - 1
}

// UpdateAttendee replaces the attendee at idx
func (e *MeetingEditor) UpdateAttendee(idx int, a models.Attendee) error {
	if idx < 0 || idx >= len(e.draft.Attendees) {
		return fmt.Errorf("update attendee %d: %w", idx, ErrAttendeeIndex)
	}
	e.draft.Attendees[idx] = a
	return nil
}

// RemoveAttendee drops the attendee at idx
func (e *MeetingEditor) RemoveAttendee(idx int) error {
	if idx < 0 || idx >= len(e.draft.Attendees) {
		return fmt.Errorf("remove attendee %d: %w", idx, ErrAttendeeIndex)
	}
	e.draft.Attendees = append(e.draft.Attendees[:idx:idx], e.draft.Attendees[idx+1:]...)
	return nil
}

// CanSave reports whether the draft has a title
func (e *MeetingEditor) CanSave() bool {
	return validate.Struct(e.draft) == nil
}

// Save commits the draft: appended for an add flow, replaced by id otherwise.
// The editor keeps its own copy, so later draft edits do not reach target.
func (e *MeetingEditor) Save(target MeetingTarget) error {
	if err := validate.Struct(e.draft); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	if e.isNew {
		target.AddMeeting(e.draft.Clone())
		return nil
	}
	return target.UpdateMeeting(e.draft.Clone())
}

// Reset discards the draft and starts a fresh add flow
func (e *MeetingEditor) Reset(now time.Time) {
	e.draft = blankMeeting(now)
	e.isNew = true
}
