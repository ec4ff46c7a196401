package store

import (
	"errors"
	"sync"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// ErrRecordNotFound is returned when no record has the requested id
var ErrRecordNotFound = errors.New("store: record not found")

// Seed holds the values used for slices that were never stored
type Seed struct {
	Meetings     []models.Meeting
	Travel       []models.Travel
	AssistantURL string
}

// PlannerStore owns the meeting list, the travel list and the assistant link.
// Every mutation writes the touched slice through to the byte store at once.
type PlannerStore struct {
	mu sync.RWMutex

	kv        ByteStore
	namespace string

	meetings     []models.Meeting
	travel       []models.Travel
	assistantURL string

	listeners []func(slice string)
}

// NewPlannerStore loads the three slices from kv, falling back to seed
func NewPlannerStore(kv ByteStore, namespace string, seed Seed) *PlannerStore {
	ps := &PlannerStore{
		kv:        kv,
		namespace: namespace,
	}

	ps.meetings = cloneMeetings(Load(kv, Key(namespace, SliceMeetings), seed.Meetings))
	ps.travel = cloneTravel(Load(kv, Key(namespace, SliceTravel), seed.Travel))
	ps.assistantURL = Load(kv, Key(namespace, SliceAssistant), seed.AssistantURL)

	return ps
}

// OnChange registers fn to be called with the slice name after each mutation
func (ps *PlannerStore) OnChange(fn func(slice string)) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.listeners = append(ps.listeners, fn)
}

func (ps *PlannerStore) notify(slice string) {
	ps.mu.RLock()
	listeners := append([]func(string){}, ps.listeners...)
	ps.mu.RUnlock()

	for _, fn := range listeners {
		fn(slice)
	}
}

// Meetings returns a copy of the meeting list in insertion order
func (ps *PlannerStore) Meetings() []models.Meeting {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return cloneMeetings(ps.meetings)
}

// Meeting returns the meeting with id
func (ps *PlannerStore) Meeting(id string) (models.Meeting, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	for _, m := range ps.meetings {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return models.Meeting{}, false
}

// Travel returns a copy of the travel list in insertion order
func (ps *PlannerStore) Travel() []models.Travel {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return cloneTravel(ps.travel)
}

// AssistantURL returns the assistant link, possibly empty
func (ps *PlannerStore) AssistantURL() string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.assistantURL
}

// Snapshot returns all three slices as one document
func (ps *PlannerStore) Snapshot() models.Document {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return models.Document{
		Meetings:     cloneMeetings(ps.meetings),
		Travel:       cloneTravel(ps.travel),
		AssistantURL: ps.assistantURL,
	}
}

// AddMeeting appends m to the meeting list
func (ps *PlannerStore) AddMeeting(m models.Meeting) {
	ps.mu.Lock()
	ps.meetings = append(ps.meetings, m.Clone())
	ps.persistMeetings()
	ps.mu.Unlock()

	ps.notify(SliceMeetings)
}

// UpdateMeeting replaces the meeting with m's id in place
func (ps *PlannerStore) UpdateMeeting(m models.Meeting) error {
	ps.mu.Lock()
	idx := ps.meetingIndex(m.ID)
	if idx < 0 {
		ps.mu.Unlock()
		return ErrRecordNotFound
	}
	ps.meetings[idx] = m.Clone()
	ps.persistMeetings()
	ps.mu.Unlock()

	ps.notify(SliceMeetings)
	return nil
}

// DeleteMeeting removes the meeting with id, along with its attendees
func (ps *PlannerStore) DeleteMeeting(id string) error {
	ps.mu.Lock()
	idx := ps.meetingIndex(id)
	if idx < 0 {
		ps.mu.Unlock()
		return ErrRecordNotFound
	}
	ps.meetings = append(ps.meetings[:idx:idx], ps.meetings[idx+1:]...)
	ps.persistMeetings()
	ps.mu.Unlock()

	ps.notify(SliceMeetings)
	return nil
}

// ReplaceMeetings swaps the whole meeting list
func (ps *PlannerStore) ReplaceMeetings(list []models.Meeting) {
	ps.mu.Lock()
	ps.meetings = cloneMeetings(list)
	ps.persistMeetings()
	ps.mu.Unlock()

	ps.notify(SliceMeetings)
}

// MergeMeetings replaces meetings whose id already exists and appends the rest
func (ps *PlannerStore) MergeMeetings(list []models.Meeting) (added, updated int) {
	ps.mu.Lock()
	for _, m := range list {
		if idx := ps.meetingIndex(m.ID); idx >= 0 {
			ps.meetings[idx] = m.Clone()
			updated++
			continue
		}
		ps.meetings = append(ps.meetings, m.Clone())
		added++
	}
	ps.persistMeetings()
	ps.mu.Unlock()

	ps.notify(SliceMeetings)
	return added, updated
}

// AddTravel appends t to the travel list
func (ps *PlannerStore) AddTravel(t models.Travel) {
	ps.mu.Lock()
	ps.travel = append(ps.travel, t.Clone())
	ps.persistTravel()
	ps.mu.Unlock()

	ps.notify(SliceTravel)
}

// UpdateTravel replaces the booking with t's id in place
func (ps *PlannerStore) UpdateTravel(t models.Travel) error {
	ps.mu.Lock()
	idx := ps.travelIndex(t.ID)
	if idx < 0 {
		ps.mu.Unlock()
		return ErrRecordNotFound
	}
	ps.travel[idx] = t.Clone()
	ps.persistTravel()
	ps.mu.Unlock()

	ps.notify(SliceTravel)
	return nil
}

// DeleteTravel removes the booking with id
func (ps *PlannerStore) DeleteTravel(id string) error {
	ps.mu.Lock()
	idx := ps.travelIndex(id)
	if idx < 0 {
		ps.mu.Unlock()
		return ErrRecordNotFound
	}
	ps.travel = append(ps.travel[:idx:idx], ps.travel[idx+1:]...)
	ps.persistTravel()
	ps.mu.Unlock()

	ps.notify(SliceTravel)
	return nil
}

// ReplaceTravel swaps the whole travel list
func (ps *PlannerStore) ReplaceTravel(list []models.Travel) {
	ps.mu.Lock()
	ps.travel = cloneTravel(list)
	ps.persistTravel()
	ps.mu.Unlock()

	ps.notify(SliceTravel)
}

// SetAssistantURL stores the assistant link
func (ps *PlannerStore) SetAssistantURL(url string) {
	ps.mu.Lock()
	ps.assistantURL = url
	Save(ps.kv, Key(ps.namespace, SliceAssistant), ps.assistantURL)
	ps.mu.Unlock()

	ps.notify(SliceAssistant)
}

func (ps *PlannerStore) persistMeetings() {
	Save(ps.kv, Key(ps.namespace, SliceMeetings), ps.meetings)
}

func (ps *PlannerStore) persistTravel() {
	Save(ps.kv, Key(ps.namespace, SliceTravel), ps.travel)
}

func (ps *PlannerStore) meetingIndex(id string) int {
	for i, m := range ps.meetings {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (ps *PlannerStore) travelIndex(id string) int {
	for i, t := range ps.travel {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneMeetings(list []models.Meeting) []models.Meeting {
	out := make([]models.Meeting, 0, len(list))
	for _, m := range list {
		out = append(out, m.Clone())
	}
	return out
}

func cloneTravel(list []models.Travel) []models.Travel {
	out := make([]models.Travel, 0, len(list))
	for _, t := range list {
		out = append(out, t.Clone())
	}
	return out
}
