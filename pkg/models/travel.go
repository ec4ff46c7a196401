package models

import "time"

// TravelType is the kind of travel booking
type TravelType string

const (
	TravelFlight TravelType = "flight"
	TravelHotel  TravelType = "hotel"
	TravelGround TravelType = "ground"
)

// TravelTypes returns every supported travel type in display order
func TravelTypes() []TravelType {
	return []TravelType{TravelFlight, TravelHotel, TravelGround}
}

// Valid reports whether t is one of the supported travel types
func (t TravelType) Valid() bool {
	switch t {
	case TravelFlight, TravelHotel, TravelGround:
		return true
	}
	return false
}

// Travel represents a flight, hotel or ground transport booking
type Travel struct {
	ID           string     `json:"id"`                                        // Unique identifier (UUID)
	Type         TravelType `json:"type" validate:"oneof=flight hotel ground"` // Booking kind
	Label        string     `json:"label" validate:"notblank"`                 // e.g. "ATL → BOS"
	Confirmation string     `json:"confirmation,omitempty"`                    // Confirmation code
	Start        *time.Time `json:"startISO,omitempty"`                        // Optional start
	End          *time.Time `json:"endISO,omitempty"`                          // Optional end
	Details      string     `json:"details,omitempty"`                         // Free text
}

// Clone returns a copy that shares no time storage with t
func (t Travel) Clone() Travel {
	c := t
	if t.Start != nil {
		s := *t.Start
		c.Start = &s
	}
	if t.End != nil {
		e := *t.End
		c.End = &e
	}
	return c
}
