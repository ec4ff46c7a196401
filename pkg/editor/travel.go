package editor

import (
	"fmt"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/google/uuid"
)

// TravelTarget is where a travel draft is committed
type TravelTarget interface {
	AddTravel(t models.Travel)
	UpdateTravel(t models.Travel) error
}

// TravelEditor stages changes to a private copy of a booking
type TravelEditor struct {
	draft models.Travel
	isNew bool
}

// NewTravel starts an add flow with a blank flight
func NewTravel() *TravelEditor {
	return &TravelEditor{draft: blankTravel(), isNew: true}
}

// EditTravel starts an edit flow on a copy of t
func EditTravel(t models.Travel) *TravelEditor {
	return &TravelEditor{draft: t.Clone()}
}

func blankTravel() models.Travel {
	return models.Travel{ID: uuid.New().String(), Type: models.TravelFlight}
}

func (e *TravelEditor) IsNew() bool {
	return e.isNew
}

func (e *TravelEditor) Draft() *models.Travel {
	return &e.draft
}

// CanSave reports whether the draft has a label and a known type
func (e *TravelEditor) CanSave() bool {
	return validate.Struct(e.draft) == nil
}

func (e *TravelEditor) Save(target TravelTarget) error {
	if err := validate.Struct(e.draft); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}

	if e.isNew {
		target.AddTravel(e.draft.Clone())
		return nil
	}
	return target.UpdateTravel(e.draft.Clone())
}

// Reset starts a fresh add flow
func (e *TravelEditor) Reset() {
	e.draft = blankTravel()
	e.isNew = true
}
