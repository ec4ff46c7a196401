package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/borgmon/tradeshow-assistant/pkg/logger"
	"github.com/borgmon/tradeshow-assistant/pkg/models"
)

// ErrInvalidDocument is returned when an import is not a JSON object
var ErrInvalidDocument = errors.New("invalid JSON file")

// Patch holds the slices present in an imported document. Nil means absent.
type Patch struct {
	Meetings     *[]models.Meeting
	Travel       *[]models.Travel
	AssistantURL *string
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Meetings == nil && p.Travel == nil && p.AssistantURL == nil
}

// Target receives an imported patch
type Target interface {
	ReplaceMeetings(list []models.Meeting)
	ReplaceTravel(list []models.Travel)
	SetAssistantURL(url string)
}

// Parse decodes an import document. meetings and travel count as present
// when set to anything but null; gptUrl counts whenever the key exists, and
// null clears it.
func Parse(data []byte) (Patch, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return Patch{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if fields == nil {
		return Patch{}, fmt.Errorf("%w: document is null", ErrInvalidDocument)
	}

	var p Patch

	if raw, ok := fields["meetings"]; ok && !isNull(raw) {
		var list []models.Meeting
		if err := json.Unmarshal(raw, &list); err != nil {
			return Patch{}, fmt.Errorf("%w: meetings: %v", ErrInvalidDocument, err)
		}
		p.Meetings = &list
	}

	if raw, ok := fields["travel"]; ok && !isNull(raw) {
		var list []models.Travel
		if err := json.Unmarshal(raw, &list); err != nil {
			return Patch{}, fmt.Errorf("%w: travel: %v", ErrInvalidDocument, err)
		}
		p.Travel = &list
	}

	if raw, ok := fields["gptUrl"]; ok {
		url := ""
		if !isNull(raw) {
			if err := json.Unmarshal(raw, &url); err != nil {
				return Patch{}, fmt.Errorf("%w: gptUrl: %v", ErrInvalidDocument, err)
			}
		}
		p.AssistantURL = &url
	}

	return p, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

// Apply replaces each slice present in p, leaving the others untouched
func Apply(target Target, p Patch) {
	if p.Meetings != nil {
		target.ReplaceMeetings(*p.Meetings)
	}
	if p.Travel != nil {
		target.ReplaceTravel(*p.Travel)
	}
	if p.AssistantURL != nil {
		target.SetAssistantURL(*p.AssistantURL)
	}
}

// Import reads a whole document from r and applies it. Nothing changes
// unless the entire document decodes.
func Import(target Target, r io.Reader) (Patch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Patch{}, fmt.Errorf("failed to read import: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return Patch{}, err
	}

	Apply(target, p)

	meetings, travel := -1, -1
	if p.Meetings != nil {
		meetings = len(*p.Meetings)
	}
	if p.Travel != nil {
		travel = len(*p.Travel)
	}
	logger.Infow("import applied", "meetings", meetings, "travel", travel, "gpt_url", p.AssistantURL != nil)

	return p, nil
}
