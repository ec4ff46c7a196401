package transfer

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/borgmon/tradeshow-assistant/pkg/models"
	"github.com/borgmon/tradeshow-assistant/pkg/schedule"
)

// FileName returns the suggested export file name for now
func FileName(now time.Time) string {
	return fmt.Sprintf("tradeshow-data-%s.json", schedule.DateStamp(now))
}

// Export writes doc as indented JSON
func Export(w io.Writer, doc models.Document) error {
	if doc.Meetings == nil {
		doc.Meetings = []models.Meeting{}
	}
	if doc.Travel == nil {
		doc.Travel = []models.Travel{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}
