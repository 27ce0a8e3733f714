package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/okan/focusly/internal/store"
)

type jsonExport struct {
	ExportedAt string        `json:"exported_at"`
	Count      int           `json:"count"`
	Sessions   []jsonSession `json:"sessions"`
}

type jsonSession struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationSec int64  `json:"duration_seconds"`
}

// ToJSON writes the given focus sessions to a JSON file at path.
func ToJSON(sessions []store.FocusSession, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(sessions),
	}

	for _, s := range sessions {
		out.Sessions = append(out.Sessions, jsonSession{
			ID:          s.ID,
			Kind:        sessionKind(s),
			StartTime:   s.StartTime.Local().Format(time.RFC3339),
			EndTime:     s.EndTime.Local().Format(time.RFC3339),
			DurationSec: s.DurationSeconds(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

func sessionKind(s store.FocusSession) string {
	if s.IsBreak {
		return "break"
	}
	return "work"
}
