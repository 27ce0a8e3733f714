package tui

import (
	"log/slog"
	"time"

	"github.com/okan/focusly/internal/store"
)

// storeRecorder persists completed phases fire-and-forget. The write happens
// off the update loop; a failed write is logged and dropped so the countdown
// never stalls on storage.
type storeRecorder struct {
	store  *store.Store
	userID int64
}

func (r storeRecorder) Record(isBreak bool, start, end time.Time) {
	go func() {
		if _, err := r.store.CreateFocusSession(r.userID, isBreak, start, end); err != nil {
			slog.Warn("dropping focus session", "err", err)
		}
	}()
}
