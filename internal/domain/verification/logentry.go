package verification

import (
	"time"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/shared/biztime"
)

// LogEntry records one executed platform check. Entries are written only
// when an adapter was actually invoked; checks skipped for lack of a
// credential leave no trace.
type LogEntry struct {
	id        uint
	userID    uint
	platform  credential.Platform
	kind      Kind
	result    string
	detail    map[string]interface{}
	checkedAt time.Time
}

// NewLogEntry records a check that just ran.
func NewLogEntry(userID uint, kind Kind, result string, detail map[string]interface{}) *LogEntry {
	return &LogEntry{
		userID:    userID,
		platform:  kind.Platform(),
		kind:      kind,
		result:    result,
		detail:    detail,
		checkedAt: biztime.NowUTC(),
	}
}

// ReconstructLogEntry recreates a log entry from persistent storage.
func ReconstructLogEntry(id, userID uint, platform credential.Platform, kind Kind, result string, detail map[string]interface{}, checkedAt time.Time) *LogEntry {
	return &LogEntry{
		id:        id,
		userID:    userID,
		platform:  platform,
		kind:      kind,
		result:    result,
		detail:    detail,
		checkedAt: checkedAt,
	}
}

func (e *LogEntry) ID() uint                       { return e.id }
func (e *LogEntry) UserID() uint                   { return e.userID }
func (e *LogEntry) Platform() credential.Platform  { return e.platform }
func (e *LogEntry) Kind() Kind                     { return e.kind }
func (e *LogEntry) Result() string                 { return e.result }
func (e *LogEntry) Detail() map[string]interface{} { return e.detail }
func (e *LogEntry) CheckedAt() time.Time           { return e.checkedAt }

// SetID assigns the database-generated identifier after creation.
func (e *LogEntry) SetID(id uint) {
	e.id = id
}
