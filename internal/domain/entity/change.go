package entity

import (
	"encoding/json"
	"time"
)

// ChangeType is the kind of row change a realtime notification describes.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// IsValid checks if the ChangeType is one of the watched kinds.
func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeInsert, ChangeUpdate, ChangeDelete:
		return true
	default:
		return false
	}
}

// ChangeEvent is a backend-pushed notification about one row of a watched table.
// Record holds the new row for inserts and updates; OldRecord holds at least the
// primary key of the previous row for updates and deletes.
type ChangeEvent struct {
	Type            ChangeType      `json:"type"`
	Schema          string          `json:"schema"`
	Table           string          `json:"table"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
	Record          json.RawMessage `json:"record,omitempty"`
	OldRecord       json.RawMessage `json:"old_record,omitempty"`
}
