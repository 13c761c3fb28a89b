package realtime

import (
	"encoding/json"
	"time"

	"todo/internal/domain/entity"
)

// Phoenix channel events.
const (
	eventJoin      = "phx_join"
	eventLeave     = "phx_leave"
	eventReply     = "phx_reply"
	eventError     = "phx_error"
	eventClose     = "phx_close"
	eventHeartbeat = "heartbeat"
	eventToken     = "access_token"
	eventChanges   = "postgres_changes"
	eventSystem    = "system"

	topicPhoenix = "phoenix"
	replyOK      = "ok"
)

// message is one Phoenix frame in the JSON object encoding.
type message struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref,omitempty"`
	JoinRef string          `json:"join_ref,omitempty"`
}

type replyPayload struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response"`
}

// reason extracts the server's refusal reason, if any.
func (r replyPayload) reason() string {
	var body struct {
		Reason string `json:"reason"`
	}
	if json.Unmarshal(r.Response, &body) == nil && body.Reason != "" {
		return body.Reason
	}

	return string(r.Response)
}

type changeFilter struct {
	Event  string `json:"event"`
	Schema string `json:"schema"`
	Table  string `json:"table"`
}

type joinConfig struct {
	Broadcast struct {
		Self bool `json:"self"`
	} `json:"broadcast"`
	Presence struct {
		Key string `json:"key"`
	} `json:"presence"`
	PostgresChanges []changeFilter `json:"postgres_changes"`
}

type joinPayload struct {
	Config      joinConfig `json:"config"`
	AccessToken string     `json:"access_token,omitempty"`
}

func newJoinPayload(schema, table, token string) joinPayload {
	payload := joinPayload{AccessToken: token}
	payload.Config.PostgresChanges = []changeFilter{{Event: "*", Schema: schema, Table: table}}

	return payload
}

// changesPayload wraps one row change.
type changesPayload struct {
	IDs  []int64    `json:"ids"`
	Data changeData `json:"data"`
}

type changeData struct {
	Type            entity.ChangeType `json:"type"`
	Schema          string            `json:"schema"`
	Table           string            `json:"table"`
	CommitTimestamp string            `json:"commit_timestamp"`
	Record          json.RawMessage   `json:"record"`
	OldRecord       json.RawMessage   `json:"old_record"`
}

func (d changeData) toEvent() entity.ChangeEvent {
	return entity.ChangeEvent{
		Type:            d.Type,
		Schema:          d.Schema,
		Table:           d.Table,
		CommitTimestamp: parseCommitTimestamp(d.CommitTimestamp),
		Record:          d.Record,
		OldRecord:       d.OldRecord,
	}
}

// parseCommitTimestamp accepts RFC 3339 with or without a zone. Unparseable values become zero.
func parseCommitTimestamp(raw string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}
