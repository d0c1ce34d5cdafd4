package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"
)

// Actor values recorded on audit events.
const (
	ActorHuman  = "human"
	ActorSystem = "system"
)

// Event represents a single auditable action in the workspace. Events form
// a hash chain: each event carries the hash of its predecessor, so any
// edit to the recorded history breaks verification.
type Event struct {
	ID        string                 `json:"id"`
	Timestamp time.Time              `json:"timestamp"`
	Action    string                 `json:"action"`
	Actor     string                 `json:"actor"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	PrevHash  string                 `json:"prev_hash,omitempty"` // Hash of the preceding event
	Hash      string                 `json:"hash,omitempty"`      // Deterministic hash of this event
}

// CalculateHash generates a deterministic SHA256 hash of the event data.
func (e *Event) CalculateHash() string {
	h := sha256.New()
	// Deterministic sequence: PrevHash + ID + Timestamp + Action + Actor + Metadata
	h.Write([]byte(e.PrevHash))
	h.Write([]byte(e.ID))
	h.Write([]byte(e.Timestamp.Format(time.RFC3339Nano)))
	h.Write([]byte(e.Action))
	h.Write([]byte(e.Actor))
	h.Write([]byte(canonicalJSON(e.Metadata)))
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalJSON produces a deterministic JSON representation of metadata.
// Keys are sorted alphabetically to ensure consistent hashing.
func canonicalJSON(m map[string]interface{}) string {
	if len(m) == 0 {
		return ""
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]byte, 0, 256)
	ordered = append(ordered, '{')
	for i, k := range keys {
		if i > 0 {
			ordered = append(ordered, ',')
		}
		keyJSON, _ := json.Marshal(k)
		valJSON, _ := json.Marshal(m[k])
		ordered = append(ordered, keyJSON...)
		ordered = append(ordered, ':')
		ordered = append(ordered, valJSON...)
	}
	ordered = append(ordered, '}')

	return string(ordered)
}

// VerifyChain walks an ordered event sequence and reports the index of the
// first event whose stored hash or back link does not verify, or -1 when
// the whole chain is intact.
func VerifyChain(events []Event) int {
	prevHash := ""
	for i := range events {
		e := events[i]
		if e.PrevHash != prevHash {
			return i
		}
		if e.Hash != e.CalculateHash() {
			return i
		}
		prevHash = e.Hash
	}
	return -1
}

// UsageStats tracks command telemetry for the workspace.
type UsageStats struct {
	TotalCommands int            `json:"total_commands"`
	LastCommandAt time.Time      `json:"last_command_at"`
	CommandStats  map[string]int `json:"command_stats"` // e.g., "snapshot": 12
}
