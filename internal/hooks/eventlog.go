package hooks

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const eventLogName = "notification.json"

// appendEventLog appends one raw event to the JSON array at dir/notification.json,
// rewriting the whole file. A missing or corrupt log is replaced by a fresh
// array rather than treated as an error.
func appendEventLog(dir string, raw json.RawMessage) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, eventLogName)

	var entries []json.RawMessage
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &entries); err != nil {
			entries = nil
		}
	}
	entries = append(entries, raw)

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
