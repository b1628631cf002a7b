package state

import (
	"encoding/json" // For JSON encoding and decoding of the saved course defaults
	"os"            // For file system operations like reading and writing files
	"path/filepath"

	"teetimealerts/internal/logger"
)

// State holds the per-user saved course selection.
// DefaultCourses is the ordered list of course identifiers the user picked
// during a previous run; Zipcode is the ZIP code those courses were found near.
// Both are persisted as a single JSON file in the user's config directory.
type State struct {
	DefaultCourses []string `json:"default_courses"` // Course identifiers, in selection order
	Zipcode        string   `json:"zipcode"`         // ZIP code used for the course search
}

// DefaultPath returns the path of the state file inside the user's home
// directory (~/.teetimealerts/config.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".teetimealerts", "config.json"), nil
}

// Load loads the saved state from a JSON file at the given path.
// If the file does not exist, cannot be read, or contains invalid JSON,
// it returns a new empty State struct. Load never fails: a broken state
// file simply means the user will be asked to pick courses again.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		// File missing or unreadable: start from an empty state
		return &State{}
	}

	var st State
	if err := json.Unmarshal(file, &st); err != nil {
		logger.Debug("[DEBUG] Ignoring unparseable state file %s: %v\n", path, err)
		return &State{}
	}

	return &st
}

// Save writes the given State struct to a JSON file at the given path.
// It creates the containing directory if absent and pretty-prints the JSON
// with indentation for readability. Errors during marshalling or writing
// are logged but not propagated.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("[ERROR] Failed to create config directory for %s: %v\n", path, err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
