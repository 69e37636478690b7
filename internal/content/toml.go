package content

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/lingocheck/internal/model"
)

// LoadFile reads a TOML content override. Missing file is not an error.
// Levels absent from the file keep their built-in exercises.
func LoadFile(path string) (Table, error) {
	table := Default()
	if path == "" {
		return table, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return table, nil
		}
		return nil, fmt.Errorf("failed to stat content file: %w", err)
	}
	var raw map[string]Exercise
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode content file: %w", err)
	}
	for key, ex := range raw {
		level, err := model.ParseLevel(key)
		if err != nil {
			return nil, fmt.Errorf("content file: %w", err)
		}
		table[level] = ex
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content file: %w", err)
	}
	return table, nil
}
