package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version    int               `toml:"version"`
	LastID     int64             `toml:"last_id"`
	Characters []characterSchema `toml:"characters"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}

	for _, entry := range s.Characters {
		if entry.ID > s.LastID {
			s.LastID = entry.ID
		}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported roster schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type characterSchema struct {
	ID       int64  `toml:"id"`
	Owner    string `toml:"owner"`
	Name     string `toml:"name"`
	Class    string `toml:"class"`
	Position string `toml:"position"`
}
