package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/roster-cli/internal/domain"
	"github.com/bnema/roster-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StoragePathKey   = "storage.path"
	rosterFileMode   = 0o600
	rosterDirMode    = 0o700
	rosterConfigDir  = ".roster"
	rosterConfigFile = "roster.toml"
	tempFilePattern  = ".roster-*.toml.tmp"
)

type Repository struct {
	rosterPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.CharacterRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(StoragePathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(StoragePathKey, filepath.Join(homeDir, rosterConfigDir, rosterConfigFile))
	}

	rosterPath := cfg.GetString(StoragePathKey)
	if rosterPath == "" {
		return nil, errors.New("roster path is empty")
	}
	rosterPath, err := normalizeRosterPath(rosterPath)
	if err != nil {
		return nil, err
	}

	return &Repository{rosterPath: rosterPath, mu: lockForPath(rosterPath)}, nil
}

func (r *Repository) Create(ctx context.Context, owner domain.Owner, record domain.CandidateRecord) (domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Character{}, err
	}

	for _, entry := range file.Characters {
		if entry.Owner == string(owner) && entry.Name == record.Name {
			return domain.Character{}, domain.ErrDuplicateName
		}
	}

	file.LastID++
	entry := characterSchema{
		ID:       file.LastID,
		Owner:    string(owner),
		Name:     record.Name,
		Class:    string(record.Class),
		Position: string(record.Role),
	}
	file.Characters = append(file.Characters, entry)

	if err := ctx.Err(); err != nil {
		return domain.Character{}, err
	}

	if err := r.writeSchema(file); err != nil {
		return domain.Character{}, err
	}

	return fromSchema(entry), nil
}

func (r *Repository) CountByRole(ctx context.Context, owner domain.Owner, role domain.Role) (int, error) {
	characters, err := r.ListByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, character := range characters {
		if character.Role == role {
			count++
		}
	}
	return count, nil
}

func (r *Repository) ExistsByName(ctx context.Context, owner domain.Owner, name string) (bool, error) {
	characters, err := r.ListByOwner(ctx, owner)
	if err != nil {
		return false, err
	}

	for _, character := range characters {
		if character.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) ListByOwner(ctx context.Context, owner domain.Owner) ([]domain.Character, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	characters := make([]domain.Character, 0, len(file.Characters))
	for _, entry := range file.Characters {
		if entry.Owner != string(owner) {
			continue
		}
		characters = append(characters, fromSchema(entry))
	}

	return characters, nil
}

func (r *Repository) Delete(ctx context.Context, owner domain.Owner, id domain.CharacterID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return false, err
	}

	index := -1
	for i, entry := range file.Characters {
		if entry.ID == int64(id) && entry.Owner == string(owner) {
			index = i
			break
		}
	}
	if index < 0 {
		return false, nil
	}

	file.Characters = append(file.Characters[:index], file.Characters[index+1:]...)
	if err := r.writeSchema(file); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.rosterPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read roster file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode roster file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeRosterPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve roster path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.rosterPath), rosterDirMode); err != nil {
		return fmt.Errorf("create roster directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode roster file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.rosterPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp roster file: %w", err)
	}

	if err := tempFile.Chmod(rosterFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp roster file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp roster file: %w", err)
	}

	if err := os.Rename(tempName, r.rosterPath); err != nil {
		return fmt.Errorf("replace roster file: %w", err)
	}

	cleanup = false

	return nil
}

func fromSchema(entry characterSchema) domain.Character {
	return domain.Character{
		ID:    domain.CharacterID(entry.ID),
		Owner: domain.Owner(entry.Owner),
		Name:  entry.Name,
		Class: domain.Class(entry.Class),
		Role:  domain.Role(entry.Position),
	}
}
