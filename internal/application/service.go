package application

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/roster-cli/internal/domain"
	"github.com/bnema/roster-cli/internal/ports"
	"go.uber.org/zap"
)

const DefaultDisplayLimit = 10

type Options struct {
	Policy domain.BatchPolicy
	// DisplayLimit caps both the roster listing and the export report.
	DisplayLimit int
}

func DefaultOptions() Options {
	return Options{
		Policy:       domain.DefaultBatchPolicy(),
		DisplayLimit: DefaultDisplayLimit,
	}
}

type Service struct {
	repo    ports.CharacterRepository
	catalog *domain.RuleCatalog
	logger  *zap.Logger
	opts    Options
	locks   *ownerLocks
}

func NewService(repo ports.CharacterRepository, catalog *domain.RuleCatalog, logger *zap.Logger, opts Options) *Service {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DisplayLimit <= 0 {
		opts.DisplayLimit = DefaultDisplayLimit
	}

	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
		opts:    opts,
		locks:   newOwnerLocks(),
	}
}

func (s *Service) Catalog() *domain.RuleCatalog {
	return s.catalog
}

// AddCharacter validates one record against the owner's persisted roster and
// stores it. Validation failures are returned as domain.ValidationErrors.
func (s *Service) AddCharacter(ctx context.Context, owner domain.Owner, cmd AddCharacterCommand) (domain.Character, error) {
	if err := owner.Validate(); err != nil {
		return domain.Character{}, err
	}

	unlock := s.locks.lock(owner)
	defer unlock()

	record := domain.CandidateRecord{
		Name:  strings.TrimSpace(cmd.Name),
		Class: cmd.Class,
		Role:  cmd.Role,
	}

	state, err := s.liveState(ctx, owner, record)
	if err != nil {
		return domain.Character{}, err
	}

	if errs := s.catalog.Validate(record, state); len(errs) > 0 {
		s.logger.Debug("character rejected",
			zap.String("owner", string(owner)),
			zap.String("name", record.Name),
			zap.Strings("errors", errs.Messages()),
		)
		return domain.Character{}, errs
	}

	character, err := s.repo.Create(ctx, owner, record)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateName) {
			return domain.Character{}, domain.ValidationErrors{domain.DuplicateNameError(record.Name)}
		}
		return domain.Character{}, fmt.Errorf("create character: %w", err)
	}

	s.logger.Info("character added",
		zap.String("owner", string(owner)),
		zap.Int64("id", int64(character.ID)),
		zap.String("name", character.Name),
	)

	return character, nil
}

func (s *Service) liveState(ctx context.Context, owner domain.Owner, record domain.CandidateRecord) (*domain.ConstraintState, error) {
	state := domain.NewConstraintState()

	exists, err := s.repo.ExistsByName(ctx, owner, record.Name)
	if err != nil {
		return nil, fmt.Errorf("check character name: %w", err)
	}
	if exists {
		state.ReserveName(record.Name)
	}

	if _, capped := s.catalog.MaxCount(record.Role); capped {
		count, err := s.repo.CountByRole(ctx, owner, record.Role)
		if err != nil {
			return nil, fmt.Errorf("count characters by position: %w", err)
		}
		state.SetCount(record.Role, count)
	}

	return state, nil
}

func (s *Service) DeleteCharacter(ctx context.Context, owner domain.Owner, id domain.CharacterID) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	unlock := s.locks.lock(owner)
	defer unlock()

	deleted, err := s.repo.Delete(ctx, owner, id)
	if err != nil {
		return fmt.Errorf("delete character: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %d", domain.ErrCharacterNotFound, id)
	}

	s.logger.Info("character deleted", zap.String("owner", string(owner)), zap.Int64("id", int64(id)))
	return nil
}

// ListCharacters returns the roster sorted by name and capped at the display
// limit. Counts always cover the whole roster.
func (s *Service) ListCharacters(ctx context.Context, owner domain.Owner) (RosterView, error) {
	if err := owner.Validate(); err != nil {
		return RosterView{}, err
	}

	characters, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return RosterView{}, fmt.Errorf("list characters: %w", err)
	}

	sorted := slices.Clone(characters)
	slices.SortStableFunc(sorted, func(a, b domain.Character) int {
		return strings.Compare(a.Name, b.Name)
	})

	return RosterView{
		Owner:       owner,
		Total:       len(characters),
		Characters:  truncate(sorted, s.opts.DisplayLimit),
		ClassCounts: s.classCounts(characters),
		RoleCounts:  s.roleCounts(characters),
	}, nil
}

// Export returns the roster in persisted order, capped at the display limit.
func (s *Service) Export(ctx context.Context, owner domain.Owner) (ExportReport, error) {
	if err := owner.Validate(); err != nil {
		return ExportReport{}, err
	}

	characters, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return ExportReport{}, fmt.Errorf("list characters: %w", err)
	}
	if len(characters) == 0 {
		return ExportReport{}, domain.ErrEmptyExport
	}

	kept := truncate(characters, s.opts.DisplayLimit)
	rows := make([]ExportRow, 0, len(kept))
	for _, character := range kept {
		rows = append(rows, ExportRow{
			ID:    character.ID,
			Name:  character.Name,
			Class: character.Class,
			Role:  character.Role,
		})
	}

	return ExportReport{
		Owner:     owner,
		Rows:      rows,
		Truncated: len(kept) < len(characters),
	}, nil
}

func (s *Service) classCounts(characters []domain.Character) []ClassCount {
	counts := map[domain.Class]int{}
	for _, character := range characters {
		counts[character.Class]++
	}

	result := make([]ClassCount, 0, len(counts))
	for _, class := range s.catalog.Classes() {
		if counts[class] == 0 {
			continue
		}
		result = append(result, ClassCount{Class: class, Count: counts[class]})
	}
	return result
}

func (s *Service) roleCounts(characters []domain.Character) []RoleCount {
	counts := map[domain.Role]int{}
	for _, character := range characters {
		counts[character.Role]++
	}

	roles := s.catalog.Roles()
	result := make([]RoleCount, 0, len(roles))
	for _, role := range roles {
		limit, capped := s.catalog.MaxCount(role)
		result = append(result, RoleCount{Role: role, Count: counts[role], Max: limit, Capped: capped})
	}
	return result
}

func truncate(characters []domain.Character, limit int) []domain.Character {
	if limit > 0 && len(characters) > limit {
		return characters[:limit]
	}
	return characters
}
