package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/roster-cli/internal/domain"
	"go.uber.org/zap"
)

// Ingest reads roster blocks from r and persists every record that passes
// validation. A failing record never stops the batch; only read and storage
// failures abort, leaving records committed so far in place.
func (s *Service) Ingest(ctx context.Context, owner domain.Owner, r io.Reader) (IngestResult, error) {
	if err := owner.Validate(); err != nil {
		return IngestResult{}, err
	}

	unlock := s.locks.lock(owner)
	defer unlock()

	existing, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return IngestResult{}, fmt.Errorf("list characters: %w", err)
	}

	state := domain.SeedConstraintState(existing)
	policy := s.opts.Policy
	log := s.logger.With(zap.String("owner", string(owner)))

	var result IngestResult
	for block, err := range domain.ParseBlocks(r) {
		if err != nil {
			return result, fmt.Errorf("read roster blocks: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, missing := block.Record()
		if len(missing) > 0 {
			if !policy.ReportIncomplete {
				log.Debug("dropping incomplete block", zap.Int("line", block.Line), zap.Strings("missing", missing))
				continue
			}
			result.Rejected = append(result.Rejected, RejectedRecord{
				Line:   block.Line,
				Name:   block.Fields[domain.KeyName],
				Errors: domain.ValidationErrors{domain.IncompleteRecordError(block.Line, missing)},
			})
			continue
		}

		errs := s.catalog.Validate(record, state)
		if len(errs) == 0 || policy.ClaimRejected {
			state.Claim(record)
		}

		if len(errs) > 0 {
			log.Debug("record rejected",
				zap.Int("line", block.Line),
				zap.String("name", record.Name),
				zap.Strings("errors", errs.Messages()),
			)
			result.Rejected = append(result.Rejected, RejectedRecord{Line: block.Line, Name: record.Name, Errors: errs})
			continue
		}

		character, err := s.repo.Create(ctx, owner, record)
		if err != nil {
			if errors.Is(err, domain.ErrDuplicateName) {
				result.Rejected = append(result.Rejected, RejectedRecord{
					Line:   block.Line,
					Name:   record.Name,
					Errors: domain.ValidationErrors{domain.DuplicateNameError(record.Name)},
				})
				continue
			}
			return result, fmt.Errorf("create character %q: %w", record.Name, err)
		}

		log.Debug("record accepted", zap.Int("line", block.Line), zap.Int64("id", int64(character.ID)))
		result.Accepted = append(result.Accepted, character)
	}

	log.Info("roster ingested",
		zap.Int("accepted", result.AcceptedCount()),
		zap.Int("rejected", len(result.Rejected)),
	)

	return result, nil
}
