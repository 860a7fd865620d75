package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmarkov/sprintwise/internal/db"
	"github.com/dmarkov/sprintwise/internal/domain"
	"github.com/dmarkov/sprintwise/internal/engine"
	"github.com/dmarkov/sprintwise/internal/importer"
	"github.com/dmarkov/sprintwise/internal/repository"
)

type importService struct {
	requirements repository.RequirementRepo
	pools        repository.PoolRepo
	uow          db.UnitOfWork
}

func NewImportService(requirements repository.RequirementRepo, pools repository.PoolRepo, uow db.UnitOfWork) ImportService {
	return &importService{requirements: requirements, pools: pools, uow: uow}
}

// ImportFile replaces the stored working set with the contents of a
// batch JSON file. Validation failures reject the whole file; nothing is
// written.
func (s *importService) ImportFile(ctx context.Context, filePath string) (*ImportSummary, error) {
	schema, err := importer.LoadBatchSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	if errs := importer.ValidateBatchSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	items, pools, report := importer.Convert(schema)
	if err := s.replaceBatch(ctx, items, pools); err != nil {
		return nil, err
	}
	return &ImportSummary{
		RequirementCount: len(items),
		PoolCount:        len(pools),
		Report:           report,
	}, nil
}

// LoadSample seeds the database with the built-in demo dataset.
func (s *importService) LoadSample(ctx context.Context) (*ImportSummary, error) {
	items, pools := importer.SampleBatch()
	if err := s.replaceBatch(ctx, items, pools); err != nil {
		return nil, err
	}
	return &ImportSummary{
		RequirementCount: len(items),
		PoolCount:        len(pools),
	}, nil
}

func (s *importService) replaceBatch(ctx context.Context, items []domain.Requirement, pools []domain.SprintPool) error {
	batch := engine.NewBatch(items, pools)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return persistBatch(ctx, tx, batch)
	})
}

// ExportFile writes the current working set as batch JSON.
func (s *importService) ExportFile(ctx context.Context, filePath string) error {
	b, err := loadBatch(ctx, s.requirements, s.pools)
	if err != nil {
		return err
	}
	schema := importer.ExportSchema(b.Requirements(), b.Pools())
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
