package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/haroontrailblazer/College-Departments-Portal/internal/common"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/config"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/models"
	"github.com/haroontrailblazer/College-Departments-Portal/internal/server/repositories/entries"
)

// previewLength caps the content shown in recent-entry listings.
const previewLength = 100

// defaultRecentLimit is used when a recent request carries no limit.
const defaultRecentLimit = 10

// SubmissionService validates and stores data entries. Validation happens
// entirely before the store is touched: a rejected submission never mutates
// anything.
type SubmissionService struct {
	repo             entries.Repository
	minContentLength int
	maxContentLength int
}

func NewSubmissionService(repo entries.Repository, cfg *config.Config) *SubmissionService {
	return &SubmissionService{
		repo:             repo,
		minContentLength: cfg.MinContentLength,
		maxContentLength: cfg.MaxContentLength,
	}
}

func (s *SubmissionService) validate(entryType models.EntryType, content string) error {
	if !entryType.Valid() {
		return fmt.Errorf("%w: unknown entry type %q", common.ErrValidation, entryType)
	}
	if len(content) < s.minContentLength {
		return fmt.Errorf("%w: content must be at least %d characters", common.ErrValidation, s.minContentLength)
	}
	if len(content) > s.maxContentLength {
		return fmt.Errorf("%w: content too long (max %d characters)", common.ErrValidation, s.maxContentLength)
	}
	return nil
}

// Submit stores one entry for the department and returns the assigned id.
func (s *SubmissionService) Submit(ctx context.Context, deptID int64, entryType, content string) (int64, error) {
	content = strings.TrimSpace(content)

	if err := s.validate(models.EntryType(entryType), content); err != nil {
		return 0, err
	}

	entry := &models.DataEntry{
		DepartmentID: deptID,
		EntryType:    models.EntryType(entryType),
		Content:      content,
	}

	entry, err := s.repo.Insert(ctx, entry)
	if err != nil {
		return 0, fmt.Errorf("storing entry: %w", err)
	}

	return entry.ID, nil
}

// ReadAll returns the full joined entry set, ordered by id.
func (s *SubmissionService) ReadAll(ctx context.Context) ([]models.ExportRow, error) {
	rows, err := s.repo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}
	return rows, nil
}

// Recent returns previews of the latest entries, newest first. A limit of
// zero or less selects the default.
func (s *SubmissionService) Recent(ctx context.Context, limit int) ([]models.ExportRow, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading recent entries: %w", err)
	}

	for i := range rows {
		rows[i].Content = truncate(rows[i].Content, previewLength)
	}

	return rows, nil
}

// Count returns the number of stored entries.
func (s *SubmissionService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
