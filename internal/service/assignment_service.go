package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/model"
	"github.com/classdesk/classdesk-backend/internal/store"
)

// CreateAssignmentInput carries the caller-supplied assignment fields.
// All strings are trimmed on construction; CreatedAt is accepted as-is
// when present and server-generated otherwise.
type CreateAssignmentInput struct {
	Title     string
	Prompt    string
	GradeBand string
	ClassPin  string
	CreatedAt string
}

// AssignmentService handles assignment creation and listing.
type AssignmentService struct {
	records *store.Records
	index   *store.Index
	log     zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(records *store.Records, index *store.Index, log zerolog.Logger) *AssignmentService {
	return &AssignmentService{records: records, index: index, log: log}
}

// Create persists a new assignment and appends its ID to the assignments
// index. A crash between the two writes leaves an orphaned record that no
// listing reaches; accepted at this scale, there is no reconciliation.
func (s *AssignmentService) Create(ctx context.Context, in CreateAssignmentInput) (*model.Assignment, error) {
	a := &model.Assignment{
		ID:        store.NewRecordID(),
		Title:     strings.TrimSpace(in.Title),
		Prompt:    strings.TrimSpace(in.Prompt),
		GradeBand: strings.TrimSpace(in.GradeBand),
		ClassPin:  strings.TrimSpace(in.ClassPin),
		CreatedAt: strings.TrimSpace(in.CreatedAt),
	}
	if a.CreatedAt == "" {
		a.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.records.Put(ctx, model.RecordKindAssignment, a.ID, a); err != nil {
		return nil, err
	}
	if err := s.index.Append(ctx, model.IndexAssignments, a.ID); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", a.ID).Msg("Assignment created")
	return a, nil
}

// List returns all assignments newest-first.
func (s *AssignmentService) List(ctx context.Context) ([]model.Assignment, error) {
	ids, err := s.index.List(ctx, model.IndexAssignments)
	if err != nil {
		return nil, err
	}

	items, err := fetchAll[model.Assignment](ctx, s.records, model.RecordKindAssignment, ids)
	if err != nil {
		return nil, err
	}

	// Index order is insertion-ascending; display order is descending.
	slices.Reverse(items)
	return items, nil
}
