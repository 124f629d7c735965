package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/classdesk/classdesk-backend/internal/model"
	"github.com/classdesk/classdesk-backend/internal/store"
)

// ErrAssignmentNotFound is returned when a submission references an
// assignment that does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

// CreateSubmissionInput carries the caller-supplied submission fields.
type CreateSubmissionInput struct {
	AssignmentID string
	StudentName  string
	ClassPin     string
	Response     string
	Steps        string
	Reflection   string
	SubmittedAt  string
}

// SubmissionService handles submission creation and listing.
type SubmissionService struct {
	records *store.Records
	index   *store.Index
	log     zerolog.Logger
}

// NewSubmissionService creates a new SubmissionService.
func NewSubmissionService(records *store.Records, index *store.Index, log zerolog.Logger) *SubmissionService {
	return &SubmissionService{records: records, index: index, log: log}
}

// Create persists a new submission after resolving its assignment. The
// reference is checked once, at creation time; nothing is written when the
// assignment is unknown.
func (s *SubmissionService) Create(ctx context.Context, in CreateSubmissionInput) (*model.Submission, error) {
	assignmentID := strings.TrimSpace(in.AssignmentID)

	var a model.Assignment
	ok, err := s.records.Get(ctx, model.RecordKindAssignment, assignmentID, &a)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrAssignmentNotFound
	}

	sub := &model.Submission{
		ID:           store.NewRecordID(),
		AssignmentID: assignmentID,
		StudentName:  strings.TrimSpace(in.StudentName),
		ClassPin:     strings.TrimSpace(in.ClassPin),
		Response:     strings.TrimSpace(in.Response),
		Steps:        strings.TrimSpace(in.Steps),
		Reflection:   strings.TrimSpace(in.Reflection),
		SubmittedAt:  strings.TrimSpace(in.SubmittedAt),
	}
	if sub.SubmittedAt == "" {
		sub.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := s.records.Put(ctx, model.RecordKindSubmission, sub.ID, sub); err != nil {
		return nil, err
	}
	if err := s.index.Append(ctx, model.IndexSubmissions, sub.ID); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", sub.ID).Str("assignment_id", sub.AssignmentID).Msg("Submission created")
	return sub, nil
}

// List returns submissions newest-first, optionally restricted to one
// assignment. The filter is exact string equality, applied after the batch
// fetch and before reversal.
func (s *SubmissionService) List(ctx context.Context, assignmentID string) ([]model.Submission, error) {
	ids, err := s.index.List(ctx, model.IndexSubmissions)
	if err != nil {
		return nil, err
	}

	items, err := fetchAll[model.Submission](ctx, s.records, model.RecordKindSubmission, ids)
	if err != nil {
		return nil, err
	}

	if assignmentID != "" {
		filtered := make([]model.Submission, 0, len(items))
		for _, sub := range items {
			if sub.AssignmentID == assignmentID {
				filtered = append(filtered, sub)
			}
		}
		items = filtered
	}

	slices.Reverse(items)
	return items, nil
}
