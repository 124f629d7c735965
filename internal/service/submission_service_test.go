package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classdesk/classdesk-backend/internal/store"
)

func newSubmissionServices() (*AssignmentService, *SubmissionService, *store.MemoryKV) {
	kv := store.NewMemoryKV()
	log := zerolog.Nop()
	records := store.NewRecords(kv, log)
	index := store.NewIndex(kv, log)
	return NewAssignmentService(records, index, log), NewSubmissionService(records, index, log), kv
}

func TestSubmissionCreate(t *testing.T) {
	ctx := context.Background()
	assignments, submissions, _ := newSubmissionServices()

	a, err := assignments.Create(ctx, CreateAssignmentInput{Title: "Fractions", Prompt: "Explain"})
	require.NoError(t, err)

	sub, err := submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: " " + a.ID + " ",
		StudentName:  " Ana ",
		Response:     " 5/6 ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, a.ID, sub.AssignmentID)
	assert.Equal(t, "Ana", sub.StudentName)
	assert.Equal(t, "5/6", sub.Response)
	assert.Empty(t, sub.Steps)
	assert.Empty(t, sub.Reflection)
	assert.NotEmpty(t, sub.SubmittedAt)
}

func TestSubmissionCreateUnknownAssignment(t *testing.T) {
	ctx := context.Background()
	_, submissions, kv := newSubmissionServices()

	_, err := submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: "missing",
		StudentName:  "Ana",
		Response:     "5/6",
	})
	require.ErrorIs(t, err, ErrAssignmentNotFound)

	// Nothing persisted, index untouched.
	items, err := submissions.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)

	_, ok, err := kv.Get(ctx, "index:submissions")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSubmissionListFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	assignments, submissions, _ := newSubmissionServices()

	x, err := assignments.Create(ctx, CreateAssignmentInput{Title: "X", Prompt: "p"})
	require.NoError(t, err)
	y, err := assignments.Create(ctx, CreateAssignmentInput{Title: "Y", Prompt: "p"})
	require.NoError(t, err)

	s1, err := submissions.Create(ctx, CreateSubmissionInput{AssignmentID: x.ID, StudentName: "Ana", Response: "r1"})
	require.NoError(t, err)
	_, err = submissions.Create(ctx, CreateSubmissionInput{AssignmentID: y.ID, StudentName: "Ben", Response: "r2"})
	require.NoError(t, err)
	s3, err := submissions.Create(ctx, CreateSubmissionInput{AssignmentID: x.ID, StudentName: "Cam", Response: "r3"})
	require.NoError(t, err)

	// Filtered to X, newest first.
	items, err := submissions.List(ctx, x.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, s3.ID, items[0].ID)
	assert.Equal(t, s1.ID, items[1].ID)

	// Unfiltered sees all three.
	all, err := submissions.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Exact match only: a prefix of a real ID matches nothing.
	none, err := submissions.List(ctx, x.ID[:len(x.ID)-1])
	require.NoError(t, err)
	assert.Empty(t, none)
}
