package model

// RecordKindAssignment is the key prefix for persisted assignments.
const RecordKindAssignment = "assignment"

// IndexAssignments is the ordered index holding all assignment IDs.
const IndexAssignments = "assignments"

// Assignment is a task posted by a teacher. Records are immutable once
// created; there is no update or delete path.
type Assignment struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	// GradeBand is a free-form audience label ("3-5", "middle school", ...).
	GradeBand string `json:"gradeBand"`
	// ClassPin is an opaque classroom token. It scopes visibility informally
	// and is never verified.
	ClassPin  string `json:"classPin"`
	CreatedAt string `json:"createdAt"`
}
