package model

// RecordKindSubmission is the key prefix for persisted submissions.
const RecordKindSubmission = "submission"

// IndexSubmissions is the ordered index holding all submission IDs.
const IndexSubmissions = "submissions"

// Submission is a student's answer to an assignment. AssignmentID is
// checked against an existing assignment at creation time only.
type Submission struct {
	ID           string `json:"id"`
	AssignmentID string `json:"assignmentId"`
	StudentName  string `json:"studentName"`
	ClassPin     string `json:"classPin"`
	Response     string `json:"response"`
	Steps        string `json:"steps"`
	Reflection   string `json:"reflection"`
	SubmittedAt  string `json:"submittedAt"`
}
