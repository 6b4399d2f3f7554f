package primary

import "context"

// AnswerService defines the primary port for recording checklist answers.
type AnswerService interface {
	// RecordPass records a conforming answer. Re-answering the same question
	// overwrites the previous answer.
	RecordPass(ctx context.Context, req RecordPassRequest) (*RecordAnswerResponse, error)

	// RecordFail records a non-conforming answer with its finding details.
	// Re-answering the same question overwrites the previous answer.
	RecordFail(ctx context.Context, req RecordFailRequest) (*RecordAnswerResponse, error)

	// GetAnswer retrieves an answer by ID.
	GetAnswer(ctx context.Context, answerID string) (*Answer, error)

	// ListAnswers lists an inspection's answers in catalog order, optionally
	// narrowed to one status.
	ListAnswers(ctx context.Context, req ListAnswersRequest) ([]*AnswerDetail, error)

	// DeleteAnswer removes an answer and its photos, reopening the question.
	DeleteAnswer(ctx context.Context, answerID string) error
}

// RecordPassRequest contains parameters for a conforming answer.
type RecordPassRequest struct {
	InspectionID string
	QuestionID   string
	Comments     string
}

// RecordFailRequest contains parameters for a non-conforming answer.
type RecordFailRequest struct {
	InspectionID string
	QuestionID   string
	Comments     string
	Remediation  string
	TicketRef    string
}

// RecordAnswerResponse contains the result of recording an answer.
type RecordAnswerResponse struct {
	AnswerID string
	Answer   *Answer
}

// Answer represents a checklist answer at the port boundary.
type Answer struct {
	ID           string
	InspectionID string
	QuestionID   string
	Status       string
	Comments     string
	Remediation  string
	TicketRef    string
	CreatedAt    string
	UpdatedAt    string
}

// ListAnswersRequest contains parameters for listing answers.
type ListAnswersRequest struct {
	InspectionID string
	Status       string
}

// AnswerDetail pairs an answer with its question and category context.
type AnswerDetail struct {
	Answer       *Answer
	QuestionText string
	CategoryID   string
	CategoryName string
	PhotoCount   int
}
