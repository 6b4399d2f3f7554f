// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// EquipmentRepository defines the secondary port for CAEX equipment persistence.
type EquipmentRepository interface {
	// Create persists a new equipment record.
	Create(ctx context.Context, record *EquipmentRecord) error

	// GetByID retrieves an equipment record by its ID.
	GetByID(ctx context.Context, id string) (*EquipmentRecord, error)

	// GetByNumber retrieves an equipment record by fleet number.
	// Returns (nil, nil) when no record holds the number.
	GetByNumber(ctx context.Context, number int) (*EquipmentRecord, error)

	// NumberExists checks whether a fleet number is already registered.
	NumberExists(ctx context.Context, number int) (bool, error)

	// List retrieves equipment matching the given filters, ordered by number.
	List(ctx context.Context, filters EquipmentFilters) ([]*EquipmentRecord, error)

	// Update applies a corrective edit to an existing record.
	Update(ctx context.Context, record *EquipmentRecord) error

	// Delete removes an equipment record and, by cascade, its inspections.
	Delete(ctx context.Context, id string) error
}

// EquipmentRecord represents a CAEX unit as stored in persistence.
type EquipmentRecord struct {
	ID        string
	Number    int
	Model     string
	CreatedAt string
}

// EquipmentFilters contains filter options for querying equipment.
type EquipmentFilters struct {
	Model string
}

// CatalogRepository defines the secondary port for the category/question
// catalog. The catalog is static reference data seeded at first startup.
type CatalogRepository interface {
	// CategoriesForModel retrieves categories applicable to a model
	// (scope matches the model or TODOS), ordered by display order.
	CategoriesForModel(ctx context.Context, model string) ([]*CategoryRecord, error)

	// QuestionsForCategory retrieves the questions of one category applicable
	// to a model, ordered by display order.
	QuestionsForCategory(ctx context.Context, categoryID, model string) ([]*QuestionRecord, error)

	// CountQuestionsForModel returns the total applicable question count
	// across all categories for a model.
	CountQuestionsForModel(ctx context.Context, model string) (int, error)

	// GetQuestion retrieves a question by its ID.
	GetQuestion(ctx context.Context, id string) (*QuestionRecord, error)

	// QuestionExists checks whether a question exists.
	QuestionExists(ctx context.Context, id string) (bool, error)
}

// CategoryRecord represents a question category as stored in persistence.
type CategoryRecord struct {
	ID         string
	Name       string
	Order      int
	ModelScope string
}

// QuestionRecord represents a checklist question as stored in persistence.
type QuestionRecord struct {
	ID         string
	CategoryID string
	Text       string
	Order      int
	ModelScope string
}

// InspectionRepository defines the secondary port for inspection persistence.
type InspectionRepository interface {
	// Create persists a new inspection.
	Create(ctx context.Context, record *InspectionRecord) error

	// GetByID retrieves an inspection by its ID.
	GetByID(ctx context.Context, id string) (*InspectionRecord, error)

	// List retrieves inspections matching the given filters, newest first.
	List(ctx context.Context, filters InspectionFilters) ([]*InspectionRecord, error)

	// ListWithEquipment retrieves inspections joined with their equipment,
	// newest first.
	ListWithEquipment(ctx context.Context, filters InspectionFilters) ([]*InspectionWithEquipment, error)

	// Close marks an inspection closed, stamping closure time and remarks.
	Close(ctx context.Context, id, closedAt, remarks string) error

	// Delete removes an inspection and, by cascade, its answers and photo rows.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available inspection ID.
	GetNextID(ctx context.Context) (string, error)

	// EquipmentExists checks whether an equipment record exists.
	EquipmentExists(ctx context.Context, equipmentID string) (bool, error)
}

// InspectionRecord represents an inspection session as stored in persistence.
type InspectionRecord struct {
	ID          string
	EquipmentID string
	Kind        string
	Status      string
	Inspector   string
	Supervisor  string
	IntakeID    string // only set on release inspections
	Remarks     string
	CreatedAt   string
	ClosedAt    string
}

// InspectionFilters contains filter options for querying inspections.
type InspectionFilters struct {
	Status      string
	Kind        string
	EquipmentID string
	Model       string
}

// InspectionWithEquipment pairs an inspection with its equipment identity.
type InspectionWithEquipment struct {
	Inspection      InspectionRecord
	EquipmentNumber int
	EquipmentModel  string
}

// AnswerRepository defines the secondary port for answer persistence.
type AnswerRepository interface {
	// Upsert inserts the record or, when an answer already exists for the
	// (inspection, question) pair, overwrites it in place. The record's ID is
	// used only on insert; the ID of the surviving row is returned.
	Upsert(ctx context.Context, record *AnswerRecord) (string, error)

	// GetByID retrieves an answer by its ID.
	GetByID(ctx context.Context, id string) (*AnswerRecord, error)

	// GetByInspectionAndQuestion retrieves the answer for a pair.
	// Returns (nil, nil) when the question is unanswered.
	GetByInspectionAndQuestion(ctx context.Context, inspectionID, questionID string) (*AnswerRecord, error)

	// ListByInspection retrieves all answers of an inspection.
	ListByInspection(ctx context.Context, inspectionID string) ([]*AnswerRecord, error)

	// ListDetailed retrieves answers joined with question and category,
	// ordered by (category order, question order), each carrying its photo
	// count. Status narrows to one answer status when non-empty.
	ListDetailed(ctx context.Context, inspectionID, status string) ([]*AnswerDetail, error)

	// CountByInspection returns the number of answers for an inspection.
	CountByInspection(ctx context.Context, inspectionID string) (int, error)

	// CountByInspectionAndStatus returns the number of answers with one status.
	CountByInspectionAndStatus(ctx context.Context, inspectionID, status string) (int, error)

	// ListIncompleteFails returns the question IDs of stored fail answers
	// missing comments, remediation kind, or ticket reference.
	ListIncompleteFails(ctx context.Context, inspectionID string) ([]string, error)

	// Delete removes an answer and, by cascade, its photo rows.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available answer ID.
	GetNextID(ctx context.Context) (string, error)

	// InspectionExists checks whether an inspection exists.
	InspectionExists(ctx context.Context, inspectionID string) (bool, error)

	// QuestionExists checks whether a question exists.
	QuestionExists(ctx context.Context, questionID string) (bool, error)
}

// AnswerRecord represents one answer as stored in persistence.
type AnswerRecord struct {
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

// AnswerDetail joins an answer with its question, category and photo count.
type AnswerDetail struct {
	Answer        AnswerRecord
	QuestionText  string
	QuestionOrder int
	CategoryID    string
	CategoryName  string
	CategoryOrder int
	PhotoCount    int
}

// PhotoRepository defines the secondary port for photo metadata persistence.
type PhotoRepository interface {
	// Create persists a new photo row.
	Create(ctx context.Context, record *PhotoRecord) error

	// GetByID retrieves a photo by its ID.
	GetByID(ctx context.Context, id string) (*PhotoRecord, error)

	// ListByAnswer retrieves all photos attached to an answer.
	ListByAnswer(ctx context.Context, answerID string) ([]*PhotoRecord, error)

	// ListByInspection retrieves all photos across an inspection's answers.
	ListByInspection(ctx context.Context, inspectionID string) ([]*PhotoRecord, error)

	// CountByAnswer returns the number of photos attached to an answer.
	CountByAnswer(ctx context.Context, answerID string) (int, error)

	// Delete removes a photo row.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available photo ID.
	GetNextID(ctx context.Context) (string, error)

	// AnswerExists checks whether an answer exists.
	AnswerExists(ctx context.Context, answerID string) (bool, error)
}

// PhotoRecord represents photo evidence as stored in persistence.
type PhotoRecord struct {
	ID          string
	AnswerID    string
	FilePath    string
	Description string
	CreatedAt   string
}
