package app_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/caexinspect/internal/ports/secondary"
)

// discardLogger is shared by all service tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockEquipmentRepo is a map-backed test double for the equipment repository.
type mockEquipmentRepo struct {
	equipment map[string]*secondary.EquipmentRecord
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{equipment: make(map[string]*secondary.EquipmentRecord)}
}

func (m *mockEquipmentRepo) add(id string, number int, model string) {
	m.equipment[id] = &secondary.EquipmentRecord{ID: id, Number: number, Model: model, CreatedAt: "2025-06-01T10:00:00Z"}
}

func (m *mockEquipmentRepo) Create(ctx context.Context, record *secondary.EquipmentRecord) error {
	cp := *record
	if cp.CreatedAt == "" {
		cp.CreatedAt = "2025-06-01T10:00:00Z"
	}
	m.equipment[record.ID] = &cp
	return nil
}

func (m *mockEquipmentRepo) GetByID(ctx context.Context, id string) (*secondary.EquipmentRecord, error) {
	record, ok := m.equipment[id]
	if !ok {
		return nil, fmt.Errorf("equipment %s not found", id)
	}
	return record, nil
}

func (m *mockEquipmentRepo) GetByNumber(ctx context.Context, number int) (*secondary.EquipmentRecord, error) {
	for _, record := range m.equipment {
		if record.Number == number {
			return record, nil
		}
	}
	return nil, nil
}

func (m *mockEquipmentRepo) NumberExists(ctx context.Context, number int) (bool, error) {
	record, _ := m.GetByNumber(ctx, number)
	return record != nil, nil
}

func (m *mockEquipmentRepo) List(ctx context.Context, filters secondary.EquipmentFilters) ([]*secondary.EquipmentRecord, error) {
	var records []*secondary.EquipmentRecord
	for _, record := range m.equipment {
		if filters.Model != "" && record.Model != filters.Model {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Number < records[j].Number })
	return records, nil
}

func (m *mockEquipmentRepo) Update(ctx context.Context, record *secondary.EquipmentRecord) error {
	current, ok := m.equipment[record.ID]
	if !ok {
		return fmt.Errorf("equipment %s not found", record.ID)
	}
	current.Model = record.Model
	if record.Number != 0 && record.Number != current.Number {
		delete(m.equipment, current.ID)
		current.Number = record.Number
		current.ID = fmt.Sprintf("CAEX-%d", record.Number)
		m.equipment[current.ID] = current
	}
	return nil
}

func (m *mockEquipmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.equipment[id]; !ok {
		return fmt.Errorf("equipment %s not found", id)
	}
	delete(m.equipment, id)
	return nil
}

var _ secondary.EquipmentRepository = (*mockEquipmentRepo)(nil)

// mockCatalogRepo serves a fixed category/question catalog.
type mockCatalogRepo struct {
	categories []*secondary.CategoryRecord
	questions  []*secondary.QuestionRecord
}

// newMockCatalogRepo builds a small catalog: two shared categories plus one
// 798AC-only category, with a model-scoped question mixed in.
func newMockCatalogRepo() *mockCatalogRepo {
	return &mockCatalogRepo{
		categories: []*secondary.CategoryRecord{
			{ID: "CAT-001", Name: "Condiciones Generales", Order: 1, ModelScope: "TODOS"},
			{ID: "CAT-002", Name: "Cabina Operador", Order: 2, ModelScope: "TODOS"},
			{ID: "CAT-009", Name: "Sistema eléctrico", Order: 9, ModelScope: "798AC"},
		},
		questions: []*secondary.QuestionRecord{
			{ID: "Q-001", CategoryID: "CAT-001", Text: "Extintores habilitados", Order: 1, ModelScope: "TODOS"},
			{ID: "Q-002", CategoryID: "CAT-001", Text: "Tren de bombas sin fugas", Order: 2, ModelScope: "798AC"},
			{ID: "Q-003", CategoryID: "CAT-002", Text: "Panel de alarmas en buen estado", Order: 1, ModelScope: "TODOS"},
			{ID: "Q-004", CategoryID: "CAT-009", Text: "Alternador sin fugas", Order: 1, ModelScope: "798AC"},
		},
	}
}

func scopeMatches(scope, model string) bool {
	return scope == "TODOS" || scope == model
}

func (m *mockCatalogRepo) CategoriesForModel(ctx context.Context, model string) ([]*secondary.CategoryRecord, error) {
	var records []*secondary.CategoryRecord
	for _, c := range m.categories {
		if scopeMatches(c.ModelScope, model) {
			records = append(records, c)
		}
	}
	return records, nil
}

func (m *mockCatalogRepo) QuestionsForCategory(ctx context.Context, categoryID, model string) ([]*secondary.QuestionRecord, error) {
	var records []*secondary.QuestionRecord
	for _, q := range m.questions {
		if q.CategoryID == categoryID && scopeMatches(q.ModelScope, model) {
			records = append(records, q)
		}
	}
	return records, nil
}

func (m *mockCatalogRepo) CountQuestionsForModel(ctx context.Context, model string) (int, error) {
	categoryScope := make(map[string]string, len(m.categories))
	for _, c := range m.categories {
		categoryScope[c.ID] = c.ModelScope
	}
	count := 0
	for _, q := range m.questions {
		if scopeMatches(q.ModelScope, model) && scopeMatches(categoryScope[q.CategoryID], model) {
			count++
		}
	}
	return count, nil
}

func (m *mockCatalogRepo) GetQuestion(ctx context.Context, id string) (*secondary.QuestionRecord, error) {
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, fmt.Errorf("question %s not found", id)
}

func (m *mockCatalogRepo) QuestionExists(ctx context.Context, id string) (bool, error) {
	_, err := m.GetQuestion(ctx, id)
	return err == nil, nil
}

var _ secondary.CatalogRepository = (*mockCatalogRepo)(nil)

// mockInspectionRepo is a map-backed test double for the inspection repository.
type mockInspectionRepo struct {
	inspections  map[string]*secondary.InspectionRecord
	equipment    *mockEquipmentRepo
	nextID       int
	closedCalls  int
	deletedCalls []string
}

func newMockInspectionRepo(equipment *mockEquipmentRepo) *mockInspectionRepo {
	return &mockInspectionRepo{
		inspections: make(map[string]*secondary.InspectionRecord),
		equipment:   equipment,
	}
}

func (m *mockInspectionRepo) add(id, equipmentID, kind, status string) {
	m.inspections[id] = &secondary.InspectionRecord{
		ID:          id,
		EquipmentID: equipmentID,
		Kind:        kind,
		Status:      status,
		Inspector:   "Test Inspector",
		Supervisor:  "Test Supervisor",
		CreatedAt:   "2025-06-01T10:00:00Z",
	}
}

func (m *mockInspectionRepo) Create(ctx context.Context, record *secondary.InspectionRecord) error {
	cp := *record
	if cp.CreatedAt == "" {
		cp.CreatedAt = "2025-06-01T10:00:00Z"
	}
	m.inspections[record.ID] = &cp
	return nil
}

func (m *mockInspectionRepo) GetByID(ctx context.Context, id string) (*secondary.InspectionRecord, error) {
	record, ok := m.inspections[id]
	if !ok {
		return nil, fmt.Errorf("inspection %s not found", id)
	}
	return record, nil
}

func (m *mockInspectionRepo) List(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionRecord, error) {
	var records []*secondary.InspectionRecord
	for _, record := range m.inspections {
		if filters.Status != "" && record.Status != filters.Status {
			continue
		}
		if filters.Kind != "" && record.Kind != filters.Kind {
			continue
		}
		if filters.EquipmentID != "" && record.EquipmentID != filters.EquipmentID {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID > records[j].ID })
	return records, nil
}

func (m *mockInspectionRepo) ListWithEquipment(ctx context.Context, filters secondary.InspectionFilters) ([]*secondary.InspectionWithEquipment, error) {
	records, err := m.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	var joined []*secondary.InspectionWithEquipment
	for _, record := range records {
		unit, err := m.equipment.GetByID(ctx, record.EquipmentID)
		if err != nil {
			return nil, err
		}
		if filters.Model != "" && unit.Model != filters.Model {
			continue
		}
		joined = append(joined, &secondary.InspectionWithEquipment{
			Inspection:      *record,
			EquipmentNumber: unit.Number,
			EquipmentModel:  unit.Model,
		})
	}
	return joined, nil
}

func (m *mockInspectionRepo) Close(ctx context.Context, id, closedAt, remarks string) error {
	record, ok := m.inspections[id]
	if !ok {
		return fmt.Errorf("inspection %s not found", id)
	}
	record.Status = "CERRADA"
	record.ClosedAt = closedAt
	record.Remarks = remarks
	m.closedCalls++
	return nil
}

func (m *mockInspectionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.inspections[id]; !ok {
		return fmt.Errorf("inspection %s not found", id)
	}
	delete(m.inspections, id)
	m.deletedCalls = append(m.deletedCalls, id)
	return nil
}

func (m *mockInspectionRepo) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("INSP-%03d", m.nextID), nil
}

func (m *mockInspectionRepo) EquipmentExists(ctx context.Context, equipmentID string) (bool, error) {
	_, ok := m.equipment.equipment[equipmentID]
	return ok, nil
}

var _ secondary.InspectionRepository = (*mockInspectionRepo)(nil)

// mockAnswerRepo is a map-backed test double for the answer repository.
type mockAnswerRepo struct {
	answers     map[string]*secondary.AnswerRecord
	catalog     *mockCatalogRepo
	inspections *mockInspectionRepo
	nextID      int
}

func newMockAnswerRepo(catalog *mockCatalogRepo, inspections *mockInspectionRepo) *mockAnswerRepo {
	return &mockAnswerRepo{
		answers:     make(map[string]*secondary.AnswerRecord),
		catalog:     catalog,
		inspections: inspections,
	}
}

func (m *mockAnswerRepo) add(id, inspectionID, questionID, status, comments, remediation, ticketRef string) {
	m.answers[id] = &secondary.AnswerRecord{
		ID:           id,
		InspectionID: inspectionID,
		QuestionID:   questionID,
		Status:       status,
		Comments:     comments,
		Remediation:  remediation,
		TicketRef:    ticketRef,
		CreatedAt:    "2025-06-01T10:00:00Z",
		UpdatedAt:    "2025-06-01T10:00:00Z",
	}
}

func (m *mockAnswerRepo) Upsert(ctx context.Context, record *secondary.AnswerRecord) (string, error) {
	for _, existing := range m.answers {
		if existing.InspectionID == record.InspectionID && existing.QuestionID == record.QuestionID {
			existing.Status = record.Status
			existing.Comments = record.Comments
			existing.Remediation = record.Remediation
			existing.TicketRef = record.TicketRef
			return existing.ID, nil
		}
	}
	cp := *record
	cp.CreatedAt = "2025-06-01T10:00:00Z"
	cp.UpdatedAt = "2025-06-01T10:00:00Z"
	m.answers[record.ID] = &cp
	return record.ID, nil
}

func (m *mockAnswerRepo) GetByID(ctx context.Context, id string) (*secondary.AnswerRecord, error) {
	record, ok := m.answers[id]
	if !ok {
		return nil, fmt.Errorf("answer %s not found", id)
	}
	return record, nil
}

func (m *mockAnswerRepo) GetByInspectionAndQuestion(ctx context.Context, inspectionID, questionID string) (*secondary.AnswerRecord, error) {
	for _, record := range m.answers {
		if record.InspectionID == inspectionID && record.QuestionID == questionID {
			return record, nil
		}
	}
	return nil, nil
}

func (m *mockAnswerRepo) ListByInspection(ctx context.Context, inspectionID string) ([]*secondary.AnswerRecord, error) {
	var records []*secondary.AnswerRecord
	for _, record := range m.answers {
		if record.InspectionID == inspectionID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockAnswerRepo) ListDetailed(ctx context.Context, inspectionID, status string) ([]*secondary.AnswerDetail, error) {
	records, _ := m.ListByInspection(ctx, inspectionID)
	var details []*secondary.AnswerDetail
	for _, record := range records {
		if status != "" && record.Status != status {
			continue
		}
		question, err := m.catalog.GetQuestion(ctx, record.QuestionID)
		if err != nil {
			return nil, err
		}
		var category *secondary.CategoryRecord
		for _, c := range m.catalog.categories {
			if c.ID == question.CategoryID {
				category = c
			}
		}
		details = append(details, &secondary.AnswerDetail{
			Answer:        *record,
			QuestionText:  question.Text,
			QuestionOrder: question.Order,
			CategoryID:    category.ID,
			CategoryName:  category.Name,
			CategoryOrder: category.Order,
		})
	}
	sort.Slice(details, func(i, j int) bool {
		if details[i].CategoryOrder != details[j].CategoryOrder {
			return details[i].CategoryOrder < details[j].CategoryOrder
		}
		return details[i].QuestionOrder < details[j].QuestionOrder
	})
	return details, nil
}

func (m *mockAnswerRepo) CountByInspection(ctx context.Context, inspectionID string) (int, error) {
	records, _ := m.ListByInspection(ctx, inspectionID)
	return len(records), nil
}

func (m *mockAnswerRepo) CountByInspectionAndStatus(ctx context.Context, inspectionID, status string) (int, error) {
	records, _ := m.ListByInspection(ctx, inspectionID)
	count := 0
	for _, record := range records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *mockAnswerRepo) ListIncompleteFails(ctx context.Context, inspectionID string) ([]string, error) {
	records, _ := m.ListByInspection(ctx, inspectionID)
	var questionIDs []string
	for _, record := range records {
		if record.Status != "NO_CONFORME" {
			continue
		}
		if strings.TrimSpace(record.Comments) == "" ||
			record.Remediation == "" ||
			strings.TrimSpace(record.TicketRef) == "" {
			questionIDs = append(questionIDs, record.QuestionID)
		}
	}
	return questionIDs, nil
}

func (m *mockAnswerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.answers[id]; !ok {
		return fmt.Errorf("answer %s not found", id)
	}
	delete(m.answers, id)
	return nil
}

func (m *mockAnswerRepo) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("ANS-%03d", m.nextID), nil
}

func (m *mockAnswerRepo) InspectionExists(ctx context.Context, inspectionID string) (bool, error) {
	_, ok := m.inspections.inspections[inspectionID]
	return ok, nil
}

func (m *mockAnswerRepo) QuestionExists(ctx context.Context, questionID string) (bool, error) {
	return m.catalog.QuestionExists(ctx, questionID)
}

var _ secondary.AnswerRepository = (*mockAnswerRepo)(nil)

// mockPhotoRepo is a map-backed test double for the photo repository.
type mockPhotoRepo struct {
	photos  map[string]*secondary.PhotoRecord
	answers *mockAnswerRepo
	nextID  int
}

func newMockPhotoRepo(answers *mockAnswerRepo) *mockPhotoRepo {
	return &mockPhotoRepo{photos: make(map[string]*secondary.PhotoRecord), answers: answers}
}

func (m *mockPhotoRepo) add(id, answerID, filePath string) {
	m.photos[id] = &secondary.PhotoRecord{ID: id, AnswerID: answerID, FilePath: filePath, CreatedAt: "2025-06-01T10:00:00Z"}
}

func (m *mockPhotoRepo) Create(ctx context.Context, record *secondary.PhotoRecord) error {
	cp := *record
	cp.CreatedAt = "2025-06-01T10:00:00Z"
	m.photos[record.ID] = &cp
	return nil
}

func (m *mockPhotoRepo) GetByID(ctx context.Context, id string) (*secondary.PhotoRecord, error) {
	record, ok := m.photos[id]
	if !ok {
		return nil, fmt.Errorf("photo %s not found", id)
	}
	return record, nil
}

func (m *mockPhotoRepo) ListByAnswer(ctx context.Context, answerID string) ([]*secondary.PhotoRecord, error) {
	var records []*secondary.PhotoRecord
	for _, record := range m.photos {
		if record.AnswerID == answerID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockPhotoRepo) ListByInspection(ctx context.Context, inspectionID string) ([]*secondary.PhotoRecord, error) {
	var records []*secondary.PhotoRecord
	for _, record := range m.photos {
		ans, ok := m.answers.answers[record.AnswerID]
		if ok && ans.InspectionID == inspectionID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records, nil
}

func (m *mockPhotoRepo) CountByAnswer(ctx context.Context, answerID string) (int, error) {
	records, _ := m.ListByAnswer(ctx, answerID)
	return len(records), nil
}

func (m *mockPhotoRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.photos[id]; !ok {
		return fmt.Errorf("photo %s not found", id)
	}
	delete(m.photos, id)
	return nil
}

func (m *mockPhotoRepo) GetNextID(ctx context.Context) (string, error) {
	m.nextID++
	return fmt.Sprintf("FOTO-%03d", m.nextID), nil
}

func (m *mockPhotoRepo) AnswerExists(ctx context.Context, answerID string) (bool, error) {
	_, ok := m.answers.answers[answerID]
	return ok, nil
}

var _ secondary.PhotoRepository = (*mockPhotoRepo)(nil)

// mockPhotoStore tracks imports and removals without touching disk.
type mockPhotoStore struct {
	files     map[string]bool
	removed   []string
	imports   int
	importErr error
}

func newMockPhotoStore() *mockPhotoStore {
	return &mockPhotoStore{files: make(map[string]bool)}
}

func (m *mockPhotoStore) Import(ctx context.Context, sourcePath string) (string, error) {
	if m.importErr != nil {
		return "", m.importErr
	}
	m.imports++
	path := fmt.Sprintf("/photos/stored-%03d.jpg", m.imports)
	m.files[path] = true
	return path, nil
}

func (m *mockPhotoStore) Remove(ctx context.Context, path string) error {
	delete(m.files, path)
	m.removed = append(m.removed, path)
	return nil
}

func (m *mockPhotoStore) Exists(ctx context.Context, path string) (bool, error) {
	return m.files[path], nil
}

var _ secondary.PhotoStore = (*mockPhotoStore)(nil)

// mockRenderer captures the documents handed to it.
type mockRenderer struct {
	history  *secondary.HistoryDocument
	findings *secondary.FindingsDocument
	paths    []string
}

func (m *mockRenderer) RenderHistory(doc *secondary.HistoryDocument, outputPath string) error {
	m.history = doc
	m.paths = append(m.paths, outputPath)
	return nil
}

func (m *mockRenderer) RenderFindings(doc *secondary.FindingsDocument, outputPath string) error {
	m.findings = doc
	m.paths = append(m.paths, outputPath)
	return nil
}

var _ secondary.ReportRenderer = (*mockRenderer)(nil)
