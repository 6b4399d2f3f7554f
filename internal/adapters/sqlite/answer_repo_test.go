package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/example/caexinspect/internal/adapters/sqlite"
	"github.com/example/caexinspect/internal/ports/secondary"
)

func setupAnswerFixture(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupSeededDB(t)
	seedEquipment(t, testDB, "", 0, "")
	seedInspection(t, testDB, "", "", "")
	return testDB
}

func TestAnswerRepository_UpsertInserts(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	id, err := repo.Upsert(ctx, &secondary.AnswerRecord{
		ID:           "ANS-001",
		InspectionID: "INSP-001",
		QuestionID:   "Q-001",
		Status:       "CONFORME",
	})
	if err != nil {
		t.Fatalf("failed to upsert answer: %v", err)
	}
	if id != "ANS-001" {
		t.Errorf("expected ANS-001, got %s", id)
	}

	got, err := repo.GetByID(ctx, "ANS-001")
	if err != nil {
		t.Fatalf("failed to get answer: %v", err)
	}
	if got.Status != "CONFORME" {
		t.Errorf("expected CONFORME, got %s", got.Status)
	}
}

func TestAnswerRepository_UpsertOverwrites(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	seedAnswer(t, testDB, "ANS-001", "", "Q-001", "CONFORME")

	id, err := repo.Upsert(ctx, &secondary.AnswerRecord{
		ID:           "ANS-002",
		InspectionID: "INSP-001",
		QuestionID:   "Q-001",
		Status:       "NO_CONFORME",
		Comments:     "fuga visible en conector",
		Remediation:  "INMEDIATO",
	})
	if err != nil {
		t.Fatalf("failed to upsert answer: %v", err)
	}
	if id != "ANS-001" {
		t.Errorf("expected surviving row ANS-001, got %s", id)
	}

	var count int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM answers").Scan(&count); err != nil {
		t.Fatalf("failed to count answers: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 answer row, got %d", count)
	}

	got, err := repo.GetByID(ctx, "ANS-001")
	if err != nil {
		t.Fatalf("failed to get answer: %v", err)
	}
	if got.Status != "NO_CONFORME" || got.Remediation != "INMEDIATO" {
		t.Errorf("expected overwrite in place, got %+v", got)
	}
	if got.Comments != "fuga visible en conector" {
		t.Errorf("expected comments to be stored, got %q", got.Comments)
	}
}

func TestAnswerRepository_GetByInspectionAndQuestion(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	seedAnswer(t, testDB, "", "", "", "")

	got, err := repo.GetByInspectionAndQuestion(ctx, "INSP-001", "Q-001")
	if err != nil {
		t.Fatalf("failed to get answer: %v", err)
	}
	if got == nil || got.ID != "ANS-001" {
		t.Fatalf("expected ANS-001, got %+v", got)
	}

	unanswered, err := repo.GetByInspectionAndQuestion(ctx, "INSP-001", "Q-002")
	if err != nil {
		t.Fatalf("unexpected error for unanswered question: %v", err)
	}
	if unanswered != nil {
		t.Errorf("expected nil for unanswered question, got %+v", unanswered)
	}
}

func TestAnswerRepository_ListDetailed(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	// Q-012 is in Cabina Operador (category 2), Q-001 in Condiciones Generales (category 1)
	seedAnswer(t, testDB, "ANS-001", "", "Q-012", "CONFORME")
	seedAnswer(t, testDB, "ANS-002", "", "Q-001", "NO_CONFORME")
	seedPhoto(t, testDB, "FOTO-001", "ANS-002", "")
	seedPhoto(t, testDB, "FOTO-002", "ANS-002", "")

	details, err := repo.ListDetailed(ctx, "INSP-001", "")
	if err != nil {
		t.Fatalf("failed to list details: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].Answer.QuestionID != "Q-001" {
		t.Errorf("expected catalog order, got %s first", details[0].Answer.QuestionID)
	}
	if details[0].PhotoCount != 2 {
		t.Errorf("expected 2 photos on first detail, got %d", details[0].PhotoCount)
	}
	if details[0].CategoryName != "Condiciones Generales" {
		t.Errorf("unexpected category: %s", details[0].CategoryName)
	}

	fails, err := repo.ListDetailed(ctx, "INSP-001", "NO_CONFORME")
	if err != nil {
		t.Fatalf("failed to list fails: %v", err)
	}
	if len(fails) != 1 || fails[0].Answer.ID != "ANS-002" {
		t.Errorf("expected only ANS-002, got %+v", fails)
	}
}

func TestAnswerRepository_Counts(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	seedAnswer(t, testDB, "ANS-001", "", "Q-001", "CONFORME")
	seedAnswer(t, testDB, "ANS-002", "", "Q-002", "NO_CONFORME")
	seedAnswer(t, testDB, "ANS-003", "", "Q-003", "CONFORME")

	total, err := repo.CountByInspection(ctx, "INSP-001")
	if err != nil {
		t.Fatalf("failed to count answers: %v", err)
	}
	if total != 3 {
		t.Errorf("expected 3 answers, got %d", total)
	}

	fails, err := repo.CountByInspectionAndStatus(ctx, "INSP-001", "NO_CONFORME")
	if err != nil {
		t.Fatalf("failed to count fails: %v", err)
	}
	if fails != 1 {
		t.Errorf("expected 1 fail, got %d", fails)
	}
}

func TestAnswerRepository_ListIncompleteFails(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	// Complete fail: comments, remediation and ticket reference
	_, err := testDB.Exec(
		"INSERT INTO answers (id, inspection_id, question_id, status, comments, remediation, ticket_ref) VALUES ('ANS-001', 'INSP-001', 'Q-001', 'NO_CONFORME', 'daño visible', 'INMEDIATO', 'AV-10001')",
	)
	if err != nil {
		t.Fatalf("failed to seed answer: %v", err)
	}
	// Incomplete fail: no comments
	seedAnswer(t, testDB, "ANS-002", "", "Q-002", "NO_CONFORME")
	// Incomplete fail: scheduled without ticket
	_, err = testDB.Exec(
		"INSERT INTO answers (id, inspection_id, question_id, status, comments, remediation) VALUES ('ANS-003', 'INSP-001', 'Q-003', 'NO_CONFORME', 'desgaste', 'PROGRAMADO')",
	)
	if err != nil {
		t.Fatalf("failed to seed answer: %v", err)
	}
	// Pass answers never count
	seedAnswer(t, testDB, "ANS-004", "", "Q-004", "CONFORME")

	incomplete, err := repo.ListIncompleteFails(ctx, "INSP-001")
	if err != nil {
		t.Fatalf("failed to list incomplete fails: %v", err)
	}
	if len(incomplete) != 2 {
		t.Fatalf("expected 2 incomplete fails, got %d: %v", len(incomplete), incomplete)
	}
}

func TestAnswerRepository_GetNextID(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("failed to get next ID: %v", err)
	}
	if id != "ANS-001" {
		t.Errorf("expected ANS-001, got %s", id)
	}

	seedAnswer(t, testDB, "ANS-041", "", "", "")

	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("failed to get next ID: %v", err)
	}
	if id != "ANS-042" {
		t.Errorf("expected ANS-042, got %s", id)
	}
}

func TestAnswerRepository_DeleteCascadesPhotos(t *testing.T) {
	testDB := setupAnswerFixture(t)
	repo := sqlite.NewAnswerRepository(testDB)
	ctx := context.Background()

	seedAnswer(t, testDB, "", "", "", "")
	seedPhoto(t, testDB, "", "", "")

	if err := repo.Delete(ctx, "ANS-001"); err != nil {
		t.Fatalf("failed to delete answer: %v", err)
	}

	var photos int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM photos").Scan(&photos); err != nil {
		t.Fatalf("failed to count photos: %v", err)
	}
	if photos != 0 {
		t.Errorf("expected photo rows to cascade, got %d", photos)
	}
}
