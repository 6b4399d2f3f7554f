// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/caexinspect/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// setupSeededDB creates an in-memory database with schema and the shipped
// question catalog.
func setupSeededDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB := setupTestDB(t)
	if err := db.SeedCatalogInto(testDB); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	return testDB
}

// seedEquipment inserts a test CAEX and returns its ID.
func seedEquipment(t *testing.T, db *sql.DB, id string, number int, model string) string {
	t.Helper()
	if id == "" {
		id = "CAEX-301"
	}
	if number == 0 {
		number = 301
	}
	if model == "" {
		model = "797F"
	}
	_, err := db.Exec("INSERT INTO equipment (id, number, model) VALUES (?, ?, ?)", id, number, model)
	if err != nil {
		t.Fatalf("failed to seed equipment: %v", err)
	}
	return id
}

// seedInspection inserts a test inspection and returns its ID.
func seedInspection(t *testing.T, db *sql.DB, id, equipmentID, kind string) string {
	t.Helper()
	if id == "" {
		id = "INSP-001"
	}
	if equipmentID == "" {
		equipmentID = "CAEX-301"
	}
	if kind == "" {
		kind = "RECEPCION"
	}
	_, err := db.Exec(
		"INSERT INTO inspections (id, equipment_id, kind, status, inspector, supervisor) VALUES (?, ?, ?, 'ABIERTA', 'Test Inspector', 'Test Supervisor')",
		id, equipmentID, kind,
	)
	if err != nil {
		t.Fatalf("failed to seed inspection: %v", err)
	}
	return id
}

// seedCategory inserts a test category and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name string, order int, scope string) string {
	t.Helper()
	if id == "" {
		id = "CAT-001"
	}
	if name == "" {
		name = "Test Category"
	}
	if order == 0 {
		order = 1
	}
	if scope == "" {
		scope = "TODOS"
	}
	_, err := db.Exec("INSERT INTO categories (id, name, display_order, model_scope) VALUES (?, ?, ?, ?)", id, name, order, scope)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}

// seedQuestion inserts a test question and returns its ID.
func seedQuestion(t *testing.T, db *sql.DB, id, categoryID, text string, order int, scope string) string {
	t.Helper()
	if id == "" {
		id = "Q-001"
	}
	if categoryID == "" {
		categoryID = "CAT-001"
	}
	if text == "" {
		text = "Test question"
	}
	if order == 0 {
		order = 1
	}
	if scope == "" {
		scope = "TODOS"
	}
	_, err := db.Exec("INSERT INTO questions (id, category_id, text, display_order, model_scope) VALUES (?, ?, ?, ?, ?)", id, categoryID, text, order, scope)
	if err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	return id
}

// seedAnswer inserts a test answer and returns its ID.
func seedAnswer(t *testing.T, db *sql.DB, id, inspectionID, questionID, status string) string {
	t.Helper()
	if id == "" {
		id = "ANS-001"
	}
	if inspectionID == "" {
		inspectionID = "INSP-001"
	}
	if questionID == "" {
		questionID = "Q-001"
	}
	if status == "" {
		status = "CONFORME"
	}
	_, err := db.Exec("INSERT INTO answers (id, inspection_id, question_id, status) VALUES (?, ?, ?, ?)", id, inspectionID, questionID, status)
	if err != nil {
		t.Fatalf("failed to seed answer: %v", err)
	}
	return id
}

// seedPhoto inserts a test photo and returns its ID.
func seedPhoto(t *testing.T, db *sql.DB, id, answerID, filePath string) string {
	t.Helper()
	if id == "" {
		id = "FOTO-001"
	}
	if answerID == "" {
		answerID = "ANS-001"
	}
	if filePath == "" {
		filePath = "/tmp/test-photo.jpg"
	}
	_, err := db.Exec("INSERT INTO photos (id, answer_id, file_path) VALUES (?, ?, ?)", id, answerID, filePath)
	if err != nil {
		t.Fatalf("failed to seed photo: %v", err)
	}
	return id
}
