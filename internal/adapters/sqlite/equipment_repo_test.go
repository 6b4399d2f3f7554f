package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/caexinspect/internal/adapters/sqlite"
	"github.com/example/caexinspect/internal/ports/secondary"
)

func TestEquipmentRepository_CreateAndGet(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	record := &secondary.EquipmentRecord{ID: "CAEX-305", Number: 305, Model: "797F"}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("failed to create equipment: %v", err)
	}

	got, err := repo.GetByID(ctx, "CAEX-305")
	if err != nil {
		t.Fatalf("failed to get equipment: %v", err)
	}
	if got.Number != 305 {
		t.Errorf("expected number 305, got %d", got.Number)
	}
	if got.Model != "797F" {
		t.Errorf("expected model 797F, got %s", got.Model)
	}
	if got.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}
}

func TestEquipmentRepository_GetByNumber(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	seedEquipment(t, testDB, "CAEX-341", 341, "798AC")

	got, err := repo.GetByNumber(ctx, 341)
	if err != nil {
		t.Fatalf("failed to get equipment by number: %v", err)
	}
	if got == nil || got.ID != "CAEX-341" {
		t.Fatalf("expected CAEX-341, got %+v", got)
	}

	missing, err := repo.GetByNumber(ctx, 999)
	if err != nil {
		t.Fatalf("unexpected error for missing number: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unregistered number, got %+v", missing)
	}
}

func TestEquipmentRepository_NumberExists(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	seedEquipment(t, testDB, "", 0, "")

	exists, err := repo.NumberExists(ctx, 301)
	if err != nil {
		t.Fatalf("failed to check number: %v", err)
	}
	if !exists {
		t.Error("expected number 301 to exist")
	}

	exists, err = repo.NumberExists(ctx, 340)
	if err != nil {
		t.Fatalf("failed to check number: %v", err)
	}
	if exists {
		t.Error("expected number 340 not to exist")
	}
}

func TestEquipmentRepository_ListFiltersByModel(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	seedEquipment(t, testDB, "CAEX-301", 301, "797F")
	seedEquipment(t, testDB, "CAEX-340", 340, "798AC")
	seedEquipment(t, testDB, "CAEX-302", 302, "797F")

	all, err := repo.List(ctx, secondary.EquipmentFilters{})
	if err != nil {
		t.Fatalf("failed to list equipment: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 units, got %d", len(all))
	}
	if all[0].Number != 301 || all[1].Number != 302 {
		t.Error("expected list ordered by number")
	}

	only798, err := repo.List(ctx, secondary.EquipmentFilters{Model: "798AC"})
	if err != nil {
		t.Fatalf("failed to list filtered equipment: %v", err)
	}
	if len(only798) != 1 || only798[0].ID != "CAEX-340" {
		t.Errorf("expected only CAEX-340, got %+v", only798)
	}
}

func TestEquipmentRepository_UpdateRenamesID(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	seedEquipment(t, testDB, "CAEX-301", 301, "797F")
	seedInspection(t, testDB, "INSP-001", "CAEX-301", "")

	err := repo.Update(ctx, &secondary.EquipmentRecord{ID: "CAEX-301", Number: 305, Model: "797F"})
	if err != nil {
		t.Fatalf("failed to update equipment: %v", err)
	}

	got, err := repo.GetByID(ctx, "CAEX-305")
	if err != nil {
		t.Fatalf("expected renamed equipment: %v", err)
	}
	if got.Number != 305 {
		t.Errorf("expected number 305, got %d", got.Number)
	}

	// The inspection FK follows the rename
	var equipmentID string
	err = testDB.QueryRow("SELECT equipment_id FROM inspections WHERE id = 'INSP-001'").Scan(&equipmentID)
	if err != nil {
		t.Fatalf("failed to read inspection: %v", err)
	}
	if equipmentID != "CAEX-305" {
		t.Errorf("expected inspection to follow rename, got %s", equipmentID)
	}
}

func TestEquipmentRepository_DeleteCascades(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewEquipmentRepository(testDB)
	ctx := context.Background()

	seedEquipment(t, testDB, "", 0, "")
	seedInspection(t, testDB, "", "", "")

	if err := repo.Delete(ctx, "CAEX-301"); err != nil {
		t.Fatalf("failed to delete equipment: %v", err)
	}

	var count int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM inspections").Scan(&count); err != nil {
		t.Fatalf("failed to count inspections: %v", err)
	}
	if count != 0 {
		t.Errorf("expected inspections to cascade, got %d rows", count)
	}

	if err := repo.Delete(ctx, "CAEX-301"); err == nil {
		t.Error("expected error deleting missing equipment")
	}
}
