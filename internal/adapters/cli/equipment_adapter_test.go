package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/caexinspect/internal/ports/primary"
)

// mockEquipmentService implements primary.EquipmentService for testing
type mockEquipmentService struct {
	registerFn    func(ctx context.Context, req primary.RegisterEquipmentRequest) (*primary.RegisterEquipmentResponse, error)
	listFn        func(ctx context.Context, filters primary.EquipmentFilters) ([]*primary.Equipment, error)
	getFn         func(ctx context.Context, equipmentID string) (*primary.Equipment, error)
	getByNumberFn func(ctx context.Context, number int) (*primary.Equipment, error)
	updateFn      func(ctx context.Context, req primary.UpdateEquipmentRequest) error
	deleteFn      func(ctx context.Context, equipmentID string) error

	// Track calls for verification
	lastRegisterReq primary.RegisterEquipmentRequest
	lastUpdateReq   primary.UpdateEquipmentRequest
}

func (m *mockEquipmentService) RegisterEquipment(ctx context.Context, req primary.RegisterEquipmentRequest) (*primary.RegisterEquipmentResponse, error) {
	m.lastRegisterReq = req
	if m.registerFn != nil {
		return m.registerFn(ctx, req)
	}
	return &primary.RegisterEquipmentResponse{
		EquipmentID: "CAEX-301",
		Equipment:   &primary.Equipment{ID: "CAEX-301", Number: req.Number, Model: req.Model},
	}, nil
}

func (m *mockEquipmentService) GetEquipment(ctx context.Context, equipmentID string) (*primary.Equipment, error) {
	if m.getFn != nil {
		return m.getFn(ctx, equipmentID)
	}
	return &primary.Equipment{ID: equipmentID, Number: 301, Model: "797F", CreatedAt: "2025-06-01T10:00:00Z"}, nil
}

func (m *mockEquipmentService) GetEquipmentByNumber(ctx context.Context, number int) (*primary.Equipment, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(ctx, number)
	}
	return &primary.Equipment{ID: "CAEX-301", Number: number, Model: "797F"}, nil
}

func (m *mockEquipmentService) ListEquipment(ctx context.Context, filters primary.EquipmentFilters) ([]*primary.Equipment, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filters)
	}
	return []*primary.Equipment{}, nil
}

func (m *mockEquipmentService) UpdateEquipment(ctx context.Context, req primary.UpdateEquipmentRequest) error {
	m.lastUpdateReq = req
	if m.updateFn != nil {
		return m.updateFn(ctx, req)
	}
	return nil
}

func (m *mockEquipmentService) DeleteEquipment(ctx context.Context, equipmentID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, equipmentID)
	}
	return nil
}

func TestEquipmentAdapterRegister(t *testing.T) {
	svc := &mockEquipmentService{}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	err := adapter.Register(context.Background(), 301, "797F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if svc.lastRegisterReq.Number != 301 || svc.lastRegisterReq.Model != "797F" {
		t.Errorf("unexpected request: %+v", svc.lastRegisterReq)
	}
	if !strings.Contains(buf.String(), "CAEX-301") {
		t.Errorf("output missing equipment ID: %s", buf.String())
	}
}

func TestEquipmentAdapterRegisterError(t *testing.T) {
	svc := &mockEquipmentService{
		registerFn: func(ctx context.Context, req primary.RegisterEquipmentRequest) (*primary.RegisterEquipmentResponse, error) {
			return nil, errors.New("a CAEX with fleet number 301 already exists")
		},
	}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	err := adapter.Register(context.Background(), 301, "797F")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on error, got: %s", buf.String())
	}
}

func TestEquipmentAdapterListEmpty(t *testing.T) {
	svc := &mockEquipmentService{}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	if err := adapter.List(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No equipment registered") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestEquipmentAdapterList(t *testing.T) {
	svc := &mockEquipmentService{
		listFn: func(ctx context.Context, filters primary.EquipmentFilters) ([]*primary.Equipment, error) {
			return []*primary.Equipment{
				{ID: "CAEX-301", Number: 301, Model: "797F", CreatedAt: "2025-06-01T10:00:00Z"},
				{ID: "CAEX-340", Number: 340, Model: "798AC", CreatedAt: "2025-06-02T10:00:00Z"},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	if err := adapter.List(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "CAEX-301") || !strings.Contains(out, "CAEX-340") {
		t.Errorf("output missing units: %s", out)
	}
	if !strings.Contains(out, "MODEL") {
		t.Errorf("output missing header: %s", out)
	}
}

func TestEquipmentAdapterUpdateRequiresFlags(t *testing.T) {
	svc := &mockEquipmentService{}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	err := adapter.Update(context.Background(), "CAEX-301", 0, "")
	if err == nil {
		t.Fatal("expected error for empty update, got nil")
	}
}

func TestEquipmentAdapterDelete(t *testing.T) {
	svc := &mockEquipmentService{}
	var buf bytes.Buffer
	adapter := NewEquipmentAdapter(svc, &buf)

	if err := adapter.Delete(context.Background(), "CAEX-301"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Deleted CAEX-301") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
