// Package wire provides dependency injection for the caexinspect application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	cliadapter "github.com/example/caexinspect/internal/adapters/cli"
	"github.com/example/caexinspect/internal/adapters/filesystem"
	"github.com/example/caexinspect/internal/adapters/pdf"
	"github.com/example/caexinspect/internal/adapters/sqlite"
	"github.com/example/caexinspect/internal/app"
	"github.com/example/caexinspect/internal/db"
	"github.com/example/caexinspect/internal/ports/primary"
)

var (
	equipmentService  primary.EquipmentService
	catalogService    primary.CatalogService
	inspectionService primary.InspectionService
	answerService     primary.AnswerService
	photoService      primary.PhotoService
	reportService     primary.ReportService
	once              sync.Once
)

// EquipmentService returns the singleton EquipmentService instance.
func EquipmentService() primary.EquipmentService {
	once.Do(initServices)
	return equipmentService
}

// CatalogService returns the singleton CatalogService instance.
func CatalogService() primary.CatalogService {
	once.Do(initServices)
	return catalogService
}

// InspectionService returns the singleton InspectionService instance.
func InspectionService() primary.InspectionService {
	once.Do(initServices)
	return inspectionService
}

// AnswerService returns the singleton AnswerService instance.
func AnswerService() primary.AnswerService {
	once.Do(initServices)
	return answerService
}

// PhotoService returns the singleton PhotoService instance.
func PhotoService() primary.PhotoService {
	once.Do(initServices)
	return photoService
}

// ReportService returns the singleton ReportService instance.
func ReportService() primary.ReportService {
	once.Do(initServices)
	return reportService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	photoDir, err := filesystem.DefaultPhotoDir()
	if err != nil {
		log.Fatalf("failed to resolve photo directory: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	equipmentRepo := sqlite.NewEquipmentRepository(database)
	catalogRepo := sqlite.NewCatalogRepository(database)
	inspectionRepo := sqlite.NewInspectionRepository(database)
	answerRepo := sqlite.NewAnswerRepository(database)
	photoRepo := sqlite.NewPhotoRepository(database)
	photoStore := filesystem.NewPhotoStore(photoDir)
	renderer := pdf.NewReportWriter()

	// Create services (primary ports implementation)
	equipmentService = app.NewEquipmentService(equipmentRepo, inspectionRepo, photoRepo, photoStore, logger)
	catalogService = app.NewCatalogService(catalogRepo)
	inspectionService = app.NewInspectionService(inspectionRepo, equipmentRepo, catalogRepo, answerRepo, photoRepo, photoStore, logger)
	answerService = app.NewAnswerService(answerRepo, inspectionRepo, equipmentRepo, catalogRepo, photoRepo, photoStore, logger)
	photoService = app.NewPhotoService(photoRepo, photoStore, logger)
	reportService = app.NewReportService(equipmentRepo, inspectionRepo, answerRepo, catalogRepo, renderer)
}

// EquipmentAdapter returns a new EquipmentAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func EquipmentAdapter() *cliadapter.EquipmentAdapter {
	return EquipmentAdapterWithOutput(os.Stdout)
}

// EquipmentAdapterWithOutput returns a new EquipmentAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func EquipmentAdapterWithOutput(out io.Writer) *cliadapter.EquipmentAdapter {
	once.Do(initServices)
	return cliadapter.NewEquipmentAdapter(equipmentService, out)
}

// ChecklistAdapter returns a new ChecklistAdapter writing to stdout.
func ChecklistAdapter() *cliadapter.ChecklistAdapter {
	return ChecklistAdapterWithOutput(os.Stdout)
}

// ChecklistAdapterWithOutput returns a new ChecklistAdapter writing to the given output.
func ChecklistAdapterWithOutput(out io.Writer) *cliadapter.ChecklistAdapter {
	once.Do(initServices)
	return cliadapter.NewChecklistAdapter(catalogService, out)
}

// InspectionAdapter returns a new InspectionAdapter writing to stdout.
func InspectionAdapter() *cliadapter.InspectionAdapter {
	return InspectionAdapterWithOutput(os.Stdout)
}

// InspectionAdapterWithOutput returns a new InspectionAdapter writing to the given output.
func InspectionAdapterWithOutput(out io.Writer) *cliadapter.InspectionAdapter {
	once.Do(initServices)
	return cliadapter.NewInspectionAdapter(inspectionService, out)
}

// AnswerAdapter returns a new AnswerAdapter writing to stdout.
func AnswerAdapter() *cliadapter.AnswerAdapter {
	return AnswerAdapterWithOutput(os.Stdout)
}

// AnswerAdapterWithOutput returns a new AnswerAdapter writing to the given output.
func AnswerAdapterWithOutput(out io.Writer) *cliadapter.AnswerAdapter {
	once.Do(initServices)
	return cliadapter.NewAnswerAdapter(answerService, out)
}

// PhotoAdapter returns a new PhotoAdapter writing to stdout.
func PhotoAdapter() *cliadapter.PhotoAdapter {
	return PhotoAdapterWithOutput(os.Stdout)
}

// PhotoAdapterWithOutput returns a new PhotoAdapter writing to the given output.
func PhotoAdapterWithOutput(out io.Writer) *cliadapter.PhotoAdapter {
	once.Do(initServices)
	return cliadapter.NewPhotoAdapter(photoService, out)
}

// ReportAdapter returns a new ReportAdapter writing to stdout.
func ReportAdapter() *cliadapter.ReportAdapter {
	return ReportAdapterWithOutput(os.Stdout)
}

// ReportAdapterWithOutput returns a new ReportAdapter writing to the given output.
func ReportAdapterWithOutput(out io.Writer) *cliadapter.ReportAdapter {
	once.Do(initServices)
	return cliadapter.NewReportAdapter(reportService, out)
}
