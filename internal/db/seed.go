package db

import (
	"database/sql"
	"fmt"
)

type seedCategory struct {
	id    string
	name  string
	order int
	scope string
}

type seedQuestion struct {
	id         string
	categoryID string
	text       string
	order      int
	scope      string
}

// seedCategories is the checklist catalog shipped with the application.
// The electrical system section only applies to the 798AC.
var seedCategories = []seedCategory{
	{"CAT-001", "Condiciones Generales", 1, "TODOS"},
	{"CAT-002", "Cabina Operador", 2, "TODOS"},
	{"CAT-003", "Sistema de Dirección", 3, "TODOS"},
	{"CAT-004", "Sistema de frenos", 4, "TODOS"},
	{"CAT-005", "Motor Diesel", 5, "TODOS"},
	{"CAT-006", "Suspensiones delanteras", 6, "TODOS"},
	{"CAT-007", "Suspensiones traseras", 7, "TODOS"},
	{"CAT-008", "Sistema estructural", 8, "TODOS"},
	{"CAT-009", "Sistema eléctrico", 9, "798AC"},
}

var seedQuestions = []seedQuestion{
	// Condiciones Generales
	{"Q-001", "CAT-001", "Extintores contra incendio habilitados en plataforma cabina operador y con inspección al día", 1, "TODOS"},
	{"Q-002", "CAT-001", "Pulsador parada de emergencia en buen estado", 2, "TODOS"},
	{"Q-003", "CAT-001", "Verificar desgaste excesivo y falta de pernos del aro.", 3, "TODOS"},
	{"Q-004", "CAT-001", "Inspección visual y al dia del sistema AFEX / ANSUR", 4, "TODOS"},
	{"Q-005", "CAT-001", "Pasadores de tolva", 5, "TODOS"},
	{"Q-006", "CAT-001", "Fugas sistemas hidraulicos puntos calientes (Motor)", 6, "TODOS"},
	{"Q-007", "CAT-001", "Números de identificación caex instalados (frontal, trasero)", 7, "TODOS"},
	{"Q-008", "CAT-001", "Estanque de combustible sin fugas", 8, "TODOS"},
	{"Q-009", "CAT-001", "Estanque de aceite hidráulico sin fugas", 9, "TODOS"},
	{"Q-010", "CAT-001", "Sistema engrese llega a todos los puntos", 10, "TODOS"},
	{"Q-011", "CAT-001", "Tren de bombas sistema hidráulico sin fugas", 11, "798AC"},

	// Cabina Operador
	{"Q-012", "CAT-002", "Panel de alarmas en buen estado", 1, "TODOS"},
	{"Q-013", "CAT-002", "Asiento operador y de copiloto en buen estado (chequear cinturon de seguridad en ambos asientos, apoya brazos, riel de desplazamiento, pulmón de aire)", 2, "TODOS"},
	{"Q-014", "CAT-002", "Espejos en buen estado, sin rayaduras", 3, "TODOS"},
	{"Q-015", "CAT-002", "Revisar bitacora del equipo (dejar registro)", 4, "TODOS"},
	{"Q-016", "CAT-002", "Radio musical y parlantes en buen estado", 5, "TODOS"},
	{"Q-017", "CAT-002", "Testigo indicador virage funcionando (intermitente)", 6, "TODOS"},
	{"Q-018", "CAT-002", "Funcionamiento bocina", 7, "TODOS"},
	{"Q-019", "CAT-002", "Funcionamiento limpia parabrisas", 8, "TODOS"},
	{"Q-020", "CAT-002", "Funcionamiento alza vidrios", 9, "TODOS"},
	{"Q-021", "CAT-002", "Funcionamiento de A/C", 10, "TODOS"},
	{"Q-022", "CAT-002", "Parasol en buen estado", 11, "TODOS"},

	// Sistema de Dirección
	{"Q-023", "CAT-003", "Barra de dirección en buen estado", 1, "TODOS"},
	{"Q-024", "CAT-003", "Estado de acumuladores", 2, "798AC"},
	{"Q-025", "CAT-003", "Fugas de aceite por bombas/cañerías / mangueras / conectores", 3, "TODOS"},
	{"Q-026", "CAT-003", "Cilindros de dirección sin fugas de aceite / sin daños", 4, "797F"},

	// Sistema de frenos
	{"Q-027", "CAT-004", "Fugas de aceite por cañerías / mangueras / conectores", 1, "TODOS"},
	{"Q-028", "CAT-004", "Gabinete hidráulico sin fugas de aceite", 2, "TODOS"},

	// Motor Diesel
	{"Q-029", "CAT-005", "Fugas de aceite por cañerías / mangueras / conectores", 1, "TODOS"},
	{"Q-030", "CAT-005", "Fugas de combustibles por cañerías / mangueras / turbos / carter", 2, "TODOS"},
	{"Q-031", "CAT-005", "Fugas de refrigerante", 3, "TODOS"},
	{"Q-032", "CAT-005", "Mangueras con roce y/o sueltas", 4, "TODOS"},
	{"Q-033", "CAT-005", "Cables eléctricos sin roce y ruteados bajo estándar", 5, "TODOS"},
	{"Q-034", "CAT-005", "Boquillas sistema AFEX bien direccionadas", 6, "797F"},

	// Suspensiones delanteras
	{"Q-035", "CAT-006", "Estado de sello protector vástago (altura susp.)", 1, "TODOS"},
	{"Q-036", "CAT-006", "Fugas de aceite o grasa", 2, "TODOS"},

	// Suspensiones traseras
	{"Q-037", "CAT-007", "Suspensión izquierda con pasador despalzado", 1, "TODOS"},
	{"Q-038", "CAT-007", "Suspensión derecha con pasador desplazado", 2, "TODOS"},
	{"Q-039", "CAT-007", "Articulaciones lubricadas", 3, "TODOS"},

	// Sistema estructural
	{"Q-040", "CAT-008", "Baranda o cadena acceso a escalas emergencia.", 1, "TODOS"},
	{"Q-041", "CAT-008", "Barandas plataforma cabina operador", 2, "TODOS"},
	{"Q-042", "CAT-008", "Barandas escalera de acceso", 3, "TODOS"},
	{"Q-043", "CAT-008", "Escalera de acceso flotante", 4, "TODOS"},

	// Sistema eléctrico (798AC only)
	{"Q-044", "CAT-009", "Alternador sin fugas o cantaminantes", 1, "798AC"},
	{"Q-045", "CAT-009", "Ducto de ventilación sistema enfriamiento  buen estado", 2, "798AC"},
	{"Q-046", "CAT-009", "Gabinetes convertidora con candado", 3, "798AC"},
	{"Q-047", "CAT-009", "Estado sistema de parriillas", 4, "798AC"},
}

// SeedCatalog populates the category/question catalog on first run.
// It is idempotent: once questions exist the catalog is left untouched.
func SeedCatalog() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}
	return SeedCatalogInto(db)
}

// SeedCatalogInto seeds the catalog into the given connection.
// Exposed so tests can seed in-memory databases.
func SeedCatalogInto(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	// OR IGNORE lets a store with categories but no questions reseed cleanly
	for _, c := range seedCategories {
		_, err := tx.Exec(
			"INSERT OR IGNORE INTO categories (id, name, display_order, model_scope) VALUES (?, ?, ?, ?)",
			c.id, c.name, c.order, c.scope,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.id, err)
		}
	}

	for _, q := range seedQuestions {
		_, err := tx.Exec(
			"INSERT INTO questions (id, category_id, text, display_order, model_scope) VALUES (?, ?, ?, ?, ?)",
			q.id, q.categoryID, q.text, q.order, q.scope,
		)
		if err != nil {
			return fmt.Errorf("failed to seed question %s: %w", q.id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	return nil
}
