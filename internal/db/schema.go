package db

// SchemaSQL is the complete modern schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(): if repository code references a column that
// doesn't exist here, tests fail immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Equipment (CAEX haul trucks)
CREATE TABLE IF NOT EXISTS equipment (
	id TEXT PRIMARY KEY,
	number INTEGER NOT NULL UNIQUE,
	model TEXT NOT NULL CHECK(model IN ('797F', '798AC')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Categories (checklist sections, seeded reference data)
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	display_order INTEGER NOT NULL,
	model_scope TEXT NOT NULL CHECK(model_scope IN ('797F', '798AC', 'TODOS')) DEFAULT 'TODOS'
);

-- Questions (checklist items, seeded reference data)
CREATE TABLE IF NOT EXISTS questions (
	id TEXT PRIMARY KEY,
	category_id TEXT NOT NULL,
	text TEXT NOT NULL,
	display_order INTEGER NOT NULL,
	model_scope TEXT NOT NULL CHECK(model_scope IN ('797F', '798AC', 'TODOS')) DEFAULT 'TODOS',
	FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);

-- Inspections (one workshop intake or release per session)
CREATE TABLE IF NOT EXISTS inspections (
	id TEXT PRIMARY KEY,
	equipment_id TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('RECEPCION', 'ENTREGA')),
	status TEXT NOT NULL CHECK(status IN ('ABIERTA', 'CERRADA')) DEFAULT 'ABIERTA',
	inspector TEXT NOT NULL,
	supervisor TEXT NOT NULL,
	intake_id TEXT,
	remarks TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	closed_at DATETIME,
	FOREIGN KEY (equipment_id) REFERENCES equipment(id) ON DELETE CASCADE ON UPDATE CASCADE,
	FOREIGN KEY (intake_id) REFERENCES inspections(id) ON DELETE SET NULL
);

-- Answers (one per inspection/question pair)
CREATE TABLE IF NOT EXISTS answers (
	id TEXT PRIMARY KEY,
	inspection_id TEXT NOT NULL,
	question_id TEXT NOT NULL,
	status TEXT NOT NULL CHECK(status IN ('CONFORME', 'NO_CONFORME')),
	comments TEXT,
	remediation TEXT CHECK(remediation IN ('INMEDIATO', 'PROGRAMADO')),
	ticket_ref TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (inspection_id) REFERENCES inspections(id) ON DELETE CASCADE,
	FOREIGN KEY (question_id) REFERENCES questions(id),
	UNIQUE(inspection_id, question_id)
);

-- Photos (evidence rows; bytes live under the managed photo directory)
CREATE TABLE IF NOT EXISTS photos (
	id TEXT PRIMARY KEY,
	answer_id TEXT NOT NULL,
	file_path TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (answer_id) REFERENCES answers(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category_id);
CREATE INDEX IF NOT EXISTS idx_questions_scope ON questions(model_scope);
CREATE INDEX IF NOT EXISTS idx_inspections_equipment ON inspections(equipment_id);
CREATE INDEX IF NOT EXISTS idx_inspections_status ON inspections(status);
CREATE INDEX IF NOT EXISTS idx_inspections_created ON inspections(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_answers_inspection ON answers(inspection_id);
CREATE INDEX IF NOT EXISTS idx_answers_status ON answers(inspection_id, status);
CREATE INDEX IF NOT EXISTS idx_photos_answer ON photos(answer_id);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create modern schema directly and mark
		// all migrations as applied so they never run
		_, err = db.Exec(SchemaSQL)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for i := 1; i <= len(migrations); i++ {
			_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", i)
			if err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
