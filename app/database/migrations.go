package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it is not there yet.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			class TEXT NOT NULL,
			roll_number TEXT NOT NULL,
			parent_name TEXT NOT NULL DEFAULT '',
			parent_phone TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			date_of_birth TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (class, roll_number)
		)`,
		`CREATE TABLE IF NOT EXISTS fee_components (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			class TEXT NOT NULL,
			amount BIGINT NOT NULL CHECK (amount > 0),
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (class, name)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id),
			fee_component_id BIGINT REFERENCES fee_components(id),
			amount BIGINT NOT NULL CHECK (amount > 0),
			payment_method VARCHAR(20) NOT NULL,
			payment_date DATE NOT NULL,
			academic_year TEXT NOT NULL,
			receipt_number TEXT NOT NULL,
			transaction_ref TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_receipt_number ON payments(receipt_number)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	log.Println("Migrations completed")
	return nil
}
