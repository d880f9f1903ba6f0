package app

import (
	"github.com/mexanik619/College-Placement-Website/internal/application"
	"github.com/mexanik619/College-Placement-Website/internal/company"
	"github.com/mexanik619/College-Placement-Website/internal/job"
	"github.com/mexanik619/College-Placement-Website/internal/student"

	"gorm.io/gorm"
)

// migrate creates the four entity tables, the referential-integrity
// constraints the error mappers key on, and the outbox table. The entities
// do not declare GORM associations, so the foreign keys are added by hand
// with stable names.
func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&student.Student{},
		&company.Company{},
		&job.JobPosting{},
		&application.Application{},
	); err != nil {
		return err
	}

	stmts := []string{
		`DO $$ BEGIN
			ALTER TABLE job_postings
				ADD CONSTRAINT fk_job_postings_company
				FOREIGN KEY (company_id) REFERENCES companies (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`DO $$ BEGIN
			ALTER TABLE applications
				ADD CONSTRAINT fk_applications_student
				FOREIGN KEY (student_id) REFERENCES students (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`DO $$ BEGIN
			ALTER TABLE applications
				ADD CONSTRAINT fk_applications_job
				FOREIGN KEY (job_id) REFERENCES job_postings (id);
		EXCEPTION WHEN duplicate_object THEN NULL; END $$;`,
		`CREATE TABLE IF NOT EXISTS outbox_events (
			id UUID PRIMARY KEY,
			request_id TEXT,
			aggregate_type TEXT NOT NULL,
			aggregate_id TEXT NOT NULL,
			event_type TEXT NOT NULL,
			topic TEXT NOT NULL,
			payload BYTEA NOT NULL,
			status TEXT NOT NULL,
			retry_count INT NOT NULL DEFAULT 0,
			error_message TEXT,
			next_retry_at TIMESTAMPTZ,
			processed_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
	}

	for _, stmt := range stmts {
		if err := gormDB.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
