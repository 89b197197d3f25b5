package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPerumahanRepositoryForTest creates a perumahan repository with test database and logger
func NewPerumahanRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PerumahanRepository {
	return postgres.NewPerumahanRepository(NewDBForTest(db, logger))
}

// NewEventLogRepositoryForTest creates an event log repository with test database and logger
func NewEventLogRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EventLogRepository {
	return postgres.NewEventLogRepository(NewDBForTest(db, logger))
}
