package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/repository/postgres/testhelpers"
)

type EventLogRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.EventLogRepository
	ctx    context.Context
}

func TestEventLogRepositorySuite(t *testing.T) {
	suite.Run(t, new(EventLogRepositoryTestSuite))
}

func (s *EventLogRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	db := testhelpers.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	_, err := db.ApplyMigrations(context.Background(), "../../../migrations")
	s.Require().NoError(err, "Failed to apply migrations")

	s.repo = testhelpers.NewEventLogRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *EventLogRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *EventLogRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
}

func event(t domain.EventType, perumahanID int64, at time.Time) *domain.PerumahanEvent {
	return &domain.PerumahanEvent{
		ID:          uuid.New(),
		Type:        t,
		PerumahanID: perumahanID,
		Slug:        "green-valley",
		Status:      domain.StatusAvailable,
		OccurredAt:  at,
	}
}

func (s *EventLogRepositoryTestSuite) TestAppendAndList() {
	base := time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC)
	created := event(domain.EventCreated, 1, base)
	updated := event(domain.EventUpdated, 1, base.Add(time.Hour))
	other := event(domain.EventCreated, 2, base)

	s.Require().NoError(s.repo.Append(s.ctx, created, "1-0"))
	s.Require().NoError(s.repo.Append(s.ctx, updated, "2-0"))
	s.Require().NoError(s.repo.Append(s.ctx, other, "3-0"))

	records, err := s.repo.ListByPerumahan(s.ctx, 1, 10)

	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(updated.ID, records[0].ID)
	s.Equal(domain.EventUpdated, records[0].Type)
	s.Equal("2-0", records[0].StreamID)
	s.Equal(created.ID, records[1].ID)
	s.False(records[1].RecordedAt.IsZero())
}

func (s *EventLogRepositoryTestSuite) TestAppend_Idempotent() {
	ev := event(domain.EventDeleted, 1, time.Now().UTC())

	s.Require().NoError(s.repo.Append(s.ctx, ev, "1-0"))
	s.Require().NoError(s.repo.Append(s.ctx, ev, "1-0"))

	records, err := s.repo.ListByPerumahan(s.ctx, 1, 10)
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *EventLogRepositoryTestSuite) TestList_Limit() {
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Append(s.ctx, event(domain.EventUpdated, 1, base.Add(time.Duration(i)*time.Minute)), ""))
	}

	records, err := s.repo.ListByPerumahan(s.ctx, 1, 3)
	s.Require().NoError(err)
	s.Len(records, 3)
}
