package campaign

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwork/mwork-ads/internal/pkg/apperror"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestDeleteCascadesChildRowsInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT media_key FROM advertisements").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"media_key"}).
			AddRow("ads/a.jpg").
			AddRow("ads/b.mp4"))
	mock.ExpectExec("DELETE FROM campaign_performances").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM advertisements").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM campaign_skill_categories").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM campaigns").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	keys, err := repo.Delete(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(keys) != 2 || keys[0] != "ads/a.jpg" || keys[1] != "ads/b.mp4" {
		t.Fatalf("expected media keys of deleted creatives, got %v", keys)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("child rows must go before the campaign row, inside the tx: %v", err)
	}
}

func TestDeleteMissingCampaignRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT media_key FROM advertisements").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"media_key"}))
	mock.ExpectExec("DELETE FROM campaign_performances").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM advertisements").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM campaign_skill_categories").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM campaigns").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Delete(context.Background(), id)
	if !apperror.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("missing campaign must roll the transaction back: %v", err)
	}
}

func TestUpdateBindsEntityTimestamp(t *testing.T) {
	repo, mock := newMockRepo(t)
	c := &Campaign{
		ID:        uuid.New(),
		Title:     "Summer promo",
		Budget:    1500,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 6, 15, 12, 30, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE campaigns").
		WithArgs(c.ID, c.Title, c.Description, c.Budget, c.StartDate, c.EndDate, nil, c.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM campaign_skill_categories").
		WithArgs(c.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	if err := repo.Update(context.Background(), c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("stored updated_at must be the entity's timestamp: %v", err)
	}
}

func TestUpdateStatusBindsEntityTimestamp(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	at := time.Date(2026, 6, 15, 12, 30, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE campaigns SET status").
		WithArgs(id, StatusActive, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateStatus(context.Background(), id, StatusActive, at); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("stored updated_at must be the entity's timestamp: %v", err)
	}
}
