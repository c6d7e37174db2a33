package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain"
)

func TestRentAdjustmentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentAdjustmentRepository(db)
	ctx := context.Background()

	adj := &domain.RentAdjustment{
		UnitID:        uuid.New(),
		NewRent:       decimal.NewFromInt(1500),
		EffectiveDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO rent_adjustments").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, adj)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, adj.ID)
	})

	t.Run("DuplicateEffectiveDate", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO rent_adjustments").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, adj)
		var cerr *domain.ConflictError
		assert.True(t, errors.As(err, &cerr))
	})
}

func TestRentAdjustmentRepository_ApplyDue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentAdjustmentRepository(db)
	ctx := context.Background()
	asOf := time.Date(2024, 7, 1, 2, 0, 0, 0, time.UTC)

	t.Run("AppliesAndDeletesInOneTransaction", func(t *testing.T) {
		firstID, secondID := uuid.New(), uuid.New()
		firstUnit, secondUnit := uuid.New(), uuid.New()

		rows := sqlmock.NewRows([]string{"id", "unit_id", "new_rent"}).
			AddRow(firstID.String(), firstUnit.String(), "1500.00").
			AddRow(secondID.String(), secondUnit.String(), "900.00")

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, unit_id, new_rent FROM rent_adjustments").
			WithArgs(asOf).
			WillReturnRows(rows)
		mock.ExpectExec("UPDATE units SET rent_amount").
			WithArgs(decimal.RequireFromString("1500.00"), sqlmock.AnyArg(), firstUnit).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE units SET rent_amount").
			WithArgs(decimal.RequireFromString("900.00"), sqlmock.AnyArg(), secondUnit).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM rent_adjustments WHERE id").
			WithArgs(pq.Array([]string{firstID.String(), secondID.String()})).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		applied, err := repo.ApplyDue(ctx, asOf)
		require.NoError(t, err)
		assert.Equal(t, 2, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NothingDueIsZeroCountSuccess", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, unit_id, new_rent FROM rent_adjustments").
			WithArgs(asOf).
			WillReturnRows(sqlmock.NewRows([]string{"id", "unit_id", "new_rent"}))
		mock.ExpectRollback()

		applied, err := repo.ApplyDue(ctx, asOf)
		require.NoError(t, err)
		assert.Zero(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UnitUpdateFailureRollsBack", func(t *testing.T) {
		id, unitID := uuid.New(), uuid.New()
		rows := sqlmock.NewRows([]string{"id", "unit_id", "new_rent"}).
			AddRow(id.String(), unitID.String(), "1500.00")

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, unit_id, new_rent FROM rent_adjustments").
			WithArgs(asOf).
			WillReturnRows(rows)
		mock.ExpectExec("UPDATE units SET rent_amount").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.ApplyDue(ctx, asOf)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
