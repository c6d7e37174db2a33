package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk-backend/internal/domain"
)

func TestLeaseRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLeaseRepository(db)
	ctx := context.Background()

	lease := &domain.Lease{
		UnitID:     uuid.New(),
		TenantID:   uuid.New(),
		StartDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		RentAmount: decimal.NewFromInt(1000),
		Status:     domain.LeaseStatusPending,
	}

	t.Run("SuccessWithoutDeposit", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO leases").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, lease)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, lease.ID)
	})
}

func TestLeaseRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLeaseRepository(db)
	ctx := context.Background()
	id := uuid.New()

	t.Run("NullDepositScansToNil", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "unit_id", "tenant_id", "start_date", "end_date",
			"rent_amount", "deposit_amount", "status", "created_at", "updated_at",
		}).AddRow(
			id.String(), uuid.New().String(), uuid.New().String(),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			"1000.00", nil, "pending", time.Now(), time.Now(),
		)
		mock.ExpectQuery("SELECT (.+) FROM leases WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		lease, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, lease.DepositAmount)
		assert.Equal(t, domain.LeaseStatusPending, lease.Status)
	})

	t.Run("DepositScansToValue", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{
			"id", "unit_id", "tenant_id", "start_date", "end_date",
			"rent_amount", "deposit_amount", "status", "created_at", "updated_at",
		}).AddRow(
			id.String(), uuid.New().String(), uuid.New().String(),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			"1000.00", "2000.00", "active", time.Now(), time.Now(),
		)
		mock.ExpectQuery("SELECT (.+) FROM leases WHERE id").
			WithArgs(id).
			WillReturnRows(rows)

		lease, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, lease.DepositAmount)
		assert.True(t, lease.DepositAmount.Equal(decimal.NewFromInt(2000)))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM leases WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, id)
		var nferr *domain.NotFoundError
		assert.True(t, errors.As(err, &nferr))
	})
}

func TestLeaseRepository_HasOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLeaseRepository(db)
	ctx := context.Background()
	unitID := uuid.New()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("Overlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(unitID, end, start).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		overlaps, err := repo.HasOverlap(ctx, unitID, start, end)
		require.NoError(t, err)
		assert.True(t, overlaps)
	})

	t.Run("NoOverlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(unitID, end, start).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		overlaps, err := repo.HasOverlap(ctx, unitID, start, end)
		require.NoError(t, err)
		assert.False(t, overlaps)
	})
}
