package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gymcore/internal/domain/member"
	"gymcore/internal/domain/membership"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

var integrationNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gormDB.AutoMigrate(
		&models.MemberModel{},
		&models.PlanModel{},
		&models.MembershipPeriodModel{},
		&models.PaymentModel{},
		&models.CheckInModel{},
	)
	require.NoError(t, err)

	return gormDB
}

func createTestMember(t *testing.T, dni string, renewalDate time.Time) *member.Member {
	t.Helper()
	m, err := member.NewMember("Ana", "Suarez", dni, nil, nil, renewalDate, nil, integrationNow)
	require.NoError(t, err)
	return m
}

func TestMemberRepository_CreateAndGet(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewMemberRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	t.Run("create assigns database id", func(t *testing.T) {
		m := createTestMember(t, "30111111", integrationNow.AddDate(0, 1, 0))
		err := repo.Create(ctx, m)
		assert.NoError(t, err)
		assert.NotZero(t, m.ID())
	})

	t.Run("get by dni round-trips the aggregate", func(t *testing.T) {
		m := createTestMember(t, "30222222", integrationNow.AddDate(0, 1, 0))
		require.NoError(t, repo.Create(ctx, m))

		found, err := repo.GetByDNI(ctx, "30222222")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, m.SID(), found.SID())
		assert.Equal(t, m.MembershipStatus(), found.MembershipStatus())
		assert.Equal(t, 1, found.Version())
	})

	t.Run("get by dni returns nil for unknown dni", func(t *testing.T) {
		found, err := repo.GetByDNI(ctx, "99999999")
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("exists by dni", func(t *testing.T) {
		exists, err := repo.ExistsByDNI(ctx, "30222222")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByDNI(ctx, "99999999")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("get by sid reports not found", func(t *testing.T) {
		_, err := repo.GetBySID(ctx, "mem_doesnotexist")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("duplicate dni is rejected by the unique index", func(t *testing.T) {
		first := createTestMember(t, "30333333", integrationNow.AddDate(0, 1, 0))
		require.NoError(t, repo.Create(ctx, first))

		second := createTestMember(t, "30333333", integrationNow.AddDate(0, 1, 0))
		err := repo.Create(ctx, second)
		require.Error(t, err)
		assert.True(t, apperrors.IsDuplicateError(err))
	})
}

func TestMemberRepository_OptimisticLocking(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewMemberRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	m := createTestMember(t, "30444444", integrationNow.AddDate(0, 1, 0))
	require.NoError(t, repo.Create(ctx, m))

	t.Run("update succeeds against the stored version", func(t *testing.T) {
		require.NoError(t, m.RenewTo(integrationNow.AddDate(0, 2, 0), nil, integrationNow))
		assert.NoError(t, repo.Update(ctx, m))

		found, err := repo.GetByDNI(ctx, "30444444")
		require.NoError(t, err)
		assert.Equal(t, 2, found.Version())
	})

	t.Run("stale writer loses", func(t *testing.T) {
		stale, err := repo.GetByDNI(ctx, "30444444")
		require.NoError(t, err)
		fresh, err := repo.GetByDNI(ctx, "30444444")
		require.NoError(t, err)

		require.NoError(t, fresh.RenewTo(integrationNow.AddDate(0, 3, 0), nil, integrationNow))
		require.NoError(t, repo.Update(ctx, fresh))

		require.NoError(t, stale.RenewTo(integrationNow.AddDate(0, 4, 0), nil, integrationNow))
		err = repo.Update(ctx, stale)
		assert.ErrorIs(t, err, member.ErrVersionConflict)
	})
}

func TestMemberRepository_MarkLapsedExpired(t *testing.T) {
	gormDB := setupTestDB(t)
	repo := NewMemberRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	lapsed := createTestMember(t, "30555555", integrationNow.AddDate(0, 0, -10))
	current := createTestMember(t, "30666666", integrationNow.AddDate(0, 1, 0))
	require.NoError(t, repo.Create(ctx, lapsed))
	require.NoError(t, repo.Create(ctx, current))

	// The lapsed member was stored already expired by status derivation, so
	// force an active snapshot to simulate a row the nightly pass must fix.
	require.NoError(t, gormDB.Model(&models.MemberModel{}).
		Where("dni = ?", "30555555").
		Update("membership_status", "active").Error)

	updated, err := repo.MarkLapsedExpired(ctx, integrationNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	found, err := repo.GetByDNI(ctx, "30555555")
	require.NoError(t, err)
	assert.Equal(t, "expired", found.MembershipStatus().String())

	untouched, err := repo.GetByDNI(ctx, "30666666")
	require.NoError(t, err)
	assert.Equal(t, "active", untouched.MembershipStatus().String())

	t.Run("second pass is a no-op", func(t *testing.T) {
		again, err := repo.MarkLapsedExpired(ctx, integrationNow)
		require.NoError(t, err)
		assert.Zero(t, again)
	})
}

func TestMembershipPeriodRepository_CurrentByMember(t *testing.T) {
	gormDB := setupTestDB(t)
	memberRepo := NewMemberRepository(gormDB, logger.NewLogger())
	periodRepo := NewMembershipPeriodRepository(gormDB, logger.NewLogger())
	ctx := context.Background()

	m := createTestMember(t, "30777777", integrationNow.AddDate(0, 1, 0))
	require.NoError(t, memberRepo.Create(ctx, m))

	t.Run("no period yet", func(t *testing.T) {
		current, err := periodRepo.GetCurrentByMemberID(ctx, m.ID())
		assert.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("latest end date wins", func(t *testing.T) {
		older, err := membership.NewPeriod(m.ID(), 1,
			integrationNow.AddDate(0, -2, 0), integrationNow.AddDate(0, -1, 0), integrationNow)
		require.NoError(t, err)
		require.NoError(t, periodRepo.Create(ctx, older))

		newer, err := membership.NewPeriod(m.ID(), 1,
			integrationNow.AddDate(0, -1, 0), integrationNow.AddDate(0, 1, 0), integrationNow)
		require.NoError(t, err)
		require.NoError(t, periodRepo.Create(ctx, newer))

		current, err := periodRepo.GetCurrentByMemberID(ctx, m.ID())
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, newer.SID(), current.SID())
	})
}

func TestTransactionManager_RollsBackTogether(t *testing.T) {
	gormDB := setupTestDB(t)
	memberRepo := NewMemberRepository(gormDB, logger.NewLogger())
	periodRepo := NewMembershipPeriodRepository(gormDB, logger.NewLogger())
	txManager := db.NewTransactionManager(gormDB)
	ctx := context.Background()

	m := createTestMember(t, "30888888", integrationNow.AddDate(0, 1, 0))
	require.NoError(t, memberRepo.Create(ctx, m))

	err := txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		per, err := membership.NewPeriod(m.ID(), 1, integrationNow, integrationNow.AddDate(0, 1, 0), integrationNow)
		require.NoError(t, err)
		if err := periodRepo.Create(txCtx, per); err != nil {
			return err
		}
		return apperrors.NewConflictError("forced rollback")
	})
	require.Error(t, err)

	periods, err := periodRepo.ListByMemberID(ctx, m.ID())
	require.NoError(t, err)
	assert.Empty(t, periods)
}
