package discount

import (
	"testing"
	"time"

	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newStoreMock(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return NewGormStore(db), mock
}

// When two bookings race for the first counter row of the day, the loser's
// insert must come back empty instead of failing, and the follow-up
// conditional update takes the claim.
func TestClaimRecoversFromInsertRace(t *testing.T) {
	store, mock := newStoreMock(t)
	def := model.Discount{Code: "kiik-10-percent", LimitPerDay: 20}
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=used_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "discount_daily_usages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "discount_daily_usages" .* ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=used_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Claim(2, def, date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimSoldOutAfterInsertRace(t *testing.T) {
	store, mock := newStoreMock(t)
	def := model.Discount{Code: "kiik-10-percent", LimitPerDay: 1}
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=used_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "discount_daily_usages"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "discount_daily_usages" .* ON CONFLICT DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// the racing booking took the only slot
	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=used_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Claim(2, def, date)
	require.ErrorIs(t, err, ErrSoldOut)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetDailyScopedToDate(t *testing.T) {
	store, mock := newStoreMock(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=\$1 WHERE \(venue_id = \$2 AND date = \$3\) AND code = \$4`).
		WithArgs(0, 2, "2025-01-10", "kiik-10-percent").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.ResetDaily(2, "kiik-10-percent", date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResetDailyAllDiscounts(t *testing.T) {
	store, mock := newStoreMock(t)
	date := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE "discount_daily_usages" SET "used_count"=\$1 WHERE venue_id = \$2 AND date = \$3$`).
		WithArgs(0, 2, "2025-01-10").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, store.ResetDaily(2, "", date))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Lowering the daily cap below today's recorded usage is rejected before any
// write is issued.
func TestSetCapsRejectsCapBelowUsage(t *testing.T) {
	store, mock := newStoreMock(t)
	def := model.Discount{Code: "kiik-10-percent", LimitPerDay: 20}

	mock.ExpectQuery(`SELECT \* FROM "discount_daily_usages" WHERE venue_id = \$1 AND code = \$2 AND date = \$3`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "venue_id", "code", "date", "used_count"}).
			AddRow(1, 2, "kiik-10-percent", time.Now(), 12))

	stored, err := store.SetCaps(2, def, utils.Ptr(10), nil)
	require.ErrorIs(t, err, ErrCapBelowUsage)
	assert.Nil(t, stored)
	require.NoError(t, mock.ExpectationsWereMet())
}
