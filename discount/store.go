package discount

import (
	"errors"
	"strings"
	"time"

	"bassik_backend/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrSoldOut means the claim lost against the cap.
	ErrSoldOut = errors.New("discount sold out")
	// ErrCapBelowUsage rejects setting a daily cap below today's recorded usage.
	ErrCapBelowUsage = errors.New("cap is below already recorded usage")
)

// Store owns all counter mutation and the usage snapshot reads. The evaluator
// itself never touches storage.
type Store interface {
	Usage(venueID uint, date time.Time) (Usage, error)
	Claim(venueID uint, def model.Discount, date time.Time) error
	ResetDaily(venueID uint, code string, date time.Time) error
	ResetLifetime(venueID uint, code string) error
	SetCaps(venueID uint, def model.Discount, maxPerDay, maxClaims *int) (*model.Discount, error)
	WithTx(tx *gorm.DB) Store
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// WithTx binds the store to an open transaction so a reservation can claim
// several discounts atomically.
func (s *GormStore) WithTx(tx *gorm.DB) Store {
	return &GormStore{db: tx}
}

func (s *GormStore) Usage(venueID uint, date time.Time) (Usage, error) {
	usage := Usage{
		Daily: map[string]int{},
		Total: map[string]int{},
	}

	var daily []model.DiscountDailyUsage
	if err := s.db.
		Where("venue_id = ? AND date = ?", venueID, date.Format("2006-01-02")).
		Find(&daily).Error; err != nil {
		return usage, err
	}
	for _, row := range daily {
		usage.Daily[row.Code] = row.UsedCount
	}

	var totals []model.DiscountClaimTotal
	if err := s.db.
		Where("venue_id = ?", venueID).
		Find(&totals).Error; err != nil {
		return usage, err
	}
	for _, row := range totals {
		usage.Total[row.Code] = row.UsedCount
	}

	return usage, nil
}

// Claim records one redemption against def's binding cap. The increment and
// the cap check happen in a single conditional UPDATE so two concurrent
// bookings can never both take the last slot.
func (s *GormStore) Claim(venueID uint, def model.Discount, date time.Time) error {
	if def.MaxClaims != nil && *def.MaxClaims > 0 {
		if err := s.incrementTotal(venueID, def.Code, *def.MaxClaims); err != nil {
			return err
		}
		// daily row kept for reporting, the lifetime cap already held
		return s.incrementDaily(venueID, def.Code, date, 0)
	}
	return s.incrementDaily(venueID, def.Code, date, def.LimitPerDay)
}

// incrementDaily bumps the (venue, code, date) counter. A positive limit
// turns the bump into increment-if-below-cap.
func (s *GormStore) incrementDaily(venueID uint, code string, date time.Time, limit int) error {
	day := date.Format("2006-01-02")

	update := func() (int64, error) {
		q := s.db.Model(&model.DiscountDailyUsage{}).
			Where("venue_id = ? AND code = ? AND date = ?", venueID, code, day)
		if limit > 0 {
			q = q.Where("used_count < ?", limit)
		}
		res := q.UpdateColumn("used_count", gorm.Expr("used_count + 1"))
		return res.RowsAffected, res.Error
	}

	affected, err := update()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var existing int64
	if err := s.db.Model(&model.DiscountDailyUsage{}).
		Where("venue_id = ? AND code = ? AND date = ?", venueID, code, day).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrSoldOut
	}

	row := model.DiscountDailyUsage{
		VenueId:   venueID,
		Code:      code,
		Date:      date,
		UsedCount: 1,
	}
	// DO NOTHING keeps a lost insert race from aborting the surrounding
	// transaction; the conditional update then decides.
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	affected, err = update()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSoldOut
	}
	return nil
}

func (s *GormStore) incrementTotal(venueID uint, code string, limit int) error {
	update := func() (int64, error) {
		res := s.db.Model(&model.DiscountClaimTotal{}).
			Where("venue_id = ? AND code = ?", venueID, code).
			Where("used_count < ?", limit).
			UpdateColumn("used_count", gorm.Expr("used_count + 1"))
		return res.RowsAffected, res.Error
	}

	affected, err := update()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var existing int64
	if err := s.db.Model(&model.DiscountClaimTotal{}).
		Where("venue_id = ? AND code = ?", venueID, code).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return ErrSoldOut
	}
	if limit < 1 {
		return ErrSoldOut
	}

	row := model.DiscountClaimTotal{
		VenueId:   venueID,
		Code:      code,
		UsedCount: 1,
	}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	affected, err = update()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSoldOut
	}
	return nil
}

// ResetDaily zeroes the dated counters. An empty code resets every discount
// of the venue for that date; other dates stay untouched.
func (s *GormStore) ResetDaily(venueID uint, code string, date time.Time) error {
	q := s.db.Model(&model.DiscountDailyUsage{}).
		Where("venue_id = ? AND date = ?", venueID, date.Format("2006-01-02"))
	if code != "" {
		q = q.Where("code = ?", code)
	}
	return q.UpdateColumn("used_count", 0).Error
}

// ResetLifetime zeroes the lifetime counters. An empty code resets every
// discount of the venue.
func (s *GormStore) ResetLifetime(venueID uint, code string) error {
	q := s.db.Model(&model.DiscountClaimTotal{}).
		Where("venue_id = ?", venueID)
	if code != "" {
		q = q.Where("code = ?", code)
	}
	return q.UpdateColumn("used_count", 0).Error
}

// SetCaps upserts the cap fields onto the venue's definition, materialising a
// DB row from the static one when the discount has no configured row yet.
// Lowering the daily cap below today's recorded usage is rejected, so
// existing claims never silently land over limit.
func (s *GormStore) SetCaps(venueID uint, def model.Discount, maxPerDay, maxClaims *int) (*model.Discount, error) {
	if maxPerDay != nil && *maxPerDay > 0 {
		var row model.DiscountDailyUsage
		err := s.db.
			Where("venue_id = ? AND code = ? AND date = ?", venueID, def.Code, time.Now().Format("2006-01-02")).
			First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if row.UsedCount > *maxPerDay {
			return nil, ErrCapBelowUsage
		}
	}

	var stored model.Discount
	err := s.db.
		Where("venue_id = ? AND code = ?", venueID, def.Code).
		First(&stored).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stored = def
		stored.ID = 0
		stored.VenueId = venueID
	} else if err != nil {
		return nil, err
	}

	if maxPerDay != nil {
		stored.LimitPerDay = *maxPerDay
	}
	if maxClaims != nil {
		stored.MaxClaims = maxClaims
	}

	if err := s.db.Save(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// SchemaMissing detects the "table has not been migrated yet" class of write
// failures so the admin UI can tell the operator to run migrations.
func SchemaMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "no such table")
}
