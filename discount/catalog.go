package discount

import (
	"log"

	"bassik_backend/model"

	"gorm.io/gorm"
)

// CatalogSource yields the discount definitions for one venue.
type CatalogSource interface {
	Catalog(venue model.Venue) (model.Discounts, error)
}

// DBCatalog reads admin-configured discounts.
type DBCatalog struct {
	DB *gorm.DB
}

func (s DBCatalog) Catalog(venue model.Venue) (model.Discounts, error) {
	var defs model.Discounts
	if err := s.DB.
		Where("venue_id = ?", venue.ID).
		Order("id asc").
		Find(&defs).Error; err != nil {
		return nil, err
	}
	return defs, nil
}

// FallbackCatalog queries the primary source first and consults the fallback
// when the primary is empty or unreachable. Promotions are non-critical, so a
// broken primary store must never surface as an error on read paths.
type FallbackCatalog struct {
	Primary  CatalogSource
	Fallback CatalogSource
}

func (s FallbackCatalog) Catalog(venue model.Venue) (model.Discounts, error) {
	defs, err := s.Primary.Catalog(venue)
	if err != nil {
		log.Printf("Discount catalog unreachable for %s, using static list: %v", venue.Slug, err)
		return s.Fallback.Catalog(venue)
	}
	if len(defs) == 0 {
		return s.Fallback.Catalog(venue)
	}
	return defs, nil
}

// DefaultCatalog is the catalog composition used by the handlers.
func DefaultCatalog(db *gorm.DB) CatalogSource {
	return FallbackCatalog{
		Primary:  DBCatalog{DB: db},
		Fallback: StaticCatalog{},
	}
}
