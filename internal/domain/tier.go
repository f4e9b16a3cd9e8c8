package domain

import "time"

// ServiceTier is a bookable service duration with a precomputed next-available value
type ServiceTier string

const (
	TierStandard ServiceTier = "standard" // 2 hours
	TierDeep     ServiceTier = "deep"     // 6 hours
)

// ServiceTiers lists every tier refreshed on a storage change
var ServiceTiers = []ServiceTier{TierStandard, TierDeep}

// DurationMinutes returns the service length of the tier
func (t ServiceTier) DurationMinutes() int {
	switch t {
	case TierStandard:
		return 120
	case TierDeep:
		return 360
	default:
		return 0
	}
}

// IsValid returns true for a known tier
func (t ServiceTier) IsValid() bool {
	return t.DurationMinutes() > 0
}

// Column returns the cleaners table column holding the tier's next-available instant
func (t ServiceTier) Column() string {
	switch t {
	case TierStandard:
		return "next_available_2h"
	case TierDeep:
		return "next_available_6h"
	default:
		return ""
	}
}

// NextAvailability holds the precomputed earliest instant per tier; nil means none within the horizon
type NextAvailability struct {
	Standard  *time.Time
	Deep      *time.Time
	UpdatedAt *time.Time
}

// Get returns the value for a tier
func (n NextAvailability) Get(tier ServiceTier) *time.Time {
	switch tier {
	case TierStandard:
		return n.Standard
	case TierDeep:
		return n.Deep
	default:
		return nil
	}
}

// Set stores the value for a tier
func (n *NextAvailability) Set(tier ServiceTier, at *time.Time) {
	switch tier {
	case TierStandard:
		n.Standard = at
	case TierDeep:
		n.Deep = at
	}
}

// RankedCleaner is one entry of the cross-cleaner ranking
type RankedCleaner struct {
	CleanerID     int64
	NextAvailable time.Time
}
