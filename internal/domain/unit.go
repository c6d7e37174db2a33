package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitType string

const (
	UnitTypeSingle        UnitType = "single"
	UnitTypeBedsitter     UnitType = "bedsitter"
	UnitTypeSelfContained UnitType = "self_contained"
	UnitTypeOneBedroom    UnitType = "one_bedroom"
	UnitTypeTwoBedroom    UnitType = "two_bedroom"
	UnitTypeOther         UnitType = "other"
)

type UnitStatus string

const (
	UnitStatusAvailable   UnitStatus = "available"
	UnitStatusOccupied    UnitStatus = "occupied"
	UnitStatusMaintenance UnitStatus = "maintenance"
)

type Unit struct {
	ID         uuid.UUID       `json:"id"`
	PropertyID uuid.UUID       `json:"property_id"`
	UnitNumber string          `json:"unit_number"`
	UnitType   UnitType        `json:"unit_type"`
	RentAmount decimal.Decimal `json:"rent_amount"`
	Status     UnitStatus      `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// RentAdjustment schedules a future change to a unit's rent. The nightly
// applier consumes and deletes adjustments once effective_date is reached.
// At most one adjustment may exist per (unit, effective_date).
type RentAdjustment struct {
	ID            uuid.UUID       `json:"id"`
	UnitID        uuid.UUID       `json:"unit_id"`
	NewRent       decimal.Decimal `json:"new_rent"`
	EffectiveDate time.Time       `json:"effective_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
