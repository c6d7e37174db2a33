package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LeaseStatus string

const (
	LeaseStatusPending    LeaseStatus = "pending"
	LeaseStatusActive     LeaseStatus = "active"
	LeaseStatusTerminated LeaseStatus = "terminated"
)

// Lease binds one tenant to one unit for an inclusive date range at a fixed
// rent. RentAmount is a snapshot taken at creation; later rent adjustments on
// the unit do not touch existing leases or their invoices.
type Lease struct {
	ID            uuid.UUID        `json:"id"`
	UnitID        uuid.UUID        `json:"unit_id"`
	TenantID      uuid.UUID        `json:"tenant_id"`
	StartDate     time.Time        `json:"start_date"`
	EndDate       time.Time        `json:"end_date"`
	RentAmount    decimal.Decimal  `json:"rent_amount"`
	DepositAmount *decimal.Decimal `json:"deposit_amount,omitempty"`
	Status        LeaseStatus      `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}
