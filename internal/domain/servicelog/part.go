package servicelog

import (
	"errors"
	"strings"
)

var (
	ErrMissingPartName     = errors.New("part name is required")
	ErrNegativeUnitPrice   = errors.New("part unit price cannot be negative")
	ErrInvalidQuantity     = errors.New("part quantity must be positive")
	ErrInvalidPurchaseSide = errors.New("invalid part purchase side")
)

// PurchasedBy records who paid for a part: the vehicle owner or the service.
type PurchasedBy string

const (
	PurchasedByOwner   PurchasedBy = "owner"
	PurchasedByService PurchasedBy = "service"
)

func (p PurchasedBy) IsValid() bool {
	return p == PurchasedByOwner || p == PurchasedByService
}

type PartUsage struct {
	name        string
	partNumber  *string
	unitPrice   float64
	quantity    int32
	purchasedBy PurchasedBy
	notes       string
}

type PartUsageInput struct {
	Name        string
	PartNumber  *string
	UnitPrice   float64
	Quantity    *int32
	PurchasedBy string
	Notes       string
}

func NewPartUsage(in PartUsageInput) (PartUsage, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return PartUsage{}, ErrMissingPartName
	}
	if in.UnitPrice < 0 {
		return PartUsage{}, ErrNegativeUnitPrice
	}

	quantity := int32(1)
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return PartUsage{}, ErrInvalidQuantity
		}
		quantity = *in.Quantity
	}

	purchasedBy := PurchasedByService
	if in.PurchasedBy != "" {
		purchasedBy = PurchasedBy(in.PurchasedBy)
		if !purchasedBy.IsValid() {
			return PartUsage{}, ErrInvalidPurchaseSide
		}
	}

	return PartUsage{
		name:        name,
		partNumber:  in.PartNumber,
		unitPrice:   in.UnitPrice,
		quantity:    quantity,
		purchasedBy: purchasedBy,
		notes:       in.Notes,
	}, nil
}

func ReconstructPartUsage(name string, partNumber *string, unitPrice float64, quantity int32, purchasedBy PurchasedBy, notes string) PartUsage {
	return PartUsage{
		name:        name,
		partNumber:  partNumber,
		unitPrice:   unitPrice,
		quantity:    quantity,
		purchasedBy: purchasedBy,
		notes:       notes,
	}
}

func (p PartUsage) Total() float64 {
	return p.unitPrice * float64(p.quantity)
}

func (p PartUsage) Name() string             { return p.name }
func (p PartUsage) PartNumber() *string      { return p.partNumber }
func (p PartUsage) UnitPrice() float64       { return p.unitPrice }
func (p PartUsage) Quantity() int32          { return p.quantity }
func (p PartUsage) PurchasedBy() PurchasedBy { return p.purchasedBy }
func (p PartUsage) Notes() string            { return p.notes }
