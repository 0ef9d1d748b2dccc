package lot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Lot struct {
	id            uuid.UUID
	name          Name
	price         Price
	address       Address
	pinCode       PinCode
	numberOfSpots int
	createdAt     time.Time
	updatedAt     time.Time
}

type Attributes struct {
	Name    Name
	Price   Price
	Address Address
	PinCode PinCode
}

func NewAttributes(name string, price decimal.Decimal, address, pinCode string) (Attributes, error) {
	n, err := NewName(name)
	if err != nil {
		return Attributes{}, err
	}
	p, err := NewPrice(price)
	if err != nil {
		return Attributes{}, err
	}
	a, err := NewAddress(address)
	if err != nil {
		return Attributes{}, err
	}
	pin, err := NewPinCode(pinCode)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{Name: n, Price: p, Address: a, PinCode: pin}, nil
}

func NewLot(attrs Attributes, numberOfSpots int, now time.Time) (*Lot, error) {
	if err := ValidateSpotCount(numberOfSpots); err != nil {
		return nil, err
	}
	return &Lot{
		id:            uuid.New(),
		name:          attrs.Name,
		price:         attrs.Price,
		address:       attrs.Address,
		pinCode:       attrs.PinCode,
		numberOfSpots: numberOfSpots,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructLot(
	id uuid.UUID,
	attrs Attributes,
	numberOfSpots int,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:            id,
		name:          attrs.Name,
		price:         attrs.Price,
		address:       attrs.Address,
		pinCode:       attrs.PinCode,
		numberOfSpots: numberOfSpots,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Update replaces the editable attributes. The spot count is adjusted separately
// because it requires touching the spot rows.
func (l *Lot) Update(attrs Attributes, now time.Time) {
	l.name = attrs.Name
	l.price = attrs.Price
	l.address = attrs.Address
	l.pinCode = attrs.PinCode
	l.updatedAt = now
}

func (l *Lot) ID() uuid.UUID               { return l.id }
func (l *Lot) Name() Name                  { return l.name }
func (l *Lot) Price() Price                { return l.price }
func (l *Lot) HourlyRate() decimal.Decimal { return l.price.Value() }
func (l *Lot) Address() Address            { return l.address }
func (l *Lot) PinCode() PinCode            { return l.pinCode }
func (l *Lot) NumberOfSpots() int          { return l.numberOfSpots }
func (l *Lot) CreatedAt() time.Time        { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time        { return l.updatedAt }

func (l *Lot) Attributes() Attributes {
	return Attributes{Name: l.name, Price: l.price, Address: l.address, PinCode: l.pinCode}
}
