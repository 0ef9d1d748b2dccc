package lot

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidName      = errors.New("lot name must be 1-100 characters")
	ErrInvalidPrice     = errors.New("hourly price must be a non-negative amount with at most 2 decimal places")
	ErrInvalidPinCode   = errors.New("pin code must be 4-10 digits")
	ErrInvalidAddress   = errors.New("address must be at most 500 characters")
	ErrInvalidSpotCount = errors.New("number of spots must be between 0 and 1000")
)

const (
	maxNameLength    = 100
	maxAddressLength = 500
	MaxSpots         = 1000
)

var pinCodeRegex = regexp.MustCompile(`^[0-9]{4,10}$`)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > maxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}

// Price is the hourly rate in currency units, stored as NUMERIC(10,2).
type Price struct {
	value decimal.Decimal
}

var maxPrice = decimal.RequireFromString("99999999.99")

func NewPrice(d decimal.Decimal) (Price, error) {
	if d.IsNegative() || d.GreaterThan(maxPrice) || !d.Equal(d.Round(2)) {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: d}, nil
}

func (p Price) Value() decimal.Decimal {
	return p.value
}

type PinCode struct {
	value string
}

func NewPinCode(s string) (PinCode, error) {
	s = strings.TrimSpace(s)
	if !pinCodeRegex.MatchString(s) {
		return PinCode{}, ErrInvalidPinCode
	}
	return PinCode{value: s}, nil
}

func (p PinCode) Value() string {
	return p.value
}

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxAddressLength {
		return Address{}, ErrInvalidAddress
	}
	return Address{value: s}, nil
}

func (a Address) Value() string {
	return a.value
}

func ValidateSpotCount(n int) error {
	if n < 0 || n > MaxSpots {
		return ErrInvalidSpotCount
	}
	return nil
}
