package reservation

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidVehicleNumber = errors.New("vehicle number must be 2-20 characters of letters, digits, spaces or hyphens")

var vehicleNumberRegex = regexp.MustCompile(`^[A-Z0-9 \-]{2,20}$`)

// VehicleNumber is stored upper-cased with surrounding whitespace removed.
type VehicleNumber struct {
	value string
}

func NewVehicleNumber(s string) (VehicleNumber, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !vehicleNumberRegex.MatchString(s) {
		return VehicleNumber{}, ErrInvalidVehicleNumber
	}
	return VehicleNumber{value: s}, nil
}

func (v VehicleNumber) Value() string {
	return v.value
}
