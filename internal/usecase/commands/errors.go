package commands

import (
	"parking-core/internal/infra"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/queries"
)

var (
	ErrInvalidVehicleNumber = errs.Sentinel("invalid vehicle number", errs.KindValidation)
	ErrInvalidLot           = errs.Sentinel("invalid parking lot", errs.KindValidation)
	ErrInvalidSpotStatus    = errs.Sentinel("invalid spot status", errs.KindValidation)
	ErrInvalidRegistration  = errs.Sentinel("invalid registration", errs.KindValidation)
	ErrCannotDeactivateSelf = errs.Sentinel("admins cannot deactivate themselves", errs.KindValidation)
	ErrInvalidProfile       = errs.Sentinel("invalid profile", errs.KindValidation)

	ErrSpotUnavailable          = errs.Sentinel("spot is not available", errs.KindConflict)
	ErrUserHasActiveReservation = errs.Sentinel("you already have an active parking reservation", errs.KindConflict)
	ErrAlreadyParkedIn          = errs.Sentinel("reservation is already parked in", errs.KindConflict)
	ErrAlreadyReleased          = errs.Sentinel("reservation is already released", errs.KindConflict)
	ErrSpotOccupied             = errs.Sentinel("spot is occupied", errs.KindConflict)
	ErrLotHasOccupiedSpots      = errs.Sentinel("parking lot has occupied spots", errs.KindConflict)
	ErrHasActiveReservation     = errs.Sentinel("spot has an active reservation", errs.KindConflict)
	ErrDuplicateSpotNumber      = errs.Sentinel("spot number already exists in this lot", errs.KindConflict)
	ErrDuplicateLotName         = errs.Sentinel("parking lot name already exists", errs.KindConflict)
	ErrEmailAlreadyRegistered   = errs.Sentinel("email already registered", errs.KindConflict)
	ErrAdminAlreadyExists       = errs.Sentinel("an admin account already exists", errs.KindConflict)

	ErrInvalidCredentials = errs.Sentinel("invalid email or password", errs.KindAuthorization)

	ErrTokenGeneration         = errs.Sentinel("token generation failed", errs.KindInternal)
	ErrDatabaseOperationFailed = errs.Sentinel("database operation failed", errs.KindInternal)
)

// Shared with the read side so handlers map one value per condition.
var (
	ErrLotNotFound         = queries.ErrLotNotFound
	ErrSpotNotFound        = queries.ErrSpotNotFound
	ErrReservationNotFound = queries.ErrReservationNotFound
	ErrUserNotFound        = queries.ErrUserNotFound
	ErrNotOwner            = queries.ErrNotOwner
	ErrUserInactive        = queries.ErrUserInactive
)

// translate maps repository kinds onto use case sentinels. Errors that already
// carry a sentinel pass through unchanged.
func translate(err error, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if errs.KindOf(err) != errs.KindInternal {
		return err
	}
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	case conflict != nil && infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, conflict)
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
