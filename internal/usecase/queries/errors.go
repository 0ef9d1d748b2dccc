package queries

import "parking-core/internal/pkg/errs"

var (
	ErrInvalidFilter = errs.Sentinel("invalid filter", errs.KindValidation)

	ErrLotNotFound         = errs.Sentinel("parking lot not found", errs.KindNotFound)
	ErrSpotNotFound        = errs.Sentinel("parking spot not found", errs.KindNotFound)
	ErrReservationNotFound = errs.Sentinel("reservation not found", errs.KindNotFound)
	ErrUserNotFound        = errs.Sentinel("user not found", errs.KindNotFound)

	ErrNotOwner     = errs.Sentinel("not the owner of this reservation", errs.KindAuthorization)
	ErrUserInactive = errs.Sentinel("user inactive", errs.KindAuthorization)
)
