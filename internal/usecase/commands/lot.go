package commands

import (
	"context"
	"log/slog"
	"strings"

	"parking-core/internal/domain/lot"
	"parking-core/internal/domain/spot"
	"parking-core/internal/infra"
	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotInput struct {
	Name    string
	Price   decimal.Decimal
	Address string
	PinCode string
	Spots   int
}

type CreateLotResult struct {
	Lot   *lot.Lot
	Spots []*spot.Spot
}

type LotCommands interface {
	CreateLot(ctx context.Context, in LotInput) (*CreateLotResult, error)
	UpdateLot(ctx context.Context, id uuid.UUID, in LotInput) (*lot.Lot, error)
	DeleteLot(ctx context.Context, id uuid.UUID) error
	AddSpot(ctx context.Context, lotID uuid.UUID, number *string) (*spot.Spot, error)
	RemoveSpots(ctx context.Context, lotID uuid.UUID, spotIDs []uuid.UUID) (int64, error)
	DeleteSpot(ctx context.Context, spotID uuid.UUID) error
}

type lotCommandsImpl struct {
	uow   shared.UnitOfWork
	cache cache.Cache
	clock clock.Clock
}

func NewLotCommands(uow shared.UnitOfWork, c cache.Cache, clk clock.Clock) LotCommands {
	return &lotCommandsImpl{uow: uow, cache: c, clock: clk}
}

func (c *lotCommandsImpl) CreateLot(ctx context.Context, in LotInput) (*CreateLotResult, error) {
	attrs, err := lot.NewAttributes(in.Name, in.Price, in.Address, in.PinCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLot)
	}

	var result *CreateLotResult
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := lot.NewLot(attrs, in.Spots, c.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrInvalidLot)
		}
		if err := tx.Lots().Create(ctx, tx.DB(), l); err != nil {
			return lotWriteErr(err)
		}
		spots, err := tx.Spots().AddSpots(ctx, tx.DB(), l.ID(), spot.Numbers(l.Name().Value(), 0, in.Spots))
		if err != nil {
			return translate(err, nil, nil)
		}
		result = &CreateLotResult{Lot: l, Spots: spots}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Parking lot created", "lot_id", result.Lot.ID(), "spots", len(result.Spots))
	invalidateStats(ctx, c.cache)
	return result, nil
}

// UpdateLot edits the lot and then grows or shrinks it to in.Spots. Shrinking
// only ever removes available spots, highest number first.
func (c *lotCommandsImpl) UpdateLot(ctx context.Context, id uuid.UUID, in LotInput) (*lot.Lot, error) {
	attrs, err := lot.NewAttributes(in.Name, in.Price, in.Address, in.PinCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLot)
	}
	if err := lot.ValidateSpotCount(in.Spots); err != nil {
		return nil, errs.Mark(err, ErrInvalidLot)
	}

	var updated *lot.Lot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		l, err := tx.Lots().LockByID(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		l.Update(attrs, now)
		if err := tx.Lots().Update(ctx, tx.DB(), l); err != nil {
			return lotWriteErr(err)
		}

		current, err := tx.Spots().ListByLot(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, nil, nil)
		}

		switch delta := in.Spots - len(current); {
		case delta > 0:
			taken := make([]string, 0, len(current))
			for _, s := range current {
				taken = append(taken, s.Number())
			}
			if _, err := tx.Spots().AddSpots(ctx, tx.DB(), id, spot.NextNumbers(l.Name().Value(), taken, delta)); err != nil {
				return spotWriteErr(err)
			}
		case delta < 0:
			removable, err := removableSpots(ctx, tx, id, -delta)
			if err != nil {
				return translate(err, nil, nil)
			}
			if len(removable) < -delta {
				return errs.Wrapf(ErrSpotOccupied, "only %d of %d spots can be removed", len(removable), -delta)
			}
			if _, err := tx.Spots().RemoveSpots(ctx, tx.DB(), id, spotIDs(removable)); err != nil {
				return translate(err, ErrSpotNotFound, ErrSpotOccupied)
			}
		}

		if _, err := tx.Lots().SyncSpotCount(ctx, tx.DB(), id, now); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		updated, err = tx.Lots().FindByID(ctx, tx.DB(), id)
		return translate(err, ErrLotNotFound, nil)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Parking lot updated", "lot_id", id, "spots", updated.NumberOfSpots())
	invalidateStats(ctx, c.cache)
	return updated, nil
}

// DeleteLot locks every spot of the lot before deleting so a concurrent claim
// cannot slip in between the occupancy check and the cascade.
func (c *lotCommandsImpl) DeleteLot(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().LockByID(ctx, tx.DB(), id); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		occupied, err := tx.Lots().OccupiedSpotCount(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		if occupied > 0 {
			return errs.Wrapf(ErrLotHasOccupiedSpots, "%d occupied", occupied)
		}

		spots, err := tx.Spots().ListByLot(ctx, tx.DB(), id)
		if err != nil {
			return translate(err, nil, nil)
		}
		if _, err := tx.Spots().RemoveSpots(ctx, tx.DB(), id, spotIDs(spots)); err != nil {
			return translate(err, ErrSpotNotFound, ErrLotHasOccupiedSpots)
		}
		return translate(tx.Lots().Delete(ctx, tx.DB(), id), ErrLotNotFound, nil)
	})
	if err != nil {
		return err
	}

	slog.Info("Parking lot deleted", "lot_id", id)
	invalidateStats(ctx, c.cache)
	return nil
}

func (c *lotCommandsImpl) AddSpot(ctx context.Context, lotID uuid.UUID, number *string) (*spot.Spot, error) {
	var added *spot.Spot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := c.clock.Now()
		l, err := tx.Lots().LockByID(ctx, tx.DB(), lotID)
		if err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		if l.NumberOfSpots() >= lot.MaxSpots {
			return errs.Wrap(ErrInvalidLot, "lot is at maximum capacity")
		}

		var label string
		if number != nil && strings.TrimSpace(*number) != "" {
			label = strings.TrimSpace(*number)
		} else {
			current, err := tx.Spots().ListByLot(ctx, tx.DB(), lotID)
			if err != nil {
				return translate(err, nil, nil)
			}
			taken := make([]string, 0, len(current))
			for _, s := range current {
				taken = append(taken, s.Number())
			}
			label = spot.NextNumbers(l.Name().Value(), taken, 1)[0]
		}

		spots, err := tx.Spots().AddSpots(ctx, tx.DB(), lotID, []string{label})
		if err != nil {
			return spotWriteErr(err)
		}
		if _, err := tx.Lots().SyncSpotCount(ctx, tx.DB(), lotID, now); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		added = spots[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Spot added", "lot_id", lotID, "spot_id", added.ID(), "spot_number", added.Number())
	invalidateStats(ctx, c.cache)
	return added, nil
}

func (c *lotCommandsImpl) RemoveSpots(ctx context.Context, lotID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, errs.Wrap(ErrInvalidLot, "no spots given")
	}

	var removed int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().LockByID(ctx, tx.DB(), lotID); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		n, err := tx.Spots().RemoveSpots(ctx, tx.DB(), lotID, ids)
		if err != nil {
			return translate(err, ErrSpotNotFound, ErrSpotOccupied)
		}
		if _, err := tx.Lots().SyncSpotCount(ctx, tx.DB(), lotID, c.clock.Now()); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("Spots removed", "lot_id", lotID, "count", removed)
	invalidateStats(ctx, c.cache)
	return removed, nil
}

// DeleteSpot takes the lot lock before the spot lock, the same order every
// other lot-level write uses.
func (c *lotCommandsImpl) DeleteSpot(ctx context.Context, spotID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Spots().FindByID(ctx, tx.DB(), spotID)
		if err != nil {
			return translate(err, ErrSpotNotFound, nil)
		}
		if _, err := tx.Lots().LockByID(ctx, tx.DB(), current.LotID()); err != nil {
			return translate(err, ErrLotNotFound, nil)
		}
		s, err := tx.Spots().LockByID(ctx, tx.DB(), spotID)
		if err != nil {
			return translate(err, ErrSpotNotFound, nil)
		}
		if !s.IsAvailable() {
			return ErrSpotOccupied
		}
		active, err := tx.Reservations().ActiveForSpot(ctx, tx.DB(), spotID)
		if err != nil {
			return translate(err, nil, nil)
		}
		if active != nil {
			return ErrHasActiveReservation
		}

		if _, err := tx.Spots().RemoveSpots(ctx, tx.DB(), s.LotID(), []uuid.UUID{spotID}); err != nil {
			return translate(err, ErrSpotNotFound, ErrSpotOccupied)
		}
		_, err = tx.Lots().SyncSpotCount(ctx, tx.DB(), s.LotID(), c.clock.Now())
		return translate(err, ErrLotNotFound, nil)
	})
	if err != nil {
		return err
	}

	slog.Info("Spot deleted", "spot_id", spotID)
	invalidateStats(ctx, c.cache)
	return nil
}

func lotWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrDuplicateLotName)
	}
	return translate(err, ErrLotNotFound, nil)
}

func spotWriteErr(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrDuplicateSpotNumber)
	}
	return translate(err, nil, nil)
}

const removableSpotPasses = 3

// removableSpots reads again when a pass comes back short. Under READ
// COMMITTED a row claimed while FOR UPDATE waits on it drops out of that pass
// even if other free spots exist. It stops once a pass finds nothing new.
func removableSpots(ctx context.Context, tx shared.Tx, lotID uuid.UUID, n int) ([]*spot.Spot, error) {
	var best []*spot.Spot
	for pass := 0; pass < removableSpotPasses; pass++ {
		got, err := tx.Spots().RemovableSpots(ctx, tx.DB(), lotID, n)
		if err != nil {
			return nil, err
		}
		if len(got) >= n {
			return got, nil
		}
		if pass > 0 && len(got) <= len(best) {
			return got, nil
		}
		best = got
	}
	return best, nil
}

func spotIDs(spots []*spot.Spot) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(spots))
	for _, s := range spots {
		ids = append(ids, s.ID())
	}
	return ids
}
