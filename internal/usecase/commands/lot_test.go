//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parking-core/internal/domain/billing"
	"parking-core/internal/domain/spot"
	"parking-core/internal/domain/user"
	"parking-core/internal/infra/cache"
	"parking-core/internal/pkg/clock"
	"parking-core/internal/pkg/errs"
	"parking-core/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LotCommandsTestSuite struct {
	suite.Suite
	store *memStore
	clock *clock.MockClock
	lots  commands.LotCommands
	alloc commands.AllocationCommands
	ctx   context.Context
}

func (s *LotCommandsTestSuite) SetupTest() {
	s.store = newMemStore()
	s.clock = clock.NewMockClock(reservedAt)
	s.lots = commands.NewLotCommands(s.store, cache.NewNopCache(), s.clock)
	s.alloc = commands.NewAllocationCommands(s.store, billing.NewHourlyCalculator(), cache.NewNopCache(), s.clock)
	s.ctx = context.Background()
}

func TestLotCommandsSuite(t *testing.T) {
	suite.Run(t, new(LotCommandsTestSuite))
}

func lotInput(name string, spots int) commands.LotInput {
	return commands.LotInput{
		Name:    name,
		Price:   decimal.RequireFromString("15.50"),
		Address: "1 Main Road",
		PinCode: "560001",
		Spots:   spots,
	}
}

func (s *LotCommandsTestSuite) occupy(lotID, spotID uuid.UUID) uuid.UUID {
	s.T().Helper()
	uid := s.store.seedUser(uuid.NewString()+"@example.com", user.RoleUser, true, "hash")
	res, err := s.alloc.Reserve(s.ctx, commands.ReserveInput{
		UserID: uid, LotID: lotID, SpotID: spotID, VehicleNumber: "KA01",
	})
	s.Require().NoError(err)
	return res.Reservation.ID()
}

func (s *LotCommandsTestSuite) TestCreateLot() {
	s.Run("creates numbered spots", func() {
		s.SetupTest()

		out, err := s.lots.CreateLot(s.ctx, lotInput("Central", 3))

		s.Require().NoError(err)
		s.Equal(3, out.Lot.NumberOfSpots())
		s.Require().Len(out.Spots, 3)
		s.Equal("Central-001", out.Spots[0].Number())
		s.Equal("Central-003", out.Spots[2].Number())
		for _, sp := range out.Spots {
			s.Equal(spot.StatusAvailable, sp.Status())
			s.Equal(out.Lot.ID(), sp.LotID())
		}
	})

	s.Run("zero spots", func() {
		s.SetupTest()

		out, err := s.lots.CreateLot(s.ctx, lotInput("Empty", 0))

		s.Require().NoError(err)
		s.Empty(out.Spots)
	})

	s.Run("invalid attributes", func() {
		s.SetupTest()
		in := lotInput("Central", 3)
		in.PinCode = "12"

		_, err := s.lots.CreateLot(s.ctx, in)

		s.True(errs.Is(err, commands.ErrInvalidLot))
	})

	s.Run("too many spots", func() {
		s.SetupTest()

		_, err := s.lots.CreateLot(s.ctx, lotInput("Huge", 1001))

		s.True(errs.Is(err, commands.ErrInvalidLot))
	})

	s.Run("duplicate name", func() {
		s.SetupTest()
		_, err := s.lots.CreateLot(s.ctx, lotInput("Central", 1))
		s.Require().NoError(err)

		_, err = s.lots.CreateLot(s.ctx, lotInput("Central", 2))

		s.True(errs.Is(err, commands.ErrDuplicateLotName))
	})
}

func (s *LotCommandsTestSuite) TestUpdateLot() {
	s.Run("grows into the lowest free numbers", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 3)
		s.Require().NoError(s.lots.DeleteSpot(s.ctx, spotIDs[0]))

		s.clock.Set(reservedAt.Add(time.Hour))
		updated, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("Central", 4))

		s.Require().NoError(err)
		s.Equal(4, updated.NumberOfSpots())
		s.Equal("15.50", updated.HourlyRate().StringFixed(2))
		s.Equal(reservedAt.Add(time.Hour), updated.UpdatedAt())
		s.Equal([]string{"Central-001", "Central-002", "Central-003", "Central-004"}, s.store.spotNumbers(lotID))
	})

	s.Run("shrinks from the highest available spot", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 4)
		s.occupy(lotID, spotIDs[3])

		updated, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("Central", 2))

		s.Require().NoError(err)
		s.Equal(2, updated.NumberOfSpots())
		s.Equal([]string{"Central-001", "Central-004"}, s.store.spotNumbers(lotID))
	})

	s.Run("cannot shrink below occupied spots", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 2)
		s.occupy(lotID, spotIDs[0])
		s.occupy(lotID, spotIDs[1])

		_, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("Renamed", 1))

		s.True(errs.Is(err, commands.ErrSpotOccupied))
		n, _ := s.store.lotSpotCount(lotID)
		s.Equal(2, n)
	})

	s.Run("shrink reads again after a concurrent claim", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 5)
		s.store.shortRemovable = 1

		updated, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("Central", 3))

		s.Require().NoError(err)
		s.Equal(3, updated.NumberOfSpots())
		s.Equal([]string{"Central-001", "Central-002", "Central-003"}, s.store.spotNumbers(lotID))
	})

	s.Run("shrink gives up when every pass comes back short", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 5)
		s.store.shortRemovable = 10

		_, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("Central", 3))

		s.True(errs.Is(err, commands.ErrSpotOccupied))
		n, _ := s.store.lotSpotCount(lotID)
		s.Equal(5, n)
	})

	s.Run("name clash with another lot", func() {
		s.SetupTest()
		s.store.seedLot("North", "10", 1)
		lotID, _ := s.store.seedLot("Central", "10", 1)

		_, err := s.lots.UpdateLot(s.ctx, lotID, lotInput("North", 1))

		s.True(errs.Is(err, commands.ErrDuplicateLotName))
	})

	s.Run("unknown lot", func() {
		s.SetupTest()

		_, err := s.lots.UpdateLot(s.ctx, uuid.New(), lotInput("Central", 1))

		s.True(errs.Is(err, commands.ErrLotNotFound))
	})
}

func (s *LotCommandsTestSuite) TestDeleteLot() {
	s.Run("removes the lot and its spots", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 2)
		resID := s.occupy(lotID, spotIDs[0])
		_, err := s.alloc.Release(s.ctx, resID, commands.Actor{IsAdmin: true})
		s.Require().NoError(err)

		s.Require().NoError(s.lots.DeleteLot(s.ctx, lotID))

		_, ok := s.store.lotSpotCount(lotID)
		s.False(ok)
		s.Empty(s.store.spotNumbers(lotID))
		_, ok = s.store.reservation(resID)
		s.False(ok)
	})

	s.Run("refused while a spot is occupied", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 2)
		s.occupy(lotID, spotIDs[1])

		err := s.lots.DeleteLot(s.ctx, lotID)

		s.True(errs.Is(err, commands.ErrLotHasOccupiedSpots))
		_, ok := s.store.lotSpotCount(lotID)
		s.True(ok)
	})

	s.Run("unknown lot", func() {
		s.SetupTest()

		s.True(errs.Is(s.lots.DeleteLot(s.ctx, uuid.New()), commands.ErrLotNotFound))
	})
}

func (s *LotCommandsTestSuite) TestAddSpot() {
	s.Run("auto numbered", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 2)

		added, err := s.lots.AddSpot(s.ctx, lotID, nil)

		s.Require().NoError(err)
		s.Equal("Central-003", added.Number())
		n, _ := s.store.lotSpotCount(lotID)
		s.Equal(3, n)
	})

	s.Run("blank number is auto numbered", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 0)
		blank := "   "

		added, err := s.lots.AddSpot(s.ctx, lotID, &blank)

		s.Require().NoError(err)
		s.Equal("Central-001", added.Number())
	})

	s.Run("explicit number", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 1)
		number := " VIP-1 "

		added, err := s.lots.AddSpot(s.ctx, lotID, &number)

		s.Require().NoError(err)
		s.Equal("VIP-1", added.Number())
	})

	s.Run("duplicate number", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 1)
		number := "Central-001"

		_, err := s.lots.AddSpot(s.ctx, lotID, &number)

		s.True(errs.Is(err, commands.ErrDuplicateSpotNumber))
		n, _ := s.store.lotSpotCount(lotID)
		s.Equal(1, n)
	})

	s.Run("unknown lot", func() {
		s.SetupTest()

		_, err := s.lots.AddSpot(s.ctx, uuid.New(), nil)

		s.True(errs.Is(err, commands.ErrLotNotFound))
	})
}

func (s *LotCommandsTestSuite) TestRemoveSpots() {
	s.Run("removes the given spots once each", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 3)

		n, err := s.lots.RemoveSpots(s.ctx, lotID, []uuid.UUID{spotIDs[0], spotIDs[2], spotIDs[0]})

		s.Require().NoError(err)
		s.Equal(int64(2), n)
		s.Equal([]string{"Central-002"}, s.store.spotNumbers(lotID))
		count, _ := s.store.lotSpotCount(lotID)
		s.Equal(1, count)
	})

	s.Run("all or nothing when one is occupied", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 3)
		s.occupy(lotID, spotIDs[1])

		_, err := s.lots.RemoveSpots(s.ctx, lotID, spotIDs)

		s.True(errs.Is(err, commands.ErrSpotOccupied))
		s.Len(s.store.spotNumbers(lotID), 3)
	})

	s.Run("spot of another lot", func() {
		s.SetupTest()
		lotID, _ := s.store.seedLot("Central", "10", 1)
		_, foreign := s.store.seedLot("North", "10", 1)

		_, err := s.lots.RemoveSpots(s.ctx, lotID, foreign)

		s.True(errs.Is(err, commands.ErrSpotNotFound))
	})

	s.Run("empty list", func() {
		s.SetupTest()

		_, err := s.lots.RemoveSpots(s.ctx, uuid.New(), nil)

		s.True(errs.Is(err, commands.ErrInvalidLot))
	})
}

func (s *LotCommandsTestSuite) TestDeleteSpot() {
	s.Run("available spot", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 2)

		s.Require().NoError(s.lots.DeleteSpot(s.ctx, spotIDs[1]))

		s.Equal([]string{"Central-001"}, s.store.spotNumbers(lotID))
		n, _ := s.store.lotSpotCount(lotID)
		s.Equal(1, n)
	})

	s.Run("occupied spot", func() {
		s.SetupTest()
		lotID, spotIDs := s.store.seedLot("Central", "10", 1)
		s.occupy(lotID, spotIDs[0])

		s.True(errs.Is(s.lots.DeleteSpot(s.ctx, spotIDs[0]), commands.ErrSpotOccupied))
	})

	s.Run("unknown spot", func() {
		s.SetupTest()

		s.True(errs.Is(s.lots.DeleteSpot(s.ctx, uuid.New()), commands.ErrSpotNotFound))
	})
}
