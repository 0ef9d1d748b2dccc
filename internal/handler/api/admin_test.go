//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parking-core/internal/domain/spot"
	"parking-core/internal/domain/user"
	"parking-core/internal/handler/api"
	resdto "parking-core/internal/handler/dto/response"
	"parking-core/internal/usecase/commands"
	"parking-core/internal/usecase/queries"
	"parking-core/tests/common/builder"
	"parking-core/tests/common/httptest"
	"parking-core/tests/common/testutil"
	commandsmock "parking-core/tests/mock/commands"
	queriesmock "parking-core/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	lotCmds       *commandsmock.MockLotCommands
	allocation    *commandsmock.MockAllocationCommands
	authCmds      *commandsmock.MockAuthCommands
	lotQueries    *queriesmock.MockLotQueries
	reservationsQ *queriesmock.MockReservationQueries
	userQueries   *queriesmock.MockUserQueries
	adminID       uuid.UUID
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.lotCmds = commandsmock.NewMockLotCommands(s.mockCtrl)
	s.allocation = commandsmock.NewMockAllocationCommands(s.mockCtrl)
	s.authCmds = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.lotQueries = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.reservationsQ = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.userQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.adminID = uuid.New()

	h := api.NewAdminHandler(s.lotCmds, s.allocation, s.authCmds, s.lotQueries, s.reservationsQ, s.userQueries)
	admin := s.router.Group("/admin", func(c *gin.Context) {
		c.Set("user_id", s.adminID)
		c.Set("user_role", user.RoleAdmin)
		c.Next()
	})
	admin.POST("/lots", h.CreateLot)
	admin.PUT("/lots/:id", h.UpdateLot)
	admin.DELETE("/lots/:id", h.DeleteLot)
	admin.POST("/lots/:id/spots", h.AddSpot)
	admin.POST("/lots/:id/spots/remove", h.RemoveSpots)
	admin.DELETE("/spots/:id", h.DeleteSpot)
	admin.GET("/spots/:id/reservation", h.SpotReservation)
	admin.PATCH("/spots/:id/status", h.OverrideStatus)
	admin.GET("/bookings", h.ListBookings)
	admin.POST("/bookings/:id/cancel", h.CancelBooking)
	admin.GET("/users", h.ListUsers)
	admin.PATCH("/users/:id/toggle", h.ToggleUserStatus)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestCreateLot() {
	lb := builder.NewLotBuilder()
	reqBody := lb.BuildDTO()

	s.Run("success: returns 201 with the lot and its generated spots", func() {
		l, err := lb.BuildDomain()
		s.Require().NoError(err)
		s.lotCmds.EXPECT().CreateLot(gomock.Any(), reqBody.ToInput()).
			Return(&commands.CreateLotResult{Lot: l, Spots: lb.BuildSpots()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/lots", reqBody, "")

		var response struct {
			Data resdto.CreateLotResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Central", response.Data.Lot.Name)
		s.Equal(int64(3), response.Data.Lot.AvailableSpots)
		s.Require().Len(response.Data.Spots, 3)
		s.Equal("Central-001", response.Data.Spots[0].SpotNumber)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing pin code", mutate: testutil.Field("pin_code", nil)},
			{name: "zero spots", mutate: testutil.Field("number_of_spots", 0)},
			{name: "negative spots", mutate: testutil.Field("number_of_spots", -2)},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/lots", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 409 on a duplicate lot name", func() {
		s.lotCmds.EXPECT().CreateLot(gomock.Any(), gomock.Any()).Return(nil, commands.ErrDuplicateLotName).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/lots", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "parking lot name already exists")
	})
}

func (s *AdminHandlerTestSuite) TestUpdateLot() {
	lb := builder.NewLotBuilder().With(func(b *builder.LotBuilder) {
		b.Price = decimal.NewFromInt(25)
		b.NumberOfSpots = 5
	})
	url := "/admin/lots/" + lb.ID.String()

	s.Run("success: reloads the lot view after the update", func() {
		l, err := lb.BuildDomain()
		s.Require().NoError(err)
		gomock.InOrder(
			s.lotCmds.EXPECT().UpdateLot(gomock.Any(), lb.ID, gomock.Any()).Return(l, nil),
			s.lotQueries.EXPECT().GetLot(gomock.Any(), lb.ID).Return(lb.BuildReadModel(), nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, lb.BuildDTO(), "")

		var response struct {
			Data resdto.LotResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(5, response.Data.NumberOfSpots)
		s.True(response.Data.Price.Equal(decimal.NewFromInt(25)))
	})

	s.Run("error: 409 when shrinking would drop an occupied spot", func() {
		s.lotCmds.EXPECT().UpdateLot(gomock.Any(), lb.ID, gomock.Any()).Return(nil, commands.ErrSpotOccupied).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, lb.BuildDTO(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "spot is occupied")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteLot() {
	id := uuid.New()

	s.Run("success: returns 200", func() {
		s.lotCmds.EXPECT().DeleteLot(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/lots/"+id.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps lot errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "occupied spots", err: commands.ErrLotHasOccupiedSpots, expectedStatus: http.StatusConflict},
			{name: "missing lot", err: commands.ErrLotNotFound, expectedStatus: http.StatusNotFound},
			{name: "database error", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.lotCmds.EXPECT().DeleteLot(gomock.Any(), id).Return(tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/lots/"+id.String(), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestAddSpot() {
	lotID := uuid.New()
	url := "/admin/lots/" + lotID.String() + "/spots"
	added := spot.ReconstructSpot(uuid.New(), lotID, "Central-004", spot.StatusAvailable, builder.NewReservationBuilder().ReservedAt)

	s.Run("success: an empty body asks for the next free number", func() {
		s.lotCmds.EXPECT().AddSpot(gomock.Any(), lotID, (*string)(nil)).Return(added, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response struct {
			Data resdto.SpotResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Central-004", response.Data.SpotNumber)
	})

	s.Run("success: an explicit number is forwarded", func() {
		number := "VIP-1"
		s.lotCmds.EXPECT().AddSpot(gomock.Any(), lotID, &number).Return(added, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"spot_number": number}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 on a duplicate number", func() {
		s.lotCmds.EXPECT().AddSpot(gomock.Any(), lotID, gomock.Any()).Return(nil, commands.ErrDuplicateSpotNumber).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"spot_number": "Central-001"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "spot number already exists")
	})
}

func (s *AdminHandlerTestSuite) TestRemoveSpots() {
	lotID := uuid.New()
	url := "/admin/lots/" + lotID.String() + "/spots/remove"

	s.Run("success: reports how many spots were removed", func() {
		ids := []uuid.UUID{uuid.New(), uuid.New()}
		s.lotCmds.EXPECT().RemoveSpots(gomock.Any(), lotID, ids).Return(int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"spot_ids": ids}, "")

		var response struct {
			Data map[string]int64 `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.Data["removed"])
	})

	s.Run("error: 400 on an empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"spot_ids": []string{}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestOverrideStatus() {
	spotID := uuid.New()
	url := "/admin/spots/" + spotID.String() + "/status"

	s.Run("success: forcing available reports the cancelled reservation", func() {
		cancelled, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Status = "cancelled"
			b.SpotID = spotID
			released := b.ReservedAt
			b.ReleasedAt = &released
		}).BuildDomain()
		s.Require().NoError(err)
		sp := spot.ReconstructSpot(spotID, uuid.New(), "Central-001", spot.StatusAvailable, cancelled.ReservedAt())
		s.allocation.EXPECT().OverrideStatus(gomock.Any(), spotID, "available").
			Return(&commands.OverrideResult{Spot: sp, Cancelled: cancelled}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "available"}, "")

		var response struct {
			Data resdto.OverrideResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("available", response.Data.Spot.Status)
		s.Require().NotNil(response.Data.CancelledReservation)
		s.Equal("cancelled", response.Data.CancelledReservation.Status)
	})

	s.Run("error: 400 on an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "reserved"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestSpotReservation() {
	spotID := uuid.New()

	s.Run("success: null when the spot is free", func() {
		s.reservationsQ.EXPECT().ActiveForSpot(gomock.Any(), spotID).Return(nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/spots/"+spotID.String()+"/reservation", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Nil(response["data"])
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	s.Run("success: parses filters and makes date_to inclusive", func() {
		lotID := uuid.New()
		s.reservationsQ.EXPECT().ListBookings(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, f queries.BookingFilter) (queries.Page[*queries.ReservationView], error) {
				s.Require().NotNil(f.LotID)
				s.Equal(lotID, *f.LotID)
				s.Require().NotNil(f.DateTo)
				s.Equal("2025-03-02", f.DateTo.Format("2006-01-02"))
				return queries.NewPage([]*queries.ReservationView{builder.NewReservationBuilder().BuildReadModel()}, 1, 1, 20), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/admin/bookings?lot_id="+lotID.String()+"&date_from=2025-03-01&date_to=2025-03-01", nil, "")

		var response struct {
			Data resdto.PageResponse[*resdto.ReservationResponse] `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data.Items, 1)
	})

	s.Run("error: 400 on a malformed filter", func() {
		testCases := []string{"lot_id=abc", "user_id=123", "date_from=03/01/2025", "date_to=yesterday"}
		for _, q := range testCases {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?"+q, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
			})
		}
	})
}

func (s *AdminHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("error: 409 when the booking already ended", func() {
		s.allocation.EXPECT().AdminCancel(gomock.Any(), id).Return(nil, commands.ErrAlreadyReleased).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already released")
	})
}

func (s *AdminHandlerTestSuite) TestToggleUserStatus() {
	target := uuid.New()
	url := "/admin/users/" + target.String() + "/toggle"

	s.Run("success: reports the new state", func() {
		u, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.ID = target }).AsInactive().BuildDomain()
		s.Require().NoError(err)
		s.authCmds.EXPECT().ToggleUserActive(gomock.Any(), s.adminID, target).Return(u, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")

		var response resdto.Envelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("User deactivated", response.Message)
	})

	s.Run("error: 400 when an admin targets themselves", func() {
		s.authCmds.EXPECT().ToggleUserActive(gomock.Any(), s.adminID, target).
			Return(nil, commands.ErrCannotDeactivateSelf).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cannot deactivate themselves")
	})
}

func (s *AdminHandlerTestSuite) TestListUsers() {
	s.Run("success: returns the requested page", func() {
		users := []*queries.UserView{{ID: uuid.New(), Email: "a@example.com", Role: "user", IsActive: true, TotalReservations: 3}}
		s.userQueries.EXPECT().ListUsers(gomock.Any(), 2).Return(queries.NewPage(users, 21, 2, 20), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/users?page=2", nil, "")

		var response struct {
			Data resdto.PageResponse[*resdto.AdminUserResponse] `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Data.Items, 1)
		s.Equal(int64(3), response.Data.Items[0].TotalReservations)
	})
}
