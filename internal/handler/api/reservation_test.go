//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAllocationCommands
	mockQueries  *queriesmock.MockReservationQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAllocationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.role = user.RoleUser
	handler := api.NewReservationHandler(s.mockCommands, s.mockQueries)

	authed := s.router.Group("/", func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
		c.Next()
	})
	authed.POST("/lots/:lot_id/reserve", handler.Reserve)
	authed.POST("/reservations/:reservation_id/park-in", handler.ParkIn)
	authed.POST("/reservations/:reservation_id/release", handler.Release)
	authed.POST("/reservations/end", handler.EndSession)
	authed.GET("/reservations/active", handler.Active)
	authed.GET("/reservations/history", handler.History)
	authed.GET("/dashboard", handler.Dashboard)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) reserveResult(lotID, spotID uuid.UUID) *commands.ReserveResult {
	lb := builder.NewLotBuilder().With(func(b *builder.LotBuilder) { b.ID = lotID })
	l, err := lb.BuildDomain()
	s.Require().NoError(err)
	sp := lb.BuildSpots()[0]
	r, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.SpotID = spotID
		b.UserID = s.userID
	}).BuildDomain()
	s.Require().NoError(err)
	return &commands.ReserveResult{Reservation: r, Spot: sp, Lot: l}
}

func (s *ReservationHandlerTestSuite) TestReserve() {
	lotID := uuid.New()
	spotID := uuid.New()
	url := "/lots/" + lotID.String() + "/reserve"
	reqBody := map[string]any{"spot_id": spotID.String(), "vehicle_number": "KA01AB1234"}

	s.Run("success: returns 201 Created with reservation, spot and lot", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), commands.ReserveInput{
			UserID:        s.userID,
			LotID:         lotID,
			SpotID:        spotID,
			VehicleNumber: "KA01AB1234",
		}).Return(s.reserveResult(lotID, spotID), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response struct {
			Data resdto.ReserveResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("active", response.Data.Reservation.Status)
		s.Equal(lotID, response.Data.Lot.ID)
		s.NotNil(response.Data.Spot)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		testCases := []struct {
			name   string
			url    string
			mutate func(m map[string]any)
			msg    string
		}{
			{name: "invalid lot id", url: "/lots/not-a-uuid/reserve", mutate: testutil.Field("spot_id", spotID.String()), msg: "Invalid lot_id"},
			{name: "missing spot_id", url: url, mutate: testutil.Field("spot_id", nil), msg: "Invalid request format"},
			{name: "missing vehicle_number", url: url, mutate: testutil.Field("vehicle_number", nil), msg: "Invalid request format"},
			{name: "vehicle_number too long", url: url, mutate: testutil.Field("vehicle_number", "ABCDEFGHIJKLMNOPQRSTU"), msg: "Invalid request format"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, tc.url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("error: maps allocation errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "spot taken", err: commands.ErrSpotUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "spot is not available"},
			{name: "user already parked", err: commands.ErrUserHasActiveReservation, expectedStatus: http.StatusConflict, expectedMsg: "active parking reservation"},
			{name: "unknown spot", err: commands.ErrSpotNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "parking spot not found"},
			{name: "bad plate", err: commands.ErrInvalidVehicleNumber, expectedStatus: http.StatusBadRequest, expectedMsg: "invalid vehicle number"},
			{name: "database failure", err: errors.New("connection reset"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestRelease() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/release"

	completed, err := builder.NewReservationBuilder().
		Completed(90*time.Minute, decimal.RequireFromString("15")).
		BuildDomain()
	s.Require().NoError(err)
	result := &commands.ReleaseResult{
		Reservation:   completed,
		DurationHours: decimal.RequireFromString("1.5"),
		Cost:          decimal.RequireFromString("15"),
	}

	s.Run("success: owner releases with a non-admin actor", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), id, commands.Actor{ID: s.userID, IsAdmin: false}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response struct {
			Data resdto.ReleaseResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Data.Reservation.Status)
		s.True(response.Data.Cost.Equal(decimal.NewFromInt(15)))
		s.True(response.Data.Duration.Equal(decimal.RequireFromString("1.5")))
	})

	s.Run("success: admin role is passed through to the actor", func() {
		s.role = user.RoleAdmin
		defer func() { s.role = user.RoleUser }()

		s.mockCommands.EXPECT().Release(gomock.Any(), id, commands.Actor{ID: s.userID, IsAdmin: true}).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps release errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "not the owner", err: commands.ErrNotOwner, expectedStatus: http.StatusForbidden},
			{name: "already released", err: commands.ErrAlreadyReleased, expectedStatus: http.StatusConflict},
			{name: "missing", err: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Release(gomock.Any(), id, gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})

	s.Run("error: 400 on a malformed reservation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc/release", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation_id")
	})
}

func (s *ReservationHandlerTestSuite) TestParkIn() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/park-in"

	s.Run("success: returns the parked reservation", func() {
		parked := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
		r, err := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.ParkedInAt = &parked
		}).BuildDomain()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().ParkIn(gomock.Any(), id, s.userID).Return(r, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response struct {
			Data resdto.ReservationResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Data.ParkedInAt)
		s.True(parked.Equal(*response.Data.ParkedInAt))
	})

	s.Run("error: 409 when already parked in", func() {
		s.mockCommands.EXPECT().ParkIn(gomock.Any(), id, s.userID).Return(nil, commands.ErrAlreadyParkedIn).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already parked in")
	})
}

func (s *ReservationHandlerTestSuite) TestEndSession() {
	s.Run("error: 404 when nothing is active", func() {
		s.mockCommands.EXPECT().ReleaseActive(gomock.Any(), s.userID).
			Return(nil, commands.ErrReservationNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/end", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestActive() {
	s.Run("success: data is null when no reservation is active", func() {
		s.mockQueries.EXPECT().ActiveForUser(gomock.Any(), s.userID).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/active", nil, "")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response["success"].(bool))
		s.Nil(response["data"])
	})

	s.Run("success: returns the active reservation with its estimate", func() {
		view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) { b.UserID = s.userID }).BuildReadModel()
		estimate := decimal.RequireFromString("12.5")
		view.EstimatedCost = &estimate
		s.mockQueries.EXPECT().ActiveForUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/active", nil, "")

		var response struct {
			Data resdto.ReservationResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.Data.ID)
		s.Equal("Central", response.Data.LotName)
		s.Require().NotNil(response.Data.EstimatedCost)
		s.True(estimate.Equal(*response.Data.EstimatedCost))
	})
}

func (s *ReservationHandlerTestSuite) TestHistory() {
	s.Run("success: forwards the filter and returns the page", func() {
		status := "completed"
		expected := queries.HistoryFilter{Status: &status, Sort: queries.SortByCost, Page: 2}
		items := []*queries.ReservationListItem{{ID: uuid.New(), Status: "completed", LotName: "Central"}}
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID, expected).
			Return(queries.NewPage(items, 21, 2, 20), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?status=completed&sort=cost&page=2", nil, "")

		var response struct {
			Data resdto.PageResponse[*resdto.ReservationListResponse] `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Data.Items, 1)
		s.Equal(int64(21), response.Data.Total)
		s.Equal(2, response.Data.TotalPages)
	})

	s.Run("error: 400 on an invalid sort", func() {
		s.mockQueries.EXPECT().History(gomock.Any(), s.userID, gomock.Any()).
			Return(queries.Page[*queries.ReservationListItem]{}, queries.ErrInvalidFilter).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?sort=price", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid filter")
	})

	s.Run("error: 400 on a negative page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/history?page=-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})
}
