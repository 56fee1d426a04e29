//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"motorcare/internal/domain/user"
	"motorcare/internal/handler/api"
	resdto "motorcare/internal/handler/dto/response"
	"motorcare/internal/usecase/commands"
	"motorcare/internal/usecase/queries"
	"motorcare/tests/common/builder"
	"motorcare/tests/common/helper"
	"motorcare/tests/common/httptest"
	"motorcare/tests/common/testutil"
	commandsmock "motorcare/tests/mock/commands"
	queriesmock "motorcare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler

	actorID   uuid.UUID
	actorRole user.Role
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleClient

	// Stand-in for the auth middleware.
	actor := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
	}

	s.router.POST("/appointments", actor, s.handler.Create)
	s.router.GET("/appointments", actor, s.handler.List)
	s.router.GET("/appointments/:id", actor, s.handler.Get)
	s.router.POST("/appointments/:id/transition", actor, s.handler.Transition)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/appointments"

	b := builder.NewAppointmentBuilder()
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("scheduled", response.Status)
		s.InDelta(view.Price, response.Price, 0.001)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: vehicle_vin", mutate: testutil.Field("vehicle_vin", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: mechanic_id", mutate: testutil.Field("mechanic_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: scheduled_time", mutate: testutil.Field("scheduled_time", nil), expectCode: http.StatusBadRequest},
			{name: "malformed mechanic_id", mutate: testutil.Field("mechanic_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("error mapping from the usecase layer", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "unknown reference",
				err:        commands.ErrInvalidReference,
				expectCode: http.StatusNotFound,
				expectMsg:  "Vehicle, mechanic or service not found",
			},
			{
				name:       "offering unavailable",
				err:        commands.ErrOfferingUnavailable,
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "Mechanic does not currently offer this service",
			},
			{
				name:       "past schedule",
				err:        commands.ErrInvalidSchedule,
				expectCode: http.StatusBadRequest,
				expectMsg:  "Scheduled time must be in the future",
			},
			{
				name:       "domain validation",
				err:        commands.ErrDomainValidation,
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "Invalid appointment data",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGet() {
	b := builder.NewAppointmentBuilder()
	view := b.BuildView()
	url := fmt.Sprintf("/appointments/%s", b.ID)

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).
			Return(view, nil).Times(1)

		var response resdto.AppointmentResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.MechanicName, response.MechanicName)
	})

	s.Run("error: 404 when hidden or missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), b.ID).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 on malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})
}

func (s *AppointmentHandlerTestSuite) TestList() {
	url := "/appointments"

	items := []*queries.AppointmentListItem{
		{ID: uuid.New(), Status: "scheduled"},
		{ID: uuid.New(), Status: "completed"},
	}

	s.Run("client listing scopes to the caller", func() {
		s.actorRole = user.RoleClient
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actorID, queries.ListOptions{}).
			Return(items, nil).Times(1)

		var response []resdto.AppointmentListResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("mechanic listing scopes to assignments", func() {
		s.actorRole = user.RoleMechanic
		s.mockQueries.EXPECT().ListForMechanic(gomock.Any(), s.actorID, queries.ListOptions{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("admin sees everything", func() {
		s.actorRole = user.RoleAdmin
		s.mockQueries.EXPECT().ListAdmin(gomock.Any(), queries.ListOptions{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("upcoming flag is forwarded", func() {
		s.actorRole = user.RoleClient
		s.mockQueries.EXPECT().ListForUser(gomock.Any(), s.actorID, queries.ListOptions{Upcoming: true}).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?upcoming=true", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestTransition() {
	b := builder.NewAppointmentBuilder()
	url := fmt.Sprintf("/appointments/%s/transition", b.ID)

	startBody := map[string]any{"action": "start"}

	s.Run("success: returns the refreshed appointment", func() {
		view := b.WithStatus("in-progress").BuildView()
		s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).
			Return(view, nil).Times(1)

		var response resdto.AppointmentResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, startBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("in-progress", response.Status)
	})

	s.Run("error: 400 on unknown action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"action": "pause"}, "")
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 on missing action", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("error mapping from the usecase layer", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectMsg  string
		}{
			{
				name:       "not found",
				err:        commands.ErrAppointmentNotFound,
				expectCode: http.StatusNotFound,
				expectMsg:  "Appointment not found",
			},
			{
				name:       "actor not allowed",
				err:        commands.ErrActorNotAllowed,
				expectCode: http.StatusForbidden,
				expectMsg:  "Not allowed to perform this action",
			},
			{
				name:       "illegal transition",
				err:        commands.ErrInvalidTransition,
				expectCode: http.StatusConflict,
				expectMsg:  "Status transition not allowed",
			},
			{
				name:       "lost concurrent race",
				err:        commands.ErrConcurrentModification,
				expectCode: http.StatusConflict,
				expectMsg:  "Appointment was modified concurrently",
			},
			{
				name:       "invalid completion data",
				err:        commands.ErrInvalidCompletionData,
				expectCode: http.StatusUnprocessableEntity,
				expectMsg:  "Invalid completion data",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), gomock.Any(), b.ID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, startBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
			})
		}
	})
}
