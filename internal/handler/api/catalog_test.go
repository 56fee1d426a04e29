//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"motorcare/internal/handler/api"
	resdto "motorcare/internal/handler/dto/response"
	"motorcare/internal/usecase/queries"
	"motorcare/tests/common/helper"
	"motorcare/tests/common/httptest"
	queriesmock "motorcare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/mechanics/:id/services", s.handler.MechanicOfferings)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestMechanicOfferings() {
	mechanicID := uuid.New()
	url := fmt.Sprintf("/mechanics/%s/services", mechanicID)

	s.Run("success: returns offerings grouped by category", func() {
		categories := []queries.ServiceCategoryView{
			{
				Category: "brakes",
				Services: []queries.ServiceOfferingView{
					{ServiceID: uuid.New(), Name: "Brake Pad Replacement", Price: 189.99, DurationMin: 90},
				},
			},
			{
				Category: "maintenance",
				Services: []queries.ServiceOfferingView{
					{ServiceID: uuid.New(), Name: "Oil Change", Price: 49.99, DurationMin: 45},
					{ServiceID: uuid.New(), Name: "Tire Rotation", Price: 29.99, DurationMin: 30},
				},
			},
		}

		s.mockQueries.EXPECT().MechanicOfferings(gomock.Any(), mechanicID).
			Return(categories, nil).Times(1)

		var response []resdto.ServiceCategoryResponse
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)

		s.Require().Len(response, 2)
		s.Equal("brakes", response[0].Category)
		s.Len(response[0].Services, 1)
		s.Equal("maintenance", response[1].Category)
		s.Len(response[1].Services, 2)
		s.Equal("Oil Change", response[1].Services[0].Name)
	})

	s.Run("success: empty catalog yields an empty array", func() {
		s.mockQueries.EXPECT().MechanicOfferings(gomock.Any(), mechanicID).
			Return([]queries.ServiceCategoryView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 404 for unknown mechanic", func() {
		s.mockQueries.EXPECT().MechanicOfferings(gomock.Any(), mechanicID).
			Return(nil, queries.ErrMechanicNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Mechanic not found")
	})

	s.Run("error: 400 on malformed mechanic ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/mechanics/not-a-uuid/services", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid mechanic ID format")
	})
}
