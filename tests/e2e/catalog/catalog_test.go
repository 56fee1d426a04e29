//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"

	"motorcare/internal/handler/dto/response"
	"motorcare/tests/common/authtest"
	"motorcare/tests/common/dbtest"
	"motorcare/tests/common/helper"
	"motorcare/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type catalogSuite struct {
	e2e.SharedSuite

	mechanicID  uuid.UUID
	clientToken string
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.mechanicID = dbtest.CreateTestMechanic(t, s.DB, "wrench@example.com", "Jo", "Wrench")
	s.clientToken = authtest.CreateAndLogin(t, s.DB, s.Router, "client@example.com", "client")
}

func offeringsURL(mechanicID uuid.UUID) string {
	return fmt.Sprintf("/api/mechanics/%s/services", mechanicID)
}

func (s *catalogSuite) TestMechanicOfferings() {
	s.Run("groups enabled offerings by category", func() {
		t := s.T()

		oil := dbtest.CreateTestService(t, s.DB, "Oil Change", "maintenance", 49.99, 45)
		rotation := dbtest.CreateTestService(t, s.DB, "Tire Rotation", "maintenance", 25, 30)
		brakes := dbtest.CreateTestService(t, s.DB, "Brake Pads", "brakes", 120, 90)
		dbtest.EnableOffering(t, s.DB, s.mechanicID, oil, true)
		dbtest.EnableOffering(t, s.DB, s.mechanicID, rotation, true)
		dbtest.EnableOffering(t, s.DB, s.mechanicID, brakes, true)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, offeringsURL(s.mechanicID), nil, s.clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var categories []response.ServiceCategoryResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &categories))
		require.Len(t, categories, 2)
		require.Equal(t, "brakes", categories[0].Category)
		require.Len(t, categories[0].Services, 1)
		require.Equal(t, "maintenance", categories[1].Category)
		require.Len(t, categories[1].Services, 2)
	})

	s.Run("disabled offerings are hidden", func() {
		t := s.T()

		oil := dbtest.CreateTestService(t, s.DB, "Oil Change", "maintenance", 49.99, 45)
		dbtest.EnableOffering(t, s.DB, s.mechanicID, oil, false)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, offeringsURL(s.mechanicID), nil, s.clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var categories []response.ServiceCategoryResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &categories))
		require.Empty(t, categories)
	})

	s.Run("deactivated services are hidden even when enabled", func() {
		t := s.T()

		oil := dbtest.CreateTestService(t, s.DB, "Oil Change", "maintenance", 49.99, 45)
		dbtest.EnableOffering(t, s.DB, s.mechanicID, oil, true)
		_, err := s.DB.Exec(t.Context(), "UPDATE services SET is_active = false WHERE id = $1", oil)
		require.NoError(t, err)

		w := helper.PerformRequest(t, s.Router, http.MethodGet, offeringsURL(s.mechanicID), nil, s.clientToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var categories []response.ServiceCategoryResponse
		require.NoError(t, helper.DecodeResponseBody(t, w.Body, &categories))
		require.Empty(t, categories)
	})

	s.Run("unknown mechanic", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, offeringsURL(uuid.New()), nil, s.clientToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("requires authentication", func() {
		t := s.T()

		w := helper.PerformRequest(t, s.Router, http.MethodGet, offeringsURL(s.mechanicID), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
