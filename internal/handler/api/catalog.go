package api

import (
	"errors"
	"net/http"

	resdto "motorcare/internal/handler/dto/response"
	"motorcare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Mechanic offerings
// @Description List a mechanic's enabled service offerings grouped by category
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mechanic ID"
// @Success 200 {array} resdto.ServiceCategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /mechanics/{id}/services [get]
func (h *CatalogHandler) MechanicOfferings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid mechanic ID format",
		})
		return
	}

	categories, err := h.catalogQueries.MechanicOfferings(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMechanicNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Mechanic not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceCategories(categories))
}
