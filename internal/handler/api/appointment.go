package api

import (
	"errors"
	"net/http"

	reqdto "motorcare/internal/handler/dto/request"
	resdto "motorcare/internal/handler/dto/response"
	"motorcare/internal/handler/middleware"
	"motorcare/internal/usecase/commands"
	"motorcare/internal/usecase/queries"
	"motorcare/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(appointmentCommands commands.AppointmentCommands, appointmentQueries queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Schedule a new service appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Create(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidReference):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vehicle, mechanic or service not found",
			})
		case errors.Is(err, commands.ErrOfferingUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Mechanic does not currently offer this service",
			})
		case errors.Is(err, commands.ErrInvalidSchedule):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Scheduled time must be in the future",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid appointment data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get appointment detail by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List appointments visible to the caller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param upcoming query bool false "Only non-terminal appointments, soonest first"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	opts := queries.ListOptions{
		Upcoming: c.Query("upcoming") == "true",
	}

	items, err := h.listForActor(c, actor, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItems(items))
}

func (h *AppointmentHandler) listForActor(c *gin.Context, actor shared.Actor, opts queries.ListOptions) ([]*queries.AppointmentListItem, error) {
	ctx := c.Request.Context()
	switch {
	case actor.IsAdmin():
		return h.appointmentQueries.ListAdmin(ctx, opts)
	case actor.IsMechanic():
		return h.appointmentQueries.ListForMechanic(ctx, actor.ID, opts)
	default:
		return h.appointmentQueries.ListForUser(ctx, actor.ID, opts)
	}
}

// @Summary Transition appointment
// @Description Apply a lifecycle action (start, complete, cancel) to an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.TransitionRequest true "Transition request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/transition [post]
func (h *AppointmentHandler) Transition(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	var req reqdto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown action",
		})
		return
	}

	view, err := h.appointmentCommands.Transition(c.Request.Context(), actor, id, input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrActorNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to perform this action",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		case errors.Is(err, commands.ErrConcurrentModification):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Appointment was modified concurrently",
			})
		case errors.Is(err, commands.ErrInvalidCompletionData):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid completion data",
			})
		case errors.Is(err, commands.ErrInvalidReference):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Referenced vehicle no longer exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
