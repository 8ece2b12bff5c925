package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gymcoach/platform/internal/domain"
	"gymcoach/platform/internal/service"
	"gymcoach/platform/internal/store"

	"github.com/gin-gonic/gin"
)

// PlanHandler serves workout and meal plan creation and listing.
type PlanHandler struct {
	plans service.PlanService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(plans service.PlanService) *PlanHandler {
	return &PlanHandler{plans: plans}
}

// CreateWorkoutPlan handles POST /api/workout-plans.
func (h *PlanHandler) CreateWorkoutPlan(c *gin.Context) {
	var plan domain.WorkoutPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	plan.ID = ""
	plan.ApplyDefaults()

	id, err := h.plans.CreateWorkoutPlan(c.Request.Context(), &plan)
	if err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListWorkoutPlans handles GET /api/workout-plans?trainer_id=&client_id=&active=.
func (h *PlanHandler) ListWorkoutPlans(c *gin.Context) {
	h.listPlans(c, h.plans.ListWorkoutPlans)
}

// CreateMealPlan handles POST /api/meal-plans.
func (h *PlanHandler) CreateMealPlan(c *gin.Context) {
	var plan domain.MealPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	plan.ID = ""
	plan.ApplyDefaults()

	id, err := h.plans.CreateMealPlan(c.Request.Context(), &plan)
	if err != nil {
		h.abortPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListMealPlans handles GET /api/meal-plans?trainer_id=&client_id=&active=.
func (h *PlanHandler) ListMealPlans(c *gin.Context) {
	h.listPlans(c, h.plans.ListMealPlans)
}

type listPlansFunc func(ctx context.Context, trainerID, clientID string, active bool) ([]store.Document, error)

func (h *PlanHandler) listPlans(c *gin.Context, list listPlansFunc) {
	active := true
	if raw := c.Query("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "active must be a boolean")
			return
		}
		active = parsed
	}

	plans, err := list(c.Request.Context(), c.Query("trainer_id"), c.Query("client_id"), active)
	if err != nil {
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (h *PlanHandler) abortPlanError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParty):
		abortWithError(c, http.StatusBadRequest, "Invalid trainer or client")
	case errors.Is(err, service.ErrNotConnected):
		abortWithError(c, http.StatusForbidden, "Client not connected to trainer")
	default:
		if !abortStoreError(c, err) {
			abortInternal(c, err)
		}
	}
}
