package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

type legalActionHandler struct {
	legalActionService portssvc.LegalActionSvcFacade
}

// registerLegalActionRoutes sets up the routes for legal action management.
func registerLegalActionRoutes(v1 *gin.RouterGroup, legalActionService portssvc.LegalActionSvcFacade) {
	h := &legalActionHandler{legalActionService: legalActionService}

	actions := v1.Group("/legal-actions")
	{
		actions.POST("", h.createLegalAction)
		actions.GET("/:id", h.getLegalAction)
		actions.PUT("/:id", h.updateLegalAction)
		actions.DELETE("/:id", h.deleteLegalAction)
	}
}

// createLegalAction godoc
// @Summary Create a legal action
// @Description Records a legal collection measure against a customer.
// @Tags legal-actions
// @Accept json
// @Produce json
// @Param action body dto.CreateLegalActionRequest true "Legal Action Info"
// @Success 201 {object} dto.LegalActionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /legal-actions [post]
func (h *legalActionHandler) createLegalAction(c *gin.Context) {
	var req dto.CreateLegalActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	action, err := h.legalActionService.CreateLegalAction(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create legal action")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLegalActionResponse(action))
}

// getLegalAction godoc
// @Summary Get a legal action
// @Tags legal-actions
// @Produce json
// @Param id path string true "Legal Action ID"
// @Success 200 {object} dto.LegalActionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /legal-actions/{id} [get]
func (h *legalActionHandler) getLegalAction(c *gin.Context) {
	action, err := h.legalActionService.GetLegalActionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get legal action")
		return
	}

	c.JSON(http.StatusOK, dto.ToLegalActionResponse(action))
}

// updateLegalAction godoc
// @Summary Update a legal action
// @Tags legal-actions
// @Accept json
// @Produce json
// @Param id path string true "Legal Action ID"
// @Param action body dto.UpdateLegalActionRequest true "Fields to update"
// @Success 200 {object} dto.LegalActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /legal-actions/{id} [put]
func (h *legalActionHandler) updateLegalAction(c *gin.Context) {
	var req dto.UpdateLegalActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	action, err := h.legalActionService.UpdateLegalAction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update legal action")
		return
	}

	c.JSON(http.StatusOK, dto.ToLegalActionResponse(action))
}

// deleteLegalAction godoc
// @Summary Delete a legal action
// @Tags legal-actions
// @Produce json
// @Param id path string true "Legal Action ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /legal-actions/{id} [delete]
func (h *legalActionHandler) deleteLegalAction(c *gin.Context) {
	if err := h.legalActionService.DeleteLegalAction(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete legal action")
		return
	}

	c.Status(http.StatusNoContent)
}
