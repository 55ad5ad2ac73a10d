package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

type smsHandler struct {
	smsService portssvc.SmsSvcFacade
}

// registerSmsRoutes sets up the routes for dunning SMS.
func registerSmsRoutes(v1 *gin.RouterGroup, smsService portssvc.SmsSvcFacade) {
	h := &smsHandler{smsService: smsService}

	sms := v1.Group("/sms")
	{
		sms.POST("/send", h.sendSms)
	}
}

// sendSms godoc
// @Summary Send a dunning SMS
// @Description Renders the template against the customer's receivable figures and dispatches it.
// @Tags sms
// @Accept json
// @Produce json
// @Param sms body dto.SendSmsRequest true "SMS Info"
// @Success 201 {object} dto.SmsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sms/send [post]
func (h *smsHandler) sendSms(c *gin.Context) {
	var req dto.SendSmsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	message, err := h.smsService.SendSms(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to send SMS")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSmsResponse(message))
}
