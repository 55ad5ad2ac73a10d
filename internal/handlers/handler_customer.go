package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
)

const defaultSearchLimit = 20

// customerHandler handles customer CRUD plus the per-customer sub-resources.
type customerHandler struct {
	customerService    portssvc.CustomerSvcFacade
	transactionService portssvc.TransactionReaderSvc
	legalActionService portssvc.LegalActionSvcFacade
	fileService        portssvc.FileSvcFacade
	smsService         portssvc.SmsSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

// registerCustomerRoutes sets up the routes for customer management.
func registerCustomerRoutes(v1 *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &customerHandler{
		customerService:    services.Customer,
		transactionService: services.Transaction,
		legalActionService: services.LegalAction,
		fileService:        services.File,
		smsService:         services.Sms,
		reportingService:   services.Reporting,
	}

	customers := v1.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/search", h.searchCustomers)
		customers.GET("/:id", h.getCustomer)
		customers.PUT("/:id", h.updateCustomer)
		customers.DELETE("/:id", h.deleteCustomer)

		customers.GET("/:id/summary", h.getCustomerSummary)
		customers.GET("/:id/statement", h.getCustomerStatement)
		customers.GET("/:id/transactions", h.listCustomerTransactions)
		customers.GET("/:id/legal-actions", h.listCustomerLegalActions)
		customers.GET("/:id/files", h.listCustomerFiles)
		customers.GET("/:id/sms", h.listCustomerSms)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Description Creates a new customer record.
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer Info"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create customer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List customers
// @Description Retrieves customers, newest first, with token-based pagination.
// @Tags customers
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	var params dto.ListCustomersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	customers, nextToken, err := h.customerService.ListCustomers(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		handleServiceError(c, err, "Failed to list customers")
		return
	}

	c.JSON(http.StatusOK, dto.ListCustomersResponse{
		Customers: dto.ToListCustomerResponse(customers),
		NextToken: nextToken,
	})
}

// searchCustomers godoc
// @Summary Search customers
// @Description Searches customers by name or business number.
// @Tags customers
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Maximum results (default 20)"
// @Success 200 {array} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/search [get]
func (h *customerHandler) searchCustomers(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'q' is required"})
		return
	}

	limit := defaultSearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	customers, err := h.customerService.SearchCustomers(c.Request.Context(), query, limit)
	if err != nil {
		handleServiceError(c, err, "Failed to search customers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCustomerResponse(customers))
}

// getCustomer godoc
// @Summary Get a customer
// @Description Retrieves a single customer by ID.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *customerHandler) getCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateCustomer godoc
// @Summary Update a customer
// @Description Updates an existing customer's details.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body dto.UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [put]
func (h *customerHandler) updateCustomer(c *gin.Context) {
	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleServiceError(c, err, "Failed to update customer")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// deleteCustomer godoc
// @Summary Delete a customer
// @Description Deletes a customer together with all attached records.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id} [delete]
func (h *customerHandler) deleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete customer")
		return
	}

	c.Status(http.StatusNoContent)
}

// getCustomerSummary godoc
// @Summary Get a customer's receivable summary
// @Description Aggregates total, paid and unpaid amounts over the customer's active transactions.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.CustomerSummaryResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/summary [get]
func (h *customerHandler) getCustomerSummary(c *gin.Context) {
	summary, err := h.reportingService.CustomerSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to build customer summary")
		return
	}

	c.JSON(http.StatusOK, dto.CustomerSummaryResponse{Summary: *summary})
}

// getCustomerStatement godoc
// @Summary Get a customer's statement
// @Description Builds the printable statement: customer, summary and ordered transactions.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/statement [get]
func (h *customerHandler) getCustomerStatement(c *gin.Context) {
	statement, err := h.reportingService.CustomerStatement(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to build customer statement")
		return
	}

	c.JSON(http.StatusOK, statement)
}

// listCustomerTransactions godoc
// @Summary List a customer's transactions
// @Description Retrieves every active transaction of the customer, reconciled, newest first.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/transactions [get]
func (h *customerHandler) listCustomerTransactions(c *gin.Context) {
	txns, err := h.transactionService.ListTransactionsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list customer transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// listCustomerLegalActions godoc
// @Summary List a customer's legal actions
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} dto.LegalActionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/legal-actions [get]
func (h *customerHandler) listCustomerLegalActions(c *gin.Context) {
	actions, err := h.legalActionService.ListLegalActionsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list legal actions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListLegalActionResponse(actions))
}

// listCustomerFiles godoc
// @Summary List a customer's files
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} dto.FileResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/files [get]
func (h *customerHandler) listCustomerFiles(c *gin.Context) {
	files, err := h.fileService.ListFilesByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list files")
		return
	}

	c.JSON(http.StatusOK, dto.ToListFileResponse(files))
}

// listCustomerSms godoc
// @Summary List a customer's SMS messages
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {array} dto.SmsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /customers/{id}/sms [get]
func (h *customerHandler) listCustomerSms(c *gin.Context) {
	messages, err := h.smsService.ListSmsByCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list SMS messages")
		return
	}

	c.JSON(http.StatusOK, dto.ToListSmsResponse(messages))
}
