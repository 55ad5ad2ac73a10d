package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/misuhub/receivables_app/internal/core/ports/services"
	"github.com/misuhub/receivables_app/internal/dto"
	"github.com/misuhub/receivables_app/internal/recon"
)

// transactionHandler handles transaction requests. Reads go through the
// reconciliation layer so responses always carry derived paid/unpaid figures.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	paymentService     portssvc.PaymentSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

// RegisterTransactionRoutes sets up the routes for transaction management.
// Exported so handler tests can register it against mock services.
func RegisterTransactionRoutes(
	v1 *gin.RouterGroup,
	transactionService portssvc.TransactionSvcFacade,
	paymentService portssvc.PaymentSvcFacade,
	reportingService portssvc.ReportingSvcFacade,
) {
	h := &transactionHandler{
		transactionService: transactionService,
		paymentService:     paymentService,
		reportingService:   reportingService,
	}

	transactions := v1.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		// Static route first so it never collides with ":id".
		transactions.GET("/summary", h.getTransactionsSummary)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.GET("/:id/payments", h.listTransactionPayments)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new receivable transaction for a customer.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction Info"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Failed to create transaction")
		return
	}

	// A fresh transaction has no payments yet.
	rt := recon.Reconcile(*txn, nil)
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(&rt))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves reconciled transactions, newest first, with token-based pagination.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Token from a previous page"
// @Param includeDeleted query bool false "Include soft-deleted transactions"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), params.Limit, params.NextToken, params.IncludeDeleted)
	if err != nil {
		handleServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		NextToken:    nextToken,
	})
}

// getTransactionsSummary godoc
// @Summary Global receivables summary
// @Description Aggregates total, paid and unpaid amounts across all active transactions.
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.TransactionsSummaryResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionsSummary(c *gin.Context) {
	summary, err := h.reportingService.TransactionsSummary(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Failed to build transactions summary")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionsSummaryResponse{Summary: *summary})
}

// getTransaction godoc
// @Summary Get a transaction
// @Description Retrieves one transaction together with its payments and derived figures.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	rt, payments, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionDetailResponse{
		TransactionResponse: dto.ToTransactionResponse(rt),
		Payments:            dto.ToListPaymentResponse(payments),
	})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates an existing transaction's details.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if _, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Failed to update transaction")
		return
	}

	// Re-read through the reconciliation path so the response reflects
	// any status change the update caused.
	rt, payments, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to get transaction")
		return
	}

	c.JSON(http.StatusOK, dto.TransactionDetailResponse{
		TransactionResponse: dto.ToTransactionResponse(rt),
		Payments:            dto.ToListPaymentResponse(payments),
	})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Soft-deletes a transaction. It drops out of lists and aggregates but its payments stay on record.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// listTransactionPayments godoc
// @Summary List a transaction's payments
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id}/payments [get]
func (h *transactionHandler) listTransactionPayments(c *gin.Context) {
	payments, err := h.paymentService.ListPaymentsByTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}
