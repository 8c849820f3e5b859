package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/dto"
	"github.com/SscSPs/my_bank_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles aggregate queries and the private banking sweep.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// averageBalance godoc
// @Summary Average balance of a branch
// @Tags reports
// @Produce  json
// @Param   agencia path int true "Branch code"
// @Success 200 {object} dto.AverageResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "No accounts found for branch"
// @Failure 500 {object} map[string]string "Failed to compute average"
// @Router /accounts/average/{agencia} [get]
func (h *reportingHandler) averageBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.BranchURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	avg, err := h.reportingService.AverageBalance(c.Request.Context(), uri.Agencia)
	if err != nil {
		respondError(c, logger, err, "Failed to compute average")
		return
	}

	c.JSON(http.StatusOK, dto.AverageResponse{Average: avg})
}

// branchSummary godoc
// @Summary Sum, count and average balance of a branch
// @Tags reports
// @Produce  json
// @Param   agencia path int true "Branch code"
// @Success 200 {object} dto.BranchSummaryResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "No accounts found for branch"
// @Failure 500 {object} map[string]string "Failed to summarise branch"
// @Router /accounts/{agencia} [get]
func (h *reportingHandler) branchSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.BranchURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	agg, err := h.reportingService.BranchSummary(c.Request.Context(), uri.Agencia)
	if err != nil {
		respondError(c, logger, err, "Failed to summarise branch")
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchSummaryResponse(agg))
}

// poorest godoc
// @Summary Accounts with the lowest balances
// @Description Ordered by balance ascending, ties broken by name
// @Tags reports
// @Produce  json
// @Param   quantity path int true "How many accounts" minimum(1)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 500 {object} map[string]string "Failed to rank accounts"
// @Router /accounts/poor/{quantity} [get]
func (h *reportingHandler) poorest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.QuantityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	accounts, err := h.reportingService.Poorest(c.Request.Context(), uri.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to rank accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// richest godoc
// @Summary Accounts with the highest balances
// @Description Ordered by balance descending, ties broken by name
// @Tags reports
// @Produce  json
// @Param   quantity path int true "How many accounts" minimum(1)
// @Success 200 {array} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 500 {object} map[string]string "Failed to rank accounts"
// @Router /accounts/rich/{quantity} [get]
func (h *reportingHandler) richest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.QuantityURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	accounts, err := h.reportingService.Richest(c.Request.Context(), uri.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to rank accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// promotePrivate godoc
// @Summary Promote the richest account of every branch to private banking
// @Description Moves the top-balance account of each branch to branch 99 and returns all private accounts
// @Tags reports
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to promote accounts"
// @Router /accounts/transference/private [get]
func (h *reportingHandler) promotePrivate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.reportingService.PromoteTopBalancePerBranch(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to promote accounts")
		return
	}

	logger.Info("Private banking sweep finished", slog.Int("private_accounts", len(accounts)))
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}
