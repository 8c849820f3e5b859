package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/dto"
	"github.com/SscSPs/my_bank_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns every account
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// getBalance godoc
// @Summary Get an account balance
// @Tags accounts
// @Produce  json
// @Param   agencia path int true "Branch code"
// @Param   conta path int true "Account number"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /accounts/balance/{agencia}/{conta} [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	balance, err := h.accountService.GetBalance(c.Request.Context(), uri.Agencia, uri.Conta)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{Balance: balance})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes the account and reports how many accounts remain in its branch
// @Tags accounts
// @Produce  json
// @Param   agencia path int true "Branch code"
// @Param   conta path int true "Account number"
// @Success 200 {object} dto.DeleteAccountResponse
// @Failure 400 {object} map[string]string "Invalid path parameters"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Router /accounts/{agencia}/{conta} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.AccountURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBindError(c, logger, err, "path parameters")
		return
	}

	remaining, err := h.accountService.DeleteAccount(c.Request.Context(), uri.Agencia, uri.Conta)
	if err != nil {
		respondError(c, logger, err, "Failed to delete account")
		return
	}

	logger.Info("Account deleted successfully",
		slog.Int("agencia", uri.Agencia), slog.Int("conta", uri.Conta), slog.Int("remaining", remaining))
	c.JSON(http.StatusOK, dto.DeleteAccountResponse{Accounts: remaining})
}
