package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/my_bank_api/internal/core/ports/services"
	"github.com/SscSPs/my_bank_api/internal/dto"
	"github.com/SscSPs/my_bank_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles balance mutations.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// deposit godoc
// @Summary Deposit into an account
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   movement body dto.MovementRequest true "Branch, account and value"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to deposit"
// @Router /accounts/deposit [put]
func (h *transactionHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request body")
		return
	}

	account, err := h.transactionService.Deposit(c.Request.Context(), *req.Agencia, *req.Conta, *req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the value plus a fee of 1. Fails with "Saldo insuficiente" when the balance does not exceed the value.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   movement body dto.MovementRequest true "Branch, account and value"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Saldo insuficiente"
// @Router /accounts/withdraw [put]
func (h *transactionHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request body")
		return
	}

	account, err := h.transactionService.Withdraw(c.Request.Context(), *req.Agencia, *req.Conta, *req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to withdraw")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Accounts are identified by number. Transfers across branches cost 8, paid by the source.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Source, destination and value"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Router /accounts/transference [put]
func (h *transactionHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "request body")
		return
	}

	result, err := h.transactionService.Transfer(c.Request.Context(), *req.Origem, *req.Destino, *req.Value)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}
