package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/dto"
	walletservice "github.com/orbitads/orwallet/internal/service/walletservice"
	"github.com/orbitads/orwallet/pkg/auth"
	"github.com/orbitads/orwallet/pkg/utils"
	"github.com/orbitads/orwallet/pkg/validate"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Convert(ctx context.Context, userID int, orAmount float64) (*domain.Wallet, error)
	Withdraw(ctx context.Context, userID int, cardNumber string, amount float64) error
	GetWithdrawals(ctx context.Context, userID int) ([]domain.Withdrawal, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.EarningTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current wallet
//	@Description	Retrieve the OR and INR balances and the wallet address for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		ORBalance:     wallet.ORBalance,
		INRBalance:    wallet.INRBalance,
		WalletAddress: wallet.WalletAddress,
	})
}

// Convert godoc
//
//	@Summary		Convert OR coins to INR
//	@Description	Deduct OR coins and credit the INR balance at the configured rate, as one atomic step.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ConvertRequestDTO	true	"Conversion request payload"
//	@Success		200		{object}	dto.WalletResponseDTO	"Balances after conversion"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		422		{object}	utils.Response			"Amount below minimum"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/convert [post]
func (h *WalletHandler) Convert(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ConvertRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	wallet, err := h.walletService.Convert(r.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrBelowMinimum), errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, walletservice.ErrConflict):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Temporary conflict, try again")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		ORBalance:     wallet.ORBalance,
		INRBalance:    wallet.INRBalance,
		WalletAddress: wallet.WalletAddress,
	})
}

// Withdraw godoc
//
//	@Summary		Withdraw INR to a bank card
//	@Description	Deduct the INR balance and record the withdrawal to the provided card number.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{string}	string					"Withdrawal successful"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		422		{object}	utils.Response			"Invalid card number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsLuhn(req.Card) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid card number")
		return
	}

	err := h.walletService.Withdraw(r.Context(), userID, req.Card, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, walletservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "withdrawal successful")
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	Get withdrawals history for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetWithdrawalsResponseDTO	"Withdrawals history"
//	@Success		204	{object}	utils.Response					"Withdrawals not found"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/withdrawals [get]
func (h *WalletHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	withdrawals, err := h.walletService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(withdrawals) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.GetWithdrawalsResponseDTO, len(withdrawals))
	for i, wd := range withdrawals {
		response[i] = dto.GetWithdrawalsResponseDTO{
			Card:        wd.CardNumber,
			Amount:      wd.Amount,
			ProcessedAt: wd.ProcessedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetTransactions godoc
//
//	@Summary		Get earning history
//	@Description	Get the append-only list of credited rewards for the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.GetTransactionsResponseDTO	"Earning history"
//	@Success		204	{object}	utils.Response					"No transactions yet"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	txns, err := h.walletService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions yet")
		return
	}

	response := make([]dto.GetTransactionsResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = dto.GetTransactionsResponseDTO{
			Amount:      txn.Amount,
			Kind:        string(txn.Kind),
			Description: txn.Description,
			CreatedAt:   txn.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
