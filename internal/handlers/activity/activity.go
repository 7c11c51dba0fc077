package activity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/internal/dto"
	activityservice "github.com/orbitads/orwallet/internal/service/activityservice"
	walletservice "github.com/orbitads/orwallet/internal/service/walletservice"
	"github.com/orbitads/orwallet/pkg/auth"
	"github.com/orbitads/orwallet/pkg/utils"
)

type Service interface {
	StartSession(ctx context.Context, userID int, kind domain.ActivityKind, signals string) (*activityservice.StartResult, error)
	Solve(ctx context.Context, userID int, token, answer string) (*activityservice.SolveResult, error)
	Claim(ctx context.Context, userID int, token, signals string, minutesPlayed int) (*activityservice.ClaimResult, error)
	Abandon(ctx context.Context, userID int, token string) error
}

type ActivityHandler struct {
	activityService Service
}

func New(activityService Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// Start godoc
//
//	@Summary		Start an earn activity
//	@Description	Open an ad, captcha, or game session. Checks the daily allowance, captures the liveness fingerprint, and returns the claim token for this session.
//	@Tags			Activities
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartActivityRequestDTO	true	"Activity start payload"
//	@Success		200		{object}	dto.StartActivityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Session already in progress"
//	@Failure		429		{object}	utils.Response	"Daily quota exceeded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activities/start [post]
func (h *ActivityHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.StartActivityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.activityService.StartSession(r.Context(), userID, domain.ActivityKind(req.Kind), req.Fingerprint)
	if err != nil {
		switch {
		case errors.Is(err, activityservice.ErrUnknownKind):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, activityservice.ErrQuotaExceeded):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, activityservice.ErrSessionActive):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StartActivityResponseDTO{
		Token:       result.Token,
		Challenge:   result.Challenge,
		AdURL:       result.AdURL,
		WarmupMS:    result.WarmupMS,
		MinDuration: result.MinDuration,
	})
}

// Solve godoc
//
//	@Summary		Solve one captcha challenge
//	@Description	Check an answer against the current challenge. A fresh challenge is returned on every attempt; the batch becomes claimable once all challenges are solved.
//	@Tags			Activities
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SolveChallengeRequestDTO	true	"Challenge answer payload"
//	@Success		200		{object}	dto.SolveChallengeResponseDTO
//	@Failure		400		{object}	utils.Response	"Incorrect answer, new challenge issued"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Too soon"
//	@Failure		404		{object}	utils.Response	"Session not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activities/solve [post]
func (h *ActivityHandler) Solve(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SolveChallengeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.activityService.Solve(r.Context(), userID, req.Token, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, activityservice.ErrIncorrectChallenge):
			utils.RespondWithJSON(w, http.StatusBadRequest, dto.SolveChallengeResponseDTO{
				Challenge: result.Challenge,
				Remaining: result.Remaining,
			})
		case errors.Is(err, activityservice.ErrTooSoon):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, activityservice.ErrInvalidToken), errors.Is(err, activityservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, activityservice.ErrNotCaptchaSession), errors.Is(err, activityservice.ErrSessionNotClaimable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SolveChallengeResponseDTO{
		Challenge: result.Challenge,
		Remaining: result.Remaining,
	})
}

// Claim godoc
//
//	@Summary		Claim a session reward
//	@Description	Verify timing and fingerprint for the session and credit the reward exactly once.
//	@Tags			Activities
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Claim payload"
//	@Success		200		{object}	dto.ClaimResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Too soon or fingerprint mismatch"
//	@Failure		404		{object}	utils.Response	"Session not found"
//	@Failure		409		{object}	utils.Response	"Session not claimable"
//	@Failure		502		{object}	utils.Response	"Playtime confirmation failed"
//	@Failure		503		{object}	utils.Response	"Temporary conflict"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/activities/claim [post]
func (h *ActivityHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.activityService.Claim(r.Context(), userID, req.Token, req.Fingerprint, req.MinutesPlayed)
	if err != nil {
		switch {
		case errors.Is(err, activityservice.ErrTooSoon), errors.Is(err, activityservice.ErrFingerprintMismatch):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, activityservice.ErrInvalidToken), errors.Is(err, activityservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		case errors.Is(err, activityservice.ErrSessionNotClaimable):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, activityservice.ErrConfirmFailed):
			utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		case errors.Is(err, walletservice.ErrConflict):
			utils.RespondWithError(w, http.StatusServiceUnavailable, "Temporary conflict, try again")
		case errors.Is(err, walletservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		Amount:    result.Amount,
		ORBalance: result.Wallet.ORBalance,
	})
}

// Abandon godoc
//
//	@Summary		Abandon a session
//	@Description	Exit an activity early. The session is discarded without a credit; clearing the in-flight marker is best-effort.
//	@Tags			Activities
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AbandonRequestDTO	true	"Abandon payload"
//	@Success		200		{object}	utils.Response
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Session not found"
//	@Router			/api/user/activities/abandon [post]
func (h *ActivityHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AbandonRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.activityService.Abandon(r.Context(), userID, req.Token); err != nil {
		switch {
		case errors.Is(err, activityservice.ErrInvalidToken), errors.Is(err, activityservice.ErrSessionNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Session not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "session abandoned"})
}
