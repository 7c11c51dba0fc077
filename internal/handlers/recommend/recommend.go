package recommend

import (
	"context"
	"net/http"

	"github.com/orbitads/orwallet/internal/dto"
	recommendservice "github.com/orbitads/orwallet/internal/service/recommendservice"
	"github.com/orbitads/orwallet/pkg/auth"
	"github.com/orbitads/orwallet/pkg/utils"
)

type Service interface {
	Recommend(ctx context.Context, userID int) ([]recommendservice.Recommendation, error)
}

type RecommendHandler struct {
	recommendService Service
}

func New(recommendService Service) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
	}
}

// Get godoc
//
//	@Summary		Get task recommendations
//	@Description	Ask the recommendation endpoint which task to try next. Advisory only; failures return an empty list.
//	@Tags			Recommendations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.RecommendationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/user/recommendations [get]
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	recs, err := h.recommendService.Recommend(r.Context(), userID)
	if err != nil {
		// the recommendation flow degrades instead of failing
		recs = nil
	}

	response := make([]dto.RecommendationResponseDTO, len(recs))
	for i, rec := range recs {
		response[i] = dto.RecommendationResponseDTO{
			TaskID:      rec.TaskID,
			Title:       rec.Title,
			Description: rec.Description,
			Reason:      rec.Reason,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
