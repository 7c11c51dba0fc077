package dto

type RecommendationResponseDTO struct {
	TaskID      string `json:"taskId" example:"ad"`
	Title       string `json:"title" example:"Watch an ad"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}
