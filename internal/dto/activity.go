package dto

type StartActivityRequestDTO struct {
	Kind        string `json:"kind" example:"ad"`
	Fingerprint string `json:"fingerprint" example:"1920x1080|UTC+5:30|en-IN"`
}

type StartActivityResponseDTO struct {
	Token       string `json:"token"`
	Challenge   string `json:"challenge,omitempty" example:"K7KQ2M"`
	AdURL       string `json:"ad_url,omitempty"`
	WarmupMS    int64  `json:"warmup_ms" example:"3000"`
	MinDuration int64  `json:"min_duration_ms" example:"18000"`
}

type SolveChallengeRequestDTO struct {
	Token  string `json:"token"`
	Answer string `json:"answer" example:"K7KQ2M"`
}

type SolveChallengeResponseDTO struct {
	Challenge string `json:"challenge,omitempty"`
	Remaining int    `json:"remaining" example:"9"`
}

type ClaimRequestDTO struct {
	Token         string `json:"token"`
	Fingerprint   string `json:"fingerprint" example:"1920x1080|UTC+5:30|en-IN"`
	MinutesPlayed int    `json:"minutes_played,omitempty" example:"6"`
}

type ClaimResponseDTO struct {
	Amount    float64 `json:"amount" example:"5"`
	ORBalance float64 `json:"or_balance" example:"505.5"`
}

type AbandonRequestDTO struct {
	Token string `json:"token"`
}
