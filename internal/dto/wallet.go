package dto

import "time"

type WalletResponseDTO struct {
	ORBalance     float64 `json:"or_balance" example:"500.5"`
	INRBalance    float64 `json:"inr_balance" example:"0.5"`
	WalletAddress string  `json:"wallet_address" example:"OR3f2a9c"`
}

type ConvertRequestDTO struct {
	Amount float64 `json:"amount" example:"100"`
}

type WithdrawRequestDTO struct {
	Card   string  `json:"card" example:"4561261212345467"`
	Amount float64 `json:"amount" example:"0.5"`
}

type GetWithdrawalsResponseDTO struct {
	Card        string    `json:"card" example:"4561261212345467"`
	Amount      float64   `json:"amount" example:"0.5"`
	ProcessedAt time.Time `json:"processed_at" example:"2020-12-09T16:09:57+03:00"`
}

type GetTransactionsResponseDTO struct {
	Amount      float64   `json:"amount" example:"5"`
	Kind        string    `json:"kind" example:"ad"`
	Description string    `json:"description" example:"Watched an ad"`
	CreatedAt   time.Time `json:"created_at" example:"2020-12-09T16:09:57+03:00"`
}
