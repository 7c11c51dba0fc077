package recommendservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/orbitads/orwallet/internal/config"
	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/pkg/clients"
)

type TransactionSource interface {
	GetTransactions(ctx context.Context, userID int) ([]domain.EarningTransaction, error)
}

type Recommendation struct {
	TaskID      string `json:"taskId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type request struct {
	History string `json:"history"`
	Tasks   string `json:"tasks"`
}

// Service asks the external recommendation endpoint which task the user
// should try next, based on a plain-text summary of their earning history.
// The answer is advisory only: any failure degrades to an empty list and
// never touches reward logic.
type Service struct {
	url    string
	client clients.HTTPClientI
	source TransactionSource
}

func New(cfg *config.Config, client clients.HTTPClientI, source TransactionSource) *Service {
	return &Service{
		url:    cfg.RecsAddress,
		client: client,
		source: source,
	}
}

func (s *Service) Recommend(ctx context.Context, userID int) ([]Recommendation, error) {
	if s.url == "" {
		return []Recommendation{}, nil
	}

	txns, err := s.source.GetTransactions(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load history for recommendations", zap.Error(err))
		return []Recommendation{}, nil
	}

	body, err := json.Marshal(request{
		History: historySummary(txns),
		Tasks:   taskListing(),
	})
	if err != nil {
		zap.L().Error("failed to encode recommendation request", zap.Error(err))
		return []Recommendation{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url+"/api/recommend", bytes.NewReader(body))
	if err != nil {
		zap.L().Error("failed to build recommendation request", zap.Error(err))
		return []Recommendation{}, nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Warn("recommendation endpoint unavailable", zap.Error(err))
		return []Recommendation{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("recommendation endpoint returned error", zap.Int("status", resp.StatusCode))
		return []Recommendation{}, nil
	}

	var recs []Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		zap.L().Warn("failed to decode recommendations", zap.Error(err))
		return []Recommendation{}, nil
	}
	return recs, nil
}

func historySummary(txns []domain.EarningTransaction) string {
	if len(txns) == 0 {
		return "No earning history yet."
	}

	totals := make(map[domain.ActivityKind]float64)
	counts := make(map[domain.ActivityKind]int)
	for _, txn := range txns {
		totals[txn.Kind] += txn.Amount
		counts[txn.Kind]++
	}

	kinds := make([]string, 0, len(totals))
	for kind := range totals {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	var b strings.Builder
	for _, kind := range kinds {
		k := domain.ActivityKind(kind)
		fmt.Fprintf(&b, "%s: %d completions, %.0f OR earned. ", kind, counts[k], totals[k])
	}
	return strings.TrimSpace(b.String())
}

func taskListing() string {
	kinds := make([]string, 0, len(domain.Catalog))
	for kind := range domain.Catalog {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)

	var b strings.Builder
	for _, kind := range kinds {
		cfg := domain.Catalog[domain.ActivityKind(kind)]
		fmt.Fprintf(&b, "%s: pays %.0f OR, takes at least %s. ", kind, cfg.RewardAmount, cfg.MinDuration)
	}
	return strings.TrimSpace(b.String())
}
