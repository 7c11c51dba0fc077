package recommendservice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/orbitads/orwallet/internal/config"
	"github.com/orbitads/orwallet/internal/domain"
	"github.com/orbitads/orwallet/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockTransactionSource, *clients.MockHTTPClientI) {
	cfg := &config.Config{RecsAddress: "http://localhost:8082"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockTransactionSource(ctrl)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, httpClient, source)
	return service, source, httpClient
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()
	userID := 1

	history := []domain.EarningTransaction{
		{UserID: userID, Amount: 5, Kind: domain.KindAd},
		{UserID: userID, Amount: 5, Kind: domain.KindAd},
		{UserID: userID, Amount: 10, Kind: domain.KindCaptcha},
	}

	tests := []struct {
		name         string
		sourceError  error
		httpStatus   int
		responseBody string
		doError      error
		expected     []Recommendation
	}{
		{
			name:         "returns recommendations",
			httpStatus:   http.StatusOK,
			responseBody: `[{"taskId":"game","title":"Play a game","description":"Play for 5 minutes","reason":"You have not tried games yet"}]`,
			expected: []Recommendation{
				{TaskID: "game", Title: "Play a game", Description: "Play for 5 minutes", Reason: "You have not tried games yet"},
			},
		},
		{
			name:        "history load failure degrades to empty list",
			sourceError: errors.New("db down"),
			expected:    []Recommendation{},
		},
		{
			name:       "endpoint error degrades to empty list",
			httpStatus: http.StatusInternalServerError,
			expected:   []Recommendation{},
		},
		{
			name:     "endpoint unreachable degrades to empty list",
			doError:  errors.New("connection refused"),
			expected: []Recommendation{},
		},
		{
			name:         "malformed answer degrades to empty list",
			httpStatus:   http.StatusOK,
			responseBody: `{"not":"a list"}`,
			expected:     []Recommendation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source, httpClient := NewMock(t)

			source.EXPECT().
				GetTransactions(gomock.Any(), userID).
				Return(history, tt.sourceError).
				Times(1)

			if tt.sourceError == nil {
				httpClient.EXPECT().
					Do(gomock.Any()).
					DoAndReturn(func(req *http.Request) (*http.Response, error) {
						assert.Equal(t, http.MethodPost, req.Method)
						assert.Equal(t, "http://localhost:8082/api/recommend", req.URL.String())

						var body struct {
							History string `json:"history"`
							Tasks   string `json:"tasks"`
						}
						assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
						assert.Contains(t, body.History, "ad: 2 completions, 10 OR earned.")
						assert.Contains(t, body.History, "captcha: 1 completions, 10 OR earned.")
						assert.Contains(t, body.Tasks, "game: pays 60 OR")

						if tt.doError != nil {
							return nil, tt.doError
						}
						return &http.Response{
							StatusCode: tt.httpStatus,
							Body:       io.NopCloser(strings.NewReader(tt.responseBody)),
						}, nil
					}).
					Times(1)
			}

			recs, err := service.Recommend(ctx, userID)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, recs)
		})
	}
}

func TestRecommendDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := NewMockTransactionSource(ctrl)
	httpClient := clients.NewMockHTTPClientI(ctrl)
	service := New(&config.Config{}, httpClient, source)

	recs, err := service.Recommend(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHistorySummary(t *testing.T) {
	assert.Equal(t, "No earning history yet.", historySummary(nil))

	got := historySummary([]domain.EarningTransaction{
		{Amount: 60, Kind: domain.KindGame},
		{Amount: 5, Kind: domain.KindAd},
	})
	assert.Equal(t, "ad: 1 completions, 5 OR earned. game: 1 completions, 60 OR earned.", got)
}
