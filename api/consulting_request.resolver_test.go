package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mock_api "gokkankeeper/api/mocks"
	"gokkankeeper/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postConsultingRequest(t *testing.T, handler ApiHandler, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/public/consulting-request", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.InitializeRouterEngine().ServeHTTP(w, req)
	return w
}

func validConsultingBody() map[string]interface{} {
	return map[string]interface{}{
		"email":             "lead@example.com",
		"riskTolerance":     "moderate",
		"investmentHorizon": "5y",
		"currentConcern":    "too much cash sitting idle",
	}
}

func Test_consultingRequest(t *testing.T) {
	t.Run("unconfigured webhook returns 503", func(t *testing.T) {
		w := postConsultingRequest(t, ApiHandler{}, validConsultingBody())
		require.Equal(t, 503, w.Code)
	})

	t.Run("invalid email returns 400 with details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_api.NewMockConsultingNotifier(ctrl)

		body := validConsultingBody()
		body["email"] = "not-an-email"

		w := postConsultingRequest(t, ApiHandler{ConsultingNotifier: notifier}, body)
		require.Equal(t, 400, w.Code)
		require.Contains(t, w.Body.String(), "Validation error")
		require.Contains(t, w.Body.String(), "Email")
	})

	t.Run("delivery failure returns 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_api.NewMockConsultingNotifier(ctrl)
		notifier.EXPECT().SendMessage(gomock.Any()).Return(http.ErrHandlerTimeout)

		w := postConsultingRequest(t, ApiHandler{ConsultingNotifier: notifier}, validConsultingBody())
		require.Equal(t, 502, w.Code)
	})

	t.Run("happy path returns 201 with request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mock_api.NewMockConsultingNotifier(ctrl)

		var sent string
		notifier.EXPECT().SendMessage(gomock.Any()).DoAndReturn(func(content string) error {
			sent = content
			return nil
		})

		w := postConsultingRequest(t, ApiHandler{ConsultingNotifier: notifier}, validConsultingBody())
		require.Equal(t, 201, w.Code)

		var response struct {
			Ok        bool   `json:"ok"`
			RequestID string `json:"requestId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.True(t, response.Ok)
		require.True(t, strings.HasPrefix(response.RequestID, "CR-"))

		require.Contains(t, sent, "📩 New Consulting Request")
		require.Contains(t, sent, "Request ID: "+response.RequestID)
		require.Contains(t, sent, "Email: lead@example.com")
	})
}

func Test_consultingMessageContent(t *testing.T) {
	t.Run("field order is fixed, optionals dash out", func(t *testing.T) {
		createdAt := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
		content := consultingMessageContent("CR-1714554000000-abcd1234", createdAt, consultingRequestBody{
			Email:             "lead@example.com",
			RiskTolerance:     "aggressive",
			InvestmentHorizon: "10y",
			CurrentConcern:    "concentration in one sector",
		})

		require.Equal(t, []string{
			"📩 New Consulting Request",
			"Request ID: CR-1714554000000-abcd1234",
			"Created At: 2024-05-01T09:00:00Z",
			"Email: lead@example.com",
			"Portfolio Size Range: -",
			"Risk Tolerance: aggressive",
			"Investment Horizon: 10y",
			"Discord Handle: -",
			"",
			"Current Concern:",
			"concentration in one sector",
		}, strings.Split(content, "\n"))
	})

	t.Run("optionals pass through when provided", func(t *testing.T) {
		content := consultingMessageContent("CR-1-x", time.Now(), consultingRequestBody{
			Email:              "lead@example.com",
			PortfolioSizeRange: util.StringPointer("100M-500M KRW"),
			RiskTolerance:      "low",
			InvestmentHorizon:  "1y",
			DiscordHandle:      util.StringPointer("lead#0001"),
			CurrentConcern:     "x",
		})

		require.Contains(t, content, "Portfolio Size Range: 100M-500M KRW")
		require.Contains(t, content, "Discord Handle: lead#0001")
	})
}
