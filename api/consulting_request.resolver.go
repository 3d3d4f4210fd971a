package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConsultingNotifier delivers a lead-capture message to an external channel.
type ConsultingNotifier interface {
	SendMessage(content string) error
}

type consultingRequestBody struct {
	Email              string  `json:"email" binding:"required,email,max=320"`
	PortfolioSizeRange *string `json:"portfolioSizeRange"`
	RiskTolerance      string  `json:"riskTolerance" binding:"required"`
	InvestmentHorizon  string  `json:"investmentHorizon" binding:"required"`
	DiscordHandle      *string `json:"discordHandle"`
	CurrentConcern     string  `json:"currentConcern" binding:"required"`
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func newConsultingRequestID(now time.Time) string {
	return fmt.Sprintf("CR-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

func consultingMessageContent(requestID string, createdAt time.Time, body consultingRequestBody) string {
	return strings.Join([]string{
		"📩 New Consulting Request",
		fmt.Sprintf("Request ID: %s", requestID),
		fmt.Sprintf("Created At: %s", createdAt.Format(time.RFC3339)),
		fmt.Sprintf("Email: %s", body.Email),
		fmt.Sprintf("Portfolio Size Range: %s", orDash(body.PortfolioSizeRange)),
		fmt.Sprintf("Risk Tolerance: %s", body.RiskTolerance),
		fmt.Sprintf("Investment Horizon: %s", body.InvestmentHorizon),
		fmt.Sprintf("Discord Handle: %s", orDash(body.DiscordHandle)),
		"",
		"Current Concern:",
		body.CurrentConcern,
	}, "\n")
}

func (h ApiHandler) consultingRequest(c *gin.Context) {
	if h.ConsultingNotifier == nil {
		returnErrorJsonCode(fmt.Errorf("consulting webhook is not configured"), c, 503)
		return
	}

	var requestBody consultingRequestBody
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnValidationError(err, c)
		return
	}

	now := time.Now().UTC()
	requestID := newConsultingRequestID(now)

	err := h.ConsultingNotifier.SendMessage(consultingMessageContent(requestID, now, requestBody))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to deliver consulting request: %w", err), c, 502)
		return
	}

	c.JSON(201, gin.H{
		"ok":        true,
		"requestId": requestID,
	})
}
