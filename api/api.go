package api

import (
	"database/sql"
	"fmt"
	"strings"

	"gokkankeeper/internal/logger"
	"gokkankeeper/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type ApiHandler struct {
	Db                      *sql.DB
	GranaryRepository       repository.GranaryRepository
	SnapshotRepository      repository.SnapshotRepository
	PositionRepository      repository.PositionRepository
	JudgmentDiaryRepository repository.JudgmentDiaryRepository
	ConsultingNotifier      ConsultingNotifier
	ApiSecret               string
}

// InitializeRouterEngine wires middleware and routes. Health and /public/*
// stay open; everything else sits behind the shared-secret check.
func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  originAllowed,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-API-Secret"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	public := router.Group("/public")
	public.GET("/portfolio", m.getPublicPortfolio)
	public.POST("/consulting-request", m.consultingRequest)

	authed := router.Group("/", m.authMiddleware)
	authed.GET("/granaries", m.listGranaries)
	authed.GET("/granaries/:id", m.getGranary)
	authed.POST("/granaries", m.createGranary)
	authed.PUT("/granaries/:id", m.updateGranary)
	authed.GET("/snapshots", m.listSnapshots)
	authed.GET("/snapshots/:id", m.getSnapshot)
	authed.POST("/snapshots", m.createSnapshot)
	authed.PUT("/snapshots/:id", m.updateSnapshot)
	authed.GET("/positions", m.listPositions)
	authed.GET("/positions/:id", m.getPosition)
	authed.POST("/positions", m.createPosition)
	authed.PATCH("/positions/:id", m.updatePosition)
	authed.DELETE("/positions/:id", m.deletePosition)
	authed.GET("/judgment-diary", m.listJudgmentDiaryEntries)
	authed.GET("/judgment-diary/:id", m.getJudgmentDiaryEntry)
	authed.POST("/judgment-diary", m.createJudgmentDiaryEntry)
	authed.PUT("/judgment-diary/:id", m.updateJudgmentDiaryEntry)
	authed.GET("/status", m.getStatus)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// originAllowed mirrors the deployed CORS allow-list: local development,
// mobile webviews, preview deployments, and the production domain.
func originAllowed(origin string) bool {
	if strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "capacitor://") {
		return true
	}
	if strings.HasSuffix(origin, ".pages.dev") {
		return true
	}
	return origin == "https://gokkan-keeper.yetimates.com"
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnValidationError maps binding failures to 400. Field-level failures
// carry per-field details; malformed JSON gets the raw message.
func returnValidationError(err error, c *gin.Context) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		details := make([]gin.H, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, gin.H{
				"field":      fieldErr.Field(),
				"constraint": fieldErr.Tag(),
				"param":      fieldErr.Param(),
			})
		}
		c.AbortWithStatusJSON(400, gin.H{
			"error":   "Validation error",
			"details": details,
		})
		return
	}
	c.AbortWithStatusJSON(400, gin.H{
		"error": err.Error(),
	})
}
