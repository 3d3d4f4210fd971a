package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"gokkankeeper/api"
	"gokkankeeper/internal/repository"
	"gokkankeeper/internal/util"
	"gokkankeeper/pkg/discord"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	// A missing webhook URL leaves the notifier nil; the consulting
	// resolver reports that as a 503.
	var consultingNotifier api.ConsultingNotifier
	if secrets.DiscordWebhookUrl != "" {
		consultingNotifier = discord.Client{
			HttpClient: http.DefaultClient,
			WebhookUrl: secrets.DiscordWebhookUrl,
		}
	}

	apiHandler := &api.ApiHandler{
		Db:                      dbConn,
		GranaryRepository:       repository.NewGranaryRepository(dbConn),
		SnapshotRepository:      repository.NewSnapshotRepository(dbConn),
		PositionRepository:      repository.NewPositionRepository(dbConn),
		JudgmentDiaryRepository: repository.NewJudgmentDiaryRepository(dbConn),
		ConsultingNotifier:      consultingNotifier,
		ApiSecret:               secrets.ApiSecret,
	}

	return apiHandler, nil
}
