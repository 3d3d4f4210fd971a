package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gokkankeeper/api"
	"gokkankeeper/cmd"
	"gokkankeeper/internal"
	"gokkankeeper/internal/repository"
	"gokkankeeper/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

type snapshotCsvRow struct {
	ID               string   `csv:"id"`
	GranaryID        string   `csv:"granary_id"`
	Date             string   `csv:"date"`
	TotalAmount      float64  `csv:"total_amount"`
	AvailableBalance *float64 `csv:"available_balance"`
	ProfitLoss       *float64 `csv:"profit_loss"`
	Memo             *string  `csv:"memo"`
	CreatedAt        string   `csv:"created_at"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "gokkan-admin",
		Short:        "Admin utilities for the gokkan keeper API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(exportPortfolioCmd(), exportSnapshotsCmd(), pingWebhookCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func withDependencies(run func(*api.ApiHandler) error) error {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	defer cmd.CloseDependencies(handler)
	return run(handler)
}

func exportPortfolioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export-portfolio",
		Short: "Print the aggregated public portfolio as JSON",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				rows, err := handler.PositionRepository.ListPublic()
				if err != nil {
					return err
				}

				out, err := json.MarshalIndent(internal.BuildPublicPortfolio(rows), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			})
		},
	}
}

func exportSnapshotsCmd() *cobra.Command {
	var granaryID string
	var limit int64

	command := &cobra.Command{
		Use:   "export-snapshots",
		Short: "Write snapshots as CSV to stdout",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				filter := repository.SnapshotListFilter{
					Limit: util.Int64Pointer(limit),
				}
				if granaryID != "" {
					parsed, err := uuid.Parse(granaryID)
					if err != nil {
						return fmt.Errorf("invalid granary id: %w", err)
					}
					filter.GranaryID = &parsed
				}

				snapshots, err := handler.SnapshotRepository.List(filter)
				if err != nil {
					return err
				}

				rows := make([]snapshotCsvRow, 0, len(snapshots))
				for _, s := range snapshots {
					rows = append(rows, snapshotCsvRow{
						ID:               s.ID.String(),
						GranaryID:        s.GranaryID.String(),
						Date:             s.Date,
						TotalAmount:      s.TotalAmount,
						AvailableBalance: s.AvailableBalance,
						ProfitLoss:       s.ProfitLoss,
						Memo:             s.Memo,
						CreatedAt:        s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
					})
				}

				return gocsv.Marshal(&rows, os.Stdout)
			})
		},
	}

	command.Flags().StringVar(&granaryID, "granary-id", "", "restrict to one granary")
	command.Flags().Int64Var(&limit, "limit", 1000, "max rows to export")

	return command
}

func pingWebhookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping-webhook",
		Short: "Send a test message to the consulting webhook",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withDependencies(func(handler *api.ApiHandler) error {
				if handler.ConsultingNotifier == nil {
					return fmt.Errorf("webhook is not configured")
				}
				return handler.ConsultingNotifier.SendMessage("gokkan-admin ping")
			})
		},
	}
}
