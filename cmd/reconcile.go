package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"uniform-manager/core/config"
	"uniform-manager/core/database"
	"uniform-manager/core/logger"
	"uniform-manager/feature/uniform"
	"uniform-manager/feature/uniform/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reconcileCmd is the parent command for reconciliation operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile member uniform records against inventory",
	Long: `Reconcile a member's uniform record against the inventory ledger.
The preview subcommand plans the adjustments without touching stock.`,
}

// reconcilePreviewCmd plans an update without applying it.
var reconcilePreviewCmd = &cobra.Command{
	Use:   "preview [memberKey] [items.json]",
	Short: "Preview the stock adjustments for a member uniform update",
	Long: `Plans the adjustments a member uniform update would make, without
applying them. The items file holds a JSON array of assigned items:

  [
    {"category": "Uniform No 4", "type": "Boot", "size": "UK 8", "quantity": 1}
  ]`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcilePreview,
}

func init() {
	reconcileCmd.AddCommand(reconcilePreviewCmd)
	RootCmd.AddCommand(reconcileCmd)
}

func runReconcilePreview(cmd *cobra.Command, args []string) error {
	memberKey := args[0]

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read items file: %w", err)
	}
	var items models.AssignedItems
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to parse items file: %w", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	svc := uniform.NewService(uniform.NewStore(db), nil, "", logg)

	logg.Info("Planning uniform update", zap.String("member_key", memberKey), zap.Int("items", len(items)))
	result, err := svc.PreviewUpdate(cmd.Context(), memberKey, items)
	if err != nil {
		return fmt.Errorf("failed to plan update: %w", err)
	}

	// Pretty Console Output
	fmt.Println("\n--- Planned Adjustments ---")
	if len(result.Adjustments) == 0 {
		fmt.Println("(no stock changes)")
	}
	for _, adj := range result.Adjustments {
		fmt.Printf("%-8s %-20s %-20s %-10s amount=%d remaining=%d\n",
			adj.Action, adj.Category, adj.Type, adj.Size, adj.Amount, adj.ResultingQuantity)
	}
	fmt.Println("---------------------------")
	return nil
}
