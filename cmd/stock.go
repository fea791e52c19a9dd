package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"uniform-manager/core/config"
	"uniform-manager/core/database"
	"uniform-manager/core/logger"
	"uniform-manager/feature/uniform"
	"uniform-manager/feature/uniform/models"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// stockCmd is the parent command for inventory administration.
var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Administer the inventory ledger",
	Long:  `List, seed and correct inventory records without going through the HTTP API.`,
}

// stockListCmd prints every inventory record.
var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all inventory records",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := stockService()
		if err != nil {
			return err
		}

		records, err := svc.ListInventory(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println("\n--- Inventory ---")
		for _, rec := range records {
			fmt.Printf("%4d  %-20s %-20s %-10s qty=%d\n",
				rec.ID, rec.Category, rec.ItemType, rec.Size, rec.Quantity)
		}
		fmt.Printf("-----------------\n%d records\n", len(records))
		return nil
	},
}

// stockSeedCmd loads inventory records from a JSON file.
var stockSeedCmd = &cobra.Command{
	Use:   "seed [file.json]",
	Short: "Seed inventory records from a JSON file",
	Long: `Seed inventory records from a JSON array of stock entries:

  [
    {"category": "Uniform No 4", "type": "Boot", "size": "UK 8", "quantity": 12, "price": "39.90"}
  ]

Entries whose normalized key is already occupied are skipped with a warning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := stockService()
		if err != nil {
			return err
		}

		entries, err := readSeedFile(args[0])
		if err != nil {
			return err
		}

		created, skipped := 0, 0
		for _, rec := range entries {
			if err := svc.CreateInventory(cmd.Context(), rec); err != nil {
				logg.Warn("Skipping stock entry",
					zap.String("category", rec.Category),
					zap.String("type", rec.ItemType),
					zap.String("size", rec.Size),
					zap.Error(err),
				)
				skipped++
				continue
			}
			created++
		}

		logg.Info("Seed complete", zap.Int("created", created), zap.Int("skipped", skipped))
		return nil
	},
}

// stockSetCmd overwrites one record's quantity.
var stockSetCmd = &cobra.Command{
	Use:   "set [id] [quantity]",
	Short: "Set the quantity of an inventory record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}

		svc, logg, err := stockService()
		if err != nil {
			return err
		}

		if err := svc.SetQuantity(cmd.Context(), uint(id), quantity); err != nil {
			return err
		}
		logg.Info("Quantity updated", zap.Uint64("id", id), zap.Int("quantity", quantity))
		return nil
	},
}

// stockCheckCmd verifies the inventory schema.
var stockCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the inventory table schema",
	Long:  `Checks that the inventory table carries every column the reconciler depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		expected := []string{"id", "category", "item_type", "size", "normalized_size", "quantity"}
		missing, err := database.VerifyColumns(db, models.InventoryRecord{}.TableName(), expected)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			logg.Error("Inventory table is incomplete", zap.Strings("missing", missing))
			return fmt.Errorf("missing columns: %v", missing)
		}

		logg.Info("Inventory table OK", zap.Strings("columns", expected))
		return nil
	},
}

func init() {
	stockCmd.AddCommand(stockListCmd)
	stockCmd.AddCommand(stockSeedCmd)
	stockCmd.AddCommand(stockSetCmd)
	stockCmd.AddCommand(stockCheckCmd)
	RootCmd.AddCommand(stockCmd)
}

// stockService builds a service without a storage client; the stock
// commands never touch object storage.
func stockService() (*uniform.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := uniform.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return uniform.NewService(store, nil, "", logg), logg, nil
}

type seedEntry struct {
	Category string `json:"category"`
	Type     string `json:"type"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

func readSeedFile(path string) ([]*models.InventoryRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	records := make([]*models.InventoryRecord, 0, len(entries))
	for i, e := range entries {
		price := decimal.Zero
		if e.Price != "" {
			if price, err = decimal.NewFromString(e.Price); err != nil {
				return nil, fmt.Errorf("entry %d: invalid price %q", i, e.Price)
			}
		}
		records = append(records, &models.InventoryRecord{
			Category: e.Category,
			ItemType: e.Type,
			Size:     e.Size,
			Quantity: e.Quantity,
			Price:    price,
		})
	}
	return records, nil
}
