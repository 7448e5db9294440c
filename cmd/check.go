package cmd

import (
	"fmt"

	"equipment-tracker/core/config"
	"equipment-tracker/core/database"

	"github.com/spf13/cobra"
)

// storeTables are the tables the tracker expects to find.
var storeTables = []string{"inventory", "transactions"}

// checkCmd verifies the record store schema.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the record store schema",
	Long: `Checks that the inventory and transaction tables exist and prints
their column layout. A missing table means the store is unavailable; run
the server once to migrate and seed it.`,
	RunE: runCheck,
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to record store: %w", err)
	}

	missing := 0
	for _, table := range storeTables {
		if !db.Migrator().HasTable(table) {
			fmt.Printf("MISSING  %s\n", table)
			missing++
			continue
		}

		columns, err := database.GetTableColumns(db, table)
		if err != nil {
			return err
		}
		fmt.Printf("OK       %s (%d columns)\n", table, len(columns))
		for _, col := range columns {
			fmt.Printf("         - %s %s\n", col.Field, col.Type)
		}
	}

	if missing > 0 {
		return fmt.Errorf("store unavailable: %d table(s) missing", missing)
	}
	return nil
}
