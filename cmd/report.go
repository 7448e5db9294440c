package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"equipment-tracker/core/config"
	"equipment-tracker/core/database"
	"equipment-tracker/feature/tracker"
	"equipment-tracker/feature/tracker/reconcile"

	"github.com/spf13/cobra"
)

// reportCmd prints the current reconciliation snapshot of the store.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print current inventory levels and recent transactions",
	Long: `Reconciles the inventory totals with the transaction log and prints
per-device total, rented, and available counts followed by a summary of the
most recent transactions.`,
	RunE: runReport,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to record store: %w", err)
	}

	store, err := tracker.NewStore(db)
	if err != nil {
		return err
	}

	inventory, err := store.Inventory(ctx)
	if err != nil {
		return fmt.Errorf("failed to load inventory: %w", err)
	}
	log, err := store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	snapshot := reconcile.Build(inventory, log)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DEVICE\tTOTAL\tRENTED\tAVAILABLE")
	for _, item := range snapshot.List {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", item.Name, item.Total, item.Rented, item.Available)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTransactions: %d on record, showing %d most recent\n", len(log), len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		fmt.Printf("  row %d  %s  %s -> %s  [%s]\n",
			tx.Row, tx.Timestamp.Format("2006-01-02"), tx.Device, tx.PatientName, tx.Status)
	}

	return nil
}
