package cmd

import (
	"fmt"

	"equipment-tracker/core/config"
	"equipment-tracker/core/storage"
	"equipment-tracker/feature/tracker"

	"github.com/spf13/cobra"
)

// receiptsCmd manages the archived delivery receipts.
var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "List archived delivery receipts",
	Long: `Lists the delivery receipts archived in object storage, oldest first.
Use the show and remove subcommands to print or delete a single receipt by
its object name.`,
	RunE: runReceiptsList,
}

var receiptsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print one archived receipt",
	Args:  cobra.ExactArgs(1),
	RunE:  runReceiptsShow,
}

var receiptsRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete one archived receipt",
	Args:  cobra.ExactArgs(1),
	RunE:  runReceiptsRemove,
}

func init() {
	receiptsCmd.AddCommand(receiptsShowCmd)
	receiptsCmd.AddCommand(receiptsRemoveCmd)
	RootCmd.AddCommand(receiptsCmd)
}

// openArchive builds the receipt archive from configuration. Unlike the
// server, the CLI has no fallback when storage is disabled.
func openArchive(cmd *cobra.Command) (*tracker.ReceiptArchive, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !cfg.Storage.Enabled {
		return nil, fmt.Errorf("receipt archive is disabled; set STORAGE_ENABLED=true")
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return tracker.NewReceiptArchive(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Prefix)
}

func runReceiptsList(cmd *cobra.Command, args []string) error {
	archive, err := openArchive(cmd)
	if err != nil {
		return err
	}

	names, err := archive.List(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	fmt.Printf("%d receipt(s)\n", len(names))
	return nil
}

func runReceiptsShow(cmd *cobra.Command, args []string) error {
	archive, err := openArchive(cmd)
	if err != nil {
		return err
	}

	body, err := archive.Fetch(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Print(body)
	return nil
}

func runReceiptsRemove(cmd *cobra.Command, args []string) error {
	archive, err := openArchive(cmd)
	if err != nil {
		return err
	}

	if err := archive.Remove(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", args[0])
	return nil
}
