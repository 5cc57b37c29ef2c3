// Backup command exports the whole desk as one JSON document.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/internal/impex"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export customers, todos, orders, and products as JSON",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

func init() {
	backupCmd.Flags().StringVar(&backupOut, "out", "", "output file (default: stdout)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	out, err := impex.ExportFullBackup(s.Customers(), s.Todos(), s.Orders(), s.Products())
	if err != nil {
		return err
	}

	if backupOut == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(backupOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	fmt.Println("Wrote", backupOut)
	return nil
}
