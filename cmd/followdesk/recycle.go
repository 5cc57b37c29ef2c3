// Recycle bin commands: list, restore, purge, and soft-delete entry points.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recycleCmd = &cobra.Command{
	Use:   "recycle",
	Short: "Manage the recycle bin",
}

var recycleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recycle bin entries",
	Args:  cobra.NoArgs,
	RunE:  runRecycleList,
}

var recycleRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore an entry to its live collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecycleRestore,
}

var recyclePurgeCmd = &cobra.Command{
	Use:   "purge <id>",
	Short: "Permanently remove an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecyclePurge,
}

var recycleDeleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Soft-delete an order, customer, or product into the bin",
	Long: `Delete moves a live entity into the recycle bin. Customers and
products that are still referenced by orders are refused.`,
	Args: cobra.ExactArgs(2),
	RunE: runRecycleDelete,
}

func init() {
	recycleCmd.AddCommand(recycleListCmd)
	recycleCmd.AddCommand(recycleRestoreCmd)
	recycleCmd.AddCommand(recyclePurgeCmd)
	recycleCmd.AddCommand(recycleDeleteCmd)
}

func runRecycleList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	entries := s.RecycleBin()
	if flagJSON {
		return printJSON(entries)
	}
	if len(entries) == 0 {
		fmt.Println("Recycle bin is empty")
		return nil
	}
	for _, entry := range entries {
		line := fmt.Sprintf("%s  %-8s %s", entry.ID, entry.EntityType, entry.EntityID)
		if entry.Reason != "" {
			line += "  (" + entry.Reason + ")"
		}
		fmt.Println(line)
	}
	return nil
}

func runRecycleRestore(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := s.RestoreFromRecycleBin(args[0]); err != nil {
		return err
	}
	fmt.Println("Restored", args[0])
	return nil
}

func runRecyclePurge(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := s.PurgeRecycleBin(args[0]); err != nil {
		return err
	}
	fmt.Println("Purged", args[0])
	return nil
}

func runRecycleDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	switch args[0] {
	case "order":
		err = s.DeleteOrderToRecycleBin(args[1])
	case "customer":
		err = s.DeleteCustomerToRecycleBin(args[1])
	case "product":
		err = s.DeleteProductToRecycleBin(args[1])
	default:
		return fmt.Errorf("unknown entity %q (want order, customer, or product)", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Printf("Moved %s %s to recycle bin\n", args[0], args[1])
	return nil
}
