// Order commands inspect orders, move them through statuses, and record
// follow-up notes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/pkg/types"
)

var orderStatusNote string

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage orders and opportunities",
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	Args:  cobra.NoArgs,
	RunE:  runOrderList,
}

var orderShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one order with its timeline",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderShow,
}

var orderStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set an order's status",
	Long: `Status moves an order to any workflow stage and appends a timeline
entry recording the change. Valid stages:

  ` + fmt.Sprint(types.OrderStatuses),
	Args: cobra.ExactArgs(2),
	RunE: runOrderStatus,
}

var orderNoteCmd = &cobra.Command{
	Use:   "note <id> <text>",
	Short: "Append a follow-up note to an order's timeline",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrderNote,
}

var orderArchiveCmd = &cobra.Command{
	Use:   "archive <id> <item-index>",
	Short: "Archive a custom order item into the product catalog",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrderArchive,
}

var orderUnarchiveCmd = &cobra.Command{
	Use:   "unarchive <id> <item-index>",
	Short: "Undo an item's archive, moving the product to the recycle bin",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrderUnarchive,
}

func init() {
	orderStatusCmd.Flags().StringVar(&orderStatusNote, "note", "", "detail recorded with the status change")

	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderStatusCmd)
	orderCmd.AddCommand(orderNoteCmd)
	orderCmd.AddCommand(orderArchiveCmd)
	orderCmd.AddCommand(orderUnarchiveCmd)
}

func runOrderList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	orders := s.Orders()
	if flagJSON {
		return printJSON(orders)
	}
	for _, order := range orders {
		fmt.Printf("%s  %s  %-12s %s\n", order.ID, order.OrderNo, order.Type, order.Status)
	}
	return nil
}

func runOrderShow(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	order, ok := s.OrderByID(args[0])
	if !ok {
		return types.Guardf(types.ErrNotFound, "未找到订单。")
	}
	if flagJSON {
		return printJSON(order)
	}

	fmt.Printf("%s  %s  %s\n", order.OrderNo, order.Type, order.Status)
	for _, item := range order.Items {
		label := item.CustomSpecText
		if item.Snapshot != nil {
			label = fmt.Sprintf("%s %s", item.Snapshot.Model, item.Snapshot.Name)
		}
		fmt.Printf("  item: %-14s x%d  %s\n", item.Kind, item.Quantity, label)
	}
	for _, entry := range order.Timeline {
		if entry.Detail != "" {
			fmt.Printf("  %s: %s\n", entry.Action, entry.Detail)
		} else {
			fmt.Printf("  %s\n", entry.Action)
		}
	}
	return nil
}

func runOrderStatus(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := s.TransitionOrderStatus(args[0], args[1], orderStatusNote); err != nil {
		return err
	}
	fmt.Printf("Order %s -> %s\n", args[0], args[1])
	return nil
}

func runOrderNote(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := s.AppendOrderTimeline(args[0], args[1]); err != nil {
		return err
	}
	fmt.Println("Note added to", args[0])
	return nil
}

func runOrderArchive(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	index, err := parseItemIndex(args[1])
	if err != nil {
		return err
	}
	productID, err := s.ArchiveCustomItemToProduct(args[0], index, nil)
	if err != nil {
		return err
	}
	fmt.Println("Archived item as product:", productID)
	return nil
}

func runOrderUnarchive(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	index, err := parseItemIndex(args[1])
	if err != nil {
		return err
	}
	recycleID, err := s.UndoArchiveCustomItem(args[0], index)
	if err != nil {
		return err
	}
	fmt.Println("Archive undone; product moved to recycle bin:", recycleID)
	return nil
}

func parseItemIndex(arg string) (int, error) {
	var index int
	if _, err := fmt.Sscanf(arg, "%d", &index); err != nil || index < 0 {
		return 0, fmt.Errorf("invalid item index %q", arg)
	}
	return index, nil
}
