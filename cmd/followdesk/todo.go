// Todo commands create, list, complete, and convert follow-up todos.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/internal/store"
	"github.com/followdesk/followdesk/pkg/quickadd"
	"github.com/followdesk/followdesk/pkg/types"
)

var (
	todoCustomerID  string
	todoDate        string
	todoConvertType string
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage follow-up todos",
}

var todoAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Create a todo from quick-add text",
	Long: `Add creates a todo for a customer. The text is parsed for quick-add
markers: a !!!/!!/! priority prefix, #tags, an @HH:mm or bare HH:mm
reminder time, and a r:<n>m / r:<n>h reminder lead.

Example:
  followdesk todo add "!! 回访报价 #华南 @14:30 r:15m" --customer <id>`,
	Args: cobra.ExactArgs(1),
	RunE: runTodoAdd,
}

var todoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos for a day",
	Args:  cobra.NoArgs,
	RunE:  runTodoList,
}

var todoDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a todo completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTodoSetCompleted(args[0], true)
	},
}

var todoUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Clear a todo's completed flag",
	Long: `Undone clears the completed flag. If the todo was converted to an
order, the order and the conversion record are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTodoSetCompleted(args[0], false)
	},
}

var todoConvertCmd = &cobra.Command{
	Use:   "convert <id>",
	Short: "Complete a todo and convert it to an order or opportunity",
	Args:  cobra.ExactArgs(1),
	RunE:  runTodoConvert,
}

func init() {
	todoAddCmd.Flags().StringVar(&todoCustomerID, "customer", "", "customer id (required)")
	todoAddCmd.Flags().StringVar(&todoDate, "date", "", "day bucket YYYY-MM-DD (default: today)")
	_ = todoAddCmd.MarkFlagRequired("customer")

	todoListCmd.Flags().StringVar(&todoDate, "date", "", "day bucket YYYY-MM-DD (default: today)")

	todoConvertCmd.Flags().StringVar(&todoConvertType, "type", types.OrderTypeOrder, "conversion type: order or opportunity")

	todoCmd.AddCommand(todoAddCmd)
	todoCmd.AddCommand(todoListCmd)
	todoCmd.AddCommand(todoDoneCmd)
	todoCmd.AddCommand(todoUndoneCmd)
	todoCmd.AddCommand(todoConvertCmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	parsed := quickadd.Parse(args[0])
	id, err := s.AddTodo(store.TodoDraft{
		Date:                todoDate,
		Title:               parsed.Title,
		CustomerID:          todoCustomerID,
		Priority:            parsed.Priority,
		ReminderTime:        parsed.ReminderTime,
		RemindBeforeMinutes: parsed.RemindBeforeMinutes,
		Tags:                parsed.Tags,
	})
	if err != nil {
		return err
	}

	todo, _ := s.TodoByID(id)
	if flagJSON {
		return printJSON(todo)
	}
	fmt.Printf("Created todo: %s (%s)\n", todo.Title, id)
	return nil
}

func runTodoList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	date := todoDate
	if date == "" {
		date = s.SelectedDate()
	}
	todos := s.TodosForDate(date)

	if flagJSON {
		return printJSON(todos)
	}
	if len(todos) == 0 {
		fmt.Printf("No todos for %s\n", date)
		return nil
	}
	for _, todo := range todos {
		mark := " "
		if todo.Completed {
			mark = "x"
		}
		fmt.Printf("[%s] %s  %s\n", mark, todo.ID, todo.Title)
	}
	return nil
}

func runTodoSetCompleted(id string, completed bool) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	if err := s.SetTodoCompleted(id, completed); err != nil {
		return err
	}
	if completed {
		fmt.Println("Todo completed:", id)
	} else {
		fmt.Println("Todo reopened:", id)
	}
	return nil
}

func runTodoConvert(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	orderID, err := s.CompleteTodoWithConversion(args[0], todoConvertType)
	if err != nil {
		return err
	}

	order, _ := s.OrderByID(orderID)
	if flagJSON {
		return printJSON(order)
	}
	fmt.Printf("Created %s %s (%s)\n", order.Type, order.OrderNo, orderID)
	return nil
}
