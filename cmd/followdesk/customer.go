// Customer commands create and inspect customers, with duplicate warnings
// on create.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/internal/store"
	"github.com/followdesk/followdesk/pkg/match"
)

var (
	customerContact string
	customerPhone   string
	customerWechat  string
	customerEmail   string
	customerRegion  string
	customerAddress string
	customerNotes   string
	customerForce   bool
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customers",
}

var customerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a customer",
	Long: `Add creates a customer. When existing customers have similar names,
the likely duplicates are listed with the differing characters marked
and the create is refused unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runCustomerAdd,
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	Args:  cobra.NoArgs,
	RunE:  runCustomerList,
}

var customerFindCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Find customers by fuzzy name match",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerFind,
}

func init() {
	customerAddCmd.Flags().StringVar(&customerContact, "contact", "", "contact person name")
	customerAddCmd.Flags().StringVar(&customerPhone, "phone", "", "phone number")
	customerAddCmd.Flags().StringVar(&customerWechat, "wechat", "", "wechat id")
	customerAddCmd.Flags().StringVar(&customerEmail, "email", "", "email address")
	customerAddCmd.Flags().StringVar(&customerRegion, "region", "", "region")
	customerAddCmd.Flags().StringVar(&customerAddress, "address", "", "address")
	customerAddCmd.Flags().StringVar(&customerNotes, "notes", "", "free-form notes")
	customerAddCmd.Flags().BoolVar(&customerForce, "force", false, "create even when likely duplicates exist")

	customerCmd.AddCommand(customerAddCmd)
	customerCmd.AddCommand(customerListCmd)
	customerCmd.AddCommand(customerFindCmd)
}

// renderHighlights prints a segmented name with differing runs bracketed,
// e.g. 深圳客户[A] vs 深圳客户[B].
func renderHighlights(segments []match.Segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Match {
			b.WriteString(seg.Text)
		} else {
			b.WriteString("[")
			b.WriteString(seg.Text)
			b.WriteString("]")
		}
	}
	return b.String()
}

func runCustomerAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	name := args[0]
	if dupes := s.LikelyDuplicates(name, 3); len(dupes) > 0 && !customerForce {
		fmt.Println("Likely duplicates:")
		for _, dupe := range dupes {
			inputSegs, candidateSegs := match.ComparisonHighlights(name, dupe.Name)
			fmt.Printf("  %s ~ %s (%s)\n", renderHighlights(inputSegs), renderHighlights(candidateSegs), dupe.ID)
		}
		return fmt.Errorf("refusing to create %q; use --force to create anyway", name)
	}

	id, err := s.AddCustomer(store.CustomerDraft{
		Name:        name,
		ContactName: customerContact,
		Phone:       customerPhone,
		Wechat:      customerWechat,
		Email:       customerEmail,
		Region:      customerRegion,
		Address:     customerAddress,
		Notes:       customerNotes,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		customer, _ := s.CustomerByID(id)
		return printJSON(customer)
	}
	fmt.Printf("Created customer: %s (%s)\n", name, id)
	return nil
}

func runCustomerList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	customers := s.Customers()
	if flagJSON {
		return printJSON(customers)
	}
	for _, customer := range customers {
		fmt.Printf("%s  %s\n", customer.ID, customer.Name)
	}
	return nil
}

func runCustomerFind(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	found := s.LikelyDuplicates(args[0], 3)
	if flagJSON {
		return printJSON(found)
	}
	if len(found) == 0 {
		fmt.Println("No similar customers")
		return nil
	}
	for _, customer := range found {
		fmt.Printf("%s  %s\n", customer.ID, customer.Name)
	}
	return nil
}
