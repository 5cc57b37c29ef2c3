// Product commands manage the catalog: search, import, export.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/followdesk/followdesk/internal/impex"
	"github.com/followdesk/followdesk/internal/store"
	"github.com/followdesk/followdesk/pkg/search"
	"github.com/followdesk/followdesk/pkg/types"
)

var (
	productStatus   string
	productCodeType string
	productWired    string
	productWireless string
	productStrategy string
	productFormat   string
	productOut      string
)

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Manage the product catalog",
}

var productAddCmd = &cobra.Command{
	Use:   "add <model> <name>",
	Short: "Create a catalog product",
	Args:  cobra.ExactArgs(2),
	RunE:  runProductAdd,
}

var productSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by model, name, specs, or keywords",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProductSearch,
}

var productImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import products from a CSV or JSON file",
	Long: `Import reads products from a file. CSV headers may be Chinese or
English; rows missing model or name are reported per line and skipped.
JSON import always appends elements as new products.`,
	Args: cobra.ExactArgs(1),
	RunE: runProductImport,
}

var productExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the product catalog as CSV",
	Args:  cobra.NoArgs,
	RunE:  runProductExport,
}

func init() {
	productSearchCmd.Flags().StringVar(&productStatus, "status", "", "filter by product status")
	productSearchCmd.Flags().StringVar(&productCodeType, "code-type", "", "filter by supported code type")
	productSearchCmd.Flags().StringVar(&productWired, "wired", "", "filter by wired interface, e.g. USB")
	productSearchCmd.Flags().StringVar(&productWireless, "wireless", "", "filter by wireless interface, e.g. BT")

	productImportCmd.Flags().StringVar(&productStrategy, "strategy", impex.StrategyUpsertByModel, "CSV merge strategy: upsertByModel or allNew")
	productImportCmd.Flags().StringVar(&productFormat, "format", "csv", "file format: csv or json")

	productExportCmd.Flags().StringVar(&productOut, "out", "", "output file (default: stdout)")

	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productSearchCmd)
	productCmd.AddCommand(productImportCmd)
	productCmd.AddCommand(productExportCmd)
}

func runProductAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	id, err := s.AddProduct(store.ProductDraft{Model: args[0], Name: args[1]})
	if err != nil {
		return err
	}
	fmt.Printf("Created product: %s (%s)\n", args[0], id)
	return nil
}

func runProductSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	query := ""
	if len(args) == 1 {
		query = args[0]
	}
	found := s.SearchProducts(query, search.Filters{
		CodeType: productCodeType,
		Wired:    productWired,
		Wireless: productWireless,
		Status:   productStatus,
	})

	if flagJSON {
		return printJSON(found)
	}
	if len(found) == 0 {
		fmt.Println("No matching products")
		return nil
	}
	for _, product := range found {
		fmt.Printf("%s  %-16s %s (%s)\n", product.ID, product.Model, product.Name, product.Status)
	}
	return nil
}

func runProductImport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	var merged []types.Product
	var problems []string
	switch productFormat {
	case "csv":
		merged, problems = impex.ImportProductsCSV(string(data), productStrategy, s.Products())
	case "json":
		merged, problems = impex.ImportProductsJSON(string(data), s.Products())
	default:
		return fmt.Errorf("unknown format %q", productFormat)
	}

	s.ReplaceProducts(merged)
	for _, problem := range problems {
		fmt.Fprintln(os.Stderr, problem)
	}
	fmt.Printf("Catalog now holds %d products (%d rows skipped)\n", len(merged), len(problems))
	return nil
}

func runProductExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(s)

	out := impex.ExportProductsCSV(s.Products())
	return writeExport(out)
}

// writeExport sends export text to --out or stdout.
func writeExport(out string) error {
	if productOut == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(productOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Println("Wrote", productOut)
	return nil
}
