package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vsinha/inventory/pkg/application/dto"
)

const (
	CatalogAll      = "all"
	CatalogParts    = "parts"
	CatalogProducts = "products"
)

// Config holds configuration for output generation
type Config struct {
	Format string
	// Catalog selects which catalogs are written: all, parts or products
	Catalog string
	// OutputDir receives parts.csv and products.csv in csv format; empty writes to Out
	OutputDir string
	Out       io.Writer
}

// Generate writes the catalog in the configured format
func Generate(view dto.CatalogView, config Config) error {
	if config.Catalog == "" {
		config.Catalog = CatalogAll
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}

	switch config.Format {
	case "text", "":
		return generateTextOutput(view, config)
	case "json":
		return generateJSONOutput(view, config)
	case "csv":
		return generateCSVOutput(view, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func showParts(config Config) bool {
	return config.Catalog == CatalogAll || config.Catalog == CatalogParts
}

func showProducts(config Config) bool {
	return config.Catalog == CatalogAll || config.Catalog == CatalogProducts
}

// generateTextOutput creates human-readable tables
func generateTextOutput(view dto.CatalogView, config Config) error {
	w := config.Out

	if showParts(config) {
		fmt.Fprintf(w, "Parts: %d\n", len(view.Parts))
		WritePartsTable(w, view.Parts)
		fmt.Fprintln(w)
	}

	if showProducts(config) {
		fmt.Fprintf(w, "Products: %d\n", len(view.Products))
		WriteProductsTable(w, view.Products)
		fmt.Fprintln(w)
	}

	return nil
}

// WritePartsTable prints parts as a fixed-width table
func WritePartsTable(w io.Writer, parts []dto.PartView) {
	if len(parts) == 0 {
		return
	}

	fmt.Fprintf(w, "%-6s %-24s %-8s %-10s %-6s %-6s %-11s %-20s\n",
		"ID", "Name", "Stock", "Price", "Min", "Max", "Source", "Detail")
	fmt.Fprintf(w, "%-6s %-24s %-8s %-10s %-6s %-6s %-11s %-20s\n",
		"------", "------------------------", "--------", "----------", "------", "------", "-----------", "--------------------")

	for _, part := range parts {
		fmt.Fprintf(w, "%-6d %-24s %-8d %-10s %-6d %-6d %-11s %-20s\n",
			part.ID,
			part.Name,
			part.Stock,
			part.Price.StringFixed(2),
			part.Min,
			part.Max,
			part.Source,
			part.Detail)
	}
}

// WriteProductsTable prints products as a fixed-width table
func WriteProductsTable(w io.Writer, products []dto.ProductView) {
	if len(products) == 0 {
		return
	}

	fmt.Fprintf(w, "%-6s %-24s %-8s %-10s %-6s %-6s %-10s %-20s\n",
		"ID", "Name", "Stock", "Price", "Min", "Max", "Cost", "Parts")
	fmt.Fprintf(w, "%-6s %-24s %-8s %-10s %-6s %-6s %-10s %-20s\n",
		"------", "------------------------", "--------", "----------", "------", "------", "----------", "--------------------")

	for _, product := range products {
		fmt.Fprintf(w, "%-6d %-24s %-8d %-10s %-6d %-6d %-10s %-20s\n",
			product.ID,
			product.Name,
			product.Stock,
			product.Price.StringFixed(2),
			product.Min,
			product.Max,
			product.PartsCost.StringFixed(2),
			joinIDs(product.PartIDs))
	}
}

// generateJSONOutput creates JSON output
func generateJSONOutput(view dto.CatalogView, config Config) error {
	var payload interface{} = view
	switch config.Catalog {
	case CatalogParts:
		payload = view.Parts
	case CatalogProducts:
		payload = view.Products
	}

	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(config.Out, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// generateCSVOutput writes catalogs in the seed file layout so they can be loaded again
func generateCSVOutput(view dto.CatalogView, config Config) error {
	if config.OutputDir == "" {
		switch config.Catalog {
		case CatalogParts:
			return writePartsCSV(config.Out, view.Parts)
		case CatalogProducts:
			return writeProductsCSV(config.Out, view.Products)
		default:
			return fmt.Errorf("output directory required for CSV format with both catalogs")
		}
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if showParts(config) {
		partsFile := filepath.Join(config.OutputDir, "parts.csv")
		if err := writeFile(partsFile, func(w io.Writer) error { return writePartsCSV(w, view.Parts) }); err != nil {
			return fmt.Errorf("failed to write parts CSV: %w", err)
		}
	}

	if showProducts(config) {
		productsFile := filepath.Join(config.OutputDir, "products.csv")
		if err := writeFile(productsFile, func(w io.Writer) error { return writeProductsCSV(w, view.Products) }); err != nil {
			return fmt.Errorf("failed to write products CSV: %w", err)
		}
	}

	return nil
}

var createFile = func(filename string) (io.WriteCloser, error) {
	return os.Create(filename)
}

func writeFile(filename string, write func(w io.Writer) error) (err error) {
	file, err := createFile(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	return write(file)
}

func writePartsCSV(w io.Writer, parts []dto.PartView) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"type", "name", "price", "stock", "min", "max", "machine_or_company"}); err != nil {
		return err
	}

	for _, part := range parts {
		record := []string{
			strings.ToLower(part.Source),
			part.Name,
			part.Price.String(),
			strconv.Itoa(part.Stock),
			strconv.Itoa(part.Min),
			strconv.Itoa(part.Max),
			sourceValue(part),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeProductsCSV(w io.Writer, products []dto.ProductView) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"name", "price", "stock", "min", "max", "part_ids"}); err != nil {
		return err
	}

	for _, product := range products {
		record := []string{
			product.Name,
			product.Price.String(),
			strconv.Itoa(product.Stock),
			strconv.Itoa(product.Min),
			strconv.Itoa(product.Max),
			joinIDs(product.PartIDs),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func sourceValue(part dto.PartView) string {
	if part.MachineID != nil {
		return strconv.Itoa(*part.MachineID)
	}
	return lo.FromPtr(part.CompanyName)
}

func joinIDs(ids []int) string {
	return strings.Join(lo.Map(ids, func(id int, _ int) string { return strconv.Itoa(id) }), " ")
}
