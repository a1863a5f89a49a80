package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/services"
)

// Loader reads catalog seed rows from CSV files. Values are kept as raw
// strings so every row goes through the same validation as a user edit.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

var (
	partsHeader    = []string{"type", "name", "price", "stock", "min", "max", "machine_or_company"}
	productsHeader = []string{"name", "price", "stock", "min", "max", "part_ids"}
)

// LoadPartsFile loads part seed rows from a CSV file
func (l *Loader) LoadPartsFile(filename string) ([]services.PartSeed, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open parts file %s: %w", filename, err)
	}
	defer file.Close()

	return l.LoadParts(file)
}

// LoadParts loads part seed rows
func (l *Loader) LoadParts(r io.Reader) ([]services.PartSeed, error) {
	records, err := readRecords(r, "parts", partsHeader)
	if err != nil {
		return nil, err
	}

	seeds := make([]services.PartSeed, 0, len(records))
	for i, record := range records {
		line := i + 2
		if len(record) != len(partsHeader) {
			return nil, fmt.Errorf("parts CSV row %d: expected %d columns, got %d", line, len(partsHeader), len(record))
		}

		input, err := parsePart(record)
		if err != nil {
			return nil, fmt.Errorf("parts CSV row %d: %w", line, err)
		}

		seeds = append(seeds, services.PartSeed{Line: line, Input: input})
	}

	return seeds, nil
}

// LoadProductsFile loads product seed rows from a CSV file
func (l *Loader) LoadProductsFile(filename string) ([]services.ProductSeed, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open products file %s: %w", filename, err)
	}
	defer file.Close()

	return l.LoadProducts(file)
}

// LoadProducts loads product seed rows
func (l *Loader) LoadProducts(r io.Reader) ([]services.ProductSeed, error) {
	records, err := readRecords(r, "products", productsHeader)
	if err != nil {
		return nil, err
	}

	seeds := make([]services.ProductSeed, 0, len(records))
	for i, record := range records {
		line := i + 2
		if len(record) != len(productsHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", line, len(productsHeader), len(record))
		}

		partIDs, err := parsePartIDs(record[5])
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", line, err)
		}

		seeds = append(seeds, services.ProductSeed{
			Line: line,
			Input: services.ProductInput{
				Action: entities.ActionAdd,
				Index:  -1,
				Name:   record[0],
				Price:  record[1],
				Stock:  record[2],
				Min:    record[3],
				Max:    record[4],
			},
			PartIDs: partIDs,
		})
	}

	return seeds, nil
}

// readRecords reads all rows and strips the validated header
func readRecords(r io.Reader, kind string, expectedHeader []string) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}

	return records[1:], nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parsePart(record []string) (services.PartInput, error) {
	source, err := parseSourceKind(record[0])
	if err != nil {
		return services.PartInput{}, err
	}

	return services.PartInput{
		Action:      entities.ActionAdd,
		Index:       -1,
		Name:        record[1],
		Price:       record[2],
		Stock:       record[3],
		Min:         record[4],
		Max:         record[5],
		Source:      source,
		SourceValue: record[6],
	}, nil
}

func parseSourceKind(s string) (entities.SourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inhouse", "in_house", "in-house":
		return entities.InHouse, nil
	case "outsourced":
		return entities.Outsourced, nil
	default:
		return 0, fmt.Errorf("invalid part type: %s", s)
	}
}

// parsePartIDs reads a space or semicolon separated id list
func parsePartIDs(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ' '
	})

	ids := make([]int, 0, len(fields))
	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid part id: %s", field)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
