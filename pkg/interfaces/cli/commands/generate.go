package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/inventory/pkg/interfaces/cli/output"
)

// GenerateConfig holds configuration for seed generation
type GenerateConfig struct {
	Parts     int    // Number of parts to generate
	Products  int    // Number of products to generate
	MaxParts  int    // Most associations a product may get
	OutputDir string // Receives parts.csv and products.csv
	Seed      uint64 // Random seed for reproducible output; 0 picks one
}

func (c GenerateConfig) validate() error {
	switch {
	case c.Parts < 0 || c.Products < 0:
		return errors.New("counts cannot be negative")
	case c.MaxParts < 1:
		return errors.New("max-parts must be at least 1")
	case c.Products > 0 && c.Parts == 0:
		return errors.New("products need at least one part")
	}
	return nil
}

func newGenerateCommand(opts *Options) *cobra.Command {
	cfg := GenerateConfig{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random seed files that pass validation",
		Long: `Generate a random catalog and write it as parts.csv and products.csv.

Every record is added through the same validation as an interactive edit, so the
files always load cleanly. Use --seed for reproducible output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := GenerateCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			view := dto.NewCatalogView(repo.AllParts(), repo.AllProducts())
			if err := output.Generate(view, output.Config{Format: "csv", OutputDir: cfg.OutputDir}); err != nil {
				return err
			}

			fmt.Fprintf(opts.out, "Wrote %d parts and %d products to %s\n", len(view.Parts), len(view.Products), cfg.OutputDir)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Parts, "part-count", 20, "number of parts")
	flags.IntVar(&cfg.Products, "product-count", 5, "number of products")
	flags.IntVar(&cfg.MaxParts, "max-parts", 4, "most parts associated with one product")
	flags.StringVarP(&cfg.OutputDir, "output-dir", "o", "", "directory for the generated files")
	flags.Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 picks one)")
	_ = cmd.MarkFlagRequired("output-dir")

	return cmd
}

// GenerateCatalog fills a fresh catalog with random parts and products.
// Products only reference generated parts; a part may appear more than once.
func GenerateCatalog(ctx context.Context, cfg GenerateConfig) (*memory.InventoryRepository, error) {
	const op = "GenerateCatalog"

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	faker := gofakeit.New(cfg.Seed)
	repo := memory.NewInventoryRepository()
	service := services.NewInventoryService(repo, services.AutoConfirm(true), services.DiscardNotifier{})

	for i := 0; i < cfg.Parts; i++ {
		if _, err := service.SavePart(ctx, fakePartInput(faker)); err != nil {
			return nil, fmt.Errorf("%s: part %d: %w", op, i+1, err)
		}
	}

	parts := repo.AllParts()
	for i := 0; i < cfg.Products; i++ {
		associated := make([]*entities.Part, faker.Number(1, cfg.MaxParts))
		for j := range associated {
			associated[j] = parts[faker.Number(0, len(parts)-1)]
		}

		if _, err := service.SaveProduct(ctx, fakeProductInput(faker, associated)); err != nil {
			return nil, fmt.Errorf("%s: product %d: %w", op, i+1, err)
		}
	}

	logger.Debug(ctx, "catalog generated", logger.Any("config", cfg))
	return repo, nil
}

func fakeStock(faker *gofakeit.Faker) (stock, minStock, maxStock int) {
	stock = faker.Number(0, 500)
	minStock = faker.Number(0, stock)
	maxStock = faker.Number(stock, stock+500)
	return stock, minStock, maxStock
}

func fakePartInput(faker *gofakeit.Faker) domainservices.PartInput {
	stock, minStock, maxStock := fakeStock(faker)

	price := decimal.NewFromFloat(faker.Price(0.05, 250)).Round(2)
	if !price.IsPositive() {
		price = decimal.New(1, -2)
	}

	input := domainservices.PartInput{
		Action: entities.ActionAdd,
		Index:  -1,
		Name:   faker.ProductName(),
		Price:  price.StringFixed(2),
		Stock:  strconv.Itoa(stock),
		Min:    strconv.Itoa(minStock),
		Max:    strconv.Itoa(maxStock),
	}

	if faker.Bool() {
		input.Source = entities.InHouse
		input.SourceValue = strconv.Itoa(faker.Number(1, 99))
	} else {
		input.Source = entities.Outsourced
		input.SourceValue = faker.Company()
	}
	return input
}

func fakeProductInput(faker *gofakeit.Faker, parts []*entities.Part) domainservices.ProductInput {
	stock, minStock, maxStock := fakeStock(faker)
	margin := decimal.NewFromFloat(faker.Price(1, 100)).Round(2)

	return domainservices.ProductInput{
		Action:          entities.ActionAdd,
		Index:           -1,
		Name:            faker.ProductName(),
		Price:           entities.PartsCost(parts).Add(margin).StringFixed(2),
		Stock:           strconv.Itoa(stock),
		Min:             strconv.Itoa(minStock),
		Max:             strconv.Itoa(maxStock),
		AssociatedParts: parts,
	}
}
