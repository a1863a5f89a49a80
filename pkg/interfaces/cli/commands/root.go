package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/infrastructure/config"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
)

// Options holds the flags shared by every command
type Options struct {
	PartsFile    string
	ProductsFile string
	Format       string
	LogLevel     string
	LogJSON      bool
	EnvFile      string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// NewRootCommand builds the inventory command tree over the given streams
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &Options{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "inventory",
		Short: "Parts and products inventory catalog",
		Long: `Manage an in-memory catalog of parts and products.

Parts are made in house (with a machine id) or outsourced (with a company name).
Products are assembled from parts and must be priced at or above the cost of their parts.
Seed CSV files are loaded through the same validation as interactive edits.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runShell(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.PartsFile, "parts", "", "parts seed CSV (default $INVENTORY_PARTS_SEED)")
	flags.StringVar(&opts.ProductsFile, "products", "", "products seed CSV (default $INVENTORY_PRODUCTS_SEED)")
	flags.StringVarP(&opts.Format, "format", "f", "", "output format: text, json, csv (default $INVENTORY_OUTPUT_FORMAT)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, error (default $LOGGER_LEVEL)")
	flags.BoolVar(&opts.LogJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded when APP_ENV=local")

	root.AddCommand(
		newShellCommand(opts),
		newListCommand(opts),
		newValidateCommand(opts),
		newGenerateCommand(opts),
	)
	return root
}

// setup loads the configuration and lets explicit flags override it
func (o *Options) setup(cmd *cobra.Command, _ []string) error {
	if err := config.Load(o.EnvFile); err != nil {
		return err
	}
	cfg := config.C()

	flags := cmd.Flags()
	if !flags.Changed("parts") {
		o.PartsFile = cfg.Catalog.PartsSeed()
	}
	if !flags.Changed("products") {
		o.ProductsFile = cfg.Catalog.ProductsSeed()
	}
	if !flags.Changed("format") {
		o.Format = cfg.Catalog.OutputFormat()
	}
	if !flags.Changed("log-level") {
		o.LogLevel = cfg.Logger.Level()
	}
	if !flags.Changed("log-json") {
		o.LogJSON = cfg.Logger.AsJSON()
	}

	if err := logger.Init(o.errOut, o.LogLevel, o.LogJSON); err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	logger.Debug(cmd.Context(), "configuration loaded",
		logger.String("format", o.Format),
		logger.Bool("log_json", o.LogJSON),
		logger.Bool("seeded", o.PartsFile != "" || o.ProductsFile != ""))
	return nil
}

// catalog is a repository with its service, seeded from the configured files
type catalog struct {
	repo    *memory.InventoryRepository
	service *services.InventoryService
	result  services.SeedResult

	// rejected rows; nil when every row was accepted
	rejected error
}

// loadCatalog seeds a fresh catalog. Files that cannot be read fail the load;
// rows that fail validation are reported in catalog.rejected.
func (o *Options) loadCatalog(ctx context.Context, confirmer services.Confirmer, notifier services.Notifier) (*catalog, error) {
	const op = "loadCatalog"

	repo := memory.NewInventoryRepository()
	service := services.NewInventoryService(repo, confirmer, notifier)
	loaded := &catalog{repo: repo, service: service}

	if o.PartsFile == "" && o.ProductsFile == "" {
		return loaded, nil
	}

	loader := csv.NewLoader()
	parts, err := loadSeeds(loader.LoadPartsFile, o.PartsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	products, err := loadSeeds(loader.LoadProductsFile, o.ProductsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Seeding is non-interactive: rejections are collected, not shown one by one.
	seeding := service.WithPorts(services.AutoConfirm(false), services.DiscardNotifier{})
	loaded.result, loaded.rejected = seeding.Seed(ctx, parts, products)

	seedLog := logger.With(
		logger.String("parts_file", o.PartsFile),
		logger.String("products_file", o.ProductsFile))
	for _, row := range rowErrors(loaded.rejected) {
		seedLog.Warn(ctx, "seed row rejected",
			logger.String("catalog", row.Catalog),
			logger.Int("line", row.Line),
			logger.ErrorF(row.Err))
	}
	return loaded, nil
}

func loadSeeds[T any](load func(string) ([]T, error), filename string) ([]T, error) {
	if filename == "" {
		return nil, nil
	}
	return load(filename)
}

// rowErrors flattens the joined error returned by Seed
func rowErrors(err error) []*services.RowError {
	if err == nil {
		return nil
	}

	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		var row *services.RowError
		if errors.As(err, &row) {
			return []*services.RowError{row}
		}
		return nil
	}

	var rows []*services.RowError
	for _, e := range joined.Unwrap() {
		rows = append(rows, rowErrors(e)...)
	}
	return rows
}
