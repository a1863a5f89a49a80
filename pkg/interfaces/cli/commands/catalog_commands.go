package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/interfaces/cli/output"
)

// ErrRejectedRows is returned by validate when any seed row fails validation
var ErrRejectedRows = errors.New("seed rows rejected")

func newShellCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Edit the catalog interactively (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runShell(cmd.Context())
		},
	}
}

func (o *Options) runShell(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	console := NewConsole(o.in, o.out)
	loaded, err := o.loadCatalog(ctx, console, console)
	if err != nil {
		return err
	}

	if rows := rowErrors(loaded.rejected); len(rows) > 0 {
		console.Notify(services.Message{
			Title:   fmt.Sprintf("%d seed rows were rejected", len(rows)),
			Body:    "Run the validate command for details.",
			IsError: true,
		})
	}

	return NewShell(console, loaded.service, loaded.repo).Run(ctx)
}

func newListCommand(opts *Options) *cobra.Command {
	var (
		catalogName string
		outputDir   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the seeded catalog",
		Long: `Load the seed files and print the resulting catalog.

Rows rejected by validation are skipped and logged. The csv format writes
files in the seed layout, so its output can be loaded again with --parts and --products.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := opts.loadCatalog(cmd.Context(), services.AutoConfirm(false), services.DiscardNotifier{})
			if err != nil {
				return err
			}

			view := dto.NewCatalogView(loaded.repo.AllParts(), loaded.repo.AllProducts())
			return output.Generate(view, output.Config{
				Format:    opts.Format,
				Catalog:   catalogName,
				OutputDir: outputDir,
				Out:       opts.out,
			})
		},
	}

	cmd.Flags().StringVar(&catalogName, "catalog", output.CatalogAll, "catalog to print: all, parts, products")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for parts.csv and products.csv (csv format)")
	return cmd
}

func newValidateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the seed files without starting the shell",
		Long: `Load the seed files and report every rejected row with its error kind.
The command fails when any row is rejected.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := opts.loadCatalog(cmd.Context(), services.AutoConfirm(false), services.DiscardNotifier{})
			if err != nil {
				return err
			}

			rows := rowErrors(loaded.rejected)
			for _, row := range rows {
				fmt.Fprintf(opts.out, "%s line %d: %s: %s\n", row.Catalog, row.Line, errorKind(row.Err), message(row.Err))
			}
			fmt.Fprintf(opts.out, "%d parts, %d products accepted; %d rows rejected\n",
				loaded.result.PartsAdded, loaded.result.ProductsAdded, len(rows))

			if len(rows) > 0 {
				return fmt.Errorf("validate: %d %w", len(rows), ErrRejectedRows)
			}
			return nil
		},
	}
}

func errorKind(err error) string {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return verr.KindName()
	}
	return "Error"
}

func message(err error) string {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
