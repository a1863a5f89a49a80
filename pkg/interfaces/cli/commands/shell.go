package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/inventory/pkg/interfaces/cli/output"
)

const shellHelp = `Commands:
  parts                          list all parts
  products                       list all products
  part add                       add a part
  part modify <id>               modify a part
  part delete <id>               delete a part
  part find <id|name>            look up a part by id, or by name fragment
  part search [key]              filter parts by name or id
  product add                    add a product
  product modify <id>            modify a product
  product delete <id>            delete a product (it must have no parts)
  product find <id|name>         look up a product by id, or by exact name
  product search [key]           filter products by name or id
  product show <id>              show a product and its parts
  history [part|product <id>]    list catalog changes made in this session
  help                           show this help
  exit                           leave the shell

While filling a form, press enter to keep the value in brackets or type !cancel to abandon the edit.`

// Shell is the interactive catalog console
type Shell struct {
	console *Console
	service *services.InventoryService
	repo    *memory.InventoryRepository
}

// NewShell creates a shell. service must report to console.
func NewShell(console *Console, service *services.InventoryService, repo *memory.InventoryRepository) *Shell {
	return &Shell{
		console: console,
		service: service,
		repo:    repo,
	}
}

// Run reads commands until exit or end of input
func (s *Shell) Run(ctx context.Context) error {
	const op = "Shell.Run"

	changes := events.HandlerFunc(func(event events.Event) error {
		s.console.Hint("  " + events.Describe(event))
		return nil
	})
	if err := s.repo.Subscribe(changes); err != nil {
		return fmt.Errorf("%s: subscribe: %w", op, err)
	}
	defer func() { _ = s.repo.Unsubscribe(changes) }()

	s.console.Title("Inventory Management System")
	s.console.Hint(fmt.Sprintf("%d parts, %d products loaded. Type help for commands.",
		len(s.repo.AllParts()), len(s.repo.AllProducts())))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := s.console.ReadLine("inventory> ")
		if !ok {
			return nil
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}

		s.dispatch(ctx, args)
	}
}

func (s *Shell) dispatch(ctx context.Context, args []string) {
	logger.Debug(ctx, "shell command", logger.String("command", strings.Join(args, " ")))

	switch args[0] {
	case "help", "?":
		s.console.Printf("%s\n", shellHelp)
	case "parts":
		s.listParts(s.repo.AllParts())
	case "products":
		s.listProducts(s.repo.AllProducts())
	case "history":
		s.history(args[1:])
	case "part":
		s.partCommand(ctx, args[1:])
	case "product":
		s.productCommand(ctx, args[1:])
	default:
		s.console.Notify(services.Message{Title: fmt.Sprintf("Unknown command %q, type help for a list", args[0]), IsError: true})
	}
}

func (s *Shell) listParts(parts []*entities.Part) {
	if len(parts) == 0 {
		s.console.Hint("No parts")
		return
	}
	output.WritePartsTable(s.console.Writer(), dto.NewCatalogView(parts, nil).Parts)
}

func (s *Shell) listProducts(products []*entities.Product) {
	if len(products) == 0 {
		s.console.Hint("No products")
		return
	}
	output.WriteProductsTable(s.console.Writer(), dto.NewCatalogView(nil, products).Products)
}

func (s *Shell) history(args []string) {
	var changes []events.Event
	switch {
	case len(args) == 0:
		changes = s.repo.History(0)
	case args[0] == "part":
		id, ok := s.selectedID(args[1:], "part")
		if !ok {
			return
		}
		changes = s.repo.PartHistory(id)
	case args[0] == "product":
		id, ok := s.selectedID(args[1:], "product")
		if !ok {
			return
		}
		changes = s.repo.ProductHistory(id)
	default:
		s.console.Notify(services.Message{Title: "Usage: history [part|product <id>]", IsError: true})
		return
	}

	if len(changes) == 0 {
		s.console.Hint("No changes yet")
		return
	}
	for _, event := range changes {
		s.console.Printf("%4d  %s  %s\n", event.Sequence(), event.Timestamp().Format("15:04:05"), events.Describe(event))
	}
}

// selectedID parses the id argument of a part or product command
func (s *Shell) selectedID(args []string, kind string) (int, bool) {
	if len(args) == 0 {
		s.console.Notify(services.Message{Title: fmt.Sprintf("You must select the %s", kind), IsError: true})
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		s.console.Notify(services.Message{Title: fmt.Sprintf("%s ID must be an integer", strings.ToUpper(kind[:1])+kind[1:]), IsError: true})
		return 0, false
	}
	return id, true
}

func (s *Shell) notFound(err error) {
	s.console.Notify(services.Message{Title: err.Error(), IsError: true})
}
