package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
	"github.com/vsinha/inventory/pkg/infrastructure/repositories/memory"
)

// printer answers every confirmation with yes and prints notices
type printer struct{}

func (printer) Confirm(action string) bool {
	fmt.Printf("  confirm %s: yes\n", action)
	return true
}

func (printer) Notify(msg services.Message) {
	fmt.Printf("  ! %s\n", msg.Title)
	if msg.Body != "" {
		fmt.Printf("    %s\n", msg.Body)
	}
}

func main() {
	ctx := context.Background()

	repo := memory.NewInventoryRepository()
	service := services.NewInventoryService(repo, printer{}, printer{})

	_ = repo.Subscribe(events.HandlerFunc(func(event events.Event) error {
		fmt.Println("  event:", events.Describe(event))
		return nil
	}))

	fmt.Println("Adding parts...")
	wheel := mustPart(service.SavePart(ctx, domainservices.PartInput{
		Action: entities.ActionAdd, Name: "Wheel", Price: "7.00", Stock: "8", Min: "2", Max: "40",
		Source: entities.Outsourced, SourceValue: "Round Things Ltd",
	}))
	axle := mustPart(service.SavePart(ctx, domainservices.PartInput{
		Action: entities.ActionAdd, Name: "Axle", Price: "3.10", Stock: "5", Min: "1", Max: "20",
		Source: entities.InHouse, SourceValue: "4",
	}))

	fmt.Println("\nA part that breaks a rule is rejected and nothing is stored:")
	_, err := service.SavePart(ctx, domainservices.PartInput{
		Action: entities.ActionAdd, Name: "Spoke", Price: "0.20", Stock: "50", Min: "0", Max: "10",
		Source: entities.InHouse, SourceValue: "4",
	})
	fmt.Println("  range error:", errors.Is(err, entities.ErrRange))

	fmt.Println("\nBuilding a product from its parts...")
	editor, err := service.NewProductEditor(ctx, entities.ActionAdd, -1)
	if err != nil {
		exit(err)
	}
	editor.Add(wheel)
	editor.Add(wheel)
	editor.Add(axle)

	cart, err := editor.Save(ctx, domainservices.ProductInput{
		Name: "Cart", Price: "29.99", Stock: "3", Min: "1", Max: "10",
	})
	if err != nil {
		exit(err)
	}
	fmt.Printf("  %s costs %s in parts, sells for %s\n",
		cart.Name(), cart.PartsCost().StringFixed(2), cart.Price().StringFixed(2))

	fmt.Println("\nA product with parts cannot be deleted:")
	if _, err := service.DeleteProduct(ctx, cart); err != nil {
		fmt.Println("  business rule:", errors.Is(err, entities.ErrBusinessRule))
	}

	fmt.Println("\nDeleting a part keeps the product's reference:")
	if _, err := service.DeletePart(ctx, axle); err != nil {
		exit(err)
	}
	fmt.Printf("  %s still lists %d parts; next part id is %d\n",
		cart.Name(), len(cart.AssociatedParts()), service.NextPartID())
}

func mustPart(part *entities.Part, err error) *entities.Part {
	if err != nil {
		exit(err)
	}
	return part
}

func exit(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
