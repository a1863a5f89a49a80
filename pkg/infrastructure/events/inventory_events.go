package events

import (
	"strconv"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

const (
	PartAddedEvent   = "part.added"
	PartUpdatedEvent = "part.updated"
	PartDeletedEvent = "part.deleted"

	ProductAddedEvent   = "product.added"
	ProductUpdatedEvent = "product.updated"
	ProductDeletedEvent = "product.deleted"
)

// PartEventTypes lists every parts catalog event
var PartEventTypes = []string{PartAddedEvent, PartUpdatedEvent, PartDeletedEvent}

// ProductEventTypes lists every products catalog event
var ProductEventTypes = []string{ProductAddedEvent, ProductUpdatedEvent, ProductDeletedEvent}

type PartAdded struct {
	Part  *entities.Part `json:"part"`
	Index int            `json:"index"`
}

type PartUpdated struct {
	OldPart *entities.Part `json:"old_part"`
	NewPart *entities.Part `json:"new_part"`
	Index   int            `json:"index"`
}

type PartDeleted struct {
	Part  *entities.Part `json:"part"`
	Index int            `json:"index"`
}

type ProductAdded struct {
	Product *entities.Product `json:"product"`
	Index   int               `json:"index"`
}

type ProductUpdated struct {
	OldProduct *entities.Product `json:"old_product"`
	NewProduct *entities.Product `json:"new_product"`
	Index      int               `json:"index"`
}

type ProductDeleted struct {
	Product *entities.Product `json:"product"`
	Index   int               `json:"index"`
}

func NewPartAddedEvent(part *entities.Part, index int) Event {
	return newChange(PartAddedEvent, PartsCatalog, part.ID(), PartAdded{Part: part, Index: index})
}

func NewPartUpdatedEvent(oldPart, newPart *entities.Part, index int) Event {
	return newChange(PartUpdatedEvent, PartsCatalog, newPart.ID(),
		PartUpdated{OldPart: oldPart, NewPart: newPart, Index: index})
}

func NewPartDeletedEvent(part *entities.Part, index int) Event {
	return newChange(PartDeletedEvent, PartsCatalog, part.ID(), PartDeleted{Part: part, Index: index})
}

func NewProductAddedEvent(product *entities.Product, index int) Event {
	return newChange(ProductAddedEvent, ProductsCatalog, product.ID(), ProductAdded{Product: product, Index: index})
}

func NewProductUpdatedEvent(oldProduct, newProduct *entities.Product, index int) Event {
	return newChange(ProductUpdatedEvent, ProductsCatalog, newProduct.ID(),
		ProductUpdated{OldProduct: oldProduct, NewProduct: newProduct, Index: index})
}

func NewProductDeletedEvent(product *entities.Product, index int) Event {
	return newChange(ProductDeletedEvent, ProductsCatalog, product.ID(), ProductDeleted{Product: product, Index: index})
}

// Describe renders an event as a one-line history entry
func Describe(event Event) string {
	switch data := event.Data().(type) {
	case PartAdded:
		return "added part " + strconv.Itoa(data.Part.ID()) + " " + strconv.Quote(data.Part.Name())
	case PartUpdated:
		return "updated part " + strconv.Itoa(data.NewPart.ID()) + " " + strconv.Quote(data.NewPart.Name())
	case PartDeleted:
		return "deleted part " + strconv.Itoa(data.Part.ID()) + " " + strconv.Quote(data.Part.Name())
	case ProductAdded:
		return "added product " + strconv.Itoa(data.Product.ID()) + " " + strconv.Quote(data.Product.Name())
	case ProductUpdated:
		return "updated product " + strconv.Itoa(data.NewProduct.ID()) + " " + strconv.Quote(data.NewProduct.Name())
	case ProductDeleted:
		return "deleted product " + strconv.Itoa(data.Product.ID()) + " " + strconv.Quote(data.Product.Name())
	default:
		return event.Type()
	}
}
