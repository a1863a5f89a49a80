package memory

import (
	"fmt"
	"strings"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
	"github.com/vsinha/inventory/pkg/infrastructure/events"
)

// InventoryRepository provides in-memory storage for the parts and products catalogs.
// Both catalogs keep insertion order; updates replace in place.
type InventoryRepository struct {
	parts    []*entities.Part
	products []*entities.Product
	changes  *events.ChangeLog
}

// NewInventoryRepository creates an empty inventory repository
func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		parts:    make([]*entities.Part, 0),
		products: make([]*entities.Product, 0),
		changes:  events.NewChangeLog(),
	}
}

// Verify interface compliance
var _ repositories.InventoryRepository = (*InventoryRepository)(nil)

// Subscribe registers a handler for catalog changes; with no event types it receives all of them
func (r *InventoryRepository) Subscribe(handler events.EventHandler, eventTypes ...string) error {
	return r.changes.Subscribe(handler, eventTypes...)
}

// Unsubscribe removes a handler registered with Subscribe
func (r *InventoryRepository) Unsubscribe(handler events.EventHandler) error {
	return r.changes.Unsubscribe(handler)
}

// History returns every change published since position
func (r *InventoryRepository) History(fromPosition int) []events.Event {
	return r.changes.Since(fromPosition)
}

// PartHistory returns the changes made to the part with the given id
func (r *InventoryRepository) PartHistory(id int) []events.Event {
	return r.changes.ForRecord(events.PartsCatalog, id)
}

// ProductHistory returns the changes made to the product with the given id
func (r *InventoryRepository) ProductHistory(id int) []events.Event {
	return r.changes.ForRecord(events.ProductsCatalog, id)
}

func (r *InventoryRepository) publish(event events.Event) {
	// appending only fails for a nil event
	_ = r.changes.Append(event)
}

// LoadParts appends parts in order
func (r *InventoryRepository) LoadParts(parts []*entities.Part) error {
	for _, part := range parts {
		if part == nil {
			return fmt.Errorf("cannot load nil part")
		}
		r.AddPart(part)
	}
	return nil
}

// AddPart appends a part. ID uniqueness is the ID generator's job and is not re-checked.
func (r *InventoryRepository) AddPart(part *entities.Part) {
	r.parts = append(r.parts, part)
	r.publish(events.NewPartAddedEvent(part, len(r.parts)-1))
}

// LookupPart returns the first part with the given id
func (r *InventoryRepository) LookupPart(id int) (*entities.Part, error) {
	for _, part := range r.parts {
		if part.ID() == id {
			return part, nil
		}
	}
	return nil, fmt.Errorf("part %d: %w", id, entities.ErrNotFound)
}

// LookupPartsByName returns every part whose name contains text, ignoring case
func (r *InventoryRepository) LookupPartsByName(text string) []*entities.Part {
	needle := strings.ToLower(text)
	found := make([]*entities.Part, 0)
	for _, part := range r.parts {
		if strings.Contains(strings.ToLower(part.Name()), needle) {
			found = append(found, part)
		}
	}
	return found
}

// UpdatePart overwrites the part at index
func (r *InventoryRepository) UpdatePart(index int, part *entities.Part) error {
	if index < 0 || index >= len(r.parts) {
		return fmt.Errorf("part index %d out of range [0,%d): %w", index, len(r.parts), entities.ErrNotFound)
	}
	old := r.parts[index]
	r.parts[index] = part
	r.publish(events.NewPartUpdatedEvent(old, part, index))
	return nil
}

// UpdatePartByID overwrites the first part carrying id
func (r *InventoryRepository) UpdatePartByID(id int, part *entities.Part) error {
	for i, candidate := range r.parts {
		if candidate.ID() == id {
			return r.UpdatePart(i, part)
		}
	}
	return fmt.Errorf("part %d: %w", id, entities.ErrNotFound)
}

// DeletePart removes part by identity. Products that reference it keep their reference.
func (r *InventoryRepository) DeletePart(part *entities.Part) bool {
	index := r.PartIndex(part)
	if index < 0 {
		return false
	}
	r.parts = append(r.parts[:index], r.parts[index+1:]...)
	r.publish(events.NewPartDeletedEvent(part, index))
	return true
}

// PartIndex returns the position of part, or -1
func (r *InventoryRepository) PartIndex(part *entities.Part) int {
	for i, candidate := range r.parts {
		if candidate == part {
			return i
		}
	}
	return -1
}

// AllParts returns the backing parts slice. Subscribe to observe structural changes.
func (r *InventoryRepository) AllParts() []*entities.Part {
	return r.parts
}

// LoadProducts appends products in order
func (r *InventoryRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		if product == nil {
			return fmt.Errorf("cannot load nil product")
		}
		r.AddProduct(product)
	}
	return nil
}

// AddProduct appends a product
func (r *InventoryRepository) AddProduct(product *entities.Product) {
	r.products = append(r.products, product)
	r.publish(events.NewProductAddedEvent(product, len(r.products)-1))
}

// LookupProduct returns the first product with the given id
func (r *InventoryRepository) LookupProduct(id int) (*entities.Product, error) {
	for _, product := range r.products {
		if product.ID() == id {
			return product, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, entities.ErrNotFound)
}

// LookupProductsByName returns products whose name equals text ignoring case.
// Unlike parts this is an exact match, not a substring search.
func (r *InventoryRepository) LookupProductsByName(text string) []*entities.Product {
	found := make([]*entities.Product, 0)
	for _, product := range r.products {
		if strings.EqualFold(text, product.Name()) {
			found = append(found, product)
		}
	}
	return found
}

// UpdateProduct overwrites the product at index
func (r *InventoryRepository) UpdateProduct(index int, product *entities.Product) error {
	if index < 0 || index >= len(r.products) {
		return fmt.Errorf("product index %d out of range [0,%d): %w", index, len(r.products), entities.ErrNotFound)
	}
	old := r.products[index]
	r.products[index] = product
	r.publish(events.NewProductUpdatedEvent(old, product, index))
	return nil
}

// UpdateProductByID overwrites the first product carrying id
func (r *InventoryRepository) UpdateProductByID(id int, product *entities.Product) error {
	for i, candidate := range r.products {
		if candidate.ID() == id {
			return r.UpdateProduct(i, product)
		}
	}
	return fmt.Errorf("product %d: %w", id, entities.ErrNotFound)
}

// DeleteProduct removes product by identity without checking its associations
func (r *InventoryRepository) DeleteProduct(product *entities.Product) bool {
	index := r.ProductIndex(product)
	if index < 0 {
		return false
	}
	r.products = append(r.products[:index], r.products[index+1:]...)
	r.publish(events.NewProductDeletedEvent(product, index))
	return true
}

// ProductIndex returns the position of product, or -1
func (r *InventoryRepository) ProductIndex(product *entities.Product) int {
	for i, candidate := range r.products {
		if candidate == product {
			return i
		}
	}
	return -1
}

// AllProducts returns the backing products slice. Subscribe to observe structural changes.
func (r *InventoryRepository) AllProducts() []*entities.Product {
	return r.products
}
