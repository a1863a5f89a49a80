package repositories

import "github.com/vsinha/inventory/pkg/domain/entities"

// PartRepository provides access to the parts catalog
type PartRepository interface {
	AddPart(part *entities.Part)
	LookupPart(id int) (*entities.Part, error)
	LookupPartsByName(text string) []*entities.Part
	UpdatePart(index int, part *entities.Part) error
	UpdatePartByID(id int, part *entities.Part) error
	DeletePart(part *entities.Part) bool
	PartIndex(part *entities.Part) int
	AllParts() []*entities.Part
}

// ProductRepository provides access to the products catalog
type ProductRepository interface {
	AddProduct(product *entities.Product)
	LookupProduct(id int) (*entities.Product, error)
	LookupProductsByName(text string) []*entities.Product
	UpdateProduct(index int, product *entities.Product) error
	UpdateProductByID(id int, product *entities.Product) error
	// DeleteProduct does not check associations; callers enforce that rule.
	DeleteProduct(product *entities.Product) bool
	ProductIndex(product *entities.Product) int
	AllProducts() []*entities.Product
}

// InventoryRepository owns both catalogs
type InventoryRepository interface {
	PartRepository
	ProductRepository
}
