package dto

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// PartView is the display form of a part
type PartView struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Min         int             `json:"min"`
	Max         int             `json:"max"`
	Source      string          `json:"source"`
	MachineID   *int            `json:"machine_id,omitempty"`
	CompanyName *string         `json:"company_name,omitempty"`
	Detail      string          `json:"-"`
}

// ProductView is the display form of a product; parts are listed by id
type ProductView struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Min       int             `json:"min"`
	Max       int             `json:"max"`
	PartIDs   []int           `json:"part_ids"`
	PartsCost decimal.Decimal `json:"parts_cost"`
}

// CatalogView contains both catalogs as they are listed
type CatalogView struct {
	Parts    []PartView    `json:"parts"`
	Products []ProductView `json:"products"`
}

// NewPartView creates the display form of part
func NewPartView(part *entities.Part) PartView {
	view := PartView{
		ID:     part.ID(),
		Name:   part.Name(),
		Price:  part.Price(),
		Stock:  part.Stock(),
		Min:    part.Min(),
		Max:    part.Max(),
		Source: part.Kind().String(),
		Detail: part.SourceDetail(),
	}
	if machineID, ok := part.MachineID(); ok {
		view.MachineID = lo.ToPtr(machineID)
	}
	if companyName, ok := part.CompanyName(); ok {
		view.CompanyName = lo.ToPtr(companyName)
	}
	return view
}

// NewProductView creates the display form of product
func NewProductView(product *entities.Product) ProductView {
	return ProductView{
		ID:        product.ID(),
		Name:      product.Name(),
		Price:     product.Price(),
		Stock:     product.Stock(),
		Min:       product.Min(),
		Max:       product.Max(),
		PartIDs:   lo.Map(product.AssociatedParts(), func(p *entities.Part, _ int) int { return p.ID() }),
		PartsCost: product.PartsCost(),
	}
}

// NewCatalogView creates the display form of both catalogs, in catalog order
func NewCatalogView(parts []*entities.Part, products []*entities.Product) CatalogView {
	return CatalogView{
		Parts:    lo.Map(parts, func(p *entities.Part, _ int) PartView { return NewPartView(p) }),
		Products: lo.Map(products, func(p *entities.Product, _ int) ProductView { return NewProductView(p) }),
	}
}
