package entities

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Product is a stocked assembly built from parts. The associated parts are
// references into the parts catalog, not copies.
type Product struct {
	id              int
	name            string
	price           decimal.Decimal
	stock           int
	min             int
	max             int
	associatedParts []*Part
}

// NewProduct creates a product with an empty association list
func NewProduct(id int, name string, price decimal.Decimal, stock, min, max int) *Product {
	return &Product{
		id:              id,
		name:            name,
		price:           price,
		stock:           stock,
		min:             min,
		max:             max,
		associatedParts: make([]*Part, 0),
	}
}

func (p *Product) ID() int                { return p.id }
func (p *Product) Name() string           { return p.name }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) Stock() int             { return p.stock }
func (p *Product) Min() int               { return p.min }
func (p *Product) Max() int               { return p.max }

func (p *Product) SetID(id int)                   { p.id = id }
func (p *Product) SetName(name string)            { p.name = name }
func (p *Product) SetPrice(price decimal.Decimal) { p.price = price }
func (p *Product) SetStock(stock int)             { p.stock = stock }
func (p *Product) SetMin(min int)                 { p.min = min }
func (p *Product) SetMax(max int)                 { p.max = max }

// AddAssociatedPart appends a part reference. The same part may be added more than once.
func (p *Product) AddAssociatedPart(part *Part) {
	p.associatedParts = append(p.associatedParts, part)
}

// RemoveAssociatedPart removes the first reference to part and reports whether one was removed
func (p *Product) RemoveAssociatedPart(part *Part) bool {
	for i, candidate := range p.associatedParts {
		if candidate == part {
			p.associatedParts = append(p.associatedParts[:i], p.associatedParts[i+1:]...)
			return true
		}
	}
	return false
}

// AssociatedParts returns the backing association slice, not a copy
func (p *Product) AssociatedParts() []*Part {
	return p.associatedParts
}

// HasAssociatedParts reports whether any part is still associated
func (p *Product) HasAssociatedParts() bool {
	return len(p.associatedParts) > 0
}

// PartsCost sums the prices of the associated parts
func (p *Product) PartsCost() decimal.Decimal {
	return PartsCost(p.associatedParts)
}

// PartsCost sums the prices of the given parts, counting duplicates once per reference
func PartsCost(parts []*Part) decimal.Decimal {
	return lo.Reduce(parts, func(total decimal.Decimal, part *Part, _ int) decimal.Decimal {
		return total.Add(part.Price())
	}, decimal.Zero)
}
