package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SourceKind tags where a part comes from
type SourceKind int

const (
	InHouse SourceKind = iota
	Outsourced
)

// String method for SourceKind enum
func (k SourceKind) String() string {
	switch k {
	case InHouse:
		return "InHouse"
	case Outsourced:
		return "Outsourced"
	default:
		return "Unknown"
	}
}

// Source is the origin-specific payload of a part. Only the field matching Kind is meaningful.
type Source struct {
	Kind        SourceKind
	MachineID   int
	CompanyName string
}

// InHouseSource builds the payload of a part manufactured on one of our machines
func InHouseSource(machineID int) Source {
	return Source{Kind: InHouse, MachineID: machineID}
}

// OutsourcedSource builds the payload of a part bought from another company
func OutsourcedSource(companyName string) Source {
	return Source{Kind: Outsourced, CompanyName: companyName}
}

// Part is a stocked component. Fields are not validated here; see services.Validator.
type Part struct {
	id     int
	name   string
	price  decimal.Decimal
	stock  int
	min    int
	max    int
	source Source
}

// NewPart creates a part with the shared attributes and its source payload
func NewPart(id int, name string, price decimal.Decimal, stock, min, max int, source Source) *Part {
	return &Part{
		id:     id,
		name:   name,
		price:  price,
		stock:  stock,
		min:    min,
		max:    max,
		source: source,
	}
}

// NewInHousePart creates a part produced by the given machine
func NewInHousePart(id int, name string, price decimal.Decimal, stock, min, max, machineID int) *Part {
	return NewPart(id, name, price, stock, min, max, InHouseSource(machineID))
}

// NewOutsourcedPart creates a part supplied by the given company
func NewOutsourcedPart(id int, name string, price decimal.Decimal, stock, min, max int, companyName string) *Part {
	return NewPart(id, name, price, stock, min, max, OutsourcedSource(companyName))
}

func (p *Part) ID() int                { return p.id }
func (p *Part) Name() string           { return p.name }
func (p *Part) Price() decimal.Decimal { return p.price }
func (p *Part) Stock() int             { return p.stock }
func (p *Part) Min() int               { return p.min }
func (p *Part) Max() int               { return p.max }
func (p *Part) Source() Source         { return p.source }
func (p *Part) Kind() SourceKind       { return p.source.Kind }

func (p *Part) SetID(id int)                   { p.id = id }
func (p *Part) SetName(name string)            { p.name = name }
func (p *Part) SetPrice(price decimal.Decimal) { p.price = price }
func (p *Part) SetMin(min int)                 { p.min = min }
func (p *Part) SetMax(max int)                 { p.max = max }

// SetStock assigns the current inventory level.
func (p *Part) SetStock(stock int) { p.stock = stock }

// MachineID returns the producing machine; ok is false for outsourced parts
func (p *Part) MachineID() (id int, ok bool) {
	if p.source.Kind != InHouse {
		return 0, false
	}
	return p.source.MachineID, true
}

// CompanyName returns the supplier; ok is false for in-house parts
func (p *Part) CompanyName() (name string, ok bool) {
	if p.source.Kind != Outsourced {
		return "", false
	}
	return p.source.CompanyName, true
}

// SetMachineID changes the machine of an in-house part
func (p *Part) SetMachineID(machineID int) error {
	if p.source.Kind != InHouse {
		return fmt.Errorf("%w: part %d is %s, machine id applies to InHouse parts", ErrWrongSource, p.id, p.source.Kind)
	}
	p.source.MachineID = machineID
	return nil
}

// SetCompanyName changes the supplier of an outsourced part
func (p *Part) SetCompanyName(companyName string) error {
	if p.source.Kind != Outsourced {
		return fmt.Errorf("%w: part %d is %s, company name applies to Outsourced parts", ErrWrongSource, p.id, p.source.Kind)
	}
	p.source.CompanyName = companyName
	return nil
}

// SourceDetail renders the source payload the way list views show it
func (p *Part) SourceDetail() string {
	switch p.source.Kind {
	case InHouse:
		return fmt.Sprintf("machine %d", p.source.MachineID)
	case Outsourced:
		return p.source.CompanyName
	default:
		return ""
	}
}
