package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

// Validator turns raw edit-form input into parts and products.
// Checks run in a fixed order and stop at the first failure.
type Validator struct {
	partIDs    *IDGenerator
	productIDs *IDGenerator
}

// NewValidator creates a validator that draws ADD identifiers from the given generators
func NewValidator(partIDs, productIDs *IDGenerator) *Validator {
	return &Validator{
		partIDs:    partIDs,
		productIDs: productIDs,
	}
}

// sharedFields are the attributes parts and products have in common, already parsed
type sharedFields struct {
	id    int
	name  string
	stock int
	price decimal.Decimal
	max   int
	min   int
}

// ValidatePart builds a part from input or returns the first *entities.ValidationError
func (v *Validator) ValidatePart(input PartInput) (*entities.Part, error) {
	fields, err := v.validateShared(input.Action, v.partIDs, "Part", rawFields{
		id:    input.ID,
		name:  input.Name,
		stock: input.Stock,
		price: input.Price,
		max:   input.Max,
		min:   input.Min,
	}, decimal.Zero)
	if err != nil {
		return nil, err
	}

	source, err := validateSource(input.Source, input.SourceValue)
	if err != nil {
		return nil, err
	}

	if input.Action == entities.ActionAdd {
		fields.id = v.partIDs.Next()
	}

	return entities.NewPart(fields.id, fields.name, fields.price, fields.stock, fields.min, fields.max, source), nil
}

// ValidateProduct builds a product carrying input.AssociatedParts or returns the first *entities.ValidationError
func (v *Validator) ValidateProduct(input ProductInput) (*entities.Product, error) {
	fields, err := v.validateShared(input.Action, v.productIDs, "Product", rawFields{
		id:    input.ID,
		name:  input.Name,
		stock: input.Stock,
		price: input.Price,
		max:   input.Max,
		min:   input.Min,
	}, entities.PartsCost(input.AssociatedParts))
	if err != nil {
		return nil, err
	}

	if input.Action == entities.ActionAdd && len(input.AssociatedParts) == 0 {
		return nil, entities.NewValidationError(entities.ErrBusinessRule, entities.FieldParts,
			"Product must have at least one part")
	}

	if input.Action == entities.ActionAdd {
		fields.id = v.productIDs.Next()
	}

	product := entities.NewProduct(fields.id, fields.name, fields.price, fields.stock, fields.min, fields.max)
	for _, part := range input.AssociatedParts {
		product.AddAssociatedPart(part)
	}
	return product, nil
}

type rawFields struct {
	id    string
	name  string
	stock string
	price string
	max   string
	min   string
}

// validateShared checks id, name, stock, price, max and min in that order.
// partsCost is the floor for price; zero for parts.
func (v *Validator) validateShared(action entities.Action, ids *IDGenerator, label string, raw rawFields, partsCost decimal.Decimal) (sharedFields, error) {
	var fields sharedFields

	switch action {
	case entities.ActionAdd:
		// the id is only consumed once every check has passed
		fields.id = ids.Peek()
	case entities.ActionModify:
		id, err := parseInt(raw.id)
		if err != nil {
			return fields, entities.NewValidationError(entities.ErrParse, entities.FieldID,
				fmt.Sprintf("%s ID must be an integer", label))
		}
		fields.id = id
	default:
		return fields, entities.NewValidationError(entities.ErrParse, entities.FieldAction,
			"Unknown action! Expected add or modify operation")
	}

	if fields.id < 1 {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldID,
			fmt.Sprintf("Invalid %s ID", strings.ToLower(label)))
	}

	fields.name = strings.TrimSpace(raw.name)
	if fields.name == "" {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldName, "Name is empty")
	}

	stock, err := parseInt(raw.stock)
	if err != nil {
		return fields, entities.NewValidationError(entities.ErrParse, entities.FieldStock,
			"Inventory level must be an integer")
	}
	if stock < 0 {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldStock,
			"Inventory level must be greater than or equal to 0")
	}
	fields.stock = stock

	price, err := decimal.NewFromString(strings.TrimSpace(raw.price))
	if err != nil {
		return fields, entities.NewValidationError(entities.ErrParse, entities.FieldPrice,
			"Price must be a decimal number")
	}
	if !price.IsPositive() {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldPrice,
			"Price cannot be zero or negative")
	}
	if price.LessThan(partsCost) {
		return fields, entities.NewValidationError(entities.ErrBusinessRule, entities.FieldPrice,
			fmt.Sprintf("Price cannot be less than cost of parts (%s)", partsCost.StringFixed(2)))
	}
	fields.price = price

	maxStock, err := parseInt(raw.max)
	if err != nil {
		return fields, entities.NewValidationError(entities.ErrParse, entities.FieldMax,
			"Maximum inventory must be an integer")
	}
	if fields.stock > maxStock {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldMax,
			"Inventory level must be less than or equal to max")
	}
	fields.max = maxStock

	minStock, err := parseInt(raw.min)
	if err != nil {
		return fields, entities.NewValidationError(entities.ErrParse, entities.FieldMin,
			"Minimum inventory must be an integer")
	}
	if minStock < 0 {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldMin,
			"Minimum inventory level cannot be negative")
	}
	if maxStock < minStock {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldMin,
			"Max must be greater than min")
	}
	if minStock > fields.stock {
		return fields, entities.NewValidationError(entities.ErrRange, entities.FieldMin,
			"Inventory level must be greater than or equal to min")
	}
	fields.min = minStock

	return fields, nil
}

func validateSource(kind entities.SourceKind, value string) (entities.Source, error) {
	switch kind {
	case entities.InHouse:
		machineID, err := parseInt(value)
		if err != nil {
			return entities.Source{}, entities.NewValidationError(entities.ErrParse, entities.FieldMachine,
				"Machine ID must be an integer")
		}
		if machineID < 1 {
			return entities.Source{}, entities.NewValidationError(entities.ErrRange, entities.FieldMachine,
				"Machine ID must be a positive integer")
		}
		return entities.InHouseSource(machineID), nil

	case entities.Outsourced:
		companyName := strings.TrimSpace(value)
		if companyName == "" {
			return entities.Source{}, entities.NewValidationError(entities.ErrRange, entities.FieldCompany,
				"Company name is empty")
		}
		if _, err := strconv.Atoi(companyName); err == nil {
			return entities.Source{}, entities.NewValidationError(entities.ErrRange, entities.FieldCompany,
				"The company name is not valid, please enter a name with alphanumeric characters")
		}
		return entities.OutsourcedSource(companyName), nil

	default:
		return entities.Source{}, entities.NewValidationError(entities.ErrParse, entities.FieldSource,
			fmt.Sprintf("Unknown part source %s", kind))
	}
}

func parseInt(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}
