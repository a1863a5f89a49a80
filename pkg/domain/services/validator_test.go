package services

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vsinha/inventory/pkg/domain/entities"
)

func newTestValidator(partIDs, productIDs []int) (*Validator, *catalog, *catalog) {
	parts := &catalog{ids: partIDs}
	products := &catalog{ids: productIDs}
	return NewValidator(NewIDGenerator(parts.all), NewIDGenerator(products.all)), parts, products
}

func boltInput() PartInput {
	return PartInput{
		Action:      entities.ActionAdd,
		Name:        "Bolt",
		Price:       "0.50",
		Stock:       "10",
		Min:         "0",
		Max:         "100",
		Source:      entities.InHouse,
		SourceValue: "3",
	}
}

func requireValidationError(t *testing.T, err error, kind error, field string) *entities.ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)

	var verr *entities.ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.Equal(t, field, verr.Field)
	assert.NotEmpty(t, verr.Message)
	return verr
}

func TestValidatePart_ScenarioA_AddSucceeds(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)

	part, err := v.ValidatePart(boltInput())
	require.NoError(t, err)

	assert.Equal(t, 1, part.ID())
	assert.Equal(t, "Bolt", part.Name())
	assert.True(t, decimal.RequireFromString("0.50").Equal(part.Price()))
	assert.Equal(t, 10, part.Stock())
	assert.Equal(t, 0, part.Min())
	assert.Equal(t, 100, part.Max())
	machineID, ok := part.MachineID()
	assert.True(t, ok)
	assert.Equal(t, 3, machineID)
}

func TestValidatePart_ScenarioB_PriceParseError(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := boltInput()
	input.Price = "abc"

	part, err := v.ValidatePart(input)
	assert.Nil(t, part)
	requireValidationError(t, err, entities.ErrParse, entities.FieldPrice)
}

func TestValidatePart_ScenarioC_MinAboveStock(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := boltInput()
	input.Stock = "5"
	input.Min = "10"
	input.Max = "20"

	_, err := v.ValidatePart(input)
	verr := requireValidationError(t, err, entities.ErrRange, entities.FieldMin)
	assert.Equal(t, "RangeError", verr.KindName())
}

func TestValidatePart_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		setup func(in *PartInput)
		kind  error
		field string
	}{
		{
			name:  "blank_name",
			setup: func(in *PartInput) { in.Name = "   " },
			kind:  entities.ErrRange,
			field: entities.FieldName,
		},
		{
			name:  "stock_not_integer",
			setup: func(in *PartInput) { in.Stock = "ten" },
			kind:  entities.ErrParse,
			field: entities.FieldStock,
		},
		{
			name:  "negative_stock",
			setup: func(in *PartInput) { in.Stock = "-1" },
			kind:  entities.ErrRange,
			field: entities.FieldStock,
		},
		{
			name:  "zero_price",
			setup: func(in *PartInput) { in.Price = "0" },
			kind:  entities.ErrRange,
			field: entities.FieldPrice,
		},
		{
			name:  "negative_price",
			setup: func(in *PartInput) { in.Price = "-2.5" },
			kind:  entities.ErrRange,
			field: entities.FieldPrice,
		},
		{
			name:  "max_not_integer",
			setup: func(in *PartInput) { in.Max = "lots" },
			kind:  entities.ErrParse,
			field: entities.FieldMax,
		},
		{
			name:  "stock_above_max",
			setup: func(in *PartInput) { in.Max = "9" },
			kind:  entities.ErrRange,
			field: entities.FieldMax,
		},
		{
			name:  "min_not_integer",
			setup: func(in *PartInput) { in.Min = "1.5" },
			kind:  entities.ErrParse,
			field: entities.FieldMin,
		},
		{
			name:  "negative_min",
			setup: func(in *PartInput) { in.Min = "-1" },
			kind:  entities.ErrRange,
			field: entities.FieldMin,
		},
		{
			name: "min_above_max",
			setup: func(in *PartInput) {
				in.Stock = "0"
				in.Max = "0"
				in.Min = "1"
			},
			kind:  entities.ErrRange,
			field: entities.FieldMin,
		},
		{
			name:  "machine_not_integer",
			setup: func(in *PartInput) { in.SourceValue = "M-3" },
			kind:  entities.ErrParse,
			field: entities.FieldMachine,
		},
		{
			name:  "machine_not_positive",
			setup: func(in *PartInput) { in.SourceValue = "0" },
			kind:  entities.ErrRange,
			field: entities.FieldMachine,
		},
		{
			name: "empty_company",
			setup: func(in *PartInput) {
				in.Source = entities.Outsourced
				in.SourceValue = " "
			},
			kind:  entities.ErrRange,
			field: entities.FieldCompany,
		},
		{
			name: "numeric_company",
			setup: func(in *PartInput) {
				in.Source = entities.Outsourced
				in.SourceValue = "12345"
			},
			kind:  entities.ErrRange,
			field: entities.FieldCompany,
		},
		{
			name: "modify_id_not_integer",
			setup: func(in *PartInput) {
				in.Action = entities.ActionModify
				in.ID = "x"
			},
			kind:  entities.ErrParse,
			field: entities.FieldID,
		},
		{
			name: "modify_id_not_positive",
			setup: func(in *PartInput) {
				in.Action = entities.ActionModify
				in.ID = "0"
			},
			kind:  entities.ErrRange,
			field: entities.FieldID,
		},
		{
			name:  "unknown_action",
			setup: func(in *PartInput) { in.Action = entities.Action(9) },
			kind:  entities.ErrParse,
			field: entities.FieldAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _, _ := newTestValidator(nil, nil)
			input := boltInput()
			tt.setup(&input)

			part, err := v.ValidatePart(input)
			assert.Nil(t, part)
			requireValidationError(t, err, tt.kind, tt.field)
		})
	}
}

func TestValidatePart_ReportsFirstFailureOnly(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := boltInput()
	input.Name = ""
	input.Price = "abc"
	input.Min = "x"

	_, err := v.ValidatePart(input)
	requireValidationError(t, err, entities.ErrRange, entities.FieldName)
}

func TestValidatePart_TrimsNumericInput(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := boltInput()
	input.Stock = " 10 "
	input.Price = " 0.50"
	input.SourceValue = "3 "

	part, err := v.ValidatePart(input)
	require.NoError(t, err)
	assert.Equal(t, 10, part.Stock())
}

func TestValidatePart_OutsourcedAlphanumericCompany(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := boltInput()
	input.Source = entities.Outsourced
	input.SourceValue = "3M"

	part, err := v.ValidatePart(input)
	require.NoError(t, err)

	company, ok := part.CompanyName()
	assert.True(t, ok)
	assert.Equal(t, "3M", company)
}

func TestValidatePart_ModifyKeepsID(t *testing.T) {
	v, _, _ := newTestValidator([]int{1, 2, 7}, nil)
	input := boltInput()
	input.Action = entities.ActionModify
	input.ID = "7"
	input.Index = 2

	part, err := v.ValidatePart(input)
	require.NoError(t, err)
	assert.Equal(t, 7, part.ID())
}

func TestValidatePart_FailedAddDoesNotConsumeID(t *testing.T) {
	v, parts, _ := newTestValidator(nil, nil)
	bad := boltInput()
	bad.Price = "abc"

	_, err := v.ValidatePart(bad)
	require.Error(t, err)

	part, err := v.ValidatePart(boltInput())
	require.NoError(t, err)
	assert.Equal(t, 1, part.ID())
	parts.ids = append(parts.ids, part.ID())

	part, err = v.ValidatePart(boltInput())
	require.NoError(t, err)
	assert.Equal(t, 2, part.ID())
}

func TestValidateProduct_ScenarioD_PriceBelowPartsCost(t *testing.T) {
	v, _, _ := newTestValidator([]int{1}, nil)
	wheel := entities.NewInHousePart(1, "Wheel", decimal.RequireFromString("7.00"), 5, 0, 10, 1)

	product, err := v.ValidateProduct(ProductInput{
		Action:          entities.ActionAdd,
		Name:            "Cart",
		Price:           "5.00",
		Stock:           "1",
		Min:             "0",
		Max:             "5",
		AssociatedParts: []*entities.Part{wheel},
	})
	assert.Nil(t, product)
	verr := requireValidationError(t, err, entities.ErrBusinessRule, entities.FieldPrice)
	assert.Equal(t, "BusinessRuleError", verr.KindName())
}

func TestValidateProduct_PriceEqualToPartsCost(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	wheel := entities.NewInHousePart(1, "Wheel", decimal.RequireFromString("3.50"), 5, 0, 10, 1)

	product, err := v.ValidateProduct(ProductInput{
		Action:          entities.ActionAdd,
		Name:            "Cart",
		Price:           "7.00",
		Stock:           "1",
		Min:             "0",
		Max:             "5",
		AssociatedParts: []*entities.Part{wheel, wheel},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, product.ID())
	assert.Len(t, product.AssociatedParts(), 2)
}

func TestValidateProduct_AddRequiresParts(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	input := ProductInput{
		Action: entities.ActionAdd,
		Name:   "Cart",
		Price:  "5.00",
		Stock:  "1",
		Min:    "0",
		Max:    "5",
	}

	_, err := v.ValidateProduct(input)
	requireValidationError(t, err, entities.ErrBusinessRule, entities.FieldParts)

	input.Action = entities.ActionModify
	input.ID = "4"
	product, err := v.ValidateProduct(input)
	require.NoError(t, err)
	assert.Equal(t, 4, product.ID())
	assert.False(t, product.HasAssociatedParts())
}

func TestValidateProduct_CopiesAssociationList(t *testing.T) {
	v, _, _ := newTestValidator(nil, nil)
	wheel := entities.NewInHousePart(1, "Wheel", decimal.RequireFromString("1.00"), 5, 0, 10, 1)
	draft := []*entities.Part{wheel}

	product, err := v.ValidateProduct(ProductInput{
		Action:          entities.ActionAdd,
		Name:            "Cart",
		Price:           "5.00",
		Stock:           "1",
		Min:             "0",
		Max:             "5",
		AssociatedParts: draft,
	})
	require.NoError(t, err)

	draft[0] = nil
	assert.Same(t, wheel, product.AssociatedParts()[0])
}

func TestProperty_ValidPartsSatisfyInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v, _, _ := newTestValidator(nil, nil)
		stock := rapid.IntRange(-5, 50).Draw(rt, "stock")
		minStock := rapid.IntRange(-5, 50).Draw(rt, "min")
		maxStock := rapid.IntRange(-5, 50).Draw(rt, "max")
		cents := rapid.IntRange(-100, 10000).Draw(rt, "cents")

		input := boltInput()
		input.Stock = strconv.Itoa(stock)
		input.Min = strconv.Itoa(minStock)
		input.Max = strconv.Itoa(maxStock)
		input.Price = decimal.New(int64(cents), -2).String()

		part, err := v.ValidatePart(input)
		if err != nil {
			var verr *entities.ValidationError
			require.True(rt, errors.As(err, &verr))
			return
		}

		require.GreaterOrEqual(rt, part.Min(), 0)
		require.LessOrEqual(rt, part.Min(), part.Stock())
		require.LessOrEqual(rt, part.Stock(), part.Max())
		require.True(rt, part.Price().IsPositive())
		require.Positive(rt, part.ID())
	})
}
