package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
)

const cancelInput = "!cancel"

// formField is one prompt of an edit form; value holds the default and receives the answer
type formField struct {
	label string
	value *string
}

// fillForm prompts for each field in order. Empty answers keep the current value.
// It returns false when the user abandons the edit or input ends.
func (s *Shell) fillForm(fields []formField) bool {
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		answer, ok := s.console.ReadLine(fmt.Sprintf("%s [%s]: ", field.label, *field.value))
		if !ok {
			return false
		}

		answer = strings.TrimSpace(answer)
		if answer == cancelInput {
			if s.service.ConfirmCancel() {
				return false
			}
			i--
			continue
		}
		if answer != "" {
			*field.value = answer
		}
	}
	return true
}

// partForm is the editable state of a part edit, kept across failed saves
type partForm struct {
	input  domainservices.PartInput
	source string
}

func newPartForm() *partForm {
	return &partForm{
		input: domainservices.PartInput{
			Action: entities.ActionAdd,
			Index:  -1,
			Source: entities.InHouse,
		},
		source: "inhouse",
	}
}

func partFormFrom(part *entities.Part, index int) *partForm {
	form := &partForm{
		input: domainservices.PartInput{
			Action: entities.ActionModify,
			Index:  index,
			ID:     strconv.Itoa(part.ID()),
			Name:   part.Name(),
			Stock:  strconv.Itoa(part.Stock()),
			Price:  part.Price().String(),
			Max:    strconv.Itoa(part.Max()),
			Min:    strconv.Itoa(part.Min()),
			Source: part.Kind(),
		},
	}

	switch part.Kind() {
	case entities.InHouse:
		form.source = "inhouse"
		machineID, _ := part.MachineID()
		form.input.SourceValue = strconv.Itoa(machineID)
	case entities.Outsourced:
		form.source = "outsourced"
		form.input.SourceValue, _ = part.CompanyName()
	}
	return form
}

// fillPartForm runs the part prompts. The source-specific prompt follows the chosen source.
func (s *Shell) fillPartForm(form *partForm) bool {
	in := &form.input
	if !s.fillForm([]formField{
		{label: "Name", value: &in.Name},
		{label: "Inventory", value: &in.Stock},
		{label: "Price", value: &in.Price},
		{label: "Max", value: &in.Max},
		{label: "Min", value: &in.Min},
	}) {
		return false
	}

	for {
		previous := form.source
		if !s.fillForm([]formField{{label: "Source (inhouse/outsourced)", value: &form.source}}) {
			return false
		}

		kind, ok := parseSource(form.source)
		if !ok {
			s.console.Notify(services.Message{Title: "Select either inhouse or outsourced", IsError: true})
			form.source = previous
			continue
		}
		if kind != in.Source {
			in.SourceValue = ""
		}
		in.Source = kind
		break
	}

	label := "Machine ID"
	if in.Source == entities.Outsourced {
		label = "Company Name"
	}
	return s.fillForm([]formField{{label: label, value: &in.SourceValue}})
}

func parseSource(s string) (entities.SourceKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inhouse", "in-house", "i":
		return entities.InHouse, true
	case "outsourced", "o":
		return entities.Outsourced, true
	default:
		return 0, false
	}
}

func productFormFrom(product *entities.Product, index int) domainservices.ProductInput {
	return domainservices.ProductInput{
		Action: entities.ActionModify,
		Index:  index,
		ID:     strconv.Itoa(product.ID()),
		Name:   product.Name(),
		Stock:  strconv.Itoa(product.Stock()),
		Price:  product.Price().String(),
		Max:    strconv.Itoa(product.Max()),
		Min:    strconv.Itoa(product.Min()),
	}
}

func (s *Shell) fillProductForm(in *domainservices.ProductInput) bool {
	return s.fillForm([]formField{
		{label: "Name", value: &in.Name},
		{label: "Inventory", value: &in.Stock},
		{label: "Price", value: &in.Price},
		{label: "Max", value: &in.Max},
		{label: "Min", value: &in.Min},
	})
}
