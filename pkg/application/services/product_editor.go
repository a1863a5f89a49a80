package services

import (
	"context"

	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
)

// ProductEditor holds the draft association list of a product being added or modified.
// The draft only reaches the catalog through Save; dropping the editor discards it.
type ProductEditor struct {
	service *InventoryService
	action  entities.Action
	index   int
	draft   []*entities.Part
}

// NewProductEditor opens an editor. On MODIFY the draft starts as a copy of the
// stored product's associations.
func (s *InventoryService) NewProductEditor(ctx context.Context, action entities.Action, index int) (*ProductEditor, error) {
	editor := &ProductEditor{
		service: s,
		action:  action,
		index:   -1,
		draft:   make([]*entities.Part, 0),
	}

	if action == entities.ActionModify {
		product, err := s.ProductAt(ctx, index)
		if err != nil {
			return nil, err
		}
		editor.index = index
		editor.draft = append(editor.draft, product.AssociatedParts()...)
	}

	return editor, nil
}

// Action returns whether the editor adds or modifies
func (e *ProductEditor) Action() entities.Action {
	return e.action
}

// Index returns the catalog position being modified, or -1 on ADD
func (e *ProductEditor) Index() int {
	return e.index
}

// Add appends part to the draft. A nil selection is ignored.
func (e *ProductEditor) Add(part *entities.Part) {
	if part == nil {
		return
	}
	e.draft = append(e.draft, part)
}

// Remove drops the first draft reference to part after confirmation
func (e *ProductEditor) Remove(part *entities.Part) bool {
	if !e.service.confirmer.Confirm(confirmDelete) {
		return false
	}
	if part == nil {
		return false
	}
	for i, candidate := range e.draft {
		if candidate == part {
			e.draft = append(e.draft[:i], e.draft[i+1:]...)
			return true
		}
	}
	return false
}

// Parts returns the current draft
func (e *ProductEditor) Parts() []*entities.Part {
	return e.draft
}

// Save validates input against the draft and commits the product
func (e *ProductEditor) Save(ctx context.Context, input domainservices.ProductInput) (*entities.Product, error) {
	input.Action = e.action
	input.Index = e.index
	input.AssociatedParts = e.draft
	return e.service.SaveProduct(ctx, input)
}
