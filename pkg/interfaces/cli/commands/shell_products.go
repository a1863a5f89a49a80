package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
)

const editorHelp = `Associated parts:
  add <part id>       associate a part (the same part may be added twice)
  remove <part id>    remove one association
  parts               list the draft associations
  available [key]     list parts that can be added
  edit                change the product fields
  save                validate and save the product
  cancel              abandon the edit`

func (s *Shell) productCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.listProducts(s.repo.AllProducts())
		return
	}

	switch args[0] {
	case "add":
		s.editProduct(ctx, entities.ActionAdd, -1, domainservices.ProductInput{})
	case "modify", "edit":
		product, index, ok := s.selectProduct(args[1:], "product to modify")
		if !ok {
			return
		}
		s.editProduct(ctx, entities.ActionModify, index, productFormFrom(product, index))
	case "delete", "rm":
		product, _, ok := s.selectProduct(args[1:], "product to delete")
		if !ok {
			return
		}
		if _, err := s.service.DeleteProduct(ctx, product); err != nil {
			return
		}
	case "find":
		s.findProducts(strings.Join(args[1:], " "))
	case "search":
		s.listProducts(s.service.SearchProducts(strings.Join(args[1:], " ")))
	case "show":
		product, _, ok := s.selectProduct(args[1:], "product to show")
		if !ok {
			return
		}
		s.showProduct(product)
	default:
		s.console.Notify(services.Message{Title: "Unknown product command " + strconv.Quote(args[0]), IsError: true})
	}
}

func (s *Shell) selectProduct(args []string, kind string) (*entities.Product, int, bool) {
	id, ok := s.selectedID(args, kind)
	if !ok {
		return nil, -1, false
	}
	product, err := s.repo.LookupProduct(id)
	if err != nil {
		s.notFound(err)
		return nil, -1, false
	}
	return product, s.repo.ProductIndex(product), true
}

func (s *Shell) showProduct(product *entities.Product) {
	s.listProducts([]*entities.Product{product})
	s.console.Printf("\nAssociated parts (cost %s):\n", product.PartsCost().StringFixed(2))
	s.listParts(product.AssociatedParts())
}

// editProduct fills the product fields, then edits the draft association list
// until the product is saved or the edit is abandoned
func (s *Shell) editProduct(ctx context.Context, action entities.Action, index int, input domainservices.ProductInput) {
	editor, err := s.service.NewProductEditor(ctx, action, index)
	if err != nil {
		return
	}

	if action == entities.ActionAdd {
		s.console.Title("Add Product")
		s.console.Hint("ID: Auto-Generated (" + strconv.Itoa(s.service.NextProductID()) + ")")
	} else {
		s.console.Title("Modify Product " + input.ID)
	}

	if !s.fillProductForm(&input) {
		s.console.Hint("Edit abandoned")
		return
	}
	s.console.Hint("Type help for association commands, save when done")

	for {
		line, ok := s.console.ReadLine("parts> ")
		if !ok {
			return
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help", "?":
			s.console.Printf("%s\n", editorHelp)
		case "add":
			if part, ok := s.editorPart(args[1:], s.repo.AllParts()); ok {
				editor.Add(part)
			}
		case "remove", "delete":
			if part, ok := s.editorPart(args[1:], editor.Parts()); ok {
				editor.Remove(part)
			}
		case "parts":
			s.listParts(editor.Parts())
			s.console.Hint("Cost of parts: " + entities.PartsCost(editor.Parts()).StringFixed(2))
		case "available":
			s.listParts(s.service.SearchParts(strings.Join(args[1:], " ")))
		case "edit":
			if !s.fillProductForm(&input) {
				s.console.Hint("Edit abandoned")
				return
			}
		case "save":
			if _, err := editor.Save(ctx, input); err == nil {
				return
			}
		case "cancel", cancelInput:
			if s.service.ConfirmCancel() {
				s.console.Hint("Edit abandoned")
				return
			}
		default:
			s.console.Notify(services.Message{Title: "Unknown command " + strconv.Quote(args[0]) + ", type help", IsError: true})
		}
	}
}

// editorPart resolves an id argument against candidates
func (s *Shell) editorPart(args []string, candidates []*entities.Part) (*entities.Part, bool) {
	id, ok := s.selectedID(args, "part")
	if !ok {
		return nil, false
	}
	for _, part := range candidates {
		if part.ID() == id {
			return part, true
		}
	}
	s.notFound(entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
		"Part "+strconv.Itoa(id)+" is not in the list"))
	return nil, false
}

// findProducts looks up by id when text is a number, otherwise by exact name
func (s *Shell) findProducts(text string) {
	if id, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		product, err := s.repo.LookupProduct(id)
		if err != nil {
			s.notFound(err)
			return
		}
		s.listProducts([]*entities.Product{product})
		return
	}

	found := s.repo.LookupProductsByName(text)
	if len(found) == 0 {
		s.notFound(entities.NewValidationError(entities.ErrNotFound, entities.FieldName,
			"No product is named "+strconv.Quote(text)))
		return
	}
	s.listProducts(found)
}
