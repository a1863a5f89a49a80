package commands

import (
	"context"
	"strconv"
	"strings"

	"github.com/vsinha/inventory/pkg/application/services"
	"github.com/vsinha/inventory/pkg/domain/entities"
)

func (s *Shell) partCommand(ctx context.Context, args []string) {
	if len(args) == 0 {
		s.listParts(s.repo.AllParts())
		return
	}

	switch args[0] {
	case "add":
		s.editPart(ctx, newPartForm())
	case "modify", "edit":
		id, ok := s.selectedID(args[1:], "part to modify")
		if !ok {
			return
		}
		part, err := s.repo.LookupPart(id)
		if err != nil {
			s.notFound(err)
			return
		}
		s.editPart(ctx, partFormFrom(part, s.repo.PartIndex(part)))
	case "delete", "rm":
		id, ok := s.selectedID(args[1:], "part to delete")
		if !ok {
			return
		}
		part, err := s.repo.LookupPart(id)
		if err != nil {
			s.notFound(err)
			return
		}
		if _, err := s.service.DeletePart(ctx, part); err != nil {
			return
		}
	case "find":
		s.findParts(strings.Join(args[1:], " "))
	case "search":
		s.listParts(s.service.SearchParts(strings.Join(args[1:], " ")))
	default:
		s.console.Notify(services.Message{Title: "Unknown part command " + strconv.Quote(args[0]), IsError: true})
	}
}

// editPart loops over the form until the part is saved or the edit is abandoned.
// A rejected save reopens the form with the values just entered.
func (s *Shell) editPart(ctx context.Context, form *partForm) {
	if form.input.Action == entities.ActionAdd {
		s.console.Title("Add Part")
		s.console.Hint("ID: Auto-Generated (" + strconv.Itoa(s.service.NextPartID()) + ")")
	} else {
		s.console.Title("Modify Part " + form.input.ID)
	}

	for {
		if !s.fillPartForm(form) {
			s.console.Hint("Edit abandoned")
			return
		}

		if _, err := s.service.SavePart(ctx, form.input); err == nil {
			return
		}
		if s.console.Closed() {
			return
		}
	}
}

// findParts looks up by id when text is a number, otherwise by name fragment
func (s *Shell) findParts(text string) {
	if id, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
		part, err := s.repo.LookupPart(id)
		if err != nil {
			s.notFound(err)
			return
		}
		s.listParts([]*entities.Part{part})
		return
	}

	found := s.repo.LookupPartsByName(text)
	if len(found) == 0 {
		s.notFound(entities.NewValidationError(entities.ErrNotFound, entities.FieldName,
			"No part matches "+strconv.Quote(text)))
		return
	}
	s.listParts(found)
}
