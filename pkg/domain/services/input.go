package services

import "github.com/vsinha/inventory/pkg/domain/entities"

// PartInput holds the raw field values of a part edit form
type PartInput struct {
	Action entities.Action
	// Index is the catalog position being replaced on MODIFY
	Index int

	ID    string
	Name  string
	Stock string
	Price string
	Max   string
	Min   string

	Source entities.SourceKind
	// SourceValue is the machine id or the company name, depending on Source
	SourceValue string
}

// ProductInput holds the raw field values of a product edit form and its draft associations
type ProductInput struct {
	Action entities.Action
	Index  int

	ID    string
	Name  string
	Stock string
	Price string
	Max   string
	Min   string

	AssociatedParts []*entities.Part
}

// PartSeed is a part row read from a seed file, with its 1-based line number
type PartSeed struct {
	Line  int
	Input PartInput
}

// ProductSeed is a product row read from a seed file. PartIDs are resolved
// against the parts catalog when the row is added.
type ProductSeed struct {
	Line    int
	Input   ProductInput
	PartIDs []int
}
