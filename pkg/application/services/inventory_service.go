package services

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/vsinha/inventory/pkg/domain/entities"
	"github.com/vsinha/inventory/pkg/domain/repositories"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
)

const (
	confirmDelete = "delete"
	confirmCancel = "cancel"
)

// InventoryService applies the catalog business rules on top of a repository.
// Failures are reported to the Notifier and returned; nothing is committed on failure.
type InventoryService struct {
	repo       repositories.InventoryRepository
	validator  *domainservices.Validator
	partIDs    *domainservices.IDGenerator
	productIDs *domainservices.IDGenerator
	confirmer  Confirmer
	notifier   Notifier
}

// NewInventoryService creates a service over repo that talks to the user through confirmer and notifier
func NewInventoryService(repo repositories.InventoryRepository, confirmer Confirmer, notifier Notifier) *InventoryService {
	partIDs := domainservices.NewIDGenerator(func() []int {
		return lo.Map(repo.AllParts(), func(p *entities.Part, _ int) int { return p.ID() })
	})
	productIDs := domainservices.NewIDGenerator(func() []int {
		return lo.Map(repo.AllProducts(), func(p *entities.Product, _ int) int { return p.ID() })
	})

	return &InventoryService{
		repo:       repo,
		validator:  domainservices.NewValidator(partIDs, productIDs),
		partIDs:    partIDs,
		productIDs: productIDs,
		confirmer:  confirmer,
		notifier:   notifier,
	}
}

// WithPorts returns a service over the same catalog and id generators that talks to the user
// through confirmer and notifier instead
func (s *InventoryService) WithPorts(confirmer Confirmer, notifier Notifier) *InventoryService {
	clone := *s
	clone.confirmer = confirmer
	clone.notifier = notifier
	return &clone
}

// Repository returns the underlying catalog
func (s *InventoryService) Repository() repositories.InventoryRepository {
	return s.repo
}

// NextPartID previews the id the next part ADD will receive
func (s *InventoryService) NextPartID() int {
	return s.partIDs.Peek()
}

// NextProductID previews the id the next product ADD will receive
func (s *InventoryService) NextProductID() int {
	return s.productIDs.Peek()
}

// SavePart validates input and appends (ADD) or replaces (MODIFY) the part
func (s *InventoryService) SavePart(ctx context.Context, input domainservices.PartInput) (*entities.Part, error) {
	const op = "InventoryService.SavePart"

	part, err := s.validator.ValidatePart(input)
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	switch input.Action {
	case entities.ActionAdd:
		s.repo.AddPart(part)
	case entities.ActionModify:
		if err := s.replacePart(input.Index, part); err != nil {
			return nil, s.reject(ctx, op, err)
		}
	}

	logger.Info(ctx, "part saved",
		logger.Stringer("action", input.Action),
		logger.Int("id", part.ID()),
		logger.String("name", part.Name()),
	)
	return part, nil
}

// replacePart overwrites the part at index, which must still hold the same id.
// A negative index replaces by id.
func (s *InventoryService) replacePart(index int, part *entities.Part) error {
	if index < 0 {
		return s.repo.UpdatePartByID(part.ID(), part)
	}
	all := s.repo.AllParts()
	if index >= len(all) || all[index].ID() != part.ID() {
		return selectionMismatch("part", part.ID())
	}
	return s.repo.UpdatePart(index, part)
}

// SaveProduct validates input and appends (ADD) or replaces (MODIFY) the product
func (s *InventoryService) SaveProduct(ctx context.Context, input domainservices.ProductInput) (*entities.Product, error) {
	const op = "InventoryService.SaveProduct"

	product, err := s.validator.ValidateProduct(input)
	if err != nil {
		return nil, s.reject(ctx, op, err)
	}

	switch input.Action {
	case entities.ActionAdd:
		s.repo.AddProduct(product)
	case entities.ActionModify:
		if err := s.replaceProduct(input.Index, product); err != nil {
			return nil, s.reject(ctx, op, err)
		}
	}

	logger.Info(ctx, "product saved",
		logger.Stringer("action", input.Action),
		logger.Int("id", product.ID()),
		logger.String("name", product.Name()),
		logger.Int("parts", len(product.AssociatedParts())),
	)
	return product, nil
}

func (s *InventoryService) replaceProduct(index int, product *entities.Product) error {
	if index < 0 {
		return s.repo.UpdateProductByID(product.ID(), product)
	}
	all := s.repo.AllProducts()
	if index >= len(all) || all[index].ID() != product.ID() {
		return selectionMismatch("product", product.ID())
	}
	return s.repo.UpdateProduct(index, product)
}

func selectionMismatch(record string, id int) error {
	return entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
		fmt.Sprintf("The selected %s is not %s %d", record, record, id))
}

// DeletePart removes part after confirmation. It reports whether the part was removed.
func (s *InventoryService) DeletePart(ctx context.Context, part *entities.Part) (bool, error) {
	const op = "InventoryService.DeletePart"

	if part == nil {
		return false, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			"You must select the part to delete"))
	}

	if !s.confirmer.Confirm(confirmDelete) {
		return false, nil
	}

	if !s.repo.DeletePart(part) {
		return false, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			fmt.Sprintf("Part %d is not in the inventory", part.ID())))
	}

	logger.Info(ctx, "part deleted", logger.Int("id", part.ID()), logger.String("name", part.Name()))
	return true, nil
}

// DeleteProduct removes product after confirmation.
// A product that still has associated parts cannot be deleted.
func (s *InventoryService) DeleteProduct(ctx context.Context, product *entities.Product) (bool, error) {
	const op = "InventoryService.DeleteProduct"

	if product == nil {
		return false, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			"You must select the product to delete"))
	}

	if product.HasAssociatedParts() {
		err := entities.NewValidationError(entities.ErrBusinessRule, entities.FieldParts,
			"You cannot delete a product with associated parts.")
		s.notifier.Notify(Message{
			Title:   err.Message,
			Body:    "Please remove all parts first to be able to delete this product.",
			IsError: true,
		})
		logger.Warn(ctx, "delete blocked",
			logger.Int("product_id", product.ID()),
			logger.Int("parts", len(product.AssociatedParts())),
		)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if !s.confirmer.Confirm(confirmDelete) {
		return false, nil
	}

	if !s.repo.DeleteProduct(product) {
		return false, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			fmt.Sprintf("Product %d is not in the inventory", product.ID())))
	}

	logger.Info(ctx, "product deleted", logger.Int("id", product.ID()), logger.String("name", product.Name()))
	return true, nil
}

// ConfirmCancel asks whether an in-progress edit may be abandoned. The catalog is never touched.
func (s *InventoryService) ConfirmCancel() bool {
	return s.confirmer.Confirm(confirmCancel)
}

// PartAt resolves a MODIFY selection to the stored part
func (s *InventoryService) PartAt(ctx context.Context, index int) (*entities.Part, error) {
	const op = "InventoryService.PartAt"

	all := s.repo.AllParts()
	if index < 0 || index >= len(all) {
		return nil, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			"You must select the part to modify"))
	}
	return all[index], nil
}

// ProductAt resolves a MODIFY selection to the stored product
func (s *InventoryService) ProductAt(ctx context.Context, index int) (*entities.Product, error) {
	const op = "InventoryService.ProductAt"

	all := s.repo.AllProducts()
	if index < 0 || index >= len(all) {
		return nil, s.reject(ctx, op, entities.NewValidationError(entities.ErrNotFound, entities.FieldSelected,
			"You must select the product to modify"))
	}
	return all[index], nil
}

// reject surfaces err to the user and wraps it for the caller
func (s *InventoryService) reject(ctx context.Context, op string, err error) error {
	s.notifier.Notify(ErrorMessage(err))
	logger.Warn(ctx, "edit rejected", logger.String("op", op), logger.ErrorF(err))
	return fmt.Errorf("%s: %w", op, err)
}
