package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
)

// SeedResult counts the seed rows that made it into the catalog
type SeedResult struct {
	PartsAdded    int
	ProductsAdded int
	Rejected      int
}

// RowError is a seed row rejected by validation
type RowError struct {
	Catalog string
	Line    int
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Catalog, e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Seed adds parts and then products through the ADD flow. Every row is attempted;
// rejected rows are returned joined, each as a *RowError.
func (s *InventoryService) Seed(ctx context.Context, parts []domainservices.PartSeed, products []domainservices.ProductSeed) (SeedResult, error) {
	var (
		result SeedResult
		errs   []error
		start  = time.Now()
	)

	for _, seed := range parts {
		input := seed.Input
		input.Action = entities.ActionAdd
		if _, err := s.SavePart(ctx, input); err != nil {
			errs = append(errs, &RowError{Catalog: "parts", Line: seed.Line, Err: unwrapValidation(err)})
			continue
		}
		result.PartsAdded++
	}

	for _, seed := range products {
		input := seed.Input
		input.Action = entities.ActionAdd

		associated, err := s.resolveParts(seed.PartIDs)
		if err != nil {
			s.notifier.Notify(ErrorMessage(err))
			errs = append(errs, &RowError{Catalog: "products", Line: seed.Line, Err: err})
			continue
		}
		input.AssociatedParts = associated

		if _, err := s.SaveProduct(ctx, input); err != nil {
			errs = append(errs, &RowError{Catalog: "products", Line: seed.Line, Err: unwrapValidation(err)})
			continue
		}
		result.ProductsAdded++
	}

	result.Rejected = len(errs)
	logger.Info(ctx, "catalog seeded",
		logger.Int("parts", result.PartsAdded),
		logger.Int("products", result.ProductsAdded),
		logger.Int("rejected", result.Rejected),
		logger.Duration("took", time.Since(start)),
	)

	return result, errors.Join(errs...)
}

func (s *InventoryService) resolveParts(ids []int) ([]*entities.Part, error) {
	parts := make([]*entities.Part, 0, len(ids))
	for _, id := range ids {
		part, err := s.repo.LookupPart(id)
		if err != nil {
			return nil, entities.NewValidationError(entities.ErrNotFound, entities.FieldParts,
				fmt.Sprintf("Part %d does not exist", id))
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// unwrapValidation strips the op prefix so row reports show the user-facing message
func unwrapValidation(err error) error {
	var verr *entities.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return err
}
