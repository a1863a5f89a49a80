package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/domain/entities"
	domainservices "github.com/vsinha/inventory/pkg/domain/services"
	testhelpers "github.com/vsinha/inventory/pkg/infrastructure/testing"
)

func cartInput() domainservices.ProductInput {
	return domainservices.ProductInput{
		Name:  "Wagon",
		Price: "40.00",
		Stock: "2",
		Min:   "1",
		Max:   "10",
	}
}

func TestProductEditor_AddRequiresParts(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	notifier := &mockNotifier{}
	notifier.On("Notify", Message{Title: "Product must have at least one part", IsError: true}).Once()
	svc := NewInventoryService(repo, AutoConfirm(true), notifier)

	editor, err := svc.NewProductEditor(ctx, entities.ActionAdd, -1)
	require.NoError(t, err)

	_, err = editor.Save(ctx, cartInput())
	assert.ErrorIs(t, err, entities.ErrBusinessRule)
	assert.Len(t, repo.AllProducts(), 2)

	wheel, err := repo.LookupPart(4)
	require.NoError(t, err)
	editor.Add(wheel)
	editor.Add(nil)

	product, err := editor.Save(ctx, cartInput())
	require.NoError(t, err)
	assert.Equal(t, 3, product.ID())
	assert.Equal(t, []*entities.Part{wheel}, product.AssociatedParts())
	assert.Len(t, repo.AllProducts(), 3)
	notifier.AssertExpectations(t)
}

func TestProductEditor_ModifyStartsFromStoredAssociations(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	svc := NewInventoryService(repo, AutoConfirm(true), DiscardNotifier{})
	cart := repo.AllProducts()[0]

	editor, err := svc.NewProductEditor(ctx, entities.ActionModify, 0)
	require.NoError(t, err)
	assert.Equal(t, cart.AssociatedParts(), editor.Parts())

	wheel := cart.AssociatedParts()[0]
	require.True(t, editor.Remove(wheel))

	// the stored product is untouched until Save
	assert.Len(t, cart.AssociatedParts(), 3)
	assert.Len(t, editor.Parts(), 2)
}

func TestProductEditor_ModifySave(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	svc := NewInventoryService(repo, AutoConfirm(true), DiscardNotifier{})

	editor, err := svc.NewProductEditor(ctx, entities.ActionModify, 0)
	require.NoError(t, err)
	for len(editor.Parts()) > 0 {
		require.True(t, editor.Remove(editor.Parts()[0]))
	}

	input := cartInput()
	input.ID = "1"
	input.Name = "Empty Cart"
	product, err := editor.Save(ctx, input)
	require.NoError(t, err)

	assert.Same(t, product, repo.AllProducts()[0])
	assert.False(t, product.HasAssociatedParts())
	assert.Len(t, repo.AllProducts(), 2)
}

func TestProductEditor_RemoveNeedsConfirmation(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	confirmer := &mockConfirmer{}
	confirmer.On("Confirm", "delete").Return(false).Once()
	svc := NewInventoryService(repo, confirmer, DiscardNotifier{})

	editor, err := svc.NewProductEditor(ctx, entities.ActionModify, 0)
	require.NoError(t, err)

	assert.False(t, editor.Remove(editor.Parts()[0]))
	assert.Len(t, editor.Parts(), 3)
	confirmer.AssertExpectations(t)
}

func TestProductEditor_RejectedSaveKeepsDraft(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	notifier := &mockNotifier{}
	notifier.On("Notify", mock.Anything).Once()
	svc := NewInventoryService(repo, AutoConfirm(true), notifier)
	wheel, err := repo.LookupPart(4)
	require.NoError(t, err)

	editor, err := svc.NewProductEditor(ctx, entities.ActionAdd, -1)
	require.NoError(t, err)
	editor.Add(wheel)

	input := cartInput()
	input.Price = "5.00"
	_, err = editor.Save(ctx, input)
	assert.ErrorIs(t, err, entities.ErrBusinessRule)
	assert.Equal(t, []*entities.Part{wheel}, editor.Parts())
	assert.Len(t, repo.AllProducts(), 2)
}

func TestProductEditor_ModifyBadIndex(t *testing.T) {
	ctx := context.Background()
	repo := testhelpers.BuildWorkshopTestData()
	svc := NewInventoryService(repo, AutoConfirm(true), DiscardNotifier{})

	_, err := svc.NewProductEditor(ctx, entities.ActionModify, 7)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
