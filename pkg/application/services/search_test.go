package services

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/vsinha/inventory/pkg/domain/entities"
	testhelpers "github.com/vsinha/inventory/pkg/infrastructure/testing"
)

func partNames(parts []*entities.Part) []string {
	return lo.Map(parts, func(p *entities.Part, _ int) string { return p.Name() })
}

func TestSearchParts(t *testing.T) {
	svc := NewInventoryService(testhelpers.BuildWorkshopTestData(), AutoConfirm(true), DiscardNotifier{})

	tests := []struct {
		key  string
		want []string
	}{
		{key: "", want: []string{"Bolt", "Elbow", "Washer", "Wheel"}},
		{key: "bo", want: []string{"Bolt", "Elbow"}},
		{key: "WH", want: []string{"Wheel"}},
		{key: "3", want: []string{"Washer"}},
		{key: "zz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run("key_"+tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, partNames(svc.SearchParts(tt.key)))
		})
	}
}

func TestSearchProducts(t *testing.T) {
	svc := NewInventoryService(testhelpers.BuildWorkshopTestData(), AutoConfirm(true), DiscardNotifier{})

	assert.Len(t, svc.SearchProducts(""), 2)

	// unlike the repository name lookup, search matches substrings
	found := svc.SearchProducts("shelf")
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Bookshelf", found[0].Name())
	}

	found = svc.SearchProducts("1")
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Cart", found[0].Name())
	}
}
