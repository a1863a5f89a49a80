package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testhelpers "github.com/vsinha/inventory/pkg/infrastructure/testing"
)

func TestNewCatalogView(t *testing.T) {
	repo := testhelpers.BuildWorkshopTestData()

	view := NewCatalogView(repo.AllParts(), repo.AllProducts())
	require.Len(t, view.Parts, 4)
	require.Len(t, view.Products, 2)

	bolt := view.Parts[0]
	require.NotNil(t, bolt.MachineID)
	assert.Equal(t, 3, *bolt.MachineID)
	assert.Nil(t, bolt.CompanyName)
	assert.Equal(t, "machine 3", bolt.Detail)

	elbow := view.Parts[1]
	require.NotNil(t, elbow.CompanyName)
	assert.Equal(t, "Acme Plumbing", *elbow.CompanyName)
	assert.Nil(t, elbow.MachineID)
	assert.Equal(t, "Acme Plumbing", elbow.Detail)

	cart := view.Products[0]
	assert.Equal(t, []int{4, 4, 1}, cart.PartIDs)
	assert.Equal(t, "14.50", cart.PartsCost.StringFixed(2))

	assert.Empty(t, view.Products[1].PartIDs)
}

func TestPartView_JSONOmitsOtherSource(t *testing.T) {
	repo := testhelpers.BuildWorkshopTestData()

	data, err := json.Marshal(NewCatalogView(repo.AllParts()[:2], nil).Parts)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw[0], "machine_id")
	assert.NotContains(t, raw[0], "company_name")
	assert.Contains(t, raw[1], "company_name")
	assert.NotContains(t, raw[1], "machine_id")
	assert.Equal(t, "0.5", raw[0]["price"])
}
