package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/inventory/pkg/application/dto"
	"github.com/vsinha/inventory/pkg/infrastructure/logger"
)

const (
	goodParts = `type,name,price,stock,min,max,machine_or_company
inhouse,Bolt,0.50,10,0,100,3
outsourced,Wheel,7.00,8,2,40,Round Things Ltd
`

	goodProducts = `name,price,stock,min,max,part_ids
Cart,29.99,3,1,10,2 2 1
`

	badParts = `type,name,price,stock,min,max,machine_or_company
inhouse,Bolt,0.50,10,0,100,3
inhouse,Nut,0.20,500,0,100,3
outsourced,Wheel,7.00,8,2,40,1234
`
)

type cliResult struct {
	out    string
	errOut string
	err    error
}

// execute runs the root command with a clean environment
func execute(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	t.Setenv("APP_ENV", "")
	for _, key := range []string{"INVENTORY_PARTS_SEED", "INVENTORY_PRODUCTS_SEED", "INVENTORY_OUTPUT_FORMAT", "LOGGER_LEVEL", "LOGGER_AS_JSON"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(logger.SetNop)

	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return cliResult{out: out.String(), errOut: errOut.String(), err: err}
}

func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_ListJSON(t *testing.T) {
	parts := writeSeed(t, "parts.csv", goodParts)
	products := writeSeed(t, "products.csv", goodProducts)

	res := execute(t, "", "list", "--parts", parts, "--products", products, "--format", "json")
	require.NoError(t, res.err)

	var view dto.CatalogView
	require.NoError(t, json.Unmarshal([]byte(res.out), &view))
	require.Len(t, view.Parts, 2)
	require.Len(t, view.Products, 1)
	assert.Equal(t, []int{2, 2, 1}, view.Products[0].PartIDs)
	assert.Equal(t, "14.50", view.Products[0].PartsCost.StringFixed(2))
}

func TestRoot_ListOneCatalog(t *testing.T) {
	parts := writeSeed(t, "parts.csv", goodParts)

	res := execute(t, "", "list", "--catalog", "parts", "--log-level", "debug", "--parts", parts)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Parts: 2")
	assert.NotContains(t, res.out, "Products:")
	assert.Contains(t, res.errOut, "catalog seeded")
	assert.Contains(t, res.errOut, "configuration loaded")
	assert.Contains(t, res.errOut, `"log_json"`)
}

func TestRoot_ValidateReportsRows(t *testing.T) {
	parts := writeSeed(t, "parts.csv", badParts)

	res := execute(t, "", "validate", "--parts", parts)
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, ErrRejectedRows)

	assert.Contains(t, res.out, "parts line 3: RangeError: Inventory level must be less than or equal to max")
	assert.Contains(t, res.out, "parts line 4: RangeError: The company name is not valid")
	assert.Contains(t, res.out, "1 parts, 0 products accepted; 2 rows rejected")
}

func TestRoot_ValidateClean(t *testing.T) {
	parts := writeSeed(t, "parts.csv", goodParts)
	products := writeSeed(t, "products.csv", goodProducts)

	res := execute(t, "", "validate", "--parts", parts, "--products", products)
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "2 parts, 1 products accepted; 0 rows rejected")
}

func TestRoot_MissingSeedFile(t *testing.T) {
	res := execute(t, "", "list", "--parts", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, res.err)
	assert.Contains(t, res.err.Error(), "failed to open parts file")
}

func TestRoot_BadLogLevel(t *testing.T) {
	res := execute(t, "", "list", "--log-level", "loud")
	assert.Error(t, res.err)
}

func TestRoot_DefaultsToShell(t *testing.T) {
	parts := writeSeed(t, "parts.csv", badParts)

	res := execute(t, "parts\nexit\n", "--parts", parts)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Error: 2 seed rows were rejected")
	assert.Contains(t, res.out, "1 parts, 0 products loaded")
	assert.Contains(t, res.out, "Bolt")
}

func TestRoot_ShellDoesNotReuseSeededIDs(t *testing.T) {
	parts := writeSeed(t, "parts.csv", goodParts)

	stdin := strings.Join([]string{
		"part delete 2", "y",
		"part add", "Gear", "5", "1.25", "10", "1", "", "7",
		"exit",
	}, "\n") + "\n"

	res := execute(t, stdin, "shell", "--parts", parts)
	require.NoError(t, res.err)

	assert.Contains(t, res.out, `deleted part 2 "Wheel"`)
	assert.Contains(t, res.out, "ID: Auto-Generated (3)")
	assert.Contains(t, res.out, `added part 3 "Gear"`)
}
