//go:build unit

package repository

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// bundleItemsColumns extracts the column names from the bundle_items DDL so
// the repository SQL can be checked against the schema it targets.
func bundleItemsColumns(t *testing.T) map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile("../../../migrations/schema.sql")
	require.NoError(t, err)

	block := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS bundle_items \((.*?)\);`).
		FindSubmatch(ddl)
	require.NotNil(t, block, "bundle_items table missing from schema")

	columns := make(map[string]bool)
	for _, line := range strings.Split(string(block[1]), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		columns[strings.TrimSuffix(fields[0], ",")] = true
	}
	return columns
}

func TestBundleItemSQLColumnsExistInSchema(t *testing.T) {
	columns := bundleItemsColumns(t)

	identifier := regexp.MustCompile(`[a-z_]+`)
	keywords := map[string]bool{
		"insert": true, "into": true, "bundle_items": true, "values": true,
		"select": true, "from": true, "where": true, "order": true, "by": true,
	}

	for name, stmt := range map[string]string{
		"insert": insertBundleItemSQL,
		"select": selectBundleItemsSQL,
	} {
		t.Run(name, func(t *testing.T) {
			for _, word := range identifier.FindAllString(strings.ToLower(stmt), -1) {
				if keywords[word] {
					continue
				}
				require.True(t, columns[word],
					"statement references %q which is not a bundle_items column", word)
			}
		})
	}
}
