package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_PairedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(FS, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.Len(t, ups, 3)
	assert.Equal(t, ups, downs)
}

func TestFS_HistoryCascadesWithBuyer(t *testing.T) {
	b, err := fs.ReadFile(FS, "000003_create_buyer_history.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "ON DELETE CASCADE")
}
