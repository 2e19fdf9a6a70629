package migrations

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_forum.sql", "001_init.sql", "README.md", "010_events.sql"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700))

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_init.sql", "002_forum.sql", "010_events.sql"}, files)
}

func TestMigrationFilesMissingDirectory(t *testing.T) {
	_, err := migrationFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "001", migrationVersion("001_init.sql"))
	assert.Equal(t, "002", migrationVersion("migrations/002_add_user_roles.sql"))
	assert.Equal(t, "003.sql", migrationVersion("003.sql"))
}

func TestRepositoryMigrationsParse(t *testing.T) {
	files, err := migrationFiles(filepath.Join("..", "..", "..", "migrations"))
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "001", migrationVersion(files[0]))
}

func TestPendingCollaborationIndexIsUnordered(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := strings.Join(strings.Fields(string(raw)), " ")

	assert.Contains(t, schema,
		"CREATE UNIQUE INDEX IF NOT EXISTS collaborations_pending_pair_idx ON collaborations "+
			"(LEAST(requester_id, recipient_id), GREATEST(requester_id, recipient_id)) WHERE status = 'pending';")
}
