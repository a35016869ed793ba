package postgres

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrations_Embedded(t *testing.T) {
	t.Parallel()

	migrations, err := parseMigrations(migrationsFS)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, "cart_sessions", migrations[0].Name)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS cart_sessions")
	assert.Contains(t, migrations[0].Down, "DROP TABLE")
}

func TestParseMigrations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr string
		want    []int64
	}{
		{
			name: "sorted pairs",
			fsys: fstest.MapFS{
				"sql/migrations/0002_more.up.sql":   {Data: []byte("CREATE TABLE b (id INT);")},
				"sql/migrations/0002_more.down.sql": {Data: []byte("DROP TABLE b;")},
				"sql/migrations/0001_init.up.sql":   {Data: []byte("CREATE TABLE a (id INT);")},
				"sql/migrations/0001_init.down.sql": {Data: []byte("DROP TABLE a;")},
			},
			want: []int64{1, 2},
		},
		{
			name: "missing down",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql": {Data: []byte("CREATE TABLE a (id INT);")},
			},
			wantErr: "both up and down",
		},
		{
			name: "invalid file name",
			fsys: fstest.MapFS{
				"sql/migrations/not_a_migration.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "invalid migration file name",
		},
		{
			name: "empty body",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":   {Data: []byte("  \n")},
				"sql/migrations/0001_init.down.sql": {Data: []byte("DROP TABLE a;")},
			},
			wantErr: "empty",
		},
		{
			name: "name mismatch",
			fsys: fstest.MapFS{
				"sql/migrations/0001_init.up.sql":    {Data: []byte("CREATE TABLE a (id INT);")},
				"sql/migrations/0001_other.down.sql": {Data: []byte("DROP TABLE a;")},
			},
			wantErr: "name mismatch",
		},
		{
			name:    "no files",
			fsys:    fstest.MapFS{},
			wantErr: "no migration files",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			migrations, err := parseMigrations(tc.fsys)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			versions := make([]int64, 0, len(migrations))
			for _, m := range migrations {
				versions = append(versions, m.Version)
			}
			assert.Equal(t, tc.want, versions)
		})
	}
}
