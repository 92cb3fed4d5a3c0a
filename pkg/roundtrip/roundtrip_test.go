package roundtrip

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/jensneuse/abstractlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jensneuse/graphql-frontend/pkg/astdiff"
	"github.com/jensneuse/graphql-frontend/pkg/astparser"
)

func testLogger() log.Logger {
	return log.NewZapLogger(zap.NewNop(), log.DebugLevel)
}

func TestFile(t *testing.T) {
	runner := NewRunner(WithLogger(testLogger()))

	destPath := filepath.Join(t.TempDir(), "out", "starwars.graphqls")
	err := runner.File("./testdata/corpus/starwars.graphqls", destPath)
	require.NoError(t, err)

	written, err := os.ReadFile(destPath)
	require.NoError(t, err)
	require.NotEmpty(t, written)

	source, err := os.ReadFile("./testdata/corpus/starwars.graphqls")
	require.NoError(t, err)

	original, err := astparser.NewParser().Parse(source, "starwars.graphqls")
	require.NoError(t, err)
	canonical, err := astparser.NewParser().Parse(written, "out.graphqls")
	require.NoError(t, err)

	assert.False(t, astdiff.Diff(original, canonical).IsPresent())
}

func TestFileErrors(t *testing.T) {
	runner := NewRunner()

	t.Run("missing source", func(t *testing.T) {
		err := runner.File("./testdata/corpus/does-not-exist.graphql", filepath.Join(t.TempDir(), "out.graphql"))
		require.Error(t, err)
	})
	t.Run("invalid source", func(t *testing.T) {
		destPath := filepath.Join(t.TempDir(), "out.graphql")
		err := runner.File("./testdata/broken/invalid.graphql", destPath)
		require.Error(t, err)

		_, statErr := os.Stat(destPath)
		assert.True(t, os.IsNotExist(statErr), "nothing must be written for unparsable input")
	})
}

func TestRunCorpus(t *testing.T) {
	runner := NewRunner(
		WithLogger(testLogger()),
		WithConcurrency(2),
	)

	destDir := t.TempDir()
	stats, err := runner.RunCorpus("./testdata/corpus", destDir)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Processed)
	assert.Equal(t, uint32(0), stats.Failed)

	// the directory layout is mirrored, non graphql files are skipped
	assert.FileExists(t, filepath.Join(destDir, "starwars.graphqls"))
	assert.FileExists(t, filepath.Join(destDir, "operations", "queries.graphql"))
	assert.NoFileExists(t, filepath.Join(destDir, "notes.txt"))
}

func TestRunCorpusContinuesPastFailures(t *testing.T) {
	runner := NewRunner(WithConcurrency(1))

	destDir := t.TempDir()
	stats, err := runner.RunCorpus("./testdata/broken", destDir)
	require.Error(t, err)

	assert.Equal(t, uint32(2), stats.Processed)
	assert.Equal(t, uint32(1), stats.Failed)
	assert.FileExists(t, filepath.Join(destDir, "ok.graphql"))
}

func TestRunCorpusMissingDir(t *testing.T) {
	runner := NewRunner()
	_, err := runner.RunCorpus("./testdata/does-not-exist", t.TempDir())
	require.Error(t, err)
}
