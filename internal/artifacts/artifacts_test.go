//go:build unit

package artifacts_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condaops/envsync/internal/artifacts"
	"github.com/condaops/envsync/internal/domain/entities"
)

func TestWriteRequirements(t *testing.T) {
	t.Parallel()

	t.Run("should write sorted pinned entries", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		conda := entities.NewPackageSet(map[string]string{
			"numpy":  "1.26.4",
			"pandas": "2.2.0",
		})

		// when
		err := artifacts.WriteRequirements(path, []string{"pandas", "numpy"}, conda)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "numpy==1.26.4\npandas==2.2.0\n")
		assert.Contains(t, string(content), "# Auto-generated")
	})

	t.Run("should write unpinned entries for packages absent from conda", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		conda := entities.NewPackageSet(map[string]string{"numpy": "1.26.4"})

		// when
		err := artifacts.WriteRequirements(path, []string{"numpy", "mystery"}, conda)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "mystery\n")
		assert.Contains(t, string(content), "numpy==1.26.4\n")
	})

	t.Run("should overwrite prior contents", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte("stale==0.0.1\n"), 0o644))
		conda := entities.NewPackageSet(map[string]string{"numpy": "1.26.4"})

		// when
		err := artifacts.WriteRequirements(path, []string{"numpy"}, conda)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.NotContains(t, string(content), "stale")
	})
}

func TestReadRequirements(t *testing.T) {
	t.Parallel()

	t.Run("should round-trip what WriteRequirements produced", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		conda := entities.NewPackageSet(map[string]string{
			"numpy":        "1.26.4",
			"scikit-learn": "1.4.0",
		})
		require.NoError(t, artifacts.WriteRequirements(path, []string{"numpy", "scikit-learn"}, conda))

		// when
		set, err := artifacts.ReadRequirements(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, conda, set)
	})

	t.Run("should skip comments, blanks, and unpinned lines", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "requirements.txt")
		require.NoError(t, os.WriteFile(path, []byte(`
# header comment

numpy==1.26.4
unpinned-package
`), 0o644))

		// when
		set, err := artifacts.ReadRequirements(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.NewPackageSet(map[string]string{"numpy": "1.26.4"}), set)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		// when
		_, err := artifacts.ReadRequirements(filepath.Join(t.TempDir(), "nope.txt"))

		// then
		require.Error(t, err)
	})
}

func TestWriteSyncScript(t *testing.T) {
	t.Parallel()

	t.Run("should generate a pip script installing from the requirements file", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "sync.sh")
		params := artifacts.ScriptParams{
			VenvPath:         ".venv",
			PackageManager:   "pip",
			RequirementsPath: "requirements_from_conda.txt",
		}

		// when
		err := artifacts.WriteSyncScript(path, params)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		script := string(content)
		assert.Contains(t, script, "#!/bin/bash")
		assert.Contains(t, script, "set -e")
		assert.Contains(t, script, "VENV_PYTHON=")
		assert.Contains(t, script, "pip install --upgrade pip")
		assert.Contains(t, script, `pip install -r "requirements_from_conda.txt"`)
		assert.NotContains(t, script, "uv pip install")
	})

	t.Run("should generate a uv script exporting VIRTUAL_ENV", func(t *testing.T) {
		// given
		path := filepath.Join(t.TempDir(), "sync.sh")
		params := artifacts.ScriptParams{
			VenvPath:         ".venv",
			PackageManager:   "uv",
			RequirementsPath: "requirements_from_conda.txt",
		}

		// when
		err := artifacts.WriteSyncScript(path, params)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		script := string(content)
		assert.Contains(t, script, `export VIRTUAL_ENV="$VENV_PATH"`)
		assert.Contains(t, script, "command -v uv")
		assert.Contains(t, script, `uv pip install -r "requirements_from_conda.txt"`)
	})

	t.Run("should mark the script executable", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("file modes are not meaningful on Windows")
		}

		// given
		path := filepath.Join(t.TempDir(), "sync.sh")
		params := artifacts.ScriptParams{
			VenvPath:         ".venv",
			PackageManager:   "pip",
			RequirementsPath: "requirements.txt",
		}

		// when
		err := artifacts.WriteSyncScript(path, params)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(path)
		require.NoError(t, statErr)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	})
}
