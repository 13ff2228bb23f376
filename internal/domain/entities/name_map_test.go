//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/condaops/envsync/internal/domain/entities"
)

func TestNameMapResolve(t *testing.T) {
	t.Parallel()

	t.Run("should map well-known import names to distribution names", func(t *testing.T) {
		// given
		nameMap := entities.NewNameMap()

		// when / then
		assert.Equal(t, "scikit-learn", nameMap.Resolve("sklearn"))
		assert.Equal(t, "opencv-python", nameMap.Resolve("cv2"))
		assert.Equal(t, "Pillow", nameMap.Resolve("PIL"))
	})

	t.Run("should fall back to the import name itself", func(t *testing.T) {
		// given
		nameMap := entities.NewNameMap()

		// when
		dist := nameMap.Resolve("numpy")

		// then
		assert.Equal(t, "numpy", dist)
	})
}

func TestNameMapWithExtras(t *testing.T) {
	t.Parallel()

	t.Run("should add new entries and override built-ins", func(t *testing.T) {
		// given
		nameMap := entities.NewNameMap().WithExtras(map[string]string{
			"internal_utils": "acme-utils",
			"yaml":           "ruamel.yaml",
		})

		// when / then
		assert.Equal(t, "acme-utils", nameMap.Resolve("internal_utils"))
		assert.Equal(t, "ruamel.yaml", nameMap.Resolve("yaml"))
	})

	t.Run("should not mutate the original map", func(t *testing.T) {
		// given
		original := entities.NewNameMap()

		// when
		_ = original.WithExtras(map[string]string{"yaml": "ruamel.yaml"})

		// then
		assert.Equal(t, "pyyaml", original.Resolve("yaml"))
	})
}

func TestNameMapResolveAll(t *testing.T) {
	t.Parallel()

	t.Run("should normalize, deduplicate and sort", func(t *testing.T) {
		// given
		nameMap := entities.NewNameMap()
		imports := []string{"sklearn", "PIL", "numpy", "scikit_learn"}

		// when
		dists := nameMap.ResolveAll(imports)

		// then
		assert.Equal(t, []string{"numpy", "pillow", "scikit-learn"}, dists)
	})
}
