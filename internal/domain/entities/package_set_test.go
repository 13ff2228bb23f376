//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/condaops/envsync/internal/domain/entities"
)

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	t.Run("should lowercase and fold underscores to hyphens", func(t *testing.T) {
		// given
		variants := []string{"Typing_Extensions", "typing_extensions", "TYPING-EXTENSIONS"}

		// when / then
		for _, variant := range variants {
			assert.Equal(t, "typing-extensions", entities.NormalizeName(variant))
		}
	})

	t.Run("should leave already-normalized names unchanged", func(t *testing.T) {
		// given
		name := "scikit-learn"

		// when
		normalized := entities.NormalizeName(name)

		// then
		assert.Equal(t, name, normalized)
	})
}

func TestPackageSetLookup(t *testing.T) {
	t.Parallel()

	t.Run("should find packages regardless of name style", func(t *testing.T) {
		// given
		set := entities.NewPackageSet(map[string]string{"Typing_Extensions": "4.9.0"})

		// when
		version, ok := set.Lookup("typing-extensions")

		// then
		assert.True(t, ok)
		assert.Equal(t, "4.9.0", version)
	})

	t.Run("should report absent packages", func(t *testing.T) {
		// given
		set := entities.NewPackageSet(map[string]string{"numpy": "1.26.0"})

		// when
		_, ok := set.Lookup("pandas")

		// then
		assert.False(t, ok)
	})

	t.Run("should normalize names on Add", func(t *testing.T) {
		// given
		set := entities.NewPackageSet(nil)

		// when
		set.Add("PyYAML", "6.0.1")

		// then
		version, ok := set.Lookup("pyyaml")
		assert.True(t, ok)
		assert.Equal(t, "6.0.1", version)
	})
}
