package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

func TestDefault(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	assert.Equal(t, []uint16{3300, 3311, 3333, 3342}, reg.IDs())

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, reg, again)
}

func TestEmbeddedDefinitions(t *testing.T) {
	reg := New()
	require.NoError(t, reg.LoadEmbedded())

	e, ok := reg.Get(3300)
	require.True(t, ok)
	assert.Equal(t, "Generic Sensor", e.Name)
	assert.NotEmpty(t, e.Description)

	def := e.Definition(schema.SingleInstance)
	assert.Equal(t, "3300", def.Name)
	assert.Equal(t, 6, def.Len())

	value, ok := def.Lookup("5700", schema.SingleInstance)
	require.True(t, ok)
	assert.Equal(t, schema.TypeFloat, value.Type)
	assert.Equal(t, "%.2f", value.Format)
	assert.True(t, value.Observable)

	reset, ok := def.Lookup("5605", schema.SingleInstance)
	require.True(t, ok)
	assert.True(t, reset.Operation.CanExecute())

	tm, ok := reg.Get(3333)
	require.True(t, ok)
	current, ok := tm.Definition(0).Lookup("5506", schema.SingleInstance)
	require.True(t, ok)
	assert.Equal(t, schema.TypeTime, current.Type)
}

func TestDefinitionCopies(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	e, _ := reg.Get(3311)

	a := e.Definition(0)
	b := e.Definition(1)
	assert.Equal(t, 0, a.Instance)
	assert.Equal(t, 1, b.Instance)

	a.Resources[0].Name = "9"
	assert.Equal(t, "5850", b.Resources[0].Name)
	assert.Equal(t, "5850", e.Definition(2).Resources[0].Name)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	custom := []byte(`
id: 32769
name: Pump
resources:
  - id: 1
    label: Speed
    type: integer
    operation: GET_PUT
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pump.yaml"), custom, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	reg := New()
	require.NoError(t, reg.LoadEmbedded())
	require.NoError(t, reg.LoadDir(dir))
	assert.Equal(t, 5, reg.Len())

	e, ok := reg.Get(32769)
	require.True(t, ok)
	assert.Equal(t, "Pump", e.Name)
}

func TestLoadDirErrors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		dir := t.TempDir()
		data := []byte("id: 3300\nresources:\n  - id: 1\n    type: integer\n    operation: GET\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "dup.yaml"), data, 0644))

		reg := New()
		require.NoError(t, reg.LoadEmbedded())
		assert.ErrorIs(t, reg.LoadDir(dir), ErrDuplicateObject)
	})

	t.Run("invalid type", func(t *testing.T) {
		reg := New()
		err := reg.Parse([]byte("id: 1\nresources:\n  - id: 1\n    type: decimal\n    operation: GET\n"))
		assert.ErrorIs(t, err, schema.ErrUnknownType)
	})

	t.Run("missing dir", func(t *testing.T) {
		assert.Error(t, New().LoadDir(filepath.Join(t.TempDir(), "missing")))
	})
}
