package wire

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		SavedAt: time.Unix(1700000000, 0),
		Objects: []ObjectSnapshot{
			{
				Name: "3303",
				Instances: []InstanceSnapshot{
					{ID: 0, Resources: []ResourceSnapshot{
						{Name: "5700", Type: schema.TypeFloat, Value: []byte("21.50")},
						{Name: "5701", Type: schema.TypeString, Value: []byte("Cel")},
					}},
					{ID: 1, Resources: []ResourceSnapshot{
						{Name: "5700", Type: schema.TypeFloat, Value: []byte("4.25")},
					}},
				},
			},
			{
				Name: "3",
				Instances: []InstanceSnapshot{
					{ID: 0, Resources: []ResourceSnapshot{
						{Name: "6", Type: schema.TypeInteger, Instances: []ResourceInstanceSnapshot{
							{Index: 0, Value: []byte("1")},
							{Index: 1, Value: []byte("5")},
						}},
					}},
				},
			},
		},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	in := testSnapshot()

	data, err := EncodeSnapshot(in)
	require.NoError(t, err)

	out, err := DecodeSnapshot(data)
	require.NoError(t, err)

	assert.Equal(t, in.Version, out.Version)
	assert.Equal(t, in.SavedAt.Unix(), out.SavedAt.Unix())
	require.Len(t, out.Objects, 2)
	assert.Equal(t, in.Objects, out.Objects)
}

func TestSnapshotDeterministic(t *testing.T) {
	a, err := EncodeSnapshot(testSnapshot())
	require.NoError(t, err)
	b, err := EncodeSnapshot(testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, Equal(testSnapshot(), testSnapshot()))
}

func TestSnapshotIntegerKeys(t *testing.T) {
	data, err := Marshal(ResourceInstanceSnapshot{Index: 3, Value: []byte("x")})
	require.NoError(t, err)

	var raw map[int]any
	require.NoError(t, Unmarshal(data, &raw))
	assert.Contains(t, raw, 1)
	assert.Contains(t, raw, 2)
}

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Snapshot)
		want   error
	}{
		{"valid", func(*Snapshot) {}, nil},
		{"version", func(s *Snapshot) { s.Version = 9 }, ErrVersion},
		{"empty object name", func(s *Snapshot) { s.Objects[0].Name = "" }, ErrEmptyName},
		{"duplicate object", func(s *Snapshot) { s.Objects[1].Name = "3303" }, ErrDuplicateName},
		{"empty resource name", func(s *Snapshot) {
			s.Objects[0].Instances[0].Resources[0].Name = ""
		}, ErrEmptyName},
		{"duplicate resource", func(s *Snapshot) {
			s.Objects[0].Instances[0].Resources[1].Name = "5700"
		}, ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSnapshot()
			tt.mutate(s)
			err := s.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestEncodeInvalidSnapshot(t *testing.T) {
	_, err := EncodeSnapshot(&Snapshot{Version: 0})
	assert.ErrorIs(t, err, ErrVersion)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte{0xff, 0x00})
	assert.Error(t, err)
}

func TestSnapshotObject(t *testing.T) {
	s := testSnapshot()
	o, ok := s.Object("3")
	require.True(t, ok)
	assert.Len(t, o.Instances, 1)

	_, ok = s.Object("9")
	assert.False(t, ok)
}
