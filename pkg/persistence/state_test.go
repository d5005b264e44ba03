package persistence

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// buildTree creates 3303/0 with a float and 3/0 with a multi-instance integer.
func buildTree(t *testing.T) *model.Client {
	t.Helper()

	c := model.NewClient(model.DefaultConfig())

	temp, err := c.CreateObject("3303")
	if err != nil {
		t.Fatalf("CreateObject() error = %v", err)
	}
	ti, err := temp.CreateInstance(0)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	if _, err := ti.CreateResource(model.ResourceSpec{Name: "5700", Type: schema.TypeFloat, Observable: true}); err != nil {
		t.Fatalf("CreateResource() error = %v", err)
	}
	if _, err := ti.CreateResource(model.ResourceSpec{Name: "5605", Type: schema.TypeString}); err != nil {
		t.Fatalf("CreateResource() error = %v", err)
	}

	dev, err := c.CreateObject("3")
	if err != nil {
		t.Fatalf("CreateObject() error = %v", err)
	}
	di, err := dev.CreateInstance(0)
	if err != nil {
		t.Fatalf("CreateInstance() error = %v", err)
	}
	spec := model.ResourceSpec{Name: "6", Type: schema.TypeInteger, MultipleInstances: true}
	if _, err := di.CreateResource(spec); err != nil {
		t.Fatalf("CreateResource() error = %v", err)
	}
	for _, idx := range []int{0, 1} {
		if _, err := di.CreateResourceInstance(spec, idx); err != nil {
			t.Fatalf("CreateResourceInstance() error = %v", err)
		}
	}
	return c
}

func resolve(t *testing.T, c *model.Client, obj, res string, ri int) model.Node {
	t.Helper()
	n, err := c.Resolve(model.Path{Object: obj, Instance: 0, Resource: res, ResourceInstance: ri})
	if err != nil {
		t.Fatalf("Resolve(%s/0/%s/%d) error = %v", obj, res, ri, err)
	}
	return n
}

func TestStateStore(t *testing.T) {
	t.Run("LoadNonExistent", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "nonexistent.cbor"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "sub", "state.cbor"))

		snap := &wire.Snapshot{Objects: []wire.ObjectSnapshot{{
			Name: "3303",
			Instances: []wire.InstanceSnapshot{{ID: 0, Resources: []wire.ResourceSnapshot{
				{Name: "5700", Type: schema.TypeFloat, Value: []byte("21.50")},
			}}},
		}}}
		if err := store.Save(snap); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if snap.Version != wire.SnapshotVersion {
			t.Errorf("Version = %d, want %d", snap.Version, wire.SnapshotVersion)
		}
		if snap.SavedAt.IsZero() {
			t.Error("SavedAt not set")
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if len(got.Objects) != 1 || got.Objects[0].Name != "3303" {
			t.Fatalf("Objects = %+v, want one 3303 object", got.Objects)
		}
		if v := string(got.Objects[0].Instances[0].Resources[0].Value); v != "21.50" {
			t.Errorf("Value = %q, want %q", v, "21.50")
		}
	})

	t.Run("KeepsSavedAt", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.cbor"))
		at := time.Unix(1700000000, 0)

		if err := store.Save(&wire.Snapshot{SavedAt: at}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !got.SavedAt.Equal(at) {
			t.Errorf("SavedAt = %v, want %v", got.SavedAt, at)
		}
	})

	t.Run("LoadCorrupt", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.cbor")
		if err := os.WriteFile(path, []byte("not cbor"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewStateStore(path).Load(); err == nil {
			t.Error("Load() of corrupt file should fail")
		}
	})

	t.Run("CapturedTreeRoundTrip", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.cbor"))

		src := buildTree(t)
		if err := resolve(t, src, "3303", "5700", -1).SetValue([]byte("21.50")); err != nil {
			t.Fatal(err)
		}
		if err := resolve(t, src, "3", "6", 1).SetInt(5); err != nil {
			t.Fatal(err)
		}

		snap := Capture(src)
		if err := store.Save(snap); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !wire.Equal(snap, got) {
			t.Errorf("Load() = %+v, want %+v", got, snap)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		store := NewStateStore(filepath.Join(t.TempDir(), "state.cbor"))

		if err := store.Save(&wire.Snapshot{}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}
		if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
			t.Errorf("state file still exists after Clear()")
		}

		// Clearing twice is fine.
		if err := store.Clear(); err != nil {
			t.Errorf("second Clear() error = %v", err)
		}
	})
}

func TestCaptureAndRestore(t *testing.T) {
	src := buildTree(t)
	if err := resolve(t, src, "3303", "5700", -1).SetValue([]byte("21.50")); err != nil {
		t.Fatal(err)
	}
	if err := resolve(t, src, "3", "6", 1).SetInt(5); err != nil {
		t.Fatal(err)
	}

	snap := Capture(src)

	// 5605 and 6/0 are empty and not captured.
	temp, ok := snap.Object("3303")
	if !ok {
		t.Fatal("3303 not captured")
	}
	if n := len(temp.Instances[0].Resources); n != 1 {
		t.Errorf("3303/0 resources = %d, want 1", n)
	}
	dev, ok := snap.Object("3")
	if !ok {
		t.Fatal("3 not captured")
	}
	if n := len(dev.Instances[0].Resources[0].Instances); n != 1 {
		t.Errorf("3/0/6 instances = %d, want 1", n)
	}

	store := NewStateStore(filepath.Join(t.TempDir(), "state.cbor"))
	if err := store.Save(snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	dst := buildTree(t)
	var changed []string
	unsubscribe := dst.Subscribe(model.ObserverFunc(func(p model.Path, _ []byte) {
		changed = append(changed, p.String())
	}))
	defer unsubscribe()

	n, err := Restore(dst, loaded)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if n != 2 {
		t.Errorf("Restore() = %d, want 2", n)
	}

	if v := resolve(t, dst, "3303", "5700", -1).ValueString(); v != "21.50" {
		t.Errorf("3303/0/5700 = %q, want %q", v, "21.50")
	}
	if v := resolve(t, dst, "3", "6", 1).ValueInt(); v != 5 {
		t.Errorf("3/0/6/1 = %d, want 5", v)
	}
	if len(changed) != 1 || changed[0] != "3303/0/5700" {
		t.Errorf("notifications = %v, want [3303/0/5700]", changed)
	}
}

func TestRestoreSkipsUnknown(t *testing.T) {
	dst := buildTree(t)

	snap := &wire.Snapshot{Version: wire.SnapshotVersion, Objects: []wire.ObjectSnapshot{
		{Name: "9999", Instances: []wire.InstanceSnapshot{{ID: 0}}},
		{Name: "3303", Instances: []wire.InstanceSnapshot{
			{ID: 4, Resources: []wire.ResourceSnapshot{{Name: "5700", Type: schema.TypeFloat, Value: []byte("1")}}},
			{ID: 0, Resources: []wire.ResourceSnapshot{
				{Name: "5701", Type: schema.TypeString, Value: []byte("Cel")},
				{Name: "5700", Type: schema.TypeInteger, Value: []byte("1")},
			}},
		}},
		{Name: "3", Instances: []wire.InstanceSnapshot{{ID: 0, Resources: []wire.ResourceSnapshot{
			{Name: "6", Type: schema.TypeInteger, Instances: []wire.ResourceInstanceSnapshot{{Index: 7, Value: []byte("1")}}},
		}}}},
	}}

	n, err := Restore(dst, snap)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Restore() = %d, want 0", n)
	}
	if v := resolve(t, dst, "3303", "5700", -1).ValueString(); v != "" {
		t.Errorf("3303/0/5700 = %q, want empty", v)
	}

	if n, err := Restore(dst, nil); n != 0 || err != nil {
		t.Errorf("Restore(nil) = %d, %v", n, err)
	}
}
