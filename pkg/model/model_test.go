package model

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

func newTestInstance(t *testing.T, cfg Config) (*Client, *Object, *ObjectInstance) {
	t.Helper()
	c := NewClient(cfg)
	obj, err := c.CreateObject("3303")
	if err != nil {
		t.Fatalf("CreateObject failed: %v", err)
	}
	inst, err := obj.CreateInstance(0)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	return c, obj, inst
}

func TestClientObjects(t *testing.T) {
	c := NewClient(DefaultConfig())

	for _, name := range []string{"3303", "3", "10"} {
		if _, err := c.CreateObject(name); err != nil {
			t.Fatalf("CreateObject(%s) failed: %v", name, err)
		}
	}

	t.Run("Duplicate", func(t *testing.T) {
		if _, err := c.CreateObject("3"); err != ErrDuplicateObject {
			t.Errorf("expected ErrDuplicateObject, got %v", err)
		}
	})

	t.Run("Ordered", func(t *testing.T) {
		objs := c.Objects()
		if len(objs) != 3 {
			t.Fatalf("expected 3 objects, got %d", len(objs))
		}
		if objs[0].Name() != "3" || objs[1].Name() != "10" || objs[2].Name() != "3303" {
			t.Errorf("unexpected order: %s %s %s", objs[0].Name(), objs[1].Name(), objs[2].Name())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.DeleteObject("10"); err != nil {
			t.Fatalf("DeleteObject failed: %v", err)
		}
		if _, err := c.Object("10"); err != ErrObjectNotFound {
			t.Errorf("expected ErrObjectNotFound, got %v", err)
		}
		if err := c.DeleteObject("10"); err != ErrObjectNotFound {
			t.Errorf("expected ErrObjectNotFound on second delete, got %v", err)
		}
		if c.ObjectCount() != 2 {
			t.Errorf("expected 2 objects, got %d", c.ObjectCount())
		}
	})

	t.Run("Limit", func(t *testing.T) {
		limited := NewClient(Config{MaxObjects: 1})
		if _, err := limited.CreateObject("1"); err != nil {
			t.Fatal(err)
		}
		if _, err := limited.CreateObject("2"); err != ErrObjectLimit {
			t.Errorf("expected ErrObjectLimit, got %v", err)
		}
	})
}

func TestObjectInstances(t *testing.T) {
	c := NewClient(Config{MaxInstancesPerObject: 2})
	obj, _ := c.CreateObject("3303")

	first, err := obj.CreateInstance(1)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}

	again, err := obj.CreateInstance(1)
	if err != nil {
		t.Fatalf("CreateInstance reuse failed: %v", err)
	}
	if again != first {
		t.Error("expected existing instance to be reused")
	}

	if _, err := obj.CreateInstance(0); err != nil {
		t.Fatal(err)
	}
	if _, err := obj.CreateInstance(2); err != ErrInstanceLimit {
		t.Errorf("expected ErrInstanceLimit, got %v", err)
	}
	if _, err := obj.CreateInstance(-1); err != ErrInvalidInstance {
		t.Errorf("expected ErrInvalidInstance, got %v", err)
	}

	insts := obj.Instances()
	if len(insts) != 2 || insts[0].ID() != 0 || insts[1].ID() != 1 {
		t.Errorf("unexpected instances %v", insts)
	}

	if !obj.RemoveInstance(1) {
		t.Error("expected RemoveInstance to succeed")
	}
	if obj.RemoveInstance(1) {
		t.Error("expected second RemoveInstance to fail")
	}
	if obj.InstanceCount() != 1 {
		t.Errorf("expected 1 instance, got %d", obj.InstanceCount())
	}
}

func TestResourceCreation(t *testing.T) {
	_, _, inst := newTestInstance(t, Config{MaxResourcesPerInstance: 4})

	single := ResourceSpec{Name: "5700", TypeLabel: "temperature", Type: schema.TypeFloat, Observable: true}
	multi := ResourceSpec{Name: "5900", TypeLabel: "limit", Type: schema.TypeInteger, MultipleInstances: true}

	res, err := inst.CreateResource(single)
	if err != nil {
		t.Fatalf("CreateResource failed: %v", err)
	}
	if res.MultipleInstances() || res.Name() != "5700" || res.TypeLabel() != "temperature" {
		t.Errorf("unexpected resource %+v", res)
	}

	t.Run("Duplicate", func(t *testing.T) {
		if _, err := inst.CreateResource(single); err != ErrDuplicateResource {
			t.Errorf("expected ErrDuplicateResource, got %v", err)
		}
	})

	t.Run("InstanceWithoutBase", func(t *testing.T) {
		if _, err := inst.CreateResourceInstance(multi, 0); err != ErrResourceNotFound {
			t.Errorf("expected ErrResourceNotFound, got %v", err)
		}
	})

	t.Run("InstanceOnSingle", func(t *testing.T) {
		if _, err := inst.CreateResourceInstance(single, 0); err != ErrNotMultiInstance {
			t.Errorf("expected ErrNotMultiInstance, got %v", err)
		}
	})

	t.Run("MultiInstance", func(t *testing.T) {
		base, err := inst.CreateResource(multi)
		if err != nil {
			t.Fatalf("CreateResource(base) failed: %v", err)
		}
		if _, err := inst.CreateResourceInstance(multi, 1); err != nil {
			t.Fatalf("CreateResourceInstance(1) failed: %v", err)
		}
		if _, err := inst.CreateResourceInstance(multi, 0); err != nil {
			t.Fatalf("CreateResourceInstance(0) failed: %v", err)
		}
		if _, err := inst.CreateResourceInstance(multi, 0); err != ErrDuplicateResourceInstance {
			t.Errorf("expected ErrDuplicateResourceInstance, got %v", err)
		}

		ris := base.ResourceInstances()
		if len(ris) != 2 || ris[0].Index() != 0 || ris[1].Index() != 1 {
			t.Errorf("unexpected resource instances %v", ris)
		}
		if err := base.SetValue([]byte("1")); err != ErrMultipleInstance {
			t.Errorf("expected ErrMultipleInstance on base, got %v", err)
		}
	})

	t.Run("Limit", func(t *testing.T) {
		// 5700, 5900 and two instances of 5900 use up the limit of 4.
		if _, err := inst.CreateResource(ResourceSpec{Name: "5701", Type: schema.TypeString}); err != ErrResourceLimit {
			t.Errorf("expected ErrResourceLimit, got %v", err)
		}
	})

	if got := inst.ResourceCount(); got != 2 {
		t.Errorf("expected 2 resources, got %d", got)
	}
	if rs := inst.Resources(); rs[0].Name() != "5700" || rs[1].Name() != "5900" {
		t.Error("expected resources in creation order")
	}
}

func TestNodeValues(t *testing.T) {
	_, _, inst := newTestInstance(t, DefaultConfig())
	res, _ := inst.CreateResource(ResourceSpec{Name: "5601", Type: schema.TypeInteger})

	t.Run("Default", func(t *testing.T) {
		if res.ValueInt() != 0 || res.ValueString() != "" || len(res.Payload()) != 0 {
			t.Error("expected empty default value")
		}
	})

	t.Run("Int", func(t *testing.T) {
		if err := res.SetInt(-42); err != nil {
			t.Fatal(err)
		}
		if res.ValueInt() != -42 {
			t.Errorf("expected -42, got %d", res.ValueInt())
		}
		if res.ValueString() != "-42" {
			t.Errorf("expected text -42, got %q", res.ValueString())
		}
	})

	t.Run("Unparsable", func(t *testing.T) {
		_ = res.SetValue([]byte("abc"))
		if res.ValueInt() != 0 {
			t.Errorf("expected 0, got %d", res.ValueInt())
		}
	})

	t.Run("PayloadCopied", func(t *testing.T) {
		buf := []byte("hello")
		_ = res.SetValue(buf)
		buf[0] = 'j'
		if res.ValueString() != "hello" {
			t.Errorf("payload aliased caller buffer: %q", res.ValueString())
		}
	})

	t.Run("Dirty", func(t *testing.T) {
		res.ClearDirty()
		_ = res.SetValue([]byte("hello"))
		if res.IsDirty() {
			t.Error("unchanged value must not set dirty")
		}
		_ = res.SetValue([]byte("world"))
		if !res.IsDirty() {
			t.Error("expected dirty after change")
		}
	})
}

func TestServerAccess(t *testing.T) {
	_, _, inst := newTestInstance(t, DefaultConfig())
	res, _ := inst.CreateResource(ResourceSpec{Name: "5850", Type: schema.TypeBoolean})

	var updated []string
	res.SetValueUpdatedFunc(func(name string) { updated = append(updated, name) })

	t.Run("ReadOnly", func(t *testing.T) {
		res.SetOperation(schema.OpGet)
		if err := res.Write([]byte("1")); err != ErrNotWritable {
			t.Errorf("expected ErrNotWritable, got %v", err)
		}
		if len(updated) != 0 {
			t.Error("callback must not run on refused write")
		}
	})

	t.Run("Write", func(t *testing.T) {
		res.SetOperation(schema.OpGetPut)
		if err := res.Write([]byte("1")); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if len(updated) != 1 || updated[0] != "5850" {
			t.Errorf("expected callback with 5850, got %v", updated)
		}
		got, err := res.Read()
		if err != nil || string(got) != "1" {
			t.Errorf("Read = %q, %v", got, err)
		}
	})

	t.Run("WriteOnly", func(t *testing.T) {
		res.SetOperation(schema.OpPut)
		if _, err := res.Read(); err != ErrNotReadable {
			t.Errorf("expected ErrNotReadable, got %v", err)
		}
	})

	t.Run("Execute", func(t *testing.T) {
		res.SetOperation(schema.OpGet)
		if err := res.Execute(nil); err != ErrNotExecutable {
			t.Errorf("expected ErrNotExecutable, got %v", err)
		}

		res.SetOperation(schema.OpPost)
		if err := res.Execute(nil); err != ErrNoExecuteFunc {
			t.Errorf("expected ErrNoExecuteFunc, got %v", err)
		}

		var args []byte
		_ = res.SetExecuteFunc(func(a []byte) { args = a })
		if err := res.Execute([]byte("go")); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if string(args) != "go" {
			t.Errorf("expected args go, got %q", args)
		}
	})
}

func TestObservers(t *testing.T) {
	c, _, inst := newTestInstance(t, DefaultConfig())
	observed, _ := inst.CreateResource(ResourceSpec{Name: "5700", Type: schema.TypeFloat, Observable: true})
	plain, _ := inst.CreateResource(ResourceSpec{Name: "5701", Type: schema.TypeString})

	type change struct {
		path    string
		payload []byte
	}
	var changes []change
	unsubscribe := c.Subscribe(ObserverFunc(func(p Path, payload []byte) {
		changes = append(changes, change{p.String(), payload})
	}))

	_ = observed.SetValue([]byte("21.5"))
	_ = observed.SetValue([]byte("21.5"))
	_ = plain.SetValue([]byte("Cel"))

	if len(changes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(changes))
	}
	if changes[0].path != "3303/0/5700" || !bytes.Equal(changes[0].payload, []byte("21.5")) {
		t.Errorf("unexpected notification %+v", changes[0])
	}

	unsubscribe()
	_ = observed.SetValue([]byte("22.0"))
	if len(changes) != 1 {
		t.Errorf("expected no notification after unsubscribe, got %d", len(changes))
	}
}

func TestResolve(t *testing.T) {
	c, _, inst := newTestInstance(t, DefaultConfig())
	_, _ = inst.CreateResource(ResourceSpec{Name: "5700", Type: schema.TypeFloat})
	multi := ResourceSpec{Name: "5900", Type: schema.TypeInteger, MultipleInstances: true}
	_, _ = inst.CreateResource(multi)
	_, _ = inst.CreateResourceInstance(multi, 3)

	tests := []struct {
		path    Path
		want    string
		wantErr error
	}{
		{Path{"3303", 0, "5700", -1}, "3303/0/5700", nil},
		{Path{"3303", 0, "5900", 3}, "3303/0/5900/3", nil},
		{Path{"3303", 0, "5900", 0}, "", ErrResourceInstanceNotFound},
		{Path{"3303", 0, "1", -1}, "", ErrResourceNotFound},
		{Path{"3303", 9, "5700", -1}, "", ErrInstanceNotFound},
		{Path{"1", 0, "5700", -1}, "", ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path.String(), func(t *testing.T) {
			n, err := c.Resolve(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Resolve error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && n.Path().String() != tt.want {
				t.Errorf("Path = %s, want %s", n.Path(), tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Path{Object: "3", Instance: 0}, "3/0"},
		{Path{Object: "3", Instance: 0, Resource: "1", ResourceInstance: -1}, "3/0/1"},
		{Path{Object: "3", Instance: 2, Resource: "6", ResourceInstance: 1}, "3/2/6/1"},
	}
	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
