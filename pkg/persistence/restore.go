package persistence

import (
	"errors"
	"fmt"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// Capture takes a snapshot of every non-empty value in the client.
func Capture(c *model.Client) *wire.Snapshot {
	snap := &wire.Snapshot{Version: wire.SnapshotVersion}

	for _, obj := range c.Objects() {
		objSnap := wire.ObjectSnapshot{Name: obj.Name()}
		for _, inst := range obj.Instances() {
			is := wire.InstanceSnapshot{ID: uint16(inst.ID())}
			for _, res := range inst.Resources() {
				if rs, ok := captureResource(res); ok {
					is.Resources = append(is.Resources, rs)
				}
			}
			if len(is.Resources) > 0 {
				objSnap.Instances = append(objSnap.Instances, is)
			}
		}
		if len(objSnap.Instances) > 0 {
			snap.Objects = append(snap.Objects, objSnap)
		}
	}
	return snap
}

func captureResource(res *model.Resource) (wire.ResourceSnapshot, bool) {
	rs := wire.ResourceSnapshot{Name: res.Name(), Type: res.Type()}

	if !res.MultipleInstances() {
		rs.Value = res.Payload()
		return rs, len(rs.Value) > 0
	}

	for _, ri := range res.ResourceInstances() {
		if p := ri.Payload(); len(p) > 0 {
			rs.Instances = append(rs.Instances, wire.ResourceInstanceSnapshot{
				Index: uint16(ri.Index()),
				Value: p,
			})
		}
	}
	return rs, len(rs.Instances) > 0
}

// Restore writes the saved payloads back into the client and returns the
// number of values restored. Entries without a matching object, instance,
// resource or resource instance of the same type are skipped. Values are
// stored directly, so no value-updated callbacks run.
func Restore(c *model.Client, snap *wire.Snapshot) (int, error) {
	if snap == nil {
		return 0, nil
	}

	var (
		restored int
		errs     []error
	)
	for _, objSnap := range snap.Objects {
		obj, err := c.Object(objSnap.Name)
		if err != nil {
			continue
		}
		for _, is := range objSnap.Instances {
			inst, ok := obj.Instance(int(is.ID))
			if !ok {
				continue
			}
			for _, rs := range is.Resources {
				n, err := restoreResource(inst, &rs)
				restored += n
				if err != nil {
					errs = append(errs, fmt.Errorf("%s/%d/%s: %w", objSnap.Name, is.ID, rs.Name, err))
				}
			}
		}
	}
	return restored, errors.Join(errs...)
}

func restoreResource(inst *model.ObjectInstance, rs *wire.ResourceSnapshot) (int, error) {
	res, ok := inst.Resource(rs.Name)
	if !ok || res.Type() != rs.Type {
		return 0, nil
	}

	if !res.MultipleInstances() {
		if len(rs.Value) == 0 {
			return 0, nil
		}
		if err := res.SetValue(rs.Value); err != nil {
			return 0, err
		}
		return 1, nil
	}

	var restored int
	for _, ris := range rs.Instances {
		ri, ok := res.ResourceInstance(int(ris.Index))
		if !ok {
			continue
		}
		if err := ri.SetValue(ris.Value); err != nil {
			return restored, err
		}
		restored++
	}
	return restored, nil
}
