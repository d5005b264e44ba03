package observe

import (
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// CurrentValues collects the payloads of all observable resources below
// target, keyed by path. Multi-instance resources contribute one entry per
// resource instance.
func CurrentValues(c *model.Client, target Target) map[string][]byte {
	values := make(map[string][]byte)

	obj, err := c.Object(target.Object)
	if err != nil {
		return values
	}
	for _, inst := range obj.Instances() {
		if target.Instance >= 0 && inst.ID() != target.Instance {
			continue
		}
		for _, res := range inst.Resources() {
			if target.Resource != "" && res.Name() != target.Resource {
				continue
			}
			if !res.Observable() {
				continue
			}
			if !res.MultipleInstances() {
				values[res.Path().String()] = res.Payload()
				continue
			}
			for _, ri := range res.ResourceInstances() {
				values[ri.Path().String()] = ri.Payload()
			}
		}
	}
	return values
}

// parseKey parses a path key produced by model.Path.String.
func parseKey(key string) (model.Path, bool) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || len(parts) > 4 {
		return model.Path{}, false
	}
	inst, err := strconv.Atoi(parts[1])
	if err != nil {
		return model.Path{}, false
	}
	p := model.Path{
		Object:           parts[0],
		Instance:         inst,
		Resource:         parts[2],
		ResourceInstance: -1,
	}
	if len(parts) == 4 {
		ri, err := strconv.Atoi(parts[3])
		if err != nil {
			return model.Path{}, false
		}
		p.ResourceInstance = ri
	}
	return p, true
}
