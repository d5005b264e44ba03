package inspect

import (
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/objects"
	"github.com/mash-protocol/lwm2m-go/pkg/registry"
)

// Name tables for resolving human-readable names to IDs.
var (
	objectNames = map[string]string{
		"device":      objects.DeviceObjectID,
		"temperature": objects.TemperatureObjectID,
		"power":       objects.PowerControlObjectID,
	}

	resourceNames = map[string]map[string]string{
		objects.DeviceObjectID: {
			"manufacturer": objects.ResManufacturer,
			"model":        objects.ResModelNumber,
			"serial":       objects.ResSerialNumber,
			"reboot":       objects.ResReboot,
			"sources":      objects.ResPowerSources,
			"voltage":      objects.ResPowerVoltage,
			"time":         objects.ResCurrentTime,
		},
		objects.TemperatureObjectID: {
			"value": objects.ResSensorValue,
			"units": objects.ResSensorUnits,
			"min":   objects.ResMinMeasured,
			"max":   objects.ResMaxMeasured,
			"reset": objects.ResResetMinMax,
		},
		objects.PowerControlObjectID: {
			"on":     objects.ResOnOff,
			"dimmer": objects.ResDimmer,
			"app":    objects.ResApplicationType,
		},
	}
)

// ResolveObjectName resolves an object name to its ID (case-insensitive).
func ResolveObjectName(name string) (string, bool) {
	id, ok := objectNames[strings.ToLower(name)]
	return id, ok
}

// ResolveResourceName resolves a resource name to its ID for a given object (case-insensitive).
func ResolveResourceName(objectID, name string) (string, bool) {
	names, ok := resourceNames[objectID]
	if !ok {
		return "", false
	}
	id, ok := names[strings.ToLower(name)]
	return id, ok
}

// GetObjectName returns the display name of an object, or "" if unknown.
// Objects of the embedded registry are known by their catalogue name.
func GetObjectName(objectID string) string {
	for name, id := range objectNames {
		if id == objectID {
			return name
		}
	}
	if id, err := parseUint16(objectID); err == nil {
		if reg, err := registry.Default(); err == nil {
			if e, ok := reg.Get(id); ok {
				return e.Name
			}
		}
	}
	return ""
}

// GetResourceName returns the short name of a resource, or "" if unknown.
func GetResourceName(objectID, resourceID string) string {
	for name, id := range resourceNames[objectID] {
		if id == resourceID {
			return name
		}
	}
	return ""
}
