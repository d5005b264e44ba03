package objects

import (
	"fmt"
	"log/slog"

	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Temperature object and resource names.
const (
	TemperatureObjectID = "3303"

	ResSensorValue = "5700"
	ResSensorUnits = "5701"
	ResMinMeasured = "5601"
	ResMaxMeasured = "5602"
	ResResetMinMax = "5605"
)

// DefaultTempUnit is the unit reported when none is configured.
const DefaultTempUnit = "Cel"

var temperatureResources = schema.ResourceTable{
	{Instance: schema.SingleInstance, Name: ResSensorValue, TypeLabel: "Sensor Value", Type: schema.TypeFloat, Observable: true, Operation: schema.OpGet, Format: "%.2f"},
	{Instance: schema.SingleInstance, Name: ResMinMeasured, TypeLabel: "Min Measured Value", Type: schema.TypeFloat, Observable: true, Operation: schema.OpGet, Format: "%.2f"},
	{Instance: schema.SingleInstance, Name: ResMaxMeasured, TypeLabel: "Max Measured Value", Type: schema.TypeFloat, Observable: true, Operation: schema.OpGet, Format: "%.2f"},
	{Instance: schema.SingleInstance, Name: ResSensorUnits, TypeLabel: "Sensor Units", Type: schema.TypeString, Operation: schema.OpGet},
	{Instance: schema.SingleInstance, Name: ResResetMinMax, TypeLabel: "Reset Min Max", Type: schema.TypeString, Operation: schema.OpPost},
}

// TemperatureDefinition returns the definition of temperature instance id.
func TemperatureDefinition(id int) *schema.ObjectDef {
	return &schema.ObjectDef{
		Instance:  id,
		Name:      TemperatureObjectID,
		Resources: temperatureResources,
	}
}

// TemperatureReading is one sample of a temperature sensor.
type TemperatureReading struct {
	Value float32
	Min   float32
	Max   float32
}

// TemperatureSource returns the current reading. It returns false if no
// reading is available.
type TemperatureSource func() (TemperatureReading, bool)

// TemperatureConfig contains configuration for creating a Temperature.
type TemperatureConfig struct {
	// Instance is the object instance ID.
	Instance int

	// Units is the sensor unit, DefaultTempUnit if empty.
	Units string

	// Source provides readings for UpdateObservableResources.
	Source TemperatureSource

	// ResetMinMax is called when the server executes the reset resource.
	ResetMinMax func()

	// Runtime creates the object. Not needed when Shared is set.
	Runtime helper.Runtime

	// Shared is the object of a sibling temperature instance.
	Shared *helper.ObjectHandle

	Logger *slog.Logger
	Debug  bool
}

// Temperature is an IPSO temperature sensor instance.
type Temperature struct {
	*helper.Helper

	source TemperatureSource
	reset  func()
	logger *slog.Logger
}

// NewTemperature creates and builds a temperature instance.
func NewTemperature(cfg TemperatureConfig) (*Temperature, error) {
	t := &Temperature{
		source: cfg.Source,
		reset:  cfg.ResetMinMax,
		logger: cfg.Logger,
	}
	t.Helper = helper.New(TemperatureDefinition(cfg.Instance), helper.Config{
		Runtime: cfg.Runtime,
		Shared:  cfg.Shared,
		Logger:  cfg.Logger,
		Debug:   cfg.Debug,
	})

	if err := t.MakeObject(); err != nil {
		t.Close()
		return nil, fmt.Errorf("temperature %d: %w", cfg.Instance, err)
	}

	units := cfg.Units
	if units == "" {
		units = DefaultTempUnit
	}
	if err := t.SetString(ResSensorUnits, schema.SingleInstance, units); err != nil {
		t.Close()
		return nil, fmt.Errorf("temperature %d: %w", cfg.Instance, err)
	}
	if err := t.SetExecuteCallback(ResResetMinMax, t.onReset); err != nil {
		t.Close()
		return nil, fmt.Errorf("temperature %d: %w", cfg.Instance, err)
	}
	return t, nil
}

// Value returns the last published sensor value.
func (t *Temperature) Value() (float32, error) {
	return t.GetFloat(ResSensorValue, schema.SingleInstance)
}

// UpdateObservableResources publishes a fresh reading from the source.
func (t *Temperature) UpdateObservableResources() {
	if t.source == nil {
		return
	}
	r, ok := t.source()
	if !ok {
		return
	}

	for _, v := range []struct {
		name  string
		value float32
	}{
		{ResSensorValue, r.Value},
		{ResMinMeasured, r.Min},
		{ResMaxMeasured, r.Max},
	} {
		if err := t.SetFloat(v.name, schema.SingleInstance, v.value); err != nil && t.logger != nil {
			t.logger.Warn("temperature update failed", "resource", v.name, "error", err)
		}
	}
}

func (t *Temperature) onReset([]byte) {
	if t.reset != nil {
		t.reset()
	}
	t.UpdateObservableResources()
}
