package objects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

func path(obj string, inst int, res string, ri int) model.Path {
	return model.Path{Object: obj, Instance: inst, Resource: res, ResourceInstance: ri}
}

func TestDefinitionsValid(t *testing.T) {
	for _, def := range []*schema.ObjectDef{
		TemperatureDefinition(0),
		TemperatureDefinition(1),
		PowerControlDefinition(0),
		DeviceDefinition(),
	} {
		assert.NoError(t, def.Validate(), "object %s", def.Name)
	}
}

func TestTemperatureSiblings(t *testing.T) {
	client := model.NewClient(model.DefaultConfig())

	indoorReading := TemperatureReading{Value: 21.456, Min: 19, Max: 23.5}
	indoor, err := NewTemperature(TemperatureConfig{
		Instance: 0,
		Runtime:  helper.NewModelRuntime(client),
		Source:   func() (TemperatureReading, bool) { return indoorReading, true },
	})
	require.NoError(t, err)

	outdoor, err := NewTemperature(TemperatureConfig{
		Instance: 1,
		Units:    "Far",
		Shared:   indoor.Object(),
		Source:   func() (TemperatureReading, bool) { return TemperatureReading{}, false },
	})
	require.NoError(t, err)

	obj, err := client.Object(TemperatureObjectID)
	require.NoError(t, err)
	assert.Equal(t, 2, obj.InstanceCount())

	indoor.UpdateObservableResources()
	outdoor.UpdateObservableResources()

	n, err := client.Resolve(path(TemperatureObjectID, 0, ResSensorValue, schema.SingleInstance))
	require.NoError(t, err)
	assert.Equal(t, "21.46", n.ValueString())

	v, err := indoor.Value()
	require.NoError(t, err)
	assert.InDelta(t, 21.456, v, 0.005)

	// No reading keeps the default.
	v, err = outdoor.Value()
	require.NoError(t, err)
	assert.Zero(t, v)

	units, err := outdoor.GetString(ResSensorUnits, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, "Far", units)
	units, err = indoor.GetString(ResSensorUnits, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, DefaultTempUnit, units)

	require.NoError(t, indoor.Close())
	assert.Equal(t, 1, client.ObjectCount())
	require.NoError(t, outdoor.Close())
	assert.Equal(t, 0, client.ObjectCount())
}

func TestTemperatureReset(t *testing.T) {
	client := model.NewClient(model.DefaultConfig())

	reading := TemperatureReading{Value: 20, Min: 10, Max: 30}
	temp, err := NewTemperature(TemperatureConfig{
		Runtime:     helper.NewModelRuntime(client),
		Source:      func() (TemperatureReading, bool) { return reading, true },
		ResetMinMax: func() { reading.Min, reading.Max = reading.Value, reading.Value },
	})
	require.NoError(t, err)
	temp.UpdateObservableResources()

	obj, err := client.Object(TemperatureObjectID)
	require.NoError(t, err)
	inst, _ := obj.Instance(0)
	reset, ok := inst.Resource(ResResetMinMax)
	require.True(t, ok)
	require.NoError(t, reset.Execute(nil))

	lo, err := temp.GetFloat(ResMinMeasured, schema.SingleInstance)
	require.NoError(t, err)
	hi, err := temp.GetFloat(ResMaxMeasured, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, float32(20), lo)
	assert.Equal(t, float32(20), hi)
}

func TestTemperatureObserved(t *testing.T) {
	client := model.NewClient(model.DefaultConfig())

	var changed []string
	unsubscribe := client.Subscribe(model.ObserverFunc(func(p model.Path, payload []byte) {
		changed = append(changed, p.String()+"="+string(payload))
	}))
	defer unsubscribe()

	temp, err := NewTemperature(TemperatureConfig{
		Runtime: helper.NewModelRuntime(client),
		Source: func() (TemperatureReading, bool) {
			return TemperatureReading{Value: 1.5, Min: 1.5, Max: 1.5}, true
		},
	})
	require.NoError(t, err)

	temp.UpdateObservableResources()
	temp.UpdateObservableResources()

	// Unchanged values are not reported twice; units are not observable.
	assert.Equal(t, []string{
		"3303/0/5700=1.50",
		"3303/0/5601=1.50",
		"3303/0/5602=1.50",
	}, changed)
}

func TestPowerControl(t *testing.T) {
	client := model.NewClient(model.DefaultConfig())

	var states []PowerState
	pc, err := NewPowerControl(PowerControlConfig{
		Runtime:         helper.NewModelRuntime(client),
		ApplicationType: "Heater",
		OnChange:        func(s PowerState) { states = append(states, s) },
	})
	require.NoError(t, err)

	s, err := pc.State()
	require.NoError(t, err)
	assert.Equal(t, PowerState{On: false, Dimmer: DimmerMax, ApplicationType: "Heater"}, s)

	onOff, err := client.Resolve(path(PowerControlObjectID, 0, ResOnOff, schema.SingleInstance))
	require.NoError(t, err)
	require.NoError(t, onOff.Write([]byte("1")))

	dimmer, err := client.Resolve(path(PowerControlObjectID, 0, ResDimmer, schema.SingleInstance))
	require.NoError(t, err)
	require.NoError(t, dimmer.Write([]byte("250")))

	require.Len(t, states, 2)
	assert.True(t, states[0].On)
	assert.Equal(t, int64(DimmerMax), states[0].Dimmer)
	assert.Equal(t, int64(DimmerMax), states[1].Dimmer, "dimmer is clamped")
	assert.Equal(t, "100", dimmer.ValueString())

	require.NoError(t, pc.SetState(PowerState{On: true, Dimmer: -5}))
	s, err = pc.State()
	require.NoError(t, err)
	assert.Equal(t, int64(DimmerMin), s.Dimmer)
	assert.Len(t, states, 2, "local changes do not call OnChange")
}

func TestDevice(t *testing.T) {
	client := model.NewClient(model.DefaultConfig())
	now := time.Unix(1700000000, 0)

	var rebooted bool
	dev, err := NewDevice(DeviceConfig{
		Manufacturer: "Acme",
		ModelNumber:  "LW-1",
		SerialNumber: "0001",
		PowerSources: [DevicePowerSources]int64{PowerBattery, PowerUSB},
		Voltage: func(i int) (int64, bool) {
			if i == 0 {
				return 3700, true
			}
			return 0, false
		},
		Clock:   func() time.Time { return now },
		Reboot:  func() { rebooted = true },
		Runtime: helper.NewModelRuntime(client),
	})
	require.NoError(t, err)

	m, err := dev.GetString(ResManufacturer, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, "Acme", m)

	src, err := dev.GetInt(ResPowerSources, 1)
	require.NoError(t, err)
	assert.Equal(t, PowerUSB, src)

	tm, err := dev.GetTime(ResCurrentTime, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, now.Unix(), tm)

	dev.UpdateObservableResources()
	mv, err := dev.GetInt(ResPowerVoltage, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3700), mv)
	mv, err = dev.GetInt(ResPowerVoltage, 1)
	require.NoError(t, err)
	assert.Zero(t, mv)

	// The server sets the clock one hour ahead.
	current, err := client.Resolve(path(DeviceObjectID, 0, ResCurrentTime, schema.SingleInstance))
	require.NoError(t, err)
	require.NoError(t, current.Write([]byte("1700003600")))
	assert.Equal(t, time.Hour, dev.Now().Sub(now))

	now = now.Add(time.Minute)
	dev.UpdateObservableResources()
	tm, err = dev.GetTime(ResCurrentTime, schema.SingleInstance)
	require.NoError(t, err)
	assert.Equal(t, int64(1700003660), tm)

	obj, err := client.Object(DeviceObjectID)
	require.NoError(t, err)
	inst, _ := obj.Instance(0)
	reboot, ok := inst.Resource(ResReboot)
	require.True(t, ok)
	require.NoError(t, reboot.Execute(nil))
	assert.True(t, rebooted)

	serial, err := client.Resolve(path(DeviceObjectID, 0, ResSerialNumber, schema.SingleInstance))
	require.NoError(t, err)
	assert.ErrorIs(t, serial.Write([]byte("x")), model.ErrNotWritable)
}

func TestUpdaters(t *testing.T) {
	var _ helper.Updater = (*Temperature)(nil)
	var _ helper.Updater = (*PowerControl)(nil)
	var _ helper.Updater = (*Device)(nil)
}
