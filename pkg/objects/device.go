package objects

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Device object and resource names.
const (
	DeviceObjectID = "3"

	ResManufacturer = "0"
	ResModelNumber  = "1"
	ResSerialNumber = "2"
	ResReboot       = "4"
	ResPowerSources = "6"
	ResPowerVoltage = "7"
	ResCurrentTime  = "13"
)

// DevicePowerSources is the number of power source slots.
const DevicePowerSources = 2

// Power source codes of resource 6.
const (
	PowerDC       int64 = 0
	PowerBattery  int64 = 1
	PowerExternal int64 = 2
	PowerUSB      int64 = 5
	PowerAC       int64 = 6
)

var deviceResources = schema.ResourceTable{
	{Instance: schema.SingleInstance, Name: ResManufacturer, TypeLabel: "Manufacturer", Type: schema.TypeString, Operation: schema.OpGet},
	{Instance: schema.SingleInstance, Name: ResModelNumber, TypeLabel: "Model Number", Type: schema.TypeString, Operation: schema.OpGet},
	{Instance: schema.SingleInstance, Name: ResSerialNumber, TypeLabel: "Serial Number", Type: schema.TypeString, Operation: schema.OpGet},
	{Instance: 0, Name: ResPowerSources, TypeLabel: "Power Sources", Type: schema.TypeInteger, Operation: schema.OpGet},
	{Instance: 1, Name: ResPowerSources, TypeLabel: "Power Sources", Type: schema.TypeInteger, Operation: schema.OpGet},
	{Instance: 0, Name: ResPowerVoltage, TypeLabel: "Power Voltage", Type: schema.TypeInteger, Observable: true, Operation: schema.OpGet},
	{Instance: 1, Name: ResPowerVoltage, TypeLabel: "Power Voltage", Type: schema.TypeInteger, Observable: true, Operation: schema.OpGet},
	{Instance: schema.SingleInstance, Name: ResCurrentTime, TypeLabel: "Current Time", Type: schema.TypeTime, Observable: true, Operation: schema.OpGetPut},
	{Instance: schema.SingleInstance, Name: ResReboot, TypeLabel: "Reboot", Type: schema.TypeString, Operation: schema.OpPost},
}

// DeviceDefinition returns the definition of the single device instance.
func DeviceDefinition() *schema.ObjectDef {
	return &schema.ObjectDef{
		Instance:  schema.SingleInstance,
		Name:      DeviceObjectID,
		Resources: deviceResources,
	}
}

// DeviceConfig contains configuration for creating a Device.
type DeviceConfig struct {
	Manufacturer string
	ModelNumber  string
	SerialNumber string

	// PowerSources lists the power source codes, e.g. PowerBattery.
	PowerSources [DevicePowerSources]int64

	// Voltage returns the voltage in mV of power source i.
	Voltage func(i int) (int64, bool)

	// Clock returns the local time. Defaults to time.Now.
	Clock func() time.Time

	// Reboot is called when the server executes the reboot resource.
	Reboot func()

	Runtime helper.Runtime
	Logger  *slog.Logger
	Debug   bool
}

// Device is the LWM2M device object.
type Device struct {
	*helper.Helper

	voltage func(int) (int64, bool)
	clock   func() time.Time
	reboot  func()
	logger  *slog.Logger

	// offset is added to the clock after the server set the current time.
	offset time.Duration
}

// NewDevice creates and builds the device object.
func NewDevice(cfg DeviceConfig) (*Device, error) {
	d := &Device{
		voltage: cfg.Voltage,
		clock:   cfg.Clock,
		reboot:  cfg.Reboot,
		logger:  cfg.Logger,
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	d.Helper = helper.New(DeviceDefinition(), helper.Config{
		Runtime:      cfg.Runtime,
		ValueUpdated: d.valueUpdated,
		Logger:       cfg.Logger,
		Debug:        cfg.Debug,
	})

	if err := d.MakeObject(); err != nil {
		d.Close()
		return nil, fmt.Errorf("device: %w", err)
	}
	if err := d.init(cfg); err != nil {
		d.Close()
		return nil, fmt.Errorf("device: %w", err)
	}
	return d, nil
}

func (d *Device) init(cfg DeviceConfig) error {
	for name, v := range map[string]string{
		ResManufacturer: cfg.Manufacturer,
		ResModelNumber:  cfg.ModelNumber,
		ResSerialNumber: cfg.SerialNumber,
	} {
		if err := d.SetString(name, schema.SingleInstance, v); err != nil {
			return err
		}
	}
	for i, src := range cfg.PowerSources {
		if err := d.SetInt(ResPowerSources, i, src); err != nil {
			return err
		}
	}
	if err := d.SetExecuteCallback(ResReboot, d.onReboot); err != nil {
		return err
	}
	return d.SetTime(ResCurrentTime, schema.SingleInstance, d.Now().Unix())
}

// Now returns the device time: the local clock corrected by the last time
// the server set.
func (d *Device) Now() time.Time {
	return d.clock().Add(d.offset)
}

// UpdateObservableResources publishes the current time and the voltages.
func (d *Device) UpdateObservableResources() {
	if err := d.SetTime(ResCurrentTime, schema.SingleInstance, d.Now().Unix()); err != nil {
		d.warn("current time update failed", err)
	}

	if d.voltage == nil {
		return
	}
	for i := 0; i < DevicePowerSources; i++ {
		mv, ok := d.voltage(i)
		if !ok {
			continue
		}
		if err := d.SetInt(ResPowerVoltage, i, mv); err != nil {
			d.warn("voltage update failed", err)
		}
	}
}

func (d *Device) valueUpdated(name string) {
	if name != ResCurrentTime {
		return
	}
	sec, err := d.GetTime(ResCurrentTime, schema.SingleInstance)
	if err != nil {
		d.warn("reading current time failed", err)
		return
	}
	d.offset = time.Unix(sec, 0).Sub(d.clock())
}

func (d *Device) onReboot([]byte) {
	if d.reboot != nil {
		d.reboot()
	}
}

func (d *Device) warn(msg string, err error) {
	if d.logger != nil {
		d.logger.Warn(msg, "object", DeviceObjectID, "error", err)
	}
}
