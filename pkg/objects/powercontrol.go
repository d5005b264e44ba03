package objects

import (
	"fmt"
	"log/slog"

	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/schema"
)

// Power control object and resource names.
const (
	PowerControlObjectID = "3312"

	ResOnOff           = "5850"
	ResDimmer          = "5851"
	ResApplicationType = "5750"
)

// Dimmer bounds in percent.
const (
	DimmerMin = 0
	DimmerMax = 100
)

var powerControlResources = schema.ResourceTable{
	{Instance: schema.SingleInstance, Name: ResOnOff, TypeLabel: "On/Off", Type: schema.TypeBoolean, Operation: schema.OpGetPut},
	{Instance: schema.SingleInstance, Name: ResDimmer, TypeLabel: "Dimmer", Type: schema.TypeInteger, Operation: schema.OpGetPut},
	{Instance: schema.SingleInstance, Name: ResApplicationType, TypeLabel: "Application Type", Type: schema.TypeString, Operation: schema.OpGetPut},
}

// PowerControlDefinition returns the definition of power control instance id.
func PowerControlDefinition(id int) *schema.ObjectDef {
	return &schema.ObjectDef{
		Instance:  id,
		Name:      PowerControlObjectID,
		Resources: powerControlResources,
	}
}

// PowerState is the switch state of a power control.
type PowerState struct {
	On              bool
	Dimmer          int64
	ApplicationType string
}

// PowerControlConfig contains configuration for creating a PowerControl.
type PowerControlConfig struct {
	Instance        int
	ApplicationType string

	// OnChange is called with the new state after the server wrote a resource.
	OnChange func(PowerState)

	Runtime helper.Runtime
	Shared  *helper.ObjectHandle

	Logger *slog.Logger
	Debug  bool
}

// PowerControl is an IPSO power control instance.
type PowerControl struct {
	*helper.Helper

	onChange func(PowerState)
	logger   *slog.Logger
}

// NewPowerControl creates and builds a power control instance.
// The output starts off with the dimmer at DimmerMax.
func NewPowerControl(cfg PowerControlConfig) (*PowerControl, error) {
	p := &PowerControl{
		onChange: cfg.OnChange,
		logger:   cfg.Logger,
	}
	p.Helper = helper.New(PowerControlDefinition(cfg.Instance), helper.Config{
		Runtime:      cfg.Runtime,
		Shared:       cfg.Shared,
		ValueUpdated: p.valueUpdated,
		Logger:       cfg.Logger,
		Debug:        cfg.Debug,
	})

	if err := p.MakeObject(); err != nil {
		p.Close()
		return nil, fmt.Errorf("power control %d: %w", cfg.Instance, err)
	}
	if err := p.SetState(PowerState{Dimmer: DimmerMax, ApplicationType: cfg.ApplicationType}); err != nil {
		p.Close()
		return nil, fmt.Errorf("power control %d: %w", cfg.Instance, err)
	}
	return p, nil
}

// State returns the current state.
func (p *PowerControl) State() (PowerState, error) {
	var (
		s   PowerState
		err error
	)
	if s.On, err = p.GetBool(ResOnOff, schema.SingleInstance); err != nil {
		return s, err
	}
	if s.Dimmer, err = p.GetInt(ResDimmer, schema.SingleInstance); err != nil {
		return s, err
	}
	if s.ApplicationType, err = p.GetString(ResApplicationType, schema.SingleInstance); err != nil {
		return s, err
	}
	return s, nil
}

// SetState publishes a locally changed state. The dimmer is clamped.
func (p *PowerControl) SetState(s PowerState) error {
	if err := p.SetBool(ResOnOff, schema.SingleInstance, s.On); err != nil {
		return err
	}
	if err := p.SetInt(ResDimmer, schema.SingleInstance, clampDimmer(s.Dimmer)); err != nil {
		return err
	}
	return p.SetString(ResApplicationType, schema.SingleInstance, s.ApplicationType)
}

func (p *PowerControl) valueUpdated(name string) {
	if name == ResDimmer {
		v, err := p.GetInt(ResDimmer, schema.SingleInstance)
		if err == nil && v != clampDimmer(v) {
			err = p.SetInt(ResDimmer, schema.SingleInstance, clampDimmer(v))
		}
		if err != nil {
			p.warn("dimmer update failed", err)
		}
	}

	if p.onChange == nil {
		return
	}
	s, err := p.State()
	if err != nil {
		p.warn("reading power state failed", err)
		return
	}
	p.onChange(s)
}

func (p *PowerControl) warn(msg string, err error) {
	if p.logger != nil {
		p.logger.Warn(msg, "object", PowerControlObjectID, "error", err)
	}
}

func clampDimmer(v int64) int64 {
	return min(max(v, DimmerMin), DimmerMax)
}
