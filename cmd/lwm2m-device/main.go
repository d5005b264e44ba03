// Command lwm2m-device is a reference LWM2M client holding a set of
// simulated objects.
//
// The device builds a Device object, two temperature sensors sharing one
// object, a power control and any registry objects named with -objects.
// Values are refreshed periodically and the resource tree is persisted
// between runs.
//
// Usage:
//
//	lwm2m-device [flags]
//
// Flags:
//
//	-endpoint string          Client endpoint name (default "urn:uuid:<random>")
//	-objects string           Registry object IDs to instantiate (default "3300,3342")
//	-defs string              Directory with additional YAML object definitions
//	-state string             State file path (empty disables persistence)
//	-log-level string         Log level: debug, info, warn, error (default "info")
//	-debug                    Enable builder and accessor trace output
//	-interactive              Start the interactive shell
//	-update-interval duration Observable refresh interval, 0 disables (default 5s)
//
// Examples:
//
//	# Start with default objects and an interactive shell
//	lwm2m-device -interactive
//
//	# Load extra definitions and keep state across restarts
//	lwm2m-device -defs ./defs -objects 3300,3311,3342 -state device.state
//
//	# Trace every resource creation and access
//	lwm2m-device -debug -log-level debug
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mash-protocol/lwm2m-go/cmd/lwm2m-device/interactive"
	"github.com/mash-protocol/lwm2m-go/pkg/helper"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/objects"
	"github.com/mash-protocol/lwm2m-go/pkg/observe"
	"github.com/mash-protocol/lwm2m-go/pkg/persistence"
	"github.com/mash-protocol/lwm2m-go/pkg/registry"
)

// Config holds the device configuration.
type Config struct {
	Endpoint       string
	Objects        string
	DefsDir        string
	StateFile      string
	LogLevel       string
	Debug          bool
	Interactive    bool
	UpdateInterval time.Duration

	// Device object settings
	Manufacturer string
	Model        string
	SerialNumber string
}

var config Config

var errNoState = errors.New("no state file configured")

func init() {
	flag.StringVar(&config.Endpoint, "endpoint", "", "Client endpoint name (random urn:uuid if empty)")
	flag.StringVar(&config.Objects, "objects", "3300,3342", "Comma separated registry object IDs to instantiate")
	flag.StringVar(&config.DefsDir, "defs", "", "Directory with additional YAML object definitions")
	flag.StringVar(&config.StateFile, "state", "", "State file path (empty disables persistence)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Debug, "debug", false, "Enable builder and accessor trace output")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start the interactive shell")
	flag.DurationVar(&config.UpdateInterval, "update-interval", 5*time.Second, "Observable refresh interval, 0 disables")

	flag.StringVar(&config.Manufacturer, "manufacturer", "LWM2M Reference", "Device manufacturer")
	flag.StringVar(&config.Model, "model", "Reference Sensor Node", "Device model number")
	flag.StringVar(&config.SerialNumber, "serial", "", "Device serial number (auto-generated if empty)")
}

// app owns the resource tree and the objects built on it.
// The embedded mutex serializes the update loop and the shell.
type app struct {
	sync.Mutex

	client   *model.Client
	observer *observe.Manager
	store    *persistence.StateStore
	logger   *slog.Logger
	updaters []helper.Updater
	closers  []func() error
}

// Client returns the resource tree.
func (a *app) Client() *model.Client {
	return a.client
}

// Observations returns the observation manager.
func (a *app) Observations() *observe.Manager {
	return a.observer
}

// Update refreshes all observable resources.
func (a *app) Update() {
	for _, u := range a.updaters {
		u.UpdateObservableResources()
	}
}

// Save writes the current tree to the state file.
func (a *app) Save() error {
	if a.store == nil {
		return errNoState
	}
	return a.store.Save(persistence.Capture(a.client))
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

func main() {
	flag.Parse()

	if err := validateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}
	applyDefaults()

	a := &app{}

	var (
		shell *interactive.Device
		out   io.Writer = os.Stderr
	)
	if config.Interactive {
		var err error
		shell, err = interactive.New(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to start shell: %v\n", err)
			os.Exit(1)
		}
		out = shell.Stderr()
	}

	logger := setupLogging(config.LogLevel, out)
	a.logger = logger
	a.client = model.NewClient(model.Config{Logger: logger})
	a.observer = observe.NewManager()
	a.observer.OnNotification(func(n observe.Notification) {
		logNotification(logger, n)
	})
	unsubscribe := a.client.Subscribe(a.observer)
	defer unsubscribe()

	logger.Info("LWM2M reference device",
		"endpoint", config.Endpoint,
		"serial", config.SerialNumber,
		"objects", config.Objects)

	if err := buildObjects(a); err != nil {
		logger.Error("failed to build objects", "error", err)
		a.close()
		os.Exit(1)
	}
	logger.Info("resource tree ready", "objects", a.client.ObjectCount())

	if config.StateFile != "" {
		a.store = persistence.NewStateStore(config.StateFile)
		restoreState(a)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if config.UpdateInterval > 0 {
		go runUpdates(ctx, a, config.UpdateInterval)
	}
	go runNotifications(ctx, a.observer)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if shell != nil {
		go shell.Run(ctx, cancel)
	}

	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig)
	case <-ctx.Done():
	}
	cancel()

	logger.Info("shutting down")

	a.Lock()
	if a.store != nil {
		if err := a.Save(); err != nil {
			logger.Error("failed to save state", "error", err)
		} else {
			logger.Info("state saved", "path", a.store.Path())
		}
	}
	a.close()
	a.Unlock()

	logger.Info("goodbye")
}

func setupLogging(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func validateConfig() error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", config.LogLevel)
	}
	if config.UpdateInterval < 0 {
		return fmt.Errorf("update interval must not be negative, got %s", config.UpdateInterval)
	}
	if _, err := parseObjectIDs(config.Objects); err != nil {
		return err
	}
	return nil
}

func applyDefaults() {
	if config.Endpoint == "" {
		config.Endpoint = "urn:uuid:" + uuid.NewString()
	}
	if config.SerialNumber == "" {
		config.SerialNumber = fmt.Sprintf("LW-%d", time.Now().Unix()%10000)
	}
}

func parseObjectIDs(s string) ([]uint16, error) {
	var ids []uint16
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid object ID %q", part)
		}
		ids = append(ids, uint16(id))
	}
	return ids, nil
}

// buildObjects creates the built-in objects and the requested registry
// objects on a.client.
func buildObjects(a *app) error {
	rt := helper.NewModelRuntime(a.client)
	sim := newSimulation()

	dev, err := objects.NewDevice(objects.DeviceConfig{
		Manufacturer: config.Manufacturer,
		ModelNumber:  config.Model,
		SerialNumber: config.SerialNumber,
		PowerSources: [objects.DevicePowerSources]int64{objects.PowerDC, objects.PowerBattery},
		Voltage:      sim.voltage,
		Reboot:       func() { a.logger.Info("reboot requested") },
		Runtime:      rt,
		Logger:       a.logger,
		Debug:        config.Debug,
	})
	if err != nil {
		return err
	}
	a.add(dev, dev.Close)

	indoor, err := objects.NewTemperature(objects.TemperatureConfig{
		Instance:    0,
		Source:      sim.indoor,
		ResetMinMax: sim.resetIndoor,
		Runtime:     rt,
		Logger:      a.logger,
		Debug:       config.Debug,
	})
	if err != nil {
		return err
	}
	a.add(indoor, indoor.Close)

	outdoor, err := objects.NewTemperature(objects.TemperatureConfig{
		Instance:    1,
		Source:      sim.outdoor,
		ResetMinMax: sim.resetOutdoor,
		Shared:      indoor.Object(),
		Logger:      a.logger,
		Debug:       config.Debug,
	})
	if err != nil {
		return err
	}
	a.add(outdoor, outdoor.Close)

	power, err := objects.NewPowerControl(objects.PowerControlConfig{
		Instance:        0,
		ApplicationType: "Heater",
		OnChange: func(s objects.PowerState) {
			a.logger.Info("power control changed", "on", s.On, "dimmer", s.Dimmer)
			sim.setHeater(s)
		},
		Runtime: rt,
		Logger:  a.logger,
		Debug:   config.Debug,
	})
	if err != nil {
		return err
	}
	a.add(power, power.Close)

	return buildRegistryObjects(a, rt)
}

func (a *app) add(u helper.Updater, closeFn func() error) {
	a.updaters = append(a.updaters, u)
	a.closers = append(a.closers, closeFn)
}

// buildRegistryObjects instantiates instance 0 of every object named by
// -objects. A partially built object is kept and reported.
func buildRegistryObjects(a *app, rt helper.Runtime) error {
	reg := registry.New()
	if err := reg.LoadEmbedded(); err != nil {
		return fmt.Errorf("embedded definitions: %w", err)
	}
	if config.DefsDir != "" {
		if err := reg.LoadDir(config.DefsDir); err != nil {
			return fmt.Errorf("definitions from %s: %w", config.DefsDir, err)
		}
	}

	ids, err := parseObjectIDs(config.Objects)
	if err != nil {
		return err
	}
	for _, id := range ids {
		entry, ok := reg.Get(id)
		if !ok {
			a.logger.Warn("unknown object, skipping", "object", id)
			continue
		}
		h := helper.New(entry.Definition(0), helper.Config{
			Runtime: rt,
			Logger:  a.logger,
			Debug:   config.Debug,
		})
		if err := h.MakeObject(); err != nil {
			if h.State() != helper.StateBuilt {
				if cerr := h.Close(); cerr != nil {
					a.logger.Warn("close failed", "object", id, "error", cerr)
				}
				return fmt.Errorf("%s (%d): %w", entry.Name, id, err)
			}
			a.logger.Warn("object partially built", "object", id, "error", err)
		}
		a.add(h, h.Close)
		a.logger.Debug("registry object built", "object", id, "name", entry.Name)
	}
	return nil
}

func restoreState(a *app) {
	snap, err := a.store.Load()
	if err != nil {
		a.logger.Warn("failed to load state", "path", a.store.Path(), "error", err)
		return
	}
	if snap == nil {
		return
	}
	n, err := persistence.Restore(a.client, snap)
	if err != nil {
		a.logger.Warn("state restored with errors", "values", n, "error", err)
		return
	}
	a.logger.Info("state restored", "values", n, "saved", snap.SavedAt.Format(time.RFC3339))
}

func runUpdates(ctx context.Context, a *app, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Lock()
			a.Update()
			a.Unlock()
		}
	}
}

func runNotifications(ctx context.Context, m *observe.Manager) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ProcessNotifications()
		}
	}
}

func logNotification(logger *slog.Logger, n observe.Notification) {
	kind := "change"
	switch {
	case n.IsPriming:
		kind = "priming"
	case n.IsHeartbeat:
		kind = "heartbeat"
	}

	paths := make([]string, 0, len(n.Values))
	for p := range n.Values {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	attrs := []any{"id", n.ObservationID, "target", n.Target.String(), "kind", kind}
	for _, p := range paths {
		attrs = append(attrs, p, string(n.Values[p]))
	}
	logger.Info("notify", attrs...)
}
