// Package interactive provides the interactive command-line interface
// for the LWM2M device.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chzyer/readline"

	"github.com/mash-protocol/lwm2m-go/pkg/inspect"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/observe"
)

// Host is the device the shell operates on. Every command runs with the
// host locked.
type Host interface {
	sync.Locker

	// Client returns the resource tree.
	Client() *model.Client

	// Update refreshes all observable resources.
	Update()

	// Save persists the resource tree.
	Save() error

	// Observations returns the observation manager of the client.
	Observations() *observe.Manager
}

// Device handles interactive mode for lwm2m-device.
type Device struct {
	host      Host
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	rl        *readline.Instance

	observed []uint32
}

// New creates a new interactive device handler. The host's client is
// looked up when Run starts, so it may be set up after New returns.
func New(host Host) (*Device, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lwm2m> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Device{
		host:      host,
		formatter: inspect.NewFormatter(),
		rl:        rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
func (d *Device) Stdout() io.Writer {
	return d.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (d *Device) Stderr() io.Writer {
	return d.rl.Stderr()
}

// Run starts the interactive command loop.
func (d *Device) Run(ctx context.Context, cancel context.CancelFunc) {
	defer d.rl.Close()

	d.inspector = inspect.NewInspector(d.host.Client())
	d.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := d.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(d.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" || cmd == "q" {
			fmt.Fprintln(d.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		d.host.Lock()
		d.dispatch(cmd, args)
		d.host.Unlock()
	}
}

func (d *Device) dispatch(cmd string, args []string) {
	switch cmd {
	case "help", "?":
		d.printHelp()

	case "ls", "inspect", "i":
		d.cmdList(args)

	case "read", "r":
		d.cmdRead(args)

	case "write", "w":
		d.cmdWrite(args)

	case "exec", "x":
		d.cmdExec(args)

	case "update", "u":
		d.host.Update()
		fmt.Fprintln(d.rl.Stdout(), "OK")

	case "save":
		if err := d.host.Save(); err != nil {
			fmt.Fprintf(d.rl.Stdout(), "Save failed: %v\n", err)
			return
		}
		fmt.Fprintln(d.rl.Stdout(), "OK")

	case "observe", "o":
		d.cmdObserve(args)

	case "cancel":
		d.cmdCancel(args)

	case "observations", "obs":
		d.cmdObservations()

	default:
		fmt.Fprintf(d.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
}

func (d *Device) printHelp() {
	fmt.Fprintln(d.rl.Stdout(), `
LWM2M Device Commands:
  Inspection:
    ls [path]          - Show the resource tree (or an object, instance or resource)
    read <path>        - Read a resource value
    write <path> <val> - Write a resource value as the server would
    exec <path> [args] - Execute a resource

  Device:
    update             - Refresh observable resources now
    save               - Save the resource tree to the state file
  Observation:
    observe <path> [pmin] [pmax] - Observe an object, instance or resource
    cancel <id>        - Cancel an observation
    observations       - List active observations

  General:
    help               - Show this help
    quit               - Exit device

  Path Format:
    object/instance/resource[/index] - e.g., 3303/0/5700 or 3/0/7/1
    Can use IDs or names: 3303/0/5700 or temperature/0/value`)
}

// cmdList handles the ls command.
func (d *Device) cmdList(args []string) {
	var path *inspect.Path
	if len(args) > 0 {
		p, err := inspect.ParsePath(args[0])
		if err != nil {
			fmt.Fprintf(d.rl.Stdout(), "Invalid path: %v\n", err)
			return
		}
		path = p
	}

	objs, err := d.inspector.Inspect(path)
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprint(d.rl.Stdout(), d.formatter.FormatTree(objs))
}

// cmdRead handles the read command.
func (d *Device) cmdRead(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.rl.Stdout(), "Usage: read <path>")
		fmt.Fprintln(d.rl.Stdout(), "  Example: read 3303/0/5700")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Invalid path: %v\n", err)
		return
	}

	// Without a resource instance index, a multi-instance resource is
	// read as a whole.
	if !path.IsPartial() && path.ResourceInstance < 0 {
		if res, ok := d.resourceInfo(path); ok && res.Multiple {
			for _, ri := range res.Instances {
				fmt.Fprintf(d.rl.Stdout(), "%s/%d = %s\n", path, ri.Index, d.formatter.FormatValue(res.Type, ri.Value))
			}
			return
		}
	}

	value, typ, err := d.inspector.Read(path)
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Error: %v\n", err)
		return
	}
	fmt.Fprintf(d.rl.Stdout(), "%s = %s\n", path, d.formatter.FormatValue(typ, value))
}

func (d *Device) resourceInfo(path *inspect.Path) (inspect.ResourceInfo, bool) {
	objs, err := d.inspector.Inspect(path)
	if err != nil || len(objs) == 0 || len(objs[0].Instances) == 0 || len(objs[0].Instances[0].Resources) == 0 {
		return inspect.ResourceInfo{}, false
	}
	return objs[0].Instances[0].Resources[0], true
}

// cmdWrite handles the write command.
func (d *Device) cmdWrite(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(d.rl.Stdout(), "Usage: write <path> <value>")
		fmt.Fprintln(d.rl.Stdout(), "  Example: write 3312/0/5850 on")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Invalid path: %v\n", err)
		return
	}

	value := strings.Trim(strings.Join(args[1:], " "), "\"'")
	if err := d.inspector.Write(path, value); err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Write failed: %v\n", err)
		return
	}

	fmt.Fprintln(d.rl.Stdout(), "OK")
}

// cmdExec handles the exec command.
func (d *Device) cmdExec(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.rl.Stdout(), "Usage: exec <path> [args]")
		fmt.Fprintln(d.rl.Stdout(), "  Example: exec 3303/0/5605")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Invalid path: %v\n", err)
		return
	}

	var payload []byte
	if len(args) > 1 {
		payload = []byte(strings.Join(args[1:], " "))
	}
	if err := d.inspector.Execute(path, payload); err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Execute failed: %v\n", err)
		return
	}

	fmt.Fprintln(d.rl.Stdout(), "OK")
}

// cmdObserve handles the observe command.
func (d *Device) cmdObserve(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.rl.Stdout(), "Usage: observe <path> [pmin] [pmax]")
		fmt.Fprintln(d.rl.Stdout(), "  Example: observe 3303/0 5s 60s")
		return
	}

	path, err := inspect.ParsePath(args[0])
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Invalid path: %v\n", err)
		return
	}

	pmin, pmax := observe.DefaultMinPeriod, observe.DefaultMaxPeriod
	if len(args) > 1 {
		if pmin, err = parsePeriod(args[1]); err != nil {
			fmt.Fprintf(d.rl.Stdout(), "Invalid pmin: %v\n", err)
			return
		}
	}
	if len(args) > 2 {
		if pmax, err = parsePeriod(args[2]); err != nil {
			fmt.Fprintf(d.rl.Stdout(), "Invalid pmax: %v\n", err)
			return
		}
	}

	target := observe.Target{Object: path.Object, Instance: path.Instance, Resource: path.Resource}
	if _, err := d.inspector.Inspect(path); err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Error: %v\n", err)
		return
	}

	m := d.host.Observations()
	id, err := m.Observe(target, pmin, pmax, observe.CurrentValues(d.host.Client(), target))
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Observe failed: %v\n", err)
		return
	}
	d.observed = append(d.observed, id)
	fmt.Fprintf(d.rl.Stdout(), "Observing %s (id %d, pmin %s, pmax %s)\n", target, id, pmin, pmax)
}

// cmdCancel handles the cancel command.
func (d *Device) cmdCancel(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(d.rl.Stdout(), "Usage: cancel <id>")
		return
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Invalid observation ID: %s\n", args[0])
		return
	}
	if err := d.host.Observations().Cancel(uint32(id)); err != nil {
		fmt.Fprintf(d.rl.Stdout(), "Cancel failed: %v\n", err)
		return
	}

	for i, v := range d.observed {
		if v == uint32(id) {
			d.observed = append(d.observed[:i], d.observed[i+1:]...)
			break
		}
	}
	fmt.Fprintln(d.rl.Stdout(), "OK")
}

// cmdObservations handles the observations command.
func (d *Device) cmdObservations() {
	m := d.host.Observations()
	active := d.observed[:0]
	for _, id := range d.observed {
		if _, err := m.Get(id); err == nil {
			active = append(active, id)
		}
	}
	d.observed = active

	if len(d.observed) == 0 {
		fmt.Fprintln(d.rl.Stdout(), "No active observations")
		return
	}

	fmt.Fprintf(d.rl.Stdout(), "\nActive Observations (%d):\n", len(d.observed))
	fmt.Fprintln(d.rl.Stdout(), "-------------------------------------------")
	for _, id := range d.observed {
		obs, err := m.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(d.rl.Stdout(), "  %3d  %-16s pmin %-6s pmax %-6s last %s ago\n",
			obs.ID, obs.Target, obs.MinPeriod, obs.MaxPeriod,
			obs.TimeSinceLastNotification().Truncate(time.Second))
	}
}

// parsePeriod accepts a duration like "5s" or a plain number of seconds.
func parsePeriod(s string) (time.Duration, error) {
	if secs, err := strconv.ParseUint(s, 10, 32); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(s)
}
