package main

import (
	"math"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/objects"
)

// simulation produces synthetic sensor data. It is driven from the update
// loop and the shell, both of which hold the app lock.
type simulation struct {
	start time.Time
	now   func() time.Time

	heaterOn    bool
	heaterLevel int64

	indoorMin, indoorMax    float32
	outdoorMin, outdoorMax  float32
	indoorSeen, outdoorSeen bool
}

func newSimulation() *simulation {
	return &simulation{
		start:       time.Now(),
		now:         time.Now,
		heaterLevel: objects.DimmerMax,
	}
}

// phase returns a value cycling between -1 and 1 once per ten minutes.
func (s *simulation) phase() float64 {
	elapsed := s.now().Sub(s.start).Seconds()
	return math.Sin(2 * math.Pi * elapsed / 600)
}

func (s *simulation) indoor() (objects.TemperatureReading, bool) {
	v := float32(19 + 1.5*s.phase())
	if s.heaterOn {
		v += 3 * float32(s.heaterLevel) / float32(objects.DimmerMax)
	}
	s.indoorMin, s.indoorMax, s.indoorSeen = track(v, s.indoorMin, s.indoorMax, s.indoorSeen)
	return objects.TemperatureReading{Value: v, Min: s.indoorMin, Max: s.indoorMax}, true
}

func (s *simulation) outdoor() (objects.TemperatureReading, bool) {
	v := float32(8 + 6*s.phase())
	s.outdoorMin, s.outdoorMax, s.outdoorSeen = track(v, s.outdoorMin, s.outdoorMax, s.outdoorSeen)
	return objects.TemperatureReading{Value: v, Min: s.outdoorMin, Max: s.outdoorMax}, true
}

func (s *simulation) resetIndoor() {
	s.indoorSeen = false
}

func (s *simulation) resetOutdoor() {
	s.outdoorSeen = false
}

func (s *simulation) setHeater(state objects.PowerState) {
	s.heaterOn = state.On
	s.heaterLevel = state.Dimmer
}

// voltage reports a slowly discharging battery on source 1 and a fixed
// 12 V supply on source 0.
func (s *simulation) voltage(i int) (int64, bool) {
	switch i {
	case 0:
		return 12000, true
	case 1:
		drain := int64(s.now().Sub(s.start).Minutes()) * 5
		return max(3300, 4200-drain), true
	default:
		return 0, false
	}
}

func track(v, lo, hi float32, seen bool) (float32, float32, bool) {
	if !seen {
		return v, v, true
	}
	return min(lo, v), max(hi, v), true
}
