package observer

import (
	"sync"

	"github.com/okanek/patternkit/logger"
)

// Reading is one weather measurement pushed to observers.
type Reading struct {
	Temperature float64
	Humidity    float64
	Pressure    float64
}

// Observer receives every reading published by the station it registered
// with. ID distinguishes observers so they can be deregistered.
type Observer interface {
	ID() string
	Update(r Reading)
}

// Station is the subject. It keeps the latest reading and pushes every change
// to all registered observers.
type Station struct {
	mu        sync.Mutex
	observers map[string]Observer
	current   Reading
	logger    logger.Logger
}

func NewStation(l logger.Logger) *Station {
	if l == nil {
		l = logger.NewNop()
	}

	return &Station{
		observers: make(map[string]Observer),
		logger:    l,
	}
}

func (s *Station) Register(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers[o.ID()] = o
	s.logger.Debug("Registered observer", logger.LogContext{"id": o.ID()})
}

func (s *Station) Deregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.observers, id)
	s.logger.Debug("Deregistered observer", logger.LogContext{"id": id})
}

// SetReading stores the measurement and notifies every observer.
func (s *Station) SetReading(r Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = r
	for _, o := range s.observers {
		o.Update(r)
	}
}

func (s *Station) Reading() Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// CurrentConditionsDisplay mirrors the latest reading.
type CurrentConditionsDisplay struct {
	id      string
	Current Reading
}

func NewCurrentConditionsDisplay(id string) *CurrentConditionsDisplay {
	return &CurrentConditionsDisplay{id: id}
}

func (d *CurrentConditionsDisplay) ID() string {
	return d.id
}

func (d *CurrentConditionsDisplay) Update(r Reading) {
	d.Current = r
}

// StatisticsDisplay tracks minimum, maximum and mean temperature.
type StatisticsDisplay struct {
	id      string
	count   int
	sum     float64
	MinTemp float64
	MaxTemp float64
}

func NewStatisticsDisplay(id string) *StatisticsDisplay {
	return &StatisticsDisplay{id: id}
}

func (d *StatisticsDisplay) ID() string {
	return d.id
}

func (d *StatisticsDisplay) Update(r Reading) {
	if d.count == 0 || r.Temperature < d.MinTemp {
		d.MinTemp = r.Temperature
	}
	if d.count == 0 || r.Temperature > d.MaxTemp {
		d.MaxTemp = r.Temperature
	}
	d.count++
	d.sum += r.Temperature
}

func (d *StatisticsDisplay) MeanTemp() float64 {
	if d.count == 0 {
		return 0
	}

	return d.sum / float64(d.count)
}
