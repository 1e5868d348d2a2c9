package command

import (
	"errors"

	"github.com/okanek/patternkit/logger"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// Command is one reversible action against a smart-home device.
type Command interface {
	Name() string
	Execute()
	Undo()
}

// Light is a dimmable lamp receiver.
type Light struct {
	On         bool
	Brightness int
}

type lightOn struct {
	light          *Light
	prevOn         bool
	prevBrightness int
}

// NewLightOn turns the light on at full brightness.
func NewLightOn(l *Light) Command {
	return &lightOn{light: l}
}

func (c *lightOn) Name() string {
	return "light on"
}

func (c *lightOn) Execute() {
	c.prevOn = c.light.On
	c.prevBrightness = c.light.Brightness
	c.light.On = true
	c.light.Brightness = 100
}

func (c *lightOn) Undo() {
	c.light.On = c.prevOn
	c.light.Brightness = c.prevBrightness
}

type lightOff struct {
	light  *Light
	prevOn bool
}

func NewLightOff(l *Light) Command {
	return &lightOff{light: l}
}

func (c *lightOff) Name() string {
	return "light off"
}

func (c *lightOff) Execute() {
	c.prevOn = c.light.On
	c.light.On = false
}

func (c *lightOff) Undo() {
	c.light.On = c.prevOn
}

// Thermostat is a heating receiver holding a target temperature.
type Thermostat struct {
	Target float64
}

type setTemperature struct {
	thermostat *Thermostat
	target     float64
	prev       float64
}

func NewSetTemperature(th *Thermostat, target float64) Command {
	return &setTemperature{thermostat: th, target: target}
}

func (c *setTemperature) Name() string {
	return "set temperature"
}

func (c *setTemperature) Execute() {
	c.prev = c.thermostat.Target
	c.thermostat.Target = c.target
}

func (c *setTemperature) Undo() {
	c.thermostat.Target = c.prev
}

// Remote is the invoker. It runs commands without knowing the devices behind
// them and keeps a history stack so the latest actions can be undone.
type Remote struct {
	logger  logger.Logger
	history []Command
}

func NewRemote(l logger.Logger) *Remote {
	if l == nil {
		l = logger.NewNop()
	}

	return &Remote{logger: l}
}

// Press executes the command and pushes it onto the history stack.
func (r *Remote) Press(c Command) {
	r.logger.Debug("Executing command", logger.LogContext{"command": c.Name()})
	c.Execute()
	r.history = append(r.history, c)
}

// UndoLast reverts the most recent command.
func (r *Remote) UndoLast() error {
	if len(r.history) == 0 {
		return ErrNothingToUndo
	}

	last := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	r.logger.Debug("Undoing command", logger.LogContext{"command": last.Name()})
	last.Undo()

	return nil
}

// HistoryLen reports how many commands can still be undone.
func (r *Remote) HistoryLen() int {
	return len(r.history)
}
