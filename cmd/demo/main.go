package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/okanek/patternkit/broker"
	"github.com/okanek/patternkit/builder"
	"github.com/okanek/patternkit/command"
	"github.com/okanek/patternkit/factory"
	"github.com/okanek/patternkit/logger"
	"github.com/okanek/patternkit/observer"
	"github.com/okanek/patternkit/pool"
	"github.com/okanek/patternkit/prototype"
	"github.com/okanek/patternkit/strategy"
)

func main() {
	lg, err := logger.New(&logger.Config{
		ID:           "demo",
		Name:         "patternkit",
		ConsoleLevel: logger.InfoLevel,
		FileLevel:    logger.DebugLevel,
	}, logger.FileSystem{})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	var g errgroup.Group
	g.Go(func() error { return poolDemo(lg) })
	g.Go(func() error { return brokerDemo(lg) })
	g.Go(func() error { return checkoutDemo(lg) })

	if err := g.Wait(); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	assemblyDemo(lg)
	smartHomeDemo(lg)
}

func poolDemo(lg logger.Logger) error {
	connections := 0
	p := pool.New(func() string {
		connections++
		return fmt.Sprintf("conn-%d", connections)
	}, pool.WithLogger[string](lg))

	first := p.Acquire()
	second := p.Acquire()

	if err := p.Release(first); err != nil {
		return err
	}

	// With one free resource the next acquire reuses it instead of dialing.
	third := p.Acquire()
	lg.Info("Pool demo finished", logger.LogContext{
		"total":  p.Size(),
		"idle":   p.Idle(),
		"reused": third.ID() == first.ID(),
		"leased": second.ID(),
	})

	return p.Release(second)
}

func brokerDemo(lg logger.Logger) error {
	b := broker.New(broker.WithLogger(lg))
	defer b.Close()

	merged, cancel, err := b.SubscribeAll("weather", "alerts")
	if err != nil {
		return err
	}
	defer cancel()

	station := observer.NewStation(lg)
	display := observer.NewCurrentConditionsDisplay("lobby")
	station.Register(display)
	station.SetReading(observer.Reading{Temperature: 21.5, Humidity: 40, Pressure: 1013})

	if _, err := b.Publish("weather", station.Reading()); err != nil {
		return err
	}
	if _, err := b.Publish("alerts", "heat warning"); err != nil {
		return err
	}

	for i := 0; i < 2; i++ {
		msg := <-merged
		lg.Info("Received message", logger.LogContext{"topic": msg.Topic, "payload": msg.Payload})
	}

	return nil
}

func checkoutDemo(lg logger.Logger) error {
	checkout := strategy.NewCheckout(strategy.NewWallet(500), strategy.WithLogger(lg))

	receipt, err := checkout.Pay(context.Background(), 120)
	if err != nil {
		return err
	}

	lg.Info("Checkout demo finished", logger.LogContext{
		"method":      receipt.Method,
		"transaction": receipt.TransactionID,
	})

	return nil
}

func assemblyDemo(lg logger.Logger) {
	director := builder.NewDirector(builder.NewSportsBuilder())
	sports := director.Construct()

	director.SetBuilder(builder.NewSUVBuilder())
	suv := director.Construct()

	parts, err := factory.ForLine("sport")
	if err != nil {
		lg.Error("Unknown production line", logger.LogContext{"error": err.Error()})
		return
	}

	registry := prototype.NewRegistry()
	registry.Register("spec sheet", &prototype.Document{
		Title: "vehicle spec sheet",
		Tags:  []string{"template"},
		Meta:  map[string]string{"revision": "1"},
	})
	sheet, err := registry.Create("spec sheet")
	if err != nil {
		lg.Error("Missing prototype", logger.LogContext{"error": err.Error()})
		return
	}

	lg.Info("Assembly demo finished", logger.LogContext{
		"sports":       sports,
		"suv":          suv,
		"displacement": parts.Engine().Displacement(),
		"chassis":      parts.Chassis().Material(),
		"sheet":        sheet.(*prototype.Document).Title,
	})
}

func smartHomeDemo(lg logger.Logger) {
	light := &command.Light{}
	thermostat := &command.Thermostat{Target: 18}
	remote := command.NewRemote(lg)

	remote.Press(command.NewLightOn(light))
	remote.Press(command.NewSetTemperature(thermostat, 22.5))

	if err := remote.UndoLast(); err != nil {
		lg.Error("Undo failed", logger.LogContext{"error": err.Error()})
	}

	lg.Info("Smart home demo finished", logger.LogContext{
		"light_on": light.On,
		"target":   thermostat.Target,
	})
}
