package observer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okanek/patternkit/logger"
)

func TestStationNotifiesObservers(t *testing.T) {
	station := NewStation(logger.NewMockLogger(t))
	display := NewCurrentConditionsDisplay("living room")
	stats := NewStatisticsDisplay("stats")

	station.Register(display)
	station.Register(stats)

	reading := Reading{Temperature: 21.5, Humidity: 40, Pressure: 1013}
	station.SetReading(reading)

	assert.Equal(t, reading, display.Current, "display should mirror the reading")
	assert.Equal(t, reading, station.Reading(), "station should keep the latest reading")
	assert.Equal(t, 21.5, stats.MinTemp, "first reading sets the minimum")
	assert.Equal(t, 21.5, stats.MaxTemp, "first reading sets the maximum")
}

func TestStationDeregister(t *testing.T) {
	station := NewStation(nil)
	display := NewCurrentConditionsDisplay("hallway")

	station.Register(display)
	station.SetReading(Reading{Temperature: 18})

	station.Deregister(display.ID())
	station.SetReading(Reading{Temperature: 30})

	assert.Equal(t, float64(18), display.Current.Temperature,
		"a deregistered observer must not see new readings")
}

func TestStatisticsDisplay(t *testing.T) {
	station := NewStation(nil)
	stats := NewStatisticsDisplay("stats")
	station.Register(stats)

	for _, temp := range []float64{10, 20, 30} {
		station.SetReading(Reading{Temperature: temp})
	}

	assert.Equal(t, float64(10), stats.MinTemp, "minimum should track the lowest reading")
	assert.Equal(t, float64(30), stats.MaxTemp, "maximum should track the highest reading")
	assert.Equal(t, float64(20), stats.MeanTemp(), "mean should average all readings")
}

func TestStatisticsDisplayEmpty(t *testing.T) {
	stats := NewStatisticsDisplay("stats")

	assert.Equal(t, float64(0), stats.MeanTemp(), "mean of no readings should be zero")
}
