package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanek/patternkit/logger"
)

func TestRemotePress(t *testing.T) {
	t.Run("light on", func(t *testing.T) {
		light := &Light{}
		remote := NewRemote(logger.NewMockLogger(t))

		remote.Press(NewLightOn(light))

		assert.True(t, light.On, "light should be on")
		assert.Equal(t, 100, light.Brightness, "light should be at full brightness")
		assert.Equal(t, 1, remote.HistoryLen(), "command should be recorded")
	})

	t.Run("set temperature", func(t *testing.T) {
		thermostat := &Thermostat{Target: 18}
		remote := NewRemote(nil)

		remote.Press(NewSetTemperature(thermostat, 22.5))

		assert.Equal(t, 22.5, thermostat.Target, "target should be updated")
	})
}

func TestRemoteUndo(t *testing.T) {
	t.Run("reverts in reverse order", func(t *testing.T) {
		light := &Light{}
		thermostat := &Thermostat{Target: 18}
		remote := NewRemote(nil)

		remote.Press(NewLightOn(light))
		remote.Press(NewSetTemperature(thermostat, 25))

		require.NoError(t, remote.UndoLast(), "first undo should succeed")
		assert.Equal(t, float64(18), thermostat.Target, "temperature change should be reverted first")
		assert.True(t, light.On, "light command is not undone yet")

		require.NoError(t, remote.UndoLast(), "second undo should succeed")
		assert.False(t, light.On, "light should be back off")
		assert.Equal(t, 0, remote.HistoryLen(), "history should be empty")
	})

	t.Run("undo restores previous device state", func(t *testing.T) {
		light := &Light{On: true, Brightness: 40}
		remote := NewRemote(nil)

		remote.Press(NewLightOff(light))
		assert.False(t, light.On, "light should be off")

		require.NoError(t, remote.UndoLast())
		assert.True(t, light.On, "light should be on again")
		assert.Equal(t, 40, light.Brightness, "brightness should survive the round trip")
	})

	t.Run("empty history", func(t *testing.T) {
		remote := NewRemote(nil)

		err := remote.UndoLast()

		assert.ErrorIs(t, err, ErrNothingToUndo, "empty history should be reported")
	})
}
