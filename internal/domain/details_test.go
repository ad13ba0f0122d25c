package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitsValidate(t *testing.T) {
	h := DefaultHabits()
	require.NoError(t, h.Validate())

	h.Smoking = "Sometimes"
	err := h.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	h = DefaultHabits()
	h.FoodPreference = "" // optional, empty is fine
	assert.NoError(t, h.Validate())

	h.FoodPreference = "Carnivore"
	assert.True(t, errors.Is(h.Validate(), ErrInvalidInput))
}

func TestHabitsScan_NullUsesDefaults(t *testing.T) {
	var h Habits
	require.NoError(t, h.Scan(nil))
	assert.Equal(t, DefaultHabits(), h)
}

func TestLocationsScan(t *testing.T) {
	var l Locations
	require.NoError(t, l.Scan([]byte(`[{"area":"Koktem","city":"Almaty"}]`)))
	require.Len(t, l, 1)
	assert.Equal(t, "Koktem", l[0].Area)

	require.NoError(t, l.Scan(nil))
	assert.Nil(t, l)
}
