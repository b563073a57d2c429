package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStateLifecycle(t *testing.T) {
	m := NewManager()

	assert.Equal(t, StateNone, m.GetState(1), "unknown user has no state")

	m.SetState(1, StateAddSlotTime)
	assert.Equal(t, StateAddSlotTime, m.GetState(1))
	assert.Equal(t, StateNone, m.GetState(2), "states are per user")

	m.SetState(1, StateNone)
	assert.Equal(t, StateNone, m.GetState(1))
}

func TestManagerData(t *testing.T) {
	m := NewManager()

	_, ok := m.GetData(1, KeySlotDay)
	assert.False(t, ok)

	m.SetData(1, KeySlotDay, "2")
	m.SetState(1, StateAddSlotTime)

	value, ok := m.GetData(1, KeySlotDay)
	assert.True(t, ok)
	assert.Equal(t, "2", value)

	// Clearing drops both the state and the scratch data.
	m.ClearState(1)
	assert.Equal(t, StateNone, m.GetState(1))
	_, ok = m.GetData(1, KeySlotDay)
	assert.False(t, ok)
}

func TestManagerSetStateNoneDropsData(t *testing.T) {
	m := NewManager()

	m.SetState(1, StateBookingLink)
	m.SetData(1, KeyMentorID, "7")

	m.SetState(1, StateNone)

	_, ok := m.GetData(1, KeyMentorID)
	assert.False(t, ok, "StateNone drops the whole entry")
}
