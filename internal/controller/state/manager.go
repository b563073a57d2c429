package state

import (
	"sync"
)

// Manager keeps per-user dialog state in memory, keyed by Telegram ID.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState gets the user's current dialog state.
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState sets the user's dialog state. Setting StateNone drops the
// entry along with its scratch data.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, telegramID)
		return
	}

	if _, exists := sm.states[telegramID]; !exists {
		sm.states[telegramID] = &UserData{
			State: state,
			Data:  make(map[string]string),
		}
	} else {
		sm.states[telegramID].State = state
	}
}

// GetData gets one scratch value for the user's current dialog.
func (sm *Manager) GetData(telegramID int64, key string) (string, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return "", false
}

// SetData sets one scratch value.
func (sm *Manager) SetData(telegramID int64, key, value string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[telegramID]; !exists {
		sm.states[telegramID] = &UserData{
			State: StateNone,
			Data:  make(map[string]string),
		}
	}
	sm.states[telegramID].Data[key] = value
}

// ClearState drops the user's dialog state and scratch data.
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}
