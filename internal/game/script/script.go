// Package script runs level scripts against the engine host.
package script

import (
	"github.com/Faultbox/physics-scene/internal/game/level"
)

// Script is a level's lifecycle.
type Script interface {
	// Initialize is called once before the first Update.
	Initialize(host *level.Host) error

	// Update is called every frame.
	Update(dt float64) error

	// Exit is called when the script is replaced or the game stops.
	Exit() error
}

// Manager manages script transitions.
type Manager struct {
	host    *level.Host
	current Script
	next    Script
}

// NewManager creates a script manager bound to host.
func NewManager(host *level.Host) *Manager {
	return &Manager{host: host}
}

// Current returns the running script.
func (m *Manager) Current() Script {
	return m.current
}

// Change schedules a script change for the next Update.
func (m *Manager) Change(next Script) {
	m.next = next
}

// Update processes script changes and updates the current script.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		if err := m.Exit(); err != nil {
			return err
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Initialize(m.host); err != nil {
			m.current = nil
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Exit stops the current script, if any.
func (m *Manager) Exit() error {
	if m.current == nil {
		return nil
	}
	s := m.current
	m.current = nil
	return s.Exit()
}
