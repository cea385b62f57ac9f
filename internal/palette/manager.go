package palette

import "sync"

// Manager coordinates access to the active Palette. It implements
// colorutil.NameResolver so a converter built on it follows palette swaps.
type Manager struct {
	mu      sync.RWMutex
	palette Palette
}

// NewManager allocates a Manager with the provided palette.
func NewManager(p Palette) *Manager {
	return &Manager{palette: p.clone()}
}

// SetPalette replaces the managed palette.
func (m *Manager) SetPalette(p Palette) {
	m.mu.Lock()
	m.palette = p.clone()
	m.mu.Unlock()
}

// Palette returns a copy of the managed palette.
func (m *Manager) Palette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.clone()
}

// Resolve implements colorutil.NameResolver against the managed palette.
func (m *Manager) Resolve(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.Resolve(name)
}

// Scheme returns a scheme from the managed palette.
func (m *Manager) Scheme(key SchemeKey) ColorScheme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette.Scheme(key)
}
