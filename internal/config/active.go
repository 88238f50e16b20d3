package config

import "sync"

// The CLI picks the settings file and preset once at startup; games read
// the resulting settings each time they reset.
var (
	activeMu     sync.RWMutex
	activePath   string
	activePreset Preset
	activeConfig *Config
)

// UseFile sets the custom settings path games load from. Empty means the
// default search order.
func UseFile(path string) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activePath = path
}

// UsePreset forces a preset on top of whatever the file says. Empty
// clears the override.
func UsePreset(p Preset) {
	activeMu.Lock()
	defer activeMu.Unlock()
	activePreset = p
}

// UseConfig makes games use cfg instead of loading a file. The settings
// menu uses it to apply changes for the current run; nil goes back to
// loading.
func UseConfig(cfg *Config) {
	activeMu.Lock()
	defer activeMu.Unlock()
	if cfg == nil {
		activeConfig = nil
		return
	}
	c := *cfg
	activeConfig = &c
}

// Active loads the settings games should use. Load errors fall back to the
// defaults so a broken file never prevents play.
func Active() Config {
	activeMu.RLock()
	path, preset, override := activePath, activePreset, activeConfig
	activeMu.RUnlock()

	if override != nil {
		return *override
	}

	cfg, err := Load(path)
	if err != nil {
		cfg = Default()
	}
	if preset != "" {
		ApplyPreset(&cfg, preset)
	}
	return cfg
}
