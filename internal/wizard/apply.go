package wizard

import (
	"github.com/jotaeme/appgen/internal/config"
)

// Apply stores a single answer in the configuration record. Confirm answers
// arrive as "true"/"false". Unknown IDs are ignored.
func Apply(cfg *config.Config, id, value string) {
	switch id {
	case "platform":
		cfg.Platform = value
		if value == config.PlatformMacOS {
			applyMacOSDefaults(cfg)
		}
	case "category", "macos_category":
		cfg.Category = value
		if value == config.CategoryGame && cfg.Game == nil {
			cfg.Game = &config.GameConfig{Engine: config.EngineFlame}
		}
		if value != config.CategoryGame {
			cfg.Game = nil
		}
	case "auth", "macos_auth":
		cfg.Auth.Enabled = isTrue(value)
		if !cfg.Auth.Enabled {
			cfg.Auth.Provider = ""
		}
	case "auth_provider", "macos_auth_provider":
		cfg.Auth.Provider = value
	case "database", "macos_database":
		cfg.Database = value
	case "state_management":
		cfg.StateManagement = value
	case "ui_framework":
		cfg.UIFramework = value
	case "routing":
		cfg.Features.Routing = isTrue(value)
	case "localization":
		cfg.Features.Localization = isTrue(value)
	case "theme":
		cfg.Features.Theme = isTrue(value)
	case "analytics":
		cfg.Features.Analytics = isTrue(value)
	case "crash_reporting":
		cfg.Features.CrashReporting = isTrue(value)
	case "notifications", "macos_notifications":
		cfg.Features.Notifications = isTrue(value)
	case "payments":
		cfg.Features.Payments = isTrue(value)
	case "offline_mode":
		cfg.Features.OfflineMode = isTrue(value)
	case "menu_bar":
		cfg.Features.MenuBar = isTrue(value)
	case "dock_icon":
		cfg.Features.DockIcon = isTrue(value)
	case "file_access":
		cfg.Features.FileAccess = isTrue(value)
	case "game_engine":
		ensureGame(cfg).Engine = value
	case "multiplayer":
		g := ensureGame(cfg)
		g.Multiplayer = isTrue(value)
		if !g.Multiplayer {
			g.MultiplayerType = ""
			g.P2PLibrary = ""
		}
	case "multiplayer_type":
		g := ensureGame(cfg)
		g.MultiplayerType = value
		if value != config.MultiplayerP2P {
			g.P2PLibrary = ""
		}
	case "p2p_library":
		ensureGame(cfg).P2PLibrary = value
	case "project_name":
		cfg.Project = value
	}
}

// applyMacOSDefaults replaces the Flutter question defaults with the macOS
// ones when the platform answer switches target.
func applyMacOSDefaults(cfg *config.Config) {
	cfg.Category = config.CategoryDesktop
	cfg.UIFramework = config.UISwiftUI
	cfg.Auth = config.AuthConfig{}
	cfg.Database = config.DatabaseCoreData
	cfg.StateManagement = ""
	cfg.Game = nil
	cfg.Features = config.Features{
		MenuBar:  true,
		DockIcon: true,
	}
}

func ensureGame(cfg *config.Config) *config.GameConfig {
	if cfg.Game == nil {
		cfg.Game = &config.GameConfig{}
	}
	return cfg.Game
}

func isTrue(v string) bool {
	return v == "true"
}
