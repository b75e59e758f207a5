package wizard

import (
	"github.com/jotaeme/appgen/internal/config"
)

func isFlutter(c *config.Config) bool { return c.Platform == config.PlatformFlutter }
func isMacOS(c *config.Config) bool   { return c.Platform == config.PlatformMacOS }

// Questions returns the full ordered question sequence. Conditional
// questions carry a predicate over the answers collected so far.
func Questions() []Question {
	qs := []Question{
		{
			ID:    "platform",
			Kind:  KindSelect,
			Title: "What platform are you building for?",
			Options: []Option{
				{Label: "Flutter", Value: config.PlatformFlutter, Desc: "cross-platform"},
				{Label: "macOS", Value: config.PlatformMacOS, Desc: "native Swift/SwiftUI"},
			},
			Default: config.PlatformFlutter,
		},
	}
	qs = append(qs, flutterQuestions()...)
	qs = append(qs, macOSQuestions()...)
	qs = append(qs, Question{
		ID:       "project_name",
		Kind:     KindInput,
		Title:    "Project name",
		Default:  "my_app",
		Required: true,
	})
	return qs
}

func flutterQuestions() []Question {
	game := func(c *config.Config) bool {
		return isFlutter(c) && c.Category == config.CategoryGame
	}
	transactional := func(c *config.Config) bool {
		return isFlutter(c) && c.Category == config.CategoryTransactional
	}

	return []Question{
		{
			ID:    "category",
			Kind:  KindSelect,
			Title: "What type of app are you building?",
			Options: []Option{
				{Label: "Transactional app", Value: config.CategoryTransactional},
				{Label: "Game", Value: config.CategoryGame},
			},
			Default:   config.CategoryTransactional,
			Condition: isFlutter,
		},
		{
			ID:        "auth",
			Kind:      KindConfirm,
			Title:     "Does your app require authentication?",
			Default:   "true",
			Condition: isFlutter,
		},
		{
			ID:    "auth_provider",
			Kind:  KindSelect,
			Title: "Which authentication method would you like to use?",
			Options: []Option{
				{Label: "Firebase Auth", Value: config.AuthFirebase},
				{Label: "Custom auth", Value: config.AuthCustom, Desc: "REST API"},
				{Label: "Local auth", Value: config.AuthBiometric, Desc: "biometric"},
			},
			Default:   config.AuthFirebase,
			Condition: func(c *config.Config) bool { return isFlutter(c) && c.Auth.Enabled },
		},
		{
			ID:    "database",
			Kind:  KindSelect,
			Title: "Which database would you like to use?",
			Options: []Option{
				{Label: "Firebase Firestore", Value: config.DatabaseFirestore},
				{Label: "SQLite", Value: config.DatabaseSQLite},
				{Label: "REST API", Value: config.DatabaseREST, Desc: "no local DB"},
				{Label: "None", Value: config.DatabaseNone},
			},
			Default:   config.DatabaseFirestore,
			Condition: isFlutter,
		},
		{
			ID:          "state_management",
			Kind:        KindSelect,
			Title:       "Which state management solution would you like to use?",
			Description: "State management handles data that changes while the app runs: login status, cart contents, scores.",
			Options: []Option{
				{Label: "Provider", Value: config.StateProvider, Desc: "simple, recommended for beginners"},
				{Label: "Riverpod", Value: config.StateRiverpod, Desc: "modern and type-safe"},
				{Label: "Bloc", Value: config.StateBloc, Desc: "pattern-based"},
				{Label: "GetX", Value: config.StateGetX, Desc: "all-in-one"},
				{Label: "Redux", Value: config.StateRedux, Desc: "predictable state container"},
			},
			Default:   config.StateProvider,
			Condition: isFlutter,
		},
		{
			ID:          "routing",
			Kind:        KindConfirm,
			Title:       "Use routing/navigation?",
			Description: "Navigate between screens, e.g. Login → Home → Profile → Settings.",
			Default:     "true",
			Condition:   isFlutter,
		},
		{
			ID:        "localization",
			Kind:      KindConfirm,
			Title:     "Include localization (i18n)?",
			Default:   "false",
			Condition: isFlutter,
		},
		{
			ID:        "theme",
			Kind:      KindConfirm,
			Title:     "Include theme management (dark/light mode)?",
			Default:   "true",
			Condition: isFlutter,
		},
		{
			ID:        "analytics",
			Kind:      KindConfirm,
			Title:     "Include analytics?",
			Default:   "false",
			Condition: isFlutter,
		},
		{
			ID:        "crash_reporting",
			Kind:      KindConfirm,
			Title:     "Include crash reporting?",
			Default:   "false",
			Condition: isFlutter,
		},
		{
			ID:    "game_engine",
			Kind:  KindSelect,
			Title: "Which game engine/framework?",
			Options: []Option{
				{Label: "Flame", Value: config.EngineFlame},
				{Label: "Unity", Value: config.EngineUnity, Desc: "via flutter_unity_widget"},
				{Label: "Custom canvas", Value: config.EngineCanvas},
			},
			Default:   config.EngineFlame,
			Condition: game,
		},
		{
			ID:        "multiplayer",
			Kind:      KindConfirm,
			Title:     "Support multiplayer?",
			Default:   "false",
			Condition: game,
		},
		{
			ID:    "multiplayer_type",
			Kind:  KindSelect,
			Title: "What type of multiplayer?",
			Options: []Option{
				{Label: "Peer-to-peer", Value: config.MultiplayerP2P, Desc: "no server needed"},
				{Label: "Online", Value: config.MultiplayerOnline, Desc: "requires a server"},
			},
			Default: config.MultiplayerP2P,
			Condition: func(c *config.Config) bool {
				return game(c) && c.Game != nil && c.Game.Multiplayer
			},
		},
		{
			ID:          "p2p_library",
			Kind:        KindSelect,
			Title:       "Which P2P library?",
			Description: "peerdart works over the internet; nearby connections are local WiFi/Bluetooth only.",
			Options: []Option{
				{Label: "peerdart", Value: config.P2PPeerDart, Desc: "WebRTC, works over the internet"},
				{Label: "flutter_nearby_connections", Value: config.P2PNearby, Desc: "local WiFi/Bluetooth"},
				{Label: "ENet", Value: config.P2PENet, Desc: "UDP, low latency"},
			},
			Default: config.P2PPeerDart,
			Condition: func(c *config.Config) bool {
				return game(c) && c.Game != nil && c.Game.Multiplayer &&
					c.Game.MultiplayerType == config.MultiplayerP2P
			},
		},
		{
			ID:        "payments",
			Kind:      KindConfirm,
			Title:     "Include payment integration?",
			Default:   "false",
			Condition: transactional,
		},
		{
			ID:        "notifications",
			Kind:      KindConfirm,
			Title:     "Include push notifications?",
			Default:   "true",
			Condition: transactional,
		},
		{
			ID:        "offline_mode",
			Kind:      KindConfirm,
			Title:     "Support offline mode?",
			Default:   "true",
			Condition: transactional,
		},
	}
}

func macOSQuestions() []Question {
	return []Question{
		{
			ID:    "macos_category",
			Kind:  KindSelect,
			Title: "What type of app are you building?",
			Options: []Option{
				{Label: "Desktop app", Value: config.CategoryDesktop},
				{Label: "Menu bar app", Value: config.CategoryMenuBar},
				{Label: "Command line tool", Value: config.CategoryCLI},
			},
			Default:   config.CategoryDesktop,
			Condition: isMacOS,
		},
		{
			ID:    "ui_framework",
			Kind:  KindSelect,
			Title: "Which UI framework?",
			Options: []Option{
				{Label: "SwiftUI", Value: config.UISwiftUI},
				{Label: "AppKit", Value: config.UIAppKit},
			},
			Default:   config.UISwiftUI,
			Condition: isMacOS,
		},
		{
			ID:        "macos_auth",
			Kind:      KindConfirm,
			Title:     "Does your app require authentication?",
			Default:   "false",
			Condition: isMacOS,
		},
		{
			ID:    "macos_auth_provider",
			Kind:  KindSelect,
			Title: "Which authentication method?",
			Options: []Option{
				{Label: "Keychain", Value: config.AuthKeychain},
				{Label: "OAuth", Value: config.AuthOAuth},
				{Label: "Custom", Value: config.AuthCustom},
			},
			Default:   config.AuthKeychain,
			Condition: func(c *config.Config) bool { return isMacOS(c) && c.Auth.Enabled },
		},
		{
			ID:    "macos_database",
			Kind:  KindSelect,
			Title: "Which database would you like to use?",
			Options: []Option{
				{Label: "Core Data", Value: config.DatabaseCoreData},
				{Label: "SQLite", Value: config.DatabaseSQLite},
				{Label: "Realm", Value: config.DatabaseRealm},
				{Label: "None", Value: config.DatabaseNone},
			},
			Default:   config.DatabaseCoreData,
			Condition: isMacOS,
		},
		{
			ID:        "menu_bar",
			Kind:      KindConfirm,
			Title:     "Include menu bar?",
			Default:   "true",
			Condition: isMacOS,
		},
		{
			ID:        "dock_icon",
			Kind:      KindConfirm,
			Title:     "Show dock icon?",
			Default:   "true",
			Condition: isMacOS,
		},
		{
			ID:        "macos_notifications",
			Kind:      KindConfirm,
			Title:     "Include notifications?",
			Default:   "false",
			Condition: isMacOS,
		},
		{
			ID:        "file_access",
			Kind:      KindConfirm,
			Title:     "Include file system access?",
			Default:   "false",
			Condition: isMacOS,
		},
	}
}
