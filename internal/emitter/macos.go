package emitter

import (
	"github.com/jotaeme/appgen/internal/config"
)

func macOSDirectories(cfg *config.Config) []string {
	dirs := []string{
		"Sources",
		"Sources/Views",
		"Sources/Models",
		"Sources/Services",
	}
	if cfg.Auth.Enabled {
		dirs = append(dirs, "Sources/Auth")
	}
	return dirs
}

func macOSDescriptors() []Descriptor {
	swiftUI := func(c *config.Config) bool { return c.UIFramework == config.UISwiftUI }
	appKit := func(c *config.Config) bool { return c.UIFramework == config.UIAppKit }

	return []Descriptor{
		{Path: "Sources/{{.AppClass}}App.swift", Template: macOSSwiftUIApp, When: swiftUI},
		{
			Path:     "Sources/AppDelegate.swift",
			Template: macOSAppDelegate,
			When: func(c *config.Config) bool {
				return swiftUI(c) && c.Features.MenuBar
			},
		},
		{Path: "Sources/AppDelegate.swift", Template: macOSAppKitApp, When: appKit},
		{Path: "Sources/Views/ContentView.swift", Template: macOSContentView},
		{
			Path:     "Sources/Views/SettingsView.swift",
			Template: macOSSettingsView,
			When: func(c *config.Config) bool {
				return swiftUI(c) && c.Features.MenuBar
			},
		},
		{
			Path:     "Sources/Auth/AuthService.swift",
			Template: macOSAuthService,
			When:     func(c *config.Config) bool { return c.Auth.Enabled },
		},
		{
			Path:     "Sources/Services/DatabaseService.swift",
			Template: macOSDatabaseService,
			When:     func(c *config.Config) bool { return c.Database != config.DatabaseNone },
		},
		{Path: "Info.plist", Template: macOSInfoPlist},
		{Path: ".gitignore", Template: macOSGitignore},
		{Path: "README.md", Template: macOSReadme},
	}
}
