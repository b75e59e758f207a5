package emitter

import (
	"github.com/jotaeme/appgen/internal/config"
)

// flutterDirectories returns the project skeleton, parents before children.
func flutterDirectories(cfg *config.Config) []string {
	dirs := []string{
		"lib",
		"lib/models",
		"lib/services",
		"lib/repositories",
		"lib/screens",
		"lib/widgets",
		"lib/utils",
		"lib/constants",
		"test",
		"assets",
		"assets/images",
		"assets/icons",
	}

	if cfg.Category == config.CategoryGame {
		dirs = append(dirs,
			"lib/game",
			"lib/game/components",
			"lib/game/systems",
			"assets/sprites",
			"assets/sounds",
		)
	} else {
		dirs = append(dirs,
			"lib/features",
			"lib/providers",
		)
	}

	if cfg.Auth.Enabled {
		dirs = append(dirs,
			"lib/auth",
			"lib/screens/auth",
		)
	}

	return dirs
}

func flutterDescriptors() []Descriptor {
	hasAuth := func(c *config.Config) bool { return c.Auth.Enabled }
	isGame := func(c *config.Config) bool { return c.Category == config.CategoryGame }

	return []Descriptor{
		{Path: "pubspec.yaml", Template: flutterPubspec},
		{Path: "lib/main.dart", Template: flutterMain},
		{Path: "lib/screens/home_screen.dart", Template: flutterHomeScreen},
		{
			Path:     "lib/utils/theme.dart",
			Template: flutterTheme,
			When:     func(c *config.Config) bool { return c.Features.Theme },
		},
		{Path: "lib/auth/auth_service.dart", Template: flutterAuthService, When: hasAuth},
		{Path: "lib/screens/auth/login_screen.dart", Template: flutterLoginScreen, When: hasAuth},
		{
			Path:     "lib/services/database_service.dart",
			Template: flutterDatabaseService,
			When:     func(c *config.Config) bool { return c.Database == config.DatabaseSQLite },
		},
		{
			Path:     "lib/services/firestore_service.dart",
			Template: flutterFirestoreService,
			When:     func(c *config.Config) bool { return c.Database == config.DatabaseFirestore },
		},
		{
			Path:     "lib/game/my_game.dart",
			Template: flutterGame,
			When: func(c *config.Config) bool {
				return isGame(c) && c.Game != nil && c.Game.Engine == config.EngineFlame
			},
		},
		{
			Path:     "lib/services/p2p_service.dart",
			Template: flutterP2PService,
			When: func(c *config.Config) bool {
				return isGame(c) && c.Game != nil && c.Game.Multiplayer &&
					c.Game.MultiplayerType == config.MultiplayerP2P
			},
		},
		{
			Path:     "lib/features/example_feature.dart",
			Template: flutterExampleFeature,
			When:     func(c *config.Config) bool { return c.Category == config.CategoryTransactional },
		},
		{Path: ".gitignore", Template: flutterGitignore},
		{Path: "analysis_options.yaml", Template: flutterAnalysisOptions},
		{Path: "README.md", Template: flutterReadme},
	}
}
