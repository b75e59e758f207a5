package config

// Target platforms.
const (
	PlatformFlutter = "flutter"
	PlatformMacOS   = "macos"
)

// Flutter app categories.
const (
	CategoryGame          = "game"
	CategoryTransactional = "transactional"
)

// macOS app categories.
const (
	CategoryDesktop = "desktop"
	CategoryMenuBar = "menubar"
	CategoryCLI     = "cli"
)

// Flutter auth providers.
const (
	AuthFirebase  = "firebase"
	AuthCustom    = "custom"
	AuthBiometric = "biometric"
)

// macOS auth providers.
const (
	AuthKeychain = "keychain"
	AuthOAuth    = "oauth"
)

// Flutter databases.
const (
	DatabaseFirestore = "firestore"
	DatabaseSQLite    = "sqlite"
	DatabaseREST      = "rest"
	DatabaseNone      = "none"
)

// macOS databases.
const (
	DatabaseCoreData = "coredata"
	DatabaseRealm    = "realm"
)

// State management solutions.
const (
	StateProvider = "provider"
	StateRiverpod = "riverpod"
	StateBloc     = "bloc"
	StateGetX     = "getx"
	StateRedux    = "redux"
)

// Game engines.
const (
	EngineFlame  = "flame"
	EngineUnity  = "unity"
	EngineCanvas = "canvas"
)

// Multiplayer transport types.
const (
	MultiplayerP2P    = "p2p"
	MultiplayerOnline = "online"
)

// P2P libraries.
const (
	P2PPeerDart = "peerdart"
	P2PNearby   = "nearby"
	P2PENet     = "enet"
)

// macOS UI frameworks.
const (
	UISwiftUI = "swiftui"
	UIAppKit  = "appkit"
)

// Option sets, one per enum-valued question. Validate checks membership
// against these, and the resolver tables are keyed by them.
var (
	Platforms         = []string{PlatformFlutter, PlatformMacOS}
	FlutterCategories = []string{CategoryGame, CategoryTransactional}
	MacOSCategories   = []string{CategoryDesktop, CategoryMenuBar, CategoryCLI}
	FlutterAuth       = []string{AuthFirebase, AuthCustom, AuthBiometric}
	MacOSAuth         = []string{AuthKeychain, AuthOAuth, AuthCustom}
	FlutterDatabases  = []string{DatabaseFirestore, DatabaseSQLite, DatabaseREST, DatabaseNone}
	MacOSDatabases    = []string{DatabaseCoreData, DatabaseSQLite, DatabaseRealm, DatabaseNone}
	StateManagement   = []string{StateProvider, StateRiverpod, StateBloc, StateGetX, StateRedux}
	GameEngines       = []string{EngineFlame, EngineUnity, EngineCanvas}
	MultiplayerTypes  = []string{MultiplayerP2P, MultiplayerOnline}
	P2PLibraries      = []string{P2PPeerDart, P2PNearby, P2PENet}
	UIFrameworks      = []string{UISwiftUI, UIAppKit}
)

// AuthConfig holds the authentication answers.
type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Provider string `yaml:"provider,omitempty"`
}

// Features holds the yes/no feature flags. Flags whose question was
// skipped stay at their zero value (disabled).
type Features struct {
	Routing        bool `yaml:"routing"`
	Localization   bool `yaml:"localization"`
	Theme          bool `yaml:"theme"`
	Analytics      bool `yaml:"analytics"`
	CrashReporting bool `yaml:"crash_reporting"`
	Notifications  bool `yaml:"notifications"`
	Payments       bool `yaml:"payments"`
	OfflineMode    bool `yaml:"offline_mode"`

	// macOS only
	MenuBar    bool `yaml:"menu_bar,omitempty"`
	DockIcon   bool `yaml:"dock_icon,omitempty"`
	FileAccess bool `yaml:"file_access,omitempty"`
}

// GameConfig holds the game-specific answers. Nil for non-game apps.
type GameConfig struct {
	Engine          string `yaml:"engine"`
	Multiplayer     bool   `yaml:"multiplayer"`
	MultiplayerType string `yaml:"multiplayer_type,omitempty"`
	P2PLibrary      string `yaml:"p2p_library,omitempty"`
}

// Generated is the auto-generated portion of appgen.yml: the resolved
// package manifest and the emitted file set with content hashes.
type Generated struct {
	Packages    map[string]string `yaml:"packages,omitempty"`
	DevPackages map[string]string `yaml:"dev_packages,omitempty"`
	Files       []string          `yaml:"files,omitempty"`
	FileHashes  map[string]string `yaml:"file_hashes,omitempty"`
}
