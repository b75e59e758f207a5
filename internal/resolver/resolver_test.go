package resolver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jotaeme/appgen/internal/config"
)

func baseConfig() *config.Config {
	c := config.New()
	c.Project = "app"
	return c
}

func TestResolveDeterministic(t *testing.T) {
	cfg := baseConfig()

	first, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	second, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical records produced different manifests:\n%+v\n%+v", first, second)
	}
}

func TestResolveFirebaseStack(t *testing.T) {
	cfg := baseConfig()
	// defaults: firebase auth, firestore, provider, routing, theme,
	// so the firebase family and go_router must all land in the manifest.
	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	for _, want := range []string{"firebase_auth", "firebase_core", "cloud_firestore", "provider", "go_router", "shared_preferences", "path_provider"} {
		if _, ok := m.Packages[want]; !ok {
			t.Errorf("missing package %s", want)
		}
	}
	if m.DevPackages["flutter_lints"] == "" {
		t.Error("missing dev package flutter_lints")
	}
}

func TestResolveAuthDisabled(t *testing.T) {
	cfg := baseConfig()
	cfg.Auth = config.AuthConfig{}

	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	for _, banned := range []string{"firebase_auth", "local_auth"} {
		if _, ok := m.Packages[banned]; ok {
			t.Errorf("package %s present with auth disabled", banned)
		}
	}
}

func TestResolveFeatureFlags(t *testing.T) {
	cfg := baseConfig()
	cfg.Features.Routing = false
	cfg.Features.Localization = true
	cfg.Features.Analytics = true

	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if _, ok := m.Packages["go_router"]; ok {
		t.Error("go_router present with routing off")
	}
	if _, ok := m.Packages["intl"]; !ok {
		t.Error("intl missing with localization on")
	}
	if _, ok := m.Packages["firebase_analytics"]; !ok {
		t.Error("firebase_analytics missing with analytics on")
	}
}

func TestResolveStateManagementDevDeps(t *testing.T) {
	tests := []struct {
		state   string
		runtime []string
		dev     []string
	}{
		{config.StateProvider, []string{"provider"}, nil},
		{config.StateRiverpod, []string{"flutter_riverpod", "riverpod_annotation"}, []string{"riverpod_generator", "build_runner"}},
		{config.StateBloc, []string{"flutter_bloc", "equatable"}, []string{"bloc_test"}},
		{config.StateGetX, []string{"get"}, nil},
		{config.StateRedux, []string{"redux", "flutter_redux"}, nil},
	}

	for _, tt := range tests {
		cfg := baseConfig()
		cfg.StateManagement = tt.state

		m, err := Resolve(cfg)
		if err != nil {
			t.Fatalf("%s: Resolve() error: %v", tt.state, err)
		}
		for _, want := range tt.runtime {
			if _, ok := m.Packages[want]; !ok {
				t.Errorf("%s: missing package %s", tt.state, want)
			}
		}
		for _, want := range tt.dev {
			if _, ok := m.DevPackages[want]; !ok {
				t.Errorf("%s: missing dev package %s", tt.state, want)
			}
		}
	}
}

func TestResolveGame(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = config.CategoryGame
	cfg.Auth = config.AuthConfig{}
	cfg.Database = config.DatabaseNone
	cfg.Features.Notifications = false
	cfg.Features.OfflineMode = false
	cfg.Game = &config.GameConfig{
		Engine:          config.EngineFlame,
		Multiplayer:     true,
		MultiplayerType: config.MultiplayerP2P,
		P2PLibrary:      config.P2PPeerDart,
	}

	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if _, ok := m.Packages["flame"]; !ok {
		t.Error("flame missing")
	}
	if _, ok := m.Packages["peerdart"]; !ok {
		t.Error("peerdart missing")
	}
}

func TestResolveOnlineMultiplayerSkipsP2P(t *testing.T) {
	cfg := baseConfig()
	cfg.Category = config.CategoryGame
	cfg.Game = &config.GameConfig{
		Engine:          config.EngineFlame,
		Multiplayer:     true,
		MultiplayerType: config.MultiplayerOnline,
	}

	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	for name := range p2pPackages[config.P2PPeerDart] {
		if _, ok := m.Packages[name]; ok {
			t.Errorf("p2p package %s present for online multiplayer", name)
		}
	}
}

func TestResolveMacOSEmpty(t *testing.T) {
	cfg := baseConfig()
	cfg.Platform = config.PlatformMacOS
	cfg.Category = config.CategoryDesktop
	cfg.UIFramework = config.UISwiftUI
	cfg.Database = config.DatabaseCoreData

	m, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(m.Packages) != 0 || len(m.DevPackages) != 0 {
		t.Errorf("macOS manifest should be empty, got %+v", m)
	}
}

func TestResolveUnknownOption(t *testing.T) {
	cfg := baseConfig()
	cfg.StateManagement = "mobx"

	_, err := Resolve(cfg)
	if err == nil {
		t.Fatal("Resolve() should fail for an unknown option")
	}
	var optErr *UnknownOptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("error type = %T, want *UnknownOptionError", err)
	}
	if optErr.Question != "state management" || optErr.Value != "mobx" {
		t.Errorf("UnknownOptionError = %+v", optErr)
	}
}

// Packages that appear in more than one table must carry the same version
// constraint everywhere, so merge order can never change the result.
func TestTableVersionsConsistent(t *testing.T) {
	tables := []map[string]map[string]string{
		statePackages, databasePackages, authPackages,
		featurePackages, enginePackages, p2pPackages,
	}

	seen := map[string]string{}
	for name, version := range commonPackages {
		seen[name] = version
	}
	for _, table := range tables {
		for _, pkgs := range table {
			for name, version := range pkgs {
				if prev, ok := seen[name]; ok && prev != version {
					t.Errorf("package %s has conflicting versions %s and %s", name, prev, version)
				}
				seen[name] = version
			}
		}
	}
}

func TestSorted(t *testing.T) {
	got := Sorted(map[string]string{"b": "2", "a": "1", "c": "3"})
	want := []Package{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}
