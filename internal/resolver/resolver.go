// Package resolver maps a configuration record to the set of external
// packages the generated project depends on. Resolution is a pure function
// over static tables keyed by (question, chosen option).
package resolver

import (
	"fmt"
	"sort"

	"github.com/jotaeme/appgen/internal/config"
)

// Package is a single manifest entry: a pub.dev package name and its
// version constraint.
type Package struct {
	Name    string
	Version string
}

// Manifest is the resolved dependency set for one configuration record.
type Manifest struct {
	Packages    map[string]string
	DevPackages map[string]string
}

// UnknownOptionError indicates a configuration value outside its declared
// option set. Unreachable for records that passed config.Validate.
type UnknownOptionError struct {
	Question string
	Value    string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no package table for %s option %q", e.Question, e.Value)
}

// statePackages maps each state-management choice to its packages.
var statePackages = map[string]map[string]string{
	config.StateProvider: {"provider": "^6.1.2"},
	config.StateRiverpod: {"flutter_riverpod": "^2.5.1", "riverpod_annotation": "^2.3.5"},
	config.StateBloc:     {"flutter_bloc": "^8.1.6", "equatable": "^2.0.5"},
	config.StateGetX:     {"get": "^4.6.6"},
	config.StateRedux:    {"redux": "^5.0.0", "flutter_redux": "^0.10.0"},
}

// databasePackages maps each database choice to its packages.
var databasePackages = map[string]map[string]string{
	config.DatabaseFirestore: {"cloud_firestore": "^5.4.4"},
	config.DatabaseSQLite:    {"sqflite": "^2.3.3", "path": "^1.9.0"},
	config.DatabaseREST:      {"http": "^1.2.2", "dio": "^5.7.0"},
	config.DatabaseNone:      {},
}

// authPackages maps each auth provider to its packages.
var authPackages = map[string]map[string]string{
	config.AuthFirebase:  {"firebase_auth": "^5.3.1", "firebase_core": "^3.6.0"},
	config.AuthCustom:    {"http": "^1.2.2", "dio": "^5.7.0", "shared_preferences": "^2.3.2"},
	config.AuthBiometric: {"local_auth": "^2.3.0"},
}

// featurePackages maps each feature flag to its packages.
var featurePackages = map[string]map[string]string{
	"routing":         {"go_router": "^14.3.0"},
	"localization":    {"intl": "^0.19.0"},
	"analytics":       {"firebase_analytics": "^11.3.3"},
	"crash_reporting": {"firebase_crashlytics": "^4.1.3"},
	"notifications":   {"firebase_messaging": "^15.1.3"},
	"payments":        {"in_app_purchase": "^3.2.0"},
}

// enginePackages maps each game engine to its packages. Unity embeds via a
// widget; the canvas engine needs nothing beyond Flutter itself.
var enginePackages = map[string]map[string]string{
	config.EngineFlame:  {"flame": "^1.19.0"},
	config.EngineUnity:  {"flutter_unity_widget": "^2022.2.1"},
	config.EngineCanvas: {},
}

// p2pPackages maps each P2P library choice to its packages.
var p2pPackages = map[string]map[string]string{
	config.P2PPeerDart: {"peerdart": "^0.9.2"},
	config.P2PNearby:   {"flutter_nearby_connections": "^1.1.2"},
	config.P2PENet:     {"enet": "^1.0.0"},
}

// commonPackages are included in every Flutter project.
var commonPackages = map[string]string{
	"shared_preferences": "^2.3.2",
	"path_provider":      "^2.1.4",
}

// Resolve derives the dependency manifest for a configuration record.
// Identical records always yield identical manifests. Name collisions
// across tables are last-write-wins; the option tables are disjoint apart
// from deliberately shared utilities (http, dio, shared_preferences),
// which carry identical constraints.
func Resolve(cfg *config.Config) (*Manifest, error) {
	m := &Manifest{
		Packages:    make(map[string]string),
		DevPackages: make(map[string]string),
	}

	// macOS projects are native Swift; no package manifest is emitted.
	if cfg.Platform == config.PlatformMacOS {
		return m, nil
	}

	if err := merge(m.Packages, statePackages, "state management", cfg.StateManagement); err != nil {
		return nil, err
	}
	if err := merge(m.Packages, databasePackages, "database", cfg.Database); err != nil {
		return nil, err
	}
	if cfg.Auth.Enabled {
		if err := merge(m.Packages, authPackages, "auth provider", cfg.Auth.Provider); err != nil {
			return nil, err
		}
	}

	for flag, on := range map[string]bool{
		"routing":         cfg.Features.Routing,
		"localization":    cfg.Features.Localization,
		"analytics":       cfg.Features.Analytics,
		"crash_reporting": cfg.Features.CrashReporting,
		"notifications":   cfg.Features.Notifications,
		"payments":        cfg.Features.Payments,
	} {
		if on {
			if err := merge(m.Packages, featurePackages, "feature", flag); err != nil {
				return nil, err
			}
		}
	}

	if cfg.Category == config.CategoryGame && cfg.Game != nil {
		if err := merge(m.Packages, enginePackages, "game engine", cfg.Game.Engine); err != nil {
			return nil, err
		}
		if cfg.Game.Multiplayer && cfg.Game.MultiplayerType == config.MultiplayerP2P {
			if err := merge(m.Packages, p2pPackages, "p2p library", cfg.Game.P2PLibrary); err != nil {
				return nil, err
			}
		}
	}

	for name, version := range commonPackages {
		m.Packages[name] = version
	}

	m.DevPackages["flutter_lints"] = "^4.0.0"
	switch cfg.StateManagement {
	case config.StateRiverpod:
		m.DevPackages["riverpod_generator"] = "^2.4.3"
		m.DevPackages["build_runner"] = "^2.4.13"
	case config.StateBloc:
		m.DevPackages["bloc_test"] = "^9.1.7"
	}

	return m, nil
}

// merge unions one option's packages into dst, last-write-wins.
func merge(dst map[string]string, table map[string]map[string]string, question, option string) error {
	pkgs, ok := table[option]
	if !ok {
		return &UnknownOptionError{Question: question, Value: option}
	}
	for name, version := range pkgs {
		dst[name] = version
	}
	return nil
}

// Sorted returns the manifest entries ordered by package name, for
// deterministic rendering.
func Sorted(pkgs map[string]string) []Package {
	names := make([]string, 0, len(pkgs))
	for name := range pkgs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Package, 0, len(names))
	for _, name := range names {
		out = append(out, Package{Name: name, Version: pkgs[name]})
	}
	return out
}
