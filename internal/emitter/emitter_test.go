package emitter

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jotaeme/appgen/internal/config"
	"github.com/jotaeme/appgen/internal/resolver"
)

func flutterConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.New()
	c.Project = "My App"
	if err := c.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return c
}

func generate(t *testing.T, cfg *config.Config) (string, *Result) {
	t.Helper()
	manifest, err := resolver.Resolve(cfg)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	target := filepath.Join(t.TempDir(), "out")
	result, err := New(cfg, manifest, target).Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	return target, result
}

func readFile(t *testing.T, target, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func TestGenerateFlutterDefaults(t *testing.T) {
	cfg := flutterConfig(t)
	target, result := generate(t, cfg)

	wantFiles := []string{
		"pubspec.yaml",
		"lib/main.dart",
		"lib/screens/home_screen.dart",
		"lib/utils/theme.dart",
		"lib/auth/auth_service.dart",
		"lib/screens/auth/login_screen.dart",
		"lib/services/firestore_service.dart",
		"lib/features/example_feature.dart",
		".gitignore",
		"analysis_options.yaml",
		"README.md",
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing file %s: %v", rel, err)
		}
	}
	if len(result.Files) != len(wantFiles) {
		t.Errorf("Files = %v, want %d entries", result.Files, len(wantFiles))
	}
	for _, rel := range result.Files {
		if result.FileHashes[rel] == "" {
			t.Errorf("missing hash for %s", rel)
		}
	}

	for _, dir := range []string{"lib/models", "lib/providers", "test", "assets/images"} {
		info, err := os.Stat(filepath.Join(target, filepath.FromSlash(dir)))
		if err != nil || !info.IsDir() {
			t.Errorf("missing directory %s", dir)
		}
	}
}

func TestGeneratePubspecContents(t *testing.T) {
	cfg := flutterConfig(t)
	target, _ := generate(t, cfg)

	pubspec := readFile(t, target, "pubspec.yaml")
	if !strings.Contains(pubspec, "name: my_app") {
		t.Error("pubspec should use the underscored package name")
	}
	for _, pkg := range []string{"cloud_firestore:", "firebase_auth:", "firebase_core:", "provider:", "go_router:", "flutter_lints:"} {
		if !strings.Contains(pubspec, pkg) {
			t.Errorf("pubspec missing %s", pkg)
		}
	}
	if strings.Contains(pubspec, "flutter_localizations") {
		t.Error("pubspec should not list flutter_localizations without localization")
	}
}

func TestGenerateAuthDisabled(t *testing.T) {
	cfg := flutterConfig(t)
	cfg.Auth = config.AuthConfig{}
	target, result := generate(t, cfg)

	for _, rel := range []string{"lib/auth/auth_service.dart", "lib/screens/auth/login_screen.dart"} {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); err == nil {
			t.Errorf("%s should not exist with auth disabled", rel)
		}
	}
	for _, rel := range result.Files {
		if strings.Contains(rel, "auth") {
			t.Errorf("auth file %s listed in result", rel)
		}
	}
	if _, err := os.Stat(filepath.Join(target, "lib/auth")); err == nil {
		t.Error("lib/auth directory should not exist with auth disabled")
	}

	pubspec := readFile(t, target, "pubspec.yaml")
	if strings.Contains(pubspec, "firebase_auth:") {
		t.Error("pubspec should not list firebase_auth with auth disabled")
	}
}

func TestGenerateSQLite(t *testing.T) {
	cfg := flutterConfig(t)
	cfg.Database = config.DatabaseSQLite
	target, _ := generate(t, cfg)

	if _, err := os.Stat(filepath.Join(target, "lib/services/database_service.dart")); err != nil {
		t.Errorf("missing database_service.dart: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "lib/services/firestore_service.dart")); err == nil {
		t.Error("firestore_service.dart should not exist for sqlite")
	}

	pubspec := readFile(t, target, "pubspec.yaml")
	if !strings.Contains(pubspec, "sqflite:") {
		t.Error("pubspec missing sqflite")
	}
}

func TestGenerateGame(t *testing.T) {
	cfg := flutterConfig(t)
	cfg.Category = config.CategoryGame
	cfg.Auth = config.AuthConfig{}
	cfg.Database = config.DatabaseNone
	cfg.Game = &config.GameConfig{
		Engine:          config.EngineFlame,
		Multiplayer:     true,
		MultiplayerType: config.MultiplayerP2P,
		P2PLibrary:      config.P2PPeerDart,
	}
	target, _ := generate(t, cfg)

	if _, err := os.Stat(filepath.Join(target, "lib/game/my_game.dart")); err != nil {
		t.Errorf("missing my_game.dart: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "lib/services/p2p_service.dart")); err != nil {
		t.Errorf("missing p2p_service.dart: %v", err)
	}
	if _, err := os.Stat(filepath.Join(target, "lib/features/example_feature.dart")); err == nil {
		t.Error("example_feature.dart should not exist for a game")
	}
	if _, err := os.Stat(filepath.Join(target, "assets/sprites")); err != nil {
		t.Error("missing assets/sprites directory")
	}

	pubspec := readFile(t, target, "pubspec.yaml")
	if !strings.Contains(pubspec, "flame:") || !strings.Contains(pubspec, "peerdart:") {
		t.Error("pubspec missing game packages")
	}
}

// Two runs over the same record must produce byte-identical trees.
func TestGenerateIdempotent(t *testing.T) {
	cfg := flutterConfig(t)

	targetA, resultA := generate(t, cfg)
	targetB, resultB := generate(t, cfg)

	if len(resultA.Files) != len(resultB.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(resultA.Files), len(resultB.Files))
	}
	for i, rel := range resultA.Files {
		if resultB.Files[i] != rel {
			t.Fatalf("file lists differ at %d: %s vs %s", i, rel, resultB.Files[i])
		}
		a, err := os.ReadFile(filepath.Join(targetA, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(targetB, filepath.FromSlash(rel)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", rel)
		}
		if resultA.FileHashes[rel] != resultB.FileHashes[rel] {
			t.Errorf("%s hash differs between runs", rel)
		}
	}
}

func TestGenerateTargetNotEmpty(t *testing.T) {
	cfg := flutterConfig(t)
	manifest, err := resolver.Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "existing.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err = New(cfg, manifest, target).Generate()
	var existsErr *TargetExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("error = %v, want *TargetExistsError", err)
	}
	if existsErr.Path != target {
		t.Errorf("Path = %q, want %q", existsErr.Path, target)
	}

	// force writes into the populated directory and leaves the stranger alone
	em := New(cfg, manifest, target)
	em.SetForce(true)
	if _, err := em.Generate(); err != nil {
		t.Fatalf("forced Generate() error: %v", err)
	}
	if data, err := os.ReadFile(filepath.Join(target, "existing.txt")); err != nil || string(data) != "keep" {
		t.Error("pre-existing file was disturbed")
	}
}

func TestGenerateEmptyTargetDirIsFine(t *testing.T) {
	cfg := flutterConfig(t)
	manifest, err := resolver.Resolve(cfg)
	if err != nil {
		t.Fatal(err)
	}

	target := t.TempDir()
	if _, err := New(cfg, manifest, target).Generate(); err != nil {
		t.Fatalf("Generate() into empty existing dir failed: %v", err)
	}
}

func TestGenerateMainDartStateWiring(t *testing.T) {
	tests := []struct {
		state string
		want  string
	}{
		{config.StateProvider, "MultiProvider"},
		{config.StateRiverpod, "ProviderScope"},
		{config.StateBloc, "package:flutter_bloc/flutter_bloc.dart"},
	}

	for _, tt := range tests {
		cfg := flutterConfig(t)
		cfg.StateManagement = tt.state
		target, _ := generate(t, cfg)

		main := readFile(t, target, "lib/main.dart")
		if !strings.Contains(main, tt.want) {
			t.Errorf("%s: main.dart missing %s", tt.state, tt.want)
		}
	}
}

func macOSConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.New()
	c.Project = "Clip Keeper"
	c.Platform = config.PlatformMacOS
	c.Category = config.CategoryDesktop
	c.UIFramework = config.UISwiftUI
	c.Auth = config.AuthConfig{}
	c.Database = config.DatabaseCoreData
	c.StateManagement = ""
	c.Features = config.Features{MenuBar: true, DockIcon: true}
	if err := c.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return c
}

func TestGenerateMacOSSwiftUI(t *testing.T) {
	cfg := macOSConfig(t)
	target, result := generate(t, cfg)

	wantFiles := []string{
		"Sources/ClipKeeperApp.swift",
		"Sources/AppDelegate.swift",
		"Sources/Views/ContentView.swift",
		"Sources/Views/SettingsView.swift",
		"Sources/Services/DatabaseService.swift",
		"Info.plist",
		".gitignore",
		"README.md",
	}
	for _, rel := range wantFiles {
		if _, err := os.Stat(filepath.Join(target, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing file %s: %v", rel, err)
		}
	}
	if len(result.Files) != len(wantFiles) {
		t.Errorf("Files = %v, want %d entries", result.Files, len(wantFiles))
	}

	app := readFile(t, target, "Sources/ClipKeeperApp.swift")
	if !strings.Contains(app, "struct ClipKeeperApp: App") {
		t.Error("app entry point should use the stripped project name")
	}
}

func TestGenerateMacOSNoDockIcon(t *testing.T) {
	cfg := macOSConfig(t)
	cfg.Features.DockIcon = false
	target, _ := generate(t, cfg)

	plist := readFile(t, target, "Info.plist")
	if !strings.Contains(plist, "LSUIElement") {
		t.Error("Info.plist should set LSUIElement when the dock icon is off")
	}
}

func TestGenerateMacOSAuth(t *testing.T) {
	cfg := macOSConfig(t)
	cfg.Auth = config.AuthConfig{Enabled: true, Provider: config.AuthKeychain}
	target, _ := generate(t, cfg)

	svc := readFile(t, target, "Sources/Auth/AuthService.swift")
	if !strings.Contains(svc, "Security") {
		t.Error("keychain auth service should import Security")
	}
}
