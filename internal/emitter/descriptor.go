package emitter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/jotaeme/appgen/internal/config"
	"github.com/jotaeme/appgen/internal/resolver"
)

// Descriptor pairs an output path with a placeholder-bearing template body
// and an optional inclusion predicate over the configuration record.
type Descriptor struct {
	Path     string
	Template string
	When     func(*config.Config) bool
}

// renderContext is the data bound into templates at emission time.
type renderContext struct {
	Project     string // display name as entered
	PackageName string // lowercase, underscored; pubspec package name
	AppClass    string // project name stripped of spaces; Swift type prefix
	BundleID    string

	Cfg         *config.Config
	Packages    []resolver.Package
	DevPackages []resolver.Package
}

func newRenderContext(cfg *config.Config, manifest *resolver.Manifest) (*renderContext, error) {
	if cfg.Project == "" {
		return nil, fmt.Errorf("project name is empty")
	}

	pkgName := strings.ToLower(strings.ReplaceAll(cfg.Project, " ", "_"))
	appClass := strings.ReplaceAll(cfg.Project, " ", "")

	return &renderContext{
		Project:     cfg.Project,
		PackageName: pkgName,
		AppClass:    appClass,
		BundleID:    "com.example." + strings.ToLower(appClass),
		Cfg:         cfg,
		Packages:    resolver.Sorted(manifest.Packages),
		DevPackages: resolver.Sorted(manifest.DevPackages),
	}, nil
}

// Title returns a word with its first letter upcased, for README prose.
func (rc *renderContext) Title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// YesNo renders a feature flag for README prose.
func (rc *renderContext) YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func (rc *renderContext) render(name, body string) ([]byte, error) {
	tmpl, err := template.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, rc); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (rc *renderContext) renderString(s string) (string, error) {
	if !strings.Contains(s, "{{") {
		return s, nil
	}
	out, err := rc.render("path", s)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// descriptorsFor returns the template file set for the record's platform.
func descriptorsFor(cfg *config.Config) []Descriptor {
	if cfg.Platform == config.PlatformMacOS {
		return macOSDescriptors()
	}
	return flutterDescriptors()
}

// directoriesFor returns the directory skeleton for the record's platform,
// parents before children.
func directoriesFor(cfg *config.Config) []string {
	if cfg.Platform == config.PlatformMacOS {
		return macOSDirectories(cfg)
	}
	return flutterDirectories(cfg)
}
