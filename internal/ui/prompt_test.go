package ui

import "testing"

func TestIsCI(t *testing.T) {
	for _, v := range []string{"CI", "APPGEN_CI", "GITHUB_ACTIONS", "GITLAB_CI"} {
		t.Setenv(v, "")
	}

	if IsCI() {
		t.Error("IsCI() = true with no CI variables set")
	}

	t.Setenv("CI", "true")
	if !IsCI() {
		t.Error("IsCI() = false with CI=true")
	}

	t.Setenv("CI", "false")
	if IsCI() {
		t.Error("IsCI() = true with CI=false")
	}

	t.Setenv("CI", "0")
	t.Setenv("APPGEN_CI", "1")
	if !IsCI() {
		t.Error("IsCI() = false with APPGEN_CI=1")
	}
}

func TestIsInteractiveUnderCI(t *testing.T) {
	t.Setenv("CI", "true")
	if IsInteractive() {
		t.Error("IsInteractive() = true under CI")
	}
}
