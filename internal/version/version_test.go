package version

import "testing"

func TestVersionHasDefaultValue(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestVersionCanBeOverridden(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()
	Version = "1.2.3"
	if Version != "1.2.3" {
		t.Errorf("Version = %q, want %q", Version, "1.2.3")
	}
}

func TestGitCommitAndBuildDateOptional(t *testing.T) {
	if GitCommit != "" {
		t.Errorf("expected GitCommit to default empty, got %q", GitCommit)
	}
	if BuildDate != "" {
		t.Errorf("expected BuildDate to default empty, got %q", BuildDate)
	}
}
