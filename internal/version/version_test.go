package version

import (
	"runtime/debug"
	"testing"
)

func TestFillFromSettings(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "", ""
	fillFromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2026-03-04T05:06:07Z"},
	})

	if Commit != "0123456-dirty" {
		t.Errorf("Commit = %q, want 0123456-dirty", Commit)
	}
	if Version != "dev-20260304" {
		t.Errorf("Version = %q, want dev-20260304", Version)
	}
	if got := Full(); got != "dev-20260304 (commit: 0123456-dirty)" {
		t.Errorf("Full() = %q", got)
	}
}

func TestFillFromSettingsKeepsLdflags(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.0.0", "abc1234"
	fillFromSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "ffffffffff"}})

	if Version != "v1.0.0" || Commit != "abc1234" {
		t.Errorf("ldflags values overwritten: %s %s", Version, Commit)
	}
}
