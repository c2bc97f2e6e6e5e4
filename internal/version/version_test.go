package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteBanner_Plain(t *testing.T) {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	Version, Commit, BuildTime = "test-ver", "test-commit", "test-time"
	defer func() { Version, Commit, BuildTime = origVersion, origCommit, origBuildTime }()

	var buf bytes.Buffer
	writeBanner(&buf, false, "http://registry.test")
	out := buf.String()

	for _, want := range []string{"test-ver", "test-commit", "test-time", "Channel Registry Editor", "http://registry.test"} {
		if !strings.Contains(out, want) {
			t.Fatalf("banner missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Fatalf("plain banner must not contain ANSI codes")
	}
}

func TestWriteBanner_ColorOmitsEmptyRegistry(t *testing.T) {
	var buf bytes.Buffer
	writeBanner(&buf, true, "")
	out := buf.String()
	if !strings.Contains(out, colorCyan) {
		t.Fatalf("color banner missing ANSI codes")
	}
	if strings.Contains(out, "Registry:") {
		t.Fatalf("empty registry should be omitted")
	}
}

func TestString(t *testing.T) {
	if s := String(); !strings.Contains(s, Version) || !strings.Contains(s, Commit) {
		t.Fatalf("String() = %q", s)
	}
}
