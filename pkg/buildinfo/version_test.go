package buildinfo

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	old := Version
	defer func() { Version = old }()
	Version = "v1.2.3"

	if got := Info().Version; got != "v1.2.3" {
		t.Errorf("Info().Version = %q, want %q", got, "v1.2.3")
	}
	if !strings.Contains(Template(), "version v1.2.3") {
		t.Errorf("Template() = %q, want it to contain the version", Template())
	}
}
