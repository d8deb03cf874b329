package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	defer func() { Version = old }()

	if got := String(); !strings.Contains(got, "version: v1.2.3") {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} v1.2.3") {
		t.Errorf("Template() = %q", got)
	}
	if got := UserAgent(); got != "dialoguewheel/v1.2.3" {
		t.Errorf("UserAgent() = %q", got)
	}
}
