package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestGetVersionInfoUsesLdflags(t *testing.T) {
	prevV, prevR, prevB := Version, Revision, BuiltAt
	Version, Revision, BuiltAt = "1.2.3", "abc1234", "2024-01-02T03:04:05Z"
	defer func() { Version, Revision, BuiltAt = prevV, prevR, prevB }()

	info := GetVersionInfo()
	if info.Version != "1.2.3" || info.Revision != "abc1234" || info.BuiltAt != "2024-01-02T03:04:05Z" {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(info.String(), "Version: 1.2.3") {
		t.Errorf("String() = %q", info.String())
	}

	out, err := info.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var decoded Info
	if err := json.Unmarshal([]byte(out), &decoded); err != nil || decoded != info {
		t.Errorf("JSON round trip = %+v, %v", decoded, err)
	}
}

func TestShortRevision(t *testing.T) {
	if got := shortRevision("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortRevision = %q", got)
	}
	if got := shortRevision("abc"); got != "abc" {
		t.Errorf("shortRevision = %q", got)
	}
}
