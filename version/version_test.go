package version

import (
	"runtime/debug"
	"testing"
)

func TestVCSHash(t *testing.T) {
	cases := []struct {
		settings []debug.BuildSetting
		expected string
	}{
		{nil, ""},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}, {Key: "vcs.revision", Value: "0123456789abcdef"}}, "0123456-dirty"},
		{[]debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}, {Key: "vcs.modified", Value: "false"}}, "0123456"},
		{[]debug.BuildSetting{{Key: "vcs.modified", Value: "true"}}, ""},
	}
	for _, c := range cases {
		if got := vcsHash(c.settings); got != c.expected {
			t.Errorf("vcsHash(%v) = %q, expected %q", c.settings, got, c.expected)
		}
	}
}
