package version

import "runtime/debug"

// Version can be set at build time, e.g.
// go build -ldflags "-X github.com/VCVRack/Fundamental/version.Version=v2.0.0" ./cmd/quantizer-presets

var Version string

// Hash is the short VCS revision the binary was built from, with a "-dirty"
// suffix if the work tree had local modifications. Empty if unknown.
var Hash = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return vcsHash(info.Settings)
}()

var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	return Hash
}()

func vcsHash(settings []debug.BuildSetting) string {
	var revision string
	modified := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if revision != "" && modified {
		return revision + "-dirty"
	}
	return revision
}
