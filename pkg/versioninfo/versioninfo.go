package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Info describes a build of the binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// Short returns the normalised "vX.Y.Z" version, the raw version if it is
// not semver, or "dev" when unset.
func (vi Info) Short() string {
	if vi.Version == "" {
		return "dev"
	}

	version, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
	if err != nil {
		return vi.Version
	}

	return "v" + version.String()
}

func (vi Info) String() string {
	elems := []string{vi.Short()}

	if vi.Commit != "" {
		commit := vi.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		elems = append(elems, "commit "+commit)
	}
	if vi.Date != "" {
		elems = append(elems, "built at "+vi.Date)
	}
	if vi.BuiltBy != "" {
		elems = append(elems, "built by "+vi.BuiltBy)
	}

	return strings.Join(elems, ", ")
}
