// Package buildinfo holds values injected at link time, for example:
//
//	go build -ldflags "-X github.com/zbiljic/lee/internal/buildinfo.Version=1.2.0"
package buildinfo

var (
	Version   string = "0.0.0"
	GitCommit string
	BuildDate string
	BuiltBy   string
)
