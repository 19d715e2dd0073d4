package app

// Build information populated via -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/hyperifyio/emailextract/internal/app.BuildVersion=1.2.0"
var (
	// BuildVersion is the semantic version shown in the banner.
	BuildVersion = "0.1.0"
	// BuildCommit is the VCS commit SHA associated with the build.
	BuildCommit = "unknown"
)
