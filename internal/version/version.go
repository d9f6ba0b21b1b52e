package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/kdrblkbs/ayarla/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/kdrblkbs/ayarla/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/kdrblkbs/ayarla/internal/version.Date={{.Date}}
)
