package entities

// SyncOptions holds the runtime options for a single reconciliation run.
type SyncOptions struct {
	CondaEnv           string
	VenvPath           string
	ScanPaths          []string
	LocalPackages      []string
	PackageManager     string // "auto", "uv", or "pip"
	OutputRequirements string
	OutputSyncScript   string
	NoGenerateFiles    bool
	Verbose            bool
}
