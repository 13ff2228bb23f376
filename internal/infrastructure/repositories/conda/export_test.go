package conda

// ParseEnvList exports parseEnvList for testing.
var ParseEnvList = parseEnvList //nolint:gochecknoglobals // test export

// HasEnv exports hasEnv for testing.
var HasEnv = hasEnv //nolint:gochecknoglobals // test export

// ParsePackageList exports parsePackageList for testing.
var ParsePackageList = parsePackageList //nolint:gochecknoglobals // test export
