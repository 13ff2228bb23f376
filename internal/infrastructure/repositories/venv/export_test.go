package venv

// InterpreterPath exports interpreterPath for testing.
var InterpreterPath = interpreterPath //nolint:gochecknoglobals // test export

// ParsePackageList exports parsePackageList for testing.
var ParsePackageList = parsePackageList //nolint:gochecknoglobals // test export
