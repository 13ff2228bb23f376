package entities

// pythonStdlib lists the standard-library module names excluded from scan
// results. Not exhaustive, but covers what shows up in practice; projects can
// extend it via the stdlib_extras config key.
var pythonStdlib = map[string]struct{}{
	"__future__":      {},
	"abc":             {},
	"argparse":        {},
	"ast":             {},
	"asyncio":         {},
	"base64":          {},
	"collections":     {},
	"configparser":    {},
	"contextlib":      {},
	"copy":            {},
	"csv":             {},
	"dataclasses":     {},
	"datetime":        {},
	"decimal":         {},
	"enum":            {},
	"functools":       {},
	"glob":            {},
	"hashlib":         {},
	"hmac":            {},
	"html":            {},
	"http":            {},
	"importlib":       {},
	"io":              {},
	"itertools":       {},
	"json":            {},
	"logging":         {},
	"math":            {},
	"multiprocessing": {},
	"os":              {},
	"pathlib":         {},
	"pickle":          {},
	"random":          {},
	"re":              {},
	"secrets":         {},
	"shutil":          {},
	"signal":          {},
	"socket":          {},
	"sqlite3":         {},
	"statistics":      {},
	"string":          {},
	"subprocess":      {},
	"sys":             {},
	"tempfile":        {},
	"threading":       {},
	"time":            {},
	"traceback":       {},
	"types":           {},
	"typing":          {},
	"unittest":        {},
	"urllib":          {},
	"uuid":            {},
	"warnings":        {},
	"weakref":         {},
	"xml":             {},
}

// IsStdlibModule reports whether the given top-level import name belongs to
// the Python standard library.
func IsStdlibModule(name string) bool {
	_, ok := pythonStdlib[name]
	return ok
}
