package repositories

// ScannerRepository abstracts source-tree import discovery. The production
// implementation parses Python files with tree-sitter; tests substitute a
// stub returning a fixed name set.
type ScannerRepository interface {
	// Scan walks the given directories and returns the distinct top-level
	// import names referenced by any Python file under them, sorted, with
	// standard-library modules and the given excluded names removed.
	// Files that fail to parse are skipped with a warning.
	Scan(paths []string, exclude []string) ([]string, error)
}
