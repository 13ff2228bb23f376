package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/condaops/envsync/internal/domain/entities"
)

const sourceExtension = ".py"

// PythonScanner extracts top-level import names from Python source trees by
// parsing each file with tree-sitter. Only import statements need to be
// recognized, so a tree with ERROR nodes elsewhere still yields results.
type PythonScanner struct{}

// NewPythonScanner creates a new scanner.
func NewPythonScanner() *PythonScanner {
	return &PythonScanner{}
}

// Scan walks the given directories, parses every Python file, and returns
// the sorted set of distinct external top-level import names. Names in the
// standard-library list or the exclude list are dropped. A path that does
// not exist and a file that fails to parse are both warnings, not errors.
func (it *PythonScanner) Scan(paths []string, exclude []string) ([]string, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excluded[name] = struct{}{}
	}

	found := make(map[string]struct{})

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			logger.Warnf("Scan path does not exist: %s", root)
			continue
		}

		var files []string
		if !info.IsDir() {
			files = []string{root}
		} else {
			files, err = collectSourceFiles(root)
			if err != nil {
				return nil, fmt.Errorf("failed to walk %q: %w", root, err)
			}
		}

		logger.Debugf("Scanning %d Python files in %s", len(files), root)

		for _, file := range files {
			for _, name := range scanFile(file) {
				found[name] = struct{}{}
			}
		}
	}

	var external []string
	for name := range found {
		if entities.IsStdlibModule(name) {
			continue
		}
		if _, skip := excluded[name]; skip {
			continue
		}
		external = append(external, name)
	}
	sort.Strings(external)

	return external, nil
}

// collectSourceFiles lists every Python file under root, recursively.
func collectSourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, sourceExtension) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// scanFile parses a single file and returns the top-level import names it
// references. Unreadable or unparsable files are skipped with a warning.
func scanFile(path string) []string {
	source, err := os.ReadFile(path)
	if err != nil {
		logger.Warnf("Could not read %s: %v", path, err)
		return nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil || tree == nil {
		logger.Warnf("Could not parse %s: %v", path, err)
		return nil
	}
	defer tree.Close()

	return extractImports(tree.RootNode(), source)
}

// extractImports walks the syntax tree and collects the first path segment of
// every absolute import target. Relative imports reference local modules and
// are ignored.
func extractImports(root *sitter.Node, source []byte) []string {
	var names []string

	walk(root, func(n *sitter.Node) {
		switch n.Type() {
		case "import_statement":
			names = append(names, importTargets(n, source)...)
		case "import_from_statement":
			if name, ok := importFromTarget(n, source); ok {
				names = append(names, name)
			}
		}
	})

	return names
}

// importTargets handles "import x", "import x.y", "import x as y" and
// comma-separated forms.
func importTargets(node *sitter.Node, source []byte) []string {
	var names []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "dotted_name":
			names = append(names, topLevelSegment(nodeText(child, source)))
		case "aliased_import":
			if module := dottedNameChild(child, source); module != "" {
				names = append(names, topLevelSegment(module))
			}
		}
	}

	return names
}

// importFromTarget handles "from x import y". Only the module (x) matters;
// a relative module (leading dots) means the statement is skipped entirely.
func importFromTarget(node *sitter.Node, source []byte) (string, bool) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "relative_import":
			return "", false
		case "dotted_name":
			// The first dotted_name in an absolute from-import is the module;
			// later ones are imported symbols.
			return topLevelSegment(nodeText(child, source)), true
		}
	}

	return "", false
}

// dottedNameChild returns the text of the first dotted_name child, if any.
func dottedNameChild(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "dotted_name" {
			return nodeText(child, source)
		}
	}
	return ""
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}

func topLevelSegment(module string) string {
	if idx := strings.Index(module, "."); idx >= 0 {
		return module[:idx]
	}
	return module
}

// walk recursively applies the visitor to every node in the tree.
func walk(node *sitter.Node, visitor func(*sitter.Node)) {
	visitor(node)

	for i := 0; i < int(node.ChildCount()); i++ {
		walk(node.Child(i), visitor)
	}
}
