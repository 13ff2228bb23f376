package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/condaops/envsync/internal/domain/entities"
)

const headerWidth = 80

// Render writes the comparison report as column-aligned plain text. Each
// section appears only when its set is non-empty; an all-empty result prints
// a single in-sync message.
func Render(w io.Writer, result entities.ComparisonResult, condaCount, venvCount int) {
	bar := strings.Repeat("=", headerWidth)

	fmt.Fprintln(w, bar)
	fmt.Fprintln(w, "ENVIRONMENT SYNCHRONIZATION REPORT")
	fmt.Fprintln(w, bar)

	if result.InSync() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "✅ Environments are in sync!")
	} else {
		renderMismatches(w, result.Mismatches)
		renderMissing(w, result.MissingInVenv)
		renderNotInConda(w, result.NotInConda)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bar)
	fmt.Fprintf(w, "Summary: %d conda packages, %d venv packages\n", condaCount, venvCount)
	fmt.Fprintln(w, bar)
}

func renderMismatches(w io.Writer, mismatches []entities.Mismatch) {
	if len(mismatches) == 0 {
		return
	}

	nameW := len("Package")
	condaW := len("Conda (Reference)")
	venvW := len("Venv (Current)")
	for _, m := range mismatches {
		if len(m.Name) > nameW {
			nameW = len(m.Name)
		}
		if len(m.CondaVersion) > condaW {
			condaW = len(m.CondaVersion)
		}
		if len(m.VenvVersion) > venvW {
			venvW = len(m.VenvVersion)
		}
	}

	fmt.Fprintf(w, "\n❌ VERSION MISMATCHES (%d packages):\n", len(mismatches))
	fmt.Fprintln(w, strings.Repeat("-", headerWidth))
	fmt.Fprintf(w, "%-*s  %-*s  %-*s\n",
		nameW, "Package",
		condaW, "Conda (Reference)",
		venvW, "Venv (Current)")
	fmt.Fprintln(w, strings.Repeat("-", headerWidth))

	for _, m := range mismatches {
		fmt.Fprintf(w, "%-*s  %-*s  %-*s\n",
			nameW, m.Name,
			condaW, m.CondaVersion,
			venvW, m.VenvVersion)
	}
}

func renderMissing(w io.Writer, missing []entities.MissingPackage) {
	if len(missing) == 0 {
		return
	}

	nameW := 0
	for _, pkg := range missing {
		if len(pkg.Name) > nameW {
			nameW = len(pkg.Name)
		}
	}

	fmt.Fprintf(w, "\n⚠️  MISSING IN VENV (%d packages):\n", len(missing))
	fmt.Fprintln(w, strings.Repeat("-", headerWidth))
	for _, pkg := range missing {
		fmt.Fprintf(w, "  - %-*s  (conda version: %s)\n", nameW, pkg.Name, pkg.CondaVersion)
	}
}

func renderNotInConda(w io.Writer, names []string) {
	if len(names) == 0 {
		return
	}

	fmt.Fprintf(w, "\n⚠️  NOT IN CONDA ENV (%d packages):\n", len(names))
	fmt.Fprintln(w, strings.Repeat("-", headerWidth))
	fmt.Fprintln(w, "These packages are imported in the code but not found in the conda environment.")
	fmt.Fprintln(w, "They might be:")
	fmt.Fprintln(w, "  1. Incorrectly mapped import names (extend package_map in the config)")
	fmt.Fprintln(w, "  2. Packages installed via pip in the conda env but since removed")
	fmt.Fprintln(w, "  3. Optional dependencies that aren't needed")
	fmt.Fprintln(w)
	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}
}
