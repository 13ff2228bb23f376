package entities

import "sort"

// Mismatch is a distribution installed in both environments at different
// version strings. The conda side is the version of record.
type Mismatch struct {
	Name         string
	CondaVersion string
	VenvVersion  string
}

// MissingPackage is a distribution required by the code and present in conda
// but absent from the venv.
type MissingPackage struct {
	Name         string
	CondaVersion string
}

// ComparisonResult holds the three disjoint classification sets produced by
// Compare, each sorted alphabetically by distribution name.
type ComparisonResult struct {
	Mismatches    []Mismatch
	MissingInVenv []MissingPackage
	NotInConda    []string
}

// InSync reports whether all three sets are empty.
func (r ComparisonResult) InSync() bool {
	return len(r.Mismatches) == 0 && len(r.MissingInVenv) == 0 && len(r.NotInConda) == 0
}

// Compare classifies every scanned import name against the two environments.
// Each name is mapped to its distribution name first; lookups tolerate case
// and hyphen/underscore variations. Packages installed but never imported are
// not reported.
func Compare(imports []string, nameMap NameMap, conda, venv PackageSet) ComparisonResult {
	seen := make(map[string]struct{}, len(imports))
	var result ComparisonResult

	for _, importName := range imports {
		dist := NormalizeName(nameMap.Resolve(importName))
		if _, dup := seen[dist]; dup {
			continue
		}
		seen[dist] = struct{}{}

		condaVersion, inConda := conda.Lookup(dist)
		if !inConda {
			result.NotInConda = append(result.NotInConda, dist)
			continue
		}

		venvVersion, inVenv := venv.Lookup(dist)
		if !inVenv {
			result.MissingInVenv = append(result.MissingInVenv, MissingPackage{
				Name:         dist,
				CondaVersion: condaVersion,
			})
			continue
		}

		if condaVersion != venvVersion {
			result.Mismatches = append(result.Mismatches, Mismatch{
				Name:         dist,
				CondaVersion: condaVersion,
				VenvVersion:  venvVersion,
			})
		}
	}

	sort.Slice(result.Mismatches, func(i, j int) bool {
		return result.Mismatches[i].Name < result.Mismatches[j].Name
	})
	sort.Slice(result.MissingInVenv, func(i, j int) bool {
		return result.MissingInVenv[i].Name < result.MissingInVenv[j].Name
	})
	sort.Strings(result.NotInConda)

	return result
}
