package updateversions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultFileEnding is the filename suffix used when the caller does not
// supply one. Most C# solutions keep their version attributes in a file
// called AssemblyInfo.cs or a shared CommonAssemblyInfo.cs; the suffix
// matches both.
const DefaultFileEnding = "AssemblyInfo.cs"

var (
	// ErrDirectoryNotFound is returned when the root search path does not
	// exist or is not a directory.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrInvalidBuildNumber is returned when the supplied build number is
	// negative.
	ErrInvalidBuildNumber = errors.New("build number must be greater than or equal to 0")
)

// AttributeSelector chooses which version attributes a run updates.
type AttributeSelector int

const (
	// SelectAssemblyVersion updates AssemblyVersion declarations only.
	SelectAssemblyVersion AttributeSelector = iota
	// SelectAssemblyFileVersion updates AssemblyFileVersion declarations only.
	SelectAssemblyFileVersion
	// SelectBoth updates both declaration kinds.
	SelectBoth
)

// ParseAttributeSelector maps the CLI selector values to an AttributeSelector:
// "a" for AssemblyVersion, "f" for AssemblyFileVersion, "b" for both.
func ParseAttributeSelector(value string) (AttributeSelector, error) {
	switch value {
	case "a":
		return SelectAssemblyVersion, nil
	case "f":
		return SelectAssemblyFileVersion, nil
	case "b":
		return SelectBoth, nil
	}
	return 0, fmt.Errorf("unknown version name selector %q (expected a, f, or b)", value)
}

// attributes expands the selector into the concrete attribute kinds to run.
func (s AttributeSelector) attributes() []VersionAttribute {
	switch s {
	case SelectAssemblyVersion:
		return []VersionAttribute{AssemblyVersion}
	case SelectAssemblyFileVersion:
		return []VersionAttribute{AssemblyFileVersion}
	default:
		return []VersionAttribute{AssemblyVersion, AssemblyFileVersion}
	}
}

// UpdateMeta holds metadata about an update run.
type UpdateMeta struct {
	BuildNumber  int      // The build number written into the declarations.
	CheckedFiles []string // Every file the locator found, updated or not.
	UpdatedFiles []string // Sorted, deduplicated paths of files that changed.
}

// FindVersionFiles walks the directory tree rooted at rootDirectory and
// returns the paths of all files whose name ends with fileEnding. The scan
// itself guarantees no ordering. The root is validated before any walking
// happens: a missing path or a non-directory yields ErrDirectoryNotFound.
func FindVersionFiles(rootDirectory, fileEnding string) ([]string, error) {
	info, err := os.Stat(rootDirectory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, rootDirectory)
		}
		return nil, fmt.Errorf("checking directory %q: %w", rootDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, rootDirectory)
	}

	var paths []string
	err = filepath.WalkDir(rootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), fileEnding) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", rootDirectory, err)
	}
	return paths, nil
}

// Run locates every file under rootDirectory whose name ends with fileEnding
// and rewrites the build component of the version declarations selected by
// selector. An empty fileEnding falls back to DefaultFileEnding. The returned
// meta lists the checked files and the sorted, deduplicated set of files that
// were actually written; a file containing both declaration kinds appears
// once. The first I/O failure aborts the whole run.
func Run(rootDirectory string, buildNumber int, selector AttributeSelector, fileEnding string) (UpdateMeta, error) {
	meta := UpdateMeta{BuildNumber: buildNumber}

	if buildNumber < 0 {
		return meta, fmt.Errorf("%w, got %d", ErrInvalidBuildNumber, buildNumber)
	}
	if fileEnding == "" {
		fileEnding = DefaultFileEnding
	}

	files, err := FindVersionFiles(rootDirectory, fileEnding)
	if err != nil {
		return meta, err
	}
	meta.CheckedFiles = files

	var updated []string
	for _, attribute := range selector.attributes() {
		paths, err := UpdateVersionNumbers(files, attribute, buildNumber)
		if err != nil {
			return meta, err
		}
		updated = append(updated, paths...)
	}

	meta.UpdatedFiles = sortUnique(updated)
	return meta, nil
}

// DryRun performs the same scan and matching as Run but writes nothing to
// disk. The returned meta lists the files that Run would update.
func DryRun(rootDirectory string, buildNumber int, selector AttributeSelector, fileEnding string) (UpdateMeta, error) {
	meta := UpdateMeta{BuildNumber: buildNumber}

	if buildNumber < 0 {
		return meta, fmt.Errorf("%w, got %d", ErrInvalidBuildNumber, buildNumber)
	}
	if fileEnding == "" {
		fileEnding = DefaultFileEnding
	}

	files, err := FindVersionFiles(rootDirectory, fileEnding)
	if err != nil {
		return meta, err
	}
	meta.CheckedFiles = files

	var wouldUpdate []string
	for _, attribute := range selector.attributes() {
		for _, path := range files {
			matched, err := scanFile(path, versionPatterns[attribute])
			if err != nil {
				return meta, err
			}
			if matched {
				wouldUpdate = append(wouldUpdate, path)
			}
		}
	}

	meta.UpdatedFiles = sortUnique(wouldUpdate)
	return meta, nil
}

// sortUnique sorts paths and drops duplicates. A file updated once per
// attribute kind must still be reported once.
func sortUnique(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	slices.Sort(paths)
	return slices.Compact(paths)
}
