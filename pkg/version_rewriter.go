package updateversions

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// VersionAttribute identifies which version declaration kind to rewrite.
type VersionAttribute int

const (
	// AssemblyVersion matches [assembly: AssemblyVersion("w.x.y.z")] lines.
	AssemblyVersion VersionAttribute = iota
	// AssemblyFileVersion matches [assembly: AssemblyFileVersion("w.x.y.z")] lines.
	AssemblyFileVersion
)

func (a VersionAttribute) String() string {
	switch a {
	case AssemblyVersion:
		return "AssemblyVersion"
	case AssemblyFileVersion:
		return "AssemblyFileVersion"
	default:
		return fmt.Sprintf("VersionAttribute(%d)", int(a))
	}
}

// versionPatterns holds one precompiled pattern per attribute kind. The
// attribute name is baked into the pattern at compile time and never built
// from caller input, so it cannot smuggle regex metacharacters into the
// engine. Each pattern is anchored at line start and captures the text up to
// and including the minor component, the build component, and the revision
// component with its closing quote and parenthesis. Declarations with fewer
// than four dotted components simply never match and are left alone.
var versionPatterns = map[VersionAttribute]*regexp.Regexp{
	AssemblyVersion:     regexp.MustCompile(`^(\s*\[assembly:\s*AssemblyVersion\("\d+\.\d+\.)(\d+)(\.\d+"\))`),
	AssemblyFileVersion: regexp.MustCompile(`^(\s*\[assembly:\s*AssemblyFileVersion\("\d+\.\d+\.)(\d+)(\.\d+"\))`),
}

// UpdateVersionNumbers rewrites the build component of every matching version
// declaration of the given attribute kind in the given files. It returns the
// paths of the files it wrote, in input order. Files with no matching line
// are never opened for writing, so their modification time is untouched.
// The first file that cannot be read or written aborts the run; no
// skip-and-continue is attempted. A file is always rewritten through an
// in-memory buffer committed with a rename, so a failure partway through can
// never leave it truncated.
func UpdateVersionNumbers(filePaths []string, attribute VersionAttribute, buildNumber int) ([]string, error) {
	if buildNumber < 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidBuildNumber, buildNumber)
	}

	pattern := versionPatterns[attribute]
	build := strconv.Itoa(buildNumber)

	var updated []string
	for _, path := range filePaths {
		changed, err := updateFile(path, pattern, build)
		if err != nil {
			return nil, err
		}
		if changed {
			updated = append(updated, path)
		}
	}
	return updated, nil
}

// rewriteLine replaces the build component of a matching version declaration
// with build. On no match the line is returned unchanged. Line terminators
// and everything outside the matched numeric component pass through verbatim.
func rewriteLine(line string, pattern *regexp.Regexp, build string) (string, bool) {
	m := pattern.FindStringSubmatchIndex(line)
	if m == nil {
		return line, false
	}
	// m[3] is the end of the prefix group, m[6] the start of the revision
	// group; the slice between them is the old build component.
	return line[:m[3]] + build + line[m[6]:], true
}

// updateFile buffers a rewritten copy of the file in memory, one line at a
// time with terminators preserved, and commits it back only if at least one
// line matched.
func updateFile(path string, pattern *regexp.Regexp, build string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %q: %w", path, err)
	}

	var buffer bytes.Buffer
	changed := false
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			rewritten, matched := rewriteLine(line, pattern, build)
			buffer.WriteString(rewritten)
			changed = changed || matched
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			file.Close()
			return false, fmt.Errorf("reading %q: %w", path, err)
		}
	}
	if err := file.Close(); err != nil {
		return false, fmt.Errorf("closing %q: %w", path, err)
	}

	if !changed {
		return false, nil
	}
	if err := writeFileAtomic(path, buffer.Bytes()); err != nil {
		return false, err
	}
	return true, nil
}

// scanFile reports whether any line in the file matches the pattern, without
// modifying anything.
func scanFile(path string, pattern *regexp.Regexp) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening %q: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if pattern.MatchString(line) {
				return true, nil
			}
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("reading %q: %w", path, err)
		}
	}
}

// writeFileAtomic replaces the file at path with data by writing a temporary
// file in the same directory and renaming it into place, keeping the original
// file mode. The original is never truncated in place.
func writeFileAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %q: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %q: %w", path, err)
	}
	if err := tmp.Chmod(info.Mode()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file for %q: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %q: %w", path, err)
	}
	return nil
}
