// Package updateversions provides a library for updating the build component
// of version declarations embedded in .NET assembly metadata files.
//
// It provides functionalities for:
//   - Locating candidate files by walking a directory tree and matching a
//     filename suffix (by default "AssemblyInfo.cs", which also matches the
//     common shared "CommonAssemblyInfo.cs").
//   - Rewriting the build component (the third of the four dotted numbers)
//     of AssemblyVersion and AssemblyFileVersion declarations, leaving every
//     other byte of the file untouched.
//   - Reporting exactly which files changed, sorted and deduplicated.
//
// A declaration line looks like:
//
//	[assembly: AssemblyVersion("1.2.3.4")]
//
// Updating it with build number 42 yields:
//
//	[assembly: AssemblyVersion("1.2.42.4")]
//
// Files that contain no matching declaration are never written to, so their
// modification times are preserved. Files are rewritten through an in-memory
// buffer committed with an atomic rename; a failure partway through a write
// never leaves a file truncated. No backup is taken before the rewrite, so
// the caller is responsible for running against a version-controlled or
// backed-up tree.
//
// This library is designed to be used both through the provided CLI and as a
// programmatic API:
//
//	meta, err := updateversions.Run("./src", 42, updateversions.SelectBoth, "")
//	if err != nil {
//	    log.Fatalf("version update failed: %v", err)
//	}
//	for _, path := range meta.UpdatedFiles {
//	    log.Println("updated", path)
//	}
package updateversions
