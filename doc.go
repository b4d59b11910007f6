// Package main implements the updateversions CLI tool.
//
// The updateversions tool is a command-line interface that sets the build
// number in .NET assembly version declarations across a source tree. It walks
// a root directory, collects every file whose name ends with a configurable
// suffix (default "AssemblyInfo.cs"), and rewrites the build component (the
// third of the four dotted numbers) of AssemblyVersion and
// AssemblyFileVersion declarations in those files. All other file content is
// preserved byte for byte, and files without a matching declaration are never
// written to.
//
// Command Usage:
//
//	updateversions [flags] <directory> <buildnumber>
//
// Flags:
//
//	-v, --versionname: The type of version that will be updated. This can be
//	                   AssemblyVersion (a), AssemblyFileVersion (f) or both (b).
//	                   (Defaults to "b")
//	-f, --fileending:  The last part of the name of the files that may contain
//	                   version declarations. This is usually "AssemblyInfo.cs",
//	                   but may be "CommonAssemblyInfo.cs".
//	                   (Defaults to "AssemblyInfo.cs")
//	--dry:             Reports the files that would be updated without writing
//	                   to any of them.
//	--version:         Displays the version of the updateversions CLI tool and exits.
//
// Examples:
//
//	# Set the build number to 42 in both declaration kinds
//	updateversions ./src 42
//
//	# Update only AssemblyVersion declarations
//	updateversions -v a ./src 42
//
//	# Update only AssemblyFileVersion declarations
//	updateversions -v f ./src 42
//
//	# Search for shared CommonAssemblyInfo.cs files only
//	updateversions -f CommonAssemblyInfo.cs ./src 42
//
//	# See what would change without touching anything
//	updateversions --dry ./src 42
//
// On success the tool prints a header line, the sorted and deduplicated path
// of every updated file (one per line), and a closing "Finished" marker. A
// missing directory, a negative build number, or any file that cannot be read
// or written terminates the run with a non-zero exit code before or at the
// point of failure; no partial-success accounting is attempted.
//
// For more detailed API documentation, please see the documentation in the
// "pkg" package.
package main
