// Package main implements a CLI tool to update the build component of
// version declarations in assembly metadata files across a directory tree.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	updateversions "github.com/softwarepragmatism/updateversions/pkg"
)

func usage() {
	msg := `Usage:
  updateversions [options] <directory> <buildnumber>

Searches the directory (and all of its subdirectories) for files whose name ends with the
configured suffix, and sets the build number in every AssemblyVersion and AssemblyFileVersion
declaration found in them. Only the third of the four dotted version components is changed.

Examples:
  updateversions ./src 42
  updateversions -v a ./src 42
  updateversions -f CommonAssemblyInfo.cs ./src 42

Positional arguments:
  <directory>        The root directory of the search.
  <buildnumber>      The build number to be set in the version declarations. Must be >= 0.

Options:
`
	fmt.Fprint(os.Stderr, msg)
	pflag.PrintDefaults()
}

func main() {
	// Define flags.
	versionName := pflag.StringP("versionname", "v", "b",
		"The type of version to update: AssemblyVersion (a), AssemblyFileVersion (f) or both (b).")
	fileEnding := pflag.StringP("fileending", "f", updateversions.DefaultFileEnding,
		"The last part of the name of files that may contain version declarations. Usually 'AssemblyInfo.cs', but may be 'CommonAssemblyInfo.cs'.")
	dryRun := pflag.Bool("dry", false, "Report which files would be updated without modifying any of them.")
	showVersion := pflag.Bool("version", false, "Show CLI version and exit.")
	help := pflag.BoolP("help", "h", false, "Show help message and exit.")

	pflag.Usage = usage
	// Flags come before the positionals, so a negative build number is read
	// as a positional argument rather than a flag.
	pflag.CommandLine.SetInterspersed(false)
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Println("updateversions CLI version", Version)
		os.Exit(0)
	}

	args := pflag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Error: <directory> and <buildnumber> positional arguments are required")
		usage()
		os.Exit(1)
	}
	directory := args[0]
	buildNumber, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: build number %q is not an integer\n", args[1])
		os.Exit(1)
	}

	selector, err := updateversions.ParseAttributeSelector(*versionName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		usage()
		os.Exit(1)
	}

	var meta updateversions.UpdateMeta
	if *dryRun {
		meta, err = updateversions.DryRun(directory, buildNumber, selector, *fileEnding)
	} else {
		meta, err = updateversions.Run(directory, buildNumber, selector, *fileEnding)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// Summary
	if *dryRun {
		fmt.Printf("The following files would be updated with build number %d:\n", meta.BuildNumber)
	} else {
		fmt.Printf("The following files were updated with build number %d:\n", meta.BuildNumber)
	}
	for _, path := range meta.UpdatedFiles {
		fmt.Println(path)
	}
	if *dryRun {
		fmt.Println("Dry run complete, no files were modified.")
	} else {
		fmt.Println("Finished")
	}
}
