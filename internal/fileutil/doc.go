// Package fileutil locates archive files on disk.
//
// FindArchives walks one or more directories recursively and returns every
// regular file whose name ends with one of the configured extensions. It is
// the archive enumeration step of find-in-jars.
//
// # Matching Rules
//
//   - Extensions are matched as a case-insensitive suffix ".ext" on the file
//     name, so "jar" matches "a.jar" and "B.JAR" but not "ajar".
//   - A leading dot in an extension is optional: "jar" and ".jar" are equal.
//   - Only regular files qualify. Symbolic links below a directory are neither
//     followed nor reported, matching `find -H DIR -type f`; a directory given
//     as a symbolic link is itself followed.
//   - Hidden directories are searched like any other directory.
//
// # Path Form
//
// Returned paths keep the directory exactly as the caller passed it, followed by
// the path relative to that directory:
//
//	fileutil.FindArchives([]string{"."}, fileutil.ScanOptions{Extensions: []string{"jar"}})
//	// Files: ["./a.jar", "./lib/b.jar"]
//
// Callers that need absolute paths resolve the directories before scanning.
//
// # Error Handling
//
// Unreadable subdirectories do not stop the walk; they are collected in
// ScanResult.Errors. A root directory that cannot be accessed is fatal, and an
// empty result is reported as ErrNoArchives.
package fileutil
