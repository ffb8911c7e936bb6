// Package tidy plans and executes cleanup of the desktop and downloads
// directories.
//
// A run has two phases. Plan scans both directories, classifies every
// entry and produces a Report describing all intended moves and
// deletions without mutating the filesystem. Apply performs the
// report's actions in order and stops at the first failure, returning a
// record of what completed. Because the phases are separate passes over
// the filesystem, an entry may change between them; the tool assumes
// uncontended access to the scanned directories for the duration of a
// run.
package tidy
