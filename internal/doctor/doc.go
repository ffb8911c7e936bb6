// Package doctor checks the declared folder layout against the
// filesystem and can create whatever is missing. It makes no policy
// decisions: a path either exists or it does not.
package doctor
