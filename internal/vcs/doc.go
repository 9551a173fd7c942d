// Package vcs answers the pending-work questions for a single repository root.
//
// RepositoryChecker is the capability set every version-control backend
// implements; Backend ties a checker constructor to the metadata directory
// that marks a repository root. GitChecker is the only registered backend and
// runs each probe as a git subprocess scoped to the repository directory.
package vcs
