// Package repo acquires the working copy to analyze by shelling out to git.
//
// [Setup] clones the target repository when absent, fast-forward pulls it
// when present, and replaces a directory that is not a git repository. Pull
// failures fall back to analyzing the existing tree so a flaky network
// doesn't block a run.
package repo
