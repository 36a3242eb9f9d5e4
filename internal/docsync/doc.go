// Package docsync detects documentation that has gone stale relative to
// recent source changes.
//
// A sync run resolves a baseline time, lists the paths git reports as
// touched since then, and classifies every path against the module registry:
//
//   - a path with a source extension whose module has a documentation file is
//     recorded under that module;
//   - independently, a path containing any root marker substring is recorded
//     under the root document.
//
// The result can be rendered as a Markdown update plan, a one-line status or
// a JSON summary for CI.
package docsync
