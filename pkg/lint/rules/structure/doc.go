// Package structure provides lint rules for documentation file structure.
//
// Rules in this package:
//   - DS00: Documentation file cannot be read
//   - DS01: Root document required sections
//   - DS02: Root document module diagram
//   - DS03: Root document module index table
//   - DS04: Module document title
//   - DS05: Module document section headings
//   - DS06: Module document navigation breadcrumb
//   - DS07: Consecutive blank lines
//   - DS08: Heading level increments
//   - DS09: Mixed ASCII and full-width punctuation
//
// Every structure finding is an error: the checker passes only when no rule
// reports anything.
package structure
