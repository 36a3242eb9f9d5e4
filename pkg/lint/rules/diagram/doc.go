// Package diagram provides lint rules for Mermaid diagram blocks embedded in
// documentation files.
//
// Blocks are delimited by a "```mermaid" fence and the next bare "```" fence.
// Nesting is not supported: an opening fence inside an open block is ignored.
// Checks are line oriented and intentionally shallow; this is not a Mermaid
// grammar validator.
//
// Rules in this package:
//   - DG00: Documentation file cannot be read
//   - DG01: Empty diagram block (warning)
//   - DG02: Unrecognized diagram type
//   - DG03: Flowchart with fewer than two nodes (warning)
//   - DG04: Flowchart edge references an undefined node
//   - DG05: Flowchart subgraph/end mismatch
//   - DG06: Sequence message endpoint is not a declared participant (warning)
//   - DG07: Class relationship endpoint is not a declared class (warning)
//   - DG08: Diagram block is never closed (warning)
//
// The checker passes when no rule reports an error; warnings are listed but
// do not fail the run.
package diagram
