package structure

import "github.com/leapstack-labs/docguard/pkg/lint"

func init() {
	lint.Register(ReadError)
}

// ReadError is reported by the analyzer when a documentation file cannot be read.
var ReadError = lint.RuleDef{
	ID:          "DS00",
	Name:        "read-error",
	Group:       lint.GroupStructure,
	Description: "Documentation file cannot be read.",
	Severity:    lint.SeverityError,
	ReadError:   true,

	Fix: "Check the file permissions and that the file is valid UTF-8 text.",
}
