package parse

// Dead-code related diagnostic codes per tool. Both analyzers report far more
// than unused code; normalization keeps only these codes unless the caller
// asks for everything. Pyre has no comparable table: every error it emits is
// kept as-is.

var flake8DeadCodes = map[string]string{
	"F401": "imported but unused",
	"F811": "redefinition of unused name",
	"F841": "local variable assigned but never used",
	"F842": "local variable annotated but never used",
}

var pylintDeadCodes = map[string]string{
	"W0101": "unreachable code",
	"W0125": "constant conditional branch",
	"W0238": "unused private member",
	"W0611": "unused import",
	"W0612": "unused variable",
	"W0613": "unused argument",
	"W0614": "unused wildcard import",
	"W0641": "possibly unused variable",
}

// DeadCodeCodes returns the dead-code diagnostic codes and their meanings for
// the given tool. The map is nil for tools without a code filter (pyre).
func DeadCodeCodes(tool string) map[string]string {
	switch tool {
	case "flake8":
		return flake8DeadCodes
	case "pylint":
		return pylintDeadCodes
	default:
		return nil
	}
}
