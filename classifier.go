package dumpsql

import (
	"regexp"
	"strings"

	"github.com/nao1215/dumpsql/domain/model"
)

// identifier matches a possibly schema-qualified, possibly quoted table
// name and captures the bare identifier. Backtick, double-quote and
// bracket quoting are all tolerated.
const identifier = "(?:[`\"\\[]?\\w+[`\"\\]]?\\s*\\.\\s*)?[`\"\\[]?(\\w+)[`\"\\]]?"

// classifierRule pairs a keyword-prefix pattern with the kind and
// operation it implies. Rules are evaluated in order; first match wins.
type classifierRule struct {
	kind    model.StatementKind
	op      model.Operation
	pattern *regexp.Regexp
	table   *regexp.Regexp
}

var classifierRules = []classifierRule{
	{
		kind:    model.KindDDL,
		op:      model.OperationCreateTable,
		pattern: regexp.MustCompile(`(?i)^\s*CREATE\s+TABLE\b`),
		table:   regexp.MustCompile(`(?is)^\s*CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?` + identifier),
	},
	{
		kind:    model.KindDDL,
		op:      model.OperationDropTable,
		pattern: regexp.MustCompile(`(?i)^\s*DROP\s+TABLE\b`),
		table:   regexp.MustCompile(`(?is)^\s*DROP\s+TABLE\s+(?:IF\s+EXISTS\s+)?` + identifier),
	},
	{
		kind:    model.KindDDL,
		op:      model.OperationAlterTable,
		pattern: regexp.MustCompile(`(?i)^\s*ALTER\s+TABLE\b`),
		table:   regexp.MustCompile(`(?is)^\s*ALTER\s+TABLE\s+(?:IF\s+EXISTS\s+)?(?:ONLY\s+)?` + identifier),
	},
	{
		kind:    model.KindDML,
		op:      model.OperationInsert,
		pattern: regexp.MustCompile(`(?i)^\s*INSERT\s+INTO\b`),
		table:   regexp.MustCompile(`(?is)^\s*INSERT\s+INTO\s+` + identifier),
	},
	{
		kind:    model.KindDML,
		op:      model.OperationUpdate,
		pattern: regexp.MustCompile(`(?i)^\s*UPDATE\b`),
		table:   regexp.MustCompile(`(?is)^\s*UPDATE\s+` + identifier),
	},
	{
		kind:    model.KindDML,
		op:      model.OperationDelete,
		pattern: regexp.MustCompile(`(?i)^\s*DELETE\s+FROM\b`),
		table:   regexp.MustCompile(`(?is)^\s*DELETE\s+FROM\s+` + identifier),
	},
	{
		kind:    model.KindDDL,
		op:      model.OperationCreateIndex,
		pattern: regexp.MustCompile(`(?i)^\s*CREATE\s+(?:UNIQUE\s+)?INDEX\b`),
		table:   regexp.MustCompile(`(?is)\bON\s+` + identifier),
	},
	{
		kind:    model.KindDCL,
		op:      model.OperationGrant,
		pattern: regexp.MustCompile(`(?i)^\s*GRANT\b`),
	},
	{
		kind:    model.KindDCL,
		op:      model.OperationRevoke,
		pattern: regexp.MustCompile(`(?i)^\s*REVOKE\b`),
	},
}

// classifyStatement labels one trimmed statement with its kind,
// operation tag and, where a recognizable keyword+identifier pattern
// matched, the target table name. A statement matching no rule is
// kind OTHER; that is a valid outcome, not an error.
func classifyStatement(frag fragment) model.Statement {
	stmt := model.Statement{
		Kind:       model.KindOther,
		Text:       frag.text,
		Operation:  model.OperationNone,
		LineNumber: frag.lineNumber,
	}

	for _, rule := range classifierRules {
		if !rule.pattern.MatchString(frag.text) {
			continue
		}
		stmt.Kind = rule.kind
		stmt.Operation = rule.op
		if rule.table != nil {
			if m := rule.table.FindStringSubmatch(frag.text); len(m) > 1 {
				stmt.Table = strings.ToLower(m[1])
			}
		}
		break
	}
	return stmt
}

// classifyStatements classifies every fragment in order.
func classifyStatements(fragments []fragment) []model.Statement {
	statements := make([]model.Statement, 0, len(fragments))
	for _, frag := range fragments {
		statements = append(statements, classifyStatement(frag))
	}
	return statements
}
