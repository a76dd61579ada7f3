package dumpsql

import (
	"strings"

	"github.com/nao1215/dumpsql/domain/model"
)

// filterStatements applies the caller configuration to produce the
// executable statement subset. Source order is preserved. Every rule
// is independent: a statement survives only when no rule excludes it.
func filterStatements(statements []model.Statement, cfg Config) []model.Statement {
	allow := toNameSet(cfg.TableFilter)
	deny := toNameSet(cfg.ExcludeTables)

	kept := make([]model.Statement, 0, len(statements))
	for _, stmt := range statements {
		if excluded(stmt, cfg, allow, deny) {
			continue
		}
		kept = append(kept, stmt)
	}
	return kept
}

// excluded reports whether any configuration rule drops the statement.
func excluded(stmt model.Statement, cfg Config, allow, deny map[string]struct{}) bool {
	if cfg.SchemaOnly && stmt.Kind != model.KindDDL {
		return true
	}
	if cfg.DataOnly && stmt.Kind != model.KindDML {
		return true
	}
	if stmt.Table != "" {
		if len(allow) > 0 {
			if _, ok := allow[stmt.Table]; !ok {
				return true
			}
		}
		if _, ok := deny[stmt.Table]; ok {
			return true
		}
	}
	switch stmt.Operation {
	case model.OperationCreateTable:
		return !cfg.CreateTables
	case model.OperationInsert:
		return !cfg.InsertData
	case model.OperationCreateIndex:
		return !cfg.Indexes
	case model.OperationAlterTable:
		return !cfg.Constraints
	}
	return false
}

// toNameSet lowercases table names into a set, matching the classifier's
// identifier normalization.
func toNameSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}
