package pgsql

import (
	"fmt"
	"strings"

	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
)

const accountColumns = `id, agencia, conta, name, balance, created_at, updated_at`

// sortColumns is the allow-list of ORDER BY columns.
var sortColumns = map[portsrepo.SortableField]string{
	portsrepo.SortByBalance: "balance",
	portsrepo.SortByName:    "name",
	portsrepo.SortByConta:   "conta",
}

// whereClause renders filter as a WHERE clause with positional arguments.
func whereClause(filter portsrepo.AccountFilter) (string, []any) {
	var conds []string
	var args []any
	if filter.Agencia != nil {
		args = append(args, *filter.Agencia)
		conds = append(conds, fmt.Sprintf("agencia = $%d", len(args)))
	}
	if filter.Conta != nil {
		args = append(args, *filter.Conta)
		conds = append(conds, fmt.Sprintf("conta = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause renders the sort options. The id column is always appended so
// that results are deterministic.
func orderClause(sort []portsrepo.SortField) (string, error) {
	parts := make([]string, 0, len(sort)+1)
	for _, s := range sort {
		col, ok := sortColumns[s.Field]
		if !ok {
			return "", fmt.Errorf("unsupported sort field %q", s.Field)
		}
		dir := "ASC"
		if s.Desc {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
	}
	parts = append(parts, "id ASC")
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

// selectAccountsQuery builds the full SELECT for a filter and options.
func selectAccountsQuery(filter portsrepo.AccountFilter, opts portsrepo.FindOptions, forUpdate bool) (string, []any, error) {
	where, args := whereClause(filter)
	order, err := orderClause(opts.Sort)
	if err != nil {
		return "", nil, err
	}

	query := "SELECT " + accountColumns + " FROM accounts" + where + order
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if forUpdate {
		query += " FOR UPDATE"
	}
	return query, args, nil
}
