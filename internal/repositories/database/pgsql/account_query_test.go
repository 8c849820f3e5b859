package pgsql

import (
	"testing"

	portsrepo "github.com/SscSPs/my_bank_api/internal/core/ports/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAccountsQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    portsrepo.AccountFilter
		opts      portsrepo.FindOptions
		forUpdate bool
		wantSQL   string
		wantArgs  []any
	}{
		{
			name:    "no filter",
			wantSQL: "SELECT " + accountColumns + " FROM accounts ORDER BY id ASC",
		},
		{
			name:     "branch and number",
			filter:   portsrepo.ByBranchAndNumber(10, 1001),
			wantSQL:  "SELECT " + accountColumns + " FROM accounts WHERE agencia = $1 AND conta = $2 ORDER BY id ASC",
			wantArgs: []any{10, 1001},
		},
		{
			name:   "poorest with limit",
			filter: portsrepo.AccountFilter{},
			opts: portsrepo.FindOptions{
				Sort:  []portsrepo.SortField{{Field: portsrepo.SortByBalance}, {Field: portsrepo.SortByName}},
				Limit: 3,
			},
			wantSQL:  "SELECT " + accountColumns + " FROM accounts ORDER BY balance ASC, name ASC, id ASC LIMIT $1",
			wantArgs: []any{3},
		},
		{
			name:      "locked lookup by number",
			filter:    portsrepo.ByNumber(7),
			opts:      portsrepo.FindOptions{Limit: 2},
			forUpdate: true,
			wantSQL:   "SELECT " + accountColumns + " FROM accounts WHERE conta = $1 ORDER BY id ASC LIMIT $2 FOR UPDATE",
			wantArgs:  []any{7, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := selectAccountsQuery(tt.filter, tt.opts, tt.forUpdate)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestSelectAccountsQuery_RejectsUnknownSort(t *testing.T) {
	_, _, err := selectAccountsQuery(portsrepo.AccountFilter{}, portsrepo.FindOptions{
		Sort: []portsrepo.SortField{{Field: "balance; DROP TABLE accounts"}},
	}, false)

	assert.Error(t, err)
}
