package database

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projects/internal/types"
)

func TestBindConvertsValues(t *testing.T) {
	b := NewParameterBinder(SQLite)

	stmt, args, err := b.Bind("INSERT INTO t VALUES (?, ?, ?, ?, ?, ?)",
		"name",
		7,
		types.ProjectID(3),
		decimal.RequireFromString("1.005"),
		sql.NullString{},
		decimal.NullDecimal{Decimal: decimal.NewFromInt(2), Valid: true},
	)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO t VALUES (?, ?, ?, ?, ?, ?)", stmt)
	assert.Equal(t, []any{"name", int64(7), int64(3), "1.01", nil, "2.00"}, args)
}

func TestBindParameterCountMismatch(t *testing.T) {
	b := NewParameterBinder(SQLite)

	_, _, err := b.Bind("SELECT * FROM project WHERE project_id = ?")
	assert.ErrorContains(t, err, "expects 1 parameters, got 0")

	_, _, err = b.Bind("SELECT * FROM project", 1)
	assert.ErrorContains(t, err, "expects 0 parameters, got 1")
}

func TestBindUnsupportedType(t *testing.T) {
	b := NewParameterBinder(SQLite)

	_, _, err := b.Bind("SELECT ?", 1.5)
	assert.ErrorContains(t, err, "unsupported parameter type float64")
}

func TestBindPostgresRebinds(t *testing.T) {
	b := NewParameterBinder(Postgres)

	stmt, _, err := b.Bind("UPDATE project SET project_name = ? WHERE project_id = ?", "x", 1)
	require.NoError(t, err)
	assert.Equal(t, "UPDATE project SET project_name = $1 WHERE project_id = $2", stmt)
}

func TestDialectForDriver(t *testing.T) {
	tests := []struct {
		driver  string
		want    Dialect
		wantErr bool
	}{
		{driver: DriverSQLite, want: SQLite},
		{driver: DriverPgx, want: Postgres},
		{driver: DriverPostgres, want: Postgres},
		{driver: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := DialectForDriver(tt.driver)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
