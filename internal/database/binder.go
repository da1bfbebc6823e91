package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/projects/internal/types"
)

// ParameterBinder turns a statement written with '?' placeholders plus typed
// values into the dialect's statement text and driver values.
type ParameterBinder interface {
	Bind(query string, params ...any) (string, []any, error)
}

type paramBinder struct {
	dialect Dialect
}

// NewParameterBinder returns the binder used by the repositories
func NewParameterBinder(d Dialect) ParameterBinder {
	return paramBinder{dialect: d}
}

// Bind checks the parameter count against the statement and converts every
// value to a driver value. Decimals are bound with exactly two fractional digits.
func (b paramBinder) Bind(query string, params ...any) (string, []any, error) {
	if n := strings.Count(query, "?"); n != len(params) {
		return "", nil, fmt.Errorf("statement expects %d parameters, got %d", n, len(params))
	}

	args := make([]any, len(params))
	for i, p := range params {
		v, err := bindValue(p)
		if err != nil {
			return "", nil, fmt.Errorf("failed to bind parameter %d: %w", i+1, err)
		}
		args[i] = v
	}
	return b.dialect.rebind(query), args, nil
}

func bindValue(p any) (any, error) {
	switch v := p.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case types.ProjectID:
		return int64(v), nil
	case types.CategoryID:
		return int64(v), nil
	case decimal.Decimal:
		return v.StringFixed(2), nil
	case decimal.NullDecimal:
		if !v.Valid {
			return nil, nil
		}
		return v.Decimal.StringFixed(2), nil
	case sql.NullString:
		if !v.Valid {
			return nil, nil
		}
		return v.String, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %T", p)
	}
}
