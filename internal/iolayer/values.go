package iolayer

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Normalize converts a value decoded by pgx to one of nil, bool, int64,
// float64, string or time.Time, the types output sinks understand.
func Normalize(v any) any {
	switch x := v.(type) {
	case nil, bool, int64, float64, string, time.Time:
		return x
	case int:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case []byte:
		return string(x)
	case driver.Valuer:
		val, err := x.Value()
		if err != nil || val == nil {
			return nil
		}
		return Normalize(val)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
