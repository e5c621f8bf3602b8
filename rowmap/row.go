package rowmap

import "time"

// Row is an untyped record keyed by column name.
type Row map[string]any

// Int reads a non-nullable integer column. Absent and nil both read as 0.
func Int(row Row, column string) (int64, error) {
	v, ok := row[column]
	if !ok {
		return 0, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, &ConversionError{Column: column, Value: v, Err: err}
	}
	return n, nil
}

// NullableInt reads a nullable integer column. Absent and nil both read as nil.
func NullableInt(row Row, column string) (*int64, error) {
	v, ok := row[column]
	if !ok || isNull(v) {
		return nil, nil
	}
	n, err := toInt64(v)
	if err != nil {
		return nil, &ConversionError{Column: column, Value: v, Err: err}
	}
	return &n, nil
}

// Text reads a non-nullable text column. Absent and nil both read as "".
func Text(row Row, column string) (string, error) {
	v, ok := row[column]
	if !ok {
		return "", nil
	}
	s, err := toString(v)
	if err != nil {
		return "", &ConversionError{Column: column, Value: v, Err: err}
	}
	return s, nil
}

// NullableText reads a nullable text column. Absent and nil both read as nil.
func NullableText(row Row, column string) (*string, error) {
	v, ok := row[column]
	if !ok || isNull(v) {
		return nil, nil
	}
	s, err := toString(v)
	if err != nil {
		return nil, &ConversionError{Column: column, Value: v, Err: err}
	}
	return &s, nil
}

// Time reads a non-nullable timestamp column. When the column is absent,
// nil or blank the result is clock.Now(); a nil clock means SystemClock.
func Time(row Row, column string, clock Clock) (time.Time, error) {
	v, ok := row[column]
	if !ok || isNull(v) || isBlankTime(v) {
		if clock == nil {
			clock = SystemClock
		}
		return clock.Now(), nil
	}
	t, err := toTime(v)
	if err != nil {
		return time.Time{}, &ConversionError{Column: column, Value: v, Err: err}
	}
	return t, nil
}

// NullableTime reads a nullable timestamp column. Absent, nil and blank
// values read as nil.
func NullableTime(row Row, column string) (*time.Time, error) {
	v, ok := row[column]
	if !ok || isNull(v) || isBlankTime(v) {
		return nil, nil
	}
	t, err := toTime(v)
	if err != nil {
		return nil, &ConversionError{Column: column, Value: v, Err: err}
	}
	return &t, nil
}

// Value returns *p, or an untyped nil when p is nil.
func Value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// FormatTime renders t using TimestampLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimestampLayout)
}

// FormatNullableTime renders t using TimestampLayout, or returns an untyped
// nil when t is nil.
func FormatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatTime(*t)
}
