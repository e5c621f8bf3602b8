// Package rowmap is the runtime support imported by code that stubgen
// generates.
//
// Generated models convert between their typed fields and an untyped,
// column-keyed Row. The conversion policy lives here so every generated
// model behaves identically:
//
//   - A column is "present" when its key exists in the row, even when the
//     value is nil. nil is the null marker.
//   - Non-nullable integers and text default to 0 and "" when absent or nil.
//   - Nullable integers and text become nil when absent or nil.
//   - Non-nullable timestamps default to Clock.Now() when absent or nil;
//     nullable timestamps become nil.
//
// Timestamps are written back using TimestampLayout, an ISO-8601 form with
// a numeric UTC offset.
package rowmap
