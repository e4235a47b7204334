package user

import (
	"fmt"
	"strconv"
	"strings"
)

// RecordSeparator delimits fields of a persisted user record.
const RecordSeparator = "|"

// recordFields is the number of fields in a record.
const recordFields = 6

// FormatError reports a record or numeric input that could not be parsed.
type FormatError struct {
	// Line is the 1-based line number in the source file, 0 when unknown.
	Line int

	// Field names the field that failed, empty when the record shape was wrong.
	Field string

	Input string
	Err   error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("invalid data format")
	if e.Line > 0 {
		fmt.Fprintf(&b, " on line %d", e.Line)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": %s %q", e.Field, e.Input)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// MarshalRecord renders the user as a single pipe-delimited line without a
// trailing newline:
//
//	username|exerciseMinutes|waterIntakeLiters|sleepHours|plasticReductionKg|carbonReductionKg
//
// Badges are not included.
func (u *User) MarshalRecord() string {
	fields := []string{
		u.Username,
		strconv.Itoa(u.Health.ExerciseMinutes),
		strconv.Itoa(u.Health.WaterIntakeLiters),
		strconv.Itoa(u.Health.SleepHours),
		strconv.FormatFloat(u.Environment.PlasticReductionKg, 'f', -1, 64),
		strconv.FormatFloat(u.Environment.CarbonReductionKg, 'f', -1, 64),
	}
	return strings.Join(fields, RecordSeparator)
}

// ParseRecord parses a line produced by MarshalRecord. Fields past the sixth
// are ignored. The returned user has no badges.
func ParseRecord(line string) (*User, error) {
	parts := strings.Split(line, RecordSeparator)
	if len(parts) < recordFields {
		return nil, &FormatError{
			Input: line,
			Err:   fmt.Errorf("expected %d fields, got %d", recordFields, len(parts)),
		}
	}

	u := New(parts[0])

	ints := []struct {
		name string
		dst  *int
	}{
		{"exerciseMinutes", &u.Health.ExerciseMinutes},
		{"waterIntakeLiters", &u.Health.WaterIntakeLiters},
		{"sleepHours", &u.Health.SleepHours},
	}
	for i, f := range ints {
		v, err := ParseInt(f.name, parts[1+i])
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"plasticReductionKg", &u.Environment.PlasticReductionKg},
		{"carbonReductionKg", &u.Environment.CarbonReductionKg},
	}
	for i, f := range floats {
		v, err := ParseFloat(f.name, parts[4+i])
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	return u, nil
}

// ParseInt parses an integer amount, surrounding whitespace allowed.
func ParseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Field: field, Input: s, Err: numErr(err)}
	}
	return v, nil
}

// ParseFloat parses a real amount using '.' as the decimal point.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &FormatError{Field: field, Input: s, Err: numErr(err)}
	}
	return v, nil
}

// numErr strips the strconv wrapper, which repeats the input.
func numErr(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
