package sqlite

import (
	"github.com/shopspring/decimal"
)

// ValueKind tells the store how to write an optional date or time column
type ValueKind int

const (
	// ValueNull writes SQL NULL
	ValueNull ValueKind = iota
	// ValueNow lets the database substitute its current local date or time
	ValueNow
	// ValueLiteral writes the text in Value.Text
	ValueLiteral
)

// Value is the content of an optional date or time column
type Value struct {
	Kind ValueKind
	Text string
}

// Null returns a NULL column value
func Null() Value {
	return Value{Kind: ValueNull}
}

// CurrentTime returns a value resolved by the database at write time
func CurrentTime() Value {
	return Value{Kind: ValueNow}
}

// Literal returns a value holding the given date or timestamp text
func Literal(text string) Value {
	return Value{Kind: ValueLiteral, Text: text}
}

// IsNull returns true if the value is SQL NULL
func (v Value) IsNull() bool {
	return v.Kind == ValueNull
}

// Entry represents a row of the TimeSheet table
type Entry struct {
	ID             int64
	HoursAdded     decimal.Decimal
	HoursAddedDate Value
	ClockInTime    Value
	ClockOutTime   Value
	CreationTime   Value
	LastUpdateTime Value

	// Computed on select: hours the row contributes and the date it is
	// reported under. TotalHours is NULL for open clock pairs.
	TotalHours    decimal.NullDecimal
	TimeSheetDate Value
}

// DayTotal is one row of the grouped report query
type DayTotal struct {
	TimeSheetDate string
	TotalHours    decimal.Decimal
}
