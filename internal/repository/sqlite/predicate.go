package sqlite

// Predicate selects rows of the TimeSheet table by their shape
type Predicate int

const (
	AllEntries Predicate = iota
	// CompletedClockPair matches rows with both clock times set
	CompletedClockPair
	// OpenClockPair matches rows clocked in but not clocked out
	OpenClockPair
	// ManualAddition matches rows created by adding hours directly
	ManualAddition
	// Reportable matches rows that contribute hours to a report
	Reportable
)

const (
	completedClockPairSQL = "ClockInTime IS NOT NULL AND ClockOutTime IS NOT NULL"
	openClockPairSQL      = "ClockInTime IS NOT NULL AND ClockOutTime IS NULL"
	manualAdditionSQL     = "HoursAdded <> 0.0"
)

// SQL returns the boolean expression for the predicate
func (p Predicate) SQL() string {
	switch p {
	case CompletedClockPair:
		return completedClockPairSQL
	case OpenClockPair:
		return openClockPairSQL
	case ManualAddition:
		return manualAdditionSQL
	case Reportable:
		return "(" + completedClockPairSQL + ") OR (" + manualAdditionSQL + ")"
	default:
		return "1=1"
	}
}

// String returns a name for logging
func (p Predicate) String() string {
	switch p {
	case CompletedClockPair:
		return "completed_clock_pair"
	case OpenClockPair:
		return "open_clock_pair"
	case ManualAddition:
		return "manual_addition"
	case Reportable:
		return "reportable"
	default:
		return "all_entries"
	}
}
