package school

import (
	"strconv"
	"time"
)

// Placeholder labels substituted for dangling references; a missing record must
// never abort a whole view.
const (
	SubjectPlaceholder = "Matière"
	ClassPlaceholder   = "Classe"
	NoDataPlaceholder  = "—"
)

var (
	// attendanceTypeLabels and attendanceStatusLabels map every known value to its
	// display text; unknown values display as-is.
	attendanceTypeLabels = map[AttendanceType]string{
		Absence:  "Absence",
		Lateness: "Retard",
		Sanction: "Sanction",
	}
	attendanceStatusLabels = map[AttendanceStatus]string{
		Justified:   "Justifiée",
		Unjustified: "À justifier",
		Pending:     "En attente",
	}

	// frenchWeekdays gives the capitalized French weekday name used by ScheduleSlot.Day.
	// The original portal leaned on the fr-FR locale for this; the table keeps the
	// schedule filter independent of the host's locale data.
	frenchWeekdays = map[time.Weekday]string{
		time.Monday:    "Lundi",
		time.Tuesday:   "Mardi",
		time.Wednesday: "Mercredi",
		time.Thursday:  "Jeudi",
		time.Friday:    "Vendredi",
		time.Saturday:  "Samedi",
		time.Sunday:    "Dimanche",
	}
)

func (t AttendanceType) Label() string {
	if lbl, ok := attendanceTypeLabels[t]; ok {
		return lbl
	}
	return string(t)
}

func (s AttendanceStatus) Label() string {
	if lbl, ok := attendanceStatusLabels[s]; ok {
		return lbl
	}
	return string(s)
}

// Weekday returns the French name of t's weekday.
func Weekday(t time.Time) string {
	return frenchWeekdays[t.Weekday()]
}

// FormatDate renders a date the way the portal displays all dates: dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatAverage renders a grade average with one decimal; "—" when there is none.
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return NoDataPlaceholder
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
