package school

import "time"

// Attendance event types
const (
	Absence  AttendanceType = "ABSENCE"
	Lateness AttendanceType = "RETARD"
	Sanction AttendanceType = "SANCTION"
)

// Attendance justification statuses
const (
	Justified   AttendanceStatus = "JUSTIFIEE"
	Unjustified AttendanceStatus = "NON_JUSTIFIE"
	Pending     AttendanceStatus = "EN_ATTENTE"
)

// Communication audience tags
const (
	AudienceAll      Audience = "ALL"
	AudienceStudents Audience = "ELEVES"
	AudienceParents  Audience = "PARENTS"
	AudienceStaff    Audience = "PERSONNEL"
	AudienceTeachers Audience = "PROFESSEURS"
)

type (
	AttendanceType   string
	AttendanceStatus string
	Audience         string

	Class struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		HeadTeacher string   `json:"head_teacher"` // teacher user ID
		Students    []string `json:"students"`     // student user IDs
	}

	// ScheduleSlot is one recurring weekly lesson. Start and End are fixed-width
	// "HH:MM" strings, so lexicographic order is chronological order.
	ScheduleSlot struct {
		Day   string `json:"day"` // French weekday name, eg. "Lundi"
		Start string `json:"start"`
		End   string `json:"end"`
		Room  string `json:"room"`
	}

	Subject struct {
		ID        string         `json:"id"`
		Name      string         `json:"name"`
		ClassID   string         `json:"class_id"`
		TeacherID string         `json:"teacher_id"`
		Schedule  []ScheduleSlot `json:"schedule"`
	}

	Assignment struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		SubjectID   string    `json:"subject_id"`
		ClassID     string    `json:"class_id"` // must equal the subject's ClassID
		TeacherID   string    `json:"teacher_id"`
		DueDate     time.Time `json:"due_date"`
		Description string    `json:"description"`
	}

	Grade struct {
		ID          string    `json:"id"`
		StudentID   string    `json:"student_id"`
		SubjectID   string    `json:"subject_id"`
		TeacherID   string    `json:"teacher_id"`
		Value       float64   `json:"value"`
		OutOf       float64   `json:"out_of"`
		Weight      float64   `json:"weight"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}

	AttendanceEvent struct {
		ID        string           `json:"id"`
		StudentID string           `json:"student_id"`
		Type      AttendanceType   `json:"type"`
		Status    AttendanceStatus `json:"status"`
		Date      time.Time        `json:"date"`
		Lesson    string           `json:"lesson"` // subject ID
		Comments  string           `json:"comments"`
	}

	Communication struct {
		ID       string    `json:"id"`
		Audience Audience  `json:"audience"`
		Title    string    `json:"title"`
		Content  string    `json:"content"`
		AuthorID string    `json:"author_id"`
		Date     time.Time `json:"date"`
	}

	// Data is a full directory snapshot, used to load storage backends.
	Data struct {
		Classes        []Class
		Subjects       []Subject
		Assignments    []Assignment
		Grades         []Grade
		Attendance     []AttendanceEvent
		Communications []Communication
	}
)

// Justified attendance renders as a success indicator; every other status,
// Pending included, needs the visitor's attention and renders as a warning.
func (s AttendanceStatus) Indicator() string {
	if s == Justified {
		return "success"
	}
	return "warning"
}
