package sqlxdb

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core/school"
)

type (
	classRow struct {
		ID          string `db:"id"`
		Name        string `db:"name"`
		HeadTeacher string `db:"head_teacher"`
	}

	subjectRow struct {
		ID        string `db:"id"`
		Name      string `db:"name"`
		ClassID   string `db:"class_id"`
		TeacherID string `db:"teacher_id"`
	}

	slotRow struct {
		SubjectID string `db:"subject_id"`
		Day       string `db:"day"`
		StartTime string `db:"start_time"`
		EndTime   string `db:"end_time"`
		Room      string `db:"room"`
		Idx       int    `db:"idx"`
	}

	assignmentRow struct {
		ID          string `db:"id"`
		Title       string `db:"title"`
		SubjectID   string `db:"subject_id"`
		ClassID     string `db:"class_id"`
		TeacherID   string `db:"teacher_id"`
		DueDate     string `db:"due_date"`
		Description string `db:"description"`
	}

	gradeRow struct {
		ID          string  `db:"id"`
		StudentID   string  `db:"student_id"`
		SubjectID   string  `db:"subject_id"`
		TeacherID   string  `db:"teacher_id"`
		Value       float64 `db:"value"`
		OutOf       float64 `db:"out_of"`
		Weight      float64 `db:"weight"`
		Description string  `db:"description"`
		Date        string  `db:"date"`
	}

	attendanceRow struct {
		ID        string `db:"id"`
		StudentID string `db:"student_id"`
		Type      string `db:"type"`
		Status    string `db:"status"`
		Date      string `db:"date"`
		Lesson    string `db:"lesson"`
		Comments  string `db:"comments"`
	}

	communicationRow struct {
		ID       string `db:"id"`
		Audience string `db:"audience"`
		Title    string `db:"title"`
		Content  string `db:"content"`
		AuthorID string `db:"author_id"`
		Date     string `db:"date"`
	}
)

type schoolRepository struct {
	db *DB
}

var _ school.Repository = (*schoolRepository)(nil)

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db}
}

func (repo *schoolRepository) toClass(row classRow) (school.Class, error) {
	cls := school.Class{
		ID:          row.ID,
		Name:        row.Name,
		HeadTeacher: row.HeadTeacher,
		Students:    []string{},
	}
	if err := repo.db.Select(
		&cls.Students,
		repo.db.Rebind(`SELECT student_id FROM class_students WHERE class_id = ? ORDER BY idx`),
		cls.ID,
	); err != nil {
		return school.Class{}, errors.Wrap(err, "querying class students")
	}
	return cls, nil
}

func (repo *schoolRepository) toClasses(rows []classRow) ([]school.Class, error) {
	var classes []school.Class
	for _, row := range rows {
		cls, err := repo.toClass(row)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cls)
	}
	return classes, nil
}

func (repo *schoolRepository) QueryAllClasses() ([]school.Class, error) {
	var rows []classRow
	if err := repo.db.Select(&rows, `SELECT * FROM classes ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying classes")
	}
	return repo.toClasses(rows)
}

func (repo *schoolRepository) GetClassByID(id string) (school.Class, error) {
	var row classRow
	err := repo.db.Get(&row, repo.db.Rebind(`SELECT * FROM classes WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return school.Class{}, school.ErrNotFound
	}
	if err != nil {
		return school.Class{}, errors.Wrap(err, "querying class by ID")
	}
	return repo.toClass(row)
}

func (repo *schoolRepository) QueryClassesByHeadTeacher(teacherID string) ([]school.Class, error) {
	var rows []classRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM classes WHERE head_teacher = ? ORDER BY id`), teacherID,
	); err != nil {
		return nil, errors.Wrap(err, "querying classes by head teacher")
	}
	return repo.toClasses(rows)
}

func (repo *schoolRepository) toSubject(row subjectRow) (school.Subject, error) {
	subj := school.Subject{
		ID:        row.ID,
		Name:      row.Name,
		ClassID:   row.ClassID,
		TeacherID: row.TeacherID,
	}
	var slots []slotRow
	if err := repo.db.Select(
		&slots, repo.db.Rebind(`SELECT * FROM schedule_slots WHERE subject_id = ? ORDER BY idx`), subj.ID,
	); err != nil {
		return school.Subject{}, errors.Wrap(err, "querying schedule slots")
	}
	for _, slot := range slots {
		subj.Schedule = append(subj.Schedule, school.ScheduleSlot{
			Day:   slot.Day,
			Start: slot.StartTime,
			End:   slot.EndTime,
			Room:  slot.Room,
		})
	}
	return subj, nil
}

func (repo *schoolRepository) toSubjects(rows []subjectRow) ([]school.Subject, error) {
	var subjects []school.Subject
	for _, row := range rows {
		subj, err := repo.toSubject(row)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subj)
	}
	return subjects, nil
}

func (repo *schoolRepository) GetSubjectByID(id string) (school.Subject, error) {
	var row subjectRow
	err := repo.db.Get(&row, repo.db.Rebind(`SELECT * FROM subjects WHERE id = ?`), id)
	if err == sql.ErrNoRows {
		return school.Subject{}, school.ErrNotFound
	}
	if err != nil {
		return school.Subject{}, errors.Wrap(err, "querying subject by ID")
	}
	return repo.toSubject(row)
}

func (repo *schoolRepository) QuerySubjectsByClass(classID string) ([]school.Subject, error) {
	var rows []subjectRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM subjects WHERE class_id = ? ORDER BY id`), classID,
	); err != nil {
		return nil, errors.Wrap(err, "querying subjects by class")
	}
	return repo.toSubjects(rows)
}

func (repo *schoolRepository) QuerySubjectsByTeacher(teacherID string) ([]school.Subject, error) {
	var rows []subjectRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM subjects WHERE teacher_id = ? ORDER BY id`), teacherID,
	); err != nil {
		return nil, errors.Wrap(err, "querying subjects by teacher")
	}
	return repo.toSubjects(rows)
}

func (repo *schoolRepository) toAssignments(rows []assignmentRow) ([]school.Assignment, error) {
	var assignments []school.Assignment
	for _, row := range rows {
		due, err := parseDate(row.DueDate)
		if err != nil {
			return nil, errors.Wrap(err, "parsing assignment due date")
		}
		assignments = append(assignments, school.Assignment{
			ID:          row.ID,
			Title:       row.Title,
			SubjectID:   row.SubjectID,
			ClassID:     row.ClassID,
			TeacherID:   row.TeacherID,
			DueDate:     due,
			Description: row.Description,
		})
	}
	return assignments, nil
}

func (repo *schoolRepository) QueryAllAssignments() ([]school.Assignment, error) {
	var rows []assignmentRow
	if err := repo.db.Select(&rows, `SELECT * FROM assignments ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying assignments")
	}
	return repo.toAssignments(rows)
}

func (repo *schoolRepository) QueryAssignmentsByClass(classID string) ([]school.Assignment, error) {
	var rows []assignmentRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM assignments WHERE class_id = ? ORDER BY id`), classID,
	); err != nil {
		return nil, errors.Wrap(err, "querying assignments by class")
	}
	return repo.toAssignments(rows)
}

func (repo *schoolRepository) QueryAssignmentsByTeacher(teacherID string) ([]school.Assignment, error) {
	var rows []assignmentRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM assignments WHERE teacher_id = ? ORDER BY id`), teacherID,
	); err != nil {
		return nil, errors.Wrap(err, "querying assignments by teacher")
	}
	return repo.toAssignments(rows)
}

func (repo *schoolRepository) QueryGradesByStudent(studentID string) ([]school.Grade, error) {
	var rows []gradeRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM grades WHERE student_id = ? ORDER BY id`), studentID,
	); err != nil {
		return nil, errors.Wrap(err, "querying grades by student")
	}
	var grades []school.Grade
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, errors.Wrap(err, "parsing grade date")
		}
		grades = append(grades, school.Grade{
			ID:          row.ID,
			StudentID:   row.StudentID,
			SubjectID:   row.SubjectID,
			TeacherID:   row.TeacherID,
			Value:       row.Value,
			OutOf:       row.OutOf,
			Weight:      row.Weight,
			Description: row.Description,
			Date:        date,
		})
	}
	return grades, nil
}

func (repo *schoolRepository) toAttendance(rows []attendanceRow) ([]school.AttendanceEvent, error) {
	var events []school.AttendanceEvent
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, errors.Wrap(err, "parsing attendance date")
		}
		events = append(events, school.AttendanceEvent{
			ID:        row.ID,
			StudentID: row.StudentID,
			Type:      school.AttendanceType(row.Type),
			Status:    school.AttendanceStatus(row.Status),
			Date:      date,
			Lesson:    row.Lesson,
			Comments:  row.Comments,
		})
	}
	return events, nil
}

func (repo *schoolRepository) QueryAllAttendance() ([]school.AttendanceEvent, error) {
	var rows []attendanceRow
	if err := repo.db.Select(&rows, `SELECT * FROM attendance_events ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying attendance")
	}
	return repo.toAttendance(rows)
}

func (repo *schoolRepository) QueryAttendanceByStudent(studentID string) ([]school.AttendanceEvent, error) {
	var rows []attendanceRow
	if err := repo.db.Select(
		&rows, repo.db.Rebind(`SELECT * FROM attendance_events WHERE student_id = ? ORDER BY id`), studentID,
	); err != nil {
		return nil, errors.Wrap(err, "querying attendance by student")
	}
	return repo.toAttendance(rows)
}

func (repo *schoolRepository) QueryAllCommunications() ([]school.Communication, error) {
	var rows []communicationRow
	if err := repo.db.Select(&rows, `SELECT * FROM communications ORDER BY id`); err != nil {
		return nil, errors.Wrap(err, "querying communications")
	}
	var comms []school.Communication
	for _, row := range rows {
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, errors.Wrap(err, "parsing communication date")
		}
		comms = append(comms, school.Communication{
			ID:       row.ID,
			Audience: school.Audience(row.Audience),
			Title:    row.Title,
			Content:  row.Content,
			AuthorID: row.AuthorID,
			Date:     date,
		})
	}
	return comms, nil
}
