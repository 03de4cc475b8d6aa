// Package sqlxdb is the SQL directory backend. The same fixture the in-memory
// backend serves from maps is loaded here into relational tables, in-memory SQLite
// by default, so the portal's joins can also run against a real database.
package sqlxdb

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
)

const dateFormat = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	role       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name  TEXT NOT NULL,
	class_id   TEXT NOT NULL DEFAULT '',
	seq        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS user_children (
	parent_id  TEXT NOT NULL,
	student_id TEXT NOT NULL,
	idx        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS teacher_subjects (
	teacher_id TEXT NOT NULL,
	subject_id TEXT NOT NULL,
	idx        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS classes (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	head_teacher TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS class_students (
	class_id   TEXT NOT NULL,
	student_id TEXT NOT NULL,
	idx        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS subjects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	class_id   TEXT NOT NULL,
	teacher_id TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS schedule_slots (
	subject_id TEXT NOT NULL,
	day        TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time   TEXT NOT NULL,
	room       TEXT NOT NULL,
	idx        INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS assignments (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	subject_id  TEXT NOT NULL,
	class_id    TEXT NOT NULL,
	teacher_id  TEXT NOT NULL,
	due_date    TEXT NOT NULL,
	description TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS grades (
	id          TEXT PRIMARY KEY,
	student_id  TEXT NOT NULL,
	subject_id  TEXT NOT NULL,
	teacher_id  TEXT NOT NULL,
	value       REAL NOT NULL,
	out_of      REAL NOT NULL,
	weight      REAL NOT NULL,
	description TEXT NOT NULL,
	date        TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS attendance_events (
	id         TEXT PRIMARY KEY,
	student_id TEXT NOT NULL,
	type       TEXT NOT NULL,
	status     TEXT NOT NULL,
	date       TEXT NOT NULL,
	lesson     TEXT NOT NULL,
	comments   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS communications (
	id        TEXT PRIMARY KEY,
	audience  TEXT NOT NULL,
	title     TEXT NOT NULL,
	content   TEXT NOT NULL,
	author_id TEXT NOT NULL,
	date      TEXT NOT NULL
);
`

type DB struct {
	*sqlx.DB
}

// New wraps an opened *sql.DB. All queries use '?' bindvars and are rebound to the
// driver's placeholder style, so both sqlite and postgres work.
func New(db *sql.DB, driverName string) *DB {
	return &DB{sqlx.NewDb(db, driverName)}
}

// Load creates the schema and seeds it with a directory snapshot.
func Load(db *DB, users []user.User, data school.Data) error {
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "creating schema")
	}

	tx, err := db.Beginx()
	if err != nil {
		return errors.Wrap(err, "beginning seed transaction")
	}
	defer func() { _ = tx.Rollback() }()

	exec := func(query string, args ...interface{}) error {
		_, err := tx.Exec(tx.Rebind(query), args...)
		return err
	}

	for seq, usr := range users {
		if err = exec(
			`INSERT INTO users (id, role, email, password, first_name, last_name, class_id, seq) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			usr.ID, usr.Role, usr.Email, usr.Password, usr.FirstName, usr.LastName, usr.ClassID, seq,
		); err != nil {
			return errors.Wrap(err, "seeding users")
		}
		for i, childID := range usr.Children {
			if err = exec(
				`INSERT INTO user_children (parent_id, student_id, idx) VALUES (?, ?, ?)`,
				usr.ID, childID, i,
			); err != nil {
				return errors.Wrap(err, "seeding user children")
			}
		}
		for i, subjectID := range usr.Subjects {
			if err = exec(
				`INSERT INTO teacher_subjects (teacher_id, subject_id, idx) VALUES (?, ?, ?)`,
				usr.ID, subjectID, i,
			); err != nil {
				return errors.Wrap(err, "seeding teacher subjects")
			}
		}
	}

	for _, cls := range data.Classes {
		if err = exec(
			`INSERT INTO classes (id, name, head_teacher) VALUES (?, ?, ?)`,
			cls.ID, cls.Name, cls.HeadTeacher,
		); err != nil {
			return errors.Wrap(err, "seeding classes")
		}
		for i, studentID := range cls.Students {
			if err = exec(
				`INSERT INTO class_students (class_id, student_id, idx) VALUES (?, ?, ?)`,
				cls.ID, studentID, i,
			); err != nil {
				return errors.Wrap(err, "seeding class students")
			}
		}
	}

	for _, subj := range data.Subjects {
		if err = exec(
			`INSERT INTO subjects (id, name, class_id, teacher_id) VALUES (?, ?, ?, ?)`,
			subj.ID, subj.Name, subj.ClassID, subj.TeacherID,
		); err != nil {
			return errors.Wrap(err, "seeding subjects")
		}
		for i, slot := range subj.Schedule {
			if err = exec(
				`INSERT INTO schedule_slots (subject_id, day, start_time, end_time, room, idx) VALUES (?, ?, ?, ?, ?, ?)`,
				subj.ID, slot.Day, slot.Start, slot.End, slot.Room, i,
			); err != nil {
				return errors.Wrap(err, "seeding schedule slots")
			}
		}
	}

	for _, asg := range data.Assignments {
		if err = exec(
			`INSERT INTO assignments (id, title, subject_id, class_id, teacher_id, due_date, description) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			asg.ID, asg.Title, asg.SubjectID, asg.ClassID, asg.TeacherID, asg.DueDate.Format(dateFormat), asg.Description,
		); err != nil {
			return errors.Wrap(err, "seeding assignments")
		}
	}

	for _, g := range data.Grades {
		if err = exec(
			`INSERT INTO grades (id, student_id, subject_id, teacher_id, value, out_of, weight, description, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			g.ID, g.StudentID, g.SubjectID, g.TeacherID, g.Value, g.OutOf, g.Weight, g.Description, g.Date.Format(dateFormat),
		); err != nil {
			return errors.Wrap(err, "seeding grades")
		}
	}

	for _, evt := range data.Attendance {
		if err = exec(
			`INSERT INTO attendance_events (id, student_id, type, status, date, lesson, comments) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			evt.ID, evt.StudentID, evt.Type, evt.Status, evt.Date.Format(dateFormat), evt.Lesson, evt.Comments,
		); err != nil {
			return errors.Wrap(err, "seeding attendance")
		}
	}

	for _, msg := range data.Communications {
		if err = exec(
			`INSERT INTO communications (id, audience, title, content, author_id, date) VALUES (?, ?, ?, ?, ?, ?)`,
			msg.ID, msg.Audience, msg.Title, msg.Content, msg.AuthorID, msg.Date.Format(dateFormat),
		); err != nil {
			return errors.Wrap(err, "seeding communications")
		}
	}

	return errors.Wrap(tx.Commit(), "committing seed transaction")
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateFormat, s)
}
