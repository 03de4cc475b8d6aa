package inmemdb

import (
	"github.com/trezcool/campusconnect/core/school"
)

type schoolRepository struct {
	db *schoolTables
}

var _ school.Repository = (*schoolRepository)(nil)

func NewSchoolRepository(db *DB) school.Repository {
	return &schoolRepository{db: db.school}
}

func (repo *schoolRepository) QueryAllClasses() ([]school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]school.Class(nil), repo.db.data.Classes...), nil
}

func (repo *schoolRepository) GetClassByID(id string) (school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, cls := range repo.db.data.Classes {
		if cls.ID == id {
			return cls, nil
		}
	}
	return school.Class{}, school.ErrNotFound
}

func (repo *schoolRepository) QueryClassesByHeadTeacher(teacherID string) ([]school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var classes []school.Class
	for _, cls := range repo.db.data.Classes {
		if cls.HeadTeacher == teacherID {
			classes = append(classes, cls)
		}
	}
	return classes, nil
}

func (repo *schoolRepository) GetSubjectByID(id string) (school.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, subj := range repo.db.data.Subjects {
		if subj.ID == id {
			return subj, nil
		}
	}
	return school.Subject{}, school.ErrNotFound
}

func (repo *schoolRepository) QuerySubjectsByClass(classID string) ([]school.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subjects []school.Subject
	for _, subj := range repo.db.data.Subjects {
		if subj.ClassID == classID {
			subjects = append(subjects, subj)
		}
	}
	return subjects, nil
}

func (repo *schoolRepository) QuerySubjectsByTeacher(teacherID string) ([]school.Subject, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var subjects []school.Subject
	for _, subj := range repo.db.data.Subjects {
		if subj.TeacherID == teacherID {
			subjects = append(subjects, subj)
		}
	}
	return subjects, nil
}

func (repo *schoolRepository) QueryAllAssignments() ([]school.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]school.Assignment(nil), repo.db.data.Assignments...), nil
}

func (repo *schoolRepository) QueryAssignmentsByClass(classID string) ([]school.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var assignments []school.Assignment
	for _, asg := range repo.db.data.Assignments {
		if asg.ClassID == classID {
			assignments = append(assignments, asg)
		}
	}
	return assignments, nil
}

func (repo *schoolRepository) QueryAssignmentsByTeacher(teacherID string) ([]school.Assignment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var assignments []school.Assignment
	for _, asg := range repo.db.data.Assignments {
		if asg.TeacherID == teacherID {
			assignments = append(assignments, asg)
		}
	}
	return assignments, nil
}

func (repo *schoolRepository) QueryGradesByStudent(studentID string) ([]school.Grade, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var grades []school.Grade
	for _, g := range repo.db.data.Grades {
		if g.StudentID == studentID {
			grades = append(grades, g)
		}
	}
	return grades, nil
}

func (repo *schoolRepository) QueryAllAttendance() ([]school.AttendanceEvent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]school.AttendanceEvent(nil), repo.db.data.Attendance...), nil
}

func (repo *schoolRepository) QueryAttendanceByStudent(studentID string) ([]school.AttendanceEvent, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var events []school.AttendanceEvent
	for _, evt := range repo.db.data.Attendance {
		if evt.StudentID == studentID {
			events = append(events, evt)
		}
	}
	return events, nil
}

func (repo *schoolRepository) QueryAllCommunications() ([]school.Communication, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]school.Communication(nil), repo.db.data.Communications...), nil
}
