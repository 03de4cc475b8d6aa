// Package fixture holds the demo directory: the fixed roster of users and school
// records every storage backend is loaded from. The dataset is immutable once loaded.
package fixture

import (
	"time"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DemoUsers returns the demo login roster. Passwords are plaintext on purpose: they
// are listed on the login page so visitors can try each role.
func DemoUsers() []user.User {
	return []user.User{
		{
			ID:        "student-1",
			Role:      user.RoleStudent,
			Email:     "emma.dupont@ecole.fr",
			Password:  "eleve123",
			FirstName: "Emma",
			LastName:  "Dupont",
			ClassID:   "6A",
		},
		{
			ID:        "parent-1",
			Role:      user.RoleParent,
			Email:     "parent.dupont@ecole.fr",
			Password:  "parent123",
			FirstName: "Sophie",
			LastName:  "Dupont",
			Children:  []string{"student-1"},
		},
		{
			ID:        "teacher-1",
			Role:      user.RoleTeacher,
			Email:     "nicolas.bernard@ecole.fr",
			Password:  "prof123",
			FirstName: "Nicolas",
			LastName:  "Bernard",
			Subjects:  []string{"maths-6A", "maths-6B"},
		},
		{
			ID:        "admin-1",
			Role:      user.RoleAdmin,
			Email:     "secretariat@ecole.fr",
			Password:  "admin123",
			FirstName: "Camille",
			LastName:  "Martin",
		},
	}
}

// DemoSchool returns the demo school records keyed against DemoUsers.
func DemoSchool() school.Data {
	return school.Data{
		Classes: []school.Class{
			{ID: "6A", Name: "6ème A", HeadTeacher: "teacher-1", Students: []string{"student-1"}},
			{ID: "6B", Name: "6ème B", HeadTeacher: "teacher-1", Students: []string{}},
		},
		Subjects: []school.Subject{
			{
				ID:        "maths-6A",
				Name:      "Mathématiques",
				ClassID:   "6A",
				TeacherID: "teacher-1",
				Schedule: []school.ScheduleSlot{
					{Day: "Lundi", Start: "09:00", End: "10:00", Room: "Salle 204"},
					{Day: "Jeudi", Start: "11:00", End: "12:00", Room: "Salle 204"},
				},
			},
			{
				ID:        "maths-6B",
				Name:      "Mathématiques",
				ClassID:   "6B",
				TeacherID: "teacher-1",
				Schedule: []school.ScheduleSlot{
					{Day: "Mardi", Start: "10:00", End: "11:00", Room: "Salle 205"},
					{Day: "Vendredi", Start: "08:00", End: "09:00", Room: "Salle 205"},
				},
			},
		},
		Assignments: []school.Assignment{
			{
				ID:          "assignment-1",
				Title:       "Résolution d'équations",
				SubjectID:   "maths-6A",
				ClassID:     "6A",
				TeacherID:   "teacher-1",
				DueDate:     date(2025, time.November, 15),
				Description: "Résoudre les exercices 3 à 8 page 42.",
			},
		},
		Grades: []school.Grade{
			{
				ID:          "grade-1",
				StudentID:   "student-1",
				SubjectID:   "maths-6A",
				TeacherID:   "teacher-1",
				Value:       15.5,
				OutOf:       20,
				Weight:      1,
				Description: "Contrôle chapitre 2",
				Date:        date(2025, time.October, 30),
			},
		},
		Attendance: []school.AttendanceEvent{
			{
				ID:        "abs-1",
				StudentID: "student-1",
				Type:      school.Absence,
				Status:    school.Justified,
				Date:      date(2025, time.October, 12),
				Lesson:    "maths-6A",
				Comments:  "Consultation médicale",
			},
			{
				ID:        "late-1",
				StudentID: "student-1",
				Type:      school.Lateness,
				Status:    school.Unjustified,
				Date:      date(2025, time.October, 20),
				Lesson:    "maths-6A",
				Comments:  "Arrivée à 09h05",
			},
		},
		Communications: []school.Communication{
			{
				ID:       "msg-1",
				Audience: school.AudienceParents,
				Title:    "Réunion parents-professeurs",
				Content:  "Réunion le 24 novembre à 18h00 en salle polyvalente.",
				AuthorID: "admin-1",
				Date:     date(2025, time.November, 5),
			},
		},
	}
}
