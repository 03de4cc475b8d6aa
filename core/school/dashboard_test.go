package school_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database/fixture"
)

func demoSession(t *testing.T, users []user.User, id string) user.Session {
	for _, usr := range users {
		if usr.ID == id {
			return usr.Session()
		}
	}
	t.Fatalf("no fixture user %q", id)
	return user.Session{}
}

// The average is the raw mean of the grade values: a 15.5/20 and a 8/10 average to
// 11.75, not to a common scale. The portal has always displayed it that way.
func TestService_AverageGrade(t *testing.T) {
	t.Run("single grade", func(t *testing.T) {
		svc := newDemoService(t)
		avg, ok, err := svc.AverageGrade("student-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 15.5, avg)
	})

	t.Run("raw mean, OutOf ignored", func(t *testing.T) {
		users := fixture.DemoUsers()
		data := fixture.DemoSchool()
		data.Grades = append(data.Grades, school.Grade{
			ID: "grade-2", StudentID: "student-1", SubjectID: "maths-6A", TeacherID: "teacher-1",
			Value: 8, OutOf: 10, Weight: 1, Date: time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC),
		})
		svc := newTestService(t, users, data)

		avg, ok, err := svc.AverageGrade("student-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 11.75, avg)
	})

	t.Run("no grades", func(t *testing.T) {
		svc := newDemoService(t)
		_, ok, err := svc.AverageGrade("student-404")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_StudentDashboard(t *testing.T) {
	users := fixture.DemoUsers()
	svc := newDemoService(t)

	dash, err := svc.StudentDashboard(demoSession(t, users, "student-1"))
	require.NoError(t, err)

	assert.Equal(t, school.Header{
		Title:    "Espace Élève",
		UserName: "Emma Dupont",
		Role:     user.RoleStudent,
		Nav: []school.NavLink{
			{Label: "Tableau de bord", Anchor: "#dashboard"},
			{Label: "Devoirs", Anchor: "#assignments"},
			{Label: "Notes", Anchor: "#grades"},
			{Label: "Vie scolaire", Anchor: "#attendance"},
		},
	}, dash.Header)
	assert.Equal(t, "6ème A", dash.ClassName)

	assert.Equal(t, []school.TimetableRow{
		{Day: "Lundi", Subject: "Mathématiques", Start: "09:00", End: "10:00", Room: "Salle 204"},
		{Day: "Jeudi", Subject: "Mathématiques", Start: "11:00", End: "12:00", Room: "Salle 204"},
	}, dash.Timetable)

	require.Len(t, dash.Assignments, 1)
	assert.Equal(t, school.AssignmentRow{
		Title:       "Résolution d'équations",
		Subject:     "Mathématiques",
		DueDate:     "15/11/2025",
		Description: "Résoudre les exercices 3 à 8 page 42.",
	}, dash.Assignments[0])

	require.Len(t, dash.Grades, 1)
	assert.Equal(t, school.GradeRow{
		Subject:     "Mathématiques",
		Value:       15.5,
		OutOf:       20,
		Description: "Contrôle chapitre 2",
		Date:        "30/10/2025",
	}, dash.Grades[0])

	require.Len(t, dash.Attendance, 2)
	assert.Equal(t, "Absence", dash.Attendance[0].TypeLabel)
	assert.Equal(t, "success", dash.Attendance[0].Indicator)
	assert.Equal(t, "Retard", dash.Attendance[1].TypeLabel)
	assert.Equal(t, "warning", dash.Attendance[1].Indicator)
	assert.Equal(t, "12/10/2025", dash.Attendance[0].Date)
}

func TestService_StudentDashboard_danglingReferences(t *testing.T) {
	users := fixture.DemoUsers()
	data := fixture.DemoSchool()
	data.Assignments[0].SubjectID = "subject-404"
	data.Grades[0].SubjectID = "subject-404"
	users[0].ClassID = "class-404"
	svc := newTestService(t, users, data)

	dash, err := svc.StudentDashboard(demoSession(t, users, "student-1"))
	require.NoError(t, err)

	// a missing record never aborts the view; placeholders take its place
	assert.Equal(t, school.ClassPlaceholder, dash.ClassName)
	require.Len(t, dash.Grades, 1)
	assert.Equal(t, school.SubjectPlaceholder, dash.Grades[0].Subject)
}

func TestService_ParentDashboard(t *testing.T) {
	users := fixture.DemoUsers()
	svc := newDemoService(t)

	dash, err := svc.ParentDashboard(demoSession(t, users, "parent-1"))
	require.NoError(t, err)

	assert.Equal(t, "Espace Parent", dash.Header.Title)
	require.Len(t, dash.Children, 1)
	child := dash.Children[0]
	assert.Equal(t, "student-1", child.StudentID)
	assert.Equal(t, "Emma Dupont", child.StudentName)
	assert.Equal(t, "6ème A", child.ClassName)
	require.NotNil(t, child.Average)
	assert.Equal(t, 15.5, *child.Average)
	assert.Equal(t, "15.5", child.AverageDisplay)
	assert.Equal(t, 1, child.AssignmentCount)
	assert.Len(t, child.Grades, 1)
	assert.Len(t, child.Attendance, 2)

	// the PARENTS communication reaches the parent board
	require.Len(t, dash.Communications, 1)
	assert.Equal(t, "Réunion parents-professeurs", dash.Communications[0].Title)
	assert.Equal(t, "05/11/2025", dash.Communications[0].Date)
}

func TestService_ParentDashboard_unresolvedChild(t *testing.T) {
	users := fixture.DemoUsers()
	users[1].Children = append(users[1].Children, "student-404")
	svc := newTestService(t, users, fixture.DemoSchool())

	dash, err := svc.ParentDashboard(demoSession(t, users, "parent-1"))
	require.NoError(t, err)
	require.Len(t, dash.Children, 1, "unresolved children are skipped, not rendered empty")
	assert.Equal(t, "student-1", dash.Children[0].StudentID)
}

func TestService_ParentDashboard_childWithoutGrades(t *testing.T) {
	users := fixture.DemoUsers()
	data := fixture.DemoSchool()
	data.Grades = nil
	svc := newTestService(t, users, data)

	dash, err := svc.ParentDashboard(demoSession(t, users, "parent-1"))
	require.NoError(t, err)
	require.Len(t, dash.Children, 1)
	assert.Nil(t, dash.Children[0].Average)
	assert.Equal(t, school.NoDataPlaceholder, dash.Children[0].AverageDisplay)
}

func TestService_TeacherDashboard(t *testing.T) {
	users := fixture.DemoUsers()
	svc := newDemoService(t)
	pinNow(t, time.Date(2025, time.November, 10, 8, 0, 0, 0, time.UTC)) // un lundi

	dash, err := svc.TeacherDashboard(demoSession(t, users, "teacher-1"))
	require.NoError(t, err)

	assert.Equal(t, "Espace Professeur", dash.Header.Title)
	assert.Equal(t, "Lundi", dash.Today)

	require.Len(t, dash.Courses, 1)
	assert.Equal(t, school.CourseRow{
		Subject: "Mathématiques", ClassID: "6A", Room: "Salle 204", Start: "09:00", End: "10:00",
	}, dash.Courses[0])

	assert.Equal(t, []school.SubjectRow{
		{ID: "maths-6A", Name: "Mathématiques", ClassID: "6A"},
		{ID: "maths-6B", Name: "Mathématiques", ClassID: "6B"},
	}, dash.Subjects)

	assert.Equal(t, []school.ClassRow{
		{ID: "6A", Name: "6ème A", StudentCount: 1},
		{ID: "6B", Name: "6ème B", StudentCount: 0},
	}, dash.Classes)

	require.Len(t, dash.Assignments, 1)
	assert.Equal(t, school.ReviewRow{Title: "Résolution d'équations", Class: "6ème A", DueDate: "15/11/2025"}, dash.Assignments[0])

	// PARENTS communications do not reach the teacher board
	assert.Empty(t, dash.Communications)
}

func TestService_AdminDashboard(t *testing.T) {
	users := fixture.DemoUsers()
	svc := newDemoService(t)

	dash, err := svc.AdminDashboard(demoSession(t, users, "admin-1"))
	require.NoError(t, err)

	assert.Equal(t, "Espace Administration", dash.Header.Title)
	assert.Equal(t, 1, dash.TotalStudents)
	assert.Equal(t, 1, dash.TotalTeachers)
	assert.Equal(t, 2, dash.TotalClasses)
	assert.Equal(t, 1, dash.TotalAssignments)

	require.Len(t, dash.Attendance, 2)
	assert.Equal(t, school.AttendanceLogRow{
		Date: "12/10/2025", StudentName: "Emma Dupont", TypeLabel: "Absence", StatusLabel: "Justifiée",
	}, dash.Attendance[0])

	// admins see every communication, whatever the audience
	require.Len(t, dash.Communications, 1)
	assert.Equal(t, "Réunion parents-professeurs", dash.Communications[0].Title)
}
