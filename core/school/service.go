package school

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/trezcool/campusconnect/core/user"
)

var (
	NowFunc = time.Now // mockable

	// errors
	ErrNotFound = errors.New("record not found")
)

type (
	Repository interface {
		QueryAllClasses() ([]Class, error)
		GetClassByID(id string) (Class, error)
		QueryClassesByHeadTeacher(teacherID string) ([]Class, error)
		GetSubjectByID(id string) (Subject, error)
		QuerySubjectsByClass(classID string) ([]Subject, error)
		QuerySubjectsByTeacher(teacherID string) ([]Subject, error)
		QueryAllAssignments() ([]Assignment, error)
		QueryAssignmentsByClass(classID string) ([]Assignment, error)
		QueryAssignmentsByTeacher(teacherID string) ([]Assignment, error)
		QueryGradesByStudent(studentID string) ([]Grade, error)
		QueryAllAttendance() ([]AttendanceEvent, error)
		QueryAttendanceByStudent(studentID string) ([]AttendanceEvent, error)
		QueryAllCommunications() ([]Communication, error)
	}

	Service struct {
		repo   Repository
		usrSvc *user.Service
	}
)

func NewService(repo Repository, usrSvc *user.Service) *Service {
	return &Service{repo: repo, usrSvc: usrSvc}
}

// audienceMap lists the audience tags visible to each role, ADMIN excepted (admins
// see everything). A communication whose audience equals the role name itself also
// matches, whatever the role.
var audienceMap = map[user.Role][]Audience{
	user.RoleStudent: {AudienceAll, AudienceStudents},
	user.RoleParent:  {AudienceAll, AudienceParents},
	user.RoleTeacher: {AudienceAll, AudienceStaff, AudienceTeachers},
}

// CommunicationsFor filters the communication board down to what the given role may see.
func (svc *Service) CommunicationsFor(role user.Role) ([]Communication, error) {
	comms, err := svc.repo.QueryAllCommunications()
	if err != nil {
		return nil, err
	}
	if role == user.RoleAdmin {
		return comms, nil
	}

	audiences, ok := audienceMap[role]
	if !ok {
		audiences = []Audience{AudienceAll}
	}
	visible := make([]Communication, 0, len(comms))
	for _, msg := range comms {
		if audienceMatch(msg.Audience, audiences) || msg.Audience == Audience(role) {
			visible = append(visible, msg)
		}
	}
	return visible, nil
}

func audienceMatch(audience Audience, audiences []Audience) bool {
	for _, a := range audiences {
		if audience == a {
			return true
		}
	}
	return false
}

// AverageGrade computes the raw arithmetic mean of the student's grade values.
// The OutOf scale is not normalized into the mean; see the note in dashboard_test.go.
// ok is false when the student has no grades: the caller renders a placeholder, not 0.
func (svc *Service) AverageGrade(studentID string) (avg float64, ok bool, err error) {
	grades, err := svc.repo.QueryGradesByStudent(studentID)
	if err != nil {
		return 0, false, err
	}
	if len(grades) == 0 {
		return 0, false, nil
	}
	var sum float64
	for _, g := range grades {
		sum += g.Value
	}
	return sum / float64(len(grades)), true, nil
}

// Course is one of today's lessons for a teacher: a schedule slot joined to its subject.
type Course struct {
	Subject Subject
	Slot    ScheduleSlot
}

// TodaySchedule returns the teacher's lessons whose slot day matches the current
// French weekday (case-insensitively), sorted by ascending start time.
func (svc *Service) TodaySchedule(teacherID string) ([]Course, error) {
	subjects, err := svc.repo.QuerySubjectsByTeacher(teacherID)
	if err != nil {
		return nil, err
	}
	today := Weekday(NowFunc())

	var courses []Course
	for _, subj := range subjects {
		for _, slot := range subj.Schedule {
			if strings.EqualFold(slot.Day, today) {
				courses = append(courses, Course{Subject: subj, Slot: slot})
			}
		}
	}
	sort.SliceStable(courses, func(i, j int) bool { return courses[i].Slot.Start < courses[j].Slot.Start })
	return courses, nil
}

// subjectName resolves a subject ID to its display name, degrading to a placeholder.
func (svc *Service) subjectName(subjectID string) string {
	subj, err := svc.repo.GetSubjectByID(subjectID)
	if err != nil {
		return SubjectPlaceholder
	}
	return subj.Name
}

// className resolves a class ID to its display name, degrading to a placeholder.
func (svc *Service) className(classID string) string {
	cls, err := svc.repo.GetClassByID(classID)
	if err != nil {
		return ClassPlaceholder
	}
	return cls.Name
}

// CheckReferences scans the directory for foreign keys that do not resolve and
// returns one finding per dangling reference. The portal tolerates them (views
// substitute placeholders); the admin CLI surfaces them so the fixture can be fixed.
func (svc *Service) CheckReferences() ([]string, error) {
	var findings []string
	report := func(format string, args ...interface{}) {
		findings = append(findings, fmt.Sprintf(format, args...))
	}

	userExists := func(id string, role user.Role) bool {
		usr, err := svc.usrSvc.GetByID(id)
		return err == nil && usr.Role == role
	}
	classExists := func(id string) bool {
		_, err := svc.repo.GetClassByID(id)
		return err == nil
	}
	subjectExists := func(id string) bool {
		_, err := svc.repo.GetSubjectByID(id)
		return err == nil
	}

	classes, err := svc.repo.QueryAllClasses()
	if err != nil {
		return nil, err
	}
	for _, cls := range classes {
		if !userExists(cls.HeadTeacher, user.RoleTeacher) {
			report("class %s: head teacher %q not found", cls.ID, cls.HeadTeacher)
		}
		for _, sid := range cls.Students {
			if !userExists(sid, user.RoleStudent) {
				report("class %s: student %q not found", cls.ID, sid)
			}
		}
	}

	for _, cls := range classes {
		subjects, err := svc.repo.QuerySubjectsByClass(cls.ID)
		if err != nil {
			return nil, err
		}
		for _, subj := range subjects {
			if !userExists(subj.TeacherID, user.RoleTeacher) {
				report("subject %s: teacher %q not found", subj.ID, subj.TeacherID)
			}
		}
	}

	assignments, err := svc.repo.QueryAllAssignments()
	if err != nil {
		return nil, err
	}
	for _, asg := range assignments {
		if !classExists(asg.ClassID) {
			report("assignment %s: class %q not found", asg.ID, asg.ClassID)
		}
		subj, err := svc.repo.GetSubjectByID(asg.SubjectID)
		if err != nil {
			report("assignment %s: subject %q not found", asg.ID, asg.SubjectID)
		} else if subj.ClassID != asg.ClassID {
			report("assignment %s: class %q does not match subject's class %q", asg.ID, asg.ClassID, subj.ClassID)
		}
	}

	attendance, err := svc.repo.QueryAllAttendance()
	if err != nil {
		return nil, err
	}
	for _, evt := range attendance {
		if !userExists(evt.StudentID, user.RoleStudent) {
			report("attendance %s: student %q not found", evt.ID, evt.StudentID)
		}
		if !subjectExists(evt.Lesson) {
			report("attendance %s: lesson %q not found", evt.ID, evt.Lesson)
		}
	}

	comms, err := svc.repo.QueryAllCommunications()
	if err != nil {
		return nil, err
	}
	for _, msg := range comms {
		if _, err := svc.usrSvc.GetByID(msg.AuthorID); err != nil {
			report("communication %s: author %q not found", msg.ID, msg.AuthorID)
		}
	}

	students, err := svc.usrSvc.QueryByRole(user.RoleStudent)
	if err != nil {
		return nil, err
	}
	for _, st := range students {
		if !classExists(st.ClassID) {
			report("student %s: class %q not found", st.ID, st.ClassID)
		}
	}
	parents, err := svc.usrSvc.QueryByRole(user.RoleParent)
	if err != nil {
		return nil, err
	}
	for _, p := range parents {
		for _, cid := range p.Children {
			if !userExists(cid, user.RoleStudent) {
				report("parent %s: child %q not found", p.ID, cid)
			}
		}
	}
	return findings, nil
}
