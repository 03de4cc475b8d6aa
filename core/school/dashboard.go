package school

import (
	"github.com/trezcool/campusconnect/core/user"
)

// View models. One dashboard per role, pre-aggregated so the presentation layer only
// has to print it: all joins, filters and label fallbacks happen here.

type (
	NavLink struct {
		Label  string `json:"label"`
		Anchor string `json:"anchor"`
	}

	// Header is the sidebar/topbar data common to every dashboard.
	Header struct {
		Title    string    `json:"title"` // eg. "Espace Élève"
		UserName string    `json:"user_name"`
		Role     user.Role `json:"role"`
		Nav      []NavLink `json:"nav"`
	}

	TimetableRow struct {
		Day     string `json:"day"`
		Subject string `json:"subject"`
		Start   string `json:"start"`
		End     string `json:"end"`
		Room    string `json:"room"`
	}

	AssignmentRow struct {
		Title       string `json:"title"`
		Subject     string `json:"subject"`
		DueDate     string `json:"due_date"`
		Description string `json:"description"`
	}

	GradeRow struct {
		Subject     string  `json:"subject"`
		Value       float64 `json:"value"`
		OutOf       float64 `json:"out_of"`
		Description string  `json:"description"`
		Date        string  `json:"date"`
	}

	AttendanceRow struct {
		Type        AttendanceType   `json:"type"`
		TypeLabel   string           `json:"type_label"`
		Status      AttendanceStatus `json:"status"`
		StatusLabel string           `json:"status_label"`
		Indicator   string           `json:"indicator"` // "success" | "warning"
		Date        string           `json:"date"`
		Lesson      string           `json:"lesson"`
		Comments    string           `json:"comments"`
	}

	CommunicationRow struct {
		Title    string   `json:"title"`
		Content  string   `json:"content"`
		Date     string   `json:"date"`
		Audience Audience `json:"audience"`
	}

	StudentDashboard struct {
		Header      Header          `json:"header"`
		ClassName   string          `json:"class_name"`
		Timetable   []TimetableRow  `json:"timetable"`
		Assignments []AssignmentRow `json:"assignments"`
		Grades      []GradeRow      `json:"grades"`
		Attendance  []AttendanceRow `json:"attendance"`
	}

	// ChildOverview is a parent's summary card for one of their children.
	ChildOverview struct {
		StudentID       string          `json:"student_id"`
		StudentName     string          `json:"student_name"`
		ClassName       string          `json:"class_name"`
		Average         *float64        `json:"average"` // nil when the child has no grades
		AverageDisplay  string          `json:"average_display"`
		AssignmentCount int             `json:"assignment_count"`
		Grades          []GradeRow      `json:"grades"`
		Attendance      []AttendanceRow `json:"attendance"`
	}

	ParentDashboard struct {
		Header         Header             `json:"header"`
		Children       []ChildOverview    `json:"children"`
		Communications []CommunicationRow `json:"communications"`
	}

	CourseRow struct {
		Subject string `json:"subject"`
		ClassID string `json:"class_id"`
		Room    string `json:"room"`
		Start   string `json:"start"`
		End     string `json:"end"`
	}

	SubjectRow struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		ClassID string `json:"class_id"`
	}

	ClassRow struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		StudentCount int    `json:"student_count"`
	}

	// ReviewRow is an assignment awaiting correction by a teacher.
	ReviewRow struct {
		Title   string `json:"title"`
		Class   string `json:"class"`
		DueDate string `json:"due_date"`
	}

	TeacherDashboard struct {
		Header         Header             `json:"header"`
		Today          string             `json:"today"` // French weekday name
		Courses        []CourseRow        `json:"courses"`
		Subjects       []SubjectRow       `json:"subjects"`
		Classes        []ClassRow         `json:"classes"` // classes headed by the teacher
		Assignments    []ReviewRow        `json:"assignments"`
		Communications []CommunicationRow `json:"communications"`
	}

	AttendanceLogRow struct {
		Date        string `json:"date"`
		StudentName string `json:"student_name"`
		TypeLabel   string `json:"type_label"`
		StatusLabel string `json:"status_label"`
	}

	AdminDashboard struct {
		Header           Header             `json:"header"`
		TotalStudents    int                `json:"total_students"`
		TotalTeachers    int                `json:"total_teachers"`
		TotalClasses     int                `json:"total_classes"`
		TotalAssignments int                `json:"total_assignments"`
		Attendance       []AttendanceLogRow `json:"attendance"`
		Communications   []CommunicationRow `json:"communications"`
	}
)

var (
	pageTitles = map[user.Role]string{
		user.RoleStudent: "Espace Élève",
		user.RoleParent:  "Espace Parent",
		user.RoleTeacher: "Espace Professeur",
		user.RoleAdmin:   "Espace Administration",
	}

	roleNavigation = map[user.Role][]NavLink{
		user.RoleStudent: {
			{Label: "Tableau de bord", Anchor: "#dashboard"},
			{Label: "Devoirs", Anchor: "#assignments"},
			{Label: "Notes", Anchor: "#grades"},
			{Label: "Vie scolaire", Anchor: "#attendance"},
		},
		user.RoleParent: {
			{Label: "Vue d'ensemble", Anchor: "#dashboard"},
			{Label: "Suivi des résultats", Anchor: "#grades"},
			{Label: "Vie scolaire", Anchor: "#attendance"},
			{Label: "Communications", Anchor: "#communications"},
		},
		user.RoleTeacher: {
			{Label: "Cours du jour", Anchor: "#schedule"},
			{Label: "Travaux à corriger", Anchor: "#assignments"},
			{Label: "Classes", Anchor: "#classes"},
			{Label: "Messagerie", Anchor: "#communications"},
		},
		user.RoleAdmin: {
			{Label: "Statistiques", Anchor: "#stats"},
			{Label: "Communications", Anchor: "#communications"},
			{Label: "Vie scolaire", Anchor: "#attendance"},
		},
	}
)

func newHeader(sess user.Session) Header {
	return Header{
		Title:    pageTitles[sess.Role],
		UserName: sess.FullName(),
		Role:     sess.Role,
		Nav:      roleNavigation[sess.Role],
	}
}

// StudentDashboard joins the student's class, weekly timetable, assignments, grades
// and attendance. The session's user must still resolve in the directory.
func (svc *Service) StudentDashboard(sess user.Session) (StudentDashboard, error) {
	dash := StudentDashboard{Header: newHeader(sess)}

	usr, err := svc.usrSvc.GetByID(sess.UserID)
	if err != nil {
		return dash, err
	}

	dash.ClassName = svc.className(usr.ClassID)
	if dash.Timetable, err = svc.timetable(usr.ClassID); err != nil {
		return dash, err
	}
	if dash.Assignments, err = svc.assignmentRows(usr.ClassID); err != nil {
		return dash, err
	}
	if dash.Grades, err = svc.gradeRows(usr.ID); err != nil {
		return dash, err
	}
	if dash.Attendance, err = svc.attendanceRows(usr.ID); err != nil {
		return dash, err
	}
	return dash, nil
}

// ParentDashboard builds one overview card per child plus the parent communication
// board. Children that no longer resolve in the directory are skipped silently.
func (svc *Service) ParentDashboard(sess user.Session) (ParentDashboard, error) {
	dash := ParentDashboard{Header: newHeader(sess)}

	usr, err := svc.usrSvc.GetByID(sess.UserID)
	if err != nil {
		return dash, err
	}

	for _, childID := range usr.Children {
		child, err := svc.usrSvc.GetByID(childID)
		if err != nil {
			continue
		}
		overview := ChildOverview{
			StudentID:   child.ID,
			StudentName: child.FullName(),
			ClassName:   svc.className(child.ClassID),
		}
		avg, ok, err := svc.AverageGrade(child.ID)
		if err != nil {
			return dash, err
		}
		if ok {
			overview.Average = &avg
		}
		overview.AverageDisplay = FormatAverage(avg, ok)

		assignments, err := svc.repo.QueryAssignmentsByClass(child.ClassID)
		if err != nil {
			return dash, err
		}
		overview.AssignmentCount = len(assignments)

		if overview.Grades, err = svc.gradeRows(child.ID); err != nil {
			return dash, err
		}
		if overview.Attendance, err = svc.attendanceRows(child.ID); err != nil {
			return dash, err
		}
		dash.Children = append(dash.Children, overview)
	}

	if dash.Communications, err = svc.communicationRows(sess.Role); err != nil {
		return dash, err
	}
	return dash, nil
}

// TeacherDashboard joins today's courses, the subjects taught, the classes headed by
// the teacher and the assignments to review (all of them, not just the ones due).
func (svc *Service) TeacherDashboard(sess user.Session) (TeacherDashboard, error) {
	dash := TeacherDashboard{
		Header: newHeader(sess),
		Today:  Weekday(NowFunc()),
	}

	usr, err := svc.usrSvc.GetByID(sess.UserID)
	if err != nil {
		return dash, err
	}

	courses, err := svc.TodaySchedule(usr.ID)
	if err != nil {
		return dash, err
	}
	for _, c := range courses {
		dash.Courses = append(dash.Courses, CourseRow{
			Subject: c.Subject.Name,
			ClassID: c.Subject.ClassID,
			Room:    c.Slot.Room,
			Start:   c.Slot.Start,
			End:     c.Slot.End,
		})
	}

	subjects, err := svc.repo.QuerySubjectsByTeacher(usr.ID)
	if err != nil {
		return dash, err
	}
	for _, subj := range subjects {
		dash.Subjects = append(dash.Subjects, SubjectRow{ID: subj.ID, Name: subj.Name, ClassID: subj.ClassID})
	}

	classes, err := svc.repo.QueryClassesByHeadTeacher(usr.ID)
	if err != nil {
		return dash, err
	}
	for _, cls := range classes {
		dash.Classes = append(dash.Classes, ClassRow{ID: cls.ID, Name: cls.Name, StudentCount: len(cls.Students)})
	}

	assignments, err := svc.repo.QueryAssignmentsByTeacher(usr.ID)
	if err != nil {
		return dash, err
	}
	for _, asg := range assignments {
		dash.Assignments = append(dash.Assignments, ReviewRow{
			Title:   asg.Title,
			Class:   svc.className(asg.ClassID),
			DueDate: FormatDate(asg.DueDate),
		})
	}

	if dash.Communications, err = svc.communicationRows(sess.Role); err != nil {
		return dash, err
	}
	return dash, nil
}

// AdminDashboard aggregates school-wide counts, the full attendance log joined to
// student names, and every communication.
func (svc *Service) AdminDashboard(sess user.Session) (AdminDashboard, error) {
	dash := AdminDashboard{Header: newHeader(sess)}

	classes, err := svc.repo.QueryAllClasses()
	if err != nil {
		return dash, err
	}
	dash.TotalClasses = len(classes)
	for _, cls := range classes {
		// class roster sizes are summed as-is, not deduplicated across classes
		dash.TotalStudents += len(cls.Students)
	}

	teachers, err := svc.usrSvc.QueryByRole(user.RoleTeacher)
	if err != nil {
		return dash, err
	}
	dash.TotalTeachers = len(teachers)

	assignments, err := svc.repo.QueryAllAssignments()
	if err != nil {
		return dash, err
	}
	dash.TotalAssignments = len(assignments)

	attendance, err := svc.repo.QueryAllAttendance()
	if err != nil {
		return dash, err
	}
	for _, evt := range attendance {
		row := AttendanceLogRow{
			Date:        FormatDate(evt.Date),
			TypeLabel:   evt.Type.Label(),
			StatusLabel: evt.Status.Label(),
		}
		if student, err := svc.usrSvc.GetByID(evt.StudentID); err == nil {
			row.StudentName = student.FullName()
		}
		dash.Attendance = append(dash.Attendance, row)
	}

	if dash.Communications, err = svc.communicationRows(sess.Role); err != nil {
		return dash, err
	}
	return dash, nil
}

// timetable flattens the weekly schedule of every subject taught to a class.
func (svc *Service) timetable(classID string) ([]TimetableRow, error) {
	subjects, err := svc.repo.QuerySubjectsByClass(classID)
	if err != nil {
		return nil, err
	}
	var rows []TimetableRow
	for _, subj := range subjects {
		for _, slot := range subj.Schedule {
			rows = append(rows, TimetableRow{
				Day:     slot.Day,
				Subject: subj.Name,
				Start:   slot.Start,
				End:     slot.End,
				Room:    slot.Room,
			})
		}
	}
	return rows, nil
}

func (svc *Service) assignmentRows(classID string) ([]AssignmentRow, error) {
	assignments, err := svc.repo.QueryAssignmentsByClass(classID)
	if err != nil {
		return nil, err
	}
	var rows []AssignmentRow
	for _, asg := range assignments {
		rows = append(rows, AssignmentRow{
			Title:       asg.Title,
			Subject:     svc.subjectName(asg.SubjectID),
			DueDate:     FormatDate(asg.DueDate),
			Description: asg.Description,
		})
	}
	return rows, nil
}

func (svc *Service) gradeRows(studentID string) ([]GradeRow, error) {
	grades, err := svc.repo.QueryGradesByStudent(studentID)
	if err != nil {
		return nil, err
	}
	var rows []GradeRow
	for _, g := range grades {
		rows = append(rows, GradeRow{
			Subject:     svc.subjectName(g.SubjectID),
			Value:       g.Value,
			OutOf:       g.OutOf,
			Description: g.Description,
			Date:        FormatDate(g.Date),
		})
	}
	return rows, nil
}

func (svc *Service) attendanceRows(studentID string) ([]AttendanceRow, error) {
	events, err := svc.repo.QueryAttendanceByStudent(studentID)
	if err != nil {
		return nil, err
	}
	var rows []AttendanceRow
	for _, evt := range events {
		rows = append(rows, AttendanceRow{
			Type:        evt.Type,
			TypeLabel:   evt.Type.Label(),
			Status:      evt.Status,
			StatusLabel: evt.Status.Label(),
			Indicator:   evt.Status.Indicator(),
			Date:        FormatDate(evt.Date),
			Lesson:      evt.Lesson,
			Comments:    evt.Comments,
		})
	}
	return rows, nil
}

func (svc *Service) communicationRows(role user.Role) ([]CommunicationRow, error) {
	comms, err := svc.CommunicationsFor(role)
	if err != nil {
		return nil, err
	}
	var rows []CommunicationRow
	for _, msg := range comms {
		rows = append(rows, CommunicationRow{
			Title:    msg.Title,
			Content:  msg.Content,
			Date:     FormatDate(msg.Date),
			Audience: msg.Audience,
		})
	}
	return rows, nil
}
