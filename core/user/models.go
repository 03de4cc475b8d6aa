package user

// Roles
const (
	RoleStudent Role = "STUDENT"
	RoleParent  Role = "PARENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

var (
	AllRoles = []Role{RoleStudent, RoleParent, RoleTeacher, RoleAdmin}

	// roleLabels maps every role to its display name.
	roleLabels = map[Role]string{
		RoleStudent: "Élève",
		RoleParent:  "Parent",
		RoleTeacher: "Professeur",
		RoleAdmin:   "Administration",
	}
)

type Role string

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

// Label returns the role's French display name; unknown roles display as-is.
func (r Role) Label() string {
	if lbl, ok := roleLabels[r]; ok {
		return lbl
	}
	return string(r)
}

// User is a member of the school directory. The directory is read-only: users are
// loaded once at startup and never mutated.
//
// Passwords are stored and compared in plaintext: this is a demo portal whose
// credential roster is displayed on the login page. They are still never serialized.
type User struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	Password  string `json:"-"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// role-specific attributes
	ClassID  string   `json:"class_id,omitempty"` // STUDENT: the class attended
	Children []string `json:"children,omitempty"` // PARENT: student user IDs, in order
	Subjects []string `json:"subjects,omitempty"` // TEACHER: subject IDs taught
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u User) IsStudent() bool { return u.Role == RoleStudent }
func (u User) IsParent() bool  { return u.Role == RoleParent }
func (u User) IsTeacher() bool { return u.Role == RoleTeacher }
func (u User) IsAdmin() bool   { return u.Role == RoleAdmin }

// Session returns the minimal projection of the user carried for the duration of a
// client's visit. It holds everything the portal needs between requests and nothing else.
func (u User) Session() Session {
	return Session{
		UserID:    u.ID,
		Role:      u.Role,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Session is the authenticated identity and role of the current visitor.
type Session struct {
	UserID    string `json:"id"`
	Role      Role   `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (s Session) FullName() string {
	return s.FirstName + " " + s.LastName
}
