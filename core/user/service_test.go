package user_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database/fixture"
	inmemdb "github.com/trezcool/campusconnect/storage/database/inmem"
)

func newTestService(t *testing.T) *user.Service {
	db, err := inmemdb.Open(fixture.DemoUsers(), fixture.DemoSchool())
	require.NoError(t, err)
	return user.NewService(inmemdb.NewUserRepository(db))
}

func TestService_Authenticate(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		email   string
		pwd     string
		wantErr error
		wantID  string
	}{
		{name: "ok", email: "emma.dupont@ecole.fr", pwd: "eleve123", wantID: "student-1"},
		{name: "email is matched case-insensitively", email: "EMMA.DUPONT@ECOLE.FR", pwd: "eleve123", wantID: "student-1"},
		{name: "email is trimmed", email: "  emma.dupont@ecole.fr ", pwd: "eleve123", wantID: "student-1"},
		{name: "empty email", email: "", pwd: "eleve123", wantErr: user.ErrEmptyCredentials},
		{name: "empty password", email: "emma.dupont@ecole.fr", pwd: "", wantErr: user.ErrEmptyCredentials},
		{name: "blank email", email: "   ", pwd: "eleve123", wantErr: user.ErrEmptyCredentials},
		{name: "unknown email", email: "nobody@ecole.fr", pwd: "eleve123", wantErr: user.ErrInvalidCredentials},
		{name: "wrong password", email: "emma.dupont@ecole.fr", pwd: "lol", wantErr: user.ErrInvalidCredentials},
		{name: "password is matched exactly", email: "emma.dupont@ecole.fr", pwd: "ELEVE123", wantErr: user.ErrInvalidCredentials},
		{name: "password is not trimmed", email: "emma.dupont@ecole.fr", pwd: " eleve123 ", wantErr: user.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Authenticate(tt.email, tt.pwd)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, sess)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, sess.UserID)
		})
	}

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, err1 := svc.Authenticate("nobody@ecole.fr", "eleve123")
		_, err2 := svc.Authenticate("emma.dupont@ecole.fr", "lol")
		assert.Equal(t, err1, err2)
	})

	t.Run("session carries identity and role, nothing else", func(t *testing.T) {
		sess, err := svc.Authenticate("emma.dupont@ecole.fr", "eleve123")
		require.NoError(t, err)
		assert.Equal(t, user.Session{
			UserID:    "student-1",
			Role:      user.RoleStudent,
			Email:     "emma.dupont@ecole.fr",
			FirstName: "Emma",
			LastName:  "Dupont",
		}, sess)
	})
}

func TestService_GetByEmail(t *testing.T) {
	svc := newTestService(t)

	usr, err := svc.GetByEmail("Nicolas.Bernard@Ecole.fr")
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", usr.ID)

	_, err = svc.GetByEmail("nobody@ecole.fr")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestService_QueryByRole(t *testing.T) {
	svc := newTestService(t)

	students, err := svc.QueryByRole(user.RoleStudent)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "student-1", students[0].ID)

	all, err := svc.QueryAll()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestUser_serializationHidesPassword(t *testing.T) {
	svc := newTestService(t)

	users, err := svc.QueryAll()
	require.NoError(t, err)
	for _, usr := range users {
		require.NotEmpty(t, usr.Password)
		data, err := json.Marshal(usr)
		require.NoError(t, err)
		assert.NotContains(t, string(data), usr.Password)
	}
}
