package inmemdb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database/fixture"
	inmemdb "github.com/trezcool/campusconnect/storage/database/inmem"
)

func setup(t *testing.T) (user.Repository, school.Repository) {
	db, err := inmemdb.Open(fixture.DemoUsers(), fixture.DemoSchool())
	require.NoError(t, err)
	return inmemdb.NewUserRepository(db), inmemdb.NewSchoolRepository(db)
}

func Test_userRepository(t *testing.T) {
	repo, _ := setup(t)

	t.Run("roster keeps insertion order", func(t *testing.T) {
		users, err := repo.QueryAllUsers()
		require.NoError(t, err)
		ids := make([]string, 0, len(users))
		for _, usr := range users {
			ids = append(ids, usr.ID)
		}
		assert.Equal(t, []string{"student-1", "parent-1", "teacher-1", "admin-1"}, ids)
	})

	t.Run("GetUserByEmail is case-insensitive", func(t *testing.T) {
		usr, err := repo.GetUserByEmail("Secretariat@Ecole.FR")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", usr.ID)
	})

	t.Run("unknown lookups", func(t *testing.T) {
		_, err := repo.GetUserByID("lol")
		assert.ErrorIs(t, err, user.ErrNotFound)
		_, err = repo.GetUserByEmail("lol@ecole.fr")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func Test_schoolRepository(t *testing.T) {
	_, repo := setup(t)

	t.Run("returned slices are copies", func(t *testing.T) {
		classes, err := repo.QueryAllClasses()
		require.NoError(t, err)
		require.NotEmpty(t, classes)
		classes[0].Name = "mutated"

		again, err := repo.QueryAllClasses()
		require.NoError(t, err)
		assert.Equal(t, "6ème A", again[0].Name)
	})

	t.Run("filters", func(t *testing.T) {
		subjects, err := repo.QuerySubjectsByClass("6A")
		require.NoError(t, err)
		require.Len(t, subjects, 1)
		assert.Equal(t, "maths-6A", subjects[0].ID)

		assignments, err := repo.QueryAssignmentsByClass("6B")
		require.NoError(t, err)
		assert.Empty(t, assignments)

		events, err := repo.QueryAttendanceByStudent("student-1")
		require.NoError(t, err)
		assert.Len(t, events, 2)

		_, err = repo.GetClassByID("lol")
		assert.ErrorIs(t, err, school.ErrNotFound)
	})
}
