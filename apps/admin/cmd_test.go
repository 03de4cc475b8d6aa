package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database/fixture"
	inmemdb "github.com/trezcool/campusconnect/storage/database/inmem"
)

func setup(t *testing.T) (*commandLine, *bytes.Buffer) {
	db, err := inmemdb.Open(fixture.DemoUsers(), fixture.DemoSchool())
	require.NoError(t, err)

	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	out := new(bytes.Buffer)
	cli := &commandLine{
		out:       out,
		usrSvc:    usrSvc,
		schoolSvc: school.NewService(inmemdb.NewSchoolRepository(db), usrSvc),
	}
	return cli, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
	wantNotOut []string
}

func Test_commandLine_roster(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{
			name: "all accounts",
			args: []string{"roster"},
			wantOut: []string{
				"emma.dupont@ecole.fr", "eleve123",
				"parent.dupont@ecole.fr", "parent123",
				"nicolas.bernard@ecole.fr", "prof123",
				"secretariat@ecole.fr", "admin123",
			},
		},
		{
			name:       "teachers only",
			args:       []string{"roster", "-role", "teacher"},
			wantOut:    []string{"nicolas.bernard@ecole.fr", "Professeur"},
			wantNotOut: []string{"emma.dupont@ecole.fr"},
		},
		{name: "unknown role", args: []string{"roster", "-role", "wizard"}, wantErrStr: `unknown role "wizard"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t)
			args := append([]string{"admin"}, tt.args...)

			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, err)
			case tt.wantErrStr != "":
				require.Error(t, err)
				assert.Equal(t, tt.wantErrStr, err.Error())
			default:
				require.NoError(t, err)
			}
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
			for _, notWant := range tt.wantNotOut {
				assert.NotContains(t, out.String(), notWant)
			}
		})
	}
}

func Test_commandLine_check(t *testing.T) {
	t.Run("demo directory is clean", func(t *testing.T) {
		cli, out := setup(t)
		require.NoError(t, cli.run([]string{"admin", "check"}))
		assert.Contains(t, out.String(), "directory OK")
	})

	t.Run("dangling references are reported", func(t *testing.T) {
		data := fixture.DemoSchool()
		data.Classes[0].Students = append(data.Classes[0].Students, "student-404")
		data.Communications[0].AuthorID = "ghost-1"

		db, err := inmemdb.Open(fixture.DemoUsers(), data)
		require.NoError(t, err)
		usrSvc := user.NewService(inmemdb.NewUserRepository(db))
		out := new(bytes.Buffer)
		cli := &commandLine{
			out:       out,
			usrSvc:    usrSvc,
			schoolSvc: school.NewService(inmemdb.NewSchoolRepository(db), usrSvc),
		}

		err = cli.run([]string{"admin", "check"})
		require.Error(t, err)
		assert.Equal(t, "2 dangling reference(s) found", err.Error())
		assert.Contains(t, out.String(), `class 6A: student "student-404" not found`)
		assert.Contains(t, out.String(), `communication msg-1: author "ghost-1" not found`)
	})
}
