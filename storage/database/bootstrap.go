package database

import (
	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database/fixture"
	inmemdb "github.com/trezcool/campusconnect/storage/database/inmem"
	sqlxdb "github.com/trezcool/campusconnect/storage/database/sqlx"
)

// OpenDirectory loads the demo fixture into the configured backend and returns the
// repositories plus a close function. The fixture is rebuilt at every boot; nothing
// survives a restart.
func OpenDirectory() (user.Repository, school.Repository, func(), error) {
	users, data := fixture.DemoUsers(), fixture.DemoSchool()

	engine := core.Conf.GetString("databaseEngine")
	if engine == "inmem" {
		db, err := inmemdb.Open(users, data)
		if err != nil {
			return nil, nil, nil, err
		}
		return inmemdb.NewUserRepository(db), inmemdb.NewSchoolRepository(db), func() {}, nil
	}

	sdb, err := Open()
	if err != nil {
		return nil, nil, nil, err
	}
	db := sqlxdb.New(sdb, engine)
	if err = sqlxdb.Load(db, users, data); err != nil {
		_ = sdb.Close()
		return nil, nil, nil, err
	}
	return sqlxdb.NewUserRepository(db), sqlxdb.NewSchoolRepository(db), func() { _ = sdb.Close() }, nil
}
