// Package inmemdb is the default directory backend: plain in-memory tables.
// The directory never mutates after Open, so readers share it freely; the mutexes
// only matter if a future host ever introduces writers.
package inmemdb

import (
	"sync"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
)

type (
	DB struct {
		user   *userTable
		school *schoolTables
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
		order []string // insertion order; map iteration would shuffle the roster
	}

	schoolTables struct {
		sync.RWMutex
		data school.Data
	}
)

func Open(users []user.User, data school.Data) (*DB, error) {
	db := &DB{
		user:   &userTable{table: make(map[string]*user.User, len(users))},
		school: &schoolTables{data: data},
	}
	for i := range users {
		usr := users[i]
		db.user.table[usr.ID] = &usr
		db.user.order = append(db.user.order, usr.ID)
	}
	return db, nil
}
