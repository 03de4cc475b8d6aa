package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/user"
)

// roster prints the demo accounts, passwords included. The whole roster is meant
// to be handed out; see user.User.
func (cli *commandLine) roster(role string) error {
	var users []user.User
	var err error

	if role == "" {
		users, err = cli.usrSvc.QueryAll()
	} else {
		r := user.Role(strings.ToUpper(core.CleanString(role)))
		if !r.Valid() {
			return errors.Errorf("unknown role %q", role)
		}
		users, err = cli.usrSvc.QueryByRole(r)
	}
	if err != nil {
		return err
	}

	for _, usr := range users {
		fmt.Fprintf(cli.out, "%-16s %-28s %-12s %s\n", usr.Role.Label(), usr.Email, usr.Password, usr.FullName())
	}
	return nil
}
