package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out       io.Writer
	usrSvc    *user.Service
	schoolSvc *school.Service
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  roster [-role ROLE] - list directory accounts with their demo credentials")
	fmt.Fprintln(cli.out, "  check               - report dangling references in the directory")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	rosterCmd := flag.NewFlagSet("roster", flag.ExitOnError)
	rosterRole := rosterCmd.String("role", "", "Only list accounts with this role (STUDENT|PARENT|TEACHER|ADMIN).")

	switch args[1] {
	case "roster":
		if err := rosterCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.roster(*rosterRole)
	case "check":
		return cli.check()
	default:
		cli.printUsage()
		return errHelp
	}
}
