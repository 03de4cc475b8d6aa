package main

import (
	"log"
	"os"

	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	"github.com/trezcool/campusconnect/storage/database"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the directory
	usrRepo, schoolRepo, closeDB, err := database.OpenDirectory()
	errAndDie(err)
	defer closeDB()

	usrSvc := user.NewService(usrRepo)

	// start CLI
	cli := commandLine{
		out:       os.Stdout,
		usrSvc:    usrSvc,
		schoolSvc: school.NewService(schoolRepo, usrSvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
