package main

import (
	"log"
	"os"

	echoportal "github.com/trezcool/campusconnect/apps/portal/echo"
	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
	logsvc "github.com/trezcool/campusconnect/services/logger"
	"github.com/trezcool/campusconnect/storage/database"
)

func main() {
	std := log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up services
	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up the directory
	usrRepo, schoolRepo, closeDB, err := database.OpenDirectory()
	errAndDie(err)
	defer closeDB()

	usrSvc := user.NewService(usrRepo)
	schoolSvc := school.NewService(schoolRepo, usrSvc)

	// start the portal server
	app := echoportal.NewServer(
		&echoportal.Options{
			Addr:      core.Conf.GetString("serverAddr"),
			Logger:    logger,
			UserSvc:   usrSvc,
			SchoolSvc: schoolSvc,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
