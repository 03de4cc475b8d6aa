package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "CampusConnect")
	Conf.SetDefault("secretKey", "q2y(h0c&mpu$c0nn3ct-d3m0-k3y)x7!wz#*4g^$vtegm9emy")
	Conf.SetDefault("serverAddr", ":8000")
	Conf.SetDefault("sessionCookieName", "campusconnect_session")
	Conf.SetDefault("sessionExpirationDelta", 12*time.Hour)
	Conf.SetDefault("databaseEngine", "inmem") // inmem | sqlite | postgres
	Conf.SetDefault("databaseDSN", ":memory:")
	Conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetDefault("env", env)
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}
