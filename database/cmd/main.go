package main

import (
	"flag"

	"liamandmia.wedding/configs"
	"liamandmia.wedding/configs/configsdatabase"
	"liamandmia.wedding/configs/configslog"
	"liamandmia.wedding/database"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "run database migrations")
	seedFlag := flag.Bool("seed", false, "run database seeders")
	flag.Parse()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrateFlag, *seedFlag)
}
