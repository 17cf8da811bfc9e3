package main

import (
	"os"

	"github.com/mmangon/wakdrop-backend/cmd/wakdrop-cli/cmd"
)

func main() {
	dbPath, ok := os.LookupEnv("WAKDROP_DB")
	if !ok {
		dbPath = "wakdrop.db"
	}
	cmd.DbPath = dbPath

	cmd.Execute()
}
