package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Creates an empty up/down migration pair under db/migrations, named with a
// UTC timestamp version so golang-migrate applies them in order.
func main() {
	name := flag.String("name", "", "migration name")
	flag.Parse()

	if *name == "" {
		log.Fatal().Msg("migration name is required")
	}
	if strings.ContainsAny(*name, " ") {
		log.Fatal().Msg("migration name must not contain spaces")
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, *name)
	dir := filepath.Join("db", "migrations")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("create migrations dir")
	}

	for _, suffix := range []string{".up.sql", ".down.sql"} {
		path := filepath.Join(dir, base+suffix)
		if _, err := os.Stat(path); err == nil {
			log.Fatal().Str("path", path).Msg("file already exists")
		} else if !os.IsNotExist(err) {
			log.Fatal().Err(err).Msg("stat migration file")
		}
		header := fmt.Sprintf("-- %s%s\n", *name, suffix)
		if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
			log.Fatal().Err(err).Msg("write migration file")
		}
		log.Info().Str("path", path).Msg("created")
	}
}
