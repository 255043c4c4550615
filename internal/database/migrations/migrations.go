// Package migrations embeds the goose migrations for each supported database.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// Postgres returns the PostgreSQL migrations
func Postgres() fs.FS {
	return mustSub("postgres")
}

// SQLite returns the SQLite migrations
func SQLite() fs.FS {
	return mustSub("sqlite")
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
