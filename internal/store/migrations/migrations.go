// Package migrations embeds the goose migration series for the local
// BuildCalc database. The series is additive-only: steps create tables or
// indexes, never drop or rename existing collections, so re-running from
// any prior version is safe.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
