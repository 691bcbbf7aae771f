// Package accounts exposes build-time assets shared by the CLI, most notably
// the embedded SQL migrations applied by the migrate command.
package accounts

import "embed"

// Migrations contains the goose SQL migrations for the service schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
