// Package cmd implements the hopter subcommands.
//
// Each command is a kong command struct whose Run method receives the
// command context. Paths named "-" refer to stdin or stdout.
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to the
// optional configuration file.
//
//nolint:gochecknoglobals
var ConfigIdentifier = "config"
