package domain

import "time"

const (
	// subcommands understood by the gamesman binary
	GetStartSubcommand = "getstart"
	QuerySubcommand    = "query"

	// default relative path of the pre-built solver binary
	DefaultSolverPath = "bin/gamesman"

	// the reference deployment binds all interfaces on 8084
	DefaultBindAddr = ":8084"

	// 0 keeps the reference behavior: block until the child exits
	DefaultSolverTimeout = time.Duration(0)
)
