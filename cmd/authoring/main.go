// Command authoring edits traits and incumbency versions against the admin content API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if err := execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// exitCode separates problems the author can fix from failures of the API or environment
func exitCode(err error) int {
	switch dnderr.GetCode(err) {
	case dnderr.CodeRemoteFailure, dnderr.CodeInternal, dnderr.CodeUnavailable, dnderr.CodeUnknown:
		return exitSysError
	default:
		return exitUserError
	}
}
