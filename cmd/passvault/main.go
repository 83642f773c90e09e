// Command passvault generates and scores passwords locally and reads the
// credential vault from a running API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const usage = `usage: passvault <command> [flags]

commands:
  generate        generate passwords (default)
  strength <pw>   score a password
  list            list stored credentials
  reveal <id>     show a stored password

run "passvault <command> -h" for the flags of a command`

var errUsage = errors.New("invalid usage")

func main() {
	_ = godotenv.Load()

	err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "passvault:", err)
		}
		os.Exit(1)
	}
}

// run dispatches to a subcommand. A leading flag means "generate".
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "generate":
		return runGenerate(args, stdout, stderr)
	case "strength":
		return runStrength(args, stdout, stderr)
	case "list":
		return runList(ctx, args, stdout, stderr)
	case "reveal":
		return runReveal(ctx, args, stdout, stderr)
	case "help":
		fmt.Fprintln(stdout, usage)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s\n", cmd, usage)
		return errUsage
	}
}
