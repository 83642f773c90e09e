package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/vaultpass/passvault/internal/client"
)

const defaultAPI = "http://localhost:8080"

type apiFlags struct {
	api   string
	token string
}

func (a *apiFlags) register(fs *flag.FlagSet) {
	api := os.Getenv("PASSVAULT_API")
	if api == "" {
		api = defaultAPI
	}
	fs.StringVar(&a.api, "api", api, "API base URL (env PASSVAULT_API)")
	fs.StringVar(&a.token, "token", os.Getenv("PASSVAULT_TOKEN"), "access token (env PASSVAULT_TOKEN)")
}

func (a *apiFlags) client() (*client.Client, error) {
	if a.token == "" {
		return nil, errors.New("an access token is required, set -token or PASSVAULT_TOKEN")
	}
	return client.New(a.api), nil
}

func parseSubcommand(name string, args []string, stderr io.Writer) (*flag.FlagSet, *apiFlags, bool, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	var af apiFlags
	af.register(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return fs, &af, false, nil
		}
		return fs, &af, false, err
	}
	return fs, &af, true, nil
}

func runList(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	_, af, ok, err := parseSubcommand("list", args, stderr)
	if !ok {
		return err
	}
	c, err := af.client()
	if err != nil {
		return err
	}

	creds, err := c.ListCredentials(ctx, af.token)
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		fmt.Fprintln(stdout, "no credentials stored")
		return nil
	}

	now := time.Now()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "SITE", "USERNAME", "PASSWORD", "ADDED")
	for _, cr := range creds {
		t.Row(strconv.FormatInt(cr.ID, 10), cr.Site, cr.Username, cr.Password, humanize.RelTime(cr.CreatedAt, now, "ago", "from now"))
	}
	_, err = fmt.Fprintln(stdout, t.Render())
	return err
}

func runReveal(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, af, ok, err := parseSubcommand("reveal", args, stderr)
	if !ok {
		return err
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: passvault reveal [flags] <id>")
		return errUsage
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid credential id %q", fs.Arg(0))
	}

	c, err := af.client()
	if err != nil {
		return err
	}
	cred, err := c.RevealCredential(ctx, af.token, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s (%s): %s\n", cred.Site, cred.Username, cred.Password)
	return nil
}
