package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dialoguewheel/pkg/server"
)

const defaultAddr = "127.0.0.1:8080"

// serveCommand creates the serve command for the live browser preview.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		src     sourceFlags
		addr    string
		title   string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [options-file]",
		Short: "Preview a live, clickable wheel in the browser",
		Long: `Serve a live dialogue wheel over HTTP.

The page at / is interactive: clicking an enabled segment selects it, and
every open page follows selections and configuration changes pushed as
server-sent events. The /api routes change options and appearance at runtime.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				src.options = args[0]
			}
			return c.runServe(cmd.Context(), src, addr, title, noCache)
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&title, "title", "", "page title")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching of static renders")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, flags sourceFlags, addr, title string, noCache bool) error {
	src, err := flags.load(c.Config)
	if err != nil {
		return err
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(server.Config{
		Options:    src.Options,
		Appearance: src.Appearance,
		Title:      title,
		Runner:     runner,
		Logger:     c.Logger,
	})

	printSuccess("Preview server starting")
	printKeyValue("page", StyleLink.Render(serverURL(addr)+"/"))
	printKeyValue("svg", serverURL(addr)+"/wheel.svg")
	printKeyValue("events", serverURL(addr)+"/api/events")
	printNewline()
	printNextStep("Select an option", "curl -X POST "+serverURL(addr)+"/api/select/0")

	err = srv.ListenAndServe(ctx, addr)
	if err != nil {
		return err
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return nil
}

// serverURL turns a listen address into a browsable URL.
func serverURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return "http://" + host + ":" + port
}
