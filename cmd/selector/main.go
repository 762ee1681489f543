package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/zeusync/selector/internal/config"
	"github.com/zeusync/selector/internal/console"
	"github.com/zeusync/selector/internal/core/entity"
	"github.com/zeusync/selector/internal/core/selector"
	"github.com/zeusync/selector/internal/injector"
)

func main() {
	app := &cli.App{
		Name:  "selector",
		Usage: "Resolve entity selectors against a roster",
		Description: `Selectors address connected entities with a compact query, e.g.

  @a[role=classd,hp=..50]   every Class-D at or below 50 health
  @r[limit=2]               two random entities
  @o                        everyone except the operator
  @stack:last               the oldest saved selection`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "roster",
				Aliases: []string{"r"},
				Usage:   "YAML roster file",
			},
		},
		Commands: []*cli.Command{
			resolveCommand(),
			batchCommand(),
			filtersCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type env struct {
	cfg    config.Config
	svc    *selector.Service
	roster entity.Roster
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.LoadFile(c.String("config"))
	if err != nil {
		return nil, err
	}
	svc, err := injector.InitializeService(cfg)
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, svc: svc}
	if path := c.String("roster"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if e.roster, err = entity.LoadRosterYAML(f); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *env) operator(flag string) entity.Identity {
	if flag != "" {
		return entity.Identity(flag)
	}
	if e.cfg.ConsoleID != "" {
		return entity.Identity(e.cfg.ConsoleID)
	}
	return entity.Console
}

func resolveCommand() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve one selector",
		ArgsUsage: "@SELECTOR [ARGS...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "operator",
				Aliases: []string{"o"},
				Usage:   "Identity of the operator issuing the selector (defaults to the console)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("a selector is required", 2)
			}
			e, err := setup(c)
			if err != nil {
				return err
			}

			out := console.Execute(e.svc, e.roster, console.Line{
				Operator: e.operator(c.String("operator")),
				Text:     strings.Join(c.Args().Slice(), " "),
			})
			if out.Err != nil {
				return out.Err
			}
			fmt.Fprintln(c.App.Writer, out.Output)
			return nil
		},
	}
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "Run a script of `[+]operator @selector [args...]` lines",
		ArgsUsage: "SCRIPT",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("exactly one script file is required", 2)
			}
			e, err := setup(c)
			if err != nil {
				return err
			}

			f, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()
			lines, err := console.ParseScript(f)
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range console.Run(e.svc, e.roster, lines) {
				if o.Err != nil {
					failed++
					fmt.Fprintf(c.App.ErrWriter, "%d: %s: %v\n", o.Line.Number, o.Line.Operator, o.Err)
					continue
				}
				fmt.Fprintf(c.App.Writer, "%d: %s: %s\n", o.Line.Number, o.Line.Operator, o.Output)
			}
			if failed > 0 {
				return cli.Exit(fmt.Sprintf("%d line(s) failed", failed), 1)
			}
			return nil
		},
	}
}

func filtersCommand() *cli.Command {
	return &cli.Command{
		Name:  "filters",
		Usage: "List filter aliases",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			for _, alias := range e.svc.Aliases() {
				fmt.Fprintln(c.App.Writer, alias)
			}
			return nil
		},
	}
}
