// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/poiesic/kensaku"
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
	"github.com/poiesic/kensaku/prefs"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "kensaku",
		Usage: "Compile and run Japanese dictionary queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
				EnvVars: []string{"KENSAKU_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Preference store directory (overrides the configuration)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "compile",
				Usage:     "Print the compiled patterns for a query",
				ArgsUsage: "QUERY",
				Action:    compileCommand,
				Flags:     []cli.Flag{styleFlag()},
			},
			{
				Name:      "match",
				Usage:     "Rank dictionary lines against a query",
				ArgsUsage: "QUERY",
				Action:    matchCommand,
				Flags: []cli.Flag{
					styleFlag(),
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Dictionary file to read (defaults to stdin)",
					},
					&cli.StringFlag{
						Name:  "min-relevance",
						Usage: "Lowest relevance to print (low, medium, high)",
						Value: "low",
					},
					&cli.BoolFlag{
						Name:  "highlight",
						Usage: "Mark matched text with [[ ]]",
					},
				},
			},
			{
				Name:  "prefs",
				Usage: "Read and write stored preferences",
				Subcommands: []*cli.Command{
					{
						Name:      "get",
						Usage:     "Print effective preference values",
						ArgsUsage: "[KEY...]",
						Action:    prefsGetCommand,
					},
					{
						Name:      "set",
						Usage:     "Store a preference value",
						ArgsUsage: "KEY VALUE",
						Action:    prefsSetCommand,
					},
					{
						Name:      "reset",
						Usage:     "Remove a stored preference",
						ArgsUsage: "KEY",
						Action:    prefsResetCommand,
					},
					{
						Name:   "list",
						Usage:  "Print stored preferences only",
						Action: prefsListCommand,
					},
				},
			},
		},
	}
}

func styleFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "style",
		Aliases: []string{"s"},
		Usage:   "Dictionary style (edict, kanjidict, exampledict)",
		Value:   "edict",
	}
}

// openEngine builds an engine from the configuration file and global flags.
func openEngine(c *cli.Context) (*kensaku.Engine, error) {
	cfg, err := prefs.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if store := c.String("store"); store != "" {
		cfg.StorePath = store
	}

	engine, err := kensaku.NewEngine(kensaku.WithConfig(cfg), kensaku.WithLogger(slog.Default()))
	if err != nil {
		return nil, fmt.Errorf("failed to open engine: %w", err)
	}
	return engine, nil
}

func queryArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("query is required")
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func compileCommand(c *cli.Context) error {
	raw, err := queryArg(c)
	if err != nil {
		return err
	}
	style, err := core.ParseStyle(c.String("style"))
	if err != nil {
		return err
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	table, compileErr := engine.Compile(style, raw)
	if table == nil {
		return compileErr
	}

	out := c.App.Writer
	fmt.Fprintf(out, "query: %q\n", table.Query().Normalized)
	fmt.Fprintf(out, "fingerprint: %s\n", table.Fingerprint())
	for i := 0; i < table.Len(); i++ {
		atom := table.Atom(i)
		fmt.Fprintf(out, "atom %d %q %s\n", i, atom.Text, table.Class(i))
		for _, tier := range core.Tiers {
			mark := ""
			if table.Matcher(i, tier) == nil {
				mark = " (failed)"
			}
			fmt.Fprintf(out, "  %-7s %s%s\n", tier, table.Source(i, tier), mark)
		}
	}

	if compileErr != nil {
		return fmt.Errorf("compilation incomplete: %w", compileErr)
	}
	return nil
}

func matchCommand(c *cli.Context) error {
	raw, err := queryArg(c)
	if err != nil {
		return err
	}
	style, err := core.ParseStyle(c.String("style"))
	if err != nil {
		return err
	}
	minRelevance, err := parseRelevance(c.String("min-relevance"))
	if err != nil {
		return err
	}

	var in io.Reader = c.App.Reader
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open dictionary: %w", err)
		}
		defer f.Close()
		in = f
	}
	lines, err := readLines(in)
	if err != nil {
		return err
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	hits, err := engine.Rank(context.Background(), style, raw, lines)
	if err != nil {
		if !errors.Is(err, matcher.ErrPartialCompile) {
			return err
		}
		slog.Warn("some query terms could not be compiled", "err", err)
	}

	out := c.App.Writer
	for _, hit := range hits {
		if hit.Relevance < minRelevance {
			continue
		}
		text := hit.Text
		if c.Bool("highlight") {
			text = highlight(text, hit.Spans)
		}
		fmt.Fprintf(out, "%s\t%s\n", hit.Relevance, text)
	}
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	return lines, nil
}

// highlight wraps every span in [[ ]]. Spans must be sorted and disjoint.
func highlight(text string, spans []core.Span) string {
	var b strings.Builder
	last := 0
	for _, s := range spans {
		b.WriteString(text[last:s.Start])
		b.WriteString("[[")
		b.WriteString(text[s.Start:s.End])
		b.WriteString("]]")
		last = s.End
	}
	b.WriteString(text[last:])
	return b.String()
}

func parseRelevance(name string) (core.Relevance, error) {
	for _, r := range []core.Relevance{core.RelevanceLow, core.RelevanceMedium, core.RelevanceHigh} {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid relevance %q: must be one of low, medium, high", name)
}

func prefsGetCommand(c *cli.Context) error {
	keys := c.Args().Slice()
	if len(keys) == 0 {
		for key := range prefs.Keys {
			keys = append(keys, key)
		}
		slices.Sort(keys)
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	store := engine.Preferences()
	for _, key := range keys {
		kind, err := prefs.KindOf(key)
		if err != nil {
			return err
		}
		if kind == prefs.BoolKey {
			fmt.Fprintf(c.App.Writer, "%s=%t\n", key, store.GetBool(key))
		} else {
			fmt.Fprintf(c.App.Writer, "%s=%d\n", key, store.GetInt(key))
		}
	}
	return nil
}

func prefsSetCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected KEY VALUE")
	}
	key, value := c.Args().Get(0), c.Args().Get(1)
	kind, err := prefs.KindOf(key)
	if err != nil {
		return err
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	ctx := context.Background()
	store := engine.Preferences()
	if kind == prefs.BoolKey {
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return store.SetBool(ctx, key, v)
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return store.SetInt(ctx, key, v)
}

func prefsResetCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected KEY")
	}

	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	return engine.Preferences().Delete(context.Background(), c.Args().First())
}

func prefsListCommand(c *cli.Context) error {
	engine, err := openEngine(c)
	if err != nil {
		return err
	}
	defer engine.Close()

	entries, err := engine.Preferences().List(context.Background())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Fprintln(c.App.Writer, entry)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
