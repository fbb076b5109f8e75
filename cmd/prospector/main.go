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
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poiesic/prospector"
	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/config"
	"github.com/poiesic/prospector/jobs"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "prospector",
		Usage:  "Enrich candidate profiles from GitHub, LinkedIn and X",
		Flags:  globalFlags(),
		Before: setupLogger,
		Writer: out,
		Commands: append(jobCommands(),
			&cli.Command{
				Name:      "x-score",
				Usage:     "rank X bios against a query",
				ArgsUsage: "<query>",
				Action:    xScoreCommand,
			},
			&cli.Command{
				Name:      "similar-technologies",
				Usage:     "list stored technologies close to a skill",
				ArgsUsage: "<skill>",
				Action:    similarTechnologiesCommand,
			},
			&cli.Command{
				Name:   "jobs",
				Usage:  "list batch jobs and their default pacing",
				Action: listJobsCommand,
			},
		),
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "Set logging level (debug, info, warn, error)",
			Value:   "info",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log output format (text, json)",
			Value: "text",
		},
		&cli.StringSliceFlag{
			Name:  "env-file",
			Usage: "Read settings from these .env files (default .env)",
		},
		&cli.StringFlag{
			Name:  "store",
			Usage: "Person and company store (badger, postgres)",
		},
		&cli.StringFlag{
			Name:  "vectors",
			Usage: "Vector store (badger, pgvector, pinecone)",
		},
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
		},
		&cli.StringFlag{
			Name:  "database-url",
			Usage: "PostgreSQL connection string",
		},
		&cli.StringFlag{
			Name:  "redis-url",
			Usage: "Cache provider responses in Redis",
		},
	}
}

func jobFlags(def jobs.Definition) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Number of records processed concurrently per chunk",
			Value: def.BatchSize,
		},
		&cli.DurationFlag{
			Name:  "delay",
			Usage: "Pause between chunks",
			Value: def.Delay,
		},
		&cli.IntFlag{
			Name:  "page-size",
			Usage: "Number of records read per selection page",
			Value: batch.DefaultPageSize,
		},
		&cli.BoolFlag{
			Name:  "progress",
			Usage: "Print a progress line to stderr",
		},
	}
}

func jobCommands() []*cli.Command {
	commands := make([]*cli.Command, 0, len(jobs.Catalog))
	for _, def := range jobs.Catalog {
		cmd := &cli.Command{
			Name:   def.Name,
			Usage:  def.Usage,
			Flags:  jobFlags(def),
			Action: jobCommand(def.Name),
		}
		if def.Name == jobs.GitHubEnrich {
			cmd.ArgsUsage = "[login...]"
			cmd.Flags = append(cmd.Flags, &cli.StringFlag{
				Name:  "file",
				Usage: "Read logins from a file, one per line",
			})
		}
		commands = append(commands, cmd)
	}
	return commands
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(c.String("log-format")) {
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.String("log-format"))
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// loadConfig reads the .env files and applies the command line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.StringSlice("env-file")...)
	if err != nil {
		return nil, err
	}
	var opts []config.Option
	if v := c.String("store"); v != "" {
		opts = append(opts, config.WithStoreBackend(v))
	}
	if v := c.String("vectors"); v != "" {
		opts = append(opts, config.WithVectorBackend(v))
	}
	if v := c.String("db"); v != "" {
		opts = append(opts, config.WithBadgerPath(v))
	}
	if v := c.String("database-url"); v != "" {
		opts = append(opts, config.WithDatabaseURL(v))
	}
	if v := c.String("redis-url"); v != "" {
		opts = append(opts, config.WithRedisURL(v))
	}
	return cfg.Apply(opts...), nil
}

// withServices opens the services for one command and closes them after.
func withServices(c *cli.Context, fn func(ctx context.Context, s *prospector.Services) error) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	services, err := prospector.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open services: %w", err)
	}
	defer services.Close()

	return fn(ctx, services)
}

func jobCommand(name string) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.Int("batch-size") <= 0 {
			return fmt.Errorf("batch-size must be greater than 0")
		}
		if c.Int("page-size") <= 0 {
			return fmt.Errorf("page-size must be greater than 0")
		}

		var args []string
		if name == jobs.GitHubEnrich {
			logins, err := readLogins(c)
			if err != nil {
				return err
			}
			if len(logins) == 0 {
				return fmt.Errorf("at least one login is required")
			}
			args = logins
		}

		opts := []jobs.Option{
			jobs.WithBatchSize(c.Int("batch-size")),
			jobs.WithDelay(c.Duration("delay")),
			jobs.WithPageSize(c.Int("page-size")),
		}
		if c.Bool("progress") {
			opts = append(opts, jobs.WithProgress(os.Stderr))
		}

		return withServices(c, func(ctx context.Context, s *prospector.Services) error {
			report, err := s.NewJobs(opts...).Run(ctx, name, args)
			if err != nil {
				return fmt.Errorf("%s failed: %w", name, err)
			}
			fmt.Fprintf(c.App.Writer, "%s: selected %d, succeeded %d, failed %d\n",
				name, report.Selected, report.Succeeded, report.Failed)
			if !report.OK() {
				return cli.Exit(fmt.Sprintf("%s: %d items failed", name, report.Failed), 1)
			}
			return nil
		})
	}
}

func readLogins(c *cli.Context) ([]string, error) {
	logins := c.Args().Slice()
	path := c.String("file")
	if path == "" {
		return logins, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open login file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			logins = append(logins, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read login file: %w", err)
	}
	return logins, nil
}

func xScoreCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("a query is required")
	}
	return withServices(c, func(ctx context.Context, s *prospector.Services) error {
		_, err := s.NewJobs().XScore(ctx, query, c.App.Writer)
		return err
	})
}

func similarTechnologiesCommand(c *cli.Context) error {
	skill := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(skill) == "" {
		return fmt.Errorf("a skill is required")
	}
	return withServices(c, func(ctx context.Context, s *prospector.Services) error {
		_, err := s.NewJobs().SimilarTechnologies(ctx, skill, c.App.Writer)
		return err
	})
}

func listJobsCommand(c *cli.Context) error {
	for _, def := range jobs.Catalog {
		fmt.Fprintf(c.App.Writer, "%-26s batch %-6d delay %-8s %s\n", def.Name, def.BatchSize, def.Delay, def.Usage)
	}
	return nil
}
