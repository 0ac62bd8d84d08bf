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
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/poiesic/strand"
	"github.com/poiesic/strand/filter"
	"github.com/poiesic/strand/ingestion"
	"github.com/poiesic/strand/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "strand",
		Usage: "Content-addressed string analysis store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Address to listen on",
						Value: ":8080",
					},
				},
			},
			{
				Name:      "add",
				Usage:     "Analyze and store one or more string values",
				ArgsUsage: "VALUE [VALUE...]",
				Action:    addCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent ingestion workers",
						Value: 4,
					},
				},
			},
			{
				Name:      "get",
				Usage:     "Retrieve a record by identifier, or by raw value with --by-value",
				ArgsUsage: "IDENTIFIER|VALUE",
				Action:    getCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{
						Name:  "by-value",
						Usage: "Treat the argument as the raw value instead of an identifier",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Find records with a natural-language filter sentence",
				ArgsUsage: "SENTENCE",
				Action:    searchCommand,
				Flags: []cli.Flag{
					dbFlag(),
					limitFlag(),
				},
			},
			{
				Name:   "list",
				Usage:  "Find records with explicit filter flags",
				Action: listCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{
						Name:  "palindrome",
						Usage: "Only palindromes",
					},
					&cli.IntFlag{
						Name:  "min-length",
						Usage: "Inclusive lower bound on length",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "max-length",
						Usage: "Inclusive upper bound on length",
						Value: -1,
					},
					&cli.IntFlag{
						Name:  "word-count",
						Usage: "Exact word count",
						Value: -1,
					},
					&cli.StringFlag{
						Name:  "contains",
						Usage: "Single character the value must contain",
					},
					limitFlag(),
				},
			},
			{
				Name:      "rm",
				Usage:     "Delete a record by identifier",
				ArgsUsage: "IDENTIFIER",
				Action:    rmCommand,
				Flags:     []cli.Flag{dbFlag()},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "db",
		Aliases:  []string{"d"},
		Usage:    "Path to BadgerDB database directory",
		Required: true,
	}
}

func limitFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of records to return (0 = all)",
	}
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
		return fmt.Errorf("invalid log level: %s", levelStr)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func openDatabase(c *cli.Context) (*strand.Database, error) {
	return strand.NewDatabase(c.String("db"))
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	srv, err := db.NewServer()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:    c.String("addr"),
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func addCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one value is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline(ingestion.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return err
	}
	defer pipeline.Release()

	results, err := pipeline.Ingest(c.Context, c.Args().Slice())
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		switch {
		case result.Record != nil:
			if err := printJSON(result.Record); err != nil {
				return err
			}
		case result.Conflict():
			slog.Warn("value already stored", "value", result.Value)
		default:
			slog.Error("ingestion failed", "value", result.Value, "err", result.Err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values failed", failed, len(results))
	}
	return nil
}

func getCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one argument is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	arg := c.Args().First()

	var record any
	if c.Bool("by-value") {
		record, err = db.Records().GetRecordByValue(c.Context, arg)
	} else {
		record, err = db.Records().GetRecord(c.Context, arg)
	}
	if err != nil {
		return err
	}
	return printJSON(record)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("a filter sentence is required")
	}

	spec, err := filter.Compile(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.Records().FindRecords(c.Context, storage.Query{
		Spec:  spec,
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}
	return printJSON(records)
}

func listCommand(c *cli.Context) error {
	var spec filter.Spec
	if c.IsSet("palindrome") {
		spec = spec.WithPalindrome(c.Bool("palindrome"))
	}
	if n := c.Int("min-length"); n >= 0 {
		spec = spec.WithMinLength(n)
	}
	if n := c.Int("max-length"); n >= 0 {
		spec = spec.WithMaxLength(n)
	}
	if n := c.Int("word-count"); n >= 0 {
		spec = spec.WithWordCount(n)
	}
	if v := c.String("contains"); v != "" {
		runes := []rune(v)
		if len(runes) != 1 {
			return fmt.Errorf("--contains must be a single character, got %q", v)
		}
		spec = spec.WithContainsCharacter(runes[0])
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.Records().FindRecords(c.Context, storage.Query{
		Spec:  spec,
		Limit: c.Int("limit"),
	})
	if err != nil {
		return err
	}
	return printJSON(records)
}

func rmCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("exactly one identifier is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	deleted, err := db.Records().DeleteRecord(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("no record with identifier %s", c.Args().First())
	}

	fmt.Println("deleted", c.Args().First())
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
