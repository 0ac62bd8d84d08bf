package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testApp() *cli.App {
	return &cli.App{
		Name: "strand",
		Commands: []*cli.Command{
			{
				Name:   "add",
				Action: addCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.IntFlag{Name: "pool-size", Value: 4},
				},
			},
			{
				Name:   "get",
				Action: getCommand,
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{Name: "by-value"},
				},
			},
			{
				Name:   "search",
				Action: searchCommand,
				Flags:  []cli.Flag{dbFlag(), limitFlag()},
			},
			{
				Name:   "rm",
				Action: rmCommand,
				Flags:  []cli.Flag{dbFlag()},
			},
		},
	}
}

func TestCommands_RequireDBFlag(t *testing.T) {
	app := testApp()

	for _, args := range [][]string{
		{"strand", "add", "some value"},
		{"strand", "get", "abc"},
		{"strand", "search", "palindromic strings"},
		{"strand", "rm", "abc"},
	} {
		t.Run(args[1], func(t *testing.T) {
			err := app.Run(args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "db")
		})
	}
}

func TestAdd_RequiresValue(t *testing.T) {
	app := testApp()
	err := app.Run([]string{"strand", "add", "--db", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value")
}

func TestAddGetSearchRoundTrip(t *testing.T) {
	app := testApp()
	dir := t.TempDir()

	require.NoError(t, app.Run([]string{"strand", "add", "--db", dir, "racecar", "hello"}))

	// Duplicate values are reported, not fatal.
	require.NoError(t, app.Run([]string{"strand", "add", "--db", dir, "racecar"}))

	require.NoError(t, app.Run([]string{"strand", "get", "--db", dir, "--by-value", "racecar"}))

	err := app.Run([]string{"strand", "get", "--db", dir, "--by-value", "never stored"})
	require.Error(t, err)

	require.NoError(t, app.Run([]string{"strand", "search", "--db", dir, "palindromic", "strings"}))

	err = app.Run([]string{"strand", "search", "--db", dir, "banana"})
	require.Error(t, err)
}
