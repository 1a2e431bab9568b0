// Command sokosolve reads a level file, solves it optimally, and prints
// the solution in LURD notation together with search statistics.
//
// Exit codes: 0 solved, 1 usage/parse/validation/runtime failure,
// 2 proved unsolvable.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sokotools/sokosolve/board"
	"github.com/sokotools/sokosolve/runstore"
	"github.com/sokotools/sokosolve/solver"
	"github.com/sokotools/sokosolve/stategraph"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("sokosolve: ")

	cmd := &cli.Command{
		Name:      "sokosolve",
		Usage:     "solve box-pushing puzzle levels optimally",
		ArgsUsage: "LEVELFILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "custom",
				Aliases: []string{"c"},
				Usage:   "parse the level as the two-characters-per-cell format",
			},
			&cli.BoolFlag{
				Name:    "xsb",
				Aliases: []string{"x"},
				Usage:   "parse the level as XSB (the default)",
			},
			&cli.StringFlag{
				Name:    "method",
				Aliases: []string{"m"},
				Usage:   "optimization criterion: pushes, moves, pushes-then-moves, moves-then-pushes",
			},
			&cli.BoolFlag{
				Name:  "moves",
				Usage: "expand a push-level solution into a full move sequence",
			},
			&cli.IntFlag{
				Name:  "max-nodes",
				Usage: "abort after this many search nodes",
			},
			&cli.StringFlag{
				Name:  "graph",
				Usage: "write the explored state graph as DOT to `FILE` (.zst compresses)",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "record the run in the SQLite database at `FILE`",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "load flag defaults from the YAML file at `FILE`",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if exit, ok := err.(cli.ExitCoder); ok {
			if exit.ExitCode() != 0 {
				log.Print(err)
			}
			os.Exit(exit.ExitCode())
		}
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return cli.Exit("expected exactly one LEVELFILE argument", 1)
	}
	if cmd.Bool("custom") && cmd.Bool("xsb") {
		return cli.Exit("--custom and --xsb are mutually exclusive", 1)
	}

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	methodName := pick(cmd.IsSet("method"), cmd.String("method"), cfg.Method)
	method := solver.MethodPushes
	if methodName != "" {
		var ok bool
		if method, ok = solver.ParseMethod(methodName); !ok {
			return cli.Exit(fmt.Sprintf("unknown method %q", methodName), 1)
		}
	}
	expandMoves := cmd.Bool("moves") || (!cmd.IsSet("moves") && cfg.Moves != nil && *cfg.Moves)
	maxNodes := solver.DefaultMaxNodes
	if cmd.IsSet("max-nodes") {
		maxNodes = int(cmd.Int("max-nodes"))
	} else if cfg.MaxNodes > 0 {
		maxNodes = cfg.MaxNodes
	}
	if maxNodes <= 0 {
		return cli.Exit("--max-nodes must be positive", 1)
	}
	graphPath := pick(cmd.IsSet("graph"), cmd.String("graph"), cfg.Graph)
	dbPath := pick(cmd.IsSet("db"), cmd.String("db"), cfg.DB)

	levelPath := cmd.Args().First()
	text, err := os.ReadFile(levelPath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("read level: %v", err), 1)
	}
	format := board.FormatXSB
	if cmd.Bool("custom") {
		format = board.FormatCustom
	}
	b, err := board.Parse(string(text), format)
	if err != nil {
		return cli.Exit(fmt.Sprintf("parse %s: %v", levelPath, err), 1)
	}

	opts := []solver.Option{
		solver.WithMethod(method),
		solver.WithMaxNodes(maxNodes),
		solver.WithStatus(func(depth int, stats solver.Stats) {
			log.Printf("depth %d, %d visited", depth, stats.TotalVisited())
		}),
	}
	if expandMoves {
		opts = append(opts, solver.WithMoves())
	}
	if graphPath != "" {
		opts = append(opts, solver.WithKeepGraph())
	}

	log.Printf("solving %s (%s)", levelPath, method)
	started := time.Now()
	res, err := solver.Solve(b, opts...)
	elapsed := time.Since(started)
	if err != nil {
		return cli.Exit(fmt.Sprintf("solve: %v", err), 1)
	}

	fmt.Println(res.Stats)
	if dbPath != "" {
		if err := record(ctx, dbPath, b, res, elapsed); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	if graphPath != "" {
		if err := stategraph.WriteFile(graphPath, res.Graph); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		log.Printf("state graph written to %s", graphPath)
	}

	if !res.Solved {
		return cli.Exit("no solution: the level is unsolvable", 2)
	}
	fmt.Println(res.Path)
	fmt.Printf("%d pushes, %d moves in %v\n", res.Path.Pushes(), res.Path.Moves(), elapsed.Round(time.Millisecond))
	return nil
}

// record appends the finished run to the SQLite history.
func record(ctx context.Context, path string, b *board.Board, res *solver.Result, elapsed time.Duration) error {
	store, err := runstore.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	run := runstore.Run{
		LevelSHA:   runstore.LevelSHA(b),
		Method:     res.Method.String(),
		Solved:     res.Solved,
		Pushes:     -1,
		Moves:      -1,
		Created:    res.Stats.TotalCreated(),
		Visited:    res.Stats.TotalVisited(),
		Duplicates: res.Stats.TotalDuplicate(),
		Elapsed:    elapsed,
	}
	if res.Solved {
		run.Pushes = res.Path.Pushes()
		run.Moves = res.Path.Moves()
	}
	return store.Record(ctx, run)
}

// pick returns the flag value when the flag was given, the config value
// otherwise.
func pick(flagSet bool, flag, config string) string {
	if flagSet {
		return flag
	}
	return config
}
