package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bran/bridgesolve/internal/constraint"
	"github.com/bran/bridgesolve/internal/deal"
	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/pbnfile"
	"github.com/bran/bridgesolve/internal/report"
	"github.com/bran/bridgesolve/internal/solver"
	"github.com/bran/bridgesolve/internal/solver/diag"
	"github.com/bran/bridgesolve/internal/tui"
)

func main() {
	cliApp := &cli.App{
		Name:    "bridgesolve",
		Usage:   "Double-dummy bridge solver",
		Version: "0.1.0",
		Commands: []*cli.Command{
			{
				Name:      "solve",
				Aliases:   []string{"s"},
				Usage:     "Solve a single deal and print the NS trick count",
				ArgsUsage: "<deal-pbn>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "trump", Aliases: []string{"t"}, Value: "NT", Usage: "trump denomination: S, H, D, C, or NT"},
					&cli.StringFlag{Name: "leader", Aliases: []string{"l"}, Usage: "leader seat: N, E, S, or W (default: the deal string's first seat)"},
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "read the deal from a PBN file instead of an argument"},
					&cli.BoolFlag{Name: "perf-report", Usage: "print node-count and timing diagnostics"},
					&cli.BoolFlag{Name: "disable-pruning", Usage: "disable the fast/slow-trick heuristic prune"},
					&cli.BoolFlag{Name: "disable-tt", Usage: "disable the transposition table and cutoff memo"},
					&cli.BoolFlag{Name: "disable-rank-skip", Usage: "disable pattern-descriptor rank-skip equivalencing"},
				},
				Action: runSolve,
			},
			{
				Name:   "bench",
				Usage:  "Run the canonical regression set and print a CSV report",
				Action: runBench,
			},
			{
				Name:   "deal",
				Usage:  "Generate a random deal, optionally filtered by constraint predicates",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "seed", Usage: "random seed (default: a fresh, unseeded shuffle)"},
					&cli.StringFlag{Name: "where", Usage: `constraint predicates, e.g. "N.hcp>=15,N.spades>=5"`},
					&cli.IntFlag{Name: "max-tries", Value: 10000, Usage: "give up generating a matching deal after this many shuffles"},
				},
				Action: runDeal,
			},
			{
				Name:   "rules",
				Usage:  "Explain the terms and rules this solver operates under",
				Action: showRules,
			},
			{
				Name:      "tui",
				Usage:     "Open the deal inspector",
				ArgsUsage: "<deal-pbn>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "trump", Aliases: []string{"t"}, Value: "NT", Usage: "trump denomination: S, H, D, C, or NT"},
					&cli.StringFlag{Name: "leader", Aliases: []string{"l"}, Usage: "leader seat (default: the deal string's first seat)"},
				},
				Action: runTUI,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseDenomination maps a CLI trump flag value to a Denomination.
func parseDenomination(s string) (engine.Denomination, error) {
	switch s {
	case "S", "s":
		return engine.DenomSpades, nil
	case "H", "h":
		return engine.DenomHearts, nil
	case "D", "d":
		return engine.DenomDiamonds, nil
	case "C", "c":
		return engine.DenomClubs, nil
	case "NT", "nt", "N", "n", "":
		return engine.NoTrump, nil
	}
	return 0, fmt.Errorf("unknown trump denomination %q (want S, H, D, C, or NT)", s)
}

// loadDeal resolves a deal from either the --file flag or the first
// positional argument, returning the parsed Hands and the deal
// string's own leader seat.
func loadDeal(c *cli.Context) (engine.Hands, engine.Seat, error) {
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return engine.Hands{}, 0, err
		}
		defer f.Close()
		board, err := pbnfile.Parse(f)
		if err != nil {
			return engine.Hands{}, 0, err
		}
		return board.Hands, board.Dealer, nil
	}
	if c.NArg() < 1 {
		return engine.Hands{}, 0, fmt.Errorf("expected a deal-pbn argument or --file")
	}
	return engine.ParsePBN(c.Args().First())
}

// resolveLeader applies an explicit --leader override, falling back
// to the deal string's own first seat.
func resolveLeader(c *cli.Context, fromDeal engine.Seat) (engine.Seat, error) {
	flag := c.String("leader")
	if flag == "" {
		return fromDeal, nil
	}
	seat, ok := engine.SeatFromRune(rune(flag[0]))
	if !ok {
		return 0, fmt.Errorf("unknown leader seat %q", flag)
	}
	return seat, nil
}

func runSolve(c *cli.Context) error {
	hands, dealLeader, err := loadDeal(c)
	if err != nil {
		return err
	}
	trump, err := parseDenomination(c.String("trump"))
	if err != nil {
		return err
	}
	leader, err := resolveLeader(c, dealLeader)
	if err != nil {
		return err
	}

	flags := &diag.Flags{
		PerfReport:      c.Bool("perf-report"),
		DisablePruning:  c.Bool("disable-pruning"),
		DisableTT:       c.Bool("disable-tt"),
		DisableRankSkip: c.Bool("disable-rank-skip"),
	}
	cfg := solver.Config{Hands: hands, Trump: trump, Leader: leader}
	result := solver.Solve(cfg, flags)
	fmt.Printf("NS tricks: %d\n", result)
	return nil
}

func runBench(c *cli.Context) error {
	rows, err := report.Run(report.Seeds)
	if err != nil {
		return err
	}
	return report.Write(os.Stdout, rows)
}

func runDeal(c *cli.Context) error {
	var rnd *rand.Rand
	if c.IsSet("seed") {
		rnd = rand.New(rand.NewSource(c.Int64("seed")))
	}

	expr, err := constraint.Parse(c.String("where"))
	if err != nil {
		return err
	}

	maxTries := c.Int("max-tries")
	for try := 0; try < maxTries; try++ {
		hands := deal.Random(rnd)
		if constraint.Eval(expr, hands) {
			fmt.Println(engine.FormatPBN(hands, engine.West))
			return nil
		}
	}
	return fmt.Errorf("no deal satisfying %q found in %d tries", c.String("where"), maxTries)
}

func runTUI(c *cli.Context) error {
	hands, dealLeader, err := loadDeal(c)
	if err != nil {
		return err
	}
	trump, err := parseDenomination(c.String("trump"))
	if err != nil {
		return err
	}
	leader, err := resolveLeader(c, dealLeader)
	if err != nil {
		return err
	}

	cfg := solver.Config{Hands: hands, Trump: trump, Leader: leader}
	nsWon := solver.Solve(cfg, nil)
	return tui.Run(tui.Result{Hands: hands, Trump: trump, Leader: leader, NSWon: nsWon})
}

func showRules(c *cli.Context) error {
	fmt.Print(`
DOUBLE-DUMMY BRIDGE SOLVING
============================

A double-dummy analysis assumes every hand is visible to both sides
and both sides defend and declare with perfect information and
perfect play. The result is a single number: the tricks North/South
can guarantee against any East/West defense.

TERMS
-----
Trick    One card played from each of the four hands; the winner
         leads the next trick.
Follow   When a suit is led, a hand holding that suit must play it.
Trump    A nominated suit that beats every other suit regardless of
         rank. No-trump (NT) means no suit has this power.
Ruff     Playing a trump card because the led suit cannot be
         followed.
Leader   The seat that plays first to a given trick.

SEATS AND PARTNERSHIPS
-----------------------
Four seats: North, East, South, West, seated clockwise. North and
South are partners; East and West are partners. Play rotates
clockwise starting from whoever is on lead.

DEAL NOTATION (PBN)
--------------------
A deal is written "<seat>:<hand> <hand> <hand> <hand>", where <seat>
is the first hand's owner and the remaining three follow clockwise.
Each hand lists its Spades.Hearts.Diamonds.Clubs holdings separated
by dots, high card first, e.g.:

  N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72

READING THE RESULT
-------------------
"bridgesolve solve" prints the number of tricks North/South take
under optimal play from both sides — never a suggested line of play,
never an explanation of why. Use "bridgesolve tui" to step through
the four hands of a solved deal seat by seat.
`)
	return nil
}
