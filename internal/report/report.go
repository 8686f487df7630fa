// Package report runs the solver over a canonical regression set of
// seed deals plus any generated batch and writes a CSV comparison:
// (name, deal, trump, leader, expected, actual, nodes, pass). This stands in for a
// comparison harness against an external reference solver — since none
// is wired into this module, the canonical seed table plays that role.
//
// Shaped after the tabular round/game summaries internal/engine/round.go
// prints a line per completed round; adapted here to encoding/csv for a
// machine-readable report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bran/bridgesolve/internal/engine"
	"github.com/bran/bridgesolve/internal/solver"
	"github.com/bran/bridgesolve/internal/solver/diag"
)

// Case is one row to solve and check against an expected result.
// Expected is ignored (left at -1) for generated, non-regression rows.
type Case struct {
	Name     string
	PBN      string
	Trump    engine.Denomination
	Leader   engine.Seat
	Expected int
}

// Seeds is the canonical regression set: seven numbered deals plus two
// sanity 4-card endgames.
var Seeds = []Case{
	{"seed-1", "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72", engine.NoTrump, engine.West, 5},
	{"seed-2", "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72", engine.NoTrump, engine.North, 6},
	{"seed-3", "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72", engine.DenomSpades, engine.West, 5},
	{"seed-4", "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72", engine.DenomHearts, engine.West, 2},
	{"seed-5", "N:AKQT3.J6.KJ42.95 652.AK42.AQ87.T4 J74.QT95.T.AK863 98.873.9653.QJ72", engine.DenomDiamonds, engine.West, 7},
	{"seed-6", "N:AKQJ.AKQ.AKQ.AKQ T987.JT9.JT9.JT9 6543.876.876.876 2.5432.5432.5432", engine.NoTrump, engine.West, 13},
	{"seed-7", "N:T987.JT9.JT9.JT9 AKQJ.AKQ.AKQ.AKQ 2.5432.5432.5432 6543.876.876.876", engine.NoTrump, engine.West, 0},
	{"sanity-sweep", "N:A.A.A.A K.K.K.K 2.2.2.2 3.3.3.3", engine.NoTrump, engine.West, 4},
	{"sanity-shutout", "N:K.K.K.K A.A.A.A 2.2.2.2 3.3.3.3", engine.NoTrump, engine.West, 0},
}

// Row is one solved case, ready for CSV emission.
type Row struct {
	Case
	Actual int
	Nodes  int64
	Pass   bool
}

// Run solves every case and returns its Row. A malformed PBN string
// halts the run and returns the error.
func Run(cases []Case) ([]Row, error) {
	rows := make([]Row, 0, len(cases))
	for _, c := range cases {
		hands, _, err := engine.ParsePBN(c.PBN)
		if err != nil {
			return nil, fmt.Errorf("report: case %s: %w", c.Name, err)
		}
		cfg := solver.Config{Hands: hands, Trump: c.Trump, Leader: c.Leader}
		actual, nodes := solver.SolveWithNodes(cfg, &diag.Flags{})
		rows = append(rows, Row{
			Case:   c,
			Actual: actual,
			Nodes:  nodes,
			Pass:   c.Expected < 0 || c.Expected == actual,
		})
	}
	return rows, nil
}

// Write emits rows as CSV to w: name, deal, trump, leader, expected,
// actual, nodes, pass.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "deal", "trump", "leader", "expected", "actual", "nodes", "pass"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			r.Name,
			r.PBN,
			r.Trump.String(),
			r.Leader.String(),
			fmt.Sprintf("%d", r.Expected),
			fmt.Sprintf("%d", r.Actual),
			fmt.Sprintf("%d", r.Nodes),
			fmt.Sprintf("%t", r.Pass),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
