// Package pbnfile reads and writes the subset of the PBN file format a
// solver CLI needs: the `[Deal "..."]`, `[Dealer]`, and `[Declarer]`
// tags of a single board. This is distinct from engine.ParsePBN, which
// only parses the deal-string token itself — pbnfile handles the
// surrounding tag-pair file convention.
//
// Parsed line by line as a small state machine, the same style
// internal/engine/round.go uses for reading structured text; adapted
// here to PBN's "[Tag \"value\"]" line format.
package pbnfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bran/bridgesolve/internal/engine"
)

// Board is one parsed PBN board: its deal, a dealer seat, and
// optionally a declarer seat. Dealer is set both from the seat the
// Deal tag lists first and from a [Dealer] tag; when both appear, the
// later one in the file wins.
type Board struct {
	Hands    engine.Hands
	Dealer   engine.Seat
	Declarer engine.Seat
	HasDecl  bool
}

// Parse reads every "[Tag "value"]" line from r and assembles one
// Board. Unrecognized tags are ignored.
func Parse(r io.Reader) (Board, error) {
	var board Board
	var sawDeal bool

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		tag, value, ok := parseTagLine(line)
		if !ok {
			continue
		}
		switch tag {
		case "Deal":
			hands, dealer, err := engine.ParsePBN(value)
			if err != nil {
				return Board{}, fmt.Errorf("pbnfile: Deal tag: %w", err)
			}
			board.Hands = hands
			board.Dealer = dealer
			sawDeal = true
		case "Dealer":
			seat, ok := engine.SeatFromRune(runeOf(value))
			if !ok {
				return Board{}, fmt.Errorf("pbnfile: Dealer tag: unknown seat %q", value)
			}
			board.Dealer = seat
		case "Declarer":
			seat, ok := engine.SeatFromRune(runeOf(value))
			if !ok {
				return Board{}, fmt.Errorf("pbnfile: Declarer tag: unknown seat %q", value)
			}
			board.Declarer = seat
			board.HasDecl = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Board{}, err
	}
	if !sawDeal {
		return Board{}, fmt.Errorf("pbnfile: no [Deal \"...\"] tag found")
	}
	return board, nil
}

// parseTagLine splits a "[Tag "value"]" line into its tag and value.
func parseTagLine(line string) (tag, value string, ok bool) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", "", false
	}
	inner := line[1 : len(line)-1]
	space := strings.IndexByte(inner, ' ')
	if space < 0 {
		return "", "", false
	}
	tag = inner[:space]
	rest := strings.TrimSpace(inner[space+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", false
	}
	return tag, rest[1 : len(rest)-1], true
}

func runeOf(s string) rune {
	if len(s) == 0 {
		return 0
	}
	return rune(s[0])
}

// Write emits a Board back out in PBN tag-pair form.
func Write(w io.Writer, b Board) error {
	if _, err := fmt.Fprintf(w, "[Deal \"%s\"]\n", engine.FormatPBN(b.Hands, b.Dealer)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "[Dealer \"%s\"]\n", b.Dealer); err != nil {
		return err
	}
	if b.HasDecl {
		if _, err := fmt.Fprintf(w, "[Declarer \"%s\"]\n", b.Declarer); err != nil {
			return err
		}
	}
	return nil
}
