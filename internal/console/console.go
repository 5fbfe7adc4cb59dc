package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterkuimelis/savedata/internal/game"
	"github.com/peterkuimelis/savedata/internal/view"
)

// Console drives a roster from text commands and renders the active deck.
type Console struct {
	roster *game.Roster
	in     *bufio.Reader
	out    io.Writer
}

// New creates a console reading commands from in and writing to out.
func New(roster *game.Roster, in io.Reader, out io.Writer) *Console {
	return &Console{roster: roster, in: bufio.NewReader(in), out: out}
}

// Run reads commands until EOF, "quit" or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.renderState(view.BuildStateView(c.roster))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := c.Exec(line); quit {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}
	}
}

// Exec runs one command line and reports whether the console should stop.
func (c *Console) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		c.renderHelp()
		return false
	case "state", "show", "s":
		c.renderState(view.BuildStateView(c.roster))
		return false
	case "breakdown", "b":
		c.renderBreakdown(view.BuildBreakdownView(c.roster.Breakdown()))
		return false
	case "characters", "chars":
		c.renderCharacters(view.BuildCharacterViews(c.roster.Characters()))
		return false
	case "lookup":
		c.lookup(fields[1:])
		return false
	}

	cmd, err := ParseCommand(fields, c.roster.State())
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return false
	}
	res, err := c.roster.Apply(cmd)
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return false
	}
	if !res.Applied {
		fmt.Fprintln(c.out, "Nothing changed.")
	}
	c.renderState(view.BuildStateView(c.roster))
	return false
}

// ParseCommand turns a tokenized command line into an engine command. Card
// references are resolved against s: "b1".."b8" name base slots, "a1",
// "a2", ... name additional cards in order, anything else is taken as a
// card id.
func ParseCommand(fields []string, s game.DeckState) (game.Command, error) {
	if len(fields) == 0 {
		return game.Command{}, errors.New("empty command")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]

	need := func(n int, usage string) error {
		if len(args) < n {
			return fmt.Errorf("usage: %s", usage)
		}
		return nil
	}
	atoi := func(arg string) (int, error) {
		var n int
		if _, err := fmt.Sscanf(arg, "%d", &n); err != nil {
			return 0, fmt.Errorf("%q is not a number", arg)
		}
		return n, nil
	}

	switch verb {
	case "select":
		if err := need(1, "select <character>"); err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: game.ActionSelectCharacter, Character: strings.ToLower(args[0])}, nil

	case "tier":
		if err := need(1, "tier <1-15>"); err != nil {
			return game.Command{}, err
		}
		n, err := atoi(args[0])
		if err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: game.ActionSetTier, Tier: n}, nil

	case "team":
		if err := need(1, "team <1-3>"); err != nil {
			return game.Command{}, err
		}
		n, err := atoi(args[0])
		if err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: game.ActionSwitchTeamMember, TeamMember: n}, nil

	case "add":
		if err := need(1, "add <base|neutral|monster|forbidden>"); err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: game.ActionAddCard, CardType: args[0]}, nil

	case "epiphany", "ep":
		if err := need(2, "epiphany <card> <regular|divine>"); err != nil {
			return game.Command{}, err
		}
		id, err := resolveCard(args[0], s)
		if err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: game.ActionAddEpiphany, CardID: id, Epiphany: args[1]}, nil

	case "unlock", "remove", "rm", "convert", "dup", "duplicate", "delete", "del":
		if err := need(1, verb+" <card>"); err != nil {
			return game.Command{}, err
		}
		id, err := resolveCard(args[0], s)
		if err != nil {
			return game.Command{}, err
		}
		return game.Command{Action: cardVerbs[verb], CardID: id}, nil

	case "reset":
		return game.Command{Action: game.ActionResetRun}, nil

	case "undo", "u":
		return game.Command{Action: game.ActionUndo}, nil
	}
	return game.Command{}, fmt.Errorf("unknown command %q (try \"help\")", verb)
}

var cardVerbs = map[string]string{
	"unlock":    game.ActionUnlock,
	"remove":    game.ActionRemove,
	"rm":        game.ActionRemove,
	"convert":   game.ActionConvert,
	"dup":       game.ActionDuplicate,
	"duplicate": game.ActionDuplicate,
	"delete":    game.ActionDelete,
	"del":       game.ActionDelete,
}

func resolveCard(ref string, s game.DeckState) (string, error) {
	lower := strings.ToLower(ref)
	var n int
	if len(lower) > 1 && (lower[0] == 'b' || lower[0] == 'a') {
		if _, err := fmt.Sscanf(lower[1:], "%d", &n); err == nil {
			if lower[0] == 'b' {
				if n < 1 || n > game.BaseCardCount {
					return "", fmt.Errorf("base slot %d out of range (1-%d)", n, game.BaseCardCount)
				}
				return s.BaseCards[n-1].ID, nil
			}
			if n < 1 || n > len(s.AdditionalCards) {
				return "", fmt.Errorf("additional card %d out of range (have %d)", n, len(s.AdditionalCards))
			}
			return s.AdditionalCards[n-1].ID, nil
		}
	}
	return ref, nil
}

func (c *Console) lookup(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.out, "usage: lookup <type> [none|regular|divine] [duplicate position]")
		return
	}
	t, err := game.ParseCardType(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}
	e := game.EpiphanyNone
	if len(args) > 1 {
		if e, err = game.ParseEpiphanyType(args[1]); err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
			return
		}
	}
	pos := 0
	if len(args) > 2 {
		if _, err := fmt.Sscanf(args[2], "%d", &pos); err != nil {
			fmt.Fprintf(c.out, "Error: %q is not a number\n", args[2])
			return
		}
	}
	res := view.BuildLookupView(game.QuickLookup(t, e, pos))
	fmt.Fprintf(c.out, "Card value: %d  Duplication: %d  Total: %d pts\n", res.CardValue, res.DuplicationCost, res.Total)
}
