package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xvzc/treeheap/internal/datastruct/tree"
	"github.com/xvzc/treeheap/internal/ptr"
	"github.com/xvzc/treeheap/internal/value"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("missing argument")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrLineTooLong        = errors.New("input line too long")

	ErrInvalidValue    = value.ErrInvalid
	ErrValueOutOfRange = value.ErrOutOfRange
	ErrUnknownOrder    = tree.ErrUnknownOrder
)

type Kind int

const (
	KindNone Kind = iota
	KindTree
	KindHeap
	KindShow
	KindPop
	KindStats
	KindHelp
	KindQuit
)

var kindNames = []string{"none", "tree", "heap", "show", "pop", "stats", "help", "quit"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// takesValue reports whether the command needs an integer argument.
func (k Kind) takesValue() bool {
	return k == KindTree || k == KindHeap
}

var aliases = map[string]Kind{
	"tree":     KindTree,
	"t":        KindTree,
	"add-tree": KindTree,
	"heap":     KindHeap,
	"h":        KindHeap,
	"add-heap": KindHeap,
	"show":     KindShow,
	"s":        KindShow,
	"orders":   KindShow,
	"pop":      KindPop,
	"p":        KindPop,
	"stats":    KindStats,
	"help":     KindHelp,
	"?":        KindHelp,
	"quit":     KindQuit,
	"exit":     KindQuit,
	"q":        KindQuit,
}

// Command is one parsed input line. Value is only meaningful for KindTree
// and KindHeap. Order is set when show was asked for a single traversal.
type Command struct {
	Kind  Kind
	Value int32
	Order *tree.Order
}

// ParseCommand parses a single input line. Blank lines and lines starting
// with '#' yield KindNone and no error.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Command{Kind: KindNone}, nil
	}

	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	kind, ok := aliases[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}

	if kind == KindShow {
		return parseShow(args)
	}

	if !kind.takesValue() {
		if len(args) > 0 {
			return Command{}, fmt.Errorf("%w: %s takes no value", ErrUnexpectedArgument, kind)
		}
		return Command{Kind: kind}, nil
	}

	switch {
	case len(args) == 0:
		return Command{}, fmt.Errorf("%w: %s needs a value", ErrMissingArgument, kind)
	case len(args) > 1:
		return Command{}, fmt.Errorf("%w: %s takes a single value", ErrUnexpectedArgument, kind)
	}

	v, err := value.Parse(args[0])
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: kind, Value: v}, nil
}

func parseShow(args []string) (Command, error) {
	switch len(args) {
	case 0:
		return Command{Kind: KindShow}, nil
	case 1:
		order, err := tree.ParseOrder(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: KindShow, Order: ptr.FromValue(order)}, nil
	default:
		return Command{}, fmt.Errorf("%w: show takes at most one order", ErrUnexpectedArgument)
	}
}
