// Package shell is the line oriented front-end: it reads commands, validates
// user input, drives the engine and prints the results.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/xvzc/treeheap/internal/datastruct/heap"
	"github.com/xvzc/treeheap/internal/datastruct/tree"
	"github.com/xvzc/treeheap/internal/engine"
	"github.com/xvzc/treeheap/internal/render"
	"github.com/xvzc/treeheap/internal/session"
)

// Engine is the part of engine.Engine the shell depends on.
type Engine interface {
	InsertTree(ctx context.Context, v int32) bool
	InsertHeap(ctx context.Context, v int32)
	PopHeap(ctx context.Context) (int32, error)
	Report(ctx context.Context) engine.Report
	Traverse(ctx context.Context, order tree.Order) []int32
	Stats() engine.Stats
}

var _ Engine = (*engine.Engine)(nil)

const helpText = `Commands:
  tree <int>   (t, add-tree)   add a value to the binary tree
  heap <int>   (h, add-heap)   add a value to the min-heap
  show [order] (s, orders)     print the tree traversals and the sorted heap;
                               with in-order, pre-order or post-order only
                               that traversal
  pop          (p)             remove the smallest value from the min-heap
  stats                        print sizes and tree height
  help         (?)             print this message
  quit         (exit, q)       leave the shell
`

type Options struct {
	Format render.Format
	// Prompt is printed before reading each line when Interactive is set.
	Prompt      string
	Interactive bool
}

type Shell struct {
	engine Engine
	out    io.Writer
	opts   Options
	logger zerolog.Logger
}

func New(e Engine, out io.Writer, opts Options, logger zerolog.Logger) *Shell {
	return &Shell{
		engine: e,
		out:    out,
		opts:   opts,
		logger: logger,
	}
}

// maxLineSize bounds a single input line. Longer lines are rejected
// without ending the shell.
const maxLineSize = 64 * 1024

type inputLine struct {
	text string
	err  error
}

// Run executes commands read from in until EOF, a quit command or the
// cancellation of ctx. Bad input is reported and skipped; only I/O errors
// end the loop with an error.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan inputLine)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		readErr <- readLines(ctx, in, lines)
	}()

	for {
		if err := s.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("shell stopped; context done")
			return nil

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				return nil
			}

			if line.err != nil {
				if err := s.reject(ctx, line.err); err != nil {
					return err
				}
				continue
			}

			quit, err := s.Execute(ctx, line.text)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines sends each line of in to lines until EOF or the cancellation of
// ctx. A line longer than maxLineSize is drained and sent as ErrLineTooLong.
func readLines(ctx context.Context, in io.Reader, lines chan<- inputLine) error {
	r := bufio.NewReaderSize(in, maxLineSize)

	for {
		b, isPrefix, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line := inputLine{text: string(b)}
		if isPrefix {
			line = inputLine{
				err: fmt.Errorf("%w: over %d bytes", ErrLineTooLong, maxLineSize),
			}
			for isPrefix && err == nil {
				_, isPrefix, err = r.ReadLine()
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return err
			}
		}

		select {
		case lines <- line:
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Shell) prompt() error {
	if !s.opts.Interactive || s.opts.Prompt == "" {
		return nil
	}
	_, err := io.WriteString(s.out, s.opts.Prompt)
	return err
}

// Execute runs a single line. It reports whether the shell should stop.
// Rejected input is printed to the output and is not an error; the returned
// error is reserved for failures writing the output.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return false, s.reject(ctx, err)
	}

	if cmd.Kind == KindNone {
		return false, nil
	}

	ctx = session.WithCommand(session.WithNewTraceID(ctx), cmd.Kind.String())

	switch cmd.Kind {
	case KindTree:
		// Duplicates are dropped by the tree; the engine logs them.
		s.engine.InsertTree(ctx, cmd.Value)
		return false, s.printf("Added %d to Binary Tree\n", cmd.Value)

	case KindHeap:
		s.engine.InsertHeap(ctx, cmd.Value)
		return false, s.printf("Added %d to Min-Heap\n", cmd.Value)

	case KindShow:
		return false, s.show(ctx, cmd.Order)

	case KindPop:
		v, err := s.engine.PopHeap(ctx)
		if errors.Is(err, heap.ErrEmptyCollection) {
			return false, s.printf("Min-Heap is empty.\n")
		}
		if err != nil {
			return false, err
		}
		return false, s.printf("Removed %d from Min-Heap\n", v)

	case KindStats:
		st := s.engine.Stats()
		return false, s.printf(
			"Binary Tree: %d values, height %d\nMin-Heap: %d values\n",
			st.TreeSize, st.TreeHeight, st.HeapSize,
		)

	case KindHelp:
		return false, s.printf("%s", helpText)

	case KindQuit:
		s.logger.Debug().Ctx(ctx).Msg("quit requested")
		return true, nil
	}

	return false, fmt.Errorf("unhandled command %s", cmd.Kind)
}

// reject prints the user facing message for bad input and logs it.
func (s *Shell) reject(ctx context.Context, err error) error {
	s.logger.Warn().Ctx(session.WithNewTraceID(ctx)).Err(err).Msg("rejected input")
	return s.printf("%s\n", userMessage(err))
}

var orderLabels = map[tree.Order]string{
	tree.OrderIn:   "Binary Tree (In-Order Traversal)",
	tree.OrderPre:  "Binary Tree (Pre-Order Traversal)",
	tree.OrderPost: "Binary Tree (Post-Order Traversal)",
}

// show prints every view, or only the given traversal when order is set.
func (s *Shell) show(ctx context.Context, order *tree.Order) error {
	var rows []render.Row
	if order != nil {
		rows = []render.Row{
			{Label: orderLabels[*order], Values: s.engine.Traverse(ctx, *order)},
		}
	} else {
		r := s.engine.Report(ctx)
		rows = []render.Row{
			{Label: orderLabels[tree.OrderIn], Values: r.InOrder},
			{Label: orderLabels[tree.OrderPre], Values: r.PreOrder},
			{Label: orderLabels[tree.OrderPost], Values: r.PostOrder},
			{Label: "Min-Heap (Sorted Order)", Values: r.Heap},
		}
	}

	if err := s.printf("\n"); err != nil {
		return err
	}

	return render.Rows(s.out, s.opts.Format, rows)
}

func (s *Shell) printf(format string, a ...any) error {
	_, err := fmt.Fprintf(s.out, format, a...)
	return err
}

// userMessage turns a parse error into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidValue), errors.Is(err, ErrValueOutOfRange):
		return "Please enter a valid integer."
	case errors.Is(err, ErrUnknownCommand):
		return fmt.Sprintf("%s. Type 'help' for commands.", err)
	default:
		return fmt.Sprintf("%s.", err)
	}
}
