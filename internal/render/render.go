// Package render turns traversal results into text for the shell.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

type Format int

var availableFormats = []string{"list", "plain", "table"}

const (
	// FormatList prints "[1, 3, 4]".
	FormatList Format = iota
	// FormatPlain prints "1 3 4".
	FormatPlain
	// FormatTable prints one table row per view.
	FormatTable
)

func (f Format) String() string {
	if f < 0 || int(f) >= len(availableFormats) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return availableFormats[f]
}

func ParseFormat(s string) (Format, error) {
	for i, name := range availableFormats {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q, expected one of %v", s, availableFormats)
}

// MustParseFormat is ParseFormat for values that were already validated.
func MustParseFormat(s string) Format {
	f, err := ParseFormat(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Row is a single labelled sequence, e.g. one traversal order.
type Row struct {
	Label  string
	Values []int32
}

// Sequence renders values according to f. Tables render their cells in the
// plain form.
func Sequence(f Format, values []int32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}

	if f == FormatList {
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return strings.Join(parts, " ")
}

// Rows writes every row to w.
func Rows(w io.Writer, f Format, rows []Row) error {
	if f == FormatTable {
		data := pterm.TableData{{"view", "values"}}
		for _, r := range rows {
			data = append(data, []string{r.Label, Sequence(f, r.Values)})
		}

		s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return fmt.Errorf("error rendering table: %w", err)
		}

		_, err = fmt.Fprintln(w, s)
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s: %s\n", r.Label, Sequence(f, r.Values)); err != nil {
			return err
		}
	}

	return nil
}

// Banner writes the start-up banner followed by a short summary of the
// effective settings.
func Banner(w io.Writer, items map[string]string, keys []string) error {
	tree := putils.LettersFromStringWithStyle("Tree", pterm.NewStyle(pterm.FgCyan))
	heap := putils.LettersFromStringWithStyle("Heap", pterm.NewStyle(pterm.FgLightMagenta))

	big, err := pterm.DefaultBigText.WithLetters(tree, heap).Srender()
	if err != nil {
		return fmt.Errorf("error rendering banner: %w", err)
	}

	bullets := make([]pterm.BulletListItem, 0, len(keys))
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}
	for _, k := range keys {
		bullets = append(bullets, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("%-*s : %s", width, k, items[k]),
		})
	}

	list, err := pterm.DefaultBulletList.WithItems(bullets).Srender()
	if err != nil {
		return fmt.Errorf("error rendering banner: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n%s\nType 'help' for commands, 'quit' to exit\n\n", big, list)
	return err
}
