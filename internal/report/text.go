package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lox/easybj/internal/easybj"
	"github.com/lox/easybj/internal/table"
)

const percentUnit = "%"

// Text renders results in fixed-width columns. Float columns are
// Precision+3 characters wide, action columns two.
type Text struct {
	Precision int
}

// Render writes each named result in turn.
func (t *Text) Render(w io.Writer, res *easybj.Result, names []string) error {
	for _, name := range names {
		if err := t.render(w, res, name); err != nil {
			return err
		}
	}
	return nil
}

func (t *Text) render(w io.Writer, res *easybj.Result, name string) error {
	switch name {
	case NameAdvantage:
		_, err := fmt.Fprintf(w, "Player Advantage: %2.4f%%\n", res.Advantage*100)
		return err
	case NameDealer:
		return t.writeDealer(w, res.Dealer)
	case NameStrategy:
		return writeMatrix(w, name, res.Strategy, 2, func(a easybj.Action) (string, error) {
			return center(a.String(), 2), nil
		})
	case NameResplit:
		for i, m := range res.Resplit {
			if err := t.writeFloats(w, fmt.Sprintf("%s%d", name, i), m); err != nil {
				return err
			}
		}
		return nil
	}

	m := FloatTable(res, name)
	if m == nil {
		return &NotFoundError{Names: []string{name}}
	}
	return t.writeFloats(w, name, m)
}

func (t *Text) writeFloats(w io.Writer, name string, m *table.Matrix[float64]) error {
	prec := t.Precision
	percent := m.Unit() == percentUnit
	return writeMatrix(w, name, m, prec+3, func(v float64) (string, error) {
		switch {
		case percent && v < 0:
			return "", fmt.Errorf("%s: negative probability %g", name, v)
		case percent:
			return fmt.Sprintf("%.*f%%", prec, v*100), nil
		case v < 0:
			return fmt.Sprintf("%.*f", prec, v), nil
		default:
			return fmt.Sprintf(" %.*f", prec, v), nil
		}
	})
}

func (t *Text) writeDealer(w io.Writer, dealer easybj.DealerTable) error {
	for _, c := range easybj.DealerCodes {
		d, ok := dealer[c]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "Dealer %s\n", c.Label()); err != nil {
			return err
		}
		entries := dealerEntries(d)
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = fmt.Sprintf("%2s: %.6f", e.key, e.p)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

type dealerEntry struct {
	key string
	p   float64
}

// dealerEntries lists outcomes by label, with bust labelled 0 so it sorts
// first.
func dealerEntries(d easybj.Distribution) []dealerEntry {
	entries := make([]dealerEntry, 0, easybj.NumOutcomes)
	for i, p := range d {
		o := easybj.Outcome(i)
		key := o.String()
		if o == easybj.OutcomeBust {
			key = "0"
		}
		entries = append(entries, dealerEntry{key: key, p: p})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries
}

// writeMatrix prints a header of centred column labels followed by one
// line per row. Unset cells print as dashes.
func writeMatrix[T any](w io.Writer, name string, m *table.Matrix[T], width int, format func(T) (string, error)) error {
	rows := m.Rows()
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, len(r))
	}

	var b strings.Builder
	b.WriteString(name + ":\n")

	header := []string{strings.Repeat(" ", labelWidth)}
	for _, c := range m.Cols() {
		header = append(header, center(truncate(c, width), width))
	}
	b.WriteString(strings.Join(header, " ") + "\n")

	for _, r := range rows {
		line := []string{r + strings.Repeat(" ", labelWidth-len(r))}
		for _, c := range m.Cols() {
			v, ok := m.At(r, c)
			if !ok {
				line = append(line, strings.Repeat("-", width))
				continue
			}
			text, err := format(v)
			if err != nil {
				return err
			}
			line = append(line, text)
		}
		b.WriteString(strings.Join(line, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// center pads s to width, placing the odd space on the right unless both
// the padding and the width are odd.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// FloatTable returns the EV or probability table for a name, or nil if the
// name does not refer to one.
func FloatTable(res *easybj.Result, name string) *table.Matrix[float64] {
	switch name {
	case NameInitial:
		return res.Initial
	case NameStand:
		return res.Stand
	case NameHit:
		return res.Hit
	case NameDouble:
		return res.Double
	case NameSplit:
		return res.Split
	case NameOptimal:
		return res.Optimal
	}
	return nil
}
