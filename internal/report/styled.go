package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/easybj/internal/easybj"
	"github.com/lox/easybj/internal/table"
)

// Styled renders results as bordered terminal tables, colouring actions
// and the sign of each EV.
type Styled struct {
	Precision int

	renderer *lipgloss.Renderer
	noColor  bool
	styles   styles
}

// StyledOption configures a Styled renderer.
type StyledOption func(*Styled)

// WithRenderer sets the lipgloss renderer used to detect colour support.
func WithRenderer(r *lipgloss.Renderer) StyledOption {
	return func(s *Styled) { s.renderer = r }
}

// WithoutColor strips colour while keeping the table layout.
func WithoutColor() StyledOption {
	return func(s *Styled) { s.noColor = true }
}

// NewStyled creates a styled renderer writing for stdout by default.
func NewStyled(precision int, opts ...StyledOption) *Styled {
	s := &Styled{
		Precision: precision,
		renderer:  lipgloss.NewRenderer(os.Stdout),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.noColor {
		s.renderer.SetColorProfile(termenv.Ascii)
	}
	s.styles = newStyles(s.renderer)
	return s
}

type styles struct {
	title    lipgloss.Style
	border   lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	cell     lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
	unset    lipgloss.Style
	actions  map[easybj.Action]lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	cell := r.NewStyle().Padding(0, 1)
	action := func(color string) lipgloss.Style {
		return cell.Foreground(lipgloss.Color(color)).Bold(true)
	}
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		border:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
		header:   cell.Foreground(lipgloss.Color("#FFD700")).Bold(true),
		label:    cell.Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		cell:     cell,
		positive: cell.Foreground(lipgloss.Color("#96CEB4")),
		negative: cell.Foreground(lipgloss.Color("#FF6B6B")),
		unset:    cell.Foreground(lipgloss.Color("#626262")),
		actions: map[easybj.Action]lipgloss.Style{
			easybj.ActionStand:          action("#FFEAA7"),
			easybj.ActionHit:            action("#FAFAFA"),
			easybj.ActionDoubleHit:      action("#04B575"),
			easybj.ActionDoubleStand:    action("#04B575"),
			easybj.ActionSplit:          action("#7D56F4"),
			easybj.ActionSurrenderHit:   action("#FF6B6B"),
			easybj.ActionSurrenderStand: action("#FF6B6B"),
		},
	}
}

// Render writes each named result as a titled table.
func (s *Styled) Render(w io.Writer, res *easybj.Result, names []string) error {
	for _, name := range names {
		out, err := s.render(res, name)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (s *Styled) render(res *easybj.Result, name string) (string, error) {
	switch name {
	case NameAdvantage:
		return s.styles.title.Render("Player Advantage") + " " +
			s.signed(res.Advantage).Render(fmt.Sprintf("%.4f%%", res.Advantage*100)), nil
	case NameDealer:
		return s.titled(name, s.dealer(res.Dealer)), nil
	case NameStrategy:
		return s.titled(name, styledMatrix(s, res.Strategy, func(a easybj.Action) (string, lipgloss.Style) {
			return a.String(), s.styles.actions[a]
		})), nil
	case NameResplit:
		parts := make([]string, len(res.Resplit))
		for i, m := range res.Resplit {
			parts[i] = s.titled(fmt.Sprintf("%s%d", name, i), s.floats(m))
		}
		return strings.Join(parts, "\n"), nil
	}

	m := FloatTable(res, name)
	if m == nil {
		return "", &NotFoundError{Names: []string{name}}
	}
	return s.titled(name, s.floats(m)), nil
}

func (s *Styled) titled(name, body string) string {
	return s.styles.title.Render(name) + "\n" + body
}

func (s *Styled) signed(v float64) lipgloss.Style {
	if v < 0 {
		return s.styles.negative
	}
	return s.styles.positive
}

func (s *Styled) floats(m *table.Matrix[float64]) string {
	percent := m.Unit() == percentUnit
	return styledMatrix(s, m, func(v float64) (string, lipgloss.Style) {
		if percent {
			return fmt.Sprintf("%.*f%%", s.Precision, v*100), s.styles.cell
		}
		return fmt.Sprintf("%.*f", s.Precision, v), s.signed(v)
	})
}

// styledMatrix lays out a matrix with its row labels as the first column.
// Cell styles are captured per position because StyleFunc only receives
// indices.
func styledMatrix[T any](s *Styled, m *table.Matrix[T], cell func(T) (string, lipgloss.Style)) string {
	cols := m.Cols()
	headers := append([]string{""}, cols...)

	rows := m.Rows()
	data := make([][]string, len(rows))
	cellStyles := make([][]lipgloss.Style, len(rows))
	for i, r := range rows {
		data[i] = make([]string, 0, len(cols)+1)
		cellStyles[i] = make([]lipgloss.Style, 0, len(cols)+1)
		data[i] = append(data[i], r)
		cellStyles[i] = append(cellStyles[i], s.styles.label)
		for _, c := range cols {
			v, ok := m.At(r, c)
			if !ok {
				data[i] = append(data[i], "-")
				cellStyles[i] = append(cellStyles[i], s.styles.unset)
				continue
			}
			text, style := cell(v)
			data[i] = append(data[i], text)
			cellStyles[i] = append(cellStyles[i], style)
		}
	}

	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.border).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return s.styles.header
			}
			if row < 0 || row >= len(cellStyles) || col >= len(cellStyles[row]) {
				return s.styles.cell
			}
			return cellStyles[row][col]
		}).
		String()
}

func (s *Styled) dealer(dealer easybj.DealerTable) string {
	headers := []string{"dealer"}
	for o := 0; o < easybj.NumOutcomes; o++ {
		headers = append(headers, easybj.Outcome(o).String())
	}

	var rows [][]string
	for _, c := range easybj.DealerCodes {
		d, ok := dealer[c]
		if !ok {
			continue
		}
		row := []string{c.Label()}
		for _, p := range d {
			row = append(row, fmt.Sprintf("%.6f", p))
		}
		rows = append(rows, row)
	}

	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.styles.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == lgtable.HeaderRow:
				return s.styles.header
			case col == 0:
				return s.styles.label
			default:
				return s.styles.cell
			}
		}).
		String()
}
