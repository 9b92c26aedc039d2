// Package report renders calculated results as plain text, styled terminal
// tables or JSON.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/easybj/internal/config"
	"github.com/lox/easybj/internal/easybj"
)

// Result names in output order.
const (
	NameInitial   = "initial"
	NameDealer    = "dealer"
	NameStand     = "stand"
	NameHit       = "hit"
	NameDouble    = "double"
	NameSplit     = "split"
	NameOptimal   = "optimal"
	NameStrategy  = "strategy"
	NameAdvantage = "advantage"
	NameResplit   = "resplit"
)

// Names lists every selectable result.
var Names = []string{
	NameInitial, NameDealer, NameStand, NameHit, NameDouble,
	NameSplit, NameOptimal, NameStrategy, NameAdvantage, NameResplit,
}

// NotFoundError lists requested names that do not match a result.
type NotFoundError struct {
	Names []string
}

func (e *NotFoundError) Error() string {
	return "result(s) not found: " + strings.Join(e.Names, " ")
}

// Select resolves requested names in the order given. No names selects
// everything. Unknown names are collected into a *NotFoundError returned
// alongside the names that did resolve.
func Select(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return append([]string(nil), Names...), nil
	}

	var found, missing []string
	for _, name := range requested {
		if isName(name) {
			found = append(found, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return found, &NotFoundError{Names: missing}
	}
	return found, nil
}

func isName(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Renderer writes the named results.
type Renderer interface {
	Render(w io.Writer, res *easybj.Result, names []string) error
}

// New returns the renderer for a configured output format.
func New(format string, precision int, opts ...StyledOption) (Renderer, error) {
	switch format {
	case config.FormatText:
		return &Text{Precision: precision}, nil
	case config.FormatStyled:
		return NewStyled(precision, opts...), nil
	case config.FormatJSON:
		return &JSON{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Section is one rendered result.
type Section struct {
	Name string
	Body string
}

// Sections renders each name separately so results can be paged.
func Sections(r Renderer, res *easybj.Result, names []string) ([]Section, error) {
	sections := make([]Section, 0, len(names))
	for _, name := range names {
		var b strings.Builder
		if err := r.Render(&b, res, []string{name}); err != nil {
			return nil, err
		}
		sections = append(sections, Section{Name: name, Body: strings.TrimRight(b.String(), "\n")})
	}
	return sections, nil
}
