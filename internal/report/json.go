package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/lox/easybj/internal/easybj"
	"github.com/lox/easybj/internal/fileutil"
)

// JSON renders the named results as one object keyed by name, in the order
// requested.
type JSON struct {
	Indent string
}

// Render writes the selected results as JSON.
func (j *JSON) Render(w io.Writer, res *easybj.Result, names []string) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		v, err := Value(res, name)
		if err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(name)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", j.Indent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

// Value returns the result stored under name.
func Value(res *easybj.Result, name string) (any, error) {
	switch name {
	case NameDealer:
		return res.Dealer, nil
	case NameStrategy:
		return res.Strategy, nil
	case NameAdvantage:
		return res.Advantage, nil
	case NameResplit:
		return res.Resplit, nil
	}
	if m := FloatTable(res, name); m != nil {
		return m, nil
	}
	return nil, &NotFoundError{Names: []string{name}}
}

// Export writes every result to path as indented JSON. The file is replaced
// atomically so a failed export never leaves a truncated file behind.
func Export(path string, res *easybj.Result) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return (&JSON{Indent: "  "}).Render(w, res, Names)
	})
}
