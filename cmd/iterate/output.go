package main

import (
	"encoding/json"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/listiterate"
	"github.com/hasbyte1/go-iterate/record"
)

// result is the tabular output of one command.
type result struct {
	header []string
	rows   [][]string
}

func (r *result) append(row ...string) {
	r.rows = append(r.rows, row)
}

// objects returns each row keyed by its header.
func (r *result) objects() []map[string]string {
	out := make([]map[string]string, 0, len(r.rows))
	for _, row := range r.rows {
		obj := make(map[string]string, len(r.header))
		listiterate.ForEachWithIndex(collections.From(r.header), func(name string, i int) {
			if i < len(row) {
				obj[name] = row[i]
			}
		})
		out = append(out, obj)
	}
	return out
}

func render(w io.Writer, format string, r *result) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r.objects()), "encode json output")
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(r.objects()); err != nil {
			return errors.Wrap(err, "encode yaml output")
		}
		return errors.Wrap(enc.Close(), "flush yaml output")
	default:
		table := tablewriter.NewWriter(w)
		table.SetHeader(r.header)
		table.AppendBulk(r.rows)
		table.Render()
		return nil
	}
}

// recordsResult lays records out with one column per field path, in the
// order paths are first seen.
func recordsResult(records collections.RandomAccess[record.Record]) *result {
	paths := listiterate.Distinct(listiterate.FlatCollect(records, func(r record.Record) collections.Iterable[string] {
		return collections.From(r.Paths())
	}))
	out := &result{header: paths.All()}
	listiterate.ForEach(records, func(r record.Record) {
		out.append(listiterate.Collect(paths, r.String).All()...)
	})
	return out
}
