package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-iterate/collections"
	"github.com/hasbyte1/go-iterate/lazy"
	"github.com/hasbyte1/go-iterate/listiterate"
	"github.com/hasbyte1/go-iterate/record"
)

const (
	fieldF  = "field"
	byF     = "by"
	equalsF = "equals"
	fieldsF = "fields"
	countF  = "count"
	dropF   = "drop"
	exactF  = "exact"

	fieldUsage  = "Dot path of the field to read, e.g. owner.address.city."
	byUsage     = "Dot path of the field to group by."
	equalsUsage = "Value the field must equal (compared as text)."
	fieldsUsage = "Comma-separated dot paths to keep in the printed records."
	countUsage  = "Number of records."
	dropUsage   = "Skip the first --count records instead of keeping them."
	exactUsage  = "Sum with arbitrary-precision decimals instead of float64."
)

var errFieldRequired = errors.New("--field is required")

// runFunc executes one command over the loaded records.
type runFunc func(cfg *Config, records *collections.Collection[record.Record], log *zap.SugaredLogger) (*result, error)

func newRunCmd(use, short string, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			log, err := NewZapLogger(cfg.logLevel())
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			records, err := record.Load(cfg.Dataset)
			if err != nil {
				return err
			}
			log.Debugw("Loaded dataset", "path", cfg.Dataset, "records", records.Size())

			out, err := run(cfg, records, log)
			if err != nil {
				log.Debugw("Command failed", "command", cmd.Name(), "err", err)
				return err
			}
			return render(cmd.OutOrStdout(), cfg.Output, out)
		},
	}
}

func selectCmd() *cobra.Command {
	cmd := newRunCmd("select", "Print the records whose field equals a value.", runSelect)
	cmd.Flags().String(fieldF, "", fieldUsage)
	cmd.Flags().String(equalsF, "", equalsUsage)
	cmd.Flags().StringSlice(fieldsF, nil, fieldsUsage)
	return cmd
}

func runSelect(cfg *Config, records *collections.Collection[record.Record], _ *zap.SugaredLogger) (*result, error) {
	if cfg.Field == "" {
		return nil, errFieldRequired
	}
	matches := listiterate.SelectWith(records, func(r record.Record, want string) bool {
		return r.String(cfg.Field) == want
	}, cfg.Equals)
	if len(cfg.Fields) > 0 {
		matches = listiterate.CollectWith(matches, func(r record.Record, paths []string) record.Record {
			return r.Only(paths...)
		}, cfg.Fields)
	}
	return recordsResult(matches), nil
}

func sumCmd() *cobra.Command {
	cmd := newRunCmd("sum", "Sum a numeric field, optionally per group.", runSum)
	cmd.Flags().String(fieldF, "", fieldUsage)
	cmd.Flags().String(byF, "", byUsage)
	cmd.Flags().Bool(exactF, false, exactUsage)
	return cmd
}

func runSum(cfg *Config, records *collections.Collection[record.Record], log *zap.SugaredLogger) (*result, error) {
	if cfg.Field == "" {
		return nil, errFieldRequired
	}
	if bad, found := listiterate.Detect(records, func(r record.Record) bool {
		_, err := r.Float(cfg.Field)
		return err != nil
	}); found {
		_, err := bad.Float(cfg.Field)
		return nil, err
	}

	if cfg.Exact {
		return sumExact(cfg, records)
	}

	value := func(r record.Record) float64 { return r.FloatOr(cfg.Field, 0) }
	if cfg.By == "" {
		total := listiterate.SumOfDouble(records, value)
		log.Debugw("Summed field", "field", cfg.Field, "total", total)
		out := &result{header: []string{cfg.Field}}
		out.append(formatFloat(total))
		return out, nil
	}

	sums := listiterate.SumByDouble(records, groupKey(cfg.By), value)
	out := &result{header: []string{cfg.By, cfg.Field}}
	sums.Each(func(key string, total float64) {
		out.append(key, formatFloat(total))
	})
	return out, nil
}

func sumExact(cfg *Config, records *collections.Collection[record.Record]) (*result, error) {
	amount := func(r record.Record) decimal.Decimal {
		d, err := decimal.NewFromString(r.String(cfg.Field))
		if err != nil {
			return decimal.NewFromFloat(r.FloatOr(cfg.Field, 0))
		}
		return d
	}
	if cfg.By == "" {
		amounts := lazy.Collect[record.Record](records, amount)
		out := &result{header: []string{cfg.Field}}
		out.append(lazy.InjectInto(decimal.Zero, amounts, decimal.Decimal.Add).String())
		return out, nil
	}

	sums := listiterate.SumByBigDecimal(records, groupKey(cfg.By), amount)
	out := &result{header: []string{cfg.By, cfg.Field}}
	sums.Each(func(key string, total decimal.Decimal) {
		out.append(key, total.String())
	})
	return out, nil
}

func groupCmd() *cobra.Command {
	cmd := newRunCmd("group", "Count the records per value of a field.", runGroup)
	cmd.Flags().String(byF, "", byUsage)
	return cmd
}

func runGroup(cfg *Config, records *collections.Collection[record.Record], _ *zap.SugaredLogger) (*result, error) {
	if cfg.By == "" {
		return nil, errors.New("--by is required")
	}
	groups := listiterate.GroupBy(records, groupKey(cfg.By))
	out := &result{header: []string{cfg.By, "count"}}
	groups.Each(func(key string, members *collections.Collection[record.Record]) {
		out.append(key, strconv.Itoa(members.Size()))
	})
	return out, nil
}

func distinctCmd() *cobra.Command {
	cmd := newRunCmd("distinct", "List the distinct values of a field in first-seen order.", runDistinct)
	cmd.Flags().String(fieldF, "", fieldUsage)
	return cmd
}

func runDistinct(cfg *Config, records *collections.Collection[record.Record], _ *zap.SugaredLogger) (*result, error) {
	if cfg.Field == "" {
		return nil, errFieldRequired
	}
	values, _ := lazy.Collect[record.Record](records, groupKey(cfg.Field)).AsRandomAccess()
	out := &result{header: []string{cfg.Field}}
	listiterate.ForEach(listiterate.Distinct(values), func(v string) { out.append(v) })
	return out, nil
}

func minMaxCmd() *cobra.Command {
	cmd := newRunCmd("minmax", "Show the records holding the smallest and largest value of a field.", runMinMax)
	cmd.Flags().String(fieldF, "", fieldUsage)
	return cmd
}

func runMinMax(cfg *Config, records *collections.Collection[record.Record], _ *zap.SugaredLogger) (*result, error) {
	if cfg.Field == "" {
		return nil, errFieldRequired
	}
	numeric := listiterate.Select(records, func(r record.Record) bool {
		_, err := r.Float(cfg.Field)
		return err == nil
	})
	value := func(r record.Record) float64 { return r.FloatOr(cfg.Field, 0) }

	lowest, err := listiterate.MinBy(numeric, value)
	if err != nil {
		return nil, errors.Wrapf(err, "no numeric %q values", cfg.Field)
	}
	highest, err := listiterate.MaxBy(numeric, value)
	if err != nil {
		return nil, err
	}

	out := recordsResult(collections.New(lowest, highest))
	out.header = append([]string{"extreme"}, out.header...)
	out.rows[0] = append([]string{"min"}, out.rows[0]...)
	out.rows[1] = append([]string{"max"}, out.rows[1]...)
	return out, nil
}

func takeCmd() *cobra.Command {
	cmd := newRunCmd("take", "Print the first --count records, or everything after them with --drop.", runTake)
	cmd.Flags().Int(countF, 10, countUsage)
	cmd.Flags().Bool(dropF, false, dropUsage)
	return cmd
}

func runTake(cfg *Config, records *collections.Collection[record.Record], _ *zap.SugaredLogger) (*result, error) {
	slice := listiterate.Take[record.Record]
	if cfg.Drop {
		slice = listiterate.Drop[record.Record]
	}
	kept, err := slice(records, cfg.Count)
	if err != nil {
		return nil, err
	}
	return recordsResult(kept), nil
}

func groupKey(path string) func(record.Record) string {
	return func(r record.Record) string { return r.String(path) }
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
