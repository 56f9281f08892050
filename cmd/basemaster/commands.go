package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/basemaster/internal/bitgrid"
	"github.com/muurk/basemaster/internal/converter"
	"github.com/muurk/basemaster/internal/logging"
	"github.com/muurk/basemaster/internal/radix"
	"github.com/muurk/basemaster/internal/reftable"
	"github.com/muurk/basemaster/internal/ui"
)

// Command flags
var (
	fromRadix string
	bitsValue string
	bitNumber bool
)

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(bitsCmd)
	rootCmd.AddCommand(tableCmd)
}

// convertCmd converts one value to every radix
var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value to decimal, hexadecimal, octal and binary",
	Long: `Convert a value written in one radix to all four.

Values wrap modulo 2^32. By default parsing is permissive: leading spaces,
a sign, a 0x prefix on hexadecimal input and trailing junk are accepted,
as in "12abc" reading as 12. Use --strict to require digits only.

An empty value prints blank fields. A value with no usable digits is an
error.`,
	Example: `  # Hexadecimal to everything
  basemaster convert 1A --from hex

  # Binary input, JSON output for scripting
  basemaster convert 1010 --from bin -o json

  # -1 wraps to 4294967295
  basemaster convert -- -1`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&fromRadix, "from", "f", "dec", "Radix of the value (bin, oct, dec, hex)")
	addOutputFlag(convertCmd)
}

type convertResult struct {
	Input  string       `json:"input" yaml:"input"`
	From   string       `json:"from" yaml:"from"`
	Mode   string       `json:"mode" yaml:"mode"`
	Empty  bool         `json:"empty" yaml:"empty"`
	Fields radix.Fields `json:"fields" yaml:"fields"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	from, err := radix.ParseRadix(fromRadix)
	if err != nil {
		return err
	}
	mode, err := parseMode()
	if err != nil {
		return err
	}

	fields, err := convert(args[0], from, mode)
	if err != nil {
		if outputFormat == formatText {
			tips := []string{
				fmt.Sprintf("Only %s digits are accepted with --from %s", from.Name(), from),
				"Pick the input radix with --from (bin, oct, dec, hex)",
			}
			if mode == radix.Strict {
				tips = append(tips, "Signs, spaces, 0x prefixes and trailing text need permissive mode")
			}
			ui.NewPrinter(cmd.ErrOrStderr(), ui.NewPalette(cfg.Theme)).PrintError("Convert", err, tips)
		}
		return fmt.Errorf("cannot convert: %w", err)
	}
	logging.Debug("converted", zap.String("input", args[0]), zap.Stringer("from", from), zap.String("decimal", fields.Decimal))

	if outputFormat != formatText {
		return writeStructured(cmd.OutOrStdout(), convertResult{
			Input:  args[0],
			From:   from.String(),
			Mode:   mode.String(),
			Empty:  fields.IsEmpty(),
			Fields: fields,
		})
	}

	p := newPrinter(cmd)
	p.PrintHeader(ui.NewHeader("Convert", commandLine(cmd, args),
		ui.Param{Key: "From", Value: from.Name()},
		ui.Param{Key: "Mode", Value: mode.String()},
	))
	p.PrintFields(fields)
	if !fields.IsEmpty() {
		p.Newline()
		p.PrintGrid(bitgrid.FromBinary(fields.Binary))
	}
	return nil
}

// convert parses text and formats it in every radix. Empty text yields
// blank fields.
func convert(text string, from radix.Radix, mode radix.Mode) (radix.Fields, error) {
	v, err := radix.Parser{Mode: mode}.Parse(text, from)
	if radix.IsEmpty(err) {
		return radix.FormatEmpty(), nil
	}
	if err != nil {
		return radix.Fields{}, err
	}
	return radix.Format(v), nil
}

// bitsCmd applies a grid operation
var bitsCmd = &cobra.Command{
	Use:   "bits <op> [index]",
	Short: "Toggle, shift, set or clear the bits of a value",
	Long: `Apply one 32-bit grid operation to a value and print the result.

Operations:
  toggle <index>   flip one bit
  shl              shift left by one, bit 31 falls off
  shr              shift right by one, bit 0 falls off
  set              set all 32 bits
  clear            clear all 32 bits

The index counts grid cells from the left, so 0 is bit 31 and 31 is bit 0.
With --bit the index is a bit number instead (0 is the least significant).
Without --value the operation starts from zero.`,
	Example: `  # Flip the most significant bit
  basemaster bits toggle 0 --value 1

  # Flip bit 4 of 0xFF
  basemaster bits toggle 4 --bit --value ff --from hex

  # Shift left
  basemaster bits shl --value 101 --from bin`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBits,
}

func init() {
	bitsCmd.Flags().StringVar(&bitsValue, "value", "", "Starting value (default 0)")
	bitsCmd.Flags().StringVarP(&fromRadix, "from", "f", "dec", "Radix of --value (bin, oct, dec, hex)")
	bitsCmd.Flags().BoolVar(&bitNumber, "bit", false, "Read the index as a bit number (0 = LSB)")
	addOutputFlag(bitsCmd)
}

type bitsResult struct {
	Op     string       `json:"op" yaml:"op"`
	Index  *int         `json:"index,omitempty" yaml:"index,omitempty"`
	Bit    *int         `json:"bit,omitempty" yaml:"bit,omitempty"`
	Before radix.Fields `json:"before" yaml:"before"`
	After  radix.Fields `json:"after" yaml:"after"`
}

func runBits(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(); err != nil {
		return err
	}

	op, err := bitgrid.ParseOp(args[0])
	if err != nil {
		return err
	}

	index := 0
	switch {
	case op.NeedsIndex() && len(args) < 2:
		return fmt.Errorf("%s needs a cell index (0-%d)", op, bitgrid.Width-1)
	case !op.NeedsIndex() && len(args) > 1:
		return fmt.Errorf("%s takes no index", op)
	case op.NeedsIndex():
		if index, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("invalid index %q: %w", args[1], err)
		}
		if bitNumber {
			if index < 0 || index >= bitgrid.Width {
				return fmt.Errorf("%w: bit %d (want 0-%d)", bitgrid.ErrIndexRange, index, bitgrid.Width-1)
			}
			index = bitgrid.Position(index)
		}
	}
	cmd.SilenceUsage = true

	conv, err := newConverter(bitsValue)
	if err != nil {
		return err
	}
	before := conv.Fields()

	if _, err := conv.Apply(op, index); err != nil {
		return err
	}

	if outputFormat != formatText {
		res := bitsResult{Op: op.String(), Before: before, After: conv.Fields()}
		if op.NeedsIndex() {
			bit := bitgrid.Position(index)
			res.Index, res.Bit = &index, &bit
		}
		return writeStructured(cmd.OutOrStdout(), res)
	}

	params := []ui.Param{{Key: "Operation", Value: op.Label()}}
	if op.NeedsIndex() {
		params = append(params, ui.Param{Key: "Bit", Value: strconv.Itoa(bitgrid.Position(index))})
	}
	if !before.IsEmpty() {
		params = append(params, ui.Param{Key: "Before", Value: "0x" + before.Hex})
	}

	p := newPrinter(cmd)
	p.PrintHeader(ui.NewHeader("Bits", commandLine(cmd, args), params...))
	p.PrintFields(conv.Fields())
	p.Newline()
	p.PrintGrid(conv.Grid())
	return nil
}

// newConverter returns a converter holding text, or the empty state when
// text is blank.
func newConverter(text string) (*converter.Converter, error) {
	mode, err := parseMode()
	if err != nil {
		return nil, err
	}
	from, err := radix.ParseRadix(fromRadix)
	if err != nil {
		return nil, err
	}

	conv := converter.New(converter.WithMode(mode), converter.WithLogger(logging.GetLogger()))
	if text == "" {
		return conv, nil
	}

	v, err := radix.Parser{Mode: mode}.Parse(text, from)
	if err != nil {
		return nil, fmt.Errorf("invalid --value: %w", err)
	}
	conv.Set(v)
	return conv, nil
}

// tableCmd prints the reference table
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the reference table of common values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkOutputFormat(); err != nil {
			return err
		}
		if outputFormat != formatText {
			return writeStructured(cmd.OutOrStdout(), reftable.Rows())
		}

		p := newPrinter(cmd)
		p.PrintHeader(ui.NewHeader("Reference", commandLine(cmd, args)))
		p.PrintTable(reftable.Rows())
		return nil
	},
}

func init() {
	addOutputFlag(tableCmd)
}
