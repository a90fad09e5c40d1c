package actions

import (
	"strconv"

	"github.com/KenKundert/ec/calc"
	"github.com/KenKundert/ec/format"
)

// setFormat builds a pattern action like "fix" or "fix8": the notation is
// always selected and the optional digit suffix, when present, also sets the
// precision or field width.
func setFormat(name string, n format.Notation, description, summary string) *calc.Action {
	return &calc.Action{
		Pattern: `\A` + name + `(\d{1,2})?\z`,
		Name:    name,
		Pop:     0, Push: 0,
		RunMatch: func(c *calc.Calculator, groups []string, args []calc.Value) ([]calc.Value, error) {
			c.Formatter().Set(n)
			if groups[0] != "" {
				digits, err := strconv.Atoi(groups[0])
				if err != nil {
					return nil, calc.NewError(calc.ErrSyntax, "%s: invalid digits", groups[0])
				}
				c.Formatter().SetDigits(digits)
			}
			return nil, nil
		},
		Description: description,
		Summary:     summary,
	}
}

func formatActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Numbers and Formats"),
		setFormat("si", format.SI,
			"si[N]: use SI scale factors",
			"Numbers are displayed with a scale factor letter in place of the exponent. An optional integer suffix sets the number of digits of precision."),
		setFormat("eng", format.Eng,
			"eng[N]: use engineering notation",
			"Numbers are displayed in exponential form with the exponent a multiple of three. An optional integer suffix sets the number of digits of precision."),
		setFormat("sci", format.Sci,
			"sci[N]: use scientific notation",
			"Numbers are displayed in exponential form. An optional integer suffix sets the number of digits to the right of the decimal point."),
		setFormat("fix", format.Fix,
			"fix[N]: use fixed notation",
			"Numbers are displayed with a fixed number of digits to the right of the decimal point. An optional integer suffix sets that number."),
		setFormat("hex", format.Hex,
			"hex[N]: use hexadecimal notation",
			"Numbers are rounded to integer and displayed in base 16 with a leading 0x. An optional integer suffix sets the minimum number of digits."),
		setFormat("oct", format.Oct,
			"oct[N]: use octal notation",
			"Numbers are rounded to integer and displayed in base 8 with a leading 0o. An optional integer suffix sets the minimum number of digits."),
		setFormat("bin", format.Bin,
			"bin[N]: use binary notation",
			"Numbers are rounded to integer and displayed in base 2 with a leading 0b. An optional integer suffix sets the minimum number of digits."),
		setFormat("vhex", format.VHex,
			"vhex[N]: use Verilog hexadecimal notation",
			"Numbers are rounded to integer and displayed in base 16 with a leading 'h. An optional integer suffix sets the minimum number of digits."),
		setFormat("vdec", format.VDec,
			"vdec[N]: use Verilog decimal notation",
			"Numbers are rounded to integer and displayed in base 10 with a leading 'd. An optional integer suffix sets the minimum number of digits."),
		setFormat("voct", format.VOct,
			"voct[N]: use Verilog octal notation",
			"Numbers are rounded to integer and displayed in base 8 with a leading 'o. An optional integer suffix sets the minimum number of digits."),
		setFormat("vbin", format.VBin,
			"vbin[N]: use Verilog binary notation",
			"Numbers are rounded to integer and displayed in base 2 with a leading 'b. An optional integer suffix sets the minimum number of digits."),
	}
}
