package actions

import (
	"math"

	"github.com/KenKundert/ec/calc"
)

// refResistance reads the Rref variable, the reference resistance used by the
// dBm conversions.
func refResistance(c *calc.Calculator) (float64, error) {
	v, ok := c.Heap().Recall("Rref")
	if !ok {
		return 0, domainError("Rref is not defined")
	}
	if v.IsComplex() || v.Re <= 0 {
		return 0, domainError("Rref must be a positive real number")
	}
	return v.Re, nil
}

func decibelActions() []*calc.Action {
	return []*calc.Action{
		calc.NewCategory("Decibel Functions"),
		{
			Key: "db", Aliases: []string{"db20", "v2db", "i2db"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x <= 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return 20 * math.Log10(x), nil
			}),
			Description: "db: convert voltage or current to dB",
			Synopsis:    "x, ... => 20*log(x), ...",
		},
		{
			Key: "adb", Aliases: []string{"db2v", "db2i"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Pow(10, x/20), nil
			}),
			Description: "adb: convert dB to voltage or current",
			Synopsis:    "x, ... => 10**(x/20), ...",
		},
		{
			Key: "db10", Aliases: []string{"p2db"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				if x <= 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return 10 * math.Log10(x), nil
			}),
			Description: "db10: convert power to dB",
			Synopsis:    "x, ... => 10*log(x), ...",
		},
		{
			Key: "adb10", Aliases: []string{"db2p"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				return math.Pow(10, x/10), nil
			}),
			Description: "adb10: convert dB to power",
			Synopsis:    "x, ... => 10**(x/10), ...",
		},
		{
			Key: "vdbm", Aliases: []string{"v2dbm"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				rref, err := refResistance(c)
				if err != nil {
					return 0, err
				}
				if x == 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return 30 + 10*math.Log10(x*x/rref/2), nil
			}),
			Description: "vdbm: convert peak voltage to dBm",
			Synopsis:    "x, ... => 30+10*log10((x**2)/(2*Rref)), ...",
		},
		{
			Key: "dbmv", Aliases: []string{"dbm2v"}, Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return calc.Value{}, errComplex()
				}
				rref, err := refResistance(c)
				if err != nil {
					return calc.Value{}, err
				}
				return calc.Real(math.Sqrt(2*math.Pow(10, (x.Re-30)/10)*rref), "V"), nil
			}),
			Description: "dbmv: convert dBm to peak voltage",
			Synopsis:    "x, ... => sqrt(2*10**((x-30)/10)*Rref), ...",
		},
		{
			Key: "idbm", Aliases: []string{"i2dbm"}, Pop: 1, Push: 1,
			Run: realUnary(func(c *calc.Calculator, x float64) (float64, error) {
				rref, err := refResistance(c)
				if err != nil {
					return 0, err
				}
				if x == 0 {
					return 0, domainError("logarithm requires a positive argument")
				}
				return 30 + 10*math.Log10(x*x*rref/2), nil
			}),
			Description: "idbm: convert peak current to dBm",
			Synopsis:    "x, ... => 30+10*log10(((x**2)*Rref/2), ...",
		},
		{
			Key: "dbmi", Aliases: []string{"dbm2i"}, Pop: 1, Push: 1,
			Run: unaryOp(func(c *calc.Calculator, x calc.Value) (calc.Value, error) {
				if x.IsComplex() {
					return calc.Value{}, errComplex()
				}
				rref, err := refResistance(c)
				if err != nil {
					return calc.Value{}, err
				}
				return calc.Real(math.Sqrt(2*math.Pow(10, (x.Re-30)/10)/rref), "A"), nil
			}),
			Description: "dbmi: convert dBm to peak current",
			Synopsis:    "x, ... => sqrt(2*10**((x-30)/10)/Rref), ...",
		},
	}
}
