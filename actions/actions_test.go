package actions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KenKundert/ec/calc"
	"github.com/KenKundert/ec/units"
	"github.com/KenKundert/ec/util/testutil"
)

type capture struct {
	messages []string
	warnings []string
}

func newCalc(t *testing.T) (*calc.Calculator, *capture) {
	t.Helper()
	cap := &capture{}
	c := calc.New(calc.Config{
		Actions:        All(),
		Formatter:      DefaultFormat(),
		Variables:      PredefinedVariables(),
		Units:          units.Default(),
		BackUpStack:    true,
		MessagePrinter: func(msg string) { cap.messages = append(cap.messages, msg) },
		WarningPrinter: func(msg string) { cap.warnings = append(cap.warnings, msg) },
		Log:            testutil.NewTestLogger(false),
	})
	return c, cap
}

func eval(t *testing.T, c *calc.Calculator, line string) string {
	t.Helper()
	res, err := c.Evaluate(line)
	require.NoError(t, err, line)
	return res
}

func TestScenarios(t *testing.T) {
	t.Run("addition", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "9", eval(t, c, "4 5 +"))
	})
	t.Run("parallel combination", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "50", eval(t, c, "100 100 ||"))
	})
	t.Run("hex in verilog binary out", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "'b11111111", eval(t, c, "0xFF vbin"))
	})
	t.Run("volts to dbm", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "30", eval(t, c, "10 vdbm"))
	})
	t.Run("dbm to volts", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "100mV", eval(t, c, "-10 dbmv"))
	})
	t.Run("macro with units", func(t *testing.T) {
		c, _ := newCalc(t)
		res := eval(t, c, `(2pi * "rads/s")to_omega 1.4GHz to_omega`)
		require.EqualValues(t, "8.7965Grads/s", res)
		require.EqualValues(t, "rads/s", c.Stack().X().Units)
	})
}

func TestArithmetic(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("subtract", func(t *testing.T) {
		require.EqualValues(t, "-1", eval(t, c, "clstack 4 5 -"))
	})
	t.Run("multiply glued", func(t *testing.T) {
		require.EqualValues(t, "42", eval(t, c, "clstack 6 7*"))
	})
	t.Run("divide", func(t *testing.T) {
		require.EqualValues(t, "2.5", eval(t, c, "clstack 5 2 /"))
	})
	t.Run("divide by zero", func(t *testing.T) {
		_, err := c.Evaluate("clstack 5 0 /")
		require.True(t, calc.IsKind(err, calc.ErrDomain))
	})
	t.Run("floor division", func(t *testing.T) {
		require.EqualValues(t, "3", eval(t, c, "clstack 7 2 //"))
	})
	t.Run("modulus takes sign of divisor", func(t *testing.T) {
		require.EqualValues(t, "2", eval(t, c, "clstack -7 3 %"))
		require.EqualValues(t, "-2", eval(t, c, "clstack 7 -3 %"))
	})
	t.Run("percent change", func(t *testing.T) {
		require.EqualValues(t, "20", eval(t, c, "clstack 50 60 %chg"))
	})
	t.Run("change sign", func(t *testing.T) {
		require.EqualValues(t, "-5", eval(t, c, "clstack 5 chs"))
	})
	t.Run("reciprocal", func(t *testing.T) {
		require.EqualValues(t, "250m", eval(t, c, "clstack 4 recip"))
	})
	t.Run("ceil floor", func(t *testing.T) {
		require.EqualValues(t, "3", eval(t, c, "clstack 2.1 ceil"))
		require.EqualValues(t, "2", eval(t, c, "clstack 2.9 floor"))
	})
	t.Run("factorial", func(t *testing.T) {
		require.EqualValues(t, "120", eval(t, c, "clstack 5 !"))
	})
	t.Run("factorial domain", func(t *testing.T) {
		_, err := c.Evaluate("clstack 2.5 !")
		require.True(t, calc.IsKind(err, calc.ErrDomain))
	})
	t.Run("addition keeps matching units", func(t *testing.T) {
		eval(t, c, `clstack 1 "V" 2 "V" +`)
		require.EqualValues(t, "V", c.Stack().X().Units)
		eval(t, c, `clstack 1 "V" 2 "A" +`)
		require.EqualValues(t, "", c.Stack().X().Units)
	})
	t.Run("random range", func(t *testing.T) {
		eval(t, c, "clstack rand")
		x := c.Stack().X()
		require.True(t, x.Re >= 0 && x.Re < 1)
	})
}

func TestPowersAndLogs(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("power", func(t *testing.T) {
		require.EqualValues(t, "1.024K", eval(t, c, "clstack 2 10 **"))
	})
	t.Run("power alias", func(t *testing.T) {
		require.EqualValues(t, "8", eval(t, c, "clstack 2 3 pow"))
	})
	t.Run("exp ln round trip", func(t *testing.T) {
		require.EqualValues(t, "1", eval(t, c, "clstack 1 exp ln"))
	})
	t.Run("ln of negative goes complex", func(t *testing.T) {
		require.EqualValues(t, "j3.1416", eval(t, c, "clstack -1 ln"))
	})
	t.Run("log10", func(t *testing.T) {
		require.EqualValues(t, "3", eval(t, c, "clstack 1000 log"))
	})
	t.Run("log of zero", func(t *testing.T) {
		_, err := c.Evaluate("clstack 0 log")
		require.True(t, calc.IsKind(err, calc.ErrDomain))
	})
	t.Run("log2", func(t *testing.T) {
		require.EqualValues(t, "10", eval(t, c, "clstack 1024 log2"))
	})
	t.Run("pow10 pow2", func(t *testing.T) {
		require.EqualValues(t, "1K", eval(t, c, "clstack 3 pow10"))
		require.EqualValues(t, "32", eval(t, c, "clstack 5 pow2"))
	})
	t.Run("sqr sqrt", func(t *testing.T) {
		require.EqualValues(t, "49", eval(t, c, "clstack 7 sqr"))
		require.EqualValues(t, "7", eval(t, c, "clstack 49 sqrt"))
	})
	t.Run("sqrt of negative goes complex", func(t *testing.T) {
		require.EqualValues(t, "j2", eval(t, c, "clstack -4 sqrt"))
	})
	t.Run("cbrt", func(t *testing.T) {
		require.EqualValues(t, "-2", eval(t, c, "clstack -8 cbrt"))
	})
}

func TestTrig(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("degrees by default", func(t *testing.T) {
		require.EqualValues(t, "1", eval(t, c, "clstack 90 sin"))
		require.EqualValues(t, "-1", eval(t, c, "clstack 180 cos"))
		require.EqualValues(t, "1", eval(t, c, "clstack 45 tan"))
	})
	t.Run("inverse carries angle units", func(t *testing.T) {
		require.EqualValues(t, "90degs", eval(t, c, "clstack 1 asin"))
		require.EqualValues(t, "degs", c.Stack().X().Units)
	})
	t.Run("radians mode", func(t *testing.T) {
		eval(t, c, "rads")
		require.EqualValues(t, "1.5708rads", eval(t, c, "clstack 1 asin"))
		eval(t, c, "degs")
	})
	t.Run("asin domain", func(t *testing.T) {
		_, err := c.Evaluate("clstack 2 asin")
		require.True(t, calc.IsKind(err, calc.ErrDomain))
	})
}

func TestComplexAndVector(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("imaginary unit", func(t *testing.T) {
		require.EqualValues(t, "1 + j", eval(t, c, "clstack 1 j +"))
	})
	t.Run("abs peeks", func(t *testing.T) {
		eval(t, c, "clstack 3 4 j * +")
		require.EqualValues(t, "5", eval(t, c, "abs"))
		// magnitude lands above the untouched operand
		require.EqualValues(t, 2, c.Stack().Depth())
	})
	t.Run("arg", func(t *testing.T) {
		eval(t, c, "clstack 1 j +")
		require.EqualValues(t, "45degs", eval(t, c, "arg"))
	})
	t.Run("conj", func(t *testing.T) {
		require.EqualValues(t, "1 - j", eval(t, c, "clstack 1 j + conj"))
	})
	t.Run("hypot", func(t *testing.T) {
		require.EqualValues(t, "5", eval(t, c, "clstack 3 4 hypot"))
	})
	t.Run("atan2", func(t *testing.T) {
		require.EqualValues(t, "45degs", eval(t, c, "clstack 1 1 atan2"))
	})
	t.Run("rtop", func(t *testing.T) {
		eval(t, c, "clstack 3 4 j * + rtop")
		require.EqualValues(t, 2, c.Stack().Depth())
		require.EqualValues(t, 5.0, c.Stack().X().Re)
		angle, _ := c.Stack().Peek(1)
		require.InDelta(t, 53.130102354156, angle.Re, 1e-9)
		require.EqualValues(t, "degs", angle.Units)
	})
	t.Run("ptor", func(t *testing.T) {
		eval(t, c, "clstack 90 1 ptor")
		require.InDelta(t, 0.0, c.Stack().X().Re, 1e-12)
		y, _ := c.Stack().Peek(1)
		require.InDelta(t, 1.0, y.Re, 1e-12)
	})
}

func TestHyperbolic(t *testing.T) {
	c, _ := newCalc(t)
	require.EqualValues(t, "0", eval(t, c, "clstack 0 sinh"))
	require.EqualValues(t, "1", eval(t, c, "clstack 0 cosh"))
	require.EqualValues(t, "2", eval(t, c, "clstack 2 sinh asinh"))
	require.EqualValues(t, "2", eval(t, c, "clstack 2 cosh acosh"))
	require.EqualValues(t, "500m", eval(t, c, "clstack 0.5 tanh atanh"))

	_, err := c.Evaluate("clstack 0.5 acosh")
	require.True(t, calc.IsKind(err, calc.ErrDomain))
	_, err = c.Evaluate("clstack 2 atanh")
	require.True(t, calc.IsKind(err, calc.ErrDomain))
}

func TestDecibels(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("voltage db", func(t *testing.T) {
		require.EqualValues(t, "20", eval(t, c, "clstack 10 db"))
		require.EqualValues(t, "10", eval(t, c, "clstack 20 adb"))
	})
	t.Run("power db", func(t *testing.T) {
		require.EqualValues(t, "10", eval(t, c, "clstack 10 db10"))
		require.EqualValues(t, "100", eval(t, c, "clstack 20 adb10"))
	})
	t.Run("aliases", func(t *testing.T) {
		require.EqualValues(t, "20", eval(t, c, "clstack 10 v2db"))
		require.EqualValues(t, "10", eval(t, c, "clstack 20 db2v"))
	})
	t.Run("dbm round trip", func(t *testing.T) {
		require.EqualValues(t, "10", eval(t, c, "clstack 10 vdbm dbmv"))
		require.EqualValues(t, "V", c.Stack().X().Units)
	})
	t.Run("rref is live", func(t *testing.T) {
		// with Rref = 100 the same 10 V peak is 3 dB weaker
		eval(t, c, "clstack 100 =Rref")
		require.EqualValues(t, "26.99", eval(t, c, "clstack fix2 10 vdbm"))
		eval(t, c, "si4 50 =Rref")
	})
}

func TestConstants(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("pi", func(t *testing.T) {
		require.EqualValues(t, "3.1416rads", eval(t, c, "clstack pi"))
	})
	t.Run("2pi is a constant not a number", func(t *testing.T) {
		require.EqualValues(t, "6.2832rads", eval(t, c, "clstack 2pi"))
	})
	t.Run("zero celsius", func(t *testing.T) {
		// exact key lookup wins over the number lexer
		require.EqualValues(t, "273.15K", eval(t, c, "clstack 0C"))
	})
	t.Run("planck constant follows unit system", func(t *testing.T) {
		require.EqualValues(t, "662.61e-36J-s", eval(t, c, "clstack mks h"))
		require.EqualValues(t, "6.6261e-27erg-s", eval(t, c, "clstack cgs h"))
		eval(t, c, "mks")
	})
	t.Run("z0 needs mks", func(t *testing.T) {
		require.EqualValues(t, "376.73Ohms", eval(t, c, "clstack mks Z0"))
		_, err := c.Evaluate("cgs Z0")
		require.True(t, calc.IsKind(err, calc.ErrDomain))
		eval(t, c, "mks")
	})
	t.Run("speed of light", func(t *testing.T) {
		require.EqualValues(t, "299.79Mm/s", eval(t, c, "clstack c"))
	})
	t.Run("planck masses", func(t *testing.T) {
		require.EqualValues(t, "21.765ug", eval(t, c, "clstack mP"))
		require.EqualValues(t, "4.341ug", eval(t, c, "clstack mPr"))
	})
}

func TestFormats(t *testing.T) {
	c, _ := newCalc(t)
	t.Run("fixed with digits", func(t *testing.T) {
		require.EqualValues(t, "$20.00", eval(t, c, "clstack fix2 $20"))
	})
	t.Run("sci", func(t *testing.T) {
		require.EqualValues(t, "1.4000e+09Hz", eval(t, c, "clstack sci4 1.4GHz"))
	})
	t.Run("eng", func(t *testing.T) {
		require.EqualValues(t, "1.4e9Hz", eval(t, c, "clstack eng 1.4GHz"))
	})
	t.Run("digits persist without suffix", func(t *testing.T) {
		eval(t, c, "clstack fix3")
		require.EqualValues(t, "2.000", eval(t, c, "clstack fix 2"))
	})
	t.Run("hex", func(t *testing.T) {
		require.EqualValues(t, "0x00ff", eval(t, c, "clstack si4 hex 255"))
	})
	t.Run("back to si", func(t *testing.T) {
		require.EqualValues(t, "1.4GHz", eval(t, c, "clstack si 1.4GHz"))
	})
}

func TestVariableCommands(t *testing.T) {
	c, cap := newCalc(t)
	t.Run("predefined rref", func(t *testing.T) {
		require.EqualValues(t, "50Ohms", eval(t, c, "clstack Rref"))
	})
	t.Run("store and recall", func(t *testing.T) {
		require.EqualValues(t, "1.8V", eval(t, c, `clstack 1.8 "V" =vdd 0 vdd`))
	})
	t.Run("vars listing", func(t *testing.T) {
		cap.messages = nil
		eval(t, c, "vars")
		require.Contains(t, cap.messages, "  Rref: 50Ohms")
		require.Contains(t, cap.messages, "  vdd: 1.8V")
	})
	t.Run("variable shadows built-in", func(t *testing.T) {
		cap.warnings = nil
		eval(t, c, "clstack 2 =pi")
		require.Contains(t, cap.warnings, "pi: variable has overridden built-in.")
		require.EqualValues(t, "2", eval(t, c, "clstack pi"))
	})
}

func TestStackCommands(t *testing.T) {
	c, cap := newCalc(t)
	t.Run("swap preserves units", func(t *testing.T) {
		eval(t, c, `clstack 2 "A" 1 "V" swap`)
		require.EqualValues(t, "A", c.Stack().X().Units)
		require.EqualValues(t, 2.0, c.Stack().X().Re)
		y, _ := c.Stack().Peek(1)
		require.EqualValues(t, "V", y.Units)
	})
	t.Run("dup and enter", func(t *testing.T) {
		eval(t, c, "clstack 7 dup enter")
		require.EqualValues(t, 3, c.Stack().Depth())
	})
	t.Run("pop", func(t *testing.T) {
		require.EqualValues(t, "1", eval(t, c, "clstack 1 2 pop"))
	})
	t.Run("lastx", func(t *testing.T) {
		require.EqualValues(t, "5", eval(t, c, "clstack 4 5 + lastx"))
		require.EqualValues(t, 2, c.Stack().Depth())
	})
	t.Run("stack display", func(t *testing.T) {
		cap.messages = nil
		eval(t, c, "clstack 1 2 3 stack")
		require.EqualValues(t, []string{"     1", "  y: 2", "  x: 3"}, cap.messages)
	})
	t.Run("clstack", func(t *testing.T) {
		eval(t, c, "1 2 3 clstack")
		require.EqualValues(t, 0, c.Stack().Depth())
	})
}

func TestMiscCommands(t *testing.T) {
	t.Run("unit conversion", func(t *testing.T) {
		c, _ := newCalc(t)
		require.EqualValues(t, "273.15K", eval(t, c, `0 "C" >K`))
		require.EqualValues(t, "0C", eval(t, c, ">C"))
	})
	t.Run("conversion without rule", func(t *testing.T) {
		c, _ := newCalc(t)
		_, err := c.Evaluate(`1 "m" >K`)
		require.True(t, calc.IsKind(err, calc.ErrUnitMismatch))
	})
	t.Run("print directive", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "10 20 `x=$0 y=$1`")
		require.EqualValues(t, []string{"x=20 y=10"}, cap.messages)
	})
	t.Run("empty print renders x", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "1.4GHz ``")
		require.EqualValues(t, []string{"1.4GHz"}, cap.messages)
	})
	t.Run("quit requests termination", func(t *testing.T) {
		c, _ := newCalc(t)
		require.False(t, c.QuitRequested())
		eval(t, c, "quit")
		require.True(t, c.QuitRequested())
	})
	t.Run("help topic", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "?sin")
		require.True(t, len(cap.messages) > 0)
		require.Contains(t, cap.messages[0], "sin: trigonometric sine")
	})
	t.Run("help unknown topic", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "?zorp")
		require.Contains(t, cap.warnings, "zorp: not found.")
	})
	t.Run("help summary mentions categories", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "help")
		joined := strings.Join(cap.messages, "\n")
		require.Contains(t, joined, "Arithmetic Operators")
		require.Contains(t, joined, "Stack Commands")
	})
	t.Run("about", func(t *testing.T) {
		c, cap := newCalc(t)
		eval(t, c, "about")
		require.Contains(t, cap.messages[0], "Engineering Calculator")
	})
}

func TestCatalogIsWellFormed(t *testing.T) {
	// NewRegistry panics on duplicate names or nameless actions; building a
	// calculator from the full catalog proves the catalog is coherent
	require.NotPanics(t, func() {
		calc.New(calc.Config{Actions: All()})
	})
}
