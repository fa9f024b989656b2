package thor

import (
	"fmt"
	"math/big"
	"strings"
)

// Token describes a token's display metadata. Decimals is the number of
// fractional digits one whole token carries in its minimal-unit integer
// representation.
type Token struct {
	Name     string
	Symbol   string
	Decimals uint8
}

// VET is the chain's native token.
var VET = Token{Name: "VeChain Token", Symbol: "VET", Decimals: 18}

// Amount is a token quantity held as a minimal-unit integer together with
// the token metadata that fixes its decimal precision. The zero quantity is
// valid; negative quantities are not.
type Amount struct {
	token Token
	units *big.Int
}

// NewAmount creates a zero Amount of the given token.
func NewAmount(token Token) *Amount {
	return &Amount{token: token, units: new(big.Int)}
}

// ParseAmount creates an Amount of the given token from a decimal string,
// e.g. "21.12".
func ParseAmount(token Token, decimal string) (*Amount, error) {
	a := NewAmount(token)
	if err := a.SetDecimal(decimal); err != nil {
		return nil, err
	}
	return a, nil
}

// Token returns the token metadata the amount is denominated in.
func (a *Amount) Token() Token {
	return a.token
}

// SetDecimal sets the amount from a decimal string. The fractional part may
// not exceed the token's precision and the value may not be negative.
func (a *Amount) SetDecimal(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	if strings.HasPrefix(s, "-") {
		return fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if len(fracPart) > int(a.token.Decimals) {
		return fmt.Errorf("%w: %q has more than %d fractional digits",
			ErrInvalidAmount, s, a.token.Decimals)
	}
	// Scale to minimal units: intPart*10^decimals + fracPart padded with
	// trailing zeros up to the token's precision.
	digits := intPart + fracPart + strings.Repeat("0", int(a.token.Decimals)-len(fracPart))
	units, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return fmt.Errorf("%w: %q is not a decimal number", ErrInvalidAmount, s)
	}
	a.units = units
	return nil
}

// SetUnits sets the amount directly from a minimal-unit integer.
func (a *Amount) SetUnits(v *big.Int) error {
	if v == nil {
		return fmt.Errorf("%w: nil units", ErrInvalidAmount)
	}
	if v.Sign() < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, v)
	}
	a.units = new(big.Int).Set(v)
	return nil
}

// Units returns a copy of the minimal-unit integer value.
func (a *Amount) Units() *big.Int {
	return new(big.Int).Set(a.units)
}

// Decimal returns the decimal string representation, with trailing zeros in
// the fractional part trimmed. ParseAmount(t, s).Decimal() == s for any s
// without redundant zeros.
func (a *Amount) Decimal() string {
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(a.token.Decimals)), nil)
	whole, frac := new(big.Int).QuoRem(a.units, scale, new(big.Int))
	if frac.Sign() == 0 {
		return whole.String()
	}
	fracDigits := fmt.Sprintf("%0*s", int(a.token.Decimals), frac.String())
	fracDigits = strings.TrimRight(fracDigits, "0")
	return whole.String() + "." + fracDigits
}

// Hex returns the "0x"-prefixed minimal big-endian hex encoding of the
// minimal-unit value, as expected by ABI argument encoding.
func (a *Amount) Hex() string {
	return fmt.Sprintf("0x%x", a.units)
}

// String implements fmt.Stringer as "<decimal> <symbol>".
func (a *Amount) String() string {
	return a.Decimal() + " " + a.token.Symbol
}
