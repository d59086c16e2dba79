package gocalc

import (
	"math/big"
)

type Prec int

const (
	PrecExpr Prec = iota
	PrecTerm
)

type Op func(x, y *big.Rat) (*big.Rat, error)

type OpInfo struct {
	prec Prec
	fn   Op
}

var ops map[Kind]OpInfo

func makeOp(prec Prec, fn Op) OpInfo {
	return OpInfo{prec: prec, fn: fn}
}

func init() {
	ops = make(map[Kind]OpInfo)
	ops[KindPlus] = makeOp(PrecExpr, doPlus)
	ops[KindMinus] = makeOp(PrecExpr, doMinus)
	ops[KindMultiply] = makeOp(PrecTerm, doMul)
	ops[KindDivide] = makeOp(PrecTerm, doDiv)
}

// lookupOp reports the operator for k if it binds at level prec.
func lookupOp(k Kind, prec Prec) (OpInfo, bool) {
	op, ok := ops[k]
	if !ok || op.prec != prec {
		return OpInfo{}, false
	}
	return op, true
}

func doPlus(x, y *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Add(x, y), nil
}

func doMinus(x, y *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Sub(x, y), nil
}

func doMul(x, y *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Mul(x, y), nil
}

func doDiv(x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(x, y), nil
}

// FormatNumber prints whole values as integers and everything else as a
// reduced fraction.
func FormatNumber(v *big.Rat) string {
	return v.RatString()
}
