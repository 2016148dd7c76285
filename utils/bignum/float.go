// Package bignum implements arbitrary precision arithmetic helpers on top of math/big.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const ln2 = "0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542001481020570685733685520235758130557032670751635075961930727570828371435190307038623891673471123350115364497955239120475172681574932065155524734139525882950453007095326366642654104239157814952043740430385500801944170641671518644712839968171784546957026271631064546150257207402481637773389638550695260668341137273873722928956493547025762652098859693201965058554764703306793654432547632744951250406069438147104689946506220167720424524529612687946546193165174681392672504103802546259656869144192871608293803172714367782654877566485085674077648451464439940461422603193096735402574446070308096085047486638523138181676751438667476647890881437141985494231519973548803751658612753529166100071053558249879414729509293113897155998205654392871700072180857610252368892132449713893203784393530887748259701715591070882368362758984258918535302436342143670611892367891923723146723217205340164925687274778234453534764811494186423867767744060695626573796008670762571991847340226514628379048830620330611446300737194890027436439650025809365194430411911506080948793067865158870900605203468429736193841289652556539686022194122924207574321757489097706753"

// Ln2 returns ln(2) with prec bits of precision.
func Ln2(prec uint) *big.Float {
	ln2, _ := new(big.Float).SetPrec(prec).SetString(ln2)
	return ln2
}

// NewFloat returns x as a big.Float with prec bits of precision, or zero if x
// is nil. x must be an int, int64, uint64, float64 or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float).SetPrec(prec)

	switch x := x.(type) {
	case nil:
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("bignum.NewFloat: invalid type %T", x))
	}

	return
}

// Log returns ln(x) with the precision of x.
// x must be strictly positive.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log2 returns log2(x) with the precision of x.
// x must be strictly positive.
func Log2(x *big.Float) (log2 *big.Float) {
	log2 = Log(x)
	return log2.Quo(log2, Ln2(x.Prec()))
}

// DotProduct returns sum_i a[i]*b[i] computed with prec bits of precision.
// a and b must have the same length.
func DotProduct(a []int, b []float64, prec uint) (r *big.Float) {

	if len(a) != len(b) {
		panic(fmt.Errorf("cannot DotProduct: len(a)=%d != len(b)=%d", len(a), len(b)))
	}

	r = NewFloat(nil, prec)
	tmp := NewFloat(nil, prec)
	for i := range a {
		tmp.Mul(NewFloat(a[i], prec), NewFloat(b[i], prec))
		r.Add(r, tmp)
	}

	return
}
