package zed

import "filippo.io/edwards25519"

// curveOrderBytes is the Curve25519 group order ℓ, little-endian, i.e.
//
//	ℓ = 2^252 + 27742317777372353535851937790883648493
//
// In package code it is used only for the literal double-and-add subgroup
// check in isTorsionFree below (the tests also use it to build S + ℓ) —
// never passed through edwards25519.Scalar, whose
// canonical/uniform constructors always reduce mod ℓ and so cannot
// represent ℓ itself.
var curveOrderBytes = [32]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// isSmallOrder reports whether p's order divides the cofactor (8), i.e.
// whether p lies in Curve25519's 8-element torsion subgroup. Mirrors the
// teacher's PointClearCofactor-then-compare-to-identity idiom from
// zed/vrf.go, generalized to filippo.io/edwards25519's Point type.
func isSmallOrder(p *edwards25519.Point) bool {
	cleared := edwards25519.NewIdentityPoint().MultByCofactor(p)
	return cleared.Equal(edwards25519.NewIdentityPoint()) == 1
}

// isTorsionFree reports whether p lies entirely in the prime-order (ℓ)
// subgroup, i.e. ℓ·p == identity. Computed by a manual double-and-add over
// the literal bits of ℓ using only Point.Add, since it must hold even for
// points whose order is not coprime with ℓ reduction (the Scalar type
// cannot carry the value ℓ itself). Because gcd(ℓ, 8) == 1, this single
// check also rejects every small-order point other than the identity. The
// identity itself is torsion-free (ℓ·O == O), so isSmallOrder is the only
// one of the two checks that rejects it.
func isTorsionFree(p *edwards25519.Point) bool {
	result := edwards25519.NewIdentityPoint()
	base := edwards25519.NewIdentityPoint().Set(p)

	for _, b := range curveOrderBytes {
		for bit := 0; bit < 8; bit++ {
			if (b>>uint(bit))&1 == 1 {
				result.Add(result, base)
			}
			base.Add(base, base)
		}
	}

	return result.Equal(edwards25519.NewIdentityPoint()) == 1
}
