// Package engine aggregates the field, curve and scratch-allocator layers
// into the single per-goroutine Context the rest of the core is built
// around, and names the build-time configuration surface that used to be
// compile-time macros in the source library.
//
// A Context must not be shared across goroutines except for read-only
// fixed-base tables (the same restriction the source library places on
// its per-thread static context): every operation that touches its Arena
// assumes single-threaded access.
package engine

import (
	"github.com/relicgo/corelic/arena"
	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/eb"
	"github.com/relicgo/corelic/ep"
	"github.com/relicgo/corelic/errs"
	"github.com/relicgo/corelic/fb"
	"github.com/relicgo/corelic/fp"
)

// bytesToVec decodes a big-endian byte string into the little-endian
// digit vector layout fp.NewContext expects for a modulus.
func bytesToVec(b []byte) dv.Vec {
	digs := (len(b) + 7) / 8
	v := make(dv.Vec, digs)
	for i, bi := range b {
		pos := len(b) - 1 - i
		v[pos/8] |= dv.Digit(bi) << uint((pos%8)*8)
	}
	return v
}

// Method names one of the scalar-multiplication strategies a Config can
// request for the prime-curve (ep) or binary-curve (eb) layer.
type Method string

const (
	MethodBasic  Method = "basic"
	MethodLWNAF  Method = "lwnaf"
	MethodRWNAF  Method = "rwnaf"
	MethodLadder Method = "ladder" // ep only: constant-time Jacobian ladder
	MethodLODAH  Method = "lodah"  // eb only: constant-time López-Dahab ladder
	MethodTauNAF Method = "taunaf" // eb only: requires a Koblitz curve (A in {0,1})
	MethodHalve  Method = "halve"  // eb only: requires an explicit subgroup order
)

// Config names every build-time parameter the source library fixed at
// compile time. WordSize is carried as a field for documentation purposes
// only: this module targets 64-bit digits exclusively (see DESIGN.md's
// open-question resolution on W), so New rejects any other value instead
// of silently ignoring it.
type Config struct {
	WordSize int // 0 or 64 (0 means 64)

	// Prime-field curve. Modulus and A/B are big-endian byte strings,
	// the same encoding ep_test.go's fixtures use.
	PrimeBits int
	Modulus   []byte
	PrimeA    []byte
	PrimeB    []byte

	// Binary-field curve, optional: set PolyDegree > 0 to configure one.
	PolyDegree    int
	PolyExtra     []int // reduction polynomial exponents besides m and 0
	BinaryA       uint64
	BinaryB       uint64
	Supersingular bool // declares the binary curve supersingular: New rejects MethodLODAH

	// Order, required only by methods that need it (MethodHalve).
	SubgroupOrder []byte

	// Window width for the *WNAF / LODAH / tau-NAF variants.
	WindowWidth int

	PrimeMethod  Method
	BinaryMethod Method
}

// Context is the built, immutable-after-construction aggregate a caller
// uses for every subsequent operation: one fp.Context, one ep.Curve, and
// — when Config requested a binary curve — one fb.Context and eb.Curve.
// It owns one Arena, shared with Fp and Fb so every Mul/Sqr double-width
// scratch buffer in either field layer is pool-backed, never held across
// a goroutine handoff.
type Context struct {
	Fp    *fp.Context
	Ep    *ep.Curve

	Fb *fb.Context // nil unless Config configured a binary curve
	Eb *eb.Curve   // nil unless Config configured a binary curve

	Order *bn.Int // subgroup order, nil unless Config.SubgroupOrder was set

	Arena *arena.Arena

	primeMethod  Method
	binaryMethod Method
	windowWidth  int
}

// New builds a Context from cfg, validating every combination the
// source library would have caught with a compile-time #error and a few
// more only detectable once the curve shape is known (Koblitz-only
// methods requested against a non-Koblitz A, MethodLODAH requested on a
// curve declared supersingular, MethodHalve requested without an order).
func New(cfg Config) (*Context, error) {
	if cfg.WordSize != 0 && cfg.WordSize != 64 {
		return nil, errs.Wrapf(errs.NoValidConfig, "word size %d unsupported, this module targets 64-bit digits only", cfg.WordSize)
	}
	if len(cfg.Modulus) == 0 {
		return nil, errs.Wrap(errs.NoValidConfig, "prime-field modulus is required")
	}

	pf, err := fp.NewContext(bytesToVec(cfg.Modulus))
	if err != nil {
		return nil, errs.Wrapf(errs.NoValidConfig, "prime field context: %v", err)
	}
	var a, b fp.Elt
	if len(cfg.PrimeA) > 0 {
		a = pf.FromBytes(cfg.PrimeA)
	} else {
		a = pf.New()
	}
	if len(cfg.PrimeB) > 0 {
		b = pf.FromBytes(cfg.PrimeB)
	} else {
		b = pf.New()
	}
	epCurve := &ep.Curve{F: pf, A: a, B: b}

	c := &Context{
		Fp:          pf,
		Ep:          epCurve,
		Arena:       arena.New(),
		primeMethod: cfg.PrimeMethod,
		windowWidth: cfg.WindowWidth,
	}
	pf.Arena = c.Arena
	if c.windowWidth == 0 {
		c.windowWidth = 4
	}

	switch cfg.PrimeMethod {
	case "", MethodBasic, MethodLWNAF, MethodRWNAF, MethodLadder:
	default:
		return nil, errs.Wrapf(errs.NoValidConfig, "prime-curve method %q is not one of basic/lwnaf/rwnaf/ladder", cfg.PrimeMethod)
	}

	if cfg.PolyDegree > 0 {
		bf, err := fb.NewContext(cfg.PolyDegree, cfg.PolyExtra)
		if err != nil {
			return nil, errs.Wrapf(errs.NoValidConfig, "binary field context: %v", err)
		}
		bf.Arena = c.Arena
		ebCurve := &eb.Curve{F: bf, A: bf.FromUint64(cfg.BinaryA), B: bf.FromUint64(cfg.BinaryB)}
		c.Fb = bf
		c.Eb = ebCurve
		c.binaryMethod = cfg.BinaryMethod

		isKoblitz := cfg.BinaryA == 0 || cfg.BinaryA == 1
		switch cfg.BinaryMethod {
		case "", MethodBasic, MethodLWNAF, MethodRWNAF:
		case MethodLODAH:
			if cfg.Supersingular {
				return nil, errs.Wrap(errs.NoValidConfig, "LODAH ladder is not supported on a supersingular binary curve")
			}
		case MethodTauNAF:
			if !isKoblitz {
				return nil, errs.Wrap(errs.NoValidConfig, "tau-NAF requires a Koblitz curve (A must be 0 or 1)")
			}
		case MethodHalve:
			if len(cfg.SubgroupOrder) == 0 {
				return nil, errs.Wrap(errs.NoValidConfig, "point halving requires an explicit subgroup order")
			}
		default:
			return nil, errs.Wrapf(errs.NoValidConfig, "binary-curve method %q is not recognized", cfg.BinaryMethod)
		}
	} else if cfg.BinaryMethod != "" {
		return nil, errs.Wrap(errs.NoValidConfig, "binary-curve method requested without a configured binary field (set PolyDegree)")
	}

	if len(cfg.SubgroupOrder) > 0 {
		c.Order = bn.FromBytes(cfg.SubgroupOrder)
	}

	return c, nil
}

// Close returns every scratch buffer Fp.Mul/Sqr and Fb.Mul/Sqr have
// drawn from the Context's Arena back to its pool. Callers that build a
// Context once per worker goroutine and keep it for the goroutine's
// lifetime need not call this; it exists for short-lived Contexts built
// inside a single request handler.
func (c *Context) Close() {
	c.Arena.Release()
}
