package geom

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/katalvlaran/hypertile/matrix"
)

// Geometry is an immutable geometry descriptor. Construct it with New,
// Product, Embedded, ByName or one of the named constructors; the zero
// value is not usable.
type Geometry struct {
	name    string
	class   Class
	mdim    int
	gdim    int
	sig     Point
	flags   Flag
	under   *Geometry
	embed   Embedding
	logical *Geometry
	m       model
	opts    options
	monitor *PrecisionMonitor
	log     *slog.Logger
}

// New builds an isotropic (Euclid, Hyperbolic, Sphere; dim 2 or 3) or
// non-isotropic (Nil, Sol, SL2; dim 3) geometry.
func New(class Class, dim int, opts ...Option) (*Geometry, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch class {
	case ClassEuclid, ClassHyperbolic, ClassSphere:
		if dim != 2 && dim != 3 {
			return nil, fmt.Errorf("%w: %s in dimension %d", ErrUnsupported, class, dim)
		}
	case ClassNil, ClassSol, ClassSL2:
		if dim != 3 {
			return nil, fmt.Errorf("%w: %s in dimension %d", ErrUnsupported, class, dim)
		}
	default:
		return nil, fmt.Errorf("%w: class %s via New", ErrUnsupported, class)
	}
	name := class.String()
	if dim == 3 && !class.Nonisotropic() {
		name += "3"
	}
	return build(name, class, dim, o, nil), nil
}

func build(name string, class Class, dim int, o options, under *Geometry) *Geometry {
	g := &Geometry{
		name:  name,
		class: class,
		gdim:  dim,
		mdim:  dim + 1,
		opts:  o,
		under: under,
		log:   o.logger,
	}
	if o.affine && class == ClassEuclid {
		g.flags |= FlagAffine
	}
	g.monitor = o.monitor
	if g.monitor == nil {
		g.monitor = NewPrecisionMonitor(o.logger)
	}
	switch class {
	case ClassEuclid:
		for i := 0; i < dim; i++ {
			g.sig[i] = 1
		}
		g.m = euclidModel{base{g}}
	case ClassHyperbolic:
		for i := 0; i < dim; i++ {
			g.sig[i] = 1
		}
		g.sig[dim] = -1
		g.m = hyperbolicModel{base{g}}
	case ClassSphere:
		for i := 0; i <= dim; i++ {
			g.sig[i] = 1
		}
		g.m = sphereModel{base{g}}
	case ClassProduct:
		// the level lives in the overall scale: three homogeneous coordinates
		g.mdim = 3
		g.sig = under.sig
		g.m = productModel{base{g}}
	case ClassNil:
		g.sig = Point{1, 1, 1, 0}
		g.m = newNilModel(g)
	case ClassSol:
		g.sig = Point{1, 1, 1, 0}
		g.m = newSolModel(g)
	case ClassSL2:
		g.sig = Point{1, 1, -1, -1}
		g.m = newSL2Model(g)
	}
	return g
}

func must(g *Geometry, err error) *Geometry {
	if err != nil {
		panic(err)
	}
	return g
}

// Euclid2 is the Euclidean plane.
func Euclid2(opts ...Option) *Geometry { return must(New(ClassEuclid, 2, opts...)) }

// Hyperbolic2 is the hyperbolic plane (hyperboloid model).
func Hyperbolic2(opts ...Option) *Geometry { return must(New(ClassHyperbolic, 2, opts...)) }

// Sphere2 is the unit sphere.
func Sphere2(opts ...Option) *Geometry { return must(New(ClassSphere, 2, opts...)) }

// Elliptic2 is the elliptic plane: the sphere with antipodes identified.
func Elliptic2(opts ...Option) *Geometry {
	g := must(New(ClassSphere, 2, opts...))
	g.flags |= FlagElliptic
	g.name = "elliptic"
	return g
}

// Euclid3 is Euclidean space.
func Euclid3(opts ...Option) *Geometry { return must(New(ClassEuclid, 3, opts...)) }

// Hyperbolic3 is hyperbolic space.
func Hyperbolic3(opts ...Option) *Geometry { return must(New(ClassHyperbolic, 3, opts...)) }

// Sphere3 is the 3-sphere.
func Sphere3(opts ...Option) *Geometry { return must(New(ClassSphere, 3, opts...)) }

// Nil is the Heisenberg group geometry.
func Nil(opts ...Option) *Geometry { return must(New(ClassNil, 3, opts...)) }

// Sol is the Sol (solvegeometry) group.
func Sol(opts ...Option) *Geometry { return must(New(ClassSol, 3, opts...)) }

// SL2 is the (universal cover of) SL(2,R) geometry.
func SL2(opts ...Option) *Geometry { return must(New(ClassSL2, 3, opts...)) }

// Product builds factor×R for an isotropic 2D factor. The level (R
// coordinate) is encoded as the logarithm of the overall scale of the point.
func Product(factor *Geometry, opts ...Option) (*Geometry, error) {
	if factor == nil || factor.gdim != 2 || factor.class.Nonisotropic() ||
		factor.class == ClassProduct || factor.embed != EmbedNone || factor.Elliptic() {
		return nil, fmt.Errorf("%w: product over %v", ErrUnsupported, factor)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	name := map[Class]string{ClassEuclid: "e2xr", ClassHyperbolic: "h2xr", ClassSphere: "s2xr"}[factor.class]
	return build(name, ClassProduct, 3, o, factor), nil
}

// Embedded builds a 3D host geometry carrying the 2D logical plane.
//
//   - EmbedSameInSame: logical must be Euclid2, Hyperbolic2 or Sphere2;
//     the host is the 3D geometry of the same class.
//   - EmbedEucInHyp: logical must be Euclid2; the host is Hyperbolic3 and
//     the plane is the horosphere through the origin.
func Embedded(kind Embedding, logical *Geometry, opts ...Option) (*Geometry, error) {
	if logical == nil || logical.gdim != 2 || logical.mdim != 3 || logical.class.Nonisotropic() || logical.Elliptic() {
		return nil, fmt.Errorf("%w: embedding of %v", ErrUnsupported, logical)
	}
	var host *Geometry
	var err error
	switch kind {
	case EmbedSameInSame:
		host, err = New(logical.class, 3, opts...)
	case EmbedEucInHyp:
		if logical.class != ClassEuclid {
			return nil, fmt.Errorf("%w: euc-in-hyp over %s", ErrUnsupported, logical.class)
		}
		host, err = New(ClassHyperbolic, 3, opts...)
	default:
		return nil, fmt.Errorf("%w: embedding %s", ErrUnsupported, kind)
	}
	if err != nil {
		return nil, err
	}
	host.embed = kind
	host.logical = logical
	host.name = map[Embedding]string{EmbedSameInSame: logical.class.String()[:3] + "-in-" + logical.class.String()[:3], EmbedEucInHyp: "euc-in-hyp"}[kind]
	return host, nil
}

var registry = map[string]func(opts ...Option) (*Geometry, error){
	"euclid":      func(o ...Option) (*Geometry, error) { return New(ClassEuclid, 2, o...) },
	"hyperbolic":  func(o ...Option) (*Geometry, error) { return New(ClassHyperbolic, 2, o...) },
	"sphere":      func(o ...Option) (*Geometry, error) { return New(ClassSphere, 2, o...) },
	"elliptic":    func(o ...Option) (*Geometry, error) { return Elliptic2(o...), nil },
	"euclid3":     func(o ...Option) (*Geometry, error) { return New(ClassEuclid, 3, o...) },
	"hyperbolic3": func(o ...Option) (*Geometry, error) { return New(ClassHyperbolic, 3, o...) },
	"sphere3":     func(o ...Option) (*Geometry, error) { return New(ClassSphere, 3, o...) },
	"nil":         func(o ...Option) (*Geometry, error) { return New(ClassNil, 3, o...) },
	"sol":         func(o ...Option) (*Geometry, error) { return New(ClassSol, 3, o...) },
	"sl2":         func(o ...Option) (*Geometry, error) { return New(ClassSL2, 3, o...) },
	"h2xr":        func(o ...Option) (*Geometry, error) { return Product(Hyperbolic2(o...), o...) },
	"s2xr":        func(o ...Option) (*Geometry, error) { return Product(Sphere2(o...), o...) },
	"e2xr":        func(o ...Option) (*Geometry, error) { return Product(Euclid2(o...), o...) },
	"euc-in-hyp":  func(o ...Option) (*Geometry, error) { return Embedded(EmbedEucInHyp, Euclid2(o...), o...) },
	"hyp-in-hyp":  func(o ...Option) (*Geometry, error) { return Embedded(EmbedSameInSame, Hyperbolic2(o...), o...) },
}

// ByName resolves a geometry by its registry name (case-insensitive).
func ByName(name string, opts ...Option) (*Geometry, error) {
	f, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGeometry, name)
	}
	return f(opts...)
}

// Names lists the registry names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Name is the registry-style name of g.
func (g *Geometry) Name() string { return g.name }

func (g *Geometry) String() string {
	if g == nil {
		return "<nil geometry>"
	}
	return g.name
}

// Class is the curvature family.
func (g *Geometry) Class() Class { return g.class }

// MDim is the number of homogeneous coordinates (3 or 4).
func (g *Geometry) MDim() int { return g.mdim }

// GDim is the number of visible dimensions (2 or 3).
func (g *Geometry) GDim() int { return g.gdim }

// LDim is the index of the last homogeneous coordinate.
func (g *Geometry) LDim() int { return g.mdim - 1 }

// WDim is the dimension of the world: 2 for an embedded plane, GDim otherwise.
func (g *Geometry) WDim() int {
	if g.embed != EmbedNone {
		return 2
	}
	return g.gdim
}

// Sig is the signature of coordinate i in the quadratic form.
func (g *Geometry) Sig(i int) float64 { return g.sig[i] }

// Flags returns the property flags.
func (g *Geometry) Flags() Flag { return g.flags }

// Affine reports FlagAffine.
func (g *Geometry) Affine() bool { return g.flags&FlagAffine != 0 }

// Elliptic reports FlagElliptic.
func (g *Geometry) Elliptic() bool { return g.flags&FlagElliptic != 0 }

// Underlying is the factor of a product geometry, nil otherwise.
func (g *Geometry) Underlying() *Geometry { return g.under }

// Embedding is the embedding kind of a host geometry.
func (g *Geometry) Embedding() Embedding { return g.embed }

// Logical is the embedded 2D plane of a host geometry, nil otherwise.
func (g *Geometry) Logical() *Geometry { return g.logical }

// Nonisotropic reports Nil, Sol and SL2.
func (g *Geometry) Nonisotropic() bool { return g.class.Nonisotropic() }

// Translatable reports geometries whose translations are plain group
// translations (Euclidean and non-isotropic ones).
func (g *Geometry) Translatable() bool { return g.class == ClassEuclid || g.Nonisotropic() }

// IsProduct reports the product class.
func (g *Geometry) IsProduct() bool { return g.class == ClassProduct }

// Monitor is the precision monitor used by SamePointMayWarn.
func (g *Geometry) Monitor() *PrecisionMonitor { return g.monitor }

// Logger is the geometry's logger.
func (g *Geometry) Logger() *slog.Logger { return g.log }

// C0 is the origin of the model.
func (g *Geometry) C0() Point {
	var h Point
	h[g.LDim()] = 1
	return h
}

// Hypc is the zero vector, used as the second argument of Intval to
// evaluate the quadratic form.
var Hypc = matrix.Zpoint
