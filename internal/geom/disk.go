package geom

// Span is the closed interval [Low, High]. High may be below Low.
type Span struct {
	Low, High float64
}

func (s Span) Width() float64 { return s.High - s.Low }

// Disk is a circle. RadiusSq is cached for hit testing.
type Disk struct {
	Center   Vec2
	Radius   float64
	RadiusSq float64
}

// NewDisk builds a disk, clamping negative radii to zero.
func NewDisk(center Vec2, radius float64) Disk {
	if radius < 0 {
		radius = 0
	}
	return Disk{Center: center, Radius: radius, RadiusSq: radius * radius}
}

// Contains uses a strict comparison: points on the rim are outside.
func (d Disk) Contains(p Vec2) bool {
	return p.Sub(d.Center).LenSq() < d.RadiusSq
}

func (d Disk) XSpan() Span { return Span{d.Center.X - d.Radius, d.Center.X + d.Radius} }

func (d Disk) YSpan() Span { return Span{d.Center.Y - d.Radius, d.Center.Y + d.Radius} }
