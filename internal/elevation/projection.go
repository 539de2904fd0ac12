package elevation

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// EPSG codes of the coordinate systems ANLA deliveries use.
const (
	WGS84          = 4326
	OrigenNacional = 9377 // MAGNA-SIRGAS / Origen-Nacional, the default
)

// GRS80 ellipsoid, shared by MAGNA-SIRGAS and WGS84 at this precision.
const (
	grs80A = 6378137.0
	grs80F = 1 / 298.257222101
)

// TransverseMercator is a projected CRS on the GRS80 ellipsoid. Angles are in
// degrees, offsets in metres.
type TransverseMercator struct {
	Lat0          float64
	Lon0          float64
	K0            float64
	FalseEasting  float64
	FalseNorthing float64
}

// transverseMercators are the MAGNA-SIRGAS projections by EPSG code: the
// national origin and the five legacy Gauss-Krüger zones.
var transverseMercators = map[int]TransverseMercator{
	OrigenNacional: {Lat0: 4, Lon0: -73, K0: 0.9992, FalseEasting: 5000000, FalseNorthing: 2000000},
	3114:           {Lat0: 4.596200416666666, Lon0: -80.07750791666666, K0: 1, FalseEasting: 1000000, FalseNorthing: 1000000},
	3115:           {Lat0: 4.596200416666666, Lon0: -77.07750791666666, K0: 1, FalseEasting: 1000000, FalseNorthing: 1000000},
	3116:           {Lat0: 4.596200416666666, Lon0: -74.07750791666666, K0: 1, FalseEasting: 1000000, FalseNorthing: 1000000},
	3117:           {Lat0: 4.596200416666666, Lon0: -71.07750791666666, K0: 1, FalseEasting: 1000000, FalseNorthing: 1000000},
	3118:           {Lat0: 4.596200416666666, Lon0: -68.07750791666666, K0: 1, FalseEasting: 1000000, FalseNorthing: 1000000},
}

// ProjectorFor returns the projector converting points of the given EPSG
// code to WGS84. Points that already look like longitude/latitude pass
// through unchanged, so callers may mix both. WGS84 itself needs no
// projector and yields nil.
func ProjectorFor(epsg int) (Projector, error) {
	if epsg == WGS84 {
		return nil, nil
	}
	tm, ok := transverseMercators[epsg]
	if !ok {
		return nil, fmt.Errorf("unsupported source CRS EPSG:%d", epsg)
	}
	return func(p orb.Point) (orb.Point, error) {
		if isLonLat(p) {
			return p, nil
		}
		q := tm.Inverse(p)
		if !isLonLat(q) {
			return orb.Point{}, fmt.Errorf("point %v is outside EPSG:%d", p, epsg)
		}
		return q, nil
	}, nil
}

func isLonLat(p orb.Point) bool {
	return math.Abs(p.Lon()) <= 180 && math.Abs(p.Lat()) <= 90
}

// Inverse converts projected easting/northing to longitude/latitude
// (Snyder, Map Projections: A Working Manual, eq. 8-12 to 8-18).
func (tm TransverseMercator) Inverse(p orb.Point) orb.Point {
	e2 := grs80F * (2 - grs80F)
	ep2 := e2 / (1 - e2)

	m := tm.meridian(tm.Lat0*math.Pi/180) + (p.Y()-tm.FalseNorthing)/tm.K0
	mu := m / (grs80A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	phi1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sin1, cos1, tan1 := math.Sin(phi1), math.Cos(phi1), math.Tan(phi1)
	c1 := ep2 * cos1 * cos1
	t1 := tan1 * tan1
	n1 := grs80A / math.Sqrt(1-e2*sin1*sin1)
	r1 := grs80A * (1 - e2) / math.Pow(1-e2*sin1*sin1, 1.5)
	d := (p.X() - tm.FalseEasting) / (n1 * tm.K0)

	lat := phi1 - (n1*tan1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*math.Pow(d, 6)/720)
	lon := (d - (1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*math.Pow(d, 5)/120) / cos1

	return orb.Point{tm.Lon0 + lon*180/math.Pi, lat * 180 / math.Pi}
}

// meridian is the meridional arc length from the equator to phi (radians).
func (tm TransverseMercator) meridian(phi float64) float64 {
	e2 := grs80F * (2 - grs80F)
	e4, e6 := e2*e2, e2*e2*e2
	return grs80A * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}
