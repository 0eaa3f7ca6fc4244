package geo

import (
	"fmt"
	"math"

	"github.com/StefanSchroeder/Golang-Ellipsoid/ellipsoid"
	"jonwillia.ms/navlinks/navapp"
)

var geo1 = ellipsoid.Init("WGS84", ellipsoid.Degrees, ellipsoid.Meter, ellipsoid.LongitudeIsSymmetric, ellipsoid.BearingIsSymmetric)

// Distance returns meters and bearing in degrees from one point to another.
func Distance(from, to navapp.Coordinate) (float64, float64) {
	return geo1.To(from.Lat, from.Lon, to.Lat, to.Lon)
}

// Direction names the compass point closest to bearing.
func Direction(bearing float64) string {
	const degrees = 360
	dirs := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	bearing = math.Mod(bearing, degrees)
	if bearing < 0 {
		bearing += degrees
	}
	dirSize := float64(degrees) / float64(len(dirs))
	idx := int(math.Round(bearing/dirSize)) % len(dirs)
	return dirs[idx]
}

func FormatDistance(meters float64) string {
	if meters > 10000 {
		return fmt.Sprintf("%.1fkm", meters/1000)
	}
	return fmt.Sprintf("%.0fm", meters)
}
