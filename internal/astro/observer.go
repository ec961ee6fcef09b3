package astro

import "fmt"

// Observer is a ground-based observer location. Values are immutable and
// passed by value into transforms and event searches, never mutated.
type Observer struct {
	Name       string
	Latitude   Angle // north positive
	Longitude  Angle // east positive
	ElevationM float64
}

// NewObserver builds an Observer from decimal-degree coordinates,
// validating the latitude range.
func NewObserver(name string, latDeg, lonDeg, elevationM float64) (Observer, error) {
	lat := Degrees(latDeg)
	if err := CheckDeclination("latitude", lat); err != nil {
		return Observer{}, err
	}
	return Observer{
		Name:       name,
		Latitude:   lat,
		Longitude:  Degrees(lonDeg).NormalizeSigned(),
		ElevationM: elevationM,
	}, nil
}

// String renders the observer as "Name: 51.5000°N, 0.0000°E, 0m".
func (o Observer) String() string {
	latDir, lonDir := "N", "E"
	lat, lon := o.Latitude.Degrees(), o.Longitude.Degrees()
	if lat < 0 {
		latDir = "S"
		lat = -lat
	}
	if lon < 0 {
		lonDir = "W"
		lon = -lon
	}
	return fmt.Sprintf("%s: %.4f°%s, %.4f°%s, %.0fm", o.Name, lat, latDir, lon, lonDir, o.ElevationM)
}
