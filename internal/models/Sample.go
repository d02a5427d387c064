package models

// SampleRoutes are the built-in Squamish classics shown on first load, before
// the user has drawn or imported anything. Paths are coarse traces up the
// Chief; heights are meters above the ellipsoid.
func SampleRoutes() []RouteRecord {
	return []RouteRecord{
		{
			Name:        "Grand Wall",
			Grade:       "5.11",
			Length:      400,
			Pitches:     10,
			Description: "The proudest line on the Chief. Perfect granite from the Split Pillar to Bellygood Ledge.",
			FirstAscent: "Jim Baldwin and Ed Cooper, 1961",
			Coordinates: []Coordinate{
				{Longitude: -123.15210, Latitude: 49.67890, Height: 75},
				{Longitude: -123.15155, Latitude: 49.67920, Height: 180},
				{Longitude: -123.15105, Latitude: 49.67955, Height: 290},
				{Longitude: -123.15060, Latitude: 49.67985, Height: 380},
				{Longitude: -123.15020, Latitude: 49.68010, Height: 475},
			},
		},
		{
			Name:        "Angel's Crest",
			Grade:       "5.10",
			Length:      350,
			Pitches:     13,
			Description: "Long ridge climb up the north side, exposed and varied with the Acrophobe towers near the top.",
			FirstAscent: "Paul Piro and Hugh Burton, 1971",
			Coordinates: []Coordinate{
				{Longitude: -123.14660, Latitude: 49.68560, Height: 160},
				{Longitude: -123.14610, Latitude: 49.68500, Height: 260},
				{Longitude: -123.14570, Latitude: 49.68440, Height: 360},
				{Longitude: -123.14530, Latitude: 49.68380, Height: 470},
				{Longitude: -123.14490, Latitude: 49.68320, Height: 560},
			},
		},
		{
			Name:        "Squamish Buttress",
			Grade:       "5.10",
			Length:      280,
			Pitches:     9,
			Description: "The easiest route to the top of the Chief, finishing up the clean 5.10c corner pitch.",
			FirstAscent: "",
			Coordinates: []Coordinate{
				{Longitude: -123.15110, Latitude: 49.68230, Height: 230},
				{Longitude: -123.15060, Latitude: 49.68220, Height: 330},
				{Longitude: -123.15000, Latitude: 49.68205, Height: 420},
				{Longitude: -123.14945, Latitude: 49.68190, Height: 510},
			},
		},
	}
}
