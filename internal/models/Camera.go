package models

// CameraPreset is a saved viewpoint the viewer can fly to. Heading and pitch
// are degrees; pitch is negative when looking down.
type CameraPreset struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
	Heading   float64 `json:"heading"`
	Pitch     float64 `json:"pitch"`
}

// CameraPresets are the built-in viewpoints around the Stawamus Chief.
func CameraPresets() []CameraPreset {
	return []CameraPreset{
		{Name: "Overview", Longitude: -123.1720, Latitude: 49.6660, Height: 2400, Heading: 35, Pitch: -30},
		{Name: "Grand Wall", Longitude: -123.1540, Latitude: 49.6790, Height: 650, Heading: 80, Pitch: -10},
		{Name: "Apron", Longitude: -123.1560, Latitude: 49.6830, Height: 500, Heading: 110, Pitch: -15},
		{Name: "Summit", Longitude: -123.1445, Latitude: 49.6815, Height: 1100, Heading: 250, Pitch: -45},
	}
}
