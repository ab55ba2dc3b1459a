// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// LocationSample is one position reading from the device.
type LocationSample struct {
	Latitude  float64   `json:"latitude"`  // WGS84 degrees.
	Longitude float64   `json:"longitude"` // WGS84 degrees.
	Accuracy  float64   `json:"accuracy"`  // Horizontal accuracy in meters (1 sigma).
	Speed     *float64  `json:"speed,omitempty"`
	Bearing   *float64  `json:"bearing,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the sample position as an orb lon/lat point.
func (s *LocationSample) Point() orb.Point {
	return orb.Point{s.Longitude, s.Latitude}
}

// WithinAccuracy reports whether the sample meets the accuracy ceiling.
// Samples above the ceiling must never be forwarded to the publisher.
func (s *LocationSample) WithinAccuracy(ceiling float64) bool {
	return s.Accuracy <= ceiling
}

// HasValidCoordinates checks the sample lies within WGS84 bounds.
func (s *LocationSample) HasValidCoordinates() bool {
	return s.Latitude >= -90 && s.Latitude <= 90 &&
		s.Longitude >= -180 && s.Longitude <= 180
}
