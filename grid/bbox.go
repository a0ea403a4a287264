// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grid

// BoundingBox is a geographic bounding box in degrees, adapted from h3go's
// bbox.go (BBox/bboxCenter/bboxContains/bboxIsTransmeridian), reauthored in
// degrees since the rest of this package works in degrees rather than
// radians.
type BoundingBox struct {
	North, South float64
	East, West   float64
}

// IsTransmeridian reports whether the box crosses the antimeridian (its east
// edge numerically precedes its west edge).
func (b BoundingBox) IsTransmeridian() bool {
	return b.East < b.West
}

// Center returns the box's center coordinate, shifting east by 360 degrees
// before averaging when the box is transmeridian, then constraining the
// result back into [-180, 180].
func (b BoundingBox) Center() Coord {
	east := b.East
	if b.IsTransmeridian() {
		east += 360
	}
	return Coord{
		LatDeg: (b.North + b.South) / 2,
		LonDeg: constrainLon((east + b.West) / 2),
	}
}

// Contains reports whether c falls within the box, accounting for the
// antimeridian wraparound case.
func (b BoundingBox) Contains(c Coord) bool {
	if c.LatDeg < b.South || c.LatDeg > b.North {
		return false
	}
	if b.IsTransmeridian() {
		return c.LonDeg >= b.West || c.LonDeg <= b.East
	}
	return c.LonDeg >= b.West && c.LonDeg <= b.East
}
