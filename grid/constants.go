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

// Package grid is the thin boundary between geosyllable and the hexagonal
// global grid: coordinate/cell conversion, cell hierarchy, and base-cell
// neighbors. Everything outside this package only ever sees CellID, the
// hierarchical tuple, and the neighbor/base-cell operations below — no
// caller reaches past this package for grid geometry.
//
// The constants and distance/azimuth math here are carried over from
// isbang/h3go's geocoord.go and constants.go, since that math (great-circle
// distance, azimuth-and-distance projection, per-resolution edge lengths) is
// resolution-generic and does not depend on the base-cell table.
package grid

import "math"

const (
	// earth radius in kilometers, WGS84 authalic radius.
	earthRadiusKm = 6371.007180918475

	// pi / 180, used to convert degrees to radians.
	piOver180 = math.Pi / 180

	// MaxResolution is the finest resolution this adapter supports. The
	// system only ever operates at this resolution (spec-fixed at 15).
	MaxResolution = 15

	// NumBaseCells is the number of top-level cells in the grid.
	NumBaseCells = 122

	// Aperture is the number of children each cell has at the next
	// resolution (a septary tree: digits 0..6).
	Aperture = 7
)

// edgeLengthKm is the average hexagon edge length, in kilometers, at each
// resolution 0..15. Values are h3go's own EdgeLengthKm table (geocoord.go);
// real-world H3 constants, independent of the (omitted) base-cell table.
var edgeLengthKm = [...]float64{
	1107.712591, 418.6760055, 158.2446558, 59.81085794,
	22.6063794, 8.544408276, 3.229482772, 1.220629759,
	0.461354684, 0.174375668, 0.065907807, 0.024910561,
	0.009415526, 0.003559893, 0.001348575, 0.000509713,
}

// EdgeLengthKm returns the average hexagon edge length, in kilometers, at
// the given resolution.
func EdgeLengthKm(res int) float64 { return edgeLengthKm[res] }

func degsToRads(deg float64) float64 { return deg * piOver180 }
func radsToDegs(rad float64) float64 { return rad / piOver180 }
