// SPDX-License-Identifier: EPL-2.0

// Package scene loads the two files that describe a render: the speaker
// layout and the spatial instructions (per-source keyframes).
//
// Both may be written as JSON or YAML; the file extension decides. A layout
// file looks like
//
//	{
//	  "unit": "degrees",
//	  "speakers": [
//	    {"az": 0,  "el": 0, "radius": 5.0, "channel": 1},
//	    {"az": 90, "el": 0, "radius": 5.0, "channel": 2}
//	  ]
//	}
//
// where "channel" is the hardware channel. Output channels are assigned
// 0..N-1 in file order. "unit" defaults to radians.
//
// Spatial instructions carry the sample rate and a list of keyframes per
// source, each with a time in seconds and a Cartesian direction:
//
//	{
//	  "sampleRate": 48000,
//	  "sources": {
//	    "voice": [
//	      {"time": 0.0, "cart": [1, 0, 0]},
//	      {"time": 2.5, "cart": [0, 1, 0]}
//	    ]
//	  }
//	}
//
// Keyframes are sorted by time on load.
package scene
