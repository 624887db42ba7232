// SPDX-License-Identifier: EPL-2.0

// Package vbaprender renders moving mono sources onto a loudspeaker layout
// and writes one output channel per speaker.
//
// The work is split over the subpackages:
//   - trajectory interpolates each source's direction over time
//   - layout and pan hold the speakers and the panning laws (VBAP, nearest)
//   - render runs the block accumulation engine
//   - scene reads layout and spatial instruction files (JSON or YAML)
//   - sources finds and decodes the source signals in a folder
//   - formats/wav and formats/aiff write the multichannel result
//   - meter measures the levels of the result
//
// RenderJob wires them together for one job described by a config.Config:
//
//	cfg, err := config.Load("job.yaml")
//	if err != nil {
//		return err
//	}
//	res, err := vbaprender.RenderJob(ctx, cfg, logger)
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.Path, res.Output.NumChannels(), res.Meter.MaxDB)
//
// Use the subpackages directly to render signals that do not live on disk.
package vbaprender
