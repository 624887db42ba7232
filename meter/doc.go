// SPDX-License-Identifier: EPL-2.0

// Package meter measures the levels of a rendered multichannel signal.
//
// Each channel is cut into fixed windows (one second by default) and the RMS
// of every window is reported in dBFS, with 0 dB at a full scale of 1.0 and a
// floor of -120 dB for digital silence. Alongside the windowed levels the
// report carries the peak of each channel, the number of samples outside
// [-1, 1] that the PCM writers will clamp, and the channels that never rise
// above the floor.
//
//	rep, err := meter.Analyze(out, meter.DefaultWindow)
//	if err != nil {
//		return err
//	}
//	if rep.AllSilent() {
//		logger.Warn("render: output is silent")
//	}
//
// A trailing window shorter than the window length is measured over the
// samples it has.
package meter
