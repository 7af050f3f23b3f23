// SPDX-License-Identifier: EPL-2.0

package utils

func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping
// anything outside that range.
func Float32ToInt16(x float32) int16 {
	// Use 32767 for positive max to avoid overflow
	return int16(clampUnit(x) * 32767.0)
}

// Float32ToInt converts a sample to a signed PCM value of the given bit
// depth, as stored in a go-audio IntBuffer.
func Float32ToInt(x float32, bitDepth int) int {
	maxVal := float32(int64(1)<<(bitDepth-1) - 1)
	return int(clampUnit(x) * maxVal)
}

// IntToFloat32 normalizes a signed PCM value of the given bit depth to
// [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(v, bitDepth int) float32 {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		bitDepth = 16
	}
	return float32(float64(v) / float64(int64(1)<<(bitDepth-1)))
}
