// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	// 32767 keeps +1.0 from overflowing.
	return int16(x * 32767.0)
}

// Int16ToFloat32 scales a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(s int16) float32 {
	return float32(s) / 32768.0
}

// IntToFloat32 scales an integer PCM sample of the given bit depth to
// [-1, 1). Unknown depths are treated as 16-bit.
func IntToFloat32(s int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(s) / 128.0
	case 24:
		return float32(s) / 8388608.0
	case 32:
		return float32(s) / 2147483648.0
	default:
		return float32(s) / 32768.0
	}
}
