// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 clamps x to [-1, 1] and scales it to the int16 range.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// 32767 so +1.0 does not overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 normalizes a PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// AppendInt16LE returns a copy of dst followed by samples as little-endian 16-bit PCM.
func AppendInt16LE(dst []byte, samples []int16) []byte {
	out := make([]byte, len(dst), len(dst)+len(samples)*2)
	copy(out, dst)

	for _, s := range samples {
		out = binary.LittleEndian.AppendUint16(out, uint16(s))
	}

	return out
}
