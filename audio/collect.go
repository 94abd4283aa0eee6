// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/poemaudio/utils"
)

// CollectPCM16 drains src and returns its samples as int16 PCM.
// Reaching io.EOF is the normal end and is not reported as an error.
func CollectPCM16(src Source, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		bufferSize = 4096
	}

	channels := src.Channels()
	buf := make([]float32, max(bufferSize-bufferSize%channels, channels))
	pcm16 := make([]int16, 0, max(src.BufSize(), bufferSize))

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}
}
