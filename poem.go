// SPDX-License-Identifier: EPL-2.0

package poemaudio

import (
	"context"
	"sync"

	"github.com/ik5/poemaudio/internal/logger"
	"github.com/ik5/poemaudio/tts"
	"github.com/ik5/poemaudio/wavurl"
)

// PoemText is the poem written inside the letter.
const PoemText = `هي نارٌ خُلقت لتضيء،
وهو ثلجٌ يرى في الاشتعال خطرًا.
هي صبحٌ يمشي بخطى واضحة،
وهو ليلٌ يرتاح في الظلال.
لا عيب في الليل،
ولا نقص في الثلج،
لكن الشمس إن انطفأت كي لا تذيب الجليد،
لم تعد شمسًا.
تعبت من محاولة الاعتدال بين الاحتراق والتجمد،
من أن تقيس وهجها كي لا يذوب ما حولها،
ومن أن تعتذر عن الضوء كأنه خطيئة.
- روان`

// Prompt wraps a poem in the reading instruction sent to the speech model.
func Prompt(poem string) string {
	return "Read this Arabic poem beautifully and emotionally as an Arabian girl: " + poem
}

// RequestPoemAudio has synth read PoemText and returns the result as a WAV data URL.
//
// Any failure is logged and reported as ok == false: no audio is a valid
// state and callers should simply hide playback controls.
func RequestPoemAudio(ctx context.Context, synth tts.Synthesizer) (url string, ok bool) {
	speech, err := synth.Synthesize(ctx, Prompt(PoemText))
	if err != nil {
		logger.Log.ErrorContext(ctx, "generating poem audio", "error", err)
		return "", false
	}

	if err := wavurl.Validate(speech.PCM, speech.SampleRate); err != nil {
		logger.Log.ErrorContext(ctx, "unusable poem audio", "error", err)
		return "", false
	}

	return wavurl.FromPCM(speech.PCM, speech.SampleRate), true
}

// Cache requests the poem audio once and serves that answer, audio or absence,
// for the rest of the process.
type Cache struct {
	synth tts.Synthesizer

	once sync.Once
	url  string
	ok   bool
}

func NewCache(synth tts.Synthesizer) *Cache {
	return &Cache{synth: synth}
}

// Get blocks until the single request has finished. A cancelled caller does
// not cancel the shared request.
func (c *Cache) Get(ctx context.Context) (string, bool) {
	c.once.Do(func() {
		c.url, c.ok = RequestPoemAudio(context.WithoutCancel(ctx), c.synth)
	})

	return c.url, c.ok
}
