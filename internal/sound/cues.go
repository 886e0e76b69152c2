// Package sound plays the short cues that confirm a run state toggle.
package sound

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// resampleQuality is passed to beep.Resample when cue rates differ
const resampleQuality = 4

// Cues holds the decoded activate and deactivate sounds.
type Cues struct {
	activate   *beep.Buffer
	deactivate *beep.Buffer
}

// LoadCues decodes both wav files and opens the speaker at the activate
// cue's sample rate. Either file failing to open or decode is fatal to the
// caller.
func LoadCues(activatePath, deactivatePath string) (*Cues, error) {
	activate, err := loadWAV(activatePath)
	if err != nil {
		return nil, err
	}

	deactivate, err := loadWAV(deactivatePath)
	if err != nil {
		return nil, err
	}

	rate := activate.Format().SampleRate
	if deactivate.Format().SampleRate != rate {
		deactivate = resample(deactivate, rate)
	}

	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to open audio output: %w", err)
	}

	return &Cues{activate: activate, deactivate: deactivate}, nil
}

func loadWAV(path string) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to decode sound %s: %w", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

func resample(buffer *beep.Buffer, rate beep.SampleRate) *beep.Buffer {
	format := buffer.Format()
	resampled := beep.Resample(resampleQuality, format.SampleRate, rate, buffer.Streamer(0, buffer.Len()))

	format.SampleRate = rate
	out := beep.NewBuffer(format)
	out.Append(resampled)
	return out
}

// Announce plays the cue for the new state and returns once playback ends.
func (c *Cues) Announce(active bool) {
	cue := c.deactivate
	if active {
		cue = c.activate
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(cue.Streamer(0, cue.Len()), beep.Callback(func() {
		close(done)
	})))
	<-done
}

// Close releases the audio device
func (c *Cues) Close() {
	speaker.Close()
}
