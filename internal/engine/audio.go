package engine

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Sound identifies a one-shot sound effect.
type Sound int

const (
	SoundBeep Sound = iota
)

// AudioSystem plays procedurally generated sounds fed through a channel.
// Delivery is fire-and-forget: the producer side never blocks and sounds sent
// while the queue is full are dropped.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

// StartAudio initializes the audio device and starts the consumer goroutine.
// The returned channel is the app-facing sound sink.
func StartAudio() (chan<- Sound, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	a := &AudioSystem{ctx: ctx, ready: ready}

	sounds := make(chan Sound, 16)
	go a.consume(sounds)
	return sounds, nil
}

func (a *AudioSystem) consume(sounds <-chan Sound) {
	<-a.ready
	for s := range sounds {
		samples := generateSound(s)
		if len(samples) == 0 {
			continue
		}
		go a.play(samples)
	}
}

func (a *AudioSystem) play(samples []byte) {
	player := a.ctx.NewPlayer(&soundReader{data: samples})
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	player.Close()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels
// at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// makeBuf allocates a stereo float32 buffer for n samples.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generateSound(s Sound) []byte {
	switch s {
	case SoundBeep:
		return genBeep()
	}
	return nil
}

// genBeep: short square-ish blip used for movement and rotation feedback.
func genBeep() []byte {
	n := int(0.05 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.3, 0.4, 0.3)
		// Soft square: fundamental plus a third harmonic.
		s := math.Sin(2*math.Pi*880*t) * 0.18
		s += math.Sin(2*math.Pi*880*3*t) * 0.06
		putStereoF32(buf, i, s*env)
	}
	return buf
}
