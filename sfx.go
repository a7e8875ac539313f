package flamerush

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Sound identifies a sound effect.
type Sound uint8

const (
	SoundCoin Sound = iota
	SoundShield
	SoundGameOver
	soundCount
)

// String returns the sound name.
func (s Sound) String() string {
	switch s {
	case SoundCoin:
		return "coin"
	case SoundShield:
		return "shield"
	case SoundGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("Sound(%d)", s)
	}
}

// SoundPlayer plays sound effects. Play must not block.
type SoundPlayer interface {
	Play(s Sound)
}

type nopSound struct{}

func (nopSound) Play(Sound) {}

// ebitenSound plays pre-rendered PCM clips through an Ebitengine audio
// context.
type ebitenSound struct {
	ctx   *audio.Context
	clips [soundCount][]byte
}

// newEbitenSound renders every clip up front. The audio context is process
// wide, so this is called at most once.
func newEbitenSound(cfg AudioConfig) (*ebitenSound, error) {
	sr := beep.SampleRate(cfg.SampleRate)
	s := &ebitenSound{ctx: audio.NewContext(cfg.SampleRate)}
	for i := range soundCount {
		st, err := soundStreamer(Sound(i), sr)
		if err != nil {
			return nil, fmt.Errorf("flamerush: synthesize %s: %w", Sound(i), err)
		}
		s.clips[i] = synthesize(withVolume(st, cfg.Volume))
	}
	return s, nil
}

func (s *ebitenSound) Play(snd Sound) {
	if int(snd) >= len(s.clips) {
		return
	}
	s.ctx.NewPlayerFromBytes(s.clips[snd]).Play()
}

// soundStreamer builds the finite streamer for a sound.
func soundStreamer(snd Sound, sr beep.SampleRate) (beep.Streamer, error) {
	switch snd {
	case SoundCoin:
		tone, err := generators.SineTone(sr, 880)
		if err != nil {
			return nil, err
		}
		return beep.Take(sr.N(60*time.Millisecond), withVolume(tone, 0.5)), nil
	case SoundShield:
		var notes []beep.Streamer
		for _, f := range []float64{440, 554.37, 659.25} {
			tone, err := generators.SineTone(sr, f)
			if err != nil {
				return nil, err
			}
			notes = append(notes, beep.Take(sr.N(60*time.Millisecond), tone))
		}
		return beep.Seq(notes...), nil
	case SoundGameOver:
		var notes []beep.Streamer
		for _, f := range []float64{220, 165, 110} {
			tone, err := generators.SineTone(sr, f)
			if err != nil {
				return nil, err
			}
			notes = append(notes, beep.Take(sr.N(130*time.Millisecond), tone))
		}
		notes = append(notes, beep.Silence(sr.N(20*time.Millisecond)))
		return withVolume(beep.Seq(notes...), 0.6), nil
	default:
		return nil, fmt.Errorf("unknown sound %d", snd)
	}
}

// withVolume scales a streamer linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// synthesize drains a finite streamer into 16-bit little-endian stereo PCM.
func synthesize(s beep.Streamer) []byte {
	var (
		out []byte
		buf [512][2]float64
	)
	for {
		n, ok := s.Stream(buf[:])
		for _, smp := range buf[:n] {
			for _, v := range smp {
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(clampSample(v)*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func clampSample(v float64) float64 {
	return max(-1, min(1, v))
}
