package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strings"

	"github.com/satindergrewal/tajshow/internal/audio"
)

// DefaultEdgeVoice is used when an utterance names no voice.
const DefaultEdgeVoice = "hi-IN-SwaraNeural"

// EdgeTTS synthesizes speech with the edge-tts command line tool.
type EdgeTTS struct {
	Command      string
	DefaultVoice string
}

// NewEdgeTTS creates a backend that runs command (usually "edge-tts").
func NewEdgeTTS(command string) *EdgeTTS {
	if command == "" {
		command = "edge-tts"
	}
	return &EdgeTTS{Command: command, DefaultVoice: DefaultEdgeVoice}
}

// CheckInstalled reports ErrUnavailable when the command is not on PATH.
func (e *EdgeTTS) CheckInstalled() error {
	if _, err := exec.LookPath(e.Command); err != nil {
		return fmt.Errorf("%w: %s not found", ErrUnavailable, e.Command)
	}
	return nil
}

// Voices lists the voices the tool knows about.
func (e *EdgeTTS) Voices(ctx context.Context) ([]Voice, error) {
	out, err := exec.CommandContext(ctx, e.Command, "--list-voices").Output()
	if err != nil {
		return nil, fmt.Errorf("%s --list-voices: %w", e.Command, err)
	}
	voices := ParseVoiceList(out)
	for i := range voices {
		voices[i].Default = voices[i].Name == e.DefaultVoice
	}
	return voices, nil
}

// Synthesize renders u to a temporary MP3 and decodes it to PCM.
func (e *EdgeTTS) Synthesize(ctx context.Context, u Utterance) ([]int16, error) {
	f, err := os.CreateTemp("", "tajshow-tts-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	cmd := exec.CommandContext(ctx, e.Command, e.args(u, path)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w: %s", e.Command, err, strings.TrimSpace(stderr.String()))
	}

	samples, err := audio.DecodeFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if u.Volume > 0 && u.Volume != 1 {
		audio.ScaleSamples(samples, u.Volume)
	}
	return samples, nil
}

func (e *EdgeTTS) args(u Utterance, path string) []string {
	voice := e.DefaultVoice
	if u.Voice != nil && u.Voice.Name != "" {
		voice = u.Voice.Name
	}
	return []string{
		"--voice", voice,
		"--rate=" + RatePercent(u.Rate),
		"--pitch=" + PitchHz(u.Pitch),
		"--text=" + u.Text,
		"--write-media", path,
	}
}

// RatePercent maps a rate multiplier to edge-tts's signed percentage.
// Zero means normal speed.
func RatePercent(rate float64) string {
	if rate <= 0 {
		rate = 1
	}
	return fmt.Sprintf("%+d%%", int(math.Round((rate-1)*100)))
}

// PitchHz maps a pitch multiplier to a signed offset, 100 Hz per unit.
func PitchHz(pitch float64) string {
	if pitch <= 0 {
		pitch = 1
	}
	return fmt.Sprintf("%+dHz", int(math.Round((pitch-1)*100)))
}

// ParseVoiceList reads the output of --list-voices. Both the table layout and
// the older "Name: ..." / "ShortName: ..." layout are accepted.
func ParseVoiceList(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		var name string
		switch {
		case strings.HasPrefix(line, "ShortName:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "ShortName:"))
		case strings.HasPrefix(line, "Name:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
		case line == "", strings.HasPrefix(line, "Name "), strings.HasPrefix(line, "-"), strings.Contains(line, ":"):
			continue
		default:
			name = strings.Fields(line)[0]
		}
		lang := voiceLang(name)
		if lang == "" {
			continue
		}
		voices = append(voices, Voice{Name: name, Lang: lang})
	}
	return voices
}

// voiceLang extracts "hi-IN" from "hi-IN-SwaraNeural".
func voiceLang(name string) string {
	parts := strings.Split(name, "-")
	if len(parts) < 3 {
		return ""
	}
	return parts[0] + "-" + parts[1]
}
