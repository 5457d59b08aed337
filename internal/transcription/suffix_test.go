package transcription

import "testing"

func TestAudioSuffix(t *testing.T) {
	cases := map[string]string{
		"x.webm":          ".webm",
		"recording.webm":  ".webm",
		"x.mp3":           ".mp3",
		"x.anything_else": ".wav",
		"x.ogg":           ".wav",
		"x.WEBM":          ".wav",
		"":                ".wav",
		"webm":            ".wav",
	}
	for name, want := range cases {
		if got := AudioSuffix(name); got != want {
			t.Fatalf("AudioSuffix(%q) = %q, want %q", name, got, want)
		}
	}
}
