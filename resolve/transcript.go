package resolve

import "github.com/EasterCompany/dex-camb-tools/camb"

// Transcript is the agent-facing transcription shape. Segments and Speakers
// are always present, empty rather than null, so consumers never branch on
// missing keys.
type Transcript struct {
	Text     string                      `json:"text"`
	Segments []camb.TranscriptionSegment `json:"segments"`
	Speakers []string                    `json:"speakers"`
}

// NormalizeTranscript fills the gaps the provider leaves: when no explicit
// speaker list is sent, the distinct non-null segment speakers stand in, in
// first-appearance order. An explicit list is used verbatim even when empty.
func NormalizeTranscript(t camb.Transcription) Transcript {
	out := Transcript{
		Text:     t.Text,
		Segments: make([]camb.TranscriptionSegment, 0, len(t.Segments)),
		Speakers: []string{},
	}
	out.Segments = append(out.Segments, t.Segments...)

	if t.Speakers != nil {
		out.Speakers = append(out.Speakers, t.Speakers...)
		return out
	}
	seen := make(map[string]bool)
	for _, seg := range out.Segments {
		if seg.Speaker == nil || *seg.Speaker == "" || seen[*seg.Speaker] {
			continue
		}
		seen[*seg.Speaker] = true
		out.Speakers = append(out.Speakers, *seg.Speaker)
	}
	return out
}
