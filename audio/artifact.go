package audio

// Artifact is a resolved audio payload together with its classification.
// A resolver that finds no audio at all produces the degenerate empty PCM
// artifact rather than an error; callers decide how to surface that.
type Artifact struct {
	Data   []byte
	Format Format
}

// Empty reports whether the artifact carries no audio bytes.
func (a Artifact) Empty() bool {
	return len(a.Data) == 0
}

// Normalize makes the artifact playable: raw PCM gains a WAV container and
// is reclassified as WAV. Container formats and empty payloads pass through
// unchanged, so normalizing twice is safe.
func (a Artifact) Normalize() Artifact {
	if a.Format != FormatPCM || a.Empty() {
		return a
	}
	return Artifact{Data: WrapPCM(a.Data), Format: FormatWAV}
}
