package probe

// VideoInfo holds the probed properties of a media input. Zero values for
// duration and dimensions mean "undeterminable"; callers must tolerate them.
// FPS always carries a usable value (defaulted to 30.0 when the probe fails
// or reports nothing).
type VideoInfo struct {
	Duration float64 // seconds
	Width    int     // pixels
	Height   int     // pixels
	FPS      float64 // frames/sec
}

// DefaultFPS is assumed when the frame rate cannot be determined.
const DefaultFPS = 30.0

// CodecDetails carries the raw codec parameters of a video stream as
// reported by ffprobe. Values are kept as strings so the analyzer reports
// exactly what the tool returned; empty means the key was absent.
type CodecDetails struct {
	CodecName string
	Profile   string
	Level     string
	BitRate   string
	Width     string
	Height    string
}

// KeyframeStatus classifies whether a segment starts on a keyframe.
type KeyframeStatus int

const (
	KeyframeUnknown KeyframeStatus = iota // Probe failed or gave no answer.
	KeyframePresent                       // First decoded frame is a keyframe.
	KeyframeAbsent                        // First decoded frame is not a keyframe.
)

// String returns the analyzer label for the status.
func (k KeyframeStatus) String() string {
	switch k {
	case KeyframePresent:
		return "keyframe present"
	case KeyframeAbsent:
		return "keyframe absent"
	default:
		return "undetermined"
	}
}
