package core

// ImageID is an opaque asset handle. The engine passes it to the renderer
// without interpreting it.
type ImageID string

// Chrome images drawn by the engine itself.
const (
	ImageSilentOn  ImageID = "silent-on"
	ImageSilentOff ImageID = "silent-off"
)
