package graphics

import "fmt"

// DeviceResourceError reports a failed GPU resource allocation (textures,
// framebuffers, buffers). Fatal at startup; never retried.
type DeviceResourceError struct {
	Resource string
	Err      error
}

func (e *DeviceResourceError) Error() string {
	return fmt.Sprintf("device resource %s: %v", e.Resource, e.Err)
}

func (e *DeviceResourceError) Unwrap() error { return e.Err }

// ShaderProgramError reports a shader compile or link failure, or a required
// uniform missing after a successful link.
type ShaderProgramError struct {
	Technique string
	Err       error
}

func (e *ShaderProgramError) Error() string {
	return fmt.Sprintf("technique %s: %v", e.Technique, e.Err)
}

func (e *ShaderProgramError) Unwrap() error { return e.Err }
