package graphics

import "github.com/go-gl/gl/v4.3-core/gl"

// ContextInfo identifies the driver behind the current context.
type ContextInfo struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// QueryContextInfo reads the driver strings of the current context.
func QueryContextInfo() ContextInfo {
	return ContextInfo{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row
// first.
func ReadPixels(width, height int) []byte {
	pix := make([]byte, width*height*4)
	if len(pix) == 0 {
		return pix
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	return pix
}
