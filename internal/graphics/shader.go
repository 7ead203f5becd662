package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform locations fixed by layout qualifiers in the shader sources.
const (
	ModelLocation int32 = 2
	TimeLocation  int32 = 3
	MVPLocation   int32 = 4
)

var uniformLocations = []struct {
	name     string
	location int32
}{
	{"u_model", ModelLocation},
	{"u_time", TimeLocation},
	{"u_mvp", MVPLocation},
}

// Shader is a linked vertex + fragment program loaded from files.
type Shader struct {
	ID uint32

	vertexPath   string
	fragmentPath string
}

// NewShader compiles and links the program from two source files.
func NewShader(vertexPath, fragmentPath string) (*Shader, error) {
	program, err := loadProgram(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, vertexPath: vertexPath, fragmentPath: fragmentPath}, nil
}

// Reload rebuilds the program from the same files. On failure the current
// program stays in use.
func (s *Shader) Reload() error {
	program, err := loadProgram(s.vertexPath, s.fragmentPath)
	if err != nil {
		return err
	}
	gl.DeleteProgram(s.ID)
	s.ID = program
	return nil
}

// Use activates the program.
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program.
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
	s.ID = 0
}

// SetTime sets the elapsed-time uniform.
func (s *Shader) SetTime(t float32) {
	gl.Uniform1f(TimeLocation, t)
}

// SetModel sets the model (world) matrix uniform.
func (s *Shader) SetModel(m mgl32.Mat4) {
	gl.UniformMatrix4fv(ModelLocation, 1, false, &m[0])
}

// SetMVP sets the model-view-projection matrix uniform.
func (s *Shader) SetMVP(m mgl32.Mat4) {
	gl.UniformMatrix4fv(MVPLocation, 1, false, &m[0])
}

func loadProgram(vertexPath, fragmentPath string) (uint32, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return 0, fmt.Errorf("could not read vertex shader file: %w", err)
	}
	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return 0, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	program, err := compileProgram(string(vertexSource), string(fragmentSource))
	if err != nil {
		return 0, fmt.Errorf("%s, %s: %w", vertexPath, fragmentPath, err)
	}
	if err := checkLocations(program); err != nil {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s, %s: %w", vertexPath, fragmentPath, err)
	}
	return program, nil
}

// checkLocations makes sure the linked program put each uniform where the
// setters expect it. Uniforms the compiler optimized away report -1 and are
// accepted.
func checkLocations(program uint32) error {
	for _, u := range uniformLocations {
		got := gl.GetUniformLocation(program, gl.Str(u.name+"\x00"))
		if got != -1 && got != u.location {
			return fmt.Errorf("uniform %s at location %d, want %d", u.name, got, u.location)
		}
	}
	return nil
}

func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %s", strings.TrimRight(log, "\x00"))
	}
	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
