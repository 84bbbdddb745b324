package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const vertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
layout(location=2) in vec4 aColor;
uniform mat4 uProj;
out vec2 vUV;
out vec4 vColor;
void main() {
    vUV = aUV;
    vColor = aColor;
    gl_Position = uProj * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
in vec4 vColor;
uniform sampler2D uTex;
uniform int uUseTex;
out vec4 FragColor;
void main() {
    vec4 c = vColor;
    if (uUseTex == 1) {
        c *= texture(uTex, vUV);
    }
    FragColor = c;
}
` + "\x00"

// compile builds one shader stage; the info log is returned on failure.
func compile(stage string, kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok != gl.FALSE {
		return sh, nil
	}
	msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile %s shader: %s", stage, msg)
}

// linkProgram compiles both stages and links them. Stages are released
// whether or not linking succeeds.
func linkProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := compile("vertex", gl.VERTEX_SHADER, vsSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compile("fragment", gl.FRAGMENT_SHADER, fsSrc)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var ok int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link overlay program: %s", msg)
	}
	return prog, nil
}

func infoLog(id uint32, param func(uint32, uint32, *int32), read func(uint32, int32, *int32, *uint8)) string {
	var n int32
	param(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no info log"
	}
	buf := strings.Repeat("\x00", int(n))
	read(id, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00\n")
}

func uniform(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
