package fractals

import "github.com/hajimehoshi/ebiten/v2"

// Renderer draws one frame of the coloring program. It reads the snapshot it
// is handed and never writes navigation state back.
type Renderer interface {
	Render(dst *ebiten.Image, f FrameUniforms)
}

// ShaderRenderer draws a Program over the whole destination with
// DrawRectShader. Uniform buffers are persistent and pre-stored in the
// uniforms map, so a frame only rewrites their contents.
type ShaderRenderer struct {
	program  *Program
	uniforms map[string]any
	values   [len(viewportUniforms)][2]float32
	slices   [len(viewportUniforms)][]float32
	shaderOp ebiten.DrawRectShaderOptions
}

// NewShaderRenderer returns a renderer for p. Only the viewport uniforms that
// p declares are bound.
func NewShaderRenderer(p *Program) *ShaderRenderer {
	r := &ShaderRenderer{
		program:  p,
		uniforms: make(map[string]any, len(p.Uniforms)),
	}
	for i, name := range viewportUniforms {
		r.slices[i] = r.values[i][:]
		for _, declared := range p.Uniforms {
			if declared == name {
				r.uniforms[name] = r.slices[i]
			}
		}
	}
	r.shaderOp.Uniforms = r.uniforms
	return r
}

// Render implements Renderer.
func (r *ShaderRenderer) Render(dst *ebiten.Image, f FrameUniforms) {
	r.fill(f)
	dst.DrawRectShader(f.Width, f.Height, r.program.Shader, &r.shaderOp)
}

// fill writes f into the uniform buffers, in viewportUniforms order.
func (r *ShaderRenderer) fill(f FrameUniforms) {
	r.values[0] = [2]float32{float32(f.Width), float32(f.Height)}
	r.values[1] = [2]float32{float32(f.MinRe), float32(f.MaxRe)}
	r.values[2] = [2]float32{float32(f.MinIm), float32(f.MaxIm)}
	r.values[3] = [2]float32{float32(f.StepRe), float32(f.StepIm)}
}
