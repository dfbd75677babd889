// Package glcanvas draws brush strokes with OpenGL 3.3.
//
// Strokes are stamped into a persistent canvas texture and blitted to the
// window every frame, so paint accumulates across frames on a
// double-buffered window.
package glcanvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/example/brushpaint/internal/render"
	"github.com/example/brushpaint/internal/shader"
)

// BrushTextureSize is the edge length of the baked brush texture.
const BrushTextureSize = 128

var quadVertices = []float32{
	-1, -1,
	1, -1,
	1, 1,
	-1, 1,
}

// Options configures a Renderer.
type Options struct {
	// BrushSize is the stamped brush diameter in framebuffer pixels.
	BrushSize  int
	BrushSigma float32
	Background color.RGBA
	Brush      color.RGBA
}

// Renderer owns every GL object used by the painter. All methods must be
// called on the thread that owns the GL context.
type Renderer struct {
	opts Options

	quadVao uint32
	quadVbo uint32

	pathVao uint32
	pathVbo uint32
	pathCap int

	brushTex uint32

	canvasTex uint32
	canvasFbo uint32
	width     int
	height    int

	stamp        shader.Program
	colorLoc     int32
	halfSizeLoc  int32
	brushUnitLoc int32
}

// New allocates the quad and path buffers. A GL context must be current.
func New(opts Options) *Renderer {
	r := &Renderer{opts: opts}
	r.initQuad()
	r.initPath()
	return r
}

func (r *Renderer) initQuad() {
	gl.GenVertexArrays(1, &r.quadVao)
	gl.BindVertexArray(r.quadVao)
	gl.GenBuffers(1, &r.quadVbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(shader.PositionAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.PositionAttrib)
	gl.BindVertexArray(0)
}

func (r *Renderer) initPath() {
	gl.GenVertexArrays(1, &r.pathVao)
	gl.BindVertexArray(r.pathVao)
	gl.GenBuffers(1, &r.pathVbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pathVbo)
	r.pathCap = growCapacity(0, minPathCapacity)
	gl.BufferData(gl.ARRAY_BUFFER, r.pathCap*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(shader.PositionAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(shader.PositionAttrib)
	gl.BindVertexArray(0)
}

// BakeBrush renders the brush texture with prog through an offscreen
// framebuffer, replacing any earlier bake. Blending is suspended while
// baking.
func (r *Renderer) BakeBrush(prog shader.Program) error {
	const size = BrushTextureSize

	if gl.IsEnabled(gl.BLEND) {
		gl.Disable(gl.BLEND)
		defer gl.Enable(gl.BLEND)
	}
	if r.brushTex != 0 {
		gl.DeleteTextures(1, &r.brushTex)
	}
	gl.GenTextures(1, &r.brushTex)
	gl.BindTexture(gl.TEXTURE_2D, r.brushTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, size, size, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	var fbo uint32
	gl.GenFramebuffers(1, &fbo)
	defer gl.DeleteFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.FramebufferTexture2D(gl.DRAW_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.brushTex, 0)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("brush framebuffer incomplete: 0x%x", status)
	}

	gl.Viewport(0, 0, size, size)
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	prog.Use()
	gl.Uniform1f(prog.Uniform("u_Sigma"), r.opts.BrushSigma)
	gl.BindVertexArray(r.quadVao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, 4)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	gl.BindTexture(gl.TEXTURE_2D, r.brushTex)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	return nil
}

// SetStamp selects the program used to draw brush positions. The renderer
// owns prog and deletes the program it replaces.
func (r *Renderer) SetStamp(prog shader.Program) {
	if r.stamp.ID != 0 && r.stamp.ID != prog.ID {
		r.stamp.Delete()
	}
	r.stamp = prog
	r.colorLoc = prog.Uniform("u_Color")
	r.halfSizeLoc = prog.Uniform("u_HalfSize")
	r.brushUnitLoc = prog.Uniform("u_Brush")
}

// SetBrushColor changes the colour of subsequent stamps.
func (r *Renderer) SetBrushColor(c color.RGBA) { r.opts.Brush = c }

// Size returns the canvas size in pixels.
func (r *Renderer) Size() (int, int) { return r.width, r.height }

// Resize reallocates the canvas for a w by h framebuffer. Existing paint is
// kept anchored to the top-left corner and new area is filled with the
// background colour.
func (r *Renderer) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == r.width && h == r.height) {
		return
	}
	var tex, fbo uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, tex, 0)
	r.clearBound()

	if r.canvasFbo != 0 {
		src, dst := anchorTopLeft(r.width, r.height, w, h)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.canvasFbo)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fbo)
		gl.BlitFramebuffer(src.X0, src.Y0, src.X1, src.Y1, dst.X0, dst.Y0, dst.X1, dst.Y1, gl.COLOR_BUFFER_BIT, gl.NEAREST)
		gl.DeleteFramebuffers(1, &r.canvasFbo)
		gl.DeleteTextures(1, &r.canvasTex)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	r.canvasTex, r.canvasFbo = tex, fbo
	r.width, r.height = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

// Clear fills the canvas with the background colour.
func (r *Renderer) Clear() {
	if r.canvasFbo == 0 {
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.canvasFbo)
	r.clearBound()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (r *Renderer) clearBound() {
	bg := colorToFloat(r.opts.Background)
	gl.ClearColor(bg[0], bg[1], bg[2], bg[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawPath stamps the brush at each interleaved x, y position. An empty
// path draws nothing.
func (r *Renderer) DrawPath(points []float32) {
	if len(points) < 2 || r.canvasFbo == 0 {
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.canvasFbo)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))

	r.stamp.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.brushTex)
	gl.Uniform1i(r.brushUnitLoc, 0)
	c := colorToFloat(r.opts.Brush)
	gl.Uniform4f(r.colorLoc, c[0], c[1], c[2], c[3])
	hx, hy := halfSize(r.opts.BrushSize, r.width, r.height)
	gl.Uniform2f(r.halfSizeLoc, hx, hy)

	gl.BindVertexArray(r.pathVao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pathVbo)
	if need := len(points); need > r.pathCap {
		r.pathCap = growCapacity(r.pathCap, need)
		gl.BufferData(gl.ARRAY_BUFFER, r.pathCap*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(points)*4, gl.Ptr(points))
	gl.DrawArrays(gl.POINTS, 0, int32(len(points)/2))

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Present copies the canvas to the window's default framebuffer.
func (r *Renderer) Present() {
	if r.canvasFbo == 0 {
		return
	}
	w, h := int32(r.width), int32(r.height)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.canvasFbo)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Snapshot reads the canvas back into a top-down image.
func (r *Renderer) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	if r.canvasFbo == 0 || len(img.Pix) == 0 {
		return img
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, r.canvasFbo)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	render.Readback(img)
	return img
}

// Close releases every GL object owned by the renderer, including the stamp
// program.
func (r *Renderer) Close() {
	if r.canvasFbo != 0 {
		gl.DeleteFramebuffers(1, &r.canvasFbo)
	}
	if r.canvasTex != 0 {
		gl.DeleteTextures(1, &r.canvasTex)
	}
	if r.brushTex != 0 {
		gl.DeleteTextures(1, &r.brushTex)
	}
	if r.pathVbo != 0 {
		gl.DeleteBuffers(1, &r.pathVbo)
	}
	if r.pathVao != 0 {
		gl.DeleteVertexArrays(1, &r.pathVao)
	}
	if r.quadVbo != 0 {
		gl.DeleteBuffers(1, &r.quadVbo)
	}
	if r.quadVao != 0 {
		gl.DeleteVertexArrays(1, &r.quadVao)
	}
	r.stamp.Delete()
	*r = Renderer{opts: r.opts}
}

// blendFactors are the arguments of glBlendFuncSeparate.
type blendFactors struct {
	SrcRGB, DstRGB, SrcAlpha, DstAlpha uint32
}

// stampBlend adds the stamp colour to the canvas scaled by the complement
// of coverage, which the stamp writes to alpha. Canvas alpha is left at its
// cleared value.
var stampBlend = blendFactors{
	SrcRGB:   gl.ONE,
	DstRGB:   gl.SRC_ALPHA,
	SrcAlpha: gl.ZERO,
	DstAlpha: gl.ONE,
}

// EnableBlending turns on the stamp blend mode.
func (r *Renderer) EnableBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFuncSeparate(stampBlend.SrcRGB, stampBlend.DstRGB, stampBlend.SrcAlpha, stampBlend.DstAlpha)
}
