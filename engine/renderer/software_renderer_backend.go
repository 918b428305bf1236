package renderer

import (
	"image"
	"math"

	"github.com/chewxy/math32"

	"github.com/NitaCristianu/thrash-motion-canvas/common"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/light"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/material"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/mesh"
	"github.com/NitaCristianu/thrash-motion-canvas/engine/object"
)

var _ RendererBackend = &softwareRendererBackend{}

// softwareRendererBackend is a deterministic CPU rasterizer: perspective
// transform, z-buffered triangle fill, per-vertex lambert shading from
// ambient and directional lights. Point and spot lights contribute as
// positionless directional approximations toward the origin.
type softwareRendererBackend struct {
	depth []float32
}

// newSoftwareRendererBackend creates the CPU rasterizer backend.
//
// Returns:
//   - *softwareRendererBackend: the new backend
func newSoftwareRendererBackend() *softwareRendererBackend {
	return &softwareRendererBackend{}
}

// directionalTerm is one resolved light direction for shading.
type directionalTerm struct {
	// dir points from the surface toward the light.
	dir       common.Vec3
	color     [3]float32
	intensity float32
}

// sceneLights is the flattened lighting state for one frame.
type sceneLights struct {
	ambient     [3]float32
	directional []directionalTerm
}

func (b *softwareRendererBackend) Render(view View) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, view.Width, view.Height))
	b.fillBackground(img, view)

	pixels := view.Width * view.Height
	if cap(b.depth) < pixels {
		b.depth = make([]float32, pixels)
	}
	b.depth = b.depth[:pixels]
	for i := range b.depth {
		b.depth[i] = math32.MaxFloat32
	}

	lights := collectLights(view.Root)

	var viewMat, projMat, viewProj [16]float32
	view.Camera.ViewMatrix(viewMat[:])
	view.Camera.ProjectionMatrix(projMat[:])
	common.Mul4(viewProj[:], projMat[:], viewMat[:])
	frustum := common.ExtractFrustum(viewProj[:])

	object.Traverse(view.Root, func(o object.Object) bool {
		m, ok := o.(*mesh.Mesh)
		if !ok {
			return true
		}
		b.drawMesh(img, view, m, viewProj[:], &frustum, lights)
		return true
	})
	return img, nil
}

// fillBackground paints the clear color or the stretched background image.
func (b *softwareRendererBackend) fillBackground(img *image.RGBA, view View) {
	if bg := view.BackgroundImage; bg != nil {
		srcW := bg.Bounds().Dx()
		srcH := bg.Bounds().Dy()
		if srcW > 0 && srcH > 0 {
			for y := 0; y < view.Height; y++ {
				sy := bg.Bounds().Min.Y + y*srcH/view.Height
				for x := 0; x < view.Width; x++ {
					sx := bg.Bounds().Min.X + x*srcW/view.Width
					img.SetRGBA(x, y, bg.RGBAAt(sx, sy))
				}
			}
			return
		}
	}
	r8 := channelToByte(view.BackgroundColor[0])
	g8 := channelToByte(view.BackgroundColor[1])
	b8 := channelToByte(view.BackgroundColor[2])
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = r8
		img.Pix[i+1] = g8
		img.Pix[i+2] = b8
		img.Pix[i+3] = 0xFF
	}
}

// collectLights flattens ambient and directional contributions. Directional
// lights shine from their world position toward their target (origin when no
// target is set).
func collectLights(root object.Object) sceneLights {
	var lights sceneLights
	object.Traverse(root, func(o object.Object) bool {
		l, ok := o.(*light.Light)
		if !ok {
			return true
		}
		color := l.Color()
		switch l.Kind() {
		case light.KindAmbient:
			lights.ambient[0] += color[0] * l.Intensity()
			lights.ambient[1] += color[1] * l.Intensity()
			lights.ambient[2] += color[2] * l.Intensity()
		case light.KindDirectional, light.KindPoint, light.KindSpot:
			pos := l.Base().WorldPosition()
			target := common.Vec3{}
			if t := l.Target(); t != nil {
				target = t.Base().WorldPosition()
			}
			dir := pos.Sub(target)
			if dir.Length() < 1e-6 {
				dir = common.Vec3{Y: 1}
			}
			lights.directional = append(lights.directional, directionalTerm{
				dir:       dir.Normalize(),
				color:     color,
				intensity: l.Intensity(),
			})
		}
		return true
	})
	return lights
}

// shadedVertex is one transformed vertex ready for rasterization.
type shadedVertex struct {
	// x, y are screen coordinates; z is NDC depth in [0, 1]; w is the clip
	// w for validity checks.
	x, y, z, w float32

	// shade is the per-channel lambert factor at the vertex.
	shade [3]float32
}

func (b *softwareRendererBackend) drawMesh(img *image.RGBA, view View, m *mesh.Mesh, viewProj []float32, frustum *common.Frustum, lights sceneLights) {
	tris := m.Geometry().Triangles()
	if tris == nil || len(tris.Indices) < 3 {
		return
	}
	mat := m.Material()
	if mat == nil {
		mat = material.Default()
	}

	var world [16]float32
	m.Base().WorldMatrix(world[:])

	if center, radius, ok := boundingSphere(world[:], tris.Positions); ok {
		if !frustum.ContainsSphere(center, radius) {
			return
		}
	}

	var mvp [16]float32
	common.Mul4(mvp[:], viewProj, world[:])

	unlit := mat.Model() == material.ModelBasic

	// Transform and shade every vertex once.
	verts := make([]shadedVertex, len(tris.Positions))
	for i, p := range tris.Positions {
		cx, cy, cz, cw := transformClip(mvp[:], p)
		v := shadedVertex{w: cw}
		if cw > 1e-6 {
			inv := 1 / cw
			v.x = (cx*inv + 1) * 0.5 * float32(view.Width)
			v.y = (1 - cy*inv) * 0.5 * float32(view.Height)
			v.z = cz * inv
		}
		if unlit {
			v.shade = [3]float32{1, 1, 1}
		} else {
			var n common.Vec3
			if i < len(tris.Normals) {
				n = common.TransformDirection(world[:], tris.Normals[i]).Normalize()
			}
			v.shade = lambert(n, lights)
		}
		verts[i] = v
	}

	color := mat.Color()
	opacity := mat.Opacity()
	if !mat.Transparent() {
		opacity = 1
	}
	side := mat.Side()

	for i := 0; i+2 < len(tris.Indices); i += 3 {
		ia, ib, ic := tris.Indices[i], tris.Indices[i+1], tris.Indices[i+2]
		if int(ia) >= len(verts) || int(ib) >= len(verts) || int(ic) >= len(verts) {
			continue
		}
		va, vb, vc := verts[ia], verts[ib], verts[ic]
		if va.w <= 1e-6 || vb.w <= 1e-6 || vc.w <= 1e-6 {
			// Triangle crosses the near plane; dropped rather than clipped.
			continue
		}

		area := (vb.x-va.x)*(vc.y-va.y) - (vc.x-va.x)*(vb.y-va.y)
		// Screen y grows downward, so counter-clockwise winding in world
		// space yields a negative signed area here.
		if side == material.SideFront && area >= 0 {
			continue
		}
		if side == material.SideBack && area <= 0 {
			continue
		}
		if area == 0 {
			continue
		}
		b.fillTriangle(img, view, va, vb, vc, area, color, opacity)
	}
}

func (b *softwareRendererBackend) fillTriangle(img *image.RGBA, view View, va, vb, vc shadedVertex, area float32, color [3]float32, opacity float32) {
	minX := int(math32.Floor(min3(va.x, vb.x, vc.x)))
	maxX := int(math32.Ceil(max3(va.x, vb.x, vc.x)))
	minY := int(math32.Floor(min3(va.y, vb.y, vc.y)))
	maxY := int(math32.Ceil(max3(va.y, vb.y, vc.y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > view.Width-1 {
		maxX = view.Width - 1
	}
	if maxY > view.Height-1 {
		maxY = view.Height - 1
	}

	invArea := 1 / area
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			py := float32(y) + 0.5
			wa := ((vb.x-px)*(vc.y-py) - (vc.x-px)*(vb.y-py)) * invArea
			wb := ((vc.x-px)*(va.y-py) - (va.x-px)*(vc.y-py)) * invArea
			wc := 1 - wa - wb
			if wa < 0 || wb < 0 || wc < 0 {
				continue
			}

			z := wa*va.z + wb*vb.z + wc*vc.z
			if z < 0 || z > 1 {
				continue
			}
			di := y*view.Width + x
			if z >= b.depth[di] {
				continue
			}
			b.depth[di] = z

			shade := [3]float32{
				wa*va.shade[0] + wb*vb.shade[0] + wc*vc.shade[0],
				wa*va.shade[1] + wb*vb.shade[1] + wc*vc.shade[1],
				wa*va.shade[2] + wb*vb.shade[2] + wc*vc.shade[2],
			}
			sr := color[0] * shade[0]
			sg := color[1] * shade[1]
			sb := color[2] * shade[2]

			off := img.PixOffset(x, y)
			if opacity >= 1 {
				img.Pix[off] = channelToByte(sr)
				img.Pix[off+1] = channelToByte(sg)
				img.Pix[off+2] = channelToByte(sb)
				img.Pix[off+3] = 0xFF
			} else {
				blend := func(dst byte, src float32) byte {
					return channelToByte(src*opacity + float32(dst)/255*(1-opacity))
				}
				img.Pix[off] = blend(img.Pix[off], sr)
				img.Pix[off+1] = blend(img.Pix[off+1], sg)
				img.Pix[off+2] = blend(img.Pix[off+2], sb)
				img.Pix[off+3] = 0xFF
			}
		}
	}
}

// boundingSphere computes a world-space bounding sphere for culling: the
// local-space centroid transformed to world, with a radius covering every
// transformed vertex.
func boundingSphere(world []float32, positions []common.Vec3) (common.Vec3, float32, bool) {
	if len(positions) == 0 {
		return common.Vec3{}, 0, false
	}
	var centroid common.Vec3
	for _, p := range positions {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float32(len(positions)))
	center := common.TransformPoint(world, centroid)

	var radius float32
	for _, p := range positions {
		d := common.TransformPoint(world, p).Sub(center).Length()
		if d > radius {
			radius = d
		}
	}
	return center, radius, true
}

// lambert evaluates per-channel shading at a world-space normal.
func lambert(n common.Vec3, lights sceneLights) [3]float32 {
	shade := lights.ambient
	for _, term := range lights.directional {
		d := n.Dot(term.dir)
		if d <= 0 {
			continue
		}
		shade[0] += term.color[0] * term.intensity * d
		shade[1] += term.color[1] * term.intensity * d
		shade[2] += term.color[2] * term.intensity * d
	}
	return shade
}

// transformClip applies a 4x4 matrix to a point, keeping the w component.
func transformClip(m []float32, p common.Vec3) (x, y, z, w float32) {
	x = m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y = m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z = m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w = m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return x, y, z, w
}

// channelToByte clamps a [0, 1] channel to an 8-bit value.
func channelToByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(float64(v * 255)))
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
