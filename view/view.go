// Package view owns the explorer's coordinate system.
//
// The logical position in the complex plane is always Bucket + Center.
// Center is kept small by Recenter so that the fine component survives
// the limited-precision arithmetic on the GPU side no matter how far
// the view has panned from the origin. This bounds accumulation error;
// it does not extend zoom depth beyond what Scale and native precision
// allow.
package view

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RecenterThreshold is the largest magnitude either Center axis may
// have after Recenter, in complex-plane units.
const RecenterThreshold = 0.5

// View is the mutable view state. It is created once at startup and
// mutated only by the Controller and the per-frame key pan; the render
// pass reads a FrameParams snapshot, never the View itself.
type View struct {
	Center mgl64.Vec2
	Bucket mgl64.Vec2
	Scale  float64
}

// NewView returns the default start view framing the whole set.
func NewView() *View {
	return &View{
		Center: mgl64.Vec2{-0.5, 0},
		Bucket: mgl64.Vec2{0, 0},
		Scale:  3.0,
	}
}

// Recenter moves whole multiples of RecenterThreshold from Center into
// Bucket on each axis independently. It is a no-op when Center is
// already within the threshold, and Bucket + Center is preserved
// exactly since the shift is added and subtracted unchanged.
func (v *View) Recenter() {
	for axis := 0; axis < 2; axis++ {
		if math.Abs(v.Center[axis]) > RecenterThreshold {
			shift := math.Floor(v.Center[axis]/RecenterThreshold) * RecenterThreshold
			v.Center[axis] -= shift
			v.Bucket[axis] += shift
		}
	}
}

// PlanePoint maps a normalized surface position in [0,1]² (top-left
// origin) to its complex-plane point. The same formula is evaluated
// per fragment on the GPU; the cursor-anchored zoom depends on the two
// staying identical.
func (v *View) PlanePoint(norm mgl64.Vec2, aspect float64) mgl64.Vec2 {
	return mgl64.Vec2{
		v.Bucket[0] + v.Center[0] + (norm[0]-0.5)*v.Scale,
		v.Bucket[1] + v.Center[1] + (norm[1]-0.5)*v.Scale/aspect,
	}
}

// FrameParams is the immutable parameter set one frame renders with.
// Every pixel of a frame sees the same FrameParams; input events that
// land mid-frame only affect the next snapshot.
type FrameParams struct {
	Center mgl64.Vec2
	Bucket mgl64.Vec2
	Scale  float64
	Width  int
	Height int
}

// Params snapshots the view for a frame at the given surface size.
func (v *View) Params(width, height int) FrameParams {
	return FrameParams{
		Center: v.Center,
		Bucket: v.Bucket,
		Scale:  v.Scale,
		Width:  width,
		Height: height,
	}
}

// Aspect returns the width/height ratio of the snapshot's surface.
func (p FrameParams) Aspect() float64 {
	return float64(p.Width) / float64(p.Height)
}

// PlanePoint is the snapshot-side twin of View.PlanePoint, used by the
// CPU renderer so exported images use frame parameters, not live state.
func (p FrameParams) PlanePoint(norm mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		p.Bucket[0] + p.Center[0] + (norm[0]-0.5)*p.Scale,
		p.Bucket[1] + p.Center[1] + (norm[1]-0.5)*p.Scale/p.Aspect(),
	}
}
