package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up vector (usually (0,1,0))
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 gives a pinhole camera
	FocusDistance float64   // Distance to the plane of perfect focus
	Time0, Time1  float64   // Shutter open and close times
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z with the shutter open over [0,1)
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   16.0 / 9.0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// Camera generates rays for rendering with depth of field and motion blur
type Camera struct {
	config          CameraConfig
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	// w points backward, away from the look-at point
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(config.FocusDistance * viewportWidth)
	vertical := v.Multiply(config.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDistance))

	return &Camera{
		config:          config,
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) in [0,1]², where (0,0) is the lower-left corner.
// The origin is jittered across the lens disk and the time is drawn from the shutter interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.config.Time0
	if c.config.Time1 > c.config.Time0 {
		time = core.RandomRange(sampler, c.config.Time0, c.config.Time1)
	}

	return core.NewRayAtTime(origin, direction, time)
}

// GetCameraForward returns the direction the camera is looking
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}
