package camera

// CameraController owns the camera's positional state. The camera reads position and target
// from the controller and computes its matrices from them.
//
// The controller places the camera on a sphere around its target (radius, azimuth, elevation),
// which is how the eye scene describes "camera at distance d looking at the origin".
type CameraController interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// SetTarget sets the look-at point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetTarget(x, y, z float32)

	// SetPosition sets the camera's world-space position directly. The spherical coordinates
	// are re-derived so that later SetTarget/SetRadius calls keep the new placement.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Radius returns the current distance from target.
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the distance from target, clamped to a small positive minimum.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32
}
