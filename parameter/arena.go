package parameter

// Arena geometry (pixels)
const (
	// ArenaWidth is the default arena width
	ArenaWidth = 500.0

	// ArenaHeight is the default arena height
	ArenaHeight = 500.0

	// PlayerRadius is the collision radius shared by every player
	PlayerRadius = 12.0

	// StartRingRadius is the radius of the ring players spawn on around the center
	StartRingRadius = 75.0
)

// Targeting
const (
	// MinTargetDistance is the arrival threshold and minimum retarget distance
	MinTargetDistance = 2.0

	// WallTolerance is the distance from an inset boundary still counted as touching that wall
	WallTolerance = 0.1

	// SeparationIterations caps the post-commit overlap relaxation passes
	// Relaxation normally settles in a handful of passes; the cap only guards wedged clusters
	SeparationIterations = 1000

	// SeparationSlack is added to the contact distance when pushing overlapping players apart
	SeparationSlack = 1e-6
)

// Roster
const (
	// MinPlayers is the smallest match roster
	MinPlayers = 2

	// MaxPlayers is the largest match roster
	MaxPlayers = 5
)
