package parameter

// Point budget shared by damage, speed and health allocation
const (
	// PointBudget is the total allocation points available to each player
	PointBudget = 10

	// MinDamagePoints is the smallest damage allocation a roster entry may carry
	MinDamagePoints = 1

	// MinHealthPoints is the smallest health allocation a roster entry may carry
	MinHealthPoints = 1
)

// Damage derivation
const (
	// DamageDivisor converts damage points to damage per hit (points / divisor)
	DamageDivisor = 7.0

	// DamageRoundingScale rounds damage up to two decimals
	DamageRoundingScale = 100.0
)

// Speed tiers (px/s)
const (
	// SpeedMalus is the speed of a player with no speed points
	SpeedMalus = 70.0

	// SpeedBase is the speed before per-point increments
	SpeedBase = 80.0

	// SpeedLowTierPoints is the number of points earning the low tier increment
	SpeedLowTierPoints = 3

	// SpeedLowTierStep is the per-point increment inside the low tier
	SpeedLowTierStep = 20.0

	// SpeedHighTierStep is the per-point increment past the low tier
	SpeedHighTierStep = 30.0
)
