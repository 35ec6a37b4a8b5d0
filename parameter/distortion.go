package parameter

// Background distortion
const (
	// DistortionEnergyMax is the energy at which displacement saturates
	DistortionEnergyMax = 150.0

	// DistortionScaleMax is the displacement at saturation
	DistortionScaleMax = 50.0

	// DistortionSeedFactor drifts the noise pattern with energy
	DistortionSeedFactor = 5.0

	// DistortionNoiseFrequency is the spatial frequency of the noise field
	DistortionNoiseFrequency = 0.08

	// DistortionSeedDrift converts seed units into the noise field's third axis
	DistortionSeedDrift = 0.01

	// DistortionCellsPerPixel converts displacement pixels into terminal columns
	DistortionCellsPerPixel = 0.1
)
