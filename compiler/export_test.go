package compiler

// Test-only bridges to unexported helpers.
var (
	NewModeAllocator = newModeAllocator
	ForwardVector    = forwardVector

	AncillaModesTotal = ancillaModesTotal
	GatesTotal        = gatesTotal
)
