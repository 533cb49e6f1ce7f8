package types

const (
	// ModuleName is the name of the vault module
	ModuleName = "vault"

	// StoreKey is the store key string for the vault module
	StoreKey = ModuleName

	// RouterKey is the message route for the vault module
	RouterKey = ModuleName

	// BasisPointsDenominator is the divisor applied to every fee expressed in basis points
	BasisPointsDenominator = 10000

	wrapperDenomPrefix = "wpt/"
)

// WrapperDenom returns the wrapper token denom minted against deposits of markets
// resolving to the given canonical underlying.
func WrapperDenom(underlying string) string {
	return wrapperDenomPrefix + underlying
}
