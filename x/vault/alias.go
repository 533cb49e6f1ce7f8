package vault

import (
	types "pkg.ptvault.dev/node/x/vault/types"
)

const (
	// StoreKey represents storekey of vault module
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)
