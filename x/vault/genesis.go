package vault

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"pkg.ptvault.dev/node/x/vault/keeper"
	types "pkg.ptvault.dev/node/x/vault/types"
)

// ValidateGenesis decodes and validates raw genesis state
func ValidateGenesis(bz json.RawMessage) error {
	if bz == nil {
		return nil
	}

	var data types.GenesisState
	if err := json.Unmarshal(bz, &data); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}

	return data.Validate()
}

// InitGenesis initiate genesis state of the vault registry
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.InitGenesis(ctx, data); err != nil {
		panic(err)
	}
}

// ExportGenesis returns genesis state for the vault module
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	gs, err := k.ExportGenesis(ctx)
	if err != nil {
		panic(err)
	}

	return gs
}
