package cosmos

//go:generate mockery --name MarketKeeper --dir ../../x/vault/imports --output ./mocks
//go:generate mockery --name YieldTokenKeeper --dir ../../x/vault/imports --output ./mocks
