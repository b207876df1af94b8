package ledger

// ProtocolParameters carries the subset of Conway-era protocol parameters
// this SDK needs to compute fees and validate transaction shape locally.
// Script cost-model numeric semantics themselves are an external
// collaborator's concern, but the parameter container is ours. Field
// names follow the Cardano ledger's own naming rather than an
// abbreviated internal scheme.
type ProtocolParameters struct {
	MinFeeA            uint64
	MinFeeB            uint64
	MaxBlockBodySize   uint64
	MaxTxSize          uint64
	MaxBlockHeaderSize uint64
	KeyDeposit         uint64
	PoolDeposit        uint64
	MinPoolCost        uint64
	CoinsPerUTxOByte   uint64
	MaxValueSize       uint64
	CollateralPercent  uint64
	MaxCollateralInputs uint64
	CostModels         *CostModelsMap
	ExecutionPrices    ExecutionPrices
	MaxTxExecutionUnits ExecutionUnits
	MaxBlockExecutionUnits ExecutionUnits
}

// ExecutionPrices converts execution units to lovelace via two rational
// coefficients, matching the ledger's own `ExUnitPrices` shape.
type ExecutionPrices struct {
	Memory UnitInterval
	CPU    UnitInterval
}

// MinFee computes the linear fee `a*size + b`, the one piece of fee
// arithmetic this SDK computes locally.
func (p ProtocolParameters) MinFee(txSizeBytes uint64) uint64 {
	return p.MinFeeA*txSizeBytes + p.MinFeeB
}
