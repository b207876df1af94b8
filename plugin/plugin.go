// Package plugin defines the polymorphic evaluator, coin-selector, and
// provider interfaces: the capability surfaces a
// transaction builder needs from the outside world (script-cost
// evaluation, UTxO selection, chain-state/submission access), plus the
// cross-runtime bridge contract that lets a host runtime supply an
// implementation whose calls may block.
package plugin

import (
	"context"

	"cardano-go-sdk/ledger"
)

// Name is a capability-plugin identifier carried on every plugin object.
// It is a plain string; its length is not bounded.
type Name string

// Evaluator estimates the execution units a transaction's Plutus scripts
// will consume. Implementations backed by a bridged host runtime may
// block the caller until the host resolves; native implementations
// return immediately.
type Evaluator interface {
	Name() Name
	EvaluateTransaction(ctx context.Context, tx ledger.Transaction, resolvedInputs []ledger.UTxO) ([]ledger.Redeemer, error)
}

// CoinSelector picks a subset of available UTxOs that covers a requested
// output value plus an estimated fee. preSelected holds UTxOs the caller
// has already committed to the transaction; implementations must honor
// them (counting their value toward requested) rather than re-deciding
// whether to include them.
type CoinSelector interface {
	Name() Name
	SelectInputs(ctx context.Context, preSelected, available []ledger.UTxO, requested ledger.Value) ([]ledger.UTxO, ledger.Value, error)
}

// Provider is the chain-state and submission access point: protocol
// parameters, UTxO lookup by address, script evaluation, and transaction
// submission. ProviderBackedEvaluator forwards evaluation to a Provider;
// ProviderBackedCoinSelector holds one but does not call it.
type Provider interface {
	Name() Name
	ProtocolParameters(ctx context.Context) (ledger.ProtocolParameters, error)
	UTxOsAt(ctx context.Context, address []byte) ([]ledger.UTxO, error)
	EvaluateTransaction(ctx context.Context, tx ledger.Transaction, additionalUTxOs []ledger.UTxO) ([]ledger.Redeemer, error)
	SubmitTransaction(ctx context.Context, tx ledger.Transaction) (ledger.Blake2bHash, error)
}

// ProviderBackedEvaluator forwards evaluation to a Provider-supplied
// external evaluation endpoint rather than running scripts locally; the
// actual cost-model semantics are an external collaborator's concern.
type ProviderBackedEvaluator struct {
	provider Provider
}

// NewProviderBackedEvaluator builds an Evaluator that simply forwards to
// provider's own evaluation endpoint.
func NewProviderBackedEvaluator(provider Provider) *ProviderBackedEvaluator {
	return &ProviderBackedEvaluator{provider: provider}
}

// Name returns the provider's name, since this evaluator has no identity
// of its own beyond the provider it forwards to.
func (e *ProviderBackedEvaluator) Name() Name { return e.provider.Name() }

// EvaluateTransaction forwards to the wrapped provider's own evaluation
// endpoint.
func (e *ProviderBackedEvaluator) EvaluateTransaction(ctx context.Context, tx ledger.Transaction, resolvedInputs []ledger.UTxO) ([]ledger.Redeemer, error) {
	return e.provider.EvaluateTransaction(ctx, tx, resolvedInputs)
}

// ProviderBackedCoinSelector pairs a Provider with a caller-supplied
// CoinSelector strategy and delegates selection to the strategy. It does
// not call the provider: the candidate UTxOs are the ones passed in.
type ProviderBackedCoinSelector struct {
	provider Provider
	strategy CoinSelector
}

// NewProviderBackedCoinSelector builds a CoinSelector that picks among the
// UTxOs it is given via strategy; provider is stored but not consulted.
func NewProviderBackedCoinSelector(provider Provider, strategy CoinSelector) *ProviderBackedCoinSelector {
	return &ProviderBackedCoinSelector{provider: provider, strategy: strategy}
}

// Name returns the wrapped strategy's name.
func (s *ProviderBackedCoinSelector) Name() Name { return s.strategy.Name() }

// SelectInputs passes preSelected, available and requested unchanged to
// the wrapped strategy and returns its result. It does not list UTxOs
// through the provider.
func (s *ProviderBackedCoinSelector) SelectInputs(ctx context.Context, preSelected, available []ledger.UTxO, requested ledger.Value) ([]ledger.UTxO, ledger.Value, error) {
	return s.strategy.SelectInputs(ctx, preSelected, available, requested)
}
