package ledger

import "cardano-go-sdk/cbor"

// UnitInterval is a rational number in [0,1], serialized with the
// rational-number tag (30) and §4.D.2.
type UnitInterval struct {
	Numerator   uint64
	Denominator uint64
}

// Encode writes `tag(30, [numerator, denominator])`.
func (u UnitInterval) Encode(w *cbor.Writer) {
	w.WriteTag(cbor.TagRational)
	w.WriteStartArray(2)
	w.WriteUint(u.Numerator)
	w.WriteUint(u.Denominator)
}

// DecodeUnitInterval reads a UnitInterval written by Encode.
func DecodeUnitInterval(r *cbor.Reader) (UnitInterval, error) {
	if err := cbor.ValidateTag(r, cbor.TagRational, "DecodeUnitInterval"); err != nil {
		return UnitInterval{}, err
	}
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeUnitInterval"); err != nil {
		return UnitInterval{}, err
	}
	num, err := r.ReadUint()
	if err != nil {
		return UnitInterval{}, err
	}
	denom, err := r.ReadUint()
	if err != nil {
		return UnitInterval{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeUnitInterval"); err != nil {
		return UnitInterval{}, err
	}
	return UnitInterval{Numerator: num, Denominator: denom}, nil
}

// ExecutionUnits measures Plutus script consumption.
type ExecutionUnits struct {
	Memory uint64
	CPU    uint64
}

// Encode writes `[ memory, cpu ]`.
func (e ExecutionUnits) Encode(w *cbor.Writer) {
	w.WriteStartArray(2)
	w.WriteUint(e.Memory)
	w.WriteUint(e.CPU)
}

// DecodeExecutionUnits reads an ExecutionUnits written by Encode.
func DecodeExecutionUnits(r *cbor.Reader) (ExecutionUnits, error) {
	if err := cbor.ValidateArrayOfNElements(r, 2, "DecodeExecutionUnits"); err != nil {
		return ExecutionUnits{}, err
	}
	mem, err := r.ReadUint()
	if err != nil {
		return ExecutionUnits{}, err
	}
	cpu, err := r.ReadUint()
	if err != nil {
		return ExecutionUnits{}, err
	}
	if err := cbor.ValidateEndArray(r, "DecodeExecutionUnits"); err != nil {
		return ExecutionUnits{}, err
	}
	return ExecutionUnits{Memory: mem, CPU: cpu}, nil
}
