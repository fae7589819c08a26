package render

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the SimulationResult message:
//
//	message SimulationResult {
//	  string id = 1;
//	  repeated string rows = 2;
//	  sint64 min_x = 3;
//	  sint64 max_y = 4;
//	  uint64 steps = 5;
//	  uint64 black_cells = 6;
//	}
const (
	fieldID         protowire.Number = 1
	fieldRows       protowire.Number = 2
	fieldMinX       protowire.Number = 3
	fieldMaxY       protowire.Number = 4
	fieldSteps      protowire.Number = 5
	fieldBlackCells protowire.Number = 6
)

var errMalformed = errors.New("malformed simulation result")

// MarshalProto encodes r in the SimulationResult wire format.
func (r Result) MarshalProto() []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldID, protowire.BytesType)
	b = protowire.AppendString(b, r.ID)
	for _, row := range r.Rows {
		b = protowire.AppendTag(b, fieldRows, protowire.BytesType)
		b = protowire.AppendBytes(b, row)
	}
	b = protowire.AppendTag(b, fieldMinX, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(r.Bounds.MinX))
	b = protowire.AppendTag(b, fieldMaxY, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(r.Bounds.MaxY))
	b = protowire.AppendTag(b, fieldSteps, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Steps))
	b = protowire.AppendTag(b, fieldBlackCells, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.BlackCells))
	return b
}

// UnmarshalProto decodes a SimulationResult. Bounds are rebuilt from min_x,
// max_y and the row geometry. Unknown fields are skipped.
func UnmarshalProto(b []byte) (Result, error) {
	var r Result
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return Result{}, fmt.Errorf("%w: %v", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case num == fieldID && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return Result{}, fmt.Errorf("%w: id: %v", errMalformed, protowire.ParseError(n))
			}
			r.ID = v
			b = b[n:]
		case num == fieldRows && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return Result{}, fmt.Errorf("%w: rows: %v", errMalformed, protowire.ParseError(n))
			}
			r.Rows = append(r.Rows, append([]byte(nil), v...))
			b = b[n:]
		case typ == protowire.VarintType && num >= fieldMinX && num <= fieldBlackCells:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return Result{}, fmt.Errorf("%w: field %d: %v", errMalformed, num, protowire.ParseError(n))
			}
			switch num {
			case fieldMinX:
				r.Bounds.MinX = protowire.DecodeZigZag(v)
			case fieldMaxY:
				r.Bounds.MaxY = protowire.DecodeZigZag(v)
			case fieldSteps:
				r.Steps = int(v)
			case fieldBlackCells:
				r.BlackCells = int(v)
			}
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return Result{}, fmt.Errorf("%w: field %d: %v", errMalformed, num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}
	if len(r.Rows) > 0 {
		r.Bounds.MaxX = r.Bounds.MinX + int64(len(r.Rows[0])) - 1
		r.Bounds.MinY = r.Bounds.MaxY - int64(len(r.Rows)) + 1
	}
	return r, nil
}
