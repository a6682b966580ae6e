package render

import (
	"bytes"
	"io"

	"solanaswap/core"
)

// Proposal render p as one json line
func Proposal(w io.Writer, p *core.Proposal) error {
	data, err := EncodeProposal(p)
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

// EncodeProposal encode p with the field order the agent expects
func EncodeProposal(p *core.Proposal) ([]byte, error) {
	v := Object{
		{"type", p.Type},
		{"data", Object{
			{"from_token", p.Data.FromToken},
			{"to_token", p.Data.ToToken},
			{"amount", p.Data.Amount},
			{"amount_usd", p.Data.AmountUSD},
			{"expected_slippage", p.Data.ExpectedSlippage},
		}},
	}

	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
