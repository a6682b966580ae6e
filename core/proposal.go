package core

import (
	"context"
	"encoding/json"
)

const (
	// ProposalType envelope tag read by the agent's skill runner
	ProposalType = "proposal"

	// DefaultAmountUSD notional value attached to every proposal
	DefaultAmountUSD = 100.0
	// DefaultExpectedSlippage slippage, in percent, attached to every proposal
	DefaultExpectedSlippage = 0.5
)

type (
	// Amount swap amount exactly as the caller wrote it.
	// Value holds a json number literal, or the string content when Quoted.
	Amount struct {
		Value  string `json:"value"`
		Quoted bool   `json:"quoted,omitempty"`
	}

	// SwapRequest swap request decoded from the command line
	SwapRequest struct {
		FromToken string `json:"from_token"`
		ToToken   string `json:"to_token"`
		Amount    Amount `json:"amount"`
	}

	// ProposalData proposal body
	ProposalData struct {
		FromToken        string  `json:"from_token"`
		ToToken          string  `json:"to_token"`
		Amount           Amount  `json:"amount"`
		AmountUSD        float64 `json:"amount_usd"`
		ExpectedSlippage float64 `json:"expected_slippage"`
	}

	// Proposal trade proposal handed back to the agent
	Proposal struct {
		Type string       `json:"type"`
		Data ProposalData `json:"data"`
	}

	// SwapService swap service interface
	SwapService interface {
		ParseRequest(ctx context.Context, raw string) (*SwapRequest, error)
	}
)

// NumberAmount amount from a json number
func NumberAmount(n json.Number) Amount {
	return Amount{Value: n.String()}
}

// TextAmount amount from a json string
func TextAmount(s string) Amount {
	return Amount{Value: s, Quoted: true}
}

func (a Amount) String() string {
	return a.Value
}

// NewProposal build the proposal for req. The usd amount and slippage are fixed.
func NewProposal(req *SwapRequest) *Proposal {
	return &Proposal{
		Type: ProposalType,
		Data: ProposalData{
			FromToken:        req.FromToken,
			ToToken:          req.ToToken,
			Amount:           req.Amount,
			AmountUSD:        DefaultAmountUSD,
			ExpectedSlippage: DefaultExpectedSlippage,
		},
	}
}
