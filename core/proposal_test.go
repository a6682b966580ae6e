package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProposal(t *testing.T) {
	reqs := []*SwapRequest{
		{FromToken: "SOL", ToToken: "USDC", Amount: NumberAmount("5")},
		{FromToken: "", ToToken: "", Amount: NumberAmount("0")},
		{FromToken: "USDC", ToToken: "JUP", Amount: NumberAmount("-1.25e-7")},
		{FromToken: "So11111111111111111111111111111111111111112", ToToken: "USDC", Amount: TextAmount("50%")},
	}

	for _, req := range reqs {
		p := NewProposal(req)
		assert.Equal(t, ProposalType, p.Type)
		assert.Equal(t, req.FromToken, p.Data.FromToken)
		assert.Equal(t, req.ToToken, p.Data.ToToken)
		assert.Equal(t, req.Amount, p.Data.Amount)
		assert.Equal(t, 100.0, p.Data.AmountUSD)
		assert.Equal(t, 0.5, p.Data.ExpectedSlippage)
	}
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "Missing arguments", ErrMissingArguments.Error())
	assert.Equal(t, "Malformed input", ErrMalformedInput.Error())
	assert.Equal(t, "100002", ErrMalformedInput.Code())
	assert.Equal(t, "42", ErrorCode(42).Error())
}
