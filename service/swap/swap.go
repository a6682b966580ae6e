package swap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"solanaswap/core"
	"solanaswap/pkg/number"

	"github.com/fox-one/pkg/logger"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "solana_swap.request.schema.json"

type service struct {
	schema *jsonschema.Schema
}

// New new swap service
func New() core.SwapService {
	schema, err := jsonschema.CompileString(schemaURL, core.RequestSchema)
	if err != nil {
		panic(err)
	}

	return &service{
		schema: schema,
	}
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", core.ErrMalformedInput, fmt.Sprintf(format, args...))
}

// ParseRequest decode and validate the json swap request. Values are passed
// through as written, only their json types are checked.
func (s *service) ParseRequest(ctx context.Context, raw string) (*core.SwapRequest, error) {
	log := logger.FromContext(ctx)

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed("decode request: %v", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, malformed("unexpected data after request object")
	}

	if !checkText(raw) {
		return nil, malformed("request holds invalid utf-8 or an unpaired surrogate escape")
	}

	if err := s.schema.Validate(doc); err != nil {
		log.WithError(err).Debugln("request does not match schema")
		return nil, malformed("%v", err)
	}

	obj := doc.(map[string]interface{})
	req := &core.SwapRequest{
		FromToken: obj["from_token"].(string),
		ToToken:   obj["to_token"].(string),
	}

	switch v := obj["amount"].(type) {
	case json.Number:
		if _, err := number.Literal(v.String()); err != nil {
			return nil, malformed("amount %s: %v", v, err)
		}

		req.Amount = core.NumberAmount(v)
	case string:
		req.Amount = core.TextAmount(v)
	default:
		return nil, malformed("amount must be a number or a string")
	}

	return req, nil
}
