package cmd

import (
	"fmt"
	"io"

	"solanaswap/core"
	"solanaswap/handler/render"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/uuid"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

// stdinArg read the json request from stdin
const stdinArg = "-"

func runSwap(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return core.ErrMissingArguments
	}

	ctx := cmd.Context()
	log := logger.FromContext(ctx).WithField("trace", uuid.New())
	ctx = logger.WithContext(ctx, log)

	raw := args[0]
	if raw == stdinArg {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("%w: read stdin: %v", core.ErrMalformedInput, err)
		}

		raw = string(data)
	}

	req, err := provideSwapService().ParseRequest(ctx, raw)
	if err != nil {
		return err
	}

	proposal := core.NewProposal(req)
	log.WithFields(structs.Map(proposal.Data)).Debugln("proposal built")

	return render.Proposal(cmd.OutOrStdout(), proposal)
}
