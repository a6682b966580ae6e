package cmd

import (
	"solanaswap/core"
	"solanaswap/service/swap"
)

func provideConfig() *core.Config {
	return &cfg
}

// ------------------service------------------------------------

func provideSwapService() core.SwapService {
	return swap.New()
}

func provideSkillMetadata() (*core.SkillMetadata, error) {
	return core.NewSkillMetadata(provideConfig().Skill)
}
