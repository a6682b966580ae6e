package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"solanaswap/config"
	"solanaswap/core"

	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

var (
	cfgFile     string
	cfg         core.Config
	debugMode   bool
	initialized bool
)

var rootCmd = cobra.Command{
	Use:   "solana-swap <json-argument>",
	Short: "propose a token swap for the agent risk manager",
	Long: `Build a swap proposal from a json request such as
{"from_token":"SOL","to_token":"USDC","amount":5}
Pass "-" to read the request from stdin.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runSwap,
}

func init() {
	cobra.OnInitialize(initConfig, initLogging, initDone)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file. default is ~/.solana-swap.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable or disable debug model")

	// "help" is a request argument like any other; -h and --help still print usage
	rootCmd.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ver string) {
	rootCmd.Version = ver
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute run the root command with args, the error line goes to out. Returns the exit code.
func execute(args []string, out io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, core.ErrMalformedInput) {
			logrus.WithError(err).Errorln("swap request rejected")
		}

		fmt.Fprintln(out, "Error:", err)
		return 1
	}

	return 0
}

func initConfig() {
	if initialized {
		return
	}

	if cfgFile == "" {
		dir, err := homedir.Dir()
		if err != nil {
			panic(err)
		}

		filename := path.Join(dir, ".solana-swap.yaml")
		info, err := os.Stat(filename)
		if err == nil && !info.IsDir() {
			cfgFile = filename
		}
	}

	if cfgFile != "" {
		logrus.Debugln("use config file", cfgFile)
	}

	if err := config.Load(cfgFile, &cfg); err != nil {
		panic(err)
	}
}

func initLogging() {
	if initialized {
		return
	}

	level, _ := logrus.ParseLevel(cfg.Log.Level)
	if debugMode {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	if cfg.Log.Format == config.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	structs.DefaultTagName = "json"
}

func initDone() {
	initialized = true
}
