////////////////////////////////////////////////////////////////////////////////
// nft_drop: a capped-supply NFT drop with paid minting, delayed reveal and
// EIP-2981 royalties, hosted on a local sqlite state file
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"vsc_nft_drop/config"
	"vsc_nft_drop/contract"
	"vsc_nft_drop/sdk"
	"vsc_nft_drop/state/sqlite"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if code := contract.CodeOf(err); code != "" {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// globalFlags are accepted before or after the command name.
type globalFlags struct {
	statePath  string
	sender     string
	value      string
	deployFile string
	logLevel   string
	logFormat  string
}

func run(args []string, stdout, stderr io.Writer) error {
	rt, err := config.LoadRuntime()
	if err != nil {
		return err
	}

	var flags globalFlags
	flagSet := pflag.NewFlagSet("nft_drop", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&flags.statePath, "state", rt.StatePath, "sqlite state file (env NFT_DROP_STATE)")
	flagSet.StringVar(&flags.sender, "sender", "", "calling account, e.g. hive:tibfox")
	flagSet.StringVar(&flags.value, "value", "0", "payment attached to mint, in base units")
	flagSet.StringVar(&flags.deployFile, "config", "", "YAML deploy file (deploy only)")
	flagSet.StringVar(&flags.logLevel, "log-level", rt.LogLevel, "debug, info, warn or error (env NFT_DROP_LOG_LEVEL)")
	flagSet.StringVar(&flags.logFormat, "log-format", rt.LogFormat, "text or json (env NFT_DROP_LOG_FORMAT)")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stderr, flagSet)
		return nil
	}

	positional := flagSet.Args()
	if len(positional) == 0 {
		printHelp(stderr, flagSet)
		return errors.New("no command given")
	}
	cmd, ok := commands[positional[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", positional[0])
	}
	cmdArgs := positional[1:]
	if len(cmdArgs) != len(cmd.args) {
		return fmt.Errorf("usage: nft_drop %s %s", positional[0], cmd.usage())
	}

	logger, err := config.NewLogger(stderr, flags.logLevel, flags.logFormat)
	if err != nil {
		return err
	}
	store, err := sqlite.Open(flags.statePath)
	if err != nil {
		return err
	}
	defer store.Close()

	h := &host{
		store:  store,
		flags:  flags,
		stdout: stdout,
		opts: contract.Options{
			Address: sdk.Address(rt.ContractAddress),
			Logger:  logger,
		},
	}
	return cmd.run(h, cmdArgs)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, "nft_drop runs a capped-supply NFT drop against a local state file.\n\n")
	fmt.Fprintf(w, "Usage: nft_drop [flags] <command> [args]\n\nCommands:\n")
	for _, name := range commandNames() {
		fmt.Fprintf(w, "  %-34s %s\n", name+" "+commands[name].usage(), commands[name].help)
	}
	fmt.Fprintf(w, "\nFlags:\n%s", flagSet.FlagUsages())
}
