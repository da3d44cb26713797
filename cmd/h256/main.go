package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

func main() {
	subCmd, cfg, config, err := parseCommandLine(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	err = initLog(cfg)
	if err != nil {
		printErrorAndExit(err)
	}

	err = runCommand(subCmd, config, os.Stdin, os.Stdout)
	if err != nil {
		log.Errorf("%s failed: %s", subCmd, err)
		backendLog.Close()
		printErrorAndExit(err)
	}
	backendLog.Close()
}

func runCommand(subCmd string, config interface{}, stdin io.Reader, stdout io.Writer) error {
	switch subCmd {
	case sumSubCmd:
		return sum(config.(*sumConfig), stdin, stdout)
	case parseSubCmd:
		return parse(config.(*parseConfig), stdout)
	case sortSubCmd:
		return sortHashes(config.(*sortConfig), stdin, stdout)
	case compareSubCmd:
		return compare(config.(*compareConfig), stdout)
	default:
		return errors.Errorf("Unknown sub-command '%s'", subCmd)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
