package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/h256/infrastructure/logger"
)

const (
	sumSubCmd     = "sum"
	parseSubCmd   = "parse"
	sortSubCmd    = "sort"
	compareSubCmd = "compare"
)

type configFlags struct {
	LogLevel logger.Level `long:"loglevel" short:"d" default:"warn" description:"Logging level written to stderr {trace, debug, info, warn, error, critical, off}"`
	LogDir   string       `long:"logdir" description:"Directory to write h256.log and h256_err.log into"`
}

type sumConfig struct {
	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

type parseConfig struct {
	Args struct {
		Hashes []string `positional-arg-name:"HEX" required:"1"`
	} `positional-args:"yes"`
}

type sortConfig struct {
	Unique bool `long:"unique" short:"u" description:"Print each distinct hash only once"`
}

type compareConfig struct {
	Args struct {
		First  string `positional-arg-name:"A" required:"yes"`
		Second string `positional-arg-name:"B" required:"yes"`
	} `positional-args:"yes"`
}

func parseCommandLine(args []string) (subCommand string, cfg *configFlags, config interface{}, err error) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)
	parser.Usage = "[OPTIONS] <sum | parse | sort | compare>"

	sumConf := &sumConfig{}
	parser.AddCommand(sumSubCmd, "Prints the SHA-256 hash of files",
		"Prints the SHA-256 hash of each given file, or of stdin if no file is given", sumConf)

	parseConf := &parseConfig{}
	parser.AddCommand(parseSubCmd, "Validates and normalizes hex hashes",
		"Validates each given 64-character hex hash and prints it in lower case", parseConf)

	sortConf := &sortConfig{}
	parser.AddCommand(sortSubCmd, "Sorts hashes read from stdin",
		"Reads one hex hash per line from stdin and prints them in ascending order", sortConf)

	compareConf := &compareConfig{}
	parser.AddCommand(compareSubCmd, "Compares two hashes",
		"Prints -1, 0 or 1 depending on whether A is less than, equal to or greater than B", compareConf)

	_, err = parser.ParseArgs(args)
	if err != nil {
		return "", nil, nil, err
	}

	switch parser.Command.Active.Name {
	case sumSubCmd:
		config = sumConf
	case parseSubCmd:
		config = parseConf
	case sortSubCmd:
		config = sortConf
	case compareSubCmd:
		config = compareConf
	}

	return parser.Command.Active.Name, cfg, config, nil
}
