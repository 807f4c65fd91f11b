package main

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	defaultCount    = 1
	defaultLogLevel = "info"
)

type configFlags struct {
	PrivateKey string `short:"k" long:"privkey" env:"ETHADDR_PRIVKEY" description:"Private key as 64 hex characters; a new key is generated when omitted"`
	PublicKey  string `short:"p" long:"pubkey" description:"Public key as 128 hex characters (x || y); only the address is derived"`
	Count      int    `short:"n" long:"count" description:"Number of key pairs to generate when no key is supplied"`
	Prefix     bool   `long:"prefix" description:"Print values with a 0x prefix"`
	LogLevel   string `long:"loglevel" description:"Logging level {debug, info, warn, error}"`
}

func parseConfig(args []string) (*configFlags, error) {
	cfg := &configFlags{
		Count:    defaultCount,
		LogLevel: defaultLogLevel,
	}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	parser.Usage = "[OPTIONS]\n\nDerives Ethereum addresses from secp256k1 key pairs."
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		return nil, errors.Errorf("unexpected arguments: %v", remainingArgs)
	}

	if cfg.PrivateKey != "" && cfg.PublicKey != "" {
		return nil, errors.New("--privkey and --pubkey cannot be used together")
	}
	if cfg.Count < 1 {
		return nil, errors.Errorf("--count must be at least 1, got %d", cfg.Count)
	}
	if cfg.Count > 1 && (cfg.PrivateKey != "" || cfg.PublicKey != "") {
		return nil, errors.New("--count cannot be used with a supplied key")
	}

	return cfg, nil
}
