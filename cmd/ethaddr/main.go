package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Quardex/ethaddress"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, os.Stdout, log); err != nil {
		log.Error("derivation failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg *configFlags, w io.Writer, log *zap.Logger) error {
	prefix := ""
	if cfg.Prefix {
		prefix = "0x"
	}

	if cfg.PublicKey != "" {
		addr, err := ethaddress.AddressFromPublicKey(cfg.PublicKey)
		if err != nil {
			return errors.Wrap(err, "invalid public key")
		}
		log.Debug("derived address from public key",
			zap.Stringer("address", addr))
		_, err = fmt.Fprintf(w, "Public key:  %s%s\nAddress:     %s%s\n",
			prefix, strings.ToLower(cfg.PublicKey), prefix, addr)
		return err
	}

	for i := 0; i < cfg.Count; i++ {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		kp, err := ethaddress.New(cfg.PrivateKey)
		if err != nil {
			if cfg.PrivateKey != "" {
				return errors.Wrap(err, "invalid private key")
			}
			return errors.Wrap(err, "unable to generate private key")
		}
		log.Debug("derived key pair", zap.Int("index", i),
			zap.Bool("generated", cfg.PrivateKey == ""),
			zap.Stringer("address", kp.Address()))

		err = writeKeyPair(w, kp, prefix)
		kp.Zero()
		if err != nil {
			return err
		}
	}
	return nil
}

func writeKeyPair(w io.Writer, kp *ethaddress.KeyPair, prefix string) error {
	_, err := fmt.Fprintf(w, "Private key: %s%s\nPublic key:  %s%s\nAddress:     %s%s\n",
		prefix, kp.PrivateKey(), prefix, kp.PublicKey(), prefix, kp.Address())
	return err
}
