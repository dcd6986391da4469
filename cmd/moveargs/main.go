// Command moveargs serializes Move transaction arguments from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/branched-services/go-moveargs"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.DevLogs)
	if err != nil {
		return err
	}

	if cfg.CallFile != "" {
		return runCall(logger, cfg, stdout)
	}
	return runValue(logger, cfg, stdout)
}

func newLogger(level string, dev bool) (logr.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if dev {
		zapCfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("invalid log level: %w", err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := zapCfg.Build()
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl), nil
}

func runValue(logger logr.Logger, cfg *config, stdout io.Writer) error {
	tag, err := moveargs.ParseTypeTag(cfg.Type)
	if err != nil {
		return err
	}
	logger.V(1).Info("parsed type tag", "typeTag", tag.String(), "mode", cfg.Mode.String())

	value, err := moveargs.ParseEntry(cfg.Value, cfg.Mode)
	if err != nil {
		return err
	}
	if tag == moveargs.TypeBool {
		if value, err = moveargs.EnsureBoolean(value); err != nil {
			return err
		}
	}

	b, err := moveargs.SerializeArgToBytes(value, tag)
	if err != nil {
		return err
	}
	logger.V(1).Info("serialized value", "typeTag", tag.String(), "bytes", len(b))

	_, err = fmt.Fprintln(stdout, hexutil.Encode(b))
	return err
}

func runCall(logger logr.Logger, cfg *config, stdout io.Writer) error {
	cf, err := readCallFile(cfg.CallFile)
	if err != nil {
		return err
	}

	var module *moveargs.Module
	if cfg.ABIFile != "" {
		abiJSON, err := os.ReadFile(cfg.ABIFile)
		if err != nil {
			return fmt.Errorf("reading abi: %w", err)
		}
		if module, err = moveargs.ParseModuleABI(string(abiJSON)); err != nil {
			return err
		}
		logger.V(1).Info("loaded module abi", "module", module.ID().String(), "entryFunctions", module.EntryFunctionNames())
	}

	call, err := cf.buildCall(module)
	if err != nil {
		return err
	}
	logger.Info("built entry function call", "function", call.FullName(), "args", len(call.Args()))

	for i, arg := range call.Args() {
		if _, err := fmt.Fprintf(stdout, "arg[%d] %s\n", i, hexutil.Encode(arg)); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(stdout, "payload %s\n", call.Payload().Hex())
	return err
}
