package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/branched-services/go-moveargs"
)

const (
	envPrefix = "MOVEARGS"

	typeKey     = "type"
	valueKey    = "value"
	modeKey     = "mode"
	callKey     = "call"
	abiKey      = "abi"
	logLevelKey = "log-level"
	devLogsKey  = "dev-logs"
)

type config struct {
	Type     string
	Value    string
	Mode     moveargs.EntryMode
	CallFile string
	ABIFile  string
	LogLevel string
	DevLogs  bool
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("moveargs", pflag.ContinueOnError)

	fs.String(typeKey, "", "Move type tag of --value, e.g. vector<u64>")
	fs.String(valueKey, "", "Value to serialize against --type")
	fs.String(modeKey, moveargs.EntryString.String(), "How --value is read: string, hex or decimal")
	fs.String(callKey, "", "Path to a YAML entry function call description")
	fs.String(abiKey, "", "Path to the JSON ABI of the module named in --call")
	fs.String(logLevelKey, "info", "Log level (debug, info, warn, error)")
	fs.Bool(devLogsKey, false, "Use the human readable development log encoder")

	return fs
}

// getViper parses args and layers MOVEARGS_* environment variables under them.
func getViper(args []string) (*viper.Viper, error) {
	v := viper.New()

	fs := buildFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	return v, nil
}

func loadConfig(args []string) (*config, error) {
	v, err := getViper(args)
	if err != nil {
		return nil, err
	}

	mode, err := moveargs.ParseEntryMode(v.GetString(modeKey))
	if err != nil {
		return nil, err
	}

	cfg := &config{
		Type:     v.GetString(typeKey),
		Value:    v.GetString(valueKey),
		Mode:     mode,
		CallFile: v.GetString(callKey),
		ABIFile:  v.GetString(abiKey),
		LogLevel: v.GetString(logLevelKey),
		DevLogs:  v.GetBool(devLogsKey),
	}

	if (cfg.Type == "") == (cfg.CallFile == "") {
		return nil, fmt.Errorf("exactly one of --%s or --%s is required", typeKey, callKey)
	}
	if cfg.ABIFile != "" && cfg.CallFile == "" {
		return nil, fmt.Errorf("--%s requires --%s", abiKey, callKey)
	}

	return cfg, nil
}
