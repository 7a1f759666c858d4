package cmd

import (
	"strconv"

	"github.com/harrison/find-in-jars/internal/config"
	"github.com/spf13/pflag"
)

// modeFlag is a boolean flag that selects one regex mode. All mode flags write
// the same target, so the last one on the command line wins, as in grep.
type modeFlag struct {
	target *config.RegexMode
	mode   config.RegexMode
}

func addModeFlag(flags *pflag.FlagSet, target *config.RegexMode, mode config.RegexMode, name, shorthand, usage string) {
	flag := flags.VarPF(&modeFlag{target: target, mode: mode}, name, shorthand, usage)
	flag.NoOptDefVal = "true"
}

func (f *modeFlag) String() string {
	if f.target == nil {
		return "false"
	}
	return strconv.FormatBool(*f.target == f.mode)
}

func (f *modeFlag) Set(value string) error {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.mode
	} else if *f.target == f.mode {
		*f.target = config.ModeExtended
	}
	return nil
}

// Type reports "bool" so help output shows no value placeholder
func (f *modeFlag) Type() string {
	return "bool"
}

// IsBoolFlag lets the flag be given without a value
func (f *modeFlag) IsBoolFlag() bool {
	return true
}
