package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "tabler"

// applyEnvironment sets every flag the user left unset from its environment
// variable, if present. Global flags read TABLER_<FLAG>; command flags read
// TABLER_<COMMAND>_<FLAG>.
func applyEnvironment(cmd *cobra.Command) error {
	var errs []string
	errs = append(errs, mapEnvironment(envPrefix, cmd.Root().PersistentFlags())...)
	if cmd != cmd.Root() {
		prefix := fmt.Sprintf("%s_%s", envPrefix, cmd.Name())
		errs = append(errs, mapEnvironment(prefix, cmd.LocalNonPersistentFlags())...)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("error mapping environment variables to flags: %s", strings.Join(errs, "; "))
}

func mapEnvironment(prefix string, flags *pflag.FlagSet) []string {
	var errs []string
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(key) {
			return
		}
		if err := flags.Set(f.Name, fmt.Sprintf("%v", v.Get(key))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	return errs
}
