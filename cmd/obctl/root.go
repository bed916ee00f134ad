package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/p2pvps/openbazaar-node/internal/config"
	"github.com/p2pvps/openbazaar-node/internal/logger"
	"github.com/p2pvps/openbazaar-node/pkg/openbazaar"
)

// flagKeys maps persistent flags onto config keys so flags override env.
var flagKeys = map[string]string{
	"base-url":    "ob_base_url",
	"port":        "ob_port",
	"username":    "ob_username",
	"password":    "ob_password",
	"credentials": "ob_credentials",
	"timeout":     "ob_timeout_seconds",
	"log-level":   "log_level",
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "obctl",
		Short:         "Command-line client for an OpenBazaar daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "http://localhost", "Daemon base URL (scheme and host)")
	flags.Int("port", openbazaar.DefaultPort, "Daemon API port (0 uses the base URL as-is)")
	flags.String("username", "", "API username")
	flags.String("password", "", "API password")
	flags.String("credentials", "", "Prebuilt Authorization header value (overrides username/password)")
	flags.Int64("timeout", 0, "Request timeout in seconds (0 disables)")
	flags.String("log-level", "info", "Log level, debug prints request traces")
	flags.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})

	env := &cliEnv{v: v}

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newNotificationsCmd(env))
	rootCmd.AddCommand(newListingsCmd(env))
	rootCmd.AddCommand(newProfileCmd(env))
	rootCmd.AddCommand(newWalletCmd(env))
	rootCmd.AddCommand(newOrderCmd(env))

	return rootCmd
}

// cliEnv lazily builds the daemon client from flags and environment.
type cliEnv struct {
	v *viper.Viper
}

func (e *cliEnv) client() (*openbazaar.Client, error) {
	cfg, err := config.LoadWith(e.v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return openbazaar.New(clientCfg, openbazaar.WithLogger(log))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSONFile loads a request body from disk, "-" reads stdin.
func readJSONFile(path string) (json.RawMessage, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%s does not contain valid JSON", path)
	}
	return json.RawMessage(raw), nil
}
