package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/term"
)

const apiKeyEnv = "N2YO_API_KEY"

// errNoCredential is returned when every resolution source came up empty.
var errNoCredential = errors.New("no API credential: pass --api-key, set " + apiKeyEnv + ", or add api-key to the config file")

// resolveAPIKey finds the credential in precedence order: the --api-key flag,
// the environment, the config file, then an interactive prompt when stdin is
// a terminal.
func (a *app) resolveAPIKey() (string, error) {
	if a.apiKey != "" {
		return a.apiKey, nil
	}
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		return key, nil
	}
	if key, err := configFileAPIKey(); err == nil && key != "" {
		return key, nil
	}
	if key, ok := a.promptAPIKey(); ok {
		return key, nil
	}
	return "", errNoCredential
}

// configFileAPIKey reads api-key from ~/.config/satwatch/config.yaml.
func configFileAPIKey() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(home, ".config", "satwatch"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("read config: %w", err)
	}
	return strings.TrimSpace(v.GetString("api-key")), nil
}

// promptAPIKey asks on the terminal without echoing. Skipped when stdin is
// not a TTY so scripted runs fail fast instead of hanging.
func (a *app) promptAPIKey() (string, bool) {
	f, isFile := a.stdin.(*os.File)
	if !isFile || !term.IsTerminal(int(f.Fd())) {
		return "", false
	}

	fmt.Fprint(a.stderr, "N2YO API key: ")
	raw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(a.stderr)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(raw))
	return key, key != ""
}
