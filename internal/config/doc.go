// Package config loads plantdeck settings from flags, environment and a
// YAML file.
//
// # Sources
//
// Values are resolved in this order, highest first:
//   - command-line flags bound with Loader.BindFlag
//   - environment: PLANTDECK_API_KEY, PLANTDECK_API_BASE_URL, ... (RAPIDAPI_KEY
//     is accepted for the API key)
//   - the config file
//   - built-in defaults
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/plantdeck/config.yaml or $HOME/.config/plantdeck/config.yaml
//   - macOS: $HOME/.config/plantdeck/config.yaml
//   - Windows: %LOCALAPPDATA%\plantdeck\config.yaml
//
// A missing default file is not an error. A file named with --config must exist.
//
// # Usage Example
//
//	loader := config.NewLoader(configFile)
//	_ = loader.BindFlag(config.KeyAPIKey, cmd.Flags().Lookup("api-key"))
//	cfg, err := loader.Load()
//	if err != nil {
//	    return err
//	}
//	client := catalog.NewClient(cfg.RequestConfig(), nil)
//
// The file holds the API key, so WriteDefault creates it with 0600 permissions.
package config
