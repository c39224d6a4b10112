package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kirsle/configdir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const appName = "termtris"

const (
	FPSKey      = "fps"
	LogFileKey  = "log-file"
	ScoresDBKey = "scores-db"
	SeedKey     = "seed"
	PlayerKey   = "player"
	KeysKey     = "keys"
)

// DefaultFPS is the frame rate the game was tuned for
const DefaultFPS = 59.73

// KeyBindings maps every game action to the key names that trigger it.
// Special keys use tcell key names ("Left", "Tab", "Esc"), runes are the
// character itself.
type KeyBindings struct {
	Left        []string `mapstructure:"left" json:"left"`
	Right       []string `mapstructure:"right" json:"right"`
	RotateLeft  []string `mapstructure:"rotate_left" json:"rotate_left"`
	RotateRight []string `mapstructure:"rotate_right" json:"rotate_right"`
	SoftDrop    []string `mapstructure:"soft_drop" json:"soft_drop"`
	HardDrop    []string `mapstructure:"hard_drop" json:"hard_drop"`
	Pause       []string `mapstructure:"pause" json:"pause"`
	Quit        []string `mapstructure:"quit" json:"quit"`
}

// DefaultKeyBindings supports both QWERTY and QWERTZ layouts for rotation
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:        []string{"Left"},
		Right:       []string{"Right"},
		RotateLeft:  []string{"y", "z"},
		RotateRight: []string{"x"},
		SoftDrop:    []string{"Down"},
		HardDrop:    []string{"Up"},
		Pause:       []string{"Tab", "p"},
		Quit:        []string{"Esc", "q"},
	}
}

type Settings struct {
	configPath string
}

// Keys lists the settings that can be changed with `config set`
var Keys = []string{FPSKey, LogFileKey, ScoresDBKey, SeedKey, PlayerKey}

// KeyActions are the actions of KeyBindings, set with `config set keys.<action>`
var KeyActions = []string{"left", "right", "rotate_left", "rotate_right", "soft_drop", "hard_drop", "pause", "quit"}

// ConfigKeys lists every name `config set` and `config get` accept
func ConfigKeys() []string {
	keys := append([]string{}, Keys...)
	for _, action := range KeyActions {
		keys = append(keys, KeysKey+"."+action)
	}
	return keys
}

func ReadSettings() (*Settings, error) {
	configPath := configdir.LocalConfig(appName)
	configPathFlag := viper.GetString("config-path")
	if len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := configdir.MakePath(configPath)
	if err != nil {
		return nil, err
	}

	viper.SetDefault(FPSKey, DefaultFPS)
	viper.SetDefault(LogFileKey, filepath.Join(configPath, ".termtris.log"))
	viper.SetDefault(ScoresDBKey, filepath.Join(configPath, "scores.db"))
	viper.SetDefault(SeedKey, int64(0))

	viper.SetConfigType("json")
	viper.SetConfigFile(settingsFile(configPath))
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			// Force config creation
			if err := viper.SafeWriteConfigAs(settingsFile(configPath)); err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}
	return &Settings{configPath: configPath}, nil
}

// ResetSettings deletes the settings file so the next ReadSettings starts
// from the defaults
func ResetSettings() error {
	configPath := configdir.LocalConfig(appName)
	if configPathFlag := viper.GetString("config-path"); len(configPathFlag) > 0 {
		configPath = configPathFlag
	}
	err := os.Remove(settingsFile(configPath))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not reset settings: %w", err)
	}
	return nil
}

func settingsFile(configPath string) string {
	return filepath.Join(configPath, "settings.json")
}

// ConfigPath is the directory holding settings.json
func (s *Settings) ConfigPath() string {
	return s.configPath
}

func (s *Settings) FPS() float64 {
	fps := viper.GetFloat64(FPSKey)
	if fps <= 0 {
		return DefaultFPS
	}
	return fps
}

func (s *Settings) LogFile() string {
	return viper.GetString(LogFileKey)
}

func (s *Settings) ScoresDB() string {
	return viper.GetString(ScoresDBKey)
}

// Seed returns the configured random seed, 0 means seed from the clock
func (s *Settings) Seed() int64 {
	return viper.GetInt64(SeedKey)
}

func (s *Settings) Player() string {
	return viper.GetString(PlayerKey)
}

func (s *Settings) SetPlayer(name string) error {
	viper.Set(PlayerKey, name)
	return viper.WriteConfig()
}

// KeyBindings returns the configured bindings. Actions missing from the
// settings file keep their default keys.
func (s *Settings) KeyBindings() (KeyBindings, error) {
	bindings := DefaultKeyBindings()
	raw := viper.Get(KeysKey)
	if raw == nil {
		return bindings, nil
	}
	if err := mapstructure.Decode(raw, &bindings); err != nil {
		return DefaultKeyBindings(), fmt.Errorf("invalid key bindings: %w", err)
	}
	return bindings, nil
}

func (s *Settings) setKeyBindings(bindings KeyBindings) error {
	encoded := map[string]interface{}{}
	if err := mapstructure.Decode(bindings, &encoded); err != nil {
		return err
	}
	viper.Set(KeysKey, encoded)
	return viper.WriteConfig()
}

// keyAction decodes the bindings into a map keyed by action and checks that
// key names one of them
func (s *Settings) keyAction(key string) (map[string]interface{}, string, error) {
	action := strings.TrimPrefix(key, KeysKey+".")
	bindings, err := s.KeyBindings()
	if err != nil {
		return nil, "", err
	}
	encoded := map[string]interface{}{}
	if err := mapstructure.Decode(bindings, &encoded); err != nil {
		return nil, "", err
	}
	if _, ok := encoded[action]; !ok {
		return nil, "", fmt.Errorf("unknown config: %s", key)
	}
	return encoded, action, nil
}

// setKeys binds an action to a comma separated list of key names
func (s *Settings) setKeys(key string, value string) error {
	encoded, action, err := s.keyAction(key)
	if err != nil {
		return err
	}
	var names []string
	for _, name := range strings.Split(value, ",") {
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("%s needs at least one key", key)
	}
	encoded[action] = names

	var bindings KeyBindings
	if err := mapstructure.Decode(encoded, &bindings); err != nil {
		return err
	}
	if err := s.setKeyBindings(bindings); err != nil {
		return fmt.Errorf("error saving settings: %s", err)
	}
	return nil
}

// Set validates and stores a single setting
func (s *Settings) Set(key string, value string) error {
	if strings.HasPrefix(key, KeysKey+".") {
		return s.setKeys(key, value)
	}
	switch key {
	case FPSKey:
		fps, err := strconv.ParseFloat(value, 64)
		if err != nil || fps <= 0 {
			return fmt.Errorf("fps must be a positive number, got %q", value)
		}
		viper.Set(key, fps)
	case SeedKey:
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer, got %q", value)
		}
		viper.Set(key, seed)
	case LogFileKey, ScoresDBKey, PlayerKey:
		viper.Set(key, value)
	default:
		return fmt.Errorf("unknown config: %s", key)
	}
	err := viper.WriteConfig()
	if err != nil {
		return fmt.Errorf("error saving settings: %s", err)
	}
	return nil
}

// Get returns the current value of a setting as text
func (s *Settings) Get(key string) (string, error) {
	if strings.HasPrefix(key, KeysKey+".") {
		encoded, action, err := s.keyAction(key)
		if err != nil {
			return "", err
		}
		return strings.Join(encoded[action].([]string), ","), nil
	}
	for _, k := range Keys {
		if k == key {
			return viper.GetString(key), nil
		}
	}
	return "", fmt.Errorf("unknown config: %s", key)
}

func warn(err error) {
	fmt.Fprintln(os.Stderr, "Error saving settings: ", err)
}
