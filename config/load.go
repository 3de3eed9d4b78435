package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv reads {name}.yaml from the working directory or the first of
// dirs (relative to it) that holds one, then overlays environment variables.
// POSTGRES_SSLMODE overrides postgres.sslMode: each underscore separated
// segment is matched against the keys the yaml already defines.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := locate(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	fromFile := k.Raw()
	overrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	})
	if err := k.Load(overrides, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func locate(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := []string{filepath.Join(wd, filename)}
	for _, dir := range dirs {
		candidates = append(candidates, filepath.Join(wd, dir, filename))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s or %v", filename, wd, dirs)
}

// canonicalizeEnvKey maps an env var name onto a dotted koanf path, reusing
// the spelling of keys present in existing. Unknown segments stay lower case.
func canonicalizeEnvKey(envKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(envKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey finds the key of level equal to segment once case and
// punctuation are ignored. It returns segment itself when nothing matches.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := fold(segment)
	for key, value := range level {
		if fold(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
