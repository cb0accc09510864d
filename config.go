package argbind

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigLoader loads construction parameters from an external config file.
// A binder with a non-nil loader has config-file capability: when a path
// is supplied (explicitly or on the command line under the config key),
// loaded values sit between CLI values and explicit params in precedence.
type ConfigLoader interface {
	Load(path string) (Params, error)
}

// YAMLLoader loads a YAML (or JSON) mapping from a file.
type YAMLLoader struct{}

func (YAMLLoader) Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	params := Params{}
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return params, nil
}

// EnvFileLoader loads a flat KEY=VAL file. Lines starting with "#" or "//"
// are comments. All values are strings.
type EnvFileLoader struct{}

func (EnvFileLoader) Load(path string) (Params, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	params := Params{}
	scanner := bufio.NewScanner(file)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("error on line %d: not of form KEY=VAL", i)
		}
		params[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return params, nil
}
