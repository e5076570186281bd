// Package config is an implementation of the env.Source interface from
// go-simpler.org, reading KEY=value pairs out of a .env style file.
package config

import (
	"os"
	"strings"

	"jdoc.mleku.dev/chk"
)

// Env is a key/value map used to represent environment variables.
type Env map[string]string

// GetEnv reads a file expected to represent a collection of KEY=value in
// standard shell environment variable format.
func GetEnv(path string) (env Env, err error) {
	var s []byte
	env = make(Env)
	if s, err = os.ReadFile(path); chk.T(err) {
		return
	}
	for _, line := range strings.Split(string(s), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		split := strings.SplitN(line, "=", 2)
		if len(split) != 2 {
			continue
		}
		env[strings.TrimSpace(split[0])] = strings.TrimSpace(split[1])
	}
	return
}

// LookupEnv returns the raw string value associated with a provided key name,
// used as a custom environment variable source for go-simpler.org/env.
func (env Env) LookupEnv(key string) (value string, ok bool) {
	value, ok = env[key]
	return
}
