// Save and restore real environment variables around tests.

package testutils

import (
	"os"
)

type EnvVarsMock struct {
	names []string
	saved map[string]*string
}

func NewEnvVarsMock(names []string) *EnvVarsMock {
	evm := &EnvVarsMock{
		names: append([]string(nil), names...),
		saved: make(map[string]*string),
	}
	for _, name := range names {
		if value, exists := os.LookupEnv(name); exists {
			evm.saved[name] = &value
		} else {
			evm.saved[name] = nil
		}
	}
	return evm
}

// Set the environment to env, names not in env are unset.
func (evm *EnvVarsMock) Set(env map[string]string) {
	for _, name := range evm.names {
		if value, ok := env[name]; ok {
			os.Setenv(name, value)
		} else {
			os.Unsetenv(name)
		}
	}
}

// Get the current state, absent variables are missing from the result.
func (evm *EnvVarsMock) Get() map[string]string {
	env := make(map[string]string)
	for _, name := range evm.names {
		if value, exists := os.LookupEnv(name); exists {
			env[name] = value
		}
	}
	return env
}

func (evm *EnvVarsMock) Unmock() {
	for name, value := range evm.saved {
		if value == nil {
			os.Unsetenv(name)
		} else {
			os.Setenv(name, *value)
		}
	}
}
