package testutils

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var ENV_VARS_MOCK_TEST_NAMES = []string{
	"TESTUTILS_ENV_VARS_MOCK_A",
	"TESTUTILS_ENV_VARS_MOCK_B",
}

func TestEnvVarsMock(t *testing.T) {
	os.Setenv("TESTUTILS_ENV_VARS_MOCK_A", "orig")
	os.Unsetenv("TESTUTILS_ENV_VARS_MOCK_B")
	defer os.Unsetenv("TESTUTILS_ENV_VARS_MOCK_A")

	evm := NewEnvVarsMock(ENV_VARS_MOCK_TEST_NAMES)
	evm.Set(map[string]string{"TESTUTILS_ENV_VARS_MOCK_B": "b"})

	{
		want := map[string]string{"TESTUTILS_ENV_VARS_MOCK_B": "b"}
		got := evm.Get()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Set: mismatch (-want +got):\n%s", diff)
		}
	}

	evm.Unmock()
	{
		want := map[string]string{"TESTUTILS_ENV_VARS_MOCK_A": "orig"}
		got := evm.Get()
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Unmock: mismatch (-want +got):\n%s", diff)
		}
	}
}
