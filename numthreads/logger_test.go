package numthreads

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"

	"github.com/eparparita/numthreads/testutils"
)

func TestLogSortKeys(t *testing.T) {
	keys := []string{
		logrus.FieldKeyMsg,
		"zeta",
		logrus.FieldKeyFile,
		"alpha",
		LOGGER_COMPONENT_FIELD_NAME,
		logrus.FieldKeyLevel,
		logrus.FieldKeyTime,
	}
	LogSortKeys(keys)
	want := []string{
		logrus.FieldKeyTime,
		logrus.FieldKeyLevel,
		LOGGER_COMPONENT_FIELD_NAME,
		logrus.FieldKeyFile,
		"alpha",
		"zeta",
		logrus.FieldKeyMsg,
	}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSetLoggerFromEnv(t *testing.T) {
	evm := testutils.NewEnvVarsMock([]string{LOG_LEVEL_ENV_VAR, LOG_JSON_ENV_VAR})
	defer evm.Unmock()
	savedLevel, savedFormatter := Log.GetLevel(), Log.Formatter
	defer func() {
		Log.SetLevel(savedLevel)
		Log.SetFormatter(savedFormatter)
	}()

	evm.Set(map[string]string{LOG_LEVEL_ENV_VAR: "debug", LOG_JSON_ENV_VAR: "true"})
	if err := SetLoggerFromEnv(); err != nil {
		t.Fatal(err)
	}
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level: want: %s, got: %s", logrus.DebugLevel, Log.GetLevel())
	}
	if Log.Formatter != LogJsonFormatter {
		t.Fatalf("formatter: want: %T, got: %T", LogJsonFormatter, Log.Formatter)
	}

	for _, env := range []map[string]string{
		{LOG_LEVEL_ENV_VAR: "chatty"},
		{LOG_JSON_ENV_VAR: "maybe"},
	} {
		evm.Set(env)
		if err := SetLoggerFromEnv(); err == nil {
			t.Fatalf("%v: want error, got nil", env)
		}
	}
}

func TestSetLoggerFromEnvUnset(t *testing.T) {
	evm := testutils.NewEnvVarsMock([]string{LOG_LEVEL_ENV_VAR, LOG_JSON_ENV_VAR})
	defer evm.Unmock()
	evm.Set(nil)

	savedLevel := Log.GetLevel()
	if err := SetLoggerFromEnv(); err != nil {
		t.Fatal(err)
	}
	if Log.GetLevel() != savedLevel {
		t.Fatalf("level changed: want: %s, got: %s", savedLevel, Log.GetLevel())
	}
}
