// Logger for numthreads.
//
// Output goes to stderr so that it never mixes with the shell commands
// printed on stdout. Level and format are configured from the environment:
//
//      NUMTHREADS_LOG_LEVEL=debug|info|warning|...
//      NUMTHREADS_LOG_JSON=true|false

package numthreads

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_LOG_LEVEL           = logrus.InfoLevel
	LOGGER_COMPONENT_FIELD_NAME = "comp"
	LOG_LEVEL_ENV_VAR           = "NUMTHREADS_LOG_LEVEL"
	LOG_JSON_ENV_VAR            = "NUMTHREADS_LOG_JSON"
)

// Caller PC -> file:line# cache, formatting is done once per call site:
type logCallerCache struct {
	m     *sync.Mutex
	files map[uintptr]string
}

func (c *logCallerCache) LogCallerPrettyfier(f *runtime.Frame) (function string, file string) {
	c.m.Lock()
	defer c.m.Unlock()
	file, ok := c.files[f.PC]
	if !ok {
		_, filename := path.Split(f.File)
		file = fmt.Sprintf("%s:%d", filename, f.Line)
		c.files[f.PC] = file
	}
	return "", file
}

var logCallerFileCache = &logCallerCache{
	m:     &sync.Mutex{},
	files: make(map[uintptr]string),
}

// The desired order is time, level, comp, file, func, other keys sorted
// alphabetically, msg. Other keys return 0 at lookup.
var KeyIndexOrder = map[string]int{
	logrus.FieldKeyTime:         -5,
	logrus.FieldKeyLevel:        -4,
	LOGGER_COMPONENT_FIELD_NAME: -3,
	logrus.FieldKeyFile:         -2,
	logrus.FieldKeyFunc:         -1,
	logrus.FieldKeyMsg:          1,
}

func LogSortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		order_i, order_j := KeyIndexOrder[keys[i]], KeyIndexOrder[keys[j]]
		if order_i != 0 || order_j != 0 {
			return order_i < order_j
		}
		return strings.Compare(keys[i], keys[j]) == -1
	})
}

var LogTextFormatter = &logrus.TextFormatter{
	DisableColors:    true,
	FullTimestamp:    true,
	CallerPrettyfier: logCallerFileCache.LogCallerPrettyfier,
	DisableSorting:   false,
	SortingFunc:      LogSortKeys,
}

var LogJsonFormatter = &logrus.JSONFormatter{
	CallerPrettyfier: logCallerFileCache.LogCallerPrettyfier,
}

var Log = &logrus.Logger{
	ReportCaller: true,
	Out:          os.Stderr,
	Formatter:    LogTextFormatter,
	Hooks:        make(logrus.LevelHooks),
	Level:        DEFAULT_LOG_LEVEL,
}

func GetLogLevelNames() []string {
	levelNames := make([]string, len(logrus.AllLevels))
	for i, level := range logrus.AllLevels {
		levelNames[i] = level.String()
	}
	return levelNames
}

// Apply NUMTHREADS_LOG_LEVEL and NUMTHREADS_LOG_JSON, unset variables leave
// the current settings in place.
func SetLoggerFromEnv() error {
	if levelName, ok := os.LookupEnv(LOG_LEVEL_ENV_VAR); ok && levelName != "" {
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf(
				"%s=%q: %w, valid levels: %s",
				LOG_LEVEL_ENV_VAR, levelName, err, strings.Join(GetLogLevelNames(), ", "),
			)
		}
		Log.SetLevel(level)
	}
	if useJson, ok := os.LookupEnv(LOG_JSON_ENV_VAR); ok && useJson != "" {
		enabled, err := strconv.ParseBool(useJson)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", LOG_JSON_ENV_VAR, useJson, err)
		}
		if enabled {
			Log.SetFormatter(LogJsonFormatter)
		} else {
			Log.SetFormatter(LogTextFormatter)
		}
	}
	return nil
}
