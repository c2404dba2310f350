package env

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"

	"github.com/amirrezaask/contacts/set"
)

// DotEnvFile is read once, on the first lookup. A missing file is ignored.
var DotEnvFile = ".env"

var (
	dotEnvOnce sync.Once
	dotEnvMap  map[string]string
)

func dotEnv() map[string]string {
	dotEnvOnce.Do(func() {
		m, err := godotenv.Read(DotEnvFile)
		if err != nil {
			m = map[string]string{}
		}
		dotEnvMap = m
	})
	return dotEnvMap
}

func getEnv(key string) string {
	// .env
	value := dotEnv()[key]

	// os.Getenv
	if v := os.Getenv(key); v != "" {
		value = v
	}

	return value
}

func GetEnvDefault(key, def string) string {
	value := getEnv(key)
	if value == "" {
		return def
	}
	return value
}

// GetEnvIntDefault falls back to def when the key is unset or not an integer.
func GetEnvIntDefault(key string, def int) int {
	value := getEnv(key)
	if value == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return def
	}
	return n
}

func ParseCommaSeperatedAsSet(input string) set.Set[string] {
	output := set.Set[string]{}
	for _, seg := range strings.Split(input, ",") {
		if seg = strings.TrimSpace(seg); seg != "" {
			output.Add(seg)
		}
	}

	return output
}
