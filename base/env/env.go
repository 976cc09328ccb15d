package env

import (
	"os"
)

// PodName example: ensmetadata-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: prod
func EnvName() string {
	return os.Getenv("ENV_NAME")
}
