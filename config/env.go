package config

import (
	"os"
	"runtime"
	"strconv"
)

// EnvNumWorkers overrides the number of profiles resolved in parallel.
const EnvNumWorkers = "SITECONF_NUMWORKERS"

// GetNumWorkers returns the number of workers to use for parallel profile
// resolution. It returns the value of the SITECONF_NUMWORKERS OS env variable
// if set to a positive integer, else the number of logical CPUs.
func GetNumWorkers() int {
	if v := os.Getenv(EnvNumWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}
