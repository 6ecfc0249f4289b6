package mappins

import "fmt"

const (
	major = 0
	minor = 1
	patch = 0
)

// StringVersion returns the semantic version of the running binary.
func StringVersion() string {
	return fmt.Sprintf("v%d.%d.%d", major, minor, patch)
}
