package config

// Level tags, printed around "[INFO]" and "[ERROR]".
const (
	LogInfoColor  = "\033[32m"
	LogErrorColor = "\033[31m"
	LogColorReset = "\033[0m"
)

// Logger name prefixes.
const (
	AppPrefixColor     = "\033[32m"
	ManagerPrefixColor = "\033[36m"
)

// Prefix returns a coloured logger prefix for name.
func Prefix(name, color string) string {
	return color + name + LogColorReset + " "
}
