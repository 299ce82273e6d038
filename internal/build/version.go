package build

// Set with -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

func IsDev() bool {
	return Version == "dev"
}

// BinaryName returns the name of the profilerm binary, which is prefixed
// with a 'd' for development builds so both can be installed side by side.
func BinaryName() string {
	if IsDev() {
		return "dprofilerm"
	}
	return "profilerm"
}
