package browser

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Platform is the family of operating systems which share a Chrome
// user data layout.
type Platform int

const (
	PlatformUnix Platform = iota
	PlatformMacOS
	PlatformWindows
)

func (p Platform) String() string {
	switch p {
	case PlatformWindows:
		return "windows"
	case PlatformMacOS:
		return "macos"
	default:
		return "unix"
	}
}

// CurrentPlatform returns the platform the binary is running on.
// Anything other than windows and darwin is treated as a Unix-like system.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformUnix
	}
}

// Channel is a Chrome release channel.
type Channel int

const (
	ChannelStable Channel = iota
	ChannelCanary
)

func ChannelFromCanary(canary bool) Channel {
	if canary {
		return ChannelCanary
	}
	return ChannelStable
}

func (c Channel) String() string {
	if c == ChannelCanary {
		return "canary"
	}
	return "stable"
}

// LocalStateFilename is the name of the file Chrome uses to track profiles.
const LocalStateFilename = "Local State"

// LocalAppDataEnv holds the per-user application data folder on Windows.
const LocalAppDataEnv = "LOCALAPPDATA"

// ErrEnvNotSet is returned when the environment doesn't contain what
// is needed to locate the Local State file.
var ErrEnvNotSet = errors.New("required environment value is not set")

// Env is the slice of the process environment used for path resolution.
type Env struct {
	Getenv      func(key string) string
	UserHomeDir func() (string, error)
}

// OSEnv returns an Env backed by the current process.
func OSEnv() Env {
	return Env{
		Getenv:      os.Getenv,
		UserHomeDir: os.UserHomeDir,
	}
}

// The folder segments below the platform base directory for each channel.
var chromeDataDirWindows = map[Channel][]string{
	ChannelStable: {"Google", "Chrome", "User Data"},
	ChannelCanary: {"Google", "Chrome SxS", "User Data"},
}

var chromeDataDirMac = map[Channel][]string{
	ChannelStable: {"Library", "Application Support", "Google", "Chrome"},
	ChannelCanary: {"Library", "Application Support", "Google", "Chrome Canary"},
}

var chromeDataDirUnix = map[Channel][]string{
	ChannelStable: {".config", "google-chrome"},
	ChannelCanary: {".config", "google-chrome-canary"},
}

// LocalStatePath returns the path of Chrome's Local State file.
// No filesystem access is performed.
func LocalStatePath(p Platform, c Channel, env Env) (string, error) {
	var base string
	var segments []string

	switch p {
	case PlatformWindows:
		base = env.Getenv(LocalAppDataEnv)
		if base == "" {
			return "", errors.Wrapf(ErrEnvNotSet, "%s", LocalAppDataEnv)
		}
		segments = chromeDataDirWindows[c]
	case PlatformMacOS:
		home, err := env.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(ErrEnvNotSet, "home directory: %s", err)
		}
		base = home
		segments = chromeDataDirMac[c]
	default:
		home, err := env.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(ErrEnvNotSet, "home directory: %s", err)
		}
		base = home
		segments = chromeDataDirUnix[c]
	}

	parts := append([]string{base}, segments...)
	parts = append(parts, LocalStateFilename)
	return filepath.Join(parts...), nil
}
