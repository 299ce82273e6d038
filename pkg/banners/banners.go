package banners

import (
	"fmt"

	"github.com/common-fate/profilerm/internal/build"
)

func WithVersion() string {
	return fmt.Sprintf("profilerm version: %s (commit %s, built %s)\n", build.Version, build.Commit, build.Date)
}
