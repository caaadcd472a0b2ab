package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version = "1.2.0"

	GitCommit = "unknown"
	assert.Equal(t, "1.2.0", GetVersionString())

	GitCommit = "0123456789abcdef"
	assert.Equal(t, "1.2.0 (0123456)", GetVersionString())

	GitCommit = "abc"
	assert.Equal(t, "1.2.0 (abc)", GetVersionString())
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()
	assert.Contains(t, info, "Version: "+Version)
	assert.Contains(t, info, "Platform: "+Get().Platform)
}
