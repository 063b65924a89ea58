package buildinfo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBuildData(t *testing.T) {
	origVersion, origCommit := buildVersion, buildCommit
	t.Cleanup(func() { buildVersion, buildCommit = origVersion, origCommit })
	buildVersion, buildCommit = "v1.2.3", "abc123"

	var buf bytes.Buffer
	PrintBuildData(&buf)

	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc123\n", buf.String())
}
