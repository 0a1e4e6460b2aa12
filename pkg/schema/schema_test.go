package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAnalysisSchemaShape(t *testing.T) {
	s := AnalysisSchema()
	require.Equal(t, genai.TypeObject, s.Type)
	assert.ElementsMatch(t, Required, s.Required)

	for _, k := range Required {
		assert.Contains(t, s.Properties, k)
	}
	for _, k := range []string{"pids", "modernPids", "filters"} {
		assert.Contains(t, s.Properties, k)
		assert.NotContains(t, s.Required, k)
	}

	pids := s.Properties["pids"]
	assert.ElementsMatch(t, []string{"roll", "pitch", "yaw"}, pids.Required)
	assert.ElementsMatch(t, []string{"p", "i", "d", "dMax", "ff"}, pids.Properties["yaw"].Required)
	assert.Len(t, s.Properties["modernPids"].Required, 8)

	fft := s.Properties["fftData"]
	require.Equal(t, genai.TypeArray, fft.Type)
	assert.ElementsMatch(t, []string{"freq", "raw", "filtered"}, fft.Items.Required)
	assert.Equal(t, genai.TypeString, s.Properties["cliCommands"].Items.Type)
}

func TestAnalysisSchemaIsFresh(t *testing.T) {
	a := AnalysisSchema()
	a.Properties["suggestion"].Type = genai.TypeNumber
	assert.Equal(t, genai.TypeString, AnalysisSchema().Properties["suggestion"].Type)
}
