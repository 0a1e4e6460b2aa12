// Package schema holds the output contract of the analysis service.
package schema

import "google.golang.org/genai"

func number() *genai.Schema { return &genai.Schema{Type: genai.TypeNumber} }
func text() *genai.Schema   { return &genai.Schema{Type: genai.TypeString} }

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func numbers(keys ...string) *genai.Schema {
	props := make(map[string]*genai.Schema, len(keys))
	for _, k := range keys {
		props[k] = number()
	}
	return object(keys, props)
}

func arrayOf(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}

// Required top-level fields. pids, modernPids and filters are optional.
var Required = []string{
	"logFidelity", "suggestion", "vibrationScore", "responsivenessScore",
	"diagnostics", "flightStats", "motorStatus", "fftData", "stepResponse", "cliCommands",
}

// AnalysisSchema returns a fresh copy of the report schema.
func AnalysisSchema() *genai.Schema {
	axis := func() *genai.Schema { return numbers("p", "i", "d", "dMax", "ff") }

	return object(Required, map[string]*genai.Schema{
		"logFidelity":         text(),
		"suggestion":          text(),
		"vibrationScore":      number(),
		"responsivenessScore": number(),
		"diagnostics": arrayOf(object(
			[]string{"module", "status", "issue", "advice"},
			map[string]*genai.Schema{"module": text(), "status": text(), "issue": text(), "advice": text()},
		)),
		"flightStats": object(
			[]string{"duration", "loopRate", "noiseLevel", "avgThrottle", "latencyMs"},
			map[string]*genai.Schema{
				"duration":    text(),
				"loopRate":    text(),
				"noiseLevel":  text(),
				"avgThrottle": number(),
				"latencyMs":   number(),
			},
		),
		"motorStatus":  numbers("m1", "m2", "m3", "m4", "predictedTemp"),
		"fftData":      arrayOf(numbers("freq", "raw", "filtered")),
		"stepResponse": arrayOf(numbers("time", "setpoint", "actual")),
		"pids": object([]string{"roll", "pitch", "yaw"}, map[string]*genai.Schema{
			"roll":  axis(),
			"pitch": axis(),
			"yaw":   axis(),
		}),
		"modernPids": numbers(
			"dDamping", "piTracking", "stickResponseFF", "dynamicDampingDMax",
			"driftWobbleIGain", "pitchRollDRatio", "pitchRollPIFFRatio", "masterMultiplier",
		),
		"filters":     numbers("gyroMultiplier", "dTermMultiplier"),
		"cliCommands": arrayOf(text()),
	})
}
