package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_StampsServiceAndFiltersLevel(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("below threshold")
	log.Warn().Msg("above threshold")

	out := buf.String()
	if strings.Contains(out, "below threshold") {
		t.Error("info line must be filtered at warn level")
	}
	if !strings.Contains(out, "above threshold") {
		t.Error("warn line must be emitted")
	}
	if !strings.Contains(out, `"service":"user-management"`) {
		t.Errorf("service field missing from output: %s", out)
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	var buf bytes.Buffer
	log := Init(Options{Level: "shouting", Output: &buf})

	log.Debug().Msg("debug line")
	log.Info().Msg("info line")

	out := buf.String()
	if strings.Contains(out, "debug line") {
		t.Error("debug must be filtered at the info fallback level")
	}
	if !strings.Contains(out, "info line") {
		t.Error("info must be emitted at the fallback level")
	}
}

func TestInit_OnlyFirstCallWins(t *testing.T) {
	Reset()
	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	log := Get()
	log.Info().Msg("routed")

	if !strings.Contains(first.String(), "routed") {
		t.Error("log output must go to the first Init's writer")
	}
	if second.Len() != 0 {
		t.Error("second Init call must have no effect")
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	defer func() {
		if recover() == nil {
			t.Fatal("Get before Init must panic")
		}
		Reset()
	}()
	Get()
}
