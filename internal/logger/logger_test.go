package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "menu", log.InfoLevel, false, false, log.LogfmtFormatter)

	l.Debug("hidden")
	l.Info("trained", "words", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "prefix=menu")
	assert.Contains(t, out, "words=3")
}

func TestNewFollowsGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.ErrorLevel)
	assert.Equal(t, log.ErrorLevel, New("ipc").GetLevel())
}
