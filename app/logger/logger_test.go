package logger

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(oldOut)
		log.SetFlags(oldFlags)
	})
	return &buf
}

func TestLevelPrefixes(t *testing.T) {
	buf := captureLog(t)

	Infof("main page accessed")
	Warnf("post %d not found", 7)
	Errorf("boom: %v", "disk")

	assert.Equal(t, "[INFO] main page accessed\n[WARN] post 7 not found\n[ERROR] boom: disk\n", buf.String())
}

func TestDebugToggle(t *testing.T) {
	buf := captureLog(t)
	t.Cleanup(func() { SetDebug(true) })

	SetDebug(false)
	assert.False(t, DebugEnabled())
	Debugf("hidden")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debugf("shown %d", 1)
	assert.Equal(t, "[DEBUG] shown 1\n", buf.String())
}
