package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("debug", "json", &buf)

	log.Debug().Str("pathway", "creative-technologist").Int("courses", 12).Msg("loaded pathway")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "creative-technologist", line["pathway"])
	assert.EqualValues(t, 12, line["courses"])
	assert.Equal(t, "loaded pathway", line["message"])
	assert.Contains(t, line, "time")
}

func TestSetup_Level(t *testing.T) {
	tests := []struct {
		level   string
		debugOK bool
		infoOK  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
		{"bogus", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := Setup(tt.level, "json", &buf)

			log.Debug().Msg("d")
			assert.Equal(t, tt.debugOK, buf.Len() > 0, "debug written")
			buf.Reset()

			log.Info().Msg("i")
			assert.Equal(t, tt.infoOK, buf.Len() > 0, "info written")
		})
	}
}

func TestSetup_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := Setup("info", "pretty", &buf)
	log.Info().Str("pathway", "x").Msg("hello")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "pathway=x")
	assert.NotContains(t, out, "\x1b[", "no color outside a terminal")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "pathways", "pathways.log")

	f, err := OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("one\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("two\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}
