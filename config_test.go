package connector_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/connector"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		description string
		content     string
		caching     bool
		logger      bool
		debug       bool
		fail        bool
	}{
		{
			description: "empty",
			content:     "",
			caching:     true,
		},
		{
			description: "caching disabled",
			content:     "caching: false\n",
			caching:     false,
		},
		{
			description: "log",
			content:     "caching: true\nlog: true\n",
			caching:     true,
			logger:      true,
		},
		{
			description: "debug",
			content:     "debug: true\n",
			caching:     true,
			logger:      true,
			debug:       true,
		},
		{
			description: "unknown field",
			content:     "cache: true\n",
			fail:        true,
		},
	}
	dir := t.TempDir()
	for i, test := range tests {
		path := filepath.Join(dir, string(rune('a'+i))+".yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte(test.content), 0644))
		cfg, err := connector.LoadConfig(path)
		if test.fail {
			assert.Error(t, err, test.description)
			continue
		}
		require.NoError(t, err, test.description)
		assert.Equal(t, test.caching, cfg.Caching, test.description)
		l, ok := cfg.Logger.(*logrus.Logger)
		assert.Equal(t, test.logger, ok, test.description)
		if ok {
			assert.Equal(t, test.debug, l.IsLevelEnabled(logrus.DebugLevel), test.description)
		}
	}

	_, err := connector.LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(connector.CachingEnv, "false")
	cfg := connector.ConfigFromEnv(connector.DefaultConfig())
	assert.False(t, cfg.Caching)

	t.Setenv(connector.CachingEnv, "invalid")
	cfg = connector.ConfigFromEnv(connector.DefaultConfig())
	assert.True(t, cfg.Caching)
}
