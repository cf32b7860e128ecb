package log_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/connector/log"
)

func TestNew(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, log.New(true).GetLevel())
	assert.Equal(t, logrus.InfoLevel, log.New(false).GetLevel())

	var l log.Logger = log.GetLogger()
	assert.NotNil(t, l)
}
