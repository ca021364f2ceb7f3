package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Configure("warn"))
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	assert.Equal(t, logrus.InfoLevel, Configure("verbose"))
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Equal(t, "", GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("action"))
	assert.True(t, isRelevantField("offer_id"))
	assert.True(t, isRelevantField("client_id"))
	assert.False(t, isRelevantField("user_agent"))
}
