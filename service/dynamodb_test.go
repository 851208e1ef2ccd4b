package service

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/mingrammer/backoff-toolkit/config"
	"github.com/mingrammer/backoff-toolkit/retryer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDynamoDBClient(t *testing.T) {
	defer config.Reset()
	config.SetBase(3)
	config.SetMaxRetries(4)
	config.SetMaxDelay(time.Minute)

	client, err := NewDynamoDBClient("ap-northeast-2", "http://localhost:8000")
	require.NoError(t, err)

	assert.Equal(t, "ap-northeast-2", aws.StringValue(client.Config.Region))
	assert.Equal(t, "http://localhost:8000", aws.StringValue(client.Config.Endpoint))

	r, ok := client.Config.Retryer.(retryer.SDKRetryer)
	require.True(t, ok)
	assert.Equal(t, config.GetPolicy(), r.Policy)
	assert.Equal(t, 4, r.MaxRetries())
}
