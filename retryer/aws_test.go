package retryer

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSDKRetryerRetryRules(t *testing.T) {
	p := Policy{Exponential: true, Base: 2, MaxRetries: 3, MaxDelay: 5 * time.Second}
	r := NewSDKRetryer(p, nil)

	testCases := []struct {
		retryCount int
		expected   time.Duration
	}{
		{retryCount: 0, expected: time.Second},
		{retryCount: 1, expected: 2 * time.Second},
		{retryCount: 2, expected: 4 * time.Second},
		{retryCount: 3, expected: 5 * time.Second},
	}
	for i, tc := range testCases {
		if d := r.RetryRules(&request.Request{RetryCount: tc.retryCount}); d != tc.expected {
			t.Errorf("[%d] Expecting %v, got %v", i+1, tc.expected, d)
		}
	}
	assert.Equal(t, 3, r.MaxRetries())
}

func TestSDKRetryerWarnsOnDegenerateBase(t *testing.T) {
	l := &recordingLogger{}
	r := NewSDKRetryer(Policy{Exponential: true, Base: 0.5, MaxRetries: 2}, l)
	assert.Equal(t, 500*time.Millisecond, r.RetryRules(&request.Request{RetryCount: 1}))
	assert.Len(t, l.warnings, 1)
}

func TestWithPolicy(t *testing.T) {
	p := Policy{Base: 3, MaxRetries: 4}
	cfg := WithPolicy(aws.NewConfig().WithRegion("ap-northeast-2"), p, NopLogger{})

	retryer, ok := cfg.Retryer.(SDKRetryer)
	require.True(t, ok)
	assert.Equal(t, p, retryer.Policy)
	assert.Equal(t, 4, retryer.MaxRetries())
	assert.Equal(t, "ap-northeast-2", aws.StringValue(cfg.Region))
}
