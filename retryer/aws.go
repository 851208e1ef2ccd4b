package retryer

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// SDKRetryer lets the aws sdk decide whether a request is retried,
// while the delay between attempts comes from the policy.
type SDKRetryer struct {
	client.DefaultRetryer
	Policy Policy
	Logger Logger
}

// NewSDKRetryer creates a retryer for aws service clients
func NewSDKRetryer(p Policy, logger Logger) SDKRetryer {
	return SDKRetryer{
		DefaultRetryer: client.DefaultRetryer{NumMaxRetries: p.MaxRetries},
		Policy:         p,
		Logger:         logger,
	}
}

// RetryRules returns the delay before retrying the request
func (s SDKRetryer) RetryRules(r *request.Request) time.Duration {
	return s.Policy.Duration(r.RetryCount, s.Logger)
}

// MaxRetries returns the number of retries of the policy
func (s SDKRetryer) MaxRetries() int {
	return s.Policy.MaxRetries
}

// WithPolicy sets the retryer of the aws configuration
func WithPolicy(cfg *aws.Config, p Policy, logger Logger) *aws.Config {
	return request.WithRetryer(cfg, NewSDKRetryer(p, logger))
}
