package service

import (
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/mingrammer/backoff-toolkit/config"
	"github.com/mingrammer/backoff-toolkit/retryer"
	"github.com/mingrammer/cfmt"
)

// NewDynamoDBClient creates a dynamodb client whose retries wait as the configured policy says
func NewDynamoDBClient(region, endpoint string) (*dynamodb.DynamoDB, error) {
	awsConf := aws.NewConfig()
	if region != "" {
		awsConf.WithRegion(region)
	}
	if endpoint != "" {
		awsConf.WithEndpoint(endpoint)
	}
	retryer.WithPolicy(awsConf, config.GetPolicy(), config.GetLogger())
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *awsConf,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, errors.New(cfmt.Serror(err.Error()))
	}
	return dynamodb.New(sess), nil
}
