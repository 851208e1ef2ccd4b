package main

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/mingrammer/backoff-toolkit/config"
	"github.com/mingrammer/backoff-toolkit/retryer"
	"github.com/mingrammer/backoff-toolkit/service"
	"github.com/mingrammer/cfmt"
	"github.com/urfave/cli"
)

func loadPolicy() (retryer.Policy, error) {
	policy := config.GetPolicy()
	if err := policy.Validate(); err != nil {
		return policy, errors.New(cfmt.Serror(err.Error()))
	}
	return policy, nil
}

func formatDelay(d time.Duration) string {
	return fmt.Sprintf("%g (%s)", d.Seconds(), d)
}

func formatScheduleRow(label string, d time.Duration) string {
	return fmt.Sprintf("%s\t%g\t%s", label, d.Seconds(), d)
}

// scheduleTotal saturates at the largest duration
func scheduleTotal(delays []time.Duration) time.Duration {
	var total time.Duration
	for _, d := range delays {
		if total+d < total {
			return time.Duration(math.MaxInt64)
		}
		total += d
	}
	return total
}

func buildDelayCommand() cli.Command {
	cmd := cli.Command{
		Name:  "delay",
		Usage: "print the delay in seconds before the given try",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "tries",
				Usage: "number of tries already made",
			},
		},
		Action: func(ctx *cli.Context) error {
			tries := ctx.Int("tries")
			if tries < 0 {
				return errors.New(cfmt.Serror("The number of tries must not be negative"))
			}
			policy, err := loadPolicy()
			if err != nil {
				return err
			}
			cfmt.Successln(formatDelay(policy.Duration(tries, config.GetLogger())))
			return nil
		},
	}
	return cmd
}

func buildScheduleCommand() cli.Command {
	cmd := cli.Command{
		Name:  "schedule",
		Usage: "print the delay before every retry and the total wait",
		Action: func(ctx *cli.Context) error {
			policy, err := loadPolicy()
			if err != nil {
				return err
			}
			delays := policy.Schedule(config.GetLogger())
			if len(delays) == 0 {
				cfmt.Warningf("No retries are scheduled.\n")
				return nil
			}
			for i, d := range delays {
				cfmt.Infoln(formatScheduleRow(fmt.Sprint(i), d))
			}
			cfmt.Successln(formatScheduleRow("total", scheduleTotal(delays)))
			return nil
		},
	}
	return cmd
}

func buildTableStatusCommand() cli.Command {
	cmd := cli.Command{
		Name:  "table-status",
		Usage: "describe a dynamodb table, retrying with the configured backoff",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "table-name",
				Usage: "name of the table to describe",
			},
			cli.StringFlag{
				Name:   "region",
				Usage:  "dynamodb region",
				EnvVar: "AWS_REGION",
			},
			cli.StringFlag{
				Name:   "endpoint",
				Usage:  "dynamodb endpoint. It is for local dynamodb",
				EnvVar: "AWS_DYNAMODB_ENDPOINT",
			},
		},
		Action: func(ctx *cli.Context) error {
			table := ctx.String("table-name")
			if len(table) == 0 {
				return errors.New(cfmt.Serror("You must pass a table name"))
			}
			if _, err := loadPolicy(); err != nil {
				return err
			}
			client, err := service.NewDynamoDBClient(ctx.String("region"), ctx.String("endpoint"))
			if err != nil {
				return err
			}
			meta, err := client.DescribeTable(&dynamodb.DescribeTableInput{
				TableName: aws.String(table),
			})
			if err != nil {
				return errors.New(cfmt.Serror(err.Error()))
			}
			cfmt.Successf("Table '%s' is %s.\n", table, aws.StringValue(meta.Table.TableStatus))
			return nil
		},
	}
	return cmd
}
