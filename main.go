package main

import (
	"os"

	"github.com/mingrammer/backoff-toolkit/config"
	"github.com/mingrammer/backoff-toolkit/logger"
	"github.com/mingrammer/cfmt"
	"github.com/urfave/cli"
)

// CLI information
const (
	name      = "backofftk"
	author    = "mingrammer"
	email     = "mingrammer@gmail.com"
	version   = "0.1.0"
	usage     = "A command line toolkit for retry backoff delays"
	usageText = "backofftk [OPTIONS] command [OPTIONS/FLAGS]"
)

func main() {
	err := newApp().Run(os.Args)
	if err != nil {
		cfmt.Errorln(err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = name
	app.Author = author
	app.Email = email
	app.Version = version
	app.Usage = usage
	app.UsageText = usageText
	app.Flags = buildGlobalFlags()
	app.Before = buildBeforeFunc()
	app.Commands = []cli.Command{
		buildDelayCommand(),
		buildScheduleCommand(),
		buildTableStatusCommand(),
	}
	return app
}

func buildBeforeFunc() cli.BeforeFunc {
	return func(ctx *cli.Context) error {
		config.Reset()
		config.SetExponential(ctx.BoolT("exponential-backoff"))
		config.SetBase(ctx.Float64("retry-interval"))
		config.SetMaxRetries(ctx.Int("max-retries"))
		config.SetMaxDelay(ctx.Duration("max-delay"))
		if ctx.Bool("quiet") {
			config.SetLogger(logger.Discard)
		} else {
			config.SetLogger(logger.NewConsole(os.Stderr))
		}
		return nil
	}
}

func buildGlobalFlags() []cli.Flag {
	flags := []cli.Flag{
		cli.BoolTFlag{
			Name:   "exponential-backoff",
			Usage:  "grow the delay exponentially with the number of tries",
			EnvVar: "BACKOFF_EXPONENTIAL",
		},
		cli.Float64Flag{
			Name:   "retry-interval",
			Usage:  "base of the exponential backoff, or the fixed delay in seconds",
			Value:  config.DefaultBase,
			EnvVar: "BACKOFF_RETRY_INTERVAL",
		},
		cli.IntFlag{
			Name:   "max-retries",
			Usage:  "number of retries in the schedule",
			Value:  config.DefaultMaxRetries,
			EnvVar: "BACKOFF_MAX_RETRIES",
		},
		cli.DurationFlag{
			Name:   "max-delay",
			Usage:  "cap of a single delay. 0 means uncapped",
			EnvVar: "BACKOFF_MAX_DELAY",
		},
		cli.BoolFlag{
			Name:  "quiet",
			Usage: "do not print backoff warnings",
		},
	}
	return flags
}
