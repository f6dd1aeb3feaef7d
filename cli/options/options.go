// Package options contains a set of common CLI options and helper functions
// to use them.
package options

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/xrpl-wasm/xrpl-go/pkg/rpcclient"
)

// DefaultTimeout is the default timeout used for RPC requests.
const DefaultTimeout = 10 * time.Second

// RPCEndpointFlag is a long flag name for an RPC endpoint.
const RPCEndpointFlag = "rpc-endpoint"

// Network is a set of flags for choosing the RPC node to talk to.
var Network = []cli.Flag{
	cli.StringFlag{
		Name:  RPCEndpointFlag + ", r",
		Usage: "RPC node address",
	},
	cli.DurationFlag{
		Name:  "timeout, t",
		Usage: "Timeout for the operation",
		Value: DefaultTimeout,
	},
}

// Debug is a flag for debug logging.
var Debug = cli.BoolFlag{
	Name:  "debug, d",
	Usage: "enable debug logging (LOTS of output)",
}

// GetRPCClient returns an RPC client instance for the given Context.
func GetRPCClient(gctx context.Context, ctx *cli.Context) (*rpcclient.Client, cli.ExitCoder) {
	endpoint := ctx.String(RPCEndpointFlag)
	if len(endpoint) == 0 {
		return nil, cli.NewExitError(errors.New("no RPC endpoint specified, use option '--"+RPCEndpointFlag+"' or '-r'"), 1)
	}
	c, err := rpcclient.New(gctx, endpoint, rpcclient.Options{
		RequestTimeout: ctx.Duration("timeout"),
	})
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return c, nil
}

// GetTimeoutContext returns a context.Context with the default or a
// user-set timeout.
func GetTimeoutContext(ctx *cli.Context) (context.Context, func()) {
	dur := ctx.Duration("timeout")
	if dur == 0 {
		dur = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), dur)
}

// HandleLoggingParams reads logging parameters from the context and
// returns a ready to use zap.Logger.
func HandleLoggingParams(ctx *cli.Context) *zap.Logger {
	level := zapcore.InfoLevel
	if ctx.Bool("debug") {
		level = zapcore.DebugLevel
	}

	cc := zap.NewProductionConfig()
	cc.DisableCaller = true
	cc.DisableStacktrace = true
	cc.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cc.Encoding = "console"
	cc.Level = zap.NewAtomicLevelAt(level)
	cc.Sampling = nil

	log, err := cc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
