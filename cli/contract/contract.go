// Package contract implements contract-related CLI commands: assembling
// deployment and invocation transactions from compiled WASM modules and
// definition files. Signing and final submission belong to the wallet owner,
// so by default assembled bodies are printed ready for an external signer.
package contract

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/xrpl-wasm/xrpl-go/cli/options"
	"github.com/xrpl-wasm/xrpl-go/pkg/core/transaction"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract"
	"github.com/xrpl-wasm/xrpl-go/pkg/smartcontract/wasmod"
)

// NewCommands returns the 'contract' command.
func NewCommands() []cli.Command {
	deployFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "in, i",
			Usage: "Compiled WASM module to deploy",
		},
		cli.StringFlag{
			Name:  "definition, def",
			Usage: "YAML file with the contract's functions and instance parameters",
		},
		cli.StringFlag{
			Name:  "account, a",
			Usage: "Deployer account address",
		},
		cli.BoolFlag{
			Name:  "by-hash",
			Usage: "Reference already stored code by hash instead of carrying the module",
		},
		options.Debug,
	}, options.Network...)
	callFlags := append([]cli.Flag{
		cli.StringFlag{
			Name:  "account, a",
			Usage: "Caller account address",
		},
		cli.Uint64Flag{
			Name:  "allowance",
			Usage: "Computation allowance for the invocation",
			Value: 1000000,
		},
		options.Debug,
	}, options.Network...)
	return []cli.Command{{
		Name:  "contract",
		Usage: "assemble smart contract deployment and invocation transactions",
		Subcommands: []cli.Command{
			{
				Name:      "deploy",
				Usage:     "assemble a ContractCreate transaction from a module and a definition",
				UsageText: "xrpl-go contract deploy -i contract.wasm --def contract.yml [-a account] [-r endpoint]",
				Action:    contractDeploy,
				Flags:     deployFlags,
			},
			{
				Name:      "call",
				Usage:     "assemble a ContractCall transaction",
				UsageText: "xrpl-go contract call [--allowance n] [-a account] <contract-account> <function> [type:value...]",
				Action:    contractCall,
				Flags:     callFlags,
			},
			{
				Name:      "hash",
				Usage:     "print the code hash of a compiled WASM module",
				UsageText: "xrpl-go contract hash <module.wasm>",
				Action:    contractHash,
			},
		},
	}}
}

func contractDeploy(ctx *cli.Context) error {
	in := ctx.String("in")
	if len(in) == 0 {
		return cli.NewExitError("no input module file was specified", 1)
	}
	defFile := ctx.String("definition")
	if len(defFile) == 0 {
		return cli.NewExitError("no contract definition file was specified", 1)
	}
	log := options.HandleLoggingParams(ctx)
	defer log.Sync()

	f, err := wasmod.Load(in)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	def, err := ParseDefinition(defFile)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	code := transaction.CodeRef{Code: f.Hex()}
	if ctx.Bool("by-hash") {
		code = transaction.CodeRef{Hash: f.CodeHash()}
	}
	tx, err := def.ToContractCreate(code)
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to assemble ContractCreate: %w", err), 1)
	}
	if acc := ctx.String("account"); acc != "" {
		tx, err = tx.WithAccount(acc)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
		if endpoint := ctx.String(options.RPCEndpointFlag); endpoint != "" {
			gctx, cancel := options.GetTimeoutContext(ctx)
			defer cancel()
			c, exitErr := options.GetRPCClient(gctx, ctx)
			if exitErr != nil {
				return exitErr
			}
			defer c.Close()
			exists, err := c.ContractExists(acc)
			if err != nil {
				return cli.NewExitError(fmt.Errorf("failed to check for an existing contract: %w", err), 1)
			}
			if exists {
				log.Warn("a contract entry already exists at this account, deployment may be redundant",
					zap.String("account", acc))
			}
		}
	}
	log.Debug("assembled deployment",
		zap.Int("functions", len(tx.Functions)),
		zap.Int("instance parameters", len(tx.InstanceParameters)),
		zap.String("code hash", f.CodeHash()))
	return printTx(ctx, tx)
}

func contractCall(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return cli.NewExitError("contract account and function name are required", 1)
	}
	params := make([]smartcontract.Parameter, 0, len(args)-2)
	for i, arg := range args[2:] {
		p, err := smartcontract.NewParameterFromString(arg)
		if err != nil {
			return cli.NewExitError(fmt.Errorf("argument #%d: %w", i, err), 1)
		}
		params = append(params, *p)
	}
	allowance := ctx.Uint64("allowance")
	if allowance > math.MaxUint32 {
		return cli.NewExitError(fmt.Errorf("allowance %d is out of the uint32 range", allowance), 1)
	}
	tx, err := transaction.NewContractCall(args[0], smartcontract.NewName(args[1]),
		params, uint32(allowance))
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to assemble ContractCall: %w", err), 1)
	}
	if acc := ctx.String("account"); acc != "" {
		tx, err = tx.WithAccount(acc)
		if err != nil {
			return cli.NewExitError(err, 1)
		}
	}
	return printTx(ctx, tx)
}

func contractHash(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("no input module file was specified", 1)
	}
	f, err := wasmod.Load(ctx.Args()[0])
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, f.CodeHash())
	return nil
}

func printTx(ctx *cli.Context, tx interface{}) error {
	b, err := json.MarshalIndent(tx, "", "   ")
	if err != nil {
		return cli.NewExitError(fmt.Errorf("failed to marshal transaction: %w", err), 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(b))
	return nil
}
